// internal/store/memory.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
)

// MemoryStore implements Store entirely in memory. It backs the test suites
// and allows running the server without a MongoDB instance. Documents are
// kept as raw JSON so partial updates behave like MongoDB's $set: changes are
// keyed by field name and untouched fields keep their stored values.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]json.RawMessage
	seq  map[string][]string // insertion order per collection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]json.RawMessage),
		seq:  make(map[string][]string),
	}
}

func (s *MemoryStore) Insert(_ context.Context, collection string, doc interface{}) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return "", fmt.Errorf("failed to decode document: %w", err)
	}

	id := uuid.New().String()
	m["id"] = id

	stored, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[collection] == nil {
		s.data[collection] = make(map[string]json.RawMessage)
	}
	s.data[collection][id] = stored
	s.seq[collection] = append(s.seq[collection], id)
	return id, nil
}

func (s *MemoryStore) FindByID(_ context.Context, collection, id string, out interface{}) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[collection][id]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("failed to decode document: %w", err)
	}
	return true, nil
}

func (s *MemoryStore) FindAll(_ context.Context, collection string, out interface{}) error {
	s.mu.RLock()
	raws := make([]json.RawMessage, 0, len(s.seq[collection]))
	for _, id := range s.seq[collection] {
		if raw, ok := s.data[collection][id]; ok {
			raws = append(raws, raw)
		}
	}
	s.mu.RUnlock()

	return decodeSlice(raws, out)
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, changes map[string]interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[collection][id]
	if !ok {
		return false, nil
	}
	if len(changes) == 0 {
		return true, nil
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return false, fmt.Errorf("failed to decode stored document: %w", err)
	}

	for key, value := range changes {
		// Round-trip through JSON so typed values (slices of structs etc.)
		// are stored the same way Insert stores them.
		encoded, err := json.Marshal(value)
		if err != nil {
			return false, fmt.Errorf("failed to encode field %s: %w", key, err)
		}
		var plain interface{}
		if err := json.Unmarshal(encoded, &plain); err != nil {
			return false, fmt.Errorf("failed to decode field %s: %w", key, err)
		}
		m[key] = plain
	}

	updated, err := json.Marshal(m)
	if err != nil {
		return false, fmt.Errorf("failed to encode document: %w", err)
	}
	s.data[collection][id] = updated
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data[collection][id]; !ok {
		return false, nil
	}
	delete(s.data[collection], id)
	return true, nil
}

func (s *MemoryStore) FindInventoryByWarehouse(ctx context.Context, warehouseID string) ([]models.InventoryEntry, error) {
	entries, err := s.allInventory(ctx)
	if err != nil {
		return nil, err
	}

	var matched []models.InventoryEntry
	for _, entry := range entries {
		if entry.WarehouseID == warehouseID {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (s *MemoryStore) FindInventoryEntry(ctx context.Context, warehouseID, productID string) (*models.InventoryEntry, error) {
	entries, err := s.allInventory(ctx)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].WarehouseID == warehouseID && entries[i].ProductID == productID {
			return &entries[i], nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) DeleteInventoryByWarehouse(ctx context.Context, warehouseID string) (int64, error) {
	entries, err := s.FindInventoryByWarehouse(ctx, warehouseID)
	if err != nil {
		return 0, err
	}

	var removed int64
	for _, entry := range entries {
		if ok, err := s.Delete(ctx, CollectionInventory, entry.ID); err != nil {
			return removed, err
		} else if ok {
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) DeleteInventoryByProduct(ctx context.Context, productID string) (int64, error) {
	entries, err := s.allInventory(ctx)
	if err != nil {
		return 0, err
	}

	var removed int64
	for _, entry := range entries {
		if entry.ProductID != productID {
			continue
		}
		if ok, err := s.Delete(ctx, CollectionInventory, entry.ID); err != nil {
			return removed, err
		} else if ok {
			removed++
		}
	}
	return removed, nil
}

func (s *MemoryStore) FindWarehouseByName(ctx context.Context, name string) (*models.Warehouse, error) {
	var warehouses []models.Warehouse
	if err := s.FindAll(ctx, CollectionWarehouses, &warehouses); err != nil {
		return nil, err
	}

	for i := range warehouses {
		if warehouses[i].Name == name {
			return &warehouses[i], nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindEventsNewestFirst(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.FindAll(ctx, CollectionEvents, &events); err != nil {
		return nil, err
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	return events, nil
}

func (s *MemoryStore) allInventory(ctx context.Context) ([]models.InventoryEntry, error) {
	var entries []models.InventoryEntry
	if err := s.FindAll(ctx, CollectionInventory, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeSlice(raws []json.RawMessage, out interface{}) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, raw := range raws {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')

	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("failed to decode documents: %w", err)
	}
	return nil
}
