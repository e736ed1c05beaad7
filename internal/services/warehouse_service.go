// internal/services/warehouse_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

// WarehouseService owns the warehouse registry. Names are unique across the
// registry; this is enforced here before insert in addition to the unique
// index the database setup creates.
type WarehouseService struct {
	store   store.Store
	history *HistoryService
}

type CreateWarehouseRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

// UpdateWarehouseRequest carries partial field changes. Nil fields are left
// unchanged.
type UpdateWarehouseRequest struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
}

func NewWarehouseService(st store.Store, history *HistoryService) *WarehouseService {
	return &WarehouseService{store: st, history: history}
}

func (s *WarehouseService) Create(ctx context.Context, req *CreateWarehouseRequest) (*models.Warehouse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, NewValidationError("warehouse name must not be empty")
	}
	if req.Capacity <= 0 {
		return nil, NewValidationError("capacity must be a positive integer")
	}

	duplicate, err := s.store.FindWarehouseByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check warehouse name: %w", err)
	}
	if duplicate != nil {
		return nil, NewValidationError("warehouse name '%s' already exists", name)
	}

	warehouse := &models.Warehouse{
		Name:     name,
		Address:  strings.TrimSpace(req.Address),
		Capacity: req.Capacity,
	}

	id, err := s.store.Insert(ctx, store.CollectionWarehouses, warehouse)
	if err != nil {
		return nil, fmt.Errorf("failed to create warehouse: %w", err)
	}
	warehouse.ID = id

	s.history.Record(ctx, models.EntityKindWarehouse, models.EventActionCreated, id, "",
		fmt.Sprintf("Warehouse '%s' created.", name))
	return warehouse, nil
}

// Get looks up a warehouse. Absence is not an error.
func (s *WarehouseService) Get(ctx context.Context, id string) (*models.Warehouse, bool, error) {
	var warehouse models.Warehouse
	found, err := s.store.FindByID(ctx, store.CollectionWarehouses, id, &warehouse)
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch warehouse: %w", err)
	}
	if !found {
		return nil, false, nil
	}
	return &warehouse, true, nil
}

func (s *WarehouseService) List(ctx context.Context) ([]models.Warehouse, error) {
	var warehouses []models.Warehouse
	if err := s.store.FindAll(ctx, store.CollectionWarehouses, &warehouses); err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return warehouses, nil
}

func (s *WarehouseService) Update(ctx context.Context, id string, req *UpdateWarehouseRequest) (*models.Warehouse, error) {
	existing, found, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, NewNotFoundError("warehouse '%s' not found", id)
	}

	changes := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, NewValidationError("warehouse name must not be empty")
		}
		if name != existing.Name {
			duplicate, err := s.store.FindWarehouseByName(ctx, name)
			if err != nil {
				return nil, fmt.Errorf("failed to check warehouse name: %w", err)
			}
			if duplicate != nil {
				return nil, NewValidationError("warehouse name '%s' already exists", name)
			}
		}
		changes["name"] = name
	}
	if req.Address != nil {
		changes["address"] = strings.TrimSpace(*req.Address)
	}
	if req.Capacity != nil {
		capacity := *req.Capacity
		if capacity <= 0 {
			return nil, NewValidationError("capacity must be a positive integer")
		}
		stocked, err := s.stockedUnits(ctx, id)
		if err != nil {
			return nil, err
		}
		if capacity < stocked {
			return nil, NewValidationError(
				"capacity (%d) must not be lower than the %d units currently stocked", capacity, stocked)
		}
		changes["capacity"] = capacity
	}

	if len(changes) == 0 {
		return existing, nil
	}

	if _, err := s.store.Update(ctx, store.CollectionWarehouses, id, changes); err != nil {
		return nil, fmt.Errorf("failed to update warehouse: %w", err)
	}

	updated, _, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.history.Record(ctx, models.EntityKindWarehouse, models.EventActionUpdated, id, "",
		fmt.Sprintf("Warehouse '%s' updated.", updated.Name))
	return updated, nil
}

// Delete removes a warehouse and cascades to every inventory entry stored in
// it.
func (s *WarehouseService) Delete(ctx context.Context, id string) error {
	existing, found, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return NewNotFoundError("warehouse '%s' not found", id)
	}

	if _, err := s.store.DeleteInventoryByWarehouse(ctx, id); err != nil {
		return fmt.Errorf("failed to remove inventory entries for warehouse: %w", err)
	}
	if _, err := s.store.Delete(ctx, store.CollectionWarehouses, id); err != nil {
		return fmt.Errorf("failed to delete warehouse: %w", err)
	}

	s.history.Record(ctx, models.EntityKindWarehouse, models.EventActionDeleted, id, "",
		fmt.Sprintf("Warehouse '%s' deleted.", existing.Name))
	return nil
}

func (s *WarehouseService) stockedUnits(ctx context.Context, warehouseID string) (int, error) {
	entries, err := s.store.FindInventoryByWarehouse(ctx, warehouseID)
	if err != nil {
		return 0, fmt.Errorf("failed to read warehouse inventory: %w", err)
	}

	total := 0
	for _, entry := range entries {
		total += entry.Quantity
	}
	return total, nil
}
