// internal/services/inventory_service.go
package services

import (
	"context"
	"fmt"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

// InventoryService owns the (warehouse, product) quantity relation. A pair is
// either absent or present with a quantity greater than zero; operations that
// drive the quantity to zero delete the entry instead of storing a zero.
//
// Composite operations (MoveStock, the cascades invoked by product and
// warehouse deletion) are sequential single-document writes. There is no
// rollback: a crash between the two halves of a move can leave the ledger
// transiently inconsistent. Callers needing stronger guarantees must add a
// transaction layer at the storage boundary.
type InventoryService struct {
	store   store.Store
	history *HistoryService
}

type AddStockRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required"`
}

type SetQuantityRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

type WithdrawStockRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required"`
	ProductID   string `json:"product_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required"`
}

type MoveStockRequest struct {
	ProductID       string `json:"product_id" validate:"required"`
	FromWarehouseID string `json:"from_warehouse_id" validate:"required"`
	ToWarehouseID   string `json:"to_warehouse_id" validate:"required"`
	Quantity        int    `json:"quantity" validate:"required"`
}

func NewInventoryService(st store.Store, history *HistoryService) *InventoryService {
	return &InventoryService{store: st, history: history}
}

// AddStock stocks a product into a warehouse. If an entry for the pair
// already exists the quantity is added to the stored quantity; otherwise a
// new entry is created. Zero is not a valid quantity: an absent pair stays
// absent, it never rests at a stored zero.
func (s *InventoryService) AddStock(ctx context.Context, warehouseID, productID string, quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity must be a positive integer")
	}

	warehouse, product, err := s.requireParents(ctx, warehouseID, productID)
	if err != nil {
		return err
	}

	existing, err := s.store.FindInventoryEntry(ctx, warehouseID, productID)
	if err != nil {
		return fmt.Errorf("failed to look up inventory entry: %w", err)
	}

	action := models.EventActionCreated
	if existing != nil {
		action = models.EventActionUpdated
		changes := map[string]interface{}{"quantity": existing.Quantity + quantity}
		if _, err := s.store.Update(ctx, store.CollectionInventory, existing.ID, changes); err != nil {
			return fmt.Errorf("failed to update inventory entry: %w", err)
		}
	} else {
		entry := models.InventoryEntry{
			WarehouseID: warehouseID,
			ProductID:   productID,
			Quantity:    quantity,
		}
		if _, err := s.store.Insert(ctx, store.CollectionInventory, entry); err != nil {
			return fmt.Errorf("failed to create inventory entry: %w", err)
		}
	}

	s.history.Record(ctx, models.EntityKindInventory, action, pairID(warehouseID, productID), "",
		fmt.Sprintf("Added %dx '%s' to warehouse '%s'.", quantity, product.Name, warehouse.Name))
	return nil
}

// SetQuantity replaces the stored quantity of an existing entry.
func (s *InventoryService) SetQuantity(ctx context.Context, warehouseID, productID string, quantity int) error {
	if quantity < 0 {
		return NewValidationError("quantity must not be negative")
	}

	entry, err := s.requireEntry(ctx, warehouseID, productID)
	if err != nil {
		return err
	}

	changes := map[string]interface{}{"quantity": quantity}
	if _, err := s.store.Update(ctx, store.CollectionInventory, entry.ID, changes); err != nil {
		return fmt.Errorf("failed to update inventory entry: %w", err)
	}

	product, warehouse := s.describePair(ctx, warehouseID, productID)
	s.history.Record(ctx, models.EntityKindInventory, models.EventActionUpdated, pairID(warehouseID, productID), "",
		fmt.Sprintf("Stock of '%s' in warehouse '%s' set to %d.", product, warehouse, quantity))
	return nil
}

// RemoveEntry deletes the entry for a pair entirely.
func (s *InventoryService) RemoveEntry(ctx context.Context, warehouseID, productID string) error {
	entry, err := s.requireEntry(ctx, warehouseID, productID)
	if err != nil {
		return err
	}

	if _, err := s.store.Delete(ctx, store.CollectionInventory, entry.ID); err != nil {
		return fmt.Errorf("failed to delete inventory entry: %w", err)
	}

	product, warehouse := s.describePair(ctx, warehouseID, productID)
	s.history.Record(ctx, models.EntityKindInventory, models.EventActionDeleted, pairID(warehouseID, productID), "",
		fmt.Sprintf("Stock entry of '%s' in warehouse '%s' removed.", product, warehouse))
	return nil
}

// Withdraw books units out of a warehouse by a relative delta. When the
// remaining quantity reaches zero the entry is deleted.
func (s *InventoryService) Withdraw(ctx context.Context, warehouseID, productID string, quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity to withdraw must be a positive integer")
	}

	entry, err := s.requireEntry(ctx, warehouseID, productID)
	if err != nil {
		return err
	}
	if quantity > entry.Quantity {
		return NewValidationError("insufficient stock: available %d, requested %d", entry.Quantity, quantity)
	}

	remaining := entry.Quantity - quantity
	if remaining > 0 {
		changes := map[string]interface{}{"quantity": remaining}
		if _, err := s.store.Update(ctx, store.CollectionInventory, entry.ID, changes); err != nil {
			return fmt.Errorf("failed to update inventory entry: %w", err)
		}
	} else {
		if _, err := s.store.Delete(ctx, store.CollectionInventory, entry.ID); err != nil {
			return fmt.Errorf("failed to delete inventory entry: %w", err)
		}
	}

	product, warehouse := s.describePair(ctx, warehouseID, productID)
	s.history.Record(ctx, models.EntityKindInventory, models.EventActionUpdated, pairID(warehouseID, productID), "",
		fmt.Sprintf("Withdrew %dx '%s' from warehouse '%s' (remaining: %d).", quantity, product, warehouse, remaining))
	return nil
}

// MoveStock transfers units of a product between two warehouses. The source
// entry is decremented or deleted, the destination entry incremented or
// created. Both halves are validated before the first write so the common
// failure modes leave the ledger untouched.
func (s *InventoryService) MoveStock(ctx context.Context, productID, fromWarehouseID, toWarehouseID string, quantity int) error {
	if quantity <= 0 {
		return NewValidationError("quantity to move must be a positive integer")
	}

	source, err := s.requireWarehouse(ctx, fromWarehouseID)
	if err != nil {
		return err
	}
	target, err := s.requireWarehouse(ctx, toWarehouseID)
	if err != nil {
		return err
	}
	product, err := s.requireProduct(ctx, productID)
	if err != nil {
		return err
	}

	entry, err := s.requireEntry(ctx, fromWarehouseID, productID)
	if err != nil {
		return err
	}
	if quantity > entry.Quantity {
		return NewValidationError("cannot move more units than are stocked: available %d, requested %d",
			entry.Quantity, quantity)
	}

	remaining := entry.Quantity - quantity
	if remaining > 0 {
		changes := map[string]interface{}{"quantity": remaining}
		if _, err := s.store.Update(ctx, store.CollectionInventory, entry.ID, changes); err != nil {
			return fmt.Errorf("failed to update source inventory entry: %w", err)
		}
	} else {
		if _, err := s.store.Delete(ctx, store.CollectionInventory, entry.ID); err != nil {
			return fmt.Errorf("failed to delete source inventory entry: %w", err)
		}
	}

	targetEntry, err := s.store.FindInventoryEntry(ctx, toWarehouseID, productID)
	if err != nil {
		return fmt.Errorf("failed to look up target inventory entry: %w", err)
	}
	if targetEntry != nil {
		changes := map[string]interface{}{"quantity": targetEntry.Quantity + quantity}
		if _, err := s.store.Update(ctx, store.CollectionInventory, targetEntry.ID, changes); err != nil {
			return fmt.Errorf("failed to update target inventory entry: %w", err)
		}
	} else {
		newEntry := models.InventoryEntry{
			WarehouseID: toWarehouseID,
			ProductID:   productID,
			Quantity:    quantity,
		}
		if _, err := s.store.Insert(ctx, store.CollectionInventory, newEntry); err != nil {
			return fmt.Errorf("failed to create target inventory entry: %w", err)
		}
	}

	s.history.Record(ctx, models.EntityKindInventory, models.EventActionMoved, productID, "",
		fmt.Sprintf("Moved %dx '%s' from warehouse '%s' to '%s'.", quantity, product.Name, source.Name, target.Name))
	return nil
}

// List returns every entry of a warehouse, enriched with the referenced
// product's name and description. Ordering is incidental; reports apply
// their own sort.
func (s *InventoryService) List(ctx context.Context, warehouseID string) ([]models.StockedProduct, error) {
	if _, err := s.requireWarehouse(ctx, warehouseID); err != nil {
		return nil, err
	}

	entries, err := s.store.FindInventoryByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("failed to read warehouse inventory: %w", err)
	}

	result := make([]models.StockedProduct, 0, len(entries))
	for _, entry := range entries {
		row := models.StockedProduct{
			EntryID:     entry.ID,
			WarehouseID: warehouseID,
			ProductID:   entry.ProductID,
			ProductName: "?",
			Quantity:    entry.Quantity,
		}

		var product models.Product
		found, err := s.store.FindByID(ctx, store.CollectionProducts, entry.ProductID, &product)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch product for inventory entry: %w", err)
		}
		if found {
			row.ProductName = product.Name
			row.ProductDescription = product.Description
		}
		result = append(result, row)
	}
	return result, nil
}

func (s *InventoryService) requireParents(ctx context.Context, warehouseID, productID string) (*models.Warehouse, *models.Product, error) {
	warehouse, err := s.requireWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, nil, err
	}
	product, err := s.requireProduct(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	return warehouse, product, nil
}

func (s *InventoryService) requireWarehouse(ctx context.Context, id string) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	found, err := s.store.FindByID(ctx, store.CollectionWarehouses, id, &warehouse)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch warehouse: %w", err)
	}
	if !found {
		return nil, NewNotFoundError("warehouse '%s' not found", id)
	}
	return &warehouse, nil
}

func (s *InventoryService) requireProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	found, err := s.store.FindByID(ctx, store.CollectionProducts, id, &product)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	if !found {
		return nil, NewNotFoundError("product '%s' not found", id)
	}
	return &product, nil
}

func (s *InventoryService) requireEntry(ctx context.Context, warehouseID, productID string) (*models.InventoryEntry, error) {
	entry, err := s.store.FindInventoryEntry(ctx, warehouseID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up inventory entry: %w", err)
	}
	if entry == nil {
		return nil, NewNotFoundError("no inventory entry for warehouse '%s' / product '%s'", warehouseID, productID)
	}
	return entry, nil
}

// describePair resolves display names for event summaries; lookups are
// best-effort and fall back to the raw IDs.
func (s *InventoryService) describePair(ctx context.Context, warehouseID, productID string) (productName, warehouseName string) {
	productName, warehouseName = productID, warehouseID

	var product models.Product
	if found, err := s.store.FindByID(ctx, store.CollectionProducts, productID, &product); err == nil && found {
		productName = product.Name
	}
	var warehouse models.Warehouse
	if found, err := s.store.FindByID(ctx, store.CollectionWarehouses, warehouseID, &warehouse); err == nil && found {
		warehouseName = warehouse.Name
	}
	return productName, warehouseName
}

func pairID(warehouseID, productID string) string {
	return warehouseID + ":" + productID
}
