// internal/store/store.go
package store

import (
	"context"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
)

// Collection names used by the application.
const (
	CollectionProducts   = "products"
	CollectionWarehouses = "warehouses"
	CollectionInventory  = "inventory"
	CollectionEvents     = "events"
)

// Store is the persistence boundary for all services. Documents are keyed by
// collection name and an opaque string identifier assigned on insert.
//
// Implementations provide single-document atomicity only; composite
// operations built on top of this interface (stock moves, cascading deletes)
// are sequential best-effort writes with no rollback.
type Store interface {
	// Insert stores a document and returns its generated identifier.
	Insert(ctx context.Context, collection string, doc interface{}) (string, error)
	// FindByID decodes the document with the given ID into out. The boolean
	// reports whether a document was found; an unknown or malformed ID is
	// "not found", not an error.
	FindByID(ctx context.Context, collection, id string, out interface{}) (bool, error)
	// FindAll decodes every document in the collection into out, which must
	// be a pointer to a slice. Ordering is incidental.
	FindAll(ctx context.Context, collection string, out interface{}) error
	// Update applies a partial field update to the document with the given
	// ID. Fields not named in changes are left untouched. The boolean
	// reports whether a document was matched.
	Update(ctx context.Context, collection, id string, changes map[string]interface{}) (bool, error)
	// Delete removes a single document. The boolean reports whether a
	// document was deleted.
	Delete(ctx context.Context, collection, id string) (bool, error)

	// FindInventoryByWarehouse returns all inventory entries for a warehouse.
	FindInventoryByWarehouse(ctx context.Context, warehouseID string) ([]models.InventoryEntry, error)
	// FindInventoryEntry returns the entry for a (warehouse, product) pair,
	// or nil when no entry exists.
	FindInventoryEntry(ctx context.Context, warehouseID, productID string) (*models.InventoryEntry, error)
	// DeleteInventoryByWarehouse removes every inventory entry referencing
	// the warehouse and returns the number of entries removed.
	DeleteInventoryByWarehouse(ctx context.Context, warehouseID string) (int64, error)
	// DeleteInventoryByProduct removes every inventory entry referencing the
	// product and returns the number of entries removed.
	DeleteInventoryByProduct(ctx context.Context, productID string) (int64, error)

	// FindWarehouseByName returns the warehouse with the given name, or nil
	// when none exists.
	FindWarehouseByName(ctx context.Context, name string) (*models.Warehouse, error)

	// FindEventsNewestFirst returns all history events ordered by timestamp
	// descending.
	FindEventsNewestFirst(ctx context.Context) ([]models.Event, error)
}
