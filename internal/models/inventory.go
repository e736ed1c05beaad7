// internal/models/inventory.go
package models

// InventoryEntry is the junction record between a warehouse and a product.
// At most one entry exists per (warehouse, product) pair; an entry is deleted
// rather than left behind with quantity zero.
type InventoryEntry struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	WarehouseID string `json:"warehouse_id" bson:"warehouse_id"`
	ProductID   string `json:"product_id" bson:"product_id"`
	Quantity    int    `json:"quantity" bson:"quantity"`
}

// StockedProduct is an inventory entry enriched with the referenced product's
// descriptive fields, as returned by ledger listings and inventory reports.
type StockedProduct struct {
	EntryID            string `json:"entry_id"`
	WarehouseID        string `json:"warehouse_id"`
	ProductID          string `json:"product_id"`
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description"`
	Quantity           int    `json:"quantity"`
}
