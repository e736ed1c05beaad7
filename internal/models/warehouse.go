// internal/models/warehouse.go
package models

// Warehouse describes a storage location. Capacity is the maximum total
// number of units the warehouse may hold across all products.
type Warehouse struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Address  string `json:"address" bson:"address"`
	Capacity int    `json:"capacity" bson:"capacity"`
}
