// internal/models/product.go
package models

// Attribute is a user-defined key/value pair attached to a product. The value
// is tagged with its type so domain fields and custom fields never collapse
// into one untyped structure. Keys are unique per product and the slice keeps
// its insertion order.
type Attribute struct {
	Key     string        `json:"key" bson:"key"`
	Type    AttributeType `json:"type" bson:"type"`
	Text    string        `json:"text,omitempty" bson:"text,omitempty"`
	Number  float64       `json:"number,omitempty" bson:"number,omitempty"`
	Boolean bool          `json:"boolean,omitempty" bson:"boolean,omitempty"`
}

type Product struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Weight      float64     `json:"weight" bson:"weight"`
	Price       float64     `json:"price" bson:"price"`
	Currency    string      `json:"currency" bson:"currency"`
	Supplier    string      `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Attributes  []Attribute `json:"attributes,omitempty" bson:"attributes,omitempty"`
}
