// internal/models/common.go
package models

// Enums shared across entities and the event history.

type EntityKind string

const (
	EntityKindProduct   EntityKind = "product"
	EntityKindWarehouse EntityKind = "warehouse"
	EntityKindInventory EntityKind = "inventory"
)

type EventAction string

const (
	EventActionCreated EventAction = "created"
	EventActionUpdated EventAction = "updated"
	EventActionDeleted EventAction = "deleted"
	EventActionMoved   EventAction = "moved"
)

type AttributeType string

const (
	AttributeTypeString  AttributeType = "string"
	AttributeTypeNumber  AttributeType = "number"
	AttributeTypeBoolean AttributeType = "boolean"
)

// DefaultCurrency is used when a product is created without an explicit currency.
const DefaultCurrency = "EUR"
