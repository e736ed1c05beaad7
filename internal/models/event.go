// internal/models/event.go
package models

import "time"

// Event is an append-only history record of a mutation. Events are never
// updated or deleted by the application.
type Event struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Timestamp   time.Time   `json:"timestamp" bson:"timestamp"`
	EntityKind  EntityKind  `json:"entity_kind" bson:"entity_kind"`
	Action      EventAction `json:"action" bson:"action"`
	EntityID    string      `json:"entity_id" bson:"entity_id"`
	PerformedBy string      `json:"performed_by" bson:"performed_by"`
	Summary     string      `json:"summary" bson:"summary"`
}
