// internal/services/history_service.go
package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/models"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

// HistoryService appends mutation events to the append-only history log.
// Recording is best-effort: a failed history write is logged but never fails
// the business operation that triggered it.
type HistoryService struct {
	store store.Store
}

func NewHistoryService(st store.Store) *HistoryService {
	return &HistoryService{store: st}
}

// Record appends a history event. performedBy defaults to "system" when empty.
func (s *HistoryService) Record(ctx context.Context, kind models.EntityKind, action models.EventAction, entityID, performedBy, summary string) {
	if performedBy == "" {
		performedBy = "system"
	}

	event := models.Event{
		Timestamp:   time.Now().UTC(),
		EntityKind:  kind,
		Action:      action,
		EntityID:    entityID,
		PerformedBy: performedBy,
		Summary:     summary,
	}

	if _, err := s.store.Insert(ctx, store.CollectionEvents, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity_kind": kind,
			"action":      action,
			"entity_id":   entityID,
		}).Error("Failed to record history event")
	}
}

// List returns all recorded events, newest first.
func (s *HistoryService) List(ctx context.Context) ([]models.Event, error) {
	return s.store.FindEventsNewestFirst(ctx)
}
