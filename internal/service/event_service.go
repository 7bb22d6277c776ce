package service

import (
	"context"

	"github.com/eventura/eventura-backend/internal/model"
	"github.com/eventura/eventura-backend/internal/response"
)

const topEventsLimit = 10

// EventService handles event listings.
type EventService struct {
	events EventStore
}

// NewEventService creates a new EventService.
func NewEventService(events EventStore) *EventService {
	return &EventService{events: events}
}

// List retrieves one page of events, newest first, optionally filtered by
// college. Events ignore caller sort preferences.
func (s *EventService) List(ctx context.Context, page, limit int, collegeID *int) ([]model.Event, *response.Pagination, error) {
	page, limit = clampPage(page, limit, DefaultPageSize)

	events, total, err := s.events.List(ctx, collegeID, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	return events, response.NewPagination(page, limit, total), nil
}

// Top retrieves the ten best-attended events.
func (s *EventService) Top(ctx context.Context) ([]model.Event, error) {
	return s.events.TopByParticipants(ctx, topEventsLimit)
}
