package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	"github.com/horizon-lab/project-horizon/internal/core/scheduling"
	"github.com/horizon-lab/project-horizon/internal/core/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Service creates and updates events and serves event reads.
//
// Each mutation runs validate, diff, append, persist in sequence within the
// calling request. Nothing serializes two requests for the same event: the
// last SaveEvent to land wins and the other request's log entries are lost.
type Service struct {
	events           storage.EventStore
	profiles         storage.ProfileStore
	maxBodySizeBytes int
	nowFn            scheduling.Clock
	newID            func() string
}

func NewService(events storage.EventStore, profiles storage.ProfileStore, maxBodySizeMB int) *Service {
	if events == nil {
		panic("events: event store must not be nil")
	}
	if profiles == nil {
		panic("events: profile store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1 // default to 1MB
	}
	return &Service{
		events:           events,
		profiles:         profiles,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            scheduling.SystemClock,
		newID:            uuid.NewString,
	}
}

// RegisterRoutes registers the event routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/events", s.ListHandler)
	r.POST("/events", s.CreateHandler)
	r.GET("/events/profile/:profileId", s.ListByProfileHandler)
	r.GET("/events/:id", s.GetHandler)
	r.PUT("/events/:id", s.UpdateHandler)
	r.GET("/events/:id/logs", s.LogsHandler)
}

// Create validates and stores a new event with an empty log.
func (s *Service) Create(ctx context.Context, req v1.CreateEventRequest) (*v1.EventView, error) {
	profiles, err := scheduling.Validate(ctx, scheduling.Proposal{
		ProfileIDs: req.Profiles,
		Timezone:   req.Timezone,
		Start:      req.StartDate,
		End:        req.EndDate,
	}, s.profiles)
	if err != nil {
		return nil, err
	}

	now := s.nowFn()
	evt := &v1.Event{
		ID:        s.newID(),
		Profiles:  scheduling.DistinctIDs(req.Profiles),
		Timezone:  req.Timezone,
		StartDate: *req.StartDate,
		EndDate:   *req.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
		Logs:      []v1.LogEntry{},
	}

	if err := s.events.SaveEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("failed to persist event: %w", err)
	}

	slog.Info("Event created",
		"event_id", evt.ID,
		"profiles", len(evt.Profiles),
		"timezone", evt.Timezone)

	return v1.NewEventView(*evt, profiles), nil
}

// Update applies a partial update and appends one log entry per changed field.
//
// updatedAt moves only when something changed, but the event is written
// once either way. Any validation failure returns before the write.
func (s *Service) Update(ctx context.Context, id string, patch v1.UpdateEventRequest) (*v1.EventView, error) {
	current, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}

	cs, err := scheduling.DetectChanges(ctx, *current, patch, s.profiles, s.nowFn)
	if err != nil {
		return nil, err
	}

	next := cs.Event
	next.Logs = scheduling.NewAuditLog(current.Logs).Append(cs.Entries...).Entries()
	if cs.ChangesMade {
		next.UpdatedAt = s.nowFn()
	}

	profiles := cs.Profiles
	if profiles == nil {
		profiles, err = s.profiles.FindProfilesByIDs(ctx, next.Profiles)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve profiles: %w", err)
		}
	}

	if err := s.events.SaveEvent(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to persist event: %w", err)
	}

	slog.Info("Event updated",
		"event_id", next.ID,
		"changes", len(cs.Entries),
		"log_length", len(next.Logs))

	return v1.NewEventView(next, profiles), nil
}

// Get returns one event with resolved profile names.
func (s *Service) Get(ctx context.Context, id string) (*v1.EventView, error) {
	evt, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}
	views, err := s.resolveViews(ctx, []*v1.Event{evt})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// List returns every event, latest start first.
func (s *Service) List(ctx context.Context) ([]*v1.EventView, error) {
	evts, err := s.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return s.resolveViews(ctx, evts)
}

// ListByProfile returns the events a profile is attached to, latest start first.
func (s *Service) ListByProfile(ctx context.Context, profileID string) ([]*v1.EventView, error) {
	evts, err := s.events.ListEventsByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for profile %s: %w", profileID, err)
	}
	return s.resolveViews(ctx, evts)
}

// Logs returns an event's change history, oldest first.
func (s *Service) Logs(ctx context.Context, id string) ([]v1.LogEntry, error) {
	evt, err := s.events.GetEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load event %s: %w", id, err)
	}
	return scheduling.NewAuditLog(evt.Logs).Entries(), nil
}

// resolveViews looks up every referenced profile with a single query.
func (s *Service) resolveViews(ctx context.Context, evts []*v1.Event) ([]*v1.EventView, error) {
	var ids []string
	for _, evt := range evts {
		ids = append(ids, evt.Profiles...)
	}

	var profiles []v1.Profile
	if len(ids) > 0 {
		found, err := s.profiles.FindProfilesByIDs(ctx, scheduling.DistinctIDs(ids))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve profiles: %w", err)
		}
		profiles = found
	}

	views := make([]*v1.EventView, len(evts))
	for i, evt := range evts {
		views[i] = v1.NewEventView(*evt, profiles)
	}
	return views, nil
}

// SetClock replaces the time source. Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.nowFn = now
}
