package profiles

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	"github.com/horizon-lab/project-horizon/internal/core/scheduling"
	"github.com/horizon-lab/project-horizon/internal/core/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrMissingName is returned when a profile name is blank after trimming.
	ErrMissingName = errors.New("profile name is required")

	// ErrDuplicateProfile is returned when the trimmed name is already registered.
	ErrDuplicateProfile = errors.New("profile already exists")
)

var hourDivisor = decimal.NewFromInt(int64(time.Hour))

// Service is the profile directory: a uniqueness-checked name registry.
type Service struct {
	profiles         storage.ProfileStore
	events           storage.EventStore
	maxBodySizeBytes int
	nowFn            scheduling.Clock
	newID            func() string
}

func NewService(profiles storage.ProfileStore, events storage.EventStore, maxBodySizeMB int) *Service {
	if profiles == nil {
		panic("profiles: profile store must not be nil")
	}
	if events == nil {
		panic("profiles: event store must not be nil")
	}
	if maxBodySizeMB <= 0 {
		maxBodySizeMB = 1
	}
	return &Service{
		profiles:         profiles,
		events:           events,
		maxBodySizeBytes: maxBodySizeMB * 1024 * 1024,
		nowFn:            scheduling.SystemClock,
		newID:            uuid.NewString,
	}
}

// RegisterRoutes registers the profile routes.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/profiles", s.ListHandler)
	r.POST("/profiles", s.CreateHandler)
	r.GET("/profiles/:id", s.GetHandler)
	r.GET("/profiles/:id/summary", s.SummaryHandler)
}

// Create registers a new profile under the trimmed name.
func (s *Service) Create(ctx context.Context, req v1.CreateProfileRequest) (*v1.Profile, error) {
	if err := req.Normalize(); err != nil {
		return nil, ErrMissingName
	}

	_, err := s.profiles.FindProfileByName(ctx, req.Name)
	switch {
	case err == nil:
		return nil, ErrDuplicateProfile
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("failed to check profile name: %w", err)
	}

	profile := &v1.Profile{
		ID:        s.newID(),
		Name:      req.Name,
		CreatedAt: s.nowFn(),
	}

	// The lookup above and this insert are not atomic; the store's unique
	// constraint catches the loser of a concurrent registration.
	if err := s.profiles.CreateProfile(ctx, profile); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, ErrDuplicateProfile
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	slog.Info("Profile created", "profile_id", profile.ID, "name", profile.Name)
	return profile, nil
}

func (s *Service) Get(ctx context.Context, id string) (*v1.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}
	return profile, nil
}

// List returns every profile sorted by name.
func (s *Service) List(ctx context.Context) ([]v1.Profile, error) {
	profiles, err := s.profiles.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if profiles == nil {
		profiles = []v1.Profile{}
	}
	return profiles, nil
}

// Summary counts the events attached to a profile and sums their durations.
func (s *Service) Summary(ctx context.Context, id string) (*v1.ProfileSummary, error) {
	profile, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := s.events.ListEventsByProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for profile %s: %w", id, err)
	}

	total := decimal.Zero
	for _, evt := range events {
		d := evt.EndDate.Sub(evt.StartDate)
		total = total.Add(decimal.NewFromInt(int64(d)))
	}

	return &v1.ProfileSummary{
		Profile:    v1.ProfileRef{ID: profile.ID, Name: profile.Name},
		EventCount: len(events),
		TotalHours: total.Div(hourDivisor).Round(2),
	}, nil
}

// SetClock overrides the creation timestamp source.
func (s *Service) SetClock(now func() time.Time) {
	s.nowFn = now
}
