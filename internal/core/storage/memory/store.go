package memory

import (
	"context"
	"sort"
	"sync"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	"github.com/horizon-lab/project-horizon/internal/core/storage"
)

// Store is an in-memory implementation of storage.EventStore and
// storage.ProfileStore. Useful for testing and development.
// Records are copied on the way in and on the way out.
type Store struct {
	mu       sync.RWMutex
	events   map[string]v1.Event
	profiles []v1.Profile // creation order
	byID     map[string]int
	byName   map[string]int
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		events: make(map[string]v1.Event),
		byID:   make(map[string]int),
		byName: make(map[string]int),
	}
}

func (s *Store) GetEvent(ctx context.Context, id string) (*v1.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	evt, ok := s.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := evt.Clone()
	return &out, nil
}

func (s *Store) SaveEvent(ctx context.Context, event *v1.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := event.Clone()
	if prev, ok := s.events[event.ID]; ok {
		stored.CreatedAt = prev.CreatedAt
	}
	s.events[event.ID] = stored
	return nil
}

func (s *Store) ListEvents(ctx context.Context) ([]*v1.Event, error) {
	return s.filterEvents(func(v1.Event) bool { return true }), nil
}

func (s *Store) ListEventsByProfile(ctx context.Context, profileID string) ([]*v1.Event, error) {
	return s.filterEvents(func(e v1.Event) bool { return e.HasProfile(profileID) }), nil
}

func (s *Store) filterEvents(keep func(v1.Event) bool) []*v1.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*v1.Event, 0, len(s.events))
	for _, evt := range s.events {
		if !keep(evt) {
			continue
		}
		c := evt.Clone()
		result = append(result, &c)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.After(result[j].StartDate)
		}
		return result[i].ID < result[j].ID
	})
	return result
}

func (s *Store) CreateProfile(ctx context.Context, profile *v1.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[profile.Name]; exists {
		return storage.ErrDuplicate
	}
	if _, exists := s.byID[profile.ID]; exists {
		return storage.ErrDuplicate
	}

	s.profiles = append(s.profiles, *profile)
	idx := len(s.profiles) - 1
	s.byID[profile.ID] = idx
	s.byName[profile.Name] = idx
	return nil
}

func (s *Store) GetProfile(ctx context.Context, id string) (*v1.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	p := s.profiles[idx]
	return &p, nil
}

func (s *Store) FindProfileByName(ctx context.Context, name string) (*v1.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byName[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	p := s.profiles[idx]
	return &p, nil
}

// FindProfilesByIDs returns matches in creation order, one per distinct id.
func (s *Store) FindProfilesByIDs(ctx context.Context, ids []string) ([]v1.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	result := make([]v1.Profile, 0, len(wanted))
	for _, p := range s.profiles {
		if _, ok := wanted[p.ID]; ok {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *Store) ListProfiles(ctx context.Context) ([]v1.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]v1.Profile, len(s.profiles))
	copy(result, s.profiles)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// Ping always succeeds; it lets the store stand in for a database in health checks.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}
