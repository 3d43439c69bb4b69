package storage

import (
	"context"
	"errors"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
)

var (
	// ErrNotFound is returned when a record with the requested id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a profile with the same name already exists.
	ErrDuplicate = errors.New("record already exists")
)

// EventStore persists events together with their change logs.
//
// There is no optimistic locking: SaveEvent overwrites whatever is stored
// under the id, so two concurrent updates race and the last write wins.
type EventStore interface {
	// GetEvent returns ErrNotFound when id does not exist.
	GetEvent(ctx context.Context, id string) (*v1.Event, error)

	// SaveEvent inserts or fully replaces the event under event.ID.
	SaveEvent(ctx context.Context, event *v1.Event) error

	// ListEvents returns all events ordered by start date, latest first.
	ListEvents(ctx context.Context) ([]*v1.Event, error)

	// ListEventsByProfile returns the events attached to profileID, latest start first.
	ListEventsByProfile(ctx context.Context, profileID string) ([]*v1.Event, error)
}

// ProfileStore persists the profile directory.
type ProfileStore interface {
	// CreateProfile returns ErrDuplicate if the name is already taken.
	CreateProfile(ctx context.Context, profile *v1.Profile) error

	// GetProfile returns ErrNotFound when id does not exist.
	GetProfile(ctx context.Context, id string) (*v1.Profile, error)

	// FindProfileByName matches the name exactly (case-sensitive).
	// Returns ErrNotFound when no profile has that name.
	FindProfileByName(ctx context.Context, name string) (*v1.Profile, error)

	// FindProfilesByIDs returns the existing profiles among ids, one per
	// distinct id, ordered by creation time.
	FindProfilesByIDs(ctx context.Context, ids []string) ([]v1.Profile, error)

	// ListProfiles returns all profiles ordered by name ascending.
	ListProfiles(ctx context.Context) ([]v1.Profile, error)
}
