package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	"github.com/horizon-lab/project-horizon/internal/core/storage"
	"github.com/lib/pq"
)

// ProfileAdapter implements storage.ProfileStore on the shared connection.
type ProfileAdapter struct {
	db *sql.DB
}

func NewProfileAdapter(db *sql.DB) *ProfileAdapter {
	return &ProfileAdapter{db: db}
}

// CreateProfile inserts a profile. Returns storage.ErrDuplicate when the
// name is already registered.
func (a *ProfileAdapter) CreateProfile(ctx context.Context, profile *v1.Profile) error {
	var id string
	err := a.db.QueryRowContext(ctx, queryCreateProfile,
		profile.ID,
		profile.Name,
		profile.CreatedAt,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	slog.Debug("[Postgres] Created profile", "profile_id", id, "name", profile.Name)
	return nil
}

func (a *ProfileAdapter) GetProfile(ctx context.Context, id string) (*v1.Profile, error) {
	return a.queryOne(ctx, queryGetProfile, id)
}

func (a *ProfileAdapter) FindProfileByName(ctx context.Context, name string) (*v1.Profile, error) {
	return a.queryOne(ctx, queryFindProfileByName, name)
}

// FindProfilesByIDs returns the existing profiles among ids in creation order.
func (a *ProfileAdapter) FindProfilesByIDs(ctx context.Context, ids []string) ([]v1.Profile, error) {
	if len(ids) == 0 {
		return []v1.Profile{}, nil
	}

	rows, err := a.db.QueryContext(ctx, queryFindProfilesByIDs, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles by id: %w", err)
	}
	return collectProfiles(rows)
}

// ListProfiles returns all profiles sorted by name.
func (a *ProfileAdapter) ListProfiles(ctx context.Context) ([]v1.Profile, error) {
	rows, err := a.db.QueryContext(ctx, queryListProfiles)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	return collectProfiles(rows)
}

func (a *ProfileAdapter) queryOne(ctx context.Context, query string, arg string) (*v1.Profile, error) {
	p, err := scanProfileRow(a.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func collectProfiles(rows *sql.Rows) ([]v1.Profile, error) {
	defer rows.Close()

	profiles := make([]v1.Profile, 0)
	for rows.Next() {
		p, err := scanProfileRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profiles: %w", err)
	}

	return profiles, nil
}
