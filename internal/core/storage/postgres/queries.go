package postgres

// SQL for the events table. Profile ids live in a TEXT[] column and the
// change log in a JSONB array, so one row is one complete event document.

const (
	eventColumns = `
			id, profile_ids, timezone, start_date, end_date,
			created_at, updated_at, logs`

	// querySaveEvent upserts on id. created_at is never overwritten once set.
	querySaveEvent = `
		INSERT INTO events (
			id, profile_ids, timezone, start_date, end_date,
			created_at, updated_at, logs
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			profile_ids = EXCLUDED.profile_ids,
			timezone    = EXCLUDED.timezone,
			start_date  = EXCLUDED.start_date,
			end_date    = EXCLUDED.end_date,
			updated_at  = EXCLUDED.updated_at,
			logs        = EXCLUDED.logs
	`

	queryGetEvent = `
		SELECT` + eventColumns + `
		FROM events
		WHERE id = $1
	`

	queryListEvents = `
		SELECT` + eventColumns + `
		FROM events
		ORDER BY start_date DESC, id ASC
	`

	// queryListEventsByProfile is served by the GIN index on profile_ids.
	queryListEventsByProfile = `
		SELECT` + eventColumns + `
		FROM events
		WHERE profile_ids @> ARRAY[$1]::TEXT[]
		ORDER BY start_date DESC, id ASC
	`
)

// SQL for the profiles table.
const (
	profileColumns = `id, name, created_at`

	// queryCreateProfile relies on the unique name index; a conflict returns
	// no row (sql.ErrNoRows) and maps to storage.ErrDuplicate.
	queryCreateProfile = `
		INSERT INTO profiles (id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`

	queryGetProfile = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	queryFindProfileByName = `SELECT ` + profileColumns + ` FROM profiles WHERE name = $1`

	queryFindProfilesByIDs = `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = ANY($1)
		ORDER BY created_at ASC, id ASC
	`

	queryListProfiles = `
		SELECT ` + profileColumns + `
		FROM profiles
		ORDER BY name ASC
	`
)
