package postgres

import (
	"encoding/json"
	"fmt"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
	"github.com/lib/pq"
)

// marshalLogs encodes the change log as a JSON array.
// A nil log is stored as [] so the column never holds JSON null.
func marshalLogs(logs []v1.LogEntry) ([]byte, error) {
	if logs == nil {
		logs = []v1.LogEntry{}
	}
	data, err := json.Marshal(logs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal logs: %w", err)
	}
	return data, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEventRow scans a database row into an Event struct.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEventRow(row scanner) (*v1.Event, error) {
	var evt v1.Event
	var profileIDs pq.StringArray
	var logsJSON []byte

	err := row.Scan(
		&evt.ID,
		&profileIDs,
		&evt.Timezone,
		&evt.StartDate,
		&evt.EndDate,
		&evt.CreatedAt,
		&evt.UpdatedAt,
		&logsJSON,
	)
	if err != nil {
		return nil, err
	}

	evt.Profiles = []string(profileIDs)
	evt.Logs = []v1.LogEntry{}
	if len(logsJSON) > 0 {
		if err := json.Unmarshal(logsJSON, &evt.Logs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal logs: %w", err)
		}
	}

	return &evt, nil
}

func scanProfileRow(row scanner) (*v1.Profile, error) {
	var p v1.Profile
	if err := row.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
