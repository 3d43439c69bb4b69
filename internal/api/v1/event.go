package v1

import (
	"time"
)

// Event is a scheduled time span shared by one or more profiles.
//
// StartDate and EndDate are absolute instants. Timezone is the IANA zone the
// event was entered in; it is kept for display and audit messages only and
// never shifts the stored instants.
type Event struct {
	ID string `json:"id"`

	// Profiles holds the ids of the attached profiles. At least one is required.
	Profiles []string `json:"profiles"`

	Timezone  string    `json:"timezone"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	// CreatedAt is set once on creation.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is reset whenever an update changes at least one field.
	UpdatedAt time.Time `json:"updatedAt"`

	// Logs is the append-only change history, oldest first.
	Logs []LogEntry `json:"logs"`
}

// LogEntry is one human-readable line of an event's change history.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Change    string    `json:"change"`
}

// Clone returns a deep copy so callers can stage changes without touching the original.
func (e Event) Clone() Event {
	out := e
	out.Profiles = append([]string(nil), e.Profiles...)
	out.Logs = append([]LogEntry(nil), e.Logs...)
	return out
}

// HasProfile reports whether the event is attached to the given profile id.
func (e Event) HasProfile(profileID string) bool {
	for _, id := range e.Profiles {
		if id == profileID {
			return true
		}
	}
	return false
}

// CreateEventRequest is the POST /events body.
// Date fields are pointers so an omitted value can be told apart from the zero instant.
type CreateEventRequest struct {
	Profiles  []string   `json:"profiles"`
	Timezone  string     `json:"timezone"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// UpdateEventRequest is the PUT /events/:id body. Every field is optional;
// nil means "leave unchanged".
type UpdateEventRequest struct {
	Profiles  []string   `json:"profiles"`
	Timezone  *string    `json:"timezone"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

// HasProfiles reports whether the payload carried a profiles field at all.
// A JSON null or a missing key leaves Profiles nil; an explicit [] does not.
func (r UpdateEventRequest) HasProfiles() bool {
	return r.Profiles != nil
}

// TimezoneValue returns the requested timezone and whether one was supplied.
// An empty string counts as absent.
func (r UpdateEventRequest) TimezoneValue() (string, bool) {
	if r.Timezone == nil || *r.Timezone == "" {
		return "", false
	}
	return *r.Timezone, true
}

// ProfileRef is the resolved form of a profile reference in responses.
type ProfileRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventView is an Event as returned to clients, with profile ids resolved to names.
type EventView struct {
	ID        string       `json:"id"`
	Profiles  []ProfileRef `json:"profiles"`
	Timezone  string       `json:"timezone"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
	Logs      []LogEntry   `json:"logs"`
}

// NewEventView resolves the event's profile ids against the given profiles.
// Ids without a matching profile are dropped.
func NewEventView(evt Event, profiles []Profile) *EventView {
	byID := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	refs := make([]ProfileRef, 0, len(evt.Profiles))
	for _, id := range evt.Profiles {
		if p, ok := byID[id]; ok {
			refs = append(refs, ProfileRef{ID: p.ID, Name: p.Name})
		}
	}

	logs := evt.Logs
	if logs == nil {
		logs = []LogEntry{}
	}

	return &EventView{
		ID:        evt.ID,
		Profiles:  refs,
		Timezone:  evt.Timezone,
		StartDate: evt.StartDate,
		EndDate:   evt.EndDate,
		CreatedAt: evt.CreatedAt,
		UpdatedAt: evt.UpdatedAt,
		Logs:      logs,
	}
}
