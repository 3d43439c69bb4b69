package v1

import (
	"encoding/json"
	"testing"
	"time"
)

func TestEvent_Clone(t *testing.T) {
	now := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	orig := Event{
		ID:       "evt_1",
		Profiles: []string{"p1", "p2"},
		Logs:     []LogEntry{{Timestamp: now, Change: "Start date/time updated"}},
	}

	clone := orig.Clone()
	clone.Profiles[0] = "changed"
	clone.Logs[0].Change = "changed"
	clone.Logs = append(clone.Logs, LogEntry{Change: "extra"})

	if orig.Profiles[0] != "p1" {
		t.Errorf("Profiles aliased: got %q", orig.Profiles[0])
	}
	if orig.Logs[0].Change != "Start date/time updated" {
		t.Errorf("Logs aliased: got %q", orig.Logs[0].Change)
	}
	if len(orig.Logs) != 1 {
		t.Errorf("Logs length changed to %d", len(orig.Logs))
	}
}

func TestEvent_HasProfile(t *testing.T) {
	e := Event{Profiles: []string{"p1", "p2"}}

	if !e.HasProfile("p2") {
		t.Error("expected p2 to be attached")
	}
	if e.HasProfile("p3") {
		t.Error("p3 should not be attached")
	}
}

func TestUpdateEventRequest_PresenceSemantics(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantProfiles bool
		wantTZ       string
		wantTZOK     bool
	}{
		{name: "empty body", body: `{}`},
		{name: "null profiles", body: `{"profiles": null}`},
		{name: "explicit empty profiles", body: `{"profiles": []}`, wantProfiles: true},
		{name: "profiles set", body: `{"profiles": ["p1"]}`, wantProfiles: true},
		{name: "empty timezone is absent", body: `{"timezone": ""}`},
		{name: "timezone kept verbatim", body: `{"timezone": "Europe/London"}`, wantTZ: "Europe/London", wantTZOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateEventRequest
			if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if got := req.HasProfiles(); got != tt.wantProfiles {
				t.Errorf("HasProfiles() = %v, want %v", got, tt.wantProfiles)
			}
			tz, ok := req.TimezoneValue()
			if tz != tt.wantTZ || ok != tt.wantTZOK {
				t.Errorf("TimezoneValue() = (%q, %v), want (%q, %v)", tz, ok, tt.wantTZ, tt.wantTZOK)
			}
		})
	}
}

func TestNewEventView(t *testing.T) {
	start := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	evt := Event{
		ID:        "evt_1",
		Profiles:  []string{"p2", "gone", "p1"},
		Timezone:  "America/New_York",
		StartDate: start,
		EndDate:   start.Add(time.Hour),
	}
	profiles := []Profile{{ID: "p1", Name: "Alice"}, {ID: "p2", Name: "Bob"}}

	view := NewEventView(evt, profiles)

	if len(view.Profiles) != 2 {
		t.Fatalf("expected 2 resolved profiles, got %d", len(view.Profiles))
	}
	if view.Profiles[0].Name != "Bob" || view.Profiles[1].Name != "Alice" {
		t.Errorf("profiles not in event order: %+v", view.Profiles)
	}
	if view.Logs == nil {
		t.Error("Logs should be an empty slice, not nil")
	}

	data, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "profiles", "timezone", "startDate", "endDate", "createdAt", "updatedAt", "logs"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing JSON key %q", key)
		}
	}
	if raw["startDate"] != "2024-01-01T14:00:00Z" {
		t.Errorf("startDate = %v", raw["startDate"])
	}
}

func TestCreateProfileRequest_Normalize(t *testing.T) {
	req := CreateProfileRequest{Name: "  Alice  "}
	if err := req.Normalize(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Alice" {
		t.Errorf("Name = %q, want %q", req.Name, "Alice")
	}

	blank := CreateProfileRequest{Name: "   "}
	if err := blank.Normalize(); err == nil {
		t.Error("expected error for blank name")
	}
}
