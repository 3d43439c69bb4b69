package scheduling

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
)

const (
	changeStartDate = "Start date/time updated"
	changeEndDate   = "End date/time updated"
	changeProfiles  = "Profiles changed to %s"
	changeTimezone  = "Timezone changed to %s"
)

// Clock returns the current instant. Tests substitute a deterministic one.
type Clock func() time.Time

// SystemClock is the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// ChangeSet is the outcome of diffing a stored event against an update payload.
type ChangeSet struct {
	// Event is a copy of the stored event with the new field values applied.
	// Its Logs are left as they were; appending Entries is the caller's job.
	Event v1.Event

	// Entries holds one log entry per changed field group, in detection order.
	Entries []v1.LogEntry

	// Profiles is set when the profile set changed, in resolver order.
	Profiles []v1.Profile

	ChangesMade bool
}

// DetectChanges compares the stored event with a partial update.
//
// Fields are checked in the order start, end, profiles, timezone, and every
// change is stamped with its own clock reading. The final start/end pair is
// validated last; on failure the whole ChangeSet is discarded and current is
// left untouched.
func DetectChanges(
	ctx context.Context,
	current v1.Event,
	patch v1.UpdateEventRequest,
	resolver ProfileResolver,
	now Clock,
) (*ChangeSet, error) {
	cs := &ChangeSet{Event: current.Clone()}

	if patch.StartDate != nil && !patch.StartDate.Equal(cs.Event.StartDate) {
		cs.record(now, changeStartDate)
		cs.Event.StartDate = *patch.StartDate
	}

	if patch.EndDate != nil && !patch.EndDate.Equal(cs.Event.EndDate) {
		cs.record(now, changeEndDate)
		cs.Event.EndDate = *patch.EndDate
	}

	if patch.HasProfiles() {
		next := DistinctIDs(patch.Profiles)
		if !sameIDSet(next, cs.Event.Profiles) {
			profiles, err := ResolveProfiles(ctx, next, resolver)
			if err != nil {
				return nil, err
			}
			cs.record(now, fmt.Sprintf(changeProfiles, joinNames(profiles)))
			cs.Event.Profiles = next
			cs.Profiles = profiles
		}
	}

	if tz, ok := patch.TimezoneValue(); ok && tz != cs.Event.Timezone {
		if err := ValidateTimezone(tz); err != nil {
			return nil, err
		}
		cs.record(now, fmt.Sprintf(changeTimezone, tz))
		cs.Event.Timezone = tz
	}

	if err := ValidateRange(cs.Event.StartDate, cs.Event.EndDate); err != nil {
		return nil, err
	}

	return cs, nil
}

func (cs *ChangeSet) record(now Clock, change string) {
	cs.Entries = append(cs.Entries, v1.LogEntry{Timestamp: now(), Change: change})
	cs.ChangesMade = true
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.Sort(sa)
	slices.Sort(sb)
	return slices.Equal(sa, sb)
}

func joinNames(profiles []v1.Profile) string {
	names := make([]string, len(profiles))
	for i, p := range profiles {
		names[i] = p.Name
	}
	return strings.Join(names, ", ")
}
