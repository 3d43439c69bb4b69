package scheduling

import (
	"context"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without /usr/share/zoneinfo

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
)

// ProfileResolver looks up profiles by id. Implementations return one
// profile per distinct id that exists, in their natural (directory) order.
type ProfileResolver interface {
	FindProfilesByIDs(ctx context.Context, ids []string) ([]v1.Profile, error)
}

// Proposal is the candidate state of a new event.
type Proposal struct {
	ProfileIDs []string
	Timezone   string
	Start      *time.Time
	End        *time.Time
}

// Validate checks a proposed event and returns the resolved profiles.
//
// Checks run in a fixed order: profiles present, fields present, range,
// timezone, then profile existence. Only the existence check touches the
// resolver, so a malformed request never costs a store round trip.
func Validate(ctx context.Context, p Proposal, resolver ProfileResolver) ([]v1.Profile, error) {
	if len(p.ProfileIDs) == 0 {
		return nil, newValidationError(ErrMissingProfiles, msgMissingProfiles, nil)
	}

	if strings.TrimSpace(p.Timezone) == "" || p.Start == nil || p.End == nil {
		return nil, newValidationError(ErrMissingFields, msgMissingFields, missingFieldDetails(p))
	}

	if err := ValidateRange(*p.Start, *p.End); err != nil {
		return nil, err
	}

	if err := ValidateTimezone(p.Timezone); err != nil {
		return nil, err
	}

	return ResolveProfiles(ctx, p.ProfileIDs, resolver)
}

// ValidateRange enforces end > start. Equal instants are rejected.
func ValidateRange(start, end time.Time) error {
	if !end.After(start) {
		return newValidationError(ErrInvalidRange, msgInvalidRange, nil)
	}
	return nil
}

// ValidateTimezone accepts any zone name the tz database knows, except the
// process-local "Local" alias which has no meaning to other readers.
func ValidateTimezone(tz string) error {
	if tz == "Local" {
		return newValidationError(ErrInvalidTimezone, msgInvalidTimezone, map[string]interface{}{"timezone": tz})
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return newValidationError(ErrInvalidTimezone, msgInvalidTimezone, map[string]interface{}{"timezone": tz})
	}
	return nil
}

// ResolveProfiles de-duplicates ids and checks every one of them exists.
// Resolver failures are returned wrapped, not as validation errors.
func ResolveProfiles(ctx context.Context, ids []string, resolver ProfileResolver) ([]v1.Profile, error) {
	distinct := DistinctIDs(ids)
	if len(distinct) == 0 {
		return nil, newValidationError(ErrMissingProfiles, msgMissingProfiles, nil)
	}

	found, err := resolver.FindProfilesByIDs(ctx, distinct)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profiles: %w", err)
	}

	if len(found) != len(distinct) {
		return nil, newValidationError(ErrUnknownProfile, msgUnknownProfile, map[string]interface{}{
			"missing": missingIDs(distinct, found),
		})
	}

	return found, nil
}

// DistinctIDs drops blank and repeated ids, keeping first occurrences in order.
func DistinctIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(requested []string, found []v1.Profile) []string {
	have := make(map[string]struct{}, len(found))
	for _, p := range found {
		have[p.ID] = struct{}{}
	}
	var missing []string
	for _, id := range requested {
		if _, ok := have[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func missingFieldDetails(p Proposal) map[string]interface{} {
	var fields []string
	if strings.TrimSpace(p.Timezone) == "" {
		fields = append(fields, "timezone")
	}
	if p.Start == nil {
		fields = append(fields, "startDate")
	}
	if p.End == nil {
		fields = append(fields, "endDate")
	}
	return map[string]interface{}{"fields": fields}
}
