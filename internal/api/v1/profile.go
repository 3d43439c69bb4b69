package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Profile is a participant that events can be attached to.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateProfileRequest is the POST /profiles body.
type CreateProfileRequest struct {
	Name string `json:"name"`
}

// Normalize trims the requested name and ensures it is not blank.
func (r *CreateProfileRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	return nil
}

// ProfileSummary aggregates the events attached to one profile.
// TotalHours is the summed event duration rounded to two decimal places.
type ProfileSummary struct {
	Profile    ProfileRef      `json:"profile"`
	EventCount int             `json:"eventCount"`
	TotalHours decimal.Decimal `json:"totalHours"`
}
