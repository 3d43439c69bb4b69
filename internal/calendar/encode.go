// Package calendar renders events as iCalendar (RFC 5545) documents.
package calendar

import (
	"fmt"
	"strings"

	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"

	ics "github.com/arran4/golang-ical"
)

const DefaultProductID = "-//Horizon//Event Scheduler//EN"

// Encode builds a PUBLISH calendar with one VEVENT per event.
//
// DTSTART and DTEND are written in UTC; the event's own timezone goes into
// the description so calendar clients keep the instants exact.
func Encode(productID string, events []*v1.EventView) *ics.Calendar {
	if productID == "" {
		productID = DefaultProductID
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	for _, evt := range events {
		addEvent(cal, evt)
	}
	return cal
}

func addEvent(cal *ics.Calendar, evt *v1.EventView) {
	vevent := cal.AddEvent(evt.ID)
	vevent.SetCreatedTime(evt.CreatedAt)
	vevent.SetDtStampTime(evt.UpdatedAt)
	vevent.SetModifiedAt(evt.UpdatedAt)
	vevent.SetStartAt(evt.StartDate)
	vevent.SetEndAt(evt.EndDate)
	vevent.SetSummary(summary(evt))
	vevent.SetDescription(fmt.Sprintf("Timezone: %s", evt.Timezone))
}

func summary(evt *v1.EventView) string {
	if len(evt.Profiles) == 0 {
		return "Event"
	}
	names := make([]string, len(evt.Profiles))
	for i, p := range evt.Profiles {
		names[i] = p.Name
	}
	return "Event with " + strings.Join(names, ", ")
}
