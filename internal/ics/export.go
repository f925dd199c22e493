package ics

import (
	"eventCalendar/internal/models"
	"fmt"
	ical "github.com/arran4/golang-ical"
	"time"
)

const productID = "-//eventCalendar//Event Calendar//EN"

// PropertyKind carries the derived event kind, since iCalendar has no field
// for it.
const PropertyKind = ical.ComponentProperty("X-EVENT-KIND")

// UID is the iCalendar UID of a stored event.
func UID(id int) string {
	return fmt.Sprintf("event-%d@eventCalendar", id)
}

// Export renders events as a VCALENDAR with one VEVENT each. Start and end
// are written in UTC; stamp is the DTSTAMP of every VEVENT.
func Export(events []models.Event, stamp time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, e := range events {
		ev := cal.AddEvent(UID(e.ID))
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(e.Start.Time)
		ev.SetEndAt(e.End.Time)
		ev.SetSummary(e.Title)

		if e.Description != "" {
			ev.SetDescription(e.Description)
		}

		switch e.Kind() {
		case models.KindImage:
			ev.SetURL(e.ImageURL)
		case models.KindVideo:
			ev.SetURL(e.VideoURL)
		}
		ev.SetProperty(PropertyKind, string(e.Kind()))
	}

	return cal.Serialize()
}
