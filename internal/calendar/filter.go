package calendar

import (
	"eventCalendar/internal/models"
	"strings"
	"time"
)

// Criteria narrows an event list. Zero fields are inactive.
type Criteria struct {
	Search string
	Kind   models.Kind
	From   *time.Time
	To     *time.Time
}

func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Kind == "" && c.From == nil && c.To == nil
}

// Filter keeps the events matching every active criterion, in input order.
// Passes run in a fixed order: title search, kind, start bound, end bound.
// The input slice is never modified.
func Filter(events []models.Event, c Criteria) []models.Event {
	filtered := events

	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		filtered = keep(filtered, func(e models.Event) bool {
			return strings.Contains(strings.ToLower(e.Title), needle)
		})
	}

	if c.Kind != "" {
		filtered = keep(filtered, func(e models.Event) bool {
			return e.Kind() == c.Kind
		})
	}

	if c.From != nil {
		from := *c.From
		filtered = keep(filtered, func(e models.Event) bool {
			return !e.Start.Before(from)
		})
	}

	if c.To != nil {
		to := *c.To
		filtered = keep(filtered, func(e models.Event) bool {
			return !e.End.After(to)
		})
	}

	return filtered
}

func keep(events []models.Event, pred func(models.Event) bool) []models.Event {
	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}
