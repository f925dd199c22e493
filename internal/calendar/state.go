package calendar

import (
	"eventCalendar/internal/models"
	"slices"
	"time"
)

// State is everything a calendar view is computed from. Transitions return a
// new State; the filtered list and the grid are derived on demand.
type State struct {
	Events    []models.Event
	Criteria  Criteria
	Reference time.Time
	WeekStart time.Weekday
}

func NewState(ref time.Time, weekStart time.Weekday) State {
	return State{Reference: ref, WeekStart: weekStart}
}

func (s State) WithEvents(events []models.Event) State {
	s.Events = slices.Clone(events)
	return s
}

func (s State) WithCriteria(c Criteria) State {
	s.Criteria = c
	return s
}

func (s State) WithReference(ref time.Time) State {
	s.Reference = ref
	return s
}

func (s State) NextMonth() State {
	s.Reference = firstOfMonth(s.Reference).AddDate(0, 1, 0)
	return s
}

func (s State) PrevMonth() State {
	s.Reference = firstOfMonth(s.Reference).AddDate(0, -1, 0)
	return s
}

func (s State) Filtered() []models.Event {
	return Filter(s.Events, s.Criteria)
}

// Month builds the grid of the reference month over the filtered events.
func (s State) Month() Month {
	return BuildMonth(s.Reference, s.Filtered(), s.WeekStart)
}
