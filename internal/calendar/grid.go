package calendar

import (
	"encoding/json"
	"eventCalendar/internal/models"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Cell is one day of the month grid.
type Cell struct {
	Date    time.Time
	InMonth bool
	Events  []models.Event
}

func (c Cell) MarshalJSON() ([]byte, error) {
	events := c.Events
	if events == nil {
		events = []models.Event{}
	}
	return json.Marshal(struct {
		Date    string         `json:"date"`
		InMonth bool           `json:"inMonth"`
		Events  []models.Event `json:"events"`
	}{
		Date:    c.Date.Format(dateLayout),
		InMonth: c.InMonth,
		Events:  events,
	})
}

type Week [7]Cell

// Month is the grid of a calendar month padded to whole weeks.
type Month struct {
	Year      int            `json:"year"`
	Month     time.Month     `json:"month"`
	WeekStart time.Weekday   `json:"weekStart"`
	Weeks     []Week         `json:"weeks"`
	Location  *time.Location `json:"-"`
}

// BuildMonth lays out the month containing ref. Rows start on weekStart; the
// first row contains the 1st and the last row contains the last day of the
// month. Every event is placed in the cell of the wall-clock date of its
// start.
func BuildMonth(ref time.Time, events []models.Event, weekStart time.Weekday) Month {
	loc := ref.Location()
	first := firstOfMonth(ref)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -daysAfter(first.Weekday(), weekStart))
	end := last.AddDate(0, 0, 6-daysAfter(last.Weekday(), weekStart))

	byDay := make(map[string][]models.Event, len(events))
	for _, e := range events {
		if e.Start.IsZero() {
			continue
		}
		key := e.Start.Format(dateLayout)
		byDay[key] = append(byDay[key], e)
	}

	m := Month{
		Year:      first.Year(),
		Month:     first.Month(),
		WeekStart: weekStart,
		Location:  loc,
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 7) {
		var w Week
		for i := range w {
			d := day.AddDate(0, 0, i)
			w[i] = Cell{
				Date:    d,
				InMonth: d.Month() == first.Month(),
				Events:  byDay[d.Format(dateLayout)],
			}
		}
		m.Weeks = append(m.Weeks, w)
	}

	return m
}

// First returns midnight of the 1st of the month.
func (m Month) First() time.Time {
	loc := m.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

func (m Month) Next() time.Time {
	return m.First().AddDate(0, 1, 0)
}

func (m Month) Prev() time.Time {
	return m.First().AddDate(0, -1, 0)
}

// Days returns the cells row by row.
func (m Month) Days() []Cell {
	days := make([]Cell, 0, len(m.Weeks)*7)
	for _, w := range m.Weeks {
		days = append(days, w[:]...)
	}
	return days
}

// CellAt returns the cell for the calendar date of t.
func (m Month) CellAt(t time.Time) (Cell, bool) {
	key := t.Format(dateLayout)
	for _, w := range m.Weeks {
		for _, c := range w {
			if c.Date.Format(dateLayout) == key {
				return c, true
			}
		}
	}
	return Cell{}, false
}

// ParseWeekday accepts English weekday names in any case, e.g. "sunday" or
// "Monday".
func ParseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// daysAfter is how far d lies past weekStart within the same week.
func daysAfter(d, weekStart time.Weekday) int {
	return (int(d) - int(weekStart) + 7) % 7
}
