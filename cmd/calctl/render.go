package main

import (
	"eventCalendar/internal/calendar"
	"eventCalendar/internal/models"
	"fmt"
	"github.com/fatih/color"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"
)

const (
	dayLayout  = "2006-01-02"
	timeLayout = "15:04"
)

type palette struct {
	today   *color.Color
	outside *color.Color
	header  *color.Color
}

// newPalette follows fatih/color's terminal detection unless disabled.
func newPalette(disabled bool) palette {
	p := palette{
		today:   color.New(color.ReverseVideo, color.Bold),
		outside: color.New(color.Faint),
		header:  color.New(color.FgCyan, color.Bold),
	}

	if disabled {
		for _, c := range p.colors() {
			c.DisableColor()
		}
	}

	return p
}

func (p palette) colors() []*color.Color {
	return []*color.Color{p.today, p.outside, p.header}
}

// renderMonth prints the grid followed by the agenda of its days. Days with
// events carry a '*'.
func renderMonth(w io.Writer, m calendar.Month, today time.Time, p palette) error {
	var b strings.Builder

	b.WriteString(p.header.Sprintf("%s %d", m.Month, m.Year))
	b.WriteString("\n")

	names := make([]string, 7)
	for i := range names {
		day := (m.WeekStart + time.Weekday(i)) % 7
		names[i] = fmt.Sprintf("%4s", day.String()[:3])
	}
	b.WriteString(strings.TrimRight(strings.Join(names, " "), " "))
	b.WriteString("\n")

	todayKey := today.Format(dayLayout)
	for _, week := range m.Weeks {
		cells := make([]string, 0, 7)
		for _, c := range week {
			marker := " "
			if len(c.Events) > 0 {
				marker = "*"
			}

			text := fmt.Sprintf("%3d%s", c.Date.Day(), marker)
			switch {
			case c.Date.Format(dayLayout) == todayKey:
				text = p.today.Sprint(text)
			case !c.InMonth:
				text = p.outside.Sprint(text)
			}
			cells = append(cells, text)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}

	return renderAgenda(w, m)
}

func renderAgenda(w io.Writer, m calendar.Month) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, c := range m.Days() {
		if len(c.Events) == 0 {
			continue
		}

		fmt.Fprintf(tw, "\n%s\n", c.Date.Format("Mon 02 Jan"))
		for _, e := range c.Events {
			fmt.Fprintf(tw, "  %s\t#%d\t%s\t[%s]\n", timeRange(e), e.ID, e.Title, e.Kind())
		}
	}

	return tw.Flush()
}

func renderList(w io.Writer, events []models.Event) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tSTART\tEND\tTYPE\tTITLE")
	for _, e := range events {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Start, e.End, e.Kind(), e.Title)
	}

	return tw.Flush()
}

// timeRange is "09:00-10:00", or carries the end date when the event ends on
// another day.
func timeRange(e models.Event) string {
	end := e.End.Format(timeLayout)
	if e.End.Format(dayLayout) != e.Start.Format(dayLayout) {
		end = e.End.String()
	}
	return e.Start.Format(timeLayout) + "-" + end
}

func fieldErrorLines(fields map[string]string) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, fields[k]))
	}

	return lines
}
