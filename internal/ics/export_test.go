package ics

import (
	"eventCalendar/internal/models"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{
			ID:          1,
			Title:       "Standup",
			Start:       models.LocalTime{Time: time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)},
			End:         models.LocalTime{Time: time.Date(2024, time.March, 5, 9, 30, 0, 0, time.UTC)},
			Description: "daily sync",
		},
		{
			ID:       2,
			Title:    "Demo",
			Start:    models.LocalTime{Time: time.Date(2024, time.March, 8, 10, 0, 0, 0, time.UTC)},
			End:      models.LocalTime{Time: time.Date(2024, time.March, 8, 11, 0, 0, 0, time.UTC)},
			VideoURL: "https://example.com/demo.mp4",
		},
	}

	out := Export(events, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "DTSTART:20240305T090000Z")
	assert.Contains(t, out, "DTEND:20240308T110000Z")

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	parsed := cal.Events()
	require.Len(t, parsed, 2)

	assert.Equal(t, UID(1), parsed[0].Id())
	assert.Equal(t, "Standup", parsed[0].GetProperty(ical.ComponentPropertySummary).Value)
	assert.Equal(t, "daily sync", parsed[0].GetProperty(ical.ComponentPropertyDescription).Value)
	assert.Equal(t, "text", parsed[0].GetProperty(PropertyKind).Value)

	assert.Equal(t, "https://example.com/demo.mp4", parsed[1].GetProperty(ical.ComponentPropertyUrl).Value)
	assert.Equal(t, "video", parsed[1].GetProperty(PropertyKind).Value)
}

func TestExportEmpty(t *testing.T) {
	t.Parallel()

	out := Export(nil, time.Now())

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	assert.Empty(t, cal.Events())
}
