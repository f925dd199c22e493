package models

import (
	"bytes"
	"fmt"
	"time"
)

// LocalTimeLayout is the wire format of event start and end: local wall clock,
// minute precision, no offset.
const LocalTimeLayout = "2006-01-02T15:04"

// LocalTime is a time.Time that marshals with LocalTimeLayout. Empty strings
// and null decode to the zero value.
type LocalTime struct {
	time.Time
}

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{Time: t.Truncate(time.Minute)}
}

// ParseLocalTime parses s in loc. A nil loc means time.Local.
func ParseLocalTime(s string, loc *time.Location) (LocalTime, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(LocalTimeLayout, s, loc)
	if err != nil {
		return LocalTime{}, fmt.Errorf("invalid local time %q: %w", s, err)
	}
	return LocalTime{Time: t}, nil
}

func MustParseLocalTime(s string) LocalTime {
	t, err := ParseLocalTime(s, nil)
	if err != nil {
		panic(err)
	}
	return t
}

func (t LocalTime) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LocalTimeLayout)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte(`""`)) {
		*t = LocalTime{}
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid local time %s", data)
	}
	parsed, err := ParseLocalTime(string(data[1:len(data)-1]), nil)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// InLocation reinterprets the wall clock of t in loc without shifting it. Postgres
// TIMESTAMP columns come back as UTC with the stored wall clock.
func (t LocalTime) InLocation(loc *time.Location) LocalTime {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return LocalTime{Time: time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)}
}
