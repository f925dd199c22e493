package calendar

import (
	"eventCalendar/internal/models"
	"fmt"
	"net/url"
	"time"
)

// Query parameters understood by ParseCriteria.
const (
	ParamSearch = "q"
	ParamType   = "type"
	ParamFrom   = "from"
	ParamTo     = "to"
)

// ParseCriteria reads q, type, from and to. Bounds are dates (YYYY-MM-DD) taken
// at midnight in loc.
func ParseCriteria(q url.Values, loc *time.Location) (Criteria, error) {
	if loc == nil {
		loc = time.Local
	}

	kind, ok := models.ParseKind(q.Get(ParamType))
	if !ok {
		return Criteria{}, fmt.Errorf("unknown event type %q", q.Get(ParamType))
	}

	c := Criteria{
		Search: q.Get(ParamSearch),
		Kind:   kind,
	}

	var err error
	if c.From, err = parseBound(q.Get(ParamFrom), loc); err != nil {
		return Criteria{}, fmt.Errorf("invalid %s: %w", ParamFrom, err)
	}
	if c.To, err = parseBound(q.Get(ParamTo), loc); err != nil {
		return Criteria{}, fmt.Errorf("invalid %s: %w", ParamTo, err)
	}

	return c, nil
}

// Values is the inverse of ParseCriteria.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Search != "" {
		v.Set(ParamSearch, c.Search)
	}
	if c.Kind != "" {
		v.Set(ParamType, string(c.Kind))
	}
	if c.From != nil {
		v.Set(ParamFrom, c.From.Format(dateLayout))
	}
	if c.To != nil {
		v.Set(ParamTo, c.To.Format(dateLayout))
	}
	return v
}

func parseBound(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
