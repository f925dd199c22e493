package monthGrid

import (
	"context"
	"eventCalendar/internal/calendar"
	"eventCalendar/internal/lib/api/response"
	"eventCalendar/internal/lib/logger/sl"
	"eventCalendar/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

const monthLayout = "2006-01"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

type Options struct {
	WeekStart time.Weekday
	Location  *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
}

// New serves the month grid over the filtered event list. month=YYYY-MM picks
// the month (default: current), week_start overrides the configured first
// weekday, and q, type, from, to filter the events.
func New(log *slog.Logger, eventsGetter EventsGetter, opts Options) http.HandlerFunc {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.monthGrid.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		query := r.URL.Query()

		ref := opts.Now().In(opts.Location)
		if month := query.Get("month"); month != "" {
			t, err := time.ParseInLocation(monthLayout, month, opts.Location)
			if err != nil {
				log.Error("invalid month", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid month, expected YYYY-MM"))
				return
			}
			ref = t
		}

		weekStart := opts.WeekStart
		if ws := query.Get("week_start"); ws != "" {
			d, err := calendar.ParseWeekday(ws)
			if err != nil {
				log.Error("invalid week start", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}
			weekStart = d
		}

		criteria, err := calendar.ParseCriteria(query, opts.Location)
		if err != nil {
			log.Error("invalid filter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}

		events, err := eventsGetter.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		month := calendar.NewState(ref, weekStart).
			WithEvents(events).
			WithCriteria(criteria).
			Month()

		log.Info("month grid built",
			slog.String("month", ref.Format(monthLayout)),
			slog.Int("weeks", len(month.Weeks)),
		)

		render.JSON(w, r, month)
	}
}
