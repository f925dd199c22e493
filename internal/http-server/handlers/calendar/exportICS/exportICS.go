package exportICS

import (
	"context"
	"eventCalendar/internal/calendar"
	"eventCalendar/internal/ics"
	"eventCalendar/internal/lib/api/response"
	"eventCalendar/internal/lib/logger/sl"
	"eventCalendar/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"time"
)

const ContentType = "text/calendar; charset=utf-8"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

// New serves the filtered event list as an iCalendar feed.
func New(log *slog.Logger, eventsGetter EventsGetter, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.calendar.exportICS.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		criteria, err := calendar.ParseCriteria(r.URL.Query(), loc)
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

		filtered := calendar.Filter(events, criteria)
		body := ics.Export(filtered, time.Now())

		log.Info("calendar exported", slog.Int("count", len(filtered)))

		w.Header().Set("Content-Type", ContentType)
		w.Header().Set("Content-Disposition", `attachment; filename="events.ics"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(body)); err != nil {
			log.Error("failed to write calendar", sl.Err(err))
		}
	}
}
