package getAllEvents

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

// New lists events as a bare JSON array. The optional q, type, from and to
// query parameters narrow the list; date bounds are read in loc.
func New(log *slog.Logger, eventsGetter EventsGetter, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

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

		log.Info("events retrieved successfully",
			slog.Int("count", len(events)),
			slog.Int("filtered", len(filtered)),
		)

		responseOK(w, r, filtered)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.Event) {
	if events == nil {
		events = []models.Event{}
	}
	render.JSON(w, r, events)
}
