package router

import (
	"eventCalendar/internal/http-server/handlers/calendar/exportICS"
	"eventCalendar/internal/http-server/handlers/calendar/monthGrid"
	"eventCalendar/internal/http-server/handlers/event/createEvent"
	"eventCalendar/internal/http-server/handlers/event/deleteEvent"
	"eventCalendar/internal/http-server/handlers/event/getAllEvents"
	"eventCalendar/internal/http-server/handlers/event/getEvent"
	"eventCalendar/internal/http-server/handlers/event/updateEvent"
	"eventCalendar/internal/http-server/middleware/mwlogger"
	"eventCalendar/internal/http-server/middleware/mwmetrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"time"
)

// Storage is everything the routes need from the event store.
type Storage interface {
	createEvent.EventCreator
	getEvent.EventGetter
	getAllEvents.EventsGetter
	updateEvent.EventUpdater
	deleteEvent.EventDeleter
}

type Options struct {
	WeekStart time.Weekday
	Location  *time.Location
	// Metrics is optional; nil disables /metrics and request metrics.
	Metrics *mwmetrics.Metrics
}

func New(log *slog.Logger, storage Storage, opts Options) *chi.Mux {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	if opts.Metrics != nil {
		router.Use(mwmetrics.New(opts.Metrics))
	}
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	list := getAllEvents.New(log, storage, opts.Location)

	// URLFormat strips the extension, so /events.ics arrives here as /events.
	router.Get("/events", byFormat(map[string]http.Handler{
		"":     list,
		"json": list,
		"ics":  exportICS.New(log, storage, opts.Location),
	}))
	router.Post("/events", createEvent.New(log, storage))
	router.Get("/events/{id}", getEvent.New(log, storage))
	router.Put("/events/{id}", updateEvent.New(log, storage))
	router.Delete("/events/{id}", deleteEvent.New(log, storage))

	router.Get("/calendar", monthGrid.New(log, storage, monthGrid.Options{
		WeekStart: opts.WeekStart,
		Location:  opts.Location,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("OK"))
	})

	if opts.Metrics != nil {
		router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	return router
}

func byFormat(handlers map[string]http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format, _ := r.Context().Value(middleware.URLFormatCtxKey).(string)

		h, ok := handlers[format]
		if !ok {
			http.NotFound(w, r)
			return
		}

		h.ServeHTTP(w, r)
	}
}
