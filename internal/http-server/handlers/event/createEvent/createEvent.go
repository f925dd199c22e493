package createEvent

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
	"strings"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req models.EventDraft

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if fields := calendar.ValidateDraft(req); len(fields) > 0 {
			log.Error("invalid request", slog.Any("fields", fields))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldErrors("invalid event", fields))

			return
		}

		req.Title = strings.TrimSpace(req.Title)

		event, err := creator.CreateEvent(r.Context(), req)
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))

			return
		}

		log.Info("event added", slog.Int("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, event)
	}
}
