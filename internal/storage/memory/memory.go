// Package memory is an in-process event store with the same contract as the
// Postgres storage. Contents are lost on restart.
package memory

import (
	"context"
	"eventCalendar/internal/models"
	"eventCalendar/internal/storage"
	"fmt"
	"sort"
	"sync"
	"time"
)

type Storage struct {
	mu     sync.RWMutex
	loc    *time.Location
	nextID int
	events map[int]models.Event
}

// New creates an empty store. Event times keep their wall clock and are
// placed in loc, as the Postgres storage reads them back.
func New(loc *time.Location) *Storage {
	if loc == nil {
		loc = time.Local
	}
	return &Storage{
		loc:    loc,
		nextID: 1,
		events: make(map[int]models.Event),
	}
}

func (s *Storage) CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	const op = "storage.memory.CreateEvent"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	event := s.fromDraft(s.nextID, draft)
	s.events[event.ID] = event
	s.nextID++

	return &event, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	const op = "storage.memory.GetEvent"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	return &event, nil
}

// GetAllEvents orders by start, then id, like the Postgres query.
func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.memory.GetAllEvents"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.RLock()
	events := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	s.mu.RUnlock()

	sort.Slice(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Start.Equal(b.Start.Time) {
			return a.Start.Before(b.Start.Time)
		}
		return a.ID < b.ID
	})

	return events, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id int, draft models.EventDraft) (*models.Event, error) {
	const op = "storage.memory.UpdateEvent"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}

	event := s.fromDraft(id, draft)
	s.events[id] = event

	return &event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id int) error {
	const op = "storage.memory.DeleteEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrEventNotFound)
	}
	delete(s.events, id)

	return nil
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) fromDraft(id int, d models.EventDraft) models.Event {
	return models.Event{
		ID:          id,
		Title:       d.Title,
		Start:       d.Start.InLocation(s.loc),
		End:         d.End.InLocation(s.loc),
		Description: d.Description,
		ImageURL:    d.ImageURL,
		VideoURL:    d.VideoURL,
	}
}
