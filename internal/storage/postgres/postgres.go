package postgres

import (
	"context"
	"database/sql"
	"errors"
	"eventCalendar/internal/config"
	"eventCalendar/internal/models"
	"eventCalendar/internal/storage"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// wallClockLayout is how start and end are written to the TIMESTAMP columns.
const wallClockLayout = "2006-01-02 15:04:05"

const schema = `
	CREATE TABLE IF NOT EXISTS events (
		id          SERIAL PRIMARY KEY,
		title       TEXT NOT NULL,
		start_time  TIMESTAMP NOT NULL,
		end_time    TIMESTAMP NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image_url   TEXT NOT NULL DEFAULT '',
		video_url   TEXT NOT NULL DEFAULT '',
		CHECK (start_time < end_time)
	);
	CREATE INDEX IF NOT EXISTS events_start_time_idx ON events (start_time);`

const eventColumns = `id, title, start_time, end_time, description, image_url, video_url`

type Storage struct {
	DB  *sql.DB
	loc *time.Location
}

func InitDB(dbCfg *config.Database, loc *time.Location) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := New(db, loc)

	if err = s.Migrate(context.Background()); err != nil {
		return nil, err
	}

	return s, nil
}

// New wraps an open database. Event times are read back in loc.
func New(db *sql.DB, loc *time.Location) *Storage {
	if loc == nil {
		loc = time.Local
	}
	return &Storage{DB: db, loc: loc}
}

func (s *Storage) Migrate(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateEvent(ctx context.Context, draft models.EventDraft) (*models.Event, error) {
	query := `
		INSERT INTO events (title, start_time, end_time, description, image_url, video_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + eventColumns

	event, err := s.scanEvent(s.DB.QueryRowContext(ctx, query, draftArgs(draft)...))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetEvent(ctx context.Context, id int) (*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1`

	event, err := s.scanEvent(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_time ASC, id ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		event, err := s.scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) UpdateEvent(ctx context.Context, id int, draft models.EventDraft) (*models.Event, error) {
	query := `
		UPDATE events
		SET title = $1, start_time = $2, end_time = $3, description = $4, image_url = $5, video_url = $6
		WHERE id = $7
		RETURNING ` + eventColumns

	args := append(draftArgs(draft), id)

	event, err := s.scanEvent(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

func (s *Storage) DeleteEvent(ctx context.Context, id int) error {
	result, err := s.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if rowsAffected == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Storage) scanEvent(row rowScanner) (*models.Event, error) {
	var (
		event      models.Event
		start, end time.Time
	)

	err := row.Scan(
		&event.ID,
		&event.Title,
		&start,
		&end,
		&event.Description,
		&event.ImageURL,
		&event.VideoURL,
	)
	if err != nil {
		return nil, err
	}

	event.Start = models.LocalTime{Time: start}.InLocation(s.loc)
	event.End = models.LocalTime{Time: end}.InLocation(s.loc)

	return &event, nil
}

func draftArgs(d models.EventDraft) []any {
	return []any{
		d.Title,
		d.Start.Format(wallClockLayout),
		d.End.Format(wallClockLayout),
		d.Description,
		d.ImageURL,
		d.VideoURL,
	}
}
