package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"eventboard/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository creates an EventRepository backed by Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func (r *eventRepository) Insert(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, description, event_date, event_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Description, e.Date, e.Time.Format("15:04:05"), e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT id, title, description, event_date, event_time, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, id int64, draft *domain.EventDraft, now time.Time) (*domain.Event, error) {
	// Full replace of the mutable fields in one statement; id and
	// created_at stay untouched.
	query := `
		UPDATE events
		SET title = $1, description = $2, event_date = $3, event_time = $4, updated_at = $5
		WHERE id = $6
		RETURNING id, title, description, event_date, event_time, created_at, updated_at
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query,
		draft.Title, draft.Description, draft.Date, draft.Time.Format("15:04:05"), now, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	// Ordering is load-bearing for the end-user view; id breaks ties.
	query := `
		SELECT id, title, description, event_date, event_time, created_at, updated_at
		FROM events
		ORDER BY event_date ASC, event_time ASC, id ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var timeStr string
	if err := s.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &timeStr, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	t, err := parseTimeOfDay(timeStr)
	if err != nil {
		return nil, err
	}
	e.Time = t
	return e, nil
}

// parseTimeOfDay parses the TIME column, which lib/pq hands back as text.
func parseTimeOfDay(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("malformed time value %q", s)
}
