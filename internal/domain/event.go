package domain

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports the first violated rule of a malformed event
// payload. It is a recoverable outcome, distinct from storage faults.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// Event represents a scheduled event
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        time.Time `json:"time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventInput is the loosely-typed field set received from a caller.
// All fields are raw strings; ValidateEventInput turns it into a draft.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// EventDraft is a validated, not-yet-persisted set of event fields.
type EventDraft struct {
	Title       string
	Description string
	Date        time.Time
	Time        time.Time
}

// Serialization layouts for event dates and times on the wire.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04"
	DateTimeLayout = "Jan 02, 2006, 03:04 PM"
)

// EventView is the serialized form of an event returned by the API.
// swagger:model EventView
type EventView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	DateTime    string `json:"datetime"`
}

// NewEventView serializes an event: ISO date, 24-hour HH:MM time, and the
// combined human-readable label (e.g. "Jan 05, 2025, 02:30 PM").
func NewEventView(e *Event) *EventView {
	combined := time.Date(
		e.Date.Year(), e.Date.Month(), e.Date.Day(),
		e.Time.Hour(), e.Time.Minute(), 0, 0, time.Local,
	)
	return &EventView{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date.Format(DateLayout),
		Time:        e.Time.Format(TimeLayout),
		DateTime:    combined.Format(DateTimeLayout),
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Insert(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	// Update replaces all mutable fields of the record matching id and sets
	// updated_at to now, leaving id and created_at untouched.
	Update(ctx context.Context, id int64, draft *EventDraft, now time.Time) (*Event, error)
	Delete(ctx context.Context, id int64) error
	// ListAll returns all events ordered by (date, time) ascending with
	// ties broken by id ascending.
	ListAll(ctx context.Context) ([]*Event, error)
}

// EventService defines the four event operations exposed over the API.
type EventService interface {
	List(ctx context.Context) ([]*EventView, error)
	Create(ctx context.Context, input EventInput) (*EventView, error)
	Update(ctx context.Context, id int64, input EventInput) (*EventView, error)
	Delete(ctx context.Context, id int64) error
}
