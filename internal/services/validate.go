package services

import (
	"strings"
	"time"

	"eventboard/internal/domain"
)

// Validation messages, stable parts of the API contract.
const (
	msgMissingTitle = "missing required field: title"
	msgInvalidDate  = "missing/invalid date"
	msgInvalidTime  = "missing/invalid time"
)

// ValidateEventInput turns a loosely-typed input into a validated draft.
// Rules are checked in a fixed order and the first violation wins:
// title present and non-empty, then date parseable as YYYY-MM-DD, then
// time parseable as HH:MM (24-hour). Description is optional and defaults
// to the empty string. Malformed date/time strings are reported as
// validation errors, never propagated as faults.
func ValidateEventInput(input domain.EventInput) (*domain.EventDraft, *domain.ValidationError) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError(msgMissingTitle)
	}

	date, err := time.Parse(domain.DateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return nil, domain.NewValidationError(msgInvalidDate)
	}

	timeOfDay, err := time.Parse(domain.TimeLayout, strings.TrimSpace(input.Time))
	if err != nil {
		return nil, domain.NewValidationError(msgInvalidTime)
	}

	return &domain.EventDraft{
		Title:       title,
		Description: input.Description,
		Date:        date,
		Time:        timeOfDay,
	}, nil
}
