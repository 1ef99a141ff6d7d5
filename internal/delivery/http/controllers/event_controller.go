package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"eventboard/internal/delivery/http/helpers"
	"eventboard/internal/domain"
)

// EventListResponse is the response body for GET /api/events.
// swagger:model EventListResponse
type EventListResponse struct {
	Events []*domain.EventView `json:"events"`
}

// EventResponse is the success envelope for event mutations.
// swagger:model EventResponse
type EventResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Event   *domain.EventView `json:"event,omitempty"`
}

// EventController exposes the event CRUD endpoints. The organiser gate is
// applied by the router; these handlers assume mutating calls are already
// authorized.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List all events
// @Description Returns all events ordered by date and time ascending. Public.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.EventListResponse
// @Failure 500 {object} helpers.Failure
// @Router /api/events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	views, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteFailure(w, http.StatusInternalServerError, "internal error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventListResponse{Events: views})
}

// Create godoc
// @Summary Create an event
// @Description Validates the payload (title, then date YYYY-MM-DD, then time HH:MM; description optional) and persists a new event. Organiser only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.EventInput true "Event fields"
// @Success 201 {object} controllers.EventResponse
// @Failure 400 {object} helpers.Failure "first violated validation rule"
// @Failure 401 {object} helpers.Failure
// @Failure 403 {object} helpers.Failure
// @Failure 500 {object} helpers.Failure
// @Router /api/events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.EventInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}
	view, err := c.Service.Create(r.Context(), input)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, EventResponse{
		Success: true,
		Message: "Event added successfully!",
		Event:   view,
	})
}

// Update godoc
// @Summary Update an event
// @Description Full replace of title, description, date, and time. Validation errors take precedence over the existence check. Organiser only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Param event body domain.EventInput true "Event fields"
// @Success 200 {object} controllers.EventResponse
// @Failure 400 {object} helpers.Failure
// @Failure 401 {object} helpers.Failure
// @Failure 403 {object} helpers.Failure
// @Failure 404 {object} helpers.Failure
// @Failure 500 {object} helpers.Failure
// @Router /api/events/{eventID} [post]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	var input domain.EventInput
	if !helpers.DecodeAndValidate(w, r, &input) {
		return
	}
	view, err := c.Service.Update(r.Context(), id, input)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{
		Success: true,
		Message: "Event updated successfully!",
		Event:   view,
	})
}

// Delete godoc
// @Summary Delete an event
// @Description Hard-deletes the event. Deleting an unknown id yields 404. Organiser only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path int true "Event ID"
// @Success 200 {object} controllers.EventResponse
// @Failure 401 {object} helpers.Failure
// @Failure 403 {object} helpers.Failure
// @Failure 404 {object} helpers.Failure
// @Failure 500 {object} helpers.Failure
// @Router /api/events/{eventID}/delete [post]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDFromPath(w, r)
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, EventResponse{
		Success: true,
		Message: "Event deleted successfully!",
	})
}

// writeError maps service errors onto the wire: validation failures are
// 400 with the rule message, unknown ids are 404, anything else is a
// logged 500.
func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		helpers.WriteFailure(w, http.StatusBadRequest, verr.Message)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteFailure(w, http.StatusNotFound, "event not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteFailure(w, http.StatusInternalServerError, "internal error")
}

// eventIDFromPath parses the eventID path segment. A non-numeric id can
// never reference a record, so it reports not found, mirroring integer
// route matching.
func eventIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("eventID"), 10, 64)
	if err != nil {
		helpers.WriteFailure(w, http.StatusNotFound, "event not found")
		return 0, false
	}
	return id, true
}
