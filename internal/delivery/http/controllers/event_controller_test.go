package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventboard/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	listResult   []*domain.EventView
	listErr      error
	createResult *domain.EventView
	createErr    error
	updateResult *domain.EventView
	updateErr    error
	deleteErr    error

	lastCreateInput domain.EventInput
	lastUpdateID    int64
	lastUpdateInput domain.EventInput
	lastDeleteID    int64
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.EventView, error) {
	return f.listResult, f.listErr
}

func (f *fakeEventService) Create(ctx context.Context, input domain.EventInput) (*domain.EventView, error) {
	f.lastCreateInput = input
	return f.createResult, f.createErr
}

func (f *fakeEventService) Update(ctx context.Context, id int64, input domain.EventInput) (*domain.EventView, error) {
	f.lastUpdateID = id
	f.lastUpdateInput = input
	return f.updateResult, f.updateErr
}

func (f *fakeEventService) Delete(ctx context.Context, id int64) error {
	f.lastDeleteID = id
	return f.deleteErr
}

var launchView = &domain.EventView{
	ID:          1,
	Title:       "Launch",
	Description: "",
	Date:        "2025-01-05",
	Time:        "14:30",
	DateTime:    "Jan 05, 2025, 02:30 PM",
}

func TestEventController_List(t *testing.T) {
	t.Run("returns events envelope", func(t *testing.T) {
		svc := &fakeEventService{listResult: []*domain.EventView{launchView}}
		c := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		rec := httptest.NewRecorder()
		c.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body EventListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Events, 1)
		assert.Equal(t, "Jan 05, 2025, 02:30 PM", body.Events[0].DateTime)
	})

	t.Run("empty list stays an array", func(t *testing.T) {
		svc := &fakeEventService{listResult: []*domain.EventView{}}
		c := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		rec := httptest.NewRecorder()
		c.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"events":[]}`, rec.Body.String())
	})

	t.Run("storage fault is a 500", func(t *testing.T) {
		svc := &fakeEventService{listErr: errors.New("boom")}
		c := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
		rec := httptest.NewRecorder()
		c.List(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}

func TestEventController_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{createResult: launchView}
		c := NewEventController(testLogger, svc)

		payload := `{"title":"Launch","date":"2025-01-05","time":"14:30"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(payload))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body EventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Event added successfully!", body.Message)
		require.NotNil(t, body.Event)
		assert.Equal(t, "Jan 05, 2025, 02:30 PM", body.Event.DateTime)
		assert.Equal(t, "Launch", svc.lastCreateInput.Title)
	})

	t.Run("validation failure", func(t *testing.T) {
		svc := &fakeEventService{createErr: domain.NewValidationError("missing required field: title")}
		c := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(`{"date":"2025-01-05"}`))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"missing required field: title"}`, rec.Body.String())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})

		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewBufferString(`{`))
		rec := httptest.NewRecorder()
		c.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestEventController_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{updateResult: launchView}
		c := NewEventController(testLogger, svc)

		payload := `{"title":"Launch","date":"2025-01-05","time":"14:30"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/7", bytes.NewBufferString(payload))
		req.SetPathValue("eventID", "7")
		rec := httptest.NewRecorder()
		c.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body EventResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "Event updated successfully!", body.Message)
		assert.Equal(t, int64(7), svc.lastUpdateID)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := &fakeEventService{updateErr: domain.ErrNotFound}
		c := NewEventController(testLogger, svc)

		payload := `{"title":"Launch","date":"2025-01-05","time":"14:30"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/99", bytes.NewBufferString(payload))
		req.SetPathValue("eventID", "99")
		rec := httptest.NewRecorder()
		c.Update(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"event not found"}`, rec.Body.String())
	})

	t.Run("validation failure wins over existence", func(t *testing.T) {
		svc := &fakeEventService{updateErr: domain.NewValidationError("missing/invalid date")}
		c := NewEventController(testLogger, svc)

		payload := `{"title":"Launch","date":"2025-13-40","time":"14:30"}`
		req := httptest.NewRequest(http.MethodPost, "/api/events/99", bytes.NewBufferString(payload))
		req.SetPathValue("eventID", "99")
		rec := httptest.NewRecorder()
		c.Update(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "missing/invalid date")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		c := NewEventController(testLogger, &fakeEventService{})

		req := httptest.NewRequest(http.MethodPost, "/api/events/abc", bytes.NewBufferString(`{}`))
		req.SetPathValue("eventID", "abc")
		rec := httptest.NewRecorder()
		c.Update(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventController_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeEventService{}
		c := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events/7/delete", nil)
		req.SetPathValue("eventID", "7")
		rec := httptest.NewRecorder()
		c.Delete(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Event deleted successfully!"}`, rec.Body.String())
		assert.Equal(t, int64(7), svc.lastDeleteID)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := &fakeEventService{deleteErr: domain.ErrNotFound}
		c := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/events/99/delete", nil)
		req.SetPathValue("eventID", "99")
		rec := httptest.NewRecorder()
		c.Delete(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
