package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilzhm/travel-diary/internal/store"
	"github.com/adilzhm/travel-diary/models"
)

func TestBookTrip_Success(t *testing.T) {
	diarySvc := &mockDiaryService{
		bookTripFn: func(_ context.Context, userID int64, trip models.Trip) (models.BookTripResponse, error) {
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, "Lisbon", trip.Destination)
			trip.TripID = 3
			return models.BookTripResponse{
				Success: true,
				User:    models.User{UserID: userID, FullName: "Alice"},
				Trip:    trip,
				TripID:  trip.TripID,
			}, nil
		},
	}
	h := newTestHandler(nil, diarySvc)

	payload, err := json.Marshal(models.BookTripRequest{
		Trip: models.Trip{
			Destination: "Lisbon",
			Date:        time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			Price:       499.99,
		},
	})
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	h.bookTrip(rr, authedRequest(t, http.MethodPost, "/book-trip", bytes.NewBuffer(payload), "application/json", 7))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.BookTripResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(3), resp.TripID)
	assert.Equal(t, "Alice", resp.User.FullName)
}

func TestBookTrip_UserDeleted(t *testing.T) {
	diarySvc := &mockDiaryService{
		bookTripFn: func(_ context.Context, _ int64, _ models.Trip) (models.BookTripResponse, error) {
			return models.BookTripResponse{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(nil, diarySvc)

	payload := bytes.NewBufferString(`{"trip":{"destination":"Lisbon","date":"2026-09-12T00:00:00Z","price":10}}`)

	rr := httptest.NewRecorder()
	h.bookTrip(rr, authedRequest(t, http.MethodPost, "/book-trip", payload, "application/json", 404))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestBookTrip_BadJSON(t *testing.T) {
	h := newTestHandler(nil, &mockDiaryService{})

	payload := bytes.NewBufferString(`{broken`)

	rr := httptest.NewRecorder()
	h.bookTrip(rr, authedRequest(t, http.MethodPost, "/book-trip", payload, "application/json", 7))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBookTrip_NoPrincipal(t *testing.T) {
	h := newTestHandler(nil, &mockDiaryService{})

	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/book-trip",
		bytes.NewBufferString(`{"trip":{"destination":"Lisbon"}}`)))
	rr := httptest.NewRecorder()
	h.bookTrip(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
