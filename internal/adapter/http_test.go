package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilzhm/travel-diary/models"
)

func newStubAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL})
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain host gets http scheme", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://example.com/", want: "http://example.com"},
		{name: "https preserved", raw: "https://api.example.com", want: "https://api.example.com"},
		{name: "empty", raw: "", wantErr: true},
		{name: "spaces only", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegister_SendsMultipartForm(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "alice@example.com", r.FormValue("email"))
		assert.Equal(t, "secret", r.FormValue("password"))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.MessageResponse{Message: "User registered successfully"})
	})

	err := a.Register(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		FullName: "Alice",
		Password: "secret",
	})
	assert.NoError(t, err)
}

func TestLogin_StoresToken(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)

		var request models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "alice@example.com", request.Email)

		json.NewEncoder(w).Encode(models.TokenResponse{Token: "signed-jwt"})
	})

	token, err := a.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-jwt", token)
	assert.Equal(t, "signed-jwt", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
	})

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestProfile_AttachesBearerToken(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer signed-jwt", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.ProfileResponse{
			Email:    "alice@example.com",
			FullName: "Alice",
			Posts:    []models.DiaryPost{},
		})
	})
	a.SetToken("signed-jwt")

	profile, err := a.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.FullName)
	assert.NotNil(t, profile.Posts)
}

func TestProfile_WithoutToken_NoHeader(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})

	_, err := a.Profile(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreatePost_RoundTrip(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Kyoto", r.FormValue("destination"))
		assert.Equal(t, "public", r.FormValue("visibility"))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.DiaryPost{PostID: 10, UserID: 7, Destination: "Kyoto"})
	})
	a.SetToken("signed-jwt")

	created, err := a.CreatePost(context.Background(), models.DiaryPost{
		Destination: "Kyoto",
		Visibility:  models.VisibilityPublic,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.PostID)
}

func TestBookTrip_RoundTrip(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		var request models.BookTripRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "Lisbon", request.Trip.Destination)

		json.NewEncoder(w).Encode(models.BookTripResponse{Success: true, TripID: 3})
	})
	a.SetToken("signed-jwt")

	booking, err := a.BookTrip(context.Background(), models.Trip{Destination: "Lisbon", Price: 499.99})
	require.NoError(t, err)
	assert.True(t, booking.Success)
	assert.Equal(t, int64(3), booking.TripID)
}

func TestAdminDeleteUser_Forbidden(t *testing.T) {
	a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	})
	a.SetToken("non-admin-token")

	err := a.AdminDeleteUser(context.Background(), models.DeleteUserRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestMapHTTPError_Statuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newStubAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", tt.status)
			})

			_, err := a.ListUsers(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
