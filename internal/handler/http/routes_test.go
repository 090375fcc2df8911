package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adilzhm/travel-diary/models"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	authSvc := &mockAuthService{
		registerUserFn: func(_ context.Context, request models.RegisterRequest) (models.User, error) {
			return models.User{UserID: 1, Email: request.Email}, nil
		},
		loginFn: func(_ context.Context, request models.LoginRequest) (models.User, error) {
			return models.User{UserID: 1, Email: request.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: "stub-token"}, nil
		},
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 1}, nil
		},
	}
	diarySvc := &mockDiaryService{
		createPostFn: func(_ context.Context, _ int64, post models.DiaryPost) (models.DiaryPost, error) {
			return post, nil
		},
		deletePostFn: func(_ context.Context, _, _ int64) error { return nil },
		deleteUserFn: func(_ context.Context, _ int64) error { return nil },
		bookTripFn: func(_ context.Context, _ int64, trip models.Trip) (models.BookTripResponse, error) {
			return models.BookTripResponse{Success: true, Trip: trip}, nil
		},
		profileFn: func(_ context.Context, _ int64) (models.ProfileResponse, error) {
			return models.ProfileResponse{Posts: []models.DiaryPost{}}, nil
		},
		getUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, IsAdmin: true}, nil
		},
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
		recentActivityFn: func(_ context.Context) ([]models.UserActivity, error) {
			return []models.UserActivity{}, nil
		},
		listAllPostsFn: func(_ context.Context) ([]models.PostWithAuthor, error) {
			return []models.PostWithAuthor{}, nil
		},
		adminDashboardFn: func(_ context.Context) ([]models.UserWithPosts, error) {
			return []models.UserWithPosts{}, nil
		},
	}

	return newTestHandler(authSvc, diarySvc).Init()
}

// ---- Public routes: reachable without auth ----

func TestInit_PublicRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/register"},
		{http.MethodPost, "/login"},
		{http.MethodGet, "/users"},
		{http.MethodGet, "/recent-activity"},
		{http.MethodGet, "/users-posts"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.NotEqual(t, http.StatusNotFound, rr.Code,
				"route should be registered: %s %s", tt.method, tt.path)
			assert.NotEqual(t, http.StatusUnauthorized, rr.Code,
				"route should be public: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: 401 without token ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/profile"},
		{http.MethodPost, "/diary-posts"},
		{http.MethodPost, "/book-trip"},
		{http.MethodGet, "/admin/dashboard"},
		{http.MethodDelete, "/admin/deletePost"},
		{http.MethodDelete, "/admin/deleteUser"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code,
				"route should require a token: %s %s", tt.method, tt.path)
		})
	}
}

// ---- Protected routes: reachable with a token ----

func TestInit_ProtectedRoutes_WithToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("Authorization", "Bearer stub-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- Admin routes: guard consults the privilege flag ----

func TestInit_AdminRoute_WithAdminToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer stub-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

// ---- Unknown method on a known path -> 404, not 405 ----

func TestInit_UnsupportedMethodHidden(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPut, "/login", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
