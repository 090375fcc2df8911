package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adilzhm/travel-diary/internal/store"
	"github.com/adilzhm/travel-diary/internal/utils"
	"github.com/adilzhm/travel-diary/models"
)

func executeAdminGuard(h *Handler, userID int64, withPrincipal bool, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.requireAdmin(next)
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	req = injectNopLogger(req)
	if withPrincipal {
		req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, userID))
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

func TestRequireAdmin_NoPrincipal(t *testing.T) {
	h := newTestHandler(nil, &mockDiaryService{})

	rr := executeAdminGuard(h, 0, false, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRequireAdmin_NonAdmin(t *testing.T) {
	diarySvc := &mockDiaryService{
		getUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			return models.User{UserID: userID, IsAdmin: false}, nil
		},
	}
	h := newTestHandler(nil, diarySvc)

	rr := executeAdminGuard(h, 1, true, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireAdmin_DeletedAccount(t *testing.T) {
	diarySvc := &mockDiaryService{
		getUserByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	h := newTestHandler(nil, diarySvc)

	// A valid token whose account has since been deleted must not pass.
	rr := executeAdminGuard(h, 404, true, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be reached")
	}))

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestRequireAdmin_Admin(t *testing.T) {
	lookups := 0
	diarySvc := &mockDiaryService{
		getUserByIDFn: func(_ context.Context, userID int64) (models.User, error) {
			lookups++
			return models.User{UserID: userID, IsAdmin: true}, nil
		},
	}
	h := newTestHandler(nil, diarySvc)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAdminGuard(h, 1, true, next)
	assert.Equal(t, http.StatusOK, rr.Code)

	// The flag is re-checked per request, never cached.
	rr = executeAdminGuard(h, 1, true, next)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 2, lookups)
}
