package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adilzhm/travel-diary/internal/store"
	"github.com/adilzhm/travel-diary/models"
)

func TestAdminDashboard_Success(t *testing.T) {
	diarySvc := &mockDiaryService{
		adminDashboardFn: func(_ context.Context) ([]models.UserWithPosts, error) {
			return []models.UserWithPosts{
				{
					User:  models.User{UserID: 1, FullName: "Alice"},
					Posts: []models.DiaryPost{{PostID: 1, UserID: 1, Destination: "Kyoto"}},
				},
				{
					User:  models.User{UserID: 2, FullName: "Bob"},
					Posts: []models.DiaryPost{},
				},
			}, nil
		},
	}
	h := newTestHandler(nil, diarySvc)

	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	rr := httptest.NewRecorder()
	h.adminDashboard(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var dashboard []models.UserWithPosts
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dashboard))
	require.Len(t, dashboard, 2)
	assert.Len(t, dashboard[0].Posts, 1)
	assert.NotNil(t, dashboard[1].Posts)
	assert.Empty(t, dashboard[1].Posts)
}

func TestAdminDeletePost_Success(t *testing.T) {
	var gotOwnerID, gotPostID int64
	diarySvc := &mockDiaryService{
		deletePostFn: func(_ context.Context, ownerID, postID int64) error {
			gotOwnerID, gotPostID = ownerID, postID
			return nil
		},
	}
	h := newTestHandler(nil, diarySvc)

	payload := bytes.NewBufferString(`{"userId":1,"postId":9}`)
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/admin/deletePost", payload))
	rr := httptest.NewRecorder()
	h.adminDeletePost(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(1), gotOwnerID)
	assert.Equal(t, int64(9), gotPostID)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Post deleted successfully", resp.Message)
}

func TestAdminDeletePost_OwnerMissing(t *testing.T) {
	diarySvc := &mockDiaryService{
		deletePostFn: func(_ context.Context, _, _ int64) error {
			return store.ErrUserNotFound
		},
	}
	h := newTestHandler(nil, diarySvc)

	payload := bytes.NewBufferString(`{"userId":404,"postId":9}`)
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/admin/deletePost", payload))
	rr := httptest.NewRecorder()
	h.adminDeletePost(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminDeleteUser_Success(t *testing.T) {
	var gotUserID int64
	diarySvc := &mockDiaryService{
		deleteUserFn: func(_ context.Context, userID int64) error {
			gotUserID = userID
			return nil
		},
	}
	h := newTestHandler(nil, diarySvc)

	payload := bytes.NewBufferString(`{"userId":5}`)
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/admin/deleteUser", payload))
	rr := httptest.NewRecorder()
	h.adminDeleteUser(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(5), gotUserID)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "User and all their posts deleted successfully", resp.Message)
}

func TestAdminDeleteUser_NotFound(t *testing.T) {
	diarySvc := &mockDiaryService{
		deleteUserFn: func(_ context.Context, _ int64) error {
			return store.ErrUserNotFound
		},
	}
	h := newTestHandler(nil, diarySvc)

	payload := bytes.NewBufferString(`{"userId":404}`)
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/admin/deleteUser", payload))
	rr := httptest.NewRecorder()
	h.adminDeleteUser(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminDeleteUser_BadJSON(t *testing.T) {
	h := newTestHandler(nil, &mockDiaryService{})

	payload := bytes.NewBufferString(`{oops`)
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/admin/deleteUser", payload))
	rr := httptest.NewRecorder()
	h.adminDeleteUser(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
