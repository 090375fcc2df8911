package http

import (
	"context"
	"net/http"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/service"
	"github.com/adilzhm/travel-diary/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock DiaryService
// ─────────────────────────────────────────────

type mockDiaryService struct {
	createPostFn     func(ctx context.Context, ownerID int64, post models.DiaryPost) (models.DiaryPost, error)
	deletePostFn     func(ctx context.Context, ownerID, postID int64) error
	deleteUserFn     func(ctx context.Context, userID int64) error
	bookTripFn       func(ctx context.Context, userID int64, trip models.Trip) (models.BookTripResponse, error)
	profileFn        func(ctx context.Context, userID int64) (models.ProfileResponse, error)
	getUserByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	recentActivityFn func(ctx context.Context) ([]models.UserActivity, error)
	listAllPostsFn   func(ctx context.Context) ([]models.PostWithAuthor, error)
	adminDashboardFn func(ctx context.Context) ([]models.UserWithPosts, error)
}

func (m *mockDiaryService) CreatePost(ctx context.Context, ownerID int64, post models.DiaryPost) (models.DiaryPost, error) {
	return m.createPostFn(ctx, ownerID, post)
}

func (m *mockDiaryService) DeletePost(ctx context.Context, ownerID, postID int64) error {
	return m.deletePostFn(ctx, ownerID, postID)
}

func (m *mockDiaryService) DeleteUser(ctx context.Context, userID int64) error {
	return m.deleteUserFn(ctx, userID)
}

func (m *mockDiaryService) BookTrip(ctx context.Context, userID int64, trip models.Trip) (models.BookTripResponse, error) {
	return m.bookTripFn(ctx, userID, trip)
}

func (m *mockDiaryService) Profile(ctx context.Context, userID int64) (models.ProfileResponse, error) {
	return m.profileFn(ctx, userID)
}

func (m *mockDiaryService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockDiaryService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockDiaryService) RecentActivity(ctx context.Context) ([]models.UserActivity, error) {
	return m.recentActivityFn(ctx)
}

func (m *mockDiaryService) ListAllPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	return m.listAllPostsFn(ctx)
}

func (m *mockDiaryService) AdminDashboard(ctx context.Context) ([]models.UserWithPosts, error) {
	return m.adminDashboardFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(authSvc service.AuthService, diarySvc service.DiaryService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:  authSvc,
			DiaryService: diarySvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
