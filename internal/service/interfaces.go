package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/adilzhm/travel-diary/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type DiaryService interface {
	CreatePost(ctx context.Context, ownerID int64, post models.DiaryPost) (models.DiaryPost, error)
	DeletePost(ctx context.Context, ownerID, postID int64) error
	DeleteUser(ctx context.Context, userID int64) error
	BookTrip(ctx context.Context, userID int64, trip models.Trip) (models.BookTripResponse, error)

	Profile(ctx context.Context, userID int64) (models.ProfileResponse, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	RecentActivity(ctx context.Context) ([]models.UserActivity, error)
	ListAllPosts(ctx context.Context) ([]models.PostWithAuthor, error)
	AdminDashboard(ctx context.Context) ([]models.UserWithPosts, error)
}

// DiaryServiceWrapper defines middleware composition for DiaryService.
// Implementations wrap an existing DiaryService to add behavior such as
// validation or logging.
type DiaryServiceWrapper interface {
	Wrap(DiaryService) DiaryService
}
