package service

import (
	"context"
	"fmt"

	"github.com/adilzhm/travel-diary/internal/validators"
	"github.com/adilzhm/travel-diary/models"
)

// DiaryValidationService decorates a DiaryService with payload validation.
// Write operations are checked before they reach the inner service; read
// operations pass straight through.
type DiaryValidationService struct {
	inner     DiaryService
	validator validators.Validator
}

func NewDiaryValidationService() DiaryServiceWrapper {
	return &DiaryValidationService{
		validator: validators.NewDiaryValidator(),
	}
}

func (v *DiaryValidationService) Wrap(inner DiaryService) DiaryService {
	v.inner = inner
	return v
}

func (v *DiaryValidationService) CreatePost(ctx context.Context, ownerID int64, post models.DiaryPost) (models.DiaryPost, error) {
	if err := v.validator.Validate(ctx, post); err != nil {
		return models.DiaryPost{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreatePost(ctx, ownerID, post)
}

func (v *DiaryValidationService) DeletePost(ctx context.Context, ownerID, postID int64) error {
	request := models.DeletePostRequest{UserID: ownerID, PostID: postID}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeletePost(ctx, ownerID, postID)
}

func (v *DiaryValidationService) DeleteUser(ctx context.Context, userID int64) error {
	if err := v.validator.Validate(ctx, models.DeleteUserRequest{UserID: userID}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteUser(ctx, userID)
}

func (v *DiaryValidationService) BookTrip(ctx context.Context, userID int64, trip models.Trip) (models.BookTripResponse, error) {
	if err := v.validator.Validate(ctx, trip); err != nil {
		return models.BookTripResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.BookTrip(ctx, userID, trip)
}

func (v *DiaryValidationService) Profile(ctx context.Context, userID int64) (models.ProfileResponse, error) {
	return v.inner.Profile(ctx, userID)
}

func (v *DiaryValidationService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetUserByID(ctx, userID)
}

func (v *DiaryValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *DiaryValidationService) RecentActivity(ctx context.Context) ([]models.UserActivity, error) {
	return v.inner.RecentActivity(ctx)
}

func (v *DiaryValidationService) ListAllPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	return v.inner.ListAllPosts(ctx)
}

func (v *DiaryValidationService) AdminDashboard(ctx context.Context) ([]models.UserWithPosts, error) {
	return v.inner.AdminDashboard(ctx)
}
