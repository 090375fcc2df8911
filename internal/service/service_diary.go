package service

import (
	"context"
	"fmt"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/internal/store"
	"github.com/adilzhm/travel-diary/models"
)

// diaryService is the concrete implementation of DiaryService. It maintains
// the user/post/trip data graph: every write either verifies its referenced
// owner inside the repository transaction or cascades over dependents, so
// the graph never holds a dangling reference after a completed operation.
type diaryService struct {
	userRepository store.UserRepository
	postRepository store.PostRepository
	tripRepository store.TripRepository

	logger *logger.Logger
}

// NewDiaryService constructs a DiaryService over the three repositories.
func NewDiaryService(users store.UserRepository, posts store.PostRepository, trips store.TripRepository, logger *logger.Logger) DiaryService {
	return &diaryService{
		userRepository: users,
		postRepository: posts,
		tripRepository: trips,
		logger:         logger,
	}
}

// CreatePost adds a diary post owned by ownerID. Owner existence is enforced
// inside the repository transaction; a missing owner surfaces as
// store.ErrUserNotFound. Concurrent creates for the same owner are
// independent row inserts and never lose each other.
func (d *diaryService) CreatePost(ctx context.Context, ownerID int64, post models.DiaryPost) (models.DiaryPost, error) {
	log := logger.FromContext(ctx)

	post.UserID = ownerID
	created, err := d.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("post creation ended with error")
		return models.DiaryPost{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return created, nil
}

// DeletePost removes a post owned by ownerID. The owner must exist
// (store.ErrUserNotFound otherwise); deleting a post that is already gone
// succeeds without effect.
func (d *diaryService) DeletePost(ctx context.Context, ownerID, postID int64) error {
	log := logger.FromContext(ctx)

	if err := d.postRepository.DeletePost(ctx, ownerID, postID); err != nil {
		log.Err(err).Int64("user_id", ownerID).Int64("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}

// DeleteUser removes the account together with its posts and bookings in one
// repository transaction. Trips survive; they are unowned.
func (d *diaryService) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := d.userRepository.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user deletion ended with error")
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	return nil
}

// BookTrip records a trip booking for userID and returns the booking
// confirmation with the user's current state, booked trips included.
func (d *diaryService) BookTrip(ctx context.Context, userID int64, trip models.Trip) (models.BookTripResponse, error) {
	log := logger.FromContext(ctx)

	booked, err := d.tripRepository.BookTrip(ctx, userID, trip)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("trip booking ended with error")
		return models.BookTripResponse{}, fmt.Errorf("trip booking ended with error: %w", err)
	}

	user, err := d.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user lookup after booking failed")
		return models.BookTripResponse{}, fmt.Errorf("user lookup after booking failed: %w", err)
	}

	return models.BookTripResponse{
		Success: true,
		User:    user,
		Trip:    booked,
		TripID:  booked.TripID,
	}, nil
}

// Profile assembles the caller's own account data together with their diary
// posts. The post list is computed by owner query on every call.
func (d *diaryService) Profile(ctx context.Context, userID int64) (models.ProfileResponse, error) {
	log := logger.FromContext(ctx)

	user, err := d.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile user lookup failed")
		return models.ProfileResponse{}, fmt.Errorf("profile user lookup failed: %w", err)
	}

	posts, err := d.postRepository.FindPostsByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile posts lookup failed")
		return models.ProfileResponse{}, fmt.Errorf("profile posts lookup failed: %w", err)
	}

	return models.ProfileResponse{
		Email:        user.Email,
		FullName:     user.FullName,
		Bio:          user.Bio,
		ProfileImage: user.ProfileImage,
		Posts:        posts,
	}, nil
}

// GetUserByID returns a single account, store.ErrUserNotFound if absent.
func (d *diaryService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := d.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

// ListUsers returns every registered account.
func (d *diaryService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := d.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("users listing failed: %w", err)
	}

	return users, nil
}

// RecentActivity returns every user's display name with their booked trips.
func (d *diaryService) RecentActivity(ctx context.Context) ([]models.UserActivity, error) {
	activity, err := d.tripRepository.ListUserActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("activity listing failed: %w", err)
	}

	return activity, nil
}

// ListAllPosts returns every diary post annotated with the owner's display
// name and profile image.
func (d *diaryService) ListAllPosts(ctx context.Context) ([]models.PostWithAuthor, error) {
	posts, err := d.postRepository.ListPostsWithAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("posts listing failed: %w", err)
	}

	return posts, nil
}

// AdminDashboard returns every user with the posts they own.
func (d *diaryService) AdminDashboard(ctx context.Context) ([]models.UserWithPosts, error) {
	log := logger.FromContext(ctx)

	users, err := d.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("users listing failed: %w", err)
	}

	dashboard := make([]models.UserWithPosts, 0, len(users))
	for _, user := range users {
		posts, err := d.postRepository.FindPostsByOwner(ctx, user.UserID)
		if err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("dashboard posts lookup failed")
			return nil, fmt.Errorf("dashboard posts lookup failed: %w", err)
		}
		dashboard = append(dashboard, models.UserWithPosts{
			User:  user,
			Posts: posts,
		})
	}

	return dashboard, nil
}
