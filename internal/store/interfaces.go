package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/adilzhm/travel-diary/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Duplicate emails are accepted by design.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the earliest-registered account with the given
	// email, or ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given ID, or ErrUserNotFound.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// ListUsers returns every registered account.
	ListUsers(ctx context.Context) ([]models.User, error)

	// DeleteUser removes the account together with its diary posts and trip
	// bookings in a single transaction. Trips themselves are unowned and
	// survive. Returns ErrUserNotFound if no such account exists.
	DeleteUser(ctx context.Context, userID int64) error
}

// PostRepository provides persistence for diary posts. The owner reference
// on each post row is the source of truth for the user↔post relationship;
// a user's post set is always computed by owner query.
type PostRepository interface {
	// CreatePost verifies the owner exists and inserts the post within one
	// transaction. Returns ErrUserNotFound if the owner is missing.
	CreatePost(ctx context.Context, post models.DiaryPost) (models.DiaryPost, error)

	// FindPostByID returns a single post, or ErrPostNotFound.
	FindPostByID(ctx context.Context, postID int64) (models.DiaryPost, error)

	// FindPostsByOwner returns all posts owned by the given user, newest last.
	FindPostsByOwner(ctx context.Context, userID int64) ([]models.DiaryPost, error)

	// ListPosts returns every diary post.
	ListPosts(ctx context.Context) ([]models.DiaryPost, error)

	// ListPostsWithAuthors returns every post annotated with the owner's
	// display name and profile image.
	ListPostsWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error)

	// DeletePost verifies the owner exists and removes the post scoped to
	// that owner. Deleting a post that is already gone is a no-op.
	DeletePost(ctx context.Context, ownerID, postID int64) error

	// DeleteOrphanPosts removes posts whose owner row no longer exists and
	// reports how many were swept.
	DeleteOrphanPosts(ctx context.Context) (int64, error)
}

// TripRepository provides persistence for trips and trip bookings.
type TripRepository interface {
	// BookTrip verifies the user exists, then inserts a fresh trip row and a
	// booking row in one transaction. No deduplication is attempted: an
	// identical destination/date always produces a new trip record.
	BookTrip(ctx context.Context, userID int64, trip models.Trip) (models.Trip, error)

	// FindTripsBookedByUser returns the trips the given user has booked.
	FindTripsBookedByUser(ctx context.Context, userID int64) ([]models.Trip, error)

	// ListUserActivity returns every user's display name with their booked
	// trips, for the recent-activity feed.
	ListUserActivity(ctx context.Context) ([]models.UserActivity, error)
}
