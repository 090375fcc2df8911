// Package adapter provides a typed client for the travel-diary HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from the
// underlying transport. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/adilzhm/travel-diary/models"
)

// ServerAdapter defines transport-agnostic communication with the
// travel-diary server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. The request is sent as a multipart form
	// matching the server's POST /register contract.
	Register(ctx context.Context, request models.RegisterRequest) error

	// Login authenticates with email and password. On success the returned
	// bearer token is stored via SetToken and also returned to the caller.
	Login(ctx context.Context, request models.LoginRequest) (string, error)

	// Profile fetches the authenticated caller's account data and posts.
	Profile(ctx context.Context) (models.ProfileResponse, error)

	// CreatePost creates a diary post for the authenticated caller. The post
	// is sent as a multipart form matching POST /diary-posts.
	CreatePost(ctx context.Context, post models.DiaryPost) (models.DiaryPost, error)

	// BookTrip books a trip for the authenticated caller.
	BookTrip(ctx context.Context, trip models.Trip) (models.BookTripResponse, error)

	// ListUsers fetches the public user directory.
	ListUsers(ctx context.Context) ([]models.User, error)

	// RecentActivity fetches every user's booked trips.
	RecentActivity(ctx context.Context) ([]models.UserActivity, error)

	// ListAllPosts fetches all diary posts annotated with author info.
	ListAllPosts(ctx context.Context) ([]models.PostWithAuthor, error)

	// AdminDashboard fetches all users with their posts. Requires an admin
	// token.
	AdminDashboard(ctx context.Context) ([]models.UserWithPosts, error)

	// AdminDeletePost deletes a post on behalf of its owner. Requires an
	// admin token.
	AdminDeletePost(ctx context.Context, request models.DeletePostRequest) error

	// AdminDeleteUser deletes a user together with their posts and bookings.
	// Requires an admin token.
	AdminDeleteUser(ctx context.Context, request models.DeleteUserRequest) error
}
