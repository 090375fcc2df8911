package models

// Response shapes returned by the HTTP API. They are assembled by the
// service layer so that handlers only serialize.

// ProfileResponse is the payload of GET /profile: the caller's own account
// data plus their diary posts, computed by owner query. The password hash is
// structurally absent.
type ProfileResponse struct {
	Email        string      `json:"email"`
	FullName     string      `json:"fullName"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage"`
	Posts        []DiaryPost `json:"posts"`
}

// UserActivity is one element of GET /recent-activity: a user's display name
// together with the trips they booked.
type UserActivity struct {
	User  string `json:"user"`
	Trips []Trip `json:"trips"`
}

// PostWithAuthor is one element of GET /users-posts: a diary post annotated
// with the owner's display name and profile image.
type PostWithAuthor struct {
	DiaryPost
	AuthorName  string `json:"authorName"`
	AuthorImage string `json:"authorImage"`
}

// UserWithPosts is one element of GET /admin/dashboard: a user together with
// every diary post they own.
type UserWithPosts struct {
	User
	Posts []DiaryPost `json:"posts"`
}

// BookTripResponse is the payload of POST /book-trip.
type BookTripResponse struct {
	Success bool  `json:"success"`
	User    User  `json:"user"`
	Trip    Trip  `json:"trip"`
	TripID  int64 `json:"tripId"`
}

// MessageResponse is a generic confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is the payload of POST /login.
type TokenResponse struct {
	Token string `json:"token"`
}
