package models

// Request payloads accepted by the HTTP API.

// RegisterRequest carries the multipart form fields of POST /register. The
// plaintext password lives only in this struct; it is hashed before any
// persistence and never serialized back.
type RegisterRequest struct {
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Bio          string `json:"bio"`
	Password     string `json:"-"`
	ProfileImage string `json:"profileImage"`
}

// LoginRequest is the JSON body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// BookTripRequest is the JSON body of POST /book-trip.
type BookTripRequest struct {
	Trip Trip `json:"trip"`
}

// DeletePostRequest is the JSON body of DELETE /admin/deletePost.
type DeletePostRequest struct {
	UserID int64 `json:"userId"`
	PostID int64 `json:"postId"`
}

// DeleteUserRequest is the JSON body of DELETE /admin/deleteUser.
type DeleteUserRequest struct {
	UserID int64 `json:"userId"`
}
