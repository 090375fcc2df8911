package models

import "time"

// User represents a registered travel-diary account.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer on creation.
	UserID int64 `json:"id"`

	// Email is the address the user registered with. It is intended to be
	// unique but uniqueness is not enforced: duplicate registrations create
	// independent accounts, matching the documented behaviour of the
	// registration flow.
	Email string `json:"email"`

	// FullName is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	FullName string `json:"fullName"`

	// Bio is a free-text self description.
	Bio string `json:"bio"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted. The field is excluded from
	// JSON so that no API response can leak it.
	PasswordHash string `json:"-"`

	// ProfileImage is the public path of the image uploaded at registration
	// time (e.g. "/uploads/<name>"), or empty if none was supplied.
	ProfileImage string `json:"profileImage"`

	// IsAdmin marks administrative accounts. There is no API path that sets
	// it; administrators are provisioned by seeding the store directly.
	IsAdmin bool `json:"isAdmin"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
