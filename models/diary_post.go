package models

import "time"

// Visibility is the closed set of audience values a diary post may carry.
// The source system stored visibility as free text; here it is validated at
// the boundary and rejected unless it matches one of the declared constants.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// DiaryPost is a single travel-diary entry owned by exactly one user.
// The owner reference (UserID) is the source of truth for the user↔post
// relationship; a user's post list is always computed by querying posts by
// owner rather than stored alongside the user.
type DiaryPost struct {
	PostID int64 `json:"id"`

	// UserID references the owning user. Enforced by a foreign key at the
	// persistence layer; a post can never be created for a missing owner.
	UserID int64 `json:"userId"`

	Destination string     `json:"destination"`
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	Itinerary   string     `json:"itinerary"`
	Image       string     `json:"image"`
	Visibility  Visibility `json:"visibility"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the DiaryPost model.
func (p DiaryPost) TableName() string {
	return "diary_posts"
}
