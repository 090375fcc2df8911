package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Fixed-shape statements are kept as prepared constants; list queries whose
// shape varies (joins, optional filters) are built with squirrel below.
const (
	createUser = `INSERT INTO users (email, full_name, bio, password_hash, profile_image, created_at)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, email, full_name, bio, password_hash, profile_image, is_admin, created_at;`

	// Duplicate emails are allowed; login resolves the earliest account.
	findUserByEmail = `SELECT user_id, email, full_name, bio, password_hash, profile_image, is_admin, created_at
    FROM users
    WHERE email = $1
    ORDER BY user_id
    LIMIT 1;`

	findUserByID = `SELECT user_id, email, full_name, bio, password_hash, profile_image, is_admin, created_at
    FROM users
    WHERE user_id = $1;`

	listUsers = `SELECT user_id, email, full_name, bio, password_hash, profile_image, is_admin, created_at
    FROM users
    ORDER BY user_id;`

	userIDExists = `SELECT user_id FROM users WHERE user_id = $1;`

	deleteUserBookings = `DELETE FROM trip_bookings WHERE user_id = $1;`
	deleteUserPosts    = `DELETE FROM diary_posts WHERE user_id = $1;`
	deleteUserByID     = `DELETE FROM users WHERE user_id = $1;`

	createPost = `INSERT INTO diary_posts (user_id, destination, date, description, itinerary, image, visibility, created_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING post_id, user_id, destination, date, description, itinerary, image, visibility, created_at;`

	findPostByID = `SELECT post_id, user_id, destination, date, description, itinerary, image, visibility, created_at
    FROM diary_posts
    WHERE post_id = $1;`

	findPostsByOwner = `SELECT post_id, user_id, destination, date, description, itinerary, image, visibility, created_at
    FROM diary_posts
    WHERE user_id = $1
    ORDER BY post_id;`

	listPosts = `SELECT post_id, user_id, destination, date, description, itinerary, image, visibility, created_at
    FROM diary_posts
    ORDER BY post_id;`

	// Scoped to the owner so one user can never delete another user's post.
	deletePostByID = `DELETE FROM diary_posts WHERE post_id = $1 AND user_id = $2;`

	deleteOrphanPosts = `DELETE FROM diary_posts
    WHERE user_id NOT IN (SELECT user_id FROM users);`

	createTrip = `INSERT INTO trips (destination, date, description, price, created_at)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING trip_id, destination, date, description, price, created_at;`

	createBooking = `INSERT INTO trip_bookings (user_id, trip_id, created_at)
    VALUES ($1, $2, $3);`

	findTripsBookedByUser = `SELECT t.trip_id, t.destination, t.date, t.description, t.price, t.created_at
    FROM trips t
    JOIN trip_bookings b ON b.trip_id = t.trip_id
    WHERE b.user_id = $1
    ORDER BY t.trip_id;`
)

// queryBuilder is the shared squirrel builder configured for $N placeholders,
// which both the pgx and sqlite3 drivers accept.
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListPostsWithAuthorsQuery builds the join used by the public feed:
// every diary post together with the owner's display name and profile image.
func buildListPostsWithAuthorsQuery() (string, []any, error) {
	return queryBuilder.
		Select(
			"p.post_id", "p.user_id", "p.destination", "p.date", "p.description",
			"p.itinerary", "p.image", "p.visibility", "p.created_at",
			"u.full_name", "u.profile_image",
		).
		From("diary_posts p").
		Join("users u ON u.user_id = p.user_id").
		OrderBy("p.post_id").
		ToSql()
}

// buildListUserActivityQuery builds the recent-activity join: every user
// paired with their booked trips. A LEFT JOIN keeps users without bookings
// in the result set with NULL trip columns.
func buildListUserActivityQuery() (string, []any, error) {
	return queryBuilder.
		Select(
			"u.user_id", "u.full_name",
			"t.trip_id", "t.destination", "t.date", "t.description", "t.price",
		).
		From("users u").
		LeftJoin("trip_bookings b ON b.user_id = u.user_id").
		LeftJoin("trips t ON t.trip_id = b.trip_id").
		OrderBy("u.user_id", "t.trip_id").
		ToSql()
}
