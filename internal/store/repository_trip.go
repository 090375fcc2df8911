package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adilzhm/travel-diary/internal/logger"
	"github.com/adilzhm/travel-diary/models"
)

// tripRepository is the SQL-backed implementation of [TripRepository].
// Bookings live in the trip_bookings join table, one row per (user, trip);
// a booking is a single atomic insert, so concurrent bookings by different
// users never interfere.
type tripRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTripRepository constructs a [TripRepository] backed by the provided
// database connection and logger.
func NewTripRepository(db *DB, logger *logger.Logger) TripRepository {
	logger.Debug().Msg("creating trip repository")
	return &tripRepository{
		db:     db,
		logger: logger,
	}
}

// BookTrip records a booking: the user-existence check, the trip insert and
// the booking insert share one transaction. Each call creates a fresh trip
// row; identical destinations are separate trips on purpose.
//
// Returns [ErrUserNotFound] when the booking user does not exist.
func (r *tripRepository) BookTrip(ctx context.Context, userID int64, trip models.Trip) (models.Trip, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.BookTrip").Msg("failed to begin transaction")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var foundUser int64
	if err := tx.QueryRowContext(ctx, userIDExists, userID).Scan(&foundUser); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Trip{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*tripRepository.BookTrip").Int64("user_id", userID).Msg("failed to check booking user")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	now := time.Now().UTC()

	var created models.Trip
	row := tx.QueryRowContext(ctx, createTrip,
		trip.Destination, trip.Date, trip.Description, trip.Price, now)
	if err := row.Scan(&created.TripID, &created.Destination, &created.Date,
		&created.Description, &created.Price, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*tripRepository.BookTrip").Msg("error: scanning created trip")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if _, err := tx.ExecContext(ctx, createBooking, userID, created.TripID, now); err != nil {
		log.Err(err).Str("func", "*tripRepository.BookTrip").Int64("trip_id", created.TripID).Msg("failed to insert booking")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*tripRepository.BookTrip").Msg("failed to commit transaction")
		return models.Trip{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindTripsBookedByUser returns the trips the given user booked, oldest first.
func (r *tripRepository) FindTripsBookedByUser(ctx context.Context, userID int64) ([]models.Trip, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, findTripsBookedByUser, userID)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.FindTripsBookedByUser").Int64("user_id", userID).Msg("failed to execute trips query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	trips := make([]models.Trip, 0, 10)
	for rows.Next() {
		var t models.Trip
		if err := rows.Scan(&t.TripID, &t.Destination, &t.Date, &t.Description, &t.Price, &t.CreatedAt); err != nil {
			log.Err(err).Str("func", "*tripRepository.FindTripsBookedByUser").Msg("failed to scan trip row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		trips = append(trips, t)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tripRepository.FindTripsBookedByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return trips, nil
}

// ListUserActivity returns every user with their booked trips. Users without
// bookings appear with an empty trip list; the LEFT JOIN produces NULL trip
// columns for them, scanned through sql.Null wrappers.
func (r *tripRepository) ListUserActivity(ctx context.Context) ([]models.UserActivity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUserActivityQuery()
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListUserActivity").Msg("failed to build activity join query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*tripRepository.ListUserActivity").Msg("failed to execute activity join query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	// Rows arrive ordered by user, then trip; fold them into one entry per user.
	activity := make([]models.UserActivity, 0, 50)
	var lastUserID int64 = -1
	for rows.Next() {
		var (
			userID      int64
			fullName    string
			tripID      sql.NullInt64
			destination sql.NullString
			date        sql.NullTime
			description sql.NullString
			price       sql.NullFloat64
		)
		if err := rows.Scan(&userID, &fullName, &tripID, &destination, &date, &description, &price); err != nil {
			log.Err(err).Str("func", "*tripRepository.ListUserActivity").Msg("failed to scan activity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if userID != lastUserID {
			activity = append(activity, models.UserActivity{
				User:  fullName,
				Trips: []models.Trip{},
			})
			lastUserID = userID
		}

		if tripID.Valid {
			entry := &activity[len(activity)-1]
			entry.Trips = append(entry.Trips, models.Trip{
				TripID:      tripID.Int64,
				Destination: destination.String,
				Date:        date.Time,
				Description: description.String,
				Price:       price.Float64,
			})
		}
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*tripRepository.ListUserActivity").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return activity, nil
}
