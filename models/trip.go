package models

import "time"

// Trip is a bookable trip record. Trips are not owned by anyone directly:
// a user references a trip through a booking row, but a trip does not
// reference its bookers. The booking flow always creates a fresh trip per
// booking, so identical destinations/dates are never deduplicated.
type Trip struct {
	TripID      int64     `json:"id"`
	Destination string    `json:"destination"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`

	// Price is a numeric amount. The source system carried it as free text;
	// it is validated as a non-negative number at the boundary here.
	Price float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Trip model.
func (t Trip) TableName() string {
	return "trips"
}
