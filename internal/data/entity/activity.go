package entity

import "github.com/google/uuid"

// StampEvent records a single stamp for the admin activity feed.
type StampEvent struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	StampedBy uuid.UUID `db:"stamped_by"`
}

// DailyActivity is the aggregated stamp count for one calendar day.
type DailyActivity struct {
	Day    string `db:"day"`
	Stamps int    `db:"stamps"`
}
