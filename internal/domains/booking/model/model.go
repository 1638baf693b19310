package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldRoomID     = "room_id"
	FieldStartDate  = "start_date"
	FieldEndDate    = "end_date"
	FieldIsActive   = "is_active"
)

type Booking struct {
	ID         int64     `db:"id"`
	CustomerID int64     `db:"customer_id"`
	RoomID     int64     `db:"room_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	IsActive   bool      `db:"is_active"`
	model.Metadata
}

// Overlaps reports whether the booking's stay intersects [start, end].
// Both ends are inclusive; a shared single day counts as overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}

// Covers reports whether the booking's stay includes the given calendar date.
func (b *Booking) Covers(date time.Time) bool {
	return b.Overlaps(date, date)
}
