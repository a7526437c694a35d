package domain

import "time"

// DayCounts orders booked for one delivery date
type DayCounts struct {
	Normal int
	Urgent int
}

// Remaining free slots for one date
type Remaining struct {
	Normal int
	Urgent int
}

// BookingCounts snapshot of booked orders keyed by date (YYYY-MM-DD)
type BookingCounts map[string]DayCounts

// DateKey formats date as a BookingCounts key
func DateKey(date time.Time) string {
	return date.Format(DateFormat)
}

// For returns the counts for date, zero if nothing is booked
func (c BookingCounts) For(date time.Time) DayCounts {
	if c == nil {
		return DayCounts{}
	}
	return c[DateKey(date)]
}

// DateAvailability free normal slots on one date
type DateAvailability struct {
	Date           time.Time
	RemainingSlots int
	IsFull         bool
}

// UrgentDateAvailability whether an urgent order can be delivered on one date
type UrgentDateAvailability struct {
	Date      time.Time
	Available bool
}
