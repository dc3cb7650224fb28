package domain

import (
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Booking represents a reservation of the shared meeting room.
// Bookings are uniquely keyed by (Date, StartTime); within a single date no
// two bookings may overlap.
type Booking struct {
	Date            DateKey
	StartTime       types.TimeString
	DurationMinutes int
	OwnerID         int64
}

// EndTime returns the exclusive end of the booking interval
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// Overlaps reports whether two bookings on the same date intersect.
// Intervals are half-open [start, start+duration), so a booking ending
// exactly when another starts does not conflict.
func (b *Booking) Overlaps(other *Booking) bool {
	if b.Date != other.Date {
		return false
	}
	aStart, err := b.StartTime.Minutes()
	if err != nil {
		return false
	}
	bStart, err := other.StartTime.Minutes()
	if err != nil {
		return false
	}
	aEnd := aStart + b.DurationMinutes
	bEnd := bStart + other.DurationMinutes
	return aStart < bEnd && bStart < aEnd
}

// IsValidDuration reports whether the duration is one of the allowed
// booking lengths
func IsValidDuration(minutes int) bool {
	for _, d := range AllowedDurationsMinutes {
		if minutes == d {
			return true
		}
	}
	return false
}
