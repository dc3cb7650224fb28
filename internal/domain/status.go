package domain

// WorkStatus represents a person's work location for a single day
type WorkStatus string

const (
	StatusOffice       WorkStatus = "office"
	StatusRemote       WorkStatus = "remote"
	StatusBusinessTrip WorkStatus = "business_trip"
	StatusSickLeave    WorkStatus = "sick_leave"
	StatusVacation     WorkStatus = "vacation"
	// StatusWeekend is derived from the calendar and is never chosen directly
	StatusWeekend WorkStatus = "weekend"
)

// weekdayCycle is the toggle order for regular working days
var weekdayCycle = []WorkStatus{
	StatusOffice,
	StatusRemote,
	StatusBusinessTrip,
	StatusSickLeave,
	StatusVacation,
}

// weekendCycle is the toggle order for Saturdays and Sundays; there is no
// remote-work concept on a weekend, only travel or leave
var weekendCycle = []WorkStatus{
	StatusWeekend,
	StatusBusinessTrip,
	StatusVacation,
}

// DefaultStatus returns the status a day carries before any toggle
func DefaultStatus(date DateKey) WorkStatus {
	if date.IsWeekend() {
		return StatusWeekend
	}
	return StatusOffice
}

// NextStatus advances a status along the cycle for the given date. An
// unrecognized current value is treated as the cycle's first element before
// advancing, so the function is total.
func NextStatus(current WorkStatus, date DateKey) WorkStatus {
	cycle := weekdayCycle
	if date.IsWeekend() {
		cycle = weekendCycle
	}

	idx := 0
	for i, s := range cycle {
		if s == current {
			idx = i
			break
		}
	}
	return cycle[(idx+1)%len(cycle)]
}

// StatusEntry is one day of a user's status window
type StatusEntry struct {
	UserID int64
	Date   DateKey
	Status WorkStatus
}
