package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// StatusWindowDays is the size of the rolling status window: today plus the
// next nine days
const StatusWindowDays = 10

// MaxDisplayNameLength is the maximum display name length in runes
const MaxDisplayNameLength = 50

// AllowedDurationsMinutes перечень допустимых длительностей брони
var AllowedDurationsMinutes = []int{30, 60, 90}
