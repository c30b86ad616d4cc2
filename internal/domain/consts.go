package domain

import "time"

// Weekday constants in rotation-table order (Monday first)
const (
	Monday    = 0
	Tuesday   = 1
	Wednesday = 2
	Thursday  = 3
	Friday    = 4
	Saturday  = 5
	Sunday    = 6
)

// WeekdayNames maps rotation weekday numbers to the keys used in the schedule file
var WeekdayNames = map[int]string{
	Monday:    "monday",
	Tuesday:   "tuesday",
	Wednesday: "wednesday",
	Thursday:  "thursday",
	Friday:    "friday",
	Saturday:  "saturday",
	Sunday:    "sunday",
}

// WeekdayNumbers maps schedule file keys (full and short names) to weekday numbers
var WeekdayNumbers = map[string]int{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

// PairSize is the number of identities picked per uncovered day by the pairwise fallback
const PairSize = 2

// DefaultGroupHandle is the Slack user group updated when none is configured
const DefaultGroupHandle = "oncall"

// DefaultDaysAhead is how far ahead calendar events are projected
const DefaultDaysAhead = 45

// DefaultRunAt is the local time of day the in-process scheduler triggers a run
const DefaultRunAt = "07:00"

// WeekdayOf returns the rotation weekday of t (Monday=0 .. Sunday=6).
func WeekdayOf(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// WeekNumberOf returns the ISO 8601 week number of t.
func WeekNumberOf(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// StartOfDay truncates t to local midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
