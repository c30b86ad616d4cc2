package entity

import "time"

// CalendarEvent is an on-call shift projected onto a calendar.
type CalendarEvent struct {
	Summary     string
	Location    string
	Description string
	Start       time.Time
	End         time.Time
	TimeZone    string
	Attendees   []string
}
