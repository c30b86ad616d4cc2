package entity

import "time"

// FallbackPolicyKind selects how the pairwise fallback picks its index
type FallbackPolicyKind string

const (
	// FallbackWeekNumber derives the index from the ISO week number
	FallbackWeekNumber FallbackPolicyKind = "week_number"
	// FallbackCursor reads and advances a persisted cursor
	FallbackCursor FallbackPolicyKind = "cursor"
)

// RotationTable maps a weekday (Monday=0 .. Sunday=6) to the identities on call that day.
type RotationTable map[int][]Identity

// Covers reports whether weekday has a non-empty assignment.
func (t RotationTable) Covers(weekday int) bool {
	return len(t[weekday]) > 0
}

// Cursor is the persisted state of the cursor fallback policy. Next is the index
// the next uncovered day consumes. ConsumedOn is the day that consumed Next-1,
// zero when unknown (never run, or seeded by hand).
type Cursor struct {
	Next       int64
	ConsumedOn time.Time
}

// CalendarSettings configures the optional calendar projection.
type CalendarSettings struct {
	Enabled    bool
	CalendarID string
	DaysAhead  int
}

// Schedule is the full declarative rotation configuration.
type Schedule struct {
	Timezone       *time.Location
	GroupHandle    string
	RotateWeekend  bool
	FallbackPolicy FallbackPolicyKind
	Roster         Roster
	Table          RotationTable
	Calendar       CalendarSettings
}

// FallsBack reports whether weekday is served by the pairwise fallback.
func (s *Schedule) FallsBack(weekday int) bool {
	return s.RotateWeekend && !s.Table.Covers(weekday)
}

// OnCallSet is a de-duplicated, insertion-ordered set of identities.
type OnCallSet []Identity

// NewOnCallSet builds a set from identities, keeping the first occurrence of each name.
func NewOnCallSet(identities ...Identity) OnCallSet {
	seen := make(map[string]bool, len(identities))
	set := make(OnCallSet, 0, len(identities))
	for _, identity := range identities {
		if seen[identity.Name] {
			continue
		}
		seen[identity.Name] = true
		set = append(set, identity)
	}
	return set
}

// Names returns the names of the identities in the set.
func (s OnCallSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, identity := range s {
		names = append(names, identity.Name)
	}
	return names
}

// Emails returns the email addresses of the identities in the set.
func (s OnCallSet) Emails() []string {
	emails := make([]string, 0, len(s))
	for _, identity := range s {
		emails = append(emails, identity.Email)
	}
	return emails
}
