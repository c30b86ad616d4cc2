package domain

import "errors"

var (
	// ErrConfiguration marks a fatal startup problem: missing secret, malformed roster or schedule.
	ErrConfiguration = errors.New("configuration error")

	// ErrGroupNotFound is returned when the user group to reconcile does not exist.
	ErrGroupNotFound = errors.New("user group not found")

	// ErrTransport wraps any failure talking to an external system (Slack, calendar, cursor store).
	ErrTransport = errors.New("transport error")

	// ErrCalendarDisabled is returned by calendar operations when no calendar is configured.
	ErrCalendarDisabled = errors.New("calendar integration is disabled")
)
