package models

import (
	"time"
)

// UnlimitedWaitingList disables the waiting list cap for an event.
const UnlimitedWaitingList = -1

// DefaultResponseWindow is how long a drawn winner has to accept or decline.
const DefaultResponseWindow = 7 * 24 * time.Hour

// Event represents a single lottery instance owned by an organizer
type Event struct {
	// ID is the unique identifier for the event
	ID string

	// Name is the display name shown in entrant history entries
	Name string

	// OrganizerID is the ID of the user who owns the event
	OrganizerID string

	// Capacity is the number of spots available in the event
	Capacity int

	// WaitingListLimit caps the waiting list size (UnlimitedWaitingList = no cap)
	WaitingListLimit int

	// RegistrationOpens is when entrants may start joining the waiting list
	RegistrationOpens time.Time

	// RegistrationCloses is when the waiting list stops accepting entrants
	RegistrationCloses time.Time

	// ResponseWindow is how long a winner has to respond to an invitation
	ResponseWindow time.Duration

	// CreatedAt is when the event was created
	CreatedAt time.Time

	// UpdatedAt is when the event was last updated
	UpdatedAt time.Time
}

// RegistrationOpen reports whether the waiting list accepts joins at t.
func (e *Event) RegistrationOpen(t time.Time) bool {
	if t.Before(e.RegistrationOpens) {
		return false
	}
	return !t.After(e.RegistrationCloses)
}
