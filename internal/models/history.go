package models

import (
	"time"
)

// HistoryStatus labels the outcome recorded in a history entry
type HistoryStatus string

const (
	// HistoryStatusSelected indicates the user won a lottery draw
	HistoryStatusSelected HistoryStatus = "selected"

	// HistoryStatusNotSelected indicates the user lost a lottery draw
	HistoryStatusNotSelected HistoryStatus = "not_selected"

	// HistoryStatusEnrolled indicates the user accepted an invitation
	HistoryStatusEnrolled HistoryStatus = "enrolled"

	// HistoryStatusCancelled indicates the user declined or was removed.
	// Uppercase to match the value the organizer tooling filters on.
	HistoryStatusCancelled HistoryStatus = "CANCELLED"
)

// HistoryEntry is one immutable record in a user's event timeline.
// Entries only accumulate; nothing in the normal flow mutates or removes them.
type HistoryEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// EventID is the ID of the event the entry refers to
	EventID string

	// EventName is the event's display name at the time of the entry
	EventName string

	// Timestamp is when the recorded outcome happened
	Timestamp time.Time

	// Status is the recorded outcome
	Status HistoryStatus
}

// UserProfile owns a history timeline and receives notifications
type UserProfile struct {
	// ID is the unique identifier for the user
	ID string

	// Name is the user's display name
	Name string

	// NotificationsEnabled indicates whether the user accepts notifications
	NotificationsEnabled bool

	// CreatedAt is when the profile was created
	CreatedAt time.Time
}
