package models

import (
	"time"
)

// EntrantList identifies which of the four disjoint lists holds an entrant
type EntrantList string

const (
	// ListWaiting holds entrants who joined and have not been drawn out
	ListWaiting EntrantList = "waiting"

	// ListResponsePending holds winners awaiting accept/decline
	ListResponsePending EntrantList = "response_pending"

	// ListEnrolled holds entrants who accepted their invitation
	ListEnrolled EntrantList = "enrolled"

	// ListCancelled holds entrants who declined or were removed
	ListCancelled EntrantList = "cancelled"
)

// WaitingStatus marks a waiting entrant's draw outcome
type WaitingStatus string

const (
	// WaitingStatusNone indicates an entrant never included in a completed draw
	WaitingStatusNone WaitingStatus = ""

	// WaitingStatusNotSelected indicates an entrant who lost a draw and stays waiting
	WaitingStatusNotSelected WaitingStatus = "not_selected"
)

// Cancellation reasons recorded on a cancelled record
const (
	// CancelReasonUserDeclined indicates the entrant declined their invitation
	CancelReasonUserDeclined = "user_declined"

	// CancelReasonOrganizerRemoved indicates the organizer removed the entrant
	CancelReasonOrganizerRemoved = "organizer_removed"
)

// Location is an optional coordinate captured when an entrant joins
type Location struct {
	// Latitude in decimal degrees
	Latitude float64

	// Longitude in decimal degrees
	Longitude float64
}

// EntrantRecord tracks one entrant's membership in exactly one of an
// event's four lists. Only the fields relevant to the current list are set.
type EntrantRecord struct {
	// EntrantID is the ID of the entrant
	EntrantID string

	// EventID is the ID of the event
	EventID string

	// Location is where the entrant joined from, if captured
	Location *Location

	// JoinedAt is when the entrant joined the waiting list
	JoinedAt time.Time

	// Status marks a waiting entrant's draw outcome (waiting list only)
	Status WaitingStatus

	// SelectedAt is when the entrant won a draw (response-pending list only)
	SelectedAt time.Time

	// ResponseDeadline is when the invitation expires (response-pending list only)
	ResponseDeadline time.Time

	// EnrolledAt is when the entrant accepted (enrolled list only)
	EnrolledAt time.Time

	// CheckedIn indicates whether an enrolled entrant has checked in
	CheckedIn bool

	// DeclinedAt is when the entrant left for the cancelled list
	DeclinedAt time.Time

	// Reason is why the entrant was cancelled (cancelled list only)
	Reason string
}
