package lottery

import (
	"time"

	"github.com/eventpool/lottery/internal/models"
	entrantRepo "github.com/eventpool/lottery/internal/repositories/entrant"
)

type CreateEventInput struct {
	// Name is the event's display name
	Name string

	// OrganizerID is the user creating the event
	OrganizerID string

	// Capacity is the number of spots available
	Capacity int

	// WaitingListLimit caps the waiting list; zero or negative means unlimited
	WaitingListLimit int

	// RegistrationOpens is when the waiting list opens
	RegistrationOpens time.Time

	// RegistrationCloses is when the waiting list closes
	RegistrationCloses time.Time

	// ResponseWindow overrides the default invitation response window (optional)
	ResponseWindow time.Duration
}

type CreateEventOutput struct {
	Event *models.Event
}

type JoinWaitingListInput struct {
	EventID   string
	EntrantID string

	// Location is the entrant's join location, if captured
	Location *models.Location
}

type JoinWaitingListOutput struct {
	Record *models.EntrantRecord
}

type ExecuteDrawInput struct {
	EventID         string
	NumberOfWinners int
}

type ExecuteDrawOutput struct {
	Result *models.LotteryResult
}

type ExecuteReplacementDrawInput struct {
	EventID              string
	NumberOfReplacements int
}

type ExecuteReplacementDrawOutput struct {
	Result *models.LotteryResult
}

type HandleAcceptanceInput struct {
	EventID   string
	EntrantID string
}

type HandleAcceptanceOutput struct {
}

type HandleDeclineInput struct {
	EventID   string
	EntrantID string
}

type HandleDeclineOutput struct {
	// ShouldTriggerReplacement signals that a replacement draw may now be
	// warranted. The engine never triggers one itself; that decision stays
	// with the caller.
	ShouldTriggerReplacement bool
}

type HandleOrganizerRemovalInput struct {
	EventID   string
	EntrantID string

	// Reason is recorded on the cancelled record; defaults to organizer_removed
	Reason string
}

type HandleOrganizerRemovalOutput struct {
}

type GetEventListsInput struct {
	EventID string
}

type GetEventListsOutput struct {
	Lists *entrantRepo.GetListsOutput
}
