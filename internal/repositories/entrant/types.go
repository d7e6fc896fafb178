package entrant

import (
	"time"

	"github.com/eventpool/lottery/internal/models"
)

type AddWaitingEntrantInput struct {
	Record *models.EntrantRecord
}

type GetWaitingEntrantsInput struct {
	EventID string
}

type CountWaitingInput struct {
	EventID string
}

type ApplyDrawTransitionInput struct {
	EventID string

	// Winners move from waiting to response-pending
	Winners []string

	// Losers stay waiting and are marked not_selected
	Losers []string

	// SelectedAt is stamped on each winner's response-pending record
	SelectedAt time.Time

	// ResponseDeadline is when the winners' invitations expire
	ResponseDeadline time.Time
}

type ApplyAcceptanceInput struct {
	EventID    string
	EntrantID  string
	EnrolledAt time.Time
}

type ApplyDeclineInput struct {
	EventID    string
	EntrantID  string
	Reason     string
	DeclinedAt time.Time
}

type ApplyOrganizerRemovalInput struct {
	EventID   string
	EntrantID string
	Reason    string
	RemovedAt time.Time
}

type GetReplacementCandidatesInput struct {
	EventID string
}

type GetListsInput struct {
	EventID string
}

type GetListsOutput struct {
	Waiting         []*models.EntrantRecord
	ResponsePending []*models.EntrantRecord
	Enrolled        []*models.EntrantRecord
	Cancelled       []*models.EntrantRecord
}
