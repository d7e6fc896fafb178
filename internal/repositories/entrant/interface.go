package entrant

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/eventpool/lottery/internal/repositories/entrant Repository

import (
	"context"

	"github.com/eventpool/lottery/internal/models"
)

// Repository manages an event's four entrant lists. Every mutation is an
// atomic multi-record transition; list membership is never edited directly.
type Repository interface {
	// AddWaitingEntrant creates a waiting record for an entrant not yet in any list
	AddWaitingEntrant(ctx context.Context, input *AddWaitingEntrantInput) error

	// GetWaitingEntrants retrieves all current waiting records for an event
	GetWaitingEntrants(ctx context.Context, input *GetWaitingEntrantsInput) ([]*models.EntrantRecord, error)

	// CountWaiting returns the current size of an event's waiting list
	CountWaiting(ctx context.Context, input *CountWaitingInput) (int64, error)

	// ApplyDrawTransition atomically moves winners to response-pending and
	// marks losers not_selected on the waiting list
	ApplyDrawTransition(ctx context.Context, input *ApplyDrawTransitionInput) error

	// ApplyAcceptance atomically moves an entrant from response-pending to enrolled
	ApplyAcceptance(ctx context.Context, input *ApplyAcceptanceInput) error

	// ApplyDecline atomically moves an entrant from response-pending to cancelled
	ApplyDecline(ctx context.Context, input *ApplyDeclineInput) error

	// ApplyOrganizerRemoval atomically moves an entrant from waiting to cancelled
	ApplyOrganizerRemoval(ctx context.Context, input *ApplyOrganizerRemovalInput) error

	// GetReplacementCandidates retrieves waiting entrants never included in a draw
	GetReplacementCandidates(ctx context.Context, input *GetReplacementCandidatesInput) ([]*models.EntrantRecord, error)

	// GetLists retrieves all four entrant lists for an event
	GetLists(ctx context.Context, input *GetListsInput) (*GetListsOutput, error)
}
