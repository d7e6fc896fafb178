package lottery

import "context"

// Service defines the interface for lottery operations
type Service interface {
	// CreateEvent creates a new lottery event for an organizer
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)

	// JoinWaitingList adds an entrant to an event's waiting list
	JoinWaitingList(ctx context.Context, input *JoinWaitingListInput) (*JoinWaitingListOutput, error)

	// ExecuteDraw runs the lottery over the full waiting pool
	ExecuteDraw(ctx context.Context, input *ExecuteDrawInput) (*ExecuteDrawOutput, error)

	// ExecuteReplacementDraw runs a draw over entrants never yet drawn
	ExecuteReplacementDraw(ctx context.Context, input *ExecuteReplacementDrawInput) (*ExecuteReplacementDrawOutput, error)

	// HandleAcceptance enrolls a winner who accepted their invitation
	HandleAcceptance(ctx context.Context, input *HandleAcceptanceInput) (*HandleAcceptanceOutput, error)

	// HandleDecline cancels a winner who declined their invitation
	HandleDecline(ctx context.Context, input *HandleDeclineInput) (*HandleDeclineOutput, error)

	// HandleOrganizerRemoval cancels a waiting entrant at the organizer's request
	HandleOrganizerRemoval(ctx context.Context, input *HandleOrganizerRemovalInput) (*HandleOrganizerRemovalOutput, error)

	// GetEventLists returns the four entrant lists for an event
	GetEventLists(ctx context.Context, input *GetEventListsInput) (*GetEventListsOutput, error)
}
