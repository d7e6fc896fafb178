package profile

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/eventpool/lottery/internal/repositories/profile Repository

import (
	"context"

	"github.com/eventpool/lottery/internal/models"
)

// Repository defines the interface for user profile and history persistence
type Repository interface {
	// SaveProfile persists a user profile
	SaveProfile(ctx context.Context, input *SaveProfileInput) error

	// GetProfile retrieves a user profile by ID
	GetProfile(ctx context.Context, input *GetProfileInput) (*models.UserProfile, error)

	// AppendHistory appends an entry to a user's event timeline. The timeline
	// is append-only; duplicate entries are not deduplicated.
	AppendHistory(ctx context.Context, input *AppendHistoryInput) error

	// GetHistory retrieves a user's event timeline in append order
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)
}
