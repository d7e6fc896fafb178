package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/eventpool/lottery/internal/repositories/event Repository

import (
	"context"

	"github.com/eventpool/lottery/internal/models"
)

// Repository defines the interface for event data persistence
type Repository interface {
	// SaveEvent persists an event
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error)

	// DeleteEvent removes an event
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error

	// GetEventsByOrganizer retrieves all events owned by an organizer
	GetEventsByOrganizer(ctx context.Context, input *GetEventsByOrganizerInput) ([]*models.Event, error)
}
