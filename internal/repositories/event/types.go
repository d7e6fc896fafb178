package event

import "github.com/eventpool/lottery/internal/models"

type SaveEventInput struct {
	Event *models.Event
}

type GetEventInput struct {
	EventID string
}

type DeleteEventInput struct {
	EventID string
}

type GetEventsByOrganizerInput struct {
	OrganizerID string
}
