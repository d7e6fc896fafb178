package profile

import "github.com/eventpool/lottery/internal/models"

type SaveProfileInput struct {
	Profile *models.UserProfile
}

type GetProfileInput struct {
	UserID string
}

type AppendHistoryInput struct {
	UserID string
	Entry  *models.HistoryEntry
}

type GetHistoryInput struct {
	UserID string
}

type GetHistoryOutput struct {
	Entries []*models.HistoryEntry
}
