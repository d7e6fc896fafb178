package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/eventpool/lottery/internal/services/notifier Service

import "context"

// Service is the interface for delivering lottery outcome notifications.
// The lottery engine calls it fire-and-forget: a delivery failure never
// blocks or rolls back a committed list transition.
type Service interface {
	// Notify delivers an outcome notification to a set of recipients
	Notify(ctx context.Context, input *NotifyInput) error
}
