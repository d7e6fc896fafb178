package notifier

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// logService implements Service by writing notifications to a structured
// logger. It stands in for a real push provider so the engine and the CLI
// can run without one.
type logService struct {
	logger *zap.Logger
}

// NewLog creates a logging notifier
func NewLog(logger *zap.Logger) (*logService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &logService{
		logger: logger,
	}, nil
}

// Notify logs the notification instead of delivering it
func (s *logService) Notify(ctx context.Context, input *NotifyInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	eventID := ""
	if input.Event != nil {
		eventID = input.Event.ID
	}

	s.logger.Info("notification dispatched",
		zap.String("kind", string(input.Kind)),
		zap.String("event_id", eventID),
		zap.Int("recipients", len(input.Recipients)),
		zap.String("payload", input.Payload),
	)

	return nil
}
