package notifier

import "github.com/eventpool/lottery/internal/models"

// Kind categorizes an outcome notification
type Kind string

const (
	// KindLotteryWin notifies entrants selected in a draw
	KindLotteryWin Kind = "lottery_win"

	// KindLotteryLoss notifies entrants not selected in a draw
	KindLotteryLoss Kind = "lottery_loss"

	// KindReplacement notifies entrants selected in a replacement draw
	KindReplacement Kind = "replacement"

	// KindCancelled notifies entrants who declined or were removed
	KindCancelled Kind = "cancelled"
)

// NotifyInput contains parameters for delivering a notification
type NotifyInput struct {
	// Kind is the outcome being announced
	Kind Kind

	// Recipients are the entrant IDs to notify
	Recipients []string

	// Event is the event the outcome belongs to
	Event *models.Event

	// Payload is a short human-readable message body
	Payload string
}
