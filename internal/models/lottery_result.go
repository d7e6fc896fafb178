package models

import (
	"time"
)

// LotteryResult is the outcome of a single draw. It is consumed immediately
// by the caller to drive notifications and is never persisted.
type LotteryResult struct {
	// Winners are the entrants moved to the response-pending list
	Winners []string

	// Losers are the entrants left waiting with status not_selected
	Losers []string

	// ResponseDeadline is when the winners' invitations expire
	ResponseDeadline time.Time
}
