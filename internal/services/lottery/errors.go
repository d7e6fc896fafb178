package lottery

// LotteryError is a custom error type for lottery-related errors
type LotteryError string

// Error implements the error interface
func (e LotteryError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEventNotFound             LotteryError = "event not found"
	ErrEntrantNotFound           LotteryError = "entrant not found in expected list"
	ErrEmptyPool                 LotteryError = "waiting pool is empty"
	ErrNoEligibleCandidates      LotteryError = "no eligible replacement candidates"
	ErrInsufficientCandidates    LotteryError = "requested count exceeds candidate pool"
	ErrInvalidWinnerCount        LotteryError = "winner count must be positive"
	ErrRegistrationClosed        LotteryError = "event registration is closed"
	ErrWaitingListFull           LotteryError = "waiting list is at capacity"
	ErrEntrantAlreadyJoined      LotteryError = "entrant already joined this event"
	ErrInvalidCapacity           LotteryError = "event capacity must be positive"
	ErrInvalidRegistrationWindow LotteryError = "registration window is invalid"
	ErrNilConfig                 LotteryError = "config cannot be nil"
	ErrNilEventRepo              LotteryError = "event repository cannot be nil"
	ErrNilEntrantRepo            LotteryError = "entrant repository cannot be nil"
	ErrNilProfileRepo            LotteryError = "profile repository cannot be nil"
	ErrNilDrawer                 LotteryError = "drawer cannot be nil"
	ErrNilNotifier               LotteryError = "notifier cannot be nil"
)
