package lottery

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/eventpool/lottery/internal/common/clock"
	"github.com/eventpool/lottery/internal/drawer"
	"github.com/eventpool/lottery/internal/models"
	entrantRepo "github.com/eventpool/lottery/internal/repositories/entrant"
	eventRepo "github.com/eventpool/lottery/internal/repositories/event"
	profileRepo "github.com/eventpool/lottery/internal/repositories/profile"
	"github.com/eventpool/lottery/internal/services/notifier"
)

// Config holds configuration for the lottery service
type Config struct {
	// EventRepo stores events
	EventRepo eventRepo.Repository

	// EntrantRepo stores the per-event entrant lists
	EntrantRepo entrantRepo.Repository

	// ProfileRepo stores user profiles and history timelines
	ProfileRepo profileRepo.Repository

	// Drawer selects winners
	Drawer drawer.Drawer

	// Notifier delivers outcome notifications (best-effort)
	Notifier notifier.Service

	// Clock provides the current time (defaults to the system clock)
	Clock clock.Clock

	// Logger receives best-effort failure reports (defaults to a no-op logger)
	Logger *zap.Logger
}

// service implements the Service interface
type service struct {
	eventRepo   eventRepo.Repository
	entrantRepo entrantRepo.Repository
	profileRepo profileRepo.Repository
	drawer      drawer.Drawer
	notifier    notifier.Service
	clock       clock.Clock
	logger      *zap.Logger
	locks       *eventLocks
}

// New creates a new lottery service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.EntrantRepo == nil {
		return nil, ErrNilEntrantRepo
	}

	if cfg.ProfileRepo == nil {
		return nil, ErrNilProfileRepo
	}

	if cfg.Drawer == nil {
		return nil, ErrNilDrawer
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &service{
		eventRepo:   cfg.EventRepo,
		entrantRepo: cfg.EntrantRepo,
		profileRepo: cfg.ProfileRepo,
		drawer:      cfg.Drawer,
		notifier:    cfg.Notifier,
		clock:       clk,
		logger:      logger,
		locks:       newEventLocks(),
	}, nil
}

// CreateEvent creates a new lottery event for an organizer
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Name == "" || input.OrganizerID == "" {
		return nil, errors.New("event name and organizer ID cannot be empty")
	}

	if input.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	if !input.RegistrationCloses.After(input.RegistrationOpens) {
		return nil, ErrInvalidRegistrationWindow
	}

	waitingListLimit := input.WaitingListLimit
	if waitingListLimit <= 0 {
		waitingListLimit = models.UnlimitedWaitingList
	}

	responseWindow := input.ResponseWindow
	if responseWindow <= 0 {
		responseWindow = models.DefaultResponseWindow
	}

	now := s.clock.Now()

	event := &models.Event{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		OrganizerID:        input.OrganizerID,
		Capacity:           input.Capacity,
		WaitingListLimit:   waitingListLimit,
		RegistrationOpens:  input.RegistrationOpens,
		RegistrationCloses: input.RegistrationCloses,
		ResponseWindow:     responseWindow,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	err := s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{
		Event: event,
	})
	if err != nil {
		return nil, err
	}

	return &CreateEventOutput{
		Event: event,
	}, nil
}

// JoinWaitingList adds an entrant to an event's waiting list
func (s *service) JoinWaitingList(ctx context.Context, input *JoinWaitingListInput) (*JoinWaitingListOutput, error) {
	if input == nil || input.EventID == "" || input.EntrantID == "" {
		return nil, errors.New("input, event ID and entrant ID cannot be empty")
	}

	lock := s.locks.get(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	if !event.RegistrationOpen(now) {
		return nil, ErrRegistrationClosed
	}

	if event.WaitingListLimit != models.UnlimitedWaitingList {
		count, err := s.entrantRepo.CountWaiting(ctx, &entrantRepo.CountWaitingInput{
			EventID: input.EventID,
		})
		if err != nil {
			return nil, err
		}

		if count >= int64(event.WaitingListLimit) {
			return nil, ErrWaitingListFull
		}
	}

	record := &models.EntrantRecord{
		EntrantID: input.EntrantID,
		EventID:   input.EventID,
		Location:  input.Location,
		JoinedAt:  now,
	}

	err = s.entrantRepo.AddWaitingEntrant(ctx, &entrantRepo.AddWaitingEntrantInput{
		Record: record,
	})
	if err != nil {
		if errors.Is(err, entrantRepo.ErrEntrantAlreadyExists) {
			return nil, ErrEntrantAlreadyJoined
		}
		return nil, err
	}

	return &JoinWaitingListOutput{
		Record: record,
	}, nil
}

// ExecuteDraw runs the lottery over the full waiting pool
func (s *service) ExecuteDraw(ctx context.Context, input *ExecuteDrawInput) (*ExecuteDrawOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	if input.NumberOfWinners <= 0 {
		return nil, ErrInvalidWinnerCount
	}

	lock := s.locks.get(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	pool, err := s.entrantRepo.GetWaitingEntrants(ctx, &entrantRepo.GetWaitingEntrantsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	if input.NumberOfWinners > len(pool) {
		return nil, ErrInsufficientCandidates
	}

	result, err := s.runDraw(ctx, event, pool, input.NumberOfWinners, notifier.KindLotteryWin)
	if err != nil {
		return nil, err
	}

	return &ExecuteDrawOutput{
		Result: result,
	}, nil
}

// ExecuteReplacementDraw runs a draw over waiting entrants never yet included
// in a completed draw. Entrants already marked not_selected stay excluded.
func (s *service) ExecuteReplacementDraw(ctx context.Context, input *ExecuteReplacementDrawInput) (*ExecuteReplacementDrawOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	if input.NumberOfReplacements <= 0 {
		return nil, ErrInvalidWinnerCount
	}

	lock := s.locks.get(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	eligible, err := s.entrantRepo.GetReplacementCandidates(ctx, &entrantRepo.GetReplacementCandidatesInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	if len(eligible) == 0 {
		return nil, ErrNoEligibleCandidates
	}

	if input.NumberOfReplacements > len(eligible) {
		return nil, ErrInsufficientCandidates
	}

	result, err := s.runDraw(ctx, event, eligible, input.NumberOfReplacements, notifier.KindReplacement)
	if err != nil {
		return nil, err
	}

	return &ExecuteReplacementDrawOutput{
		Result: result,
	}, nil
}

// runDraw selects winners from the candidate pool, commits the list
// transition, then fires the best-effort side channels. If the commit fails
// nothing is reported as drawn.
func (s *service) runDraw(ctx context.Context, event *models.Event, pool []*models.EntrantRecord, count int, winKind notifier.Kind) (*models.LotteryResult, error) {
	candidates := make([]string, 0, len(pool))
	for _, record := range pool {
		candidates = append(candidates, record.EntrantID)
	}

	winners, losers, err := s.drawer.SelectWinners(candidates, count)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	responseWindow := event.ResponseWindow
	if responseWindow <= 0 {
		responseWindow = models.DefaultResponseWindow
	}
	deadline := now.Add(responseWindow)

	err = s.entrantRepo.ApplyDrawTransition(ctx, &entrantRepo.ApplyDrawTransitionInput{
		EventID:          event.ID,
		Winners:          winners,
		Losers:           losers,
		SelectedAt:       now,
		ResponseDeadline: deadline,
	})
	if err != nil {
		if errors.Is(err, entrantRepo.ErrEntrantNotFound) {
			return nil, ErrEntrantNotFound
		}
		return nil, err
	}

	s.recordDrawHistory(ctx, event, winners, losers, now)
	s.notify(ctx, winKind, winners, event, "You were selected! Respond before the deadline to claim your spot.")
	s.notify(ctx, notifier.KindLotteryLoss, losers, event, "You were not selected this round. You may still be drawn as a replacement.")

	return &models.LotteryResult{
		Winners:          winners,
		Losers:           losers,
		ResponseDeadline: deadline,
	}, nil
}

// HandleAcceptance enrolls a winner who accepted their invitation
func (s *service) HandleAcceptance(ctx context.Context, input *HandleAcceptanceInput) (*HandleAcceptanceOutput, error) {
	if input == nil || input.EventID == "" || input.EntrantID == "" {
		return nil, errors.New("input, event ID and entrant ID cannot be empty")
	}

	lock := s.locks.get(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	err = s.entrantRepo.ApplyAcceptance(ctx, &entrantRepo.ApplyAcceptanceInput{
		EventID:    input.EventID,
		EntrantID:  input.EntrantID,
		EnrolledAt: now,
	})
	if err != nil {
		if errors.Is(err, entrantRepo.ErrEntrantNotFound) {
			return nil, ErrEntrantNotFound
		}
		return nil, err
	}

	s.recordHistory(ctx, input.EntrantID, event, models.HistoryStatusEnrolled, now)

	return &HandleAcceptanceOutput{}, nil
}

// HandleDecline cancels a winner who declined their invitation. The output
// always signals that a replacement draw may be warranted.
func (s *service) HandleDecline(ctx context.Context, input *HandleDeclineInput) (*HandleDeclineOutput, error) {
	if input == nil || input.EventID == "" || input.EntrantID == "" {
		return nil, errors.New("input, event ID and entrant ID cannot be empty")
	}

	lock := s.locks.get(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	err = s.entrantRepo.ApplyDecline(ctx, &entrantRepo.ApplyDeclineInput{
		EventID:    input.EventID,
		EntrantID:  input.EntrantID,
		Reason:     models.CancelReasonUserDeclined,
		DeclinedAt: now,
	})
	if err != nil {
		if errors.Is(err, entrantRepo.ErrEntrantNotFound) {
			return nil, ErrEntrantNotFound
		}
		return nil, err
	}

	s.recordHistory(ctx, input.EntrantID, event, models.HistoryStatusCancelled, now)
	s.notify(ctx, notifier.KindCancelled, []string{input.EntrantID}, event, "Your spot has been released.")

	return &HandleDeclineOutput{
		ShouldTriggerReplacement: true,
	}, nil
}

// HandleOrganizerRemoval cancels a waiting entrant at the organizer's request
func (s *service) HandleOrganizerRemoval(ctx context.Context, input *HandleOrganizerRemovalInput) (*HandleOrganizerRemovalOutput, error) {
	if input == nil || input.EventID == "" || input.EntrantID == "" {
		return nil, errors.New("input, event ID and entrant ID cannot be empty")
	}

	lock := s.locks.get(input.EventID)
	lock.Lock()
	defer lock.Unlock()

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	reason := input.Reason
	if reason == "" {
		reason = models.CancelReasonOrganizerRemoved
	}

	now := s.clock.Now()

	err = s.entrantRepo.ApplyOrganizerRemoval(ctx, &entrantRepo.ApplyOrganizerRemovalInput{
		EventID:   input.EventID,
		EntrantID: input.EntrantID,
		Reason:    reason,
		RemovedAt: now,
	})
	if err != nil {
		if errors.Is(err, entrantRepo.ErrEntrantNotFound) {
			return nil, ErrEntrantNotFound
		}
		return nil, err
	}

	s.recordHistory(ctx, input.EntrantID, event, models.HistoryStatusCancelled, now)
	s.notify(ctx, notifier.KindCancelled, []string{input.EntrantID}, event, "You have been removed from the waiting list.")

	return &HandleOrganizerRemovalOutput{}, nil
}

// GetEventLists returns the four entrant lists for an event
func (s *service) GetEventLists(ctx context.Context, input *GetEventListsInput) (*GetEventListsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	if _, err := s.getEvent(ctx, input.EventID); err != nil {
		return nil, err
	}

	lists, err := s.entrantRepo.GetLists(ctx, &entrantRepo.GetListsInput{
		EventID: input.EventID,
	})
	if err != nil {
		return nil, err
	}

	return &GetEventListsOutput{
		Lists: lists,
	}, nil
}

// getEvent loads an event, mapping the repository miss to the service error
func (s *service) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{
		EventID: eventID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

// recordDrawHistory appends selected/not_selected entries for every entrant
// touched by a draw. Appends run in parallel and are best-effort: a failed
// audit write never fails the draw that already committed.
func (s *service) recordDrawHistory(ctx context.Context, event *models.Event, winners, losers []string, timestamp time.Time) {
	g := new(errgroup.Group)

	for _, entrantID := range winners {
		g.Go(func() error {
			return s.appendHistory(ctx, entrantID, event, models.HistoryStatusSelected, timestamp)
		})
	}

	for _, entrantID := range losers {
		g.Go(func() error {
			return s.appendHistory(ctx, entrantID, event, models.HistoryStatusNotSelected, timestamp)
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("history append failed",
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}
}

// recordHistory appends a single best-effort history entry
func (s *service) recordHistory(ctx context.Context, entrantID string, event *models.Event, status models.HistoryStatus, timestamp time.Time) {
	if err := s.appendHistory(ctx, entrantID, event, status, timestamp); err != nil {
		s.logger.Warn("history append failed",
			zap.String("event_id", event.ID),
			zap.String("entrant_id", entrantID),
			zap.Error(err),
		)
	}
}

func (s *service) appendHistory(ctx context.Context, entrantID string, event *models.Event, status models.HistoryStatus, timestamp time.Time) error {
	return s.profileRepo.AppendHistory(ctx, &profileRepo.AppendHistoryInput{
		UserID: entrantID,
		Entry: &models.HistoryEntry{
			EventID:   event.ID,
			EventName: event.Name,
			Timestamp: timestamp,
			Status:    status,
		},
	})
}

// notify fires a best-effort outcome notification
func (s *service) notify(ctx context.Context, kind notifier.Kind, recipients []string, event *models.Event, payload string) {
	if len(recipients) == 0 {
		return
	}

	err := s.notifier.Notify(ctx, &notifier.NotifyInput{
		Kind:       kind,
		Recipients: recipients,
		Event:      event,
		Payload:    payload,
	})
	if err != nil {
		s.logger.Warn("notification dispatch failed",
			zap.String("kind", string(kind)),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
	}
}
