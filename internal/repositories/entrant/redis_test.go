package entrant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/eventpool/lottery/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 11, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) addWaiting(eventID string, entrantIDs ...string) {
	for _, entrantID := range entrantIDs {
		err := s.repo.AddWaitingEntrant(s.ctx, &AddWaitingEntrantInput{
			Record: &models.EntrantRecord{
				EntrantID: entrantID,
				EventID:   eventID,
				JoinedAt:  s.testNow,
			},
		})
		s.Require().NoError(err)
	}
}

// listsFor returns which lists currently hold each entrant for an event
func (s *RedisRepositoryTestSuite) listsFor(eventID string) map[string][]models.EntrantList {
	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: eventID})
	s.Require().NoError(err)

	membership := make(map[string][]models.EntrantList)
	add := func(records []*models.EntrantRecord, list models.EntrantList) {
		for _, record := range records {
			membership[record.EntrantID] = append(membership[record.EntrantID], list)
		}
	}

	add(lists.Waiting, models.ListWaiting)
	add(lists.ResponsePending, models.ListResponsePending)
	add(lists.Enrolled, models.ListEnrolled)
	add(lists.Cancelled, models.ListCancelled)

	return membership
}

// requireDisjoint asserts every entrant is in at most one list
func (s *RedisRepositoryTestSuite) requireDisjoint(eventID string) {
	for entrantID, lists := range s.listsFor(eventID) {
		s.Require().Len(lists, 1, "entrant %s is in %v", entrantID, lists)
	}
}

func (s *RedisRepositoryTestSuite) TestAddWaitingEntrant() {
	s.addWaiting("ev1", "u1")

	records, err := s.repo.GetWaitingEntrants(s.ctx, &GetWaitingEntrantsInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Require().Len(records, 1)

	s.Equal("u1", records[0].EntrantID)
	s.Equal(models.WaitingStatusNone, records[0].Status)
	s.Equal(s.testNow, records[0].JoinedAt)
}

func (s *RedisRepositoryTestSuite) TestAddWaitingEntrant_Duplicate() {
	s.addWaiting("ev1", "u1")

	err := s.repo.AddWaitingEntrant(s.ctx, &AddWaitingEntrantInput{
		Record: &models.EntrantRecord{EntrantID: "u1", EventID: "ev1", JoinedAt: s.testNow},
	})
	s.ErrorIs(err, ErrEntrantAlreadyExists)
}

func (s *RedisRepositoryTestSuite) TestAddWaitingEntrant_RejectedWhilePending() {
	s.addWaiting("ev1", "u1")

	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(7 * 24 * time.Hour),
	})
	s.Require().NoError(err)

	// u1 is now response-pending; re-joining must be rejected
	err = s.repo.AddWaitingEntrant(s.ctx, &AddWaitingEntrantInput{
		Record: &models.EntrantRecord{EntrantID: "u1", EventID: "ev1", JoinedAt: s.testNow},
	})
	s.ErrorIs(err, ErrEntrantAlreadyExists)
}

func (s *RedisRepositoryTestSuite) TestAddWaitingEntrant_SeparateEvents() {
	s.addWaiting("ev1", "u1")
	s.addWaiting("ev2", "u1")

	count, err := s.repo.CountWaiting(s.ctx, &CountWaitingInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Equal(int64(1), count)
}

func (s *RedisRepositoryTestSuite) TestApplyDrawTransition() {
	s.addWaiting("ev1", "u1", "u2", "u3", "u4")

	deadline := s.testNow.Add(7 * 24 * time.Hour)
	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u2", "u4"},
		Losers:           []string{"u1", "u3"},
		SelectedAt:       s.testNow,
		ResponseDeadline: deadline,
	})
	s.Require().NoError(err)

	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: "ev1"})
	s.Require().NoError(err)

	// Winners moved to response-pending with the deadline stamped
	s.Require().Len(lists.ResponsePending, 2)
	for _, record := range lists.ResponsePending {
		s.Equal(s.testNow, record.SelectedAt)
		s.Equal(deadline, record.ResponseDeadline)
	}

	// Losers stay waiting, marked not_selected
	s.Require().Len(lists.Waiting, 2)
	for _, record := range lists.Waiting {
		s.Equal(models.WaitingStatusNotSelected, record.Status)
	}

	s.requireDisjoint("ev1")
}

func (s *RedisRepositoryTestSuite) TestApplyDrawTransition_CarriesLocation() {
	location := &models.Location{Latitude: 53.5, Longitude: -113.5}
	err := s.repo.AddWaitingEntrant(s.ctx, &AddWaitingEntrantInput{
		Record: &models.EntrantRecord{
			EntrantID: "u1",
			EventID:   "ev1",
			Location:  location,
			JoinedAt:  s.testNow,
		},
	})
	s.Require().NoError(err)

	err = s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Require().Len(lists.ResponsePending, 1)
	s.Equal(location, lists.ResponsePending[0].Location)
}

func (s *RedisRepositoryTestSuite) TestApplyDrawTransition_MissingWinnerLeavesStateUntouched() {
	s.addWaiting("ev1", "u1", "u2")

	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1", "ghost"},
		Losers:           []string{"u2"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().ErrorIs(err, ErrEntrantNotFound)

	// Nothing moved: no partial transition is visible
	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Len(lists.Waiting, 2)
	s.Empty(lists.ResponsePending)
	for _, record := range lists.Waiting {
		s.Equal(models.WaitingStatusNone, record.Status)
	}
}

func (s *RedisRepositoryTestSuite) TestApplyAcceptance() {
	s.addWaiting("ev1", "u1")

	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	enrolledAt := s.testNow.Add(30 * time.Minute)
	err = s.repo.ApplyAcceptance(s.ctx, &ApplyAcceptanceInput{
		EventID:    "ev1",
		EntrantID:  "u1",
		EnrolledAt: enrolledAt,
	})
	s.Require().NoError(err)

	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: "ev1"})
	s.Require().NoError(err)

	s.Empty(lists.ResponsePending)
	s.Require().Len(lists.Enrolled, 1)
	s.Equal(enrolledAt, lists.Enrolled[0].EnrolledAt)
	s.False(lists.Enrolled[0].CheckedIn)

	s.requireDisjoint("ev1")
}

func (s *RedisRepositoryTestSuite) TestApplyAcceptance_NotPending() {
	s.addWaiting("ev1", "u1")

	err := s.repo.ApplyAcceptance(s.ctx, &ApplyAcceptanceInput{
		EventID:    "ev1",
		EntrantID:  "u1",
		EnrolledAt: s.testNow,
	})
	s.ErrorIs(err, ErrEntrantNotFound)
}

func (s *RedisRepositoryTestSuite) TestApplyAcceptance_SecondCallFails() {
	s.addWaiting("ev1", "u1")

	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	err = s.repo.ApplyAcceptance(s.ctx, &ApplyAcceptanceInput{
		EventID:    "ev1",
		EntrantID:  "u1",
		EnrolledAt: s.testNow,
	})
	s.Require().NoError(err)

	// Second acceptance finds no pending record; enrollment stands
	err = s.repo.ApplyAcceptance(s.ctx, &ApplyAcceptanceInput{
		EventID:    "ev1",
		EntrantID:  "u1",
		EnrolledAt: s.testNow,
	})
	s.ErrorIs(err, ErrEntrantNotFound)

	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Len(lists.Enrolled, 1)
}

func (s *RedisRepositoryTestSuite) TestApplyDecline() {
	s.addWaiting("ev1", "u1")

	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	declinedAt := s.testNow.Add(10 * time.Minute)
	err = s.repo.ApplyDecline(s.ctx, &ApplyDeclineInput{
		EventID:    "ev1",
		EntrantID:  "u1",
		Reason:     models.CancelReasonUserDeclined,
		DeclinedAt: declinedAt,
	})
	s.Require().NoError(err)

	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: "ev1"})
	s.Require().NoError(err)

	s.Empty(lists.ResponsePending)
	s.Require().Len(lists.Cancelled, 1)
	s.Equal(models.CancelReasonUserDeclined, lists.Cancelled[0].Reason)
	s.Equal(declinedAt, lists.Cancelled[0].DeclinedAt)

	s.requireDisjoint("ev1")
}

func (s *RedisRepositoryTestSuite) TestApplyOrganizerRemoval() {
	s.addWaiting("ev1", "u1", "u2")

	err := s.repo.ApplyOrganizerRemoval(s.ctx, &ApplyOrganizerRemovalInput{
		EventID:   "ev1",
		EntrantID: "u1",
		Reason:    models.CancelReasonOrganizerRemoved,
		RemovedAt: s.testNow,
	})
	s.Require().NoError(err)

	lists, err := s.repo.GetLists(s.ctx, &GetListsInput{EventID: "ev1"})
	s.Require().NoError(err)

	s.Require().Len(lists.Waiting, 1)
	s.Equal("u2", lists.Waiting[0].EntrantID)
	s.Require().Len(lists.Cancelled, 1)
	s.Equal(models.CancelReasonOrganizerRemoved, lists.Cancelled[0].Reason)

	s.requireDisjoint("ev1")
}

func (s *RedisRepositoryTestSuite) TestApplyOrganizerRemoval_NotWaiting() {
	err := s.repo.ApplyOrganizerRemoval(s.ctx, &ApplyOrganizerRemovalInput{
		EventID:   "ev1",
		EntrantID: "u1",
		Reason:    models.CancelReasonOrganizerRemoved,
		RemovedAt: s.testNow,
	})
	s.ErrorIs(err, ErrEntrantNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetReplacementCandidates_ExcludesNotSelected() {
	s.addWaiting("ev1", "u1", "u2", "u3")

	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1"},
		Losers:           []string{"u2"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	// u1 left waiting, u2 is marked not_selected; only u3 remains eligible
	eligible, err := s.repo.GetReplacementCandidates(s.ctx, &GetReplacementCandidatesInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Require().Len(eligible, 1)
	s.Equal("u3", eligible[0].EntrantID)
}

func (s *RedisRepositoryTestSuite) TestGetReplacementCandidates_ExclusionPersistsAcrossDraws() {
	s.addWaiting("ev1", "u1", "u2", "u3")

	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1"},
		Losers:           []string{"u2", "u3"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)

	eligible, err := s.repo.GetReplacementCandidates(s.ctx, &GetReplacementCandidatesInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Empty(eligible)
}

func (s *RedisRepositoryTestSuite) TestGetWaitingEntrants_Empty() {
	records, err := s.repo.GetWaitingEntrants(s.ctx, &GetWaitingEntrantsInput{EventID: "ev1"})
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *RedisRepositoryTestSuite) TestFullLifecycle_PartitionInvariant() {
	s.addWaiting("ev1", "u1", "u2", "u3", "u4", "u5")

	// Draw two winners
	err := s.repo.ApplyDrawTransition(s.ctx, &ApplyDrawTransitionInput{
		EventID:          "ev1",
		Winners:          []string{"u1", "u2"},
		Losers:           []string{"u3", "u4", "u5"},
		SelectedAt:       s.testNow,
		ResponseDeadline: s.testNow.Add(time.Hour),
	})
	s.Require().NoError(err)
	s.requireDisjoint("ev1")

	// u1 accepts, u2 declines
	err = s.repo.ApplyAcceptance(s.ctx, &ApplyAcceptanceInput{
		EventID: "ev1", EntrantID: "u1", EnrolledAt: s.testNow,
	})
	s.Require().NoError(err)

	err = s.repo.ApplyDecline(s.ctx, &ApplyDeclineInput{
		EventID: "ev1", EntrantID: "u2", Reason: models.CancelReasonUserDeclined, DeclinedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.requireDisjoint("ev1")

	// Organizer removes u5
	err = s.repo.ApplyOrganizerRemoval(s.ctx, &ApplyOrganizerRemovalInput{
		EventID: "ev1", EntrantID: "u5", Reason: models.CancelReasonOrganizerRemoved, RemovedAt: s.testNow,
	})
	s.Require().NoError(err)
	s.requireDisjoint("ev1")

	membership := s.listsFor("ev1")
	s.Equal([]models.EntrantList{models.ListEnrolled}, membership["u1"])
	s.Equal([]models.EntrantList{models.ListCancelled}, membership["u2"])
	s.Equal([]models.EntrantList{models.ListWaiting}, membership["u3"])
	s.Equal([]models.EntrantList{models.ListWaiting}, membership["u4"])
	s.Equal([]models.EntrantList{models.ListCancelled}, membership["u5"])
}
