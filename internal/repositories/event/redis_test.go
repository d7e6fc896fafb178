package event

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

func (s *RedisRepositoryTestSuite) testEvent(id string) *models.Event {
	return &models.Event{
		ID:                 id,
		Name:               "Community Pottery Class",
		OrganizerID:        "org1",
		Capacity:           20,
		WaitingListLimit:   models.UnlimitedWaitingList,
		RegistrationOpens:  s.testNow,
		RegistrationCloses: s.testNow.Add(72 * time.Hour),
		ResponseWindow:     models.DefaultResponseWindow,
		CreatedAt:          s.testNow,
		UpdatedAt:          s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetEvent() {
	event := s.testEvent("ev1")

	err := s.repo.SaveEvent(s.ctx, &SaveEventInput{Event: event})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetEvent(s.ctx, &GetEventInput{EventID: "ev1"})
	s.Require().NoError(err)

	s.Equal(event.ID, retrieved.ID)
	s.Equal(event.Name, retrieved.Name)
	s.Equal(event.Capacity, retrieved.Capacity)
	s.Equal(event.ResponseWindow, retrieved.ResponseWindow)
	s.True(event.RegistrationCloses.Equal(retrieved.RegistrationCloses))
}

func (s *RedisRepositoryTestSuite) TestGetEvent_NotFound() {
	_, err := s.repo.GetEvent(s.ctx, &GetEventInput{EventID: "missing"})
	s.ErrorIs(err, ErrEventNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteEvent() {
	event := s.testEvent("ev1")

	err := s.repo.SaveEvent(s.ctx, &SaveEventInput{Event: event})
	s.Require().NoError(err)

	err = s.repo.DeleteEvent(s.ctx, &DeleteEventInput{EventID: "ev1"})
	s.Require().NoError(err)

	_, err = s.repo.GetEvent(s.ctx, &GetEventInput{EventID: "ev1"})
	s.ErrorIs(err, ErrEventNotFound)

	events, err := s.repo.GetEventsByOrganizer(s.ctx, &GetEventsByOrganizerInput{OrganizerID: "org1"})
	s.Require().NoError(err)
	s.Empty(events)
}

func (s *RedisRepositoryTestSuite) TestGetEventsByOrganizer() {
	first := s.testEvent("ev1")
	second := s.testEvent("ev2")
	second.Name = "Trail Run"

	other := s.testEvent("ev3")
	other.OrganizerID = "org2"

	for _, event := range []*models.Event{first, second, other} {
		err := s.repo.SaveEvent(s.ctx, &SaveEventInput{Event: event})
		s.Require().NoError(err)
	}

	events, err := s.repo.GetEventsByOrganizer(s.ctx, &GetEventsByOrganizerInput{OrganizerID: "org1"})
	s.Require().NoError(err)
	s.Require().Len(events, 2)

	ids := map[string]bool{}
	for _, event := range events {
		ids[event.ID] = true
	}
	s.True(ids["ev1"])
	s.True(ids["ev2"])
}

func (s *RedisRepositoryTestSuite) TestGetEventsByOrganizer_Empty() {
	events, err := s.repo.GetEventsByOrganizer(s.ctx, &GetEventsByOrganizerInput{OrganizerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(events)
}
