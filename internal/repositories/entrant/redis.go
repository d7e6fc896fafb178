package entrant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/eventpool/lottery/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for the four per-event list hashes (field = entrant ID)
	waitingKeyPrefix   = "waiting:"
	pendingKeyPrefix   = "response_pending:"
	enrolledKeyPrefix  = "enrolled:"
	cancelledKeyPrefix = "cancelled:"
)

// Repository errors
var (
	// ErrEntrantNotFound is returned when an entrant is not in the expected list
	ErrEntrantNotFound = errors.New("entrant not found in expected list")

	// ErrEntrantAlreadyExists is returned when an entrant is already in one of the event's lists
	ErrEntrantAlreadyExists = errors.New("entrant already exists for this event")
)

// Config holds configuration for the Redis entrant repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed entrant repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func listKey(prefix, eventID string) string {
	return fmt.Sprintf("%s%s", prefix, eventID)
}

// AddWaitingEntrant creates a waiting record for an entrant. The entrant must
// not already be present in any of the event's four lists.
func (r *redisRepository) AddWaitingEntrant(ctx context.Context, input *AddWaitingEntrantInput) error {
	if input == nil || input.Record == nil {
		return errors.New("input and record cannot be nil")
	}

	record := input.Record

	if record.EventID == "" || record.EntrantID == "" {
		return errors.New("event ID and entrant ID cannot be empty")
	}

	// Check every list so an entrant can never hold two records at once
	for _, prefix := range []string{waitingKeyPrefix, pendingKeyPrefix, enrolledKeyPrefix, cancelledKeyPrefix} {
		exists, err := r.client.HExists(ctx, listKey(prefix, record.EventID), record.EntrantID).Result()
		if err != nil {
			return fmt.Errorf("failed to check entrant membership: %w", err)
		}
		if exists {
			return ErrEntrantAlreadyExists
		}
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal entrant record: %w", err)
	}

	err = r.client.HSet(ctx, listKey(waitingKeyPrefix, record.EventID), record.EntrantID, recordJSON).Err()
	if err != nil {
		return fmt.Errorf("failed to add waiting entrant: %w", err)
	}

	return nil
}

// GetWaitingEntrants retrieves all waiting records for an event
func (r *redisRepository) GetWaitingEntrants(ctx context.Context, input *GetWaitingEntrantsInput) ([]*models.EntrantRecord, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	return r.getList(ctx, waitingKeyPrefix, input.EventID)
}

// CountWaiting returns the current waiting-list size for an event
func (r *redisRepository) CountWaiting(ctx context.Context, input *CountWaitingInput) (int64, error) {
	if input == nil || input.EventID == "" {
		return 0, errors.New("input and event ID cannot be empty")
	}

	count, err := r.client.HLen(ctx, listKey(waitingKeyPrefix, input.EventID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count waiting entrants: %w", err)
	}

	return count, nil
}

// ApplyDrawTransition atomically moves winners from waiting to
// response-pending and marks losers not_selected. The transition is prepared
// against the current waiting list and committed in a single MULTI/EXEC, so a
// concurrent reader never observes a partially applied draw.
func (r *redisRepository) ApplyDrawTransition(ctx context.Context, input *ApplyDrawTransitionInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	waiting, err := r.getRecordMap(ctx, waitingKeyPrefix, input.EventID)
	if err != nil {
		return err
	}

	// Verify the full transition before writing anything
	for _, entrantID := range input.Winners {
		if _, ok := waiting[entrantID]; !ok {
			return fmt.Errorf("%w: winner %s not waiting", ErrEntrantNotFound, entrantID)
		}
	}
	for _, entrantID := range input.Losers {
		if _, ok := waiting[entrantID]; !ok {
			return fmt.Errorf("%w: loser %s not waiting", ErrEntrantNotFound, entrantID)
		}
	}

	waitingKey := listKey(waitingKeyPrefix, input.EventID)
	pendingKey := listKey(pendingKeyPrefix, input.EventID)

	pipe := r.client.TxPipeline()

	for _, entrantID := range input.Winners {
		current := waiting[entrantID]

		pending := &models.EntrantRecord{
			EntrantID:        entrantID,
			EventID:          input.EventID,
			Location:         current.Location,
			SelectedAt:       input.SelectedAt,
			ResponseDeadline: input.ResponseDeadline,
		}

		pendingJSON, err := json.Marshal(pending)
		if err != nil {
			return fmt.Errorf("failed to marshal pending record: %w", err)
		}

		pipe.HDel(ctx, waitingKey, entrantID)
		pipe.HSet(ctx, pendingKey, entrantID, pendingJSON)
	}

	for _, entrantID := range input.Losers {
		loser := *waiting[entrantID]
		loser.Status = models.WaitingStatusNotSelected

		loserJSON, err := json.Marshal(&loser)
		if err != nil {
			return fmt.Errorf("failed to marshal waiting record: %w", err)
		}

		pipe.HSet(ctx, waitingKey, entrantID, loserJSON)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply draw transition: %w", err)
	}

	return nil
}

// ApplyAcceptance atomically moves an entrant from response-pending to enrolled
func (r *redisRepository) ApplyAcceptance(ctx context.Context, input *ApplyAcceptanceInput) error {
	if input == nil || input.EventID == "" || input.EntrantID == "" {
		return errors.New("input, event ID and entrant ID cannot be empty")
	}

	pending, err := r.getRecord(ctx, pendingKeyPrefix, input.EventID, input.EntrantID)
	if err != nil {
		return err
	}

	enrolled := &models.EntrantRecord{
		EntrantID:  input.EntrantID,
		EventID:    input.EventID,
		Location:   pending.Location,
		EnrolledAt: input.EnrolledAt,
		CheckedIn:  false,
	}

	enrolledJSON, err := json.Marshal(enrolled)
	if err != nil {
		return fmt.Errorf("failed to marshal enrolled record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HDel(ctx, listKey(pendingKeyPrefix, input.EventID), input.EntrantID)
	pipe.HSet(ctx, listKey(enrolledKeyPrefix, input.EventID), input.EntrantID, enrolledJSON)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply acceptance: %w", err)
	}

	return nil
}

// ApplyDecline atomically moves an entrant from response-pending to cancelled
func (r *redisRepository) ApplyDecline(ctx context.Context, input *ApplyDeclineInput) error {
	if input == nil || input.EventID == "" || input.EntrantID == "" {
		return errors.New("input, event ID and entrant ID cannot be empty")
	}

	pending, err := r.getRecord(ctx, pendingKeyPrefix, input.EventID, input.EntrantID)
	if err != nil {
		return err
	}

	return r.moveToCancelled(ctx, pendingKeyPrefix, pending, input.Reason, input.DeclinedAt)
}

// ApplyOrganizerRemoval atomically moves an entrant from waiting to cancelled
func (r *redisRepository) ApplyOrganizerRemoval(ctx context.Context, input *ApplyOrganizerRemovalInput) error {
	if input == nil || input.EventID == "" || input.EntrantID == "" {
		return errors.New("input, event ID and entrant ID cannot be empty")
	}

	waiting, err := r.getRecord(ctx, waitingKeyPrefix, input.EventID, input.EntrantID)
	if err != nil {
		return err
	}

	return r.moveToCancelled(ctx, waitingKeyPrefix, waiting, input.Reason, input.RemovedAt)
}

// moveToCancelled commits the source-list delete and the cancelled-list write
// in one transaction
func (r *redisRepository) moveToCancelled(ctx context.Context, sourcePrefix string, record *models.EntrantRecord, reason string, declinedAt time.Time) error {
	cancelled := &models.EntrantRecord{
		EntrantID:  record.EntrantID,
		EventID:    record.EventID,
		Location:   record.Location,
		DeclinedAt: declinedAt,
		Reason:     reason,
	}

	cancelledJSON, err := json.Marshal(cancelled)
	if err != nil {
		return fmt.Errorf("failed to marshal cancelled record: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.HDel(ctx, listKey(sourcePrefix, record.EventID), record.EntrantID)
	pipe.HSet(ctx, listKey(cancelledKeyPrefix, record.EventID), record.EntrantID, cancelledJSON)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to move entrant to cancelled: %w", err)
	}

	return nil
}

// GetReplacementCandidates retrieves waiting entrants whose status is unset,
// i.e. entrants never yet included in a completed draw
func (r *redisRepository) GetReplacementCandidates(ctx context.Context, input *GetReplacementCandidatesInput) ([]*models.EntrantRecord, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	waiting, err := r.getList(ctx, waitingKeyPrefix, input.EventID)
	if err != nil {
		return nil, err
	}

	eligible := make([]*models.EntrantRecord, 0, len(waiting))
	for _, record := range waiting {
		if record.Status == models.WaitingStatusNone {
			eligible = append(eligible, record)
		}
	}

	return eligible, nil
}

// GetLists retrieves all four entrant lists for an event
func (r *redisRepository) GetLists(ctx context.Context, input *GetListsInput) (*GetListsOutput, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	output := &GetListsOutput{}

	lists := []struct {
		prefix string
		target *[]*models.EntrantRecord
	}{
		{waitingKeyPrefix, &output.Waiting},
		{pendingKeyPrefix, &output.ResponsePending},
		{enrolledKeyPrefix, &output.Enrolled},
		{cancelledKeyPrefix, &output.Cancelled},
	}

	for _, list := range lists {
		records, err := r.getList(ctx, list.prefix, input.EventID)
		if err != nil {
			return nil, err
		}
		*list.target = records
	}

	return output, nil
}

// getRecord fetches a single entrant record from one list
func (r *redisRepository) getRecord(ctx context.Context, prefix, eventID, entrantID string) (*models.EntrantRecord, error) {
	recordJSON, err := r.client.HGet(ctx, listKey(prefix, eventID), entrantID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEntrantNotFound
		}
		return nil, fmt.Errorf("failed to get entrant record: %w", err)
	}

	var record models.EntrantRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entrant record: %w", err)
	}

	return &record, nil
}

// getRecordMap fetches a whole list keyed by entrant ID
func (r *redisRepository) getRecordMap(ctx context.Context, prefix, eventID string) (map[string]*models.EntrantRecord, error) {
	fields, err := r.client.HGetAll(ctx, listKey(prefix, eventID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entrant list: %w", err)
	}

	records := make(map[string]*models.EntrantRecord, len(fields))
	for entrantID, recordJSON := range fields {
		var record models.EntrantRecord
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record for entrant %s: %w", entrantID, err)
		}
		records[entrantID] = &record
	}

	return records, nil
}

// getList fetches a whole list ordered by entrant ID for stable output
func (r *redisRepository) getList(ctx context.Context, prefix, eventID string) ([]*models.EntrantRecord, error) {
	recordMap, err := r.getRecordMap(ctx, prefix, eventID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(recordMap))
	for id := range recordMap {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]*models.EntrantRecord, 0, len(ids))
	for _, id := range ids {
		records = append(records, recordMap[id])
	}

	return records, nil
}
