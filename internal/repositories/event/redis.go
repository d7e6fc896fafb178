package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventpool/lottery/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	eventKeyPrefix           = "event:"
	organizerEventsKeyPrefix = "organizer_events:"
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
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

// SaveEvent persists an event to Redis
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	if input.Event.ID == "" {
		return errors.New("event ID cannot be empty")
	}

	// Marshal the event to JSON
	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()

	// Save the event
	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.Event.ID)
	pipe.Set(ctx, eventKey, eventJSON, 0)

	// Index the event under its organizer
	if input.Event.OrganizerID != "" {
		organizerKey := fmt.Sprintf("%s%s", organizerEventsKeyPrefix, input.Event.OrganizerID)
		pipe.SAdd(ctx, organizerKey, input.Event.ID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event by ID from Redis
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	// Get the event from Redis
	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	eventJSON, err := r.client.Get(ctx, eventKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	// Unmarshal the event from JSON
	var event models.Event
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// DeleteEvent removes an event from Redis
func (r *redisRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	// Get the event first to find its organizer index
	event, err := r.GetEvent(ctx, &GetEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		return err
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()

	// Delete the event
	eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, input.EventID)
	pipe.Del(ctx, eventKey)

	// Remove the event from the organizer index
	if event.OrganizerID != "" {
		organizerKey := fmt.Sprintf("%s%s", organizerEventsKeyPrefix, event.OrganizerID)
		pipe.SRem(ctx, organizerKey, input.EventID)
	}

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// GetEventsByOrganizer retrieves all events owned by an organizer from Redis
func (r *redisRepository) GetEventsByOrganizer(ctx context.Context, input *GetEventsByOrganizerInput) ([]*models.Event, error) {
	if input == nil || input.OrganizerID == "" {
		return nil, errors.New("input and organizer ID cannot be empty")
	}

	// Get all event IDs for the organizer
	organizerKey := fmt.Sprintf("%s%s", organizerEventsKeyPrefix, input.OrganizerID)
	eventIDs, err := r.client.SMembers(ctx, organizerKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get event IDs for organizer: %w", err)
	}

	// If there are no events, return an empty slice
	if len(eventIDs) == 0 {
		return []*models.Event{}, nil
	}

	// Get all events using a pipeline
	pipe := r.client.Pipeline()
	eventCommands := make(map[string]*redis.StringCmd)

	for _, eventID := range eventIDs {
		eventKey := fmt.Sprintf("%s%s", eventKeyPrefix, eventID)
		eventCommands[eventID] = pipe.Get(ctx, eventKey)
	}

	// Execute the pipeline
	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	// Process the results
	events := make([]*models.Event, 0, len(eventIDs))
	for eventID, cmd := range eventCommands {
		eventJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Event was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get event %s: %w", eventID, err)
		}

		var event models.Event
		if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", eventID, err)
		}

		events = append(events, &event)
	}

	return events, nil
}
