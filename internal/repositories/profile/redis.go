package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventpool/lottery/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix = "profile:"
	historyKeyPrefix = "history:"
)

// ErrProfileNotFound is returned when a user profile is not found
var ErrProfileNotFound = errors.New("user profile not found")

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
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

// SaveProfile persists a user profile to Redis
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil || input.Profile == nil {
		return errors.New("input and profile cannot be nil")
	}

	if input.Profile.ID == "" {
		return errors.New("profile ID cannot be empty")
	}

	// Marshal the profile to JSON
	profileJSON, err := json.Marshal(input.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.Profile.ID)
	if err := r.client.Set(ctx, profileKey, profileJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a user profile by ID from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.UserProfile, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.UserID)
	profileJSON, err := r.client.Get(ctx, profileKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(profileJSON), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

// AppendHistory appends a history entry to a user's timeline. The owning
// profile must exist; entries are pushed onto a list and never rewritten.
func (r *redisRepository) AppendHistory(ctx context.Context, input *AppendHistoryInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	if input.UserID == "" {
		return errors.New("user ID cannot be empty")
	}

	// The timeline is owned by the profile; appends to absent profiles fail
	profileKey := fmt.Sprintf("%s%s", profileKeyPrefix, input.UserID)
	exists, err := r.client.Exists(ctx, profileKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check profile: %w", err)
	}
	if exists == 0 {
		return ErrProfileNotFound
	}

	entry := input.Entry

	// Ensure the entry has an ID
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	historyKey := fmt.Sprintf("%s%s", historyKeyPrefix, input.UserID)
	if err := r.client.RPush(ctx, historyKey, entryJSON).Err(); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	return nil
}

// GetHistory retrieves a user's full timeline in append order
func (r *redisRepository) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	historyKey := fmt.Sprintf("%s%s", historyKeyPrefix, input.UserID)
	entriesJSON, err := r.client.LRange(ctx, historyKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	entries := make([]*models.HistoryEntry, 0, len(entriesJSON))
	for _, entryJSON := range entriesJSON {
		var entry models.HistoryEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	return &GetHistoryOutput{
		Entries: entries,
	}, nil
}
