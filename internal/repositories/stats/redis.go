package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/playroom-bot/playroom/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	statsKeyPrefix   = "stats:"
	winnersKeyPrefix = "stats_winners:"

	winsField   = "wins"
	lossesField = "losses"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
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

// RecordResult increments the player's counter for the game and keeps the
// winners leaderboard in step
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.Variant == "" || input.UserID == "" {
		return errors.New("input, variant and user ID cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s:%s", statsKeyPrefix, input.Variant, input.UserID)

	pipe := r.client.Pipeline()
	if input.Won {
		pipe.HIncrBy(ctx, statsKey, winsField, 1)
		pipe.ZIncrBy(ctx, winnersKeyPrefix+input.Variant, 1, input.UserID)
	} else {
		pipe.HIncrBy(ctx, statsKey, lossesField, 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// GetStats retrieves a player's record, zero-valued if they never played
func (r *redisRepository) GetStats(ctx context.Context, input *GetStatsInput) (*models.GameStats, error) {
	if input == nil || input.Variant == "" || input.UserID == "" {
		return nil, errors.New("input, variant and user ID cannot be empty")
	}

	statsKey := fmt.Sprintf("%s%s:%s", statsKeyPrefix, input.Variant, input.UserID)
	fields, err := r.client.HGetAll(ctx, statsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return &models.GameStats{
		UserID:  input.UserID,
		Variant: input.Variant,
		Wins:    parseCounter(fields[winsField]),
		Losses:  parseCounter(fields[lossesField]),
	}, nil
}

// GetTopWinners reads the winners leaderboard and hydrates each record
func (r *redisRepository) GetTopWinners(ctx context.Context, input *GetTopWinnersInput) (*GetTopWinnersOutput, error) {
	if input == nil || input.Variant == "" || input.Limit <= 0 {
		return nil, errors.New("input, variant and limit must be set")
	}

	userIDs, err := r.client.ZRevRange(ctx, winnersKeyPrefix+input.Variant, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get winners: %w", err)
	}

	result := make([]*models.GameStats, 0, len(userIDs))
	for _, userID := range userIDs {
		stats, err := r.GetStats(ctx, &GetStatsInput{
			Variant: input.Variant,
			UserID:  userID,
		})
		if err != nil {
			return nil, err
		}
		result = append(result, stats)
	}

	return &GetTopWinnersOutput{Stats: result}, nil
}

func parseCounter(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
