package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/playroom-bot/playroom/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	accountKeyPrefix = "account:"
	leaderboardKey   = "leaderboard:balance"

	// maxUpdateRetries bounds the optimistic-lock retry loop
	maxUpdateRetries = 100
)

var (
	// ErrInsufficientFunds is returned when a mutation would leave the
	// balance negative; the stored account is not changed
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUpdateContention is returned when the optimistic-lock retries are
	// exhausted
	ErrUpdateContention = errors.New("account update contention")
)

// Config holds configuration for the Redis account repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed account repository
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

// GetAccount retrieves an account from Redis. Unknown users get a fresh
// zero-balance account; nothing is written until the first update, which
// keeps creation idempotent.
func (r *redisRepository) GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	accountJSON, err := r.client.Get(ctx, accountKeyPrefix+input.UserID).Result()
	if err != nil {
		if err == redis.Nil {
			return &models.Account{UserID: input.UserID}, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var acct models.Account
	if err := json.Unmarshal([]byte(accountJSON), &acct); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &acct, nil
}

// UpdateAccount applies the mutation under an optimistic lock. The read,
// the mutation, and the write happen inside a WATCH block, so two
// near-simultaneous updates for the same user cannot interleave into a
// lost update; the loser retries against the fresh value.
func (r *redisRepository) UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*models.Account, error) {
	if input == nil || input.UserID == "" || input.Update == nil {
		return nil, errors.New("input, user ID and update cannot be empty")
	}

	key := accountKeyPrefix + input.UserID
	var updated *models.Account

	txf := func(tx *redis.Tx) error {
		acct := &models.Account{UserID: input.UserID}

		accountJSON, err := tx.Get(ctx, key).Result()
		if err != nil && err != redis.Nil {
			return fmt.Errorf("failed to get account: %w", err)
		}
		if err == nil {
			if err := json.Unmarshal([]byte(accountJSON), acct); err != nil {
				return fmt.Errorf("failed to unmarshal account: %w", err)
			}
		}

		if err := input.Update(acct); err != nil {
			return err
		}

		if acct.Balance < 0 {
			return ErrInsufficientFunds
		}
		acct.Level = models.LevelForExperience(acct.Experience)

		data, err := json.Marshal(acct)
		if err != nil {
			return fmt.Errorf("failed to marshal account: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.ZAdd(ctx, leaderboardKey, redis.Z{
				Score:  float64(acct.Balance),
				Member: acct.UserID,
			})
			return nil
		})
		if err != nil {
			return err
		}

		updated = acct
		return nil
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// another writer got there first, retry on the fresh value
			continue
		}
		return nil, err
	}

	return nil, ErrUpdateContention
}

// GetTopBalances reads the balance leaderboard and hydrates the accounts
func (r *redisRepository) GetTopBalances(ctx context.Context, input *GetTopBalancesInput) (*GetTopBalancesOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, errors.New("input and limit must be positive")
	}

	userIDs, err := r.client.ZRevRange(ctx, leaderboardKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(userIDs) == 0 {
		return &GetTopBalancesOutput{Accounts: []*models.Account{}}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(userIDs))
	for i, userID := range userIDs {
		commands[i] = pipe.Get(ctx, accountKeyPrefix+userID)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	accounts := make([]*models.Account, 0, len(userIDs))
	for i, cmd := range commands {
		accountJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// account deleted between the range read and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get account %s: %w", userIDs[i], err)
		}

		var acct models.Account
		if err := json.Unmarshal([]byte(accountJSON), &acct); err != nil {
			return nil, fmt.Errorf("failed to unmarshal account %s: %w", userIDs[i], err)
		}

		accounts = append(accounts, &acct)
	}

	return &GetTopBalancesOutput{Accounts: accounts}, nil
}
