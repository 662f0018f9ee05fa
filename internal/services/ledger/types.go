package ledger

import (
	"time"

	"github.com/playroom-bot/playroom/internal/common/clock"
	"github.com/playroom-bot/playroom/internal/models"
	"github.com/playroom-bot/playroom/internal/repositories/account"
	"github.com/playroom-bot/playroom/internal/rng"
)

// Config holds configuration for the ledger service
type Config struct {
	// Account repository
	AccountRepo account.Repository

	// Clock for cooldown checks
	Clock clock.Clock

	// Roller for randomized reward amounts
	Roller rng.Roller

	// Daily reward settings; zero values take the defaults below
	DailyMin         int64
	DailyMax         int64
	DailyStreakBonus int64
	DailyCooldown    time.Duration

	// Work settings
	WorkMin      int64
	WorkMax      int64
	WorkCooldown time.Duration

	// Storage retry settings
	StorageRetries       uint64
	StorageRetryInterval time.Duration
}

// Defaults applied by New
const (
	DefaultDailyMin         int64 = 100
	DefaultDailyMax         int64 = 200
	DefaultDailyStreakBonus int64 = 50
	DefaultDailyCooldown          = 24 * time.Hour

	DefaultWorkMin      int64 = 10
	DefaultWorkMax      int64 = 50
	DefaultWorkCooldown       = time.Hour

	DefaultStorageRetries       uint64 = 3
	DefaultStorageRetryInterval        = 200 * time.Millisecond
)

// GetAccountInput holds parameters for GetAccount
type GetAccountInput struct {
	UserID string
}

// GetAccountOutput holds the result of GetAccount
type GetAccountOutput struct {
	Account *models.Account
}

// AdjustBalanceInput holds parameters for AdjustBalance
type AdjustBalanceInput struct {
	UserID string

	// Delta is positive for a credit, negative for a debit
	Delta int64

	// Reason is recorded in logs
	Reason string
}

// AdjustBalanceOutput holds the result of AdjustBalance
type AdjustBalanceOutput struct {
	Account *models.Account
}

// AwardExperienceInput holds parameters for AwardExperience
type AwardExperienceInput struct {
	UserID string
	Amount int64
}

// AwardExperienceOutput holds the result of AwardExperience
type AwardExperienceOutput struct {
	Account *models.Account

	// LeveledUp is true when the award pushed the player to a new level
	LeveledUp bool
}

// ClaimDailyInput holds parameters for ClaimDaily
type ClaimDailyInput struct {
	UserID string
}

// ClaimDailyOutput holds the result of ClaimDaily
type ClaimDailyOutput struct {
	// Claimed is false when the reward is still on cooldown
	Claimed bool

	// Amount granted, including the streak bonus
	Amount int64

	// Streak after this claim
	Streak int

	// NextClaimAt is when the next claim becomes available
	NextClaimAt time.Time

	Account *models.Account
}

// WorkInput holds parameters for Work
type WorkInput struct {
	UserID string
}

// WorkOutput holds the result of Work
type WorkOutput struct {
	// Worked is false when the shift is still on cooldown
	Worked bool

	// Amount earned
	Amount int64

	// NextShiftAt is when the next shift becomes available
	NextShiftAt time.Time

	Account *models.Account
}

// GetTopBalancesInput holds parameters for GetTopBalances
type GetTopBalancesInput struct {
	Limit int
}

// GetTopBalancesOutput holds the result of GetTopBalances
type GetTopBalancesOutput struct {
	Accounts []*models.Account
}
