package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/playroom-bot/playroom/internal/services/ledger Service

import "context"

// Service defines the interface for economy operations
type Service interface {
	// GetAccount fetches a player's account, lazily creating it
	GetAccount(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error)

	// AdjustBalance applies a credit or debit atomically; a debit that
	// would overdraw fails with ErrInsufficientFunds and no effects
	AdjustBalance(ctx context.Context, input *AdjustBalanceInput) (*AdjustBalanceOutput, error)

	// AwardExperience grants XP and recomputes the level; never fails on
	// user input
	AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error)

	// ClaimDaily grants the daily reward with streak bonus, once per
	// cooldown window
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)

	// Work grants a small payout on a short cooldown
	Work(ctx context.Context, input *WorkInput) (*WorkOutput, error)

	// GetTopBalances returns the richest players
	GetTopBalances(ctx context.Context, input *GetTopBalancesInput) (*GetTopBalancesOutput, error)
}
