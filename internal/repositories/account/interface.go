package account

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/playroom-bot/playroom/internal/repositories/account Repository

import (
	"context"

	"github.com/playroom-bot/playroom/internal/models"
)

// Repository defines the interface for account persistence
type Repository interface {
	// GetAccount retrieves an account, returning a zero-balance account
	// for users that have never been written
	GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error)

	// UpdateAccount applies a mutation atomically; concurrent updates for
	// the same user never lose a write
	UpdateAccount(ctx context.Context, input *UpdateAccountInput) (*models.Account, error)

	// GetTopBalances returns the richest accounts in descending order
	GetTopBalances(ctx context.Context, input *GetTopBalancesInput) (*GetTopBalancesOutput, error)
}
