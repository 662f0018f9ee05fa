package account

import (
	"github.com/playroom-bot/playroom/internal/models"
)

// GetAccountInput holds parameters for GetAccount
type GetAccountInput struct {
	// UserID is the Discord user ID
	UserID string
}

// UpdateAccountInput holds parameters for UpdateAccount
type UpdateAccountInput struct {
	// UserID is the Discord user ID
	UserID string

	// Update mutates the account in place; returning an error aborts the
	// write. The repository rejects any mutation that leaves the balance
	// negative.
	Update func(account *models.Account) error
}

// GetTopBalancesInput holds parameters for GetTopBalances
type GetTopBalancesInput struct {
	// Limit caps how many accounts are returned
	Limit int
}

// GetTopBalancesOutput holds the result of GetTopBalances
type GetTopBalancesOutput struct {
	// Accounts ordered richest first
	Accounts []*models.Account
}
