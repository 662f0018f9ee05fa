package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"

	"github.com/playroom-bot/playroom/internal/common/clock"
	"github.com/playroom-bot/playroom/internal/models"
	"github.com/playroom-bot/playroom/internal/repositories/account"
	"github.com/playroom-bot/playroom/internal/rng"
)

// cooldown aborts are signalled out of the update closure so the write
// is skipped entirely
var (
	errDailyOnCooldown = errors.New("daily on cooldown")
	errWorkOnCooldown  = errors.New("work on cooldown")
)

type service struct {
	accountRepo account.Repository
	clock       clock.Clock
	roller      rng.Roller

	dailyMin         int64
	dailyMax         int64
	dailyStreakBonus int64
	dailyCooldown    time.Duration

	workMin      int64
	workMax      int64
	workCooldown time.Duration

	storageRetries       uint64
	storageRetryInterval time.Duration
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AccountRepo == nil {
		return nil, ErrNilAccountRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	svc := &service{
		accountRepo:          cfg.AccountRepo,
		clock:                cfg.Clock,
		roller:               cfg.Roller,
		dailyMin:             cfg.DailyMin,
		dailyMax:             cfg.DailyMax,
		dailyStreakBonus:     cfg.DailyStreakBonus,
		dailyCooldown:        cfg.DailyCooldown,
		workMin:              cfg.WorkMin,
		workMax:              cfg.WorkMax,
		workCooldown:         cfg.WorkCooldown,
		storageRetries:       cfg.StorageRetries,
		storageRetryInterval: cfg.StorageRetryInterval,
	}

	if svc.dailyMin == 0 {
		svc.dailyMin = DefaultDailyMin
	}
	if svc.dailyMax == 0 {
		svc.dailyMax = DefaultDailyMax
	}
	if svc.dailyStreakBonus == 0 {
		svc.dailyStreakBonus = DefaultDailyStreakBonus
	}
	if svc.dailyCooldown == 0 {
		svc.dailyCooldown = DefaultDailyCooldown
	}
	if svc.workMin == 0 {
		svc.workMin = DefaultWorkMin
	}
	if svc.workMax == 0 {
		svc.workMax = DefaultWorkMax
	}
	if svc.workCooldown == 0 {
		svc.workCooldown = DefaultWorkCooldown
	}
	if svc.storageRetries == 0 {
		svc.storageRetries = DefaultStorageRetries
	}
	if svc.storageRetryInterval == 0 {
		svc.storageRetryInterval = DefaultStorageRetryInterval
	}

	return svc, nil
}

// retry runs op with exponential backoff. Business rejections inside the
// update closure are permanent and surface unchanged; anything else that
// survives the retry budget becomes ErrStorageUnavailable.
func (s *service) retry(ctx context.Context, op func() error) error {
	wrapped := func() error {
		err := op()
		if err == nil {
			return nil
		}
		if errors.Is(err, account.ErrInsufficientFunds) ||
			errors.Is(err, errDailyOnCooldown) ||
			errors.Is(err, errWorkOnCooldown) {
			return backoff.Permanent(err)
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.storageRetryInterval

	err := backoff.Retry(wrapped, backoff.WithContext(backoff.WithMaxRetries(bo, s.storageRetries), ctx))
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, errDailyOnCooldown),
		errors.Is(err, errWorkOnCooldown):
		return err
	default:
		log.Error().Err(err).Msg("ledger storage gave up after retries")
		return ErrStorageUnavailable
	}
}

func (s *service) GetAccount(ctx context.Context, input *GetAccountInput) (*GetAccountOutput, error) {
	var acct *models.Account

	err := s.retry(ctx, func() error {
		a, err := s.accountRepo.GetAccount(ctx, &account.GetAccountInput{
			UserID: input.UserID,
		})
		if err != nil {
			return err
		}
		acct = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GetAccountOutput{Account: acct}, nil
}

func (s *service) AdjustBalance(ctx context.Context, input *AdjustBalanceInput) (*AdjustBalanceOutput, error) {
	acct, err := s.update(ctx, input.UserID, func(a *models.Account) error {
		a.Balance += input.Delta
		return nil
	})
	if err != nil {
		if errors.Is(err, account.ErrInsufficientFunds) {
			return nil, ErrInsufficientFunds
		}
		return nil, err
	}

	log.Debug().
		Str("user_id", input.UserID).
		Int64("delta", input.Delta).
		Str("reason", input.Reason).
		Int64("balance", acct.Balance).
		Msg("balance adjusted")

	return &AdjustBalanceOutput{Account: acct}, nil
}

func (s *service) AwardExperience(ctx context.Context, input *AwardExperienceInput) (*AwardExperienceOutput, error) {
	var before int

	acct, err := s.update(ctx, input.UserID, func(a *models.Account) error {
		before = a.Level
		a.Experience += input.Amount
		return nil
	})
	if err != nil {
		return nil, err
	}

	leveled := acct.Level > before
	if leveled {
		log.Info().
			Str("user_id", input.UserID).
			Int("level", acct.Level).
			Msg("player leveled up")
	}

	return &AwardExperienceOutput{
		Account:   acct,
		LeveledUp: leveled,
	}, nil
}

func (s *service) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	var (
		amount int64
		nextAt time.Time
	)

	acct, err := s.update(ctx, input.UserID, func(a *models.Account) error {
		now := s.clock.Now()

		if !a.LastDaily.IsZero() && now.Sub(a.LastDaily) < s.dailyCooldown {
			nextAt = a.LastDaily.Add(s.dailyCooldown)
			return errDailyOnCooldown
		}

		// a claim more than one window late breaks the streak
		if !a.LastDaily.IsZero() && now.Sub(a.LastDaily) >= 2*s.dailyCooldown {
			a.DailyStreak = 0
		}

		a.DailyStreak++
		amount = int64(s.roller.Between(int(s.dailyMin), int(s.dailyMax)))
		amount += s.dailyStreakBonus * int64(a.DailyStreak-1)

		a.Balance += amount
		a.LastDaily = now
		nextAt = now.Add(s.dailyCooldown)
		return nil
	})
	if err != nil {
		if errors.Is(err, errDailyOnCooldown) {
			return &ClaimDailyOutput{
				Claimed:     false,
				NextClaimAt: nextAt,
			}, nil
		}
		return nil, err
	}

	log.Info().
		Str("user_id", input.UserID).
		Int64("amount", amount).
		Int("streak", acct.DailyStreak).
		Msg("daily reward claimed")

	return &ClaimDailyOutput{
		Claimed:     true,
		Amount:      amount,
		Streak:      acct.DailyStreak,
		NextClaimAt: nextAt,
		Account:     acct,
	}, nil
}

func (s *service) Work(ctx context.Context, input *WorkInput) (*WorkOutput, error) {
	var (
		amount int64
		nextAt time.Time
	)

	acct, err := s.update(ctx, input.UserID, func(a *models.Account) error {
		now := s.clock.Now()

		if !a.LastWork.IsZero() && now.Sub(a.LastWork) < s.workCooldown {
			nextAt = a.LastWork.Add(s.workCooldown)
			return errWorkOnCooldown
		}

		amount = int64(s.roller.Between(int(s.workMin), int(s.workMax)))
		a.Balance += amount
		a.LastWork = now
		nextAt = now.Add(s.workCooldown)
		return nil
	})
	if err != nil {
		if errors.Is(err, errWorkOnCooldown) {
			return &WorkOutput{
				Worked:      false,
				NextShiftAt: nextAt,
			}, nil
		}
		return nil, err
	}

	return &WorkOutput{
		Worked:      true,
		Amount:      amount,
		NextShiftAt: nextAt,
		Account:     acct,
	}, nil
}

func (s *service) GetTopBalances(ctx context.Context, input *GetTopBalancesInput) (*GetTopBalancesOutput, error) {
	var accounts []*models.Account

	err := s.retry(ctx, func() error {
		out, err := s.accountRepo.GetTopBalances(ctx, &account.GetTopBalancesInput{
			Limit: input.Limit,
		})
		if err != nil {
			return err
		}
		accounts = out.Accounts
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GetTopBalancesOutput{Accounts: accounts}, nil
}

// update applies a mutation through the repository with retry, stamping
// bookkeeping fields on every successful write.
func (s *service) update(ctx context.Context, userID string, fn func(*models.Account) error) (*models.Account, error) {
	var acct *models.Account

	err := s.retry(ctx, func() error {
		a, err := s.accountRepo.UpdateAccount(ctx, &account.UpdateAccountInput{
			UserID: userID,
			Update: func(a *models.Account) error {
				if err := fn(a); err != nil {
					return err
				}
				now := s.clock.Now()
				if a.CreatedAt.IsZero() {
					a.CreatedAt = now
				}
				a.UpdatedAt = now
				return nil
			},
		})
		if err != nil {
			return err
		}
		acct = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	return acct, nil
}
