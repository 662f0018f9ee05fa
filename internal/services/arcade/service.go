package arcade

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/playroom-bot/playroom/internal/common/uuid"
	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/games/blackjack"
	"github.com/playroom-bot/playroom/internal/games/hangman"
	"github.com/playroom-bot/playroom/internal/games/memory"
	"github.com/playroom-bot/playroom/internal/games/numguess"
	"github.com/playroom-bot/playroom/internal/games/rps"
	"github.com/playroom-bot/playroom/internal/games/trivia"
	"github.com/playroom-bot/playroom/internal/registry"
	"github.com/playroom-bot/playroom/internal/repositories/stats"
	"github.com/playroom-bot/playroom/internal/rng"
	"github.com/playroom-bot/playroom/internal/services/ledger"
)

type service struct {
	registry  *registry.Registry
	ledger    ledger.Service
	statsRepo stats.Repository
	roller    rng.Roller
	uuider    uuid.UUID

	minWager int64
	maxWager int64
}

// New creates a new arcade service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}

	if cfg.StatsRepo == nil {
		return nil, ErrNilStatsRepo
	}

	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	svc := &service{
		registry:  cfg.Registry,
		ledger:    cfg.Ledger,
		statsRepo: cfg.StatsRepo,
		roller:    cfg.Roller,
		uuider:    cfg.UUID,
		minWager:  cfg.MinWager,
		maxWager:  cfg.MaxWager,
	}

	if svc.minWager == 0 {
		svc.minWager = DefaultMinWager
	}
	if svc.maxWager == 0 {
		svc.maxWager = DefaultMaxWager
	}

	return svc, nil
}

// wagered reports whether a variant plays for coins
func wagered(v games.Variant) bool {
	return v == games.VariantRPS || v == games.VariantBlackjack
}

func (s *service) newSession(input *StartGameInput) (games.Session, error) {
	switch input.Variant {
	case games.VariantTrivia:
		return trivia.NewRandom(input.Option, s.roller)
	case games.VariantHangman:
		return hangman.NewRandom(input.Option, s.roller)
	case games.VariantNumberGuess:
		return numguess.NewRandom(input.Option, s.roller)
	case games.VariantMemoryMatch:
		return memory.NewRandom(input.Option, s.roller)
	case games.VariantRPS:
		return rps.NewRandom(input.Wager, s.roller)
	case games.VariantBlackjack:
		return blackjack.NewRandom(input.Wager, s.roller)
	default:
		return nil, ErrUnknownVariant
	}
}

func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input.Wager != 0 && !wagered(input.Variant) {
		return nil, ErrWagerNotAllowed
	}
	if input.Variant == games.VariantBlackjack && input.Wager == 0 {
		return nil, ErrWagerRequired
	}
	if input.Wager != 0 && (input.Wager < s.minWager || input.Wager > s.maxWager) {
		return nil, ErrWagerOutOfRange
	}

	sess, err := s.newSession(input)
	if err != nil {
		return nil, err
	}

	key := registry.Key{ChannelID: input.ChannelID, UserID: input.UserID}
	entry := &registry.Entry{
		ID:      s.uuider.NewUUID(),
		Key:     key,
		Session: sess,
		Wager:   input.Wager,
	}

	// the stake lands before the session is reachable, so a failed debit
	// leaves nothing behind and a racing input cannot play on an unpaid
	// session
	if input.Wager > 0 {
		_, err := s.ledger.AdjustBalance(ctx, &ledger.AdjustBalanceInput{
			UserID: input.UserID,
			Delta:  -input.Wager,
			Reason: fmt.Sprintf("%s wager", input.Variant),
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.registry.Start(entry); err != nil {
		if input.Wager > 0 {
			_, refundErr := s.ledger.AdjustBalance(ctx, &ledger.AdjustBalanceInput{
				UserID: input.UserID,
				Delta:  input.Wager,
				Reason: fmt.Sprintf("%s wager refund", input.Variant),
			})
			if refundErr != nil {
				log.Error().Err(refundErr).Str("session_id", entry.ID).Msg("failed to refund stake after rejected start")
			}
		}
		return nil, err
	}

	log.Info().
		Str("session_id", entry.ID).
		Str("channel_id", input.ChannelID).
		Str("user_id", input.UserID).
		Str("game", string(input.Variant)).
		Int64("wager", input.Wager).
		Msg("game started")

	out := &StartGameOutput{
		SessionID: entry.ID,
		Snapshot:  sess.Snapshot(),
		Wager:     input.Wager,
	}

	// blackjack naturals resolve on the deal
	if sess.Status().Terminal() {
		if _, err := s.registry.Remove(key); err != nil {
			return nil, err
		}
		settlement, leveledUp, level, err := s.settle(ctx, entry)
		if err != nil {
			return nil, err
		}
		out.Settled = true
		out.Settlement = settlement
		out.LeveledUp = leveledUp
		out.Level = level
		out.Snapshot = sess.Snapshot()
	}

	return out, nil
}

func (s *service) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	key := registry.Key{ChannelID: input.ChannelID, UserID: input.UserID}

	entry, err := s.registry.Get(key)
	if err != nil {
		return nil, err
	}

	entry.Lock()
	defer entry.Unlock()

	// the janitor may have expired the session between the lookup and
	// the lock
	if entry.Session.Status().Terminal() {
		return nil, ErrSessionNotFound
	}

	if err := entry.Session.Advance(input.Input); err != nil {
		return nil, err
	}
	s.registry.Touch(key)

	out := &AdvanceOutput{
		Snapshot: entry.Session.Snapshot(),
		Wager:    entry.Wager,
	}

	if entry.Session.Status().Terminal() {
		// this call caused the transition, so this call settles. The
		// expiry sweep may have collected the entry after our lookup;
		// its terminal check keeps it from settling too, so a missing
		// entry here is not an error.
		if _, err := s.registry.Remove(key); err != nil && !errors.Is(err, registry.ErrSessionNotFound) {
			return nil, err
		}
		settlement, leveledUp, level, err := s.settle(ctx, entry)
		if err != nil {
			return nil, err
		}
		out.Settled = true
		out.Settlement = settlement
		out.LeveledUp = leveledUp
		out.Level = level
	}

	return out, nil
}

func (s *service) Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error) {
	key := registry.Key{ChannelID: input.ChannelID, UserID: input.UserID}

	entry, err := s.registry.Remove(key)
	if err != nil {
		return nil, err
	}

	entry.Lock()
	defer entry.Unlock()

	if entry.Session.Status().Terminal() {
		return nil, ErrSessionNotFound
	}

	entry.Session.Cancel()

	settlement, _, _, err := s.settle(ctx, entry)
	if err != nil {
		return nil, err
	}

	return &ForfeitOutput{
		Snapshot:   entry.Session.Snapshot(),
		Wager:      entry.Wager,
		Settlement: settlement,
	}, nil
}

func (s *service) ExpireEntry(ctx context.Context, entry *registry.Entry) {
	entry.Lock()
	defer entry.Unlock()

	if entry.Session.Status().Terminal() {
		return
	}

	entry.Session.Expire()

	if _, _, _, err := s.settle(ctx, entry); err != nil {
		log.Error().
			Err(err).
			Str("session_id", entry.ID).
			Msg("failed to settle expired session")
		return
	}

	log.Info().
		Str("session_id", entry.ID).
		Str("game", string(entry.Session.Variant())).
		Msg("idle session expired")
}

func (s *service) ActiveSessions() int {
	return s.registry.Len()
}

// settle applies a terminal session's payout, XP and stats exactly once.
// Callers guarantee the session is terminal and that they are the sole
// owner of the entry.
func (s *service) settle(ctx context.Context, entry *registry.Entry) (*games.Settlement, bool, int, error) {
	sess := entry.Session
	settlement := sess.Settlement()
	status := sess.Status()

	if settlement.Payout > 0 {
		_, err := s.ledger.AdjustBalance(ctx, &ledger.AdjustBalanceInput{
			UserID: entry.Key.UserID,
			Delta:  settlement.Payout,
			Reason: fmt.Sprintf("%s settlement", sess.Variant()),
		})
		if err != nil {
			return nil, false, 0, err
		}
	}

	var (
		leveledUp bool
		level     int
	)
	if settlement.Experience > 0 {
		out, err := s.ledger.AwardExperience(ctx, &ledger.AwardExperienceInput{
			UserID: entry.Key.UserID,
			Amount: settlement.Experience,
		})
		if err != nil {
			return nil, false, 0, err
		}
		leveledUp = out.LeveledUp
		level = out.Account.Level
	}

	if status == games.StatusWon || status == games.StatusLost {
		err := s.statsRepo.RecordResult(ctx, &stats.RecordResultInput{
			Variant: string(sess.Variant()),
			UserID:  entry.Key.UserID,
			Won:     status == games.StatusWon,
		})
		if err != nil {
			// stats are best effort, the payout already landed
			log.Error().Err(err).Str("session_id", entry.ID).Msg("failed to record game result")
		}
	}

	log.Info().
		Str("session_id", entry.ID).
		Str("game", string(sess.Variant())).
		Str("status", string(status)).
		Int64("payout", settlement.Payout).
		Int64("xp", settlement.Experience).
		Msg("session settled")

	return settlement, leveledUp, level, nil
}
