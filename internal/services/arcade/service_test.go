package arcade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmock "github.com/playroom-bot/playroom/internal/common/clock/mocks"
	uuidmock "github.com/playroom-bot/playroom/internal/common/uuid/mocks"
	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/models"
	"github.com/playroom-bot/playroom/internal/registry"
	statsmock "github.com/playroom-bot/playroom/internal/repositories/stats/mocks"
	rngmock "github.com/playroom-bot/playroom/internal/rng/mocks"
	"github.com/playroom-bot/playroom/internal/services/ledger"
	ledgermock "github.com/playroom-bot/playroom/internal/services/ledger/mocks"
)

type ArcadeServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	reg        *registry.Registry
	mockLedger *ledgermock.MockService
	mockStats  *statsmock.MockRepository
	roller     *rngmock.MockRoller
	svc        Service

	key registry.Key
}

func (s *ArcadeServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mockClock := clockmock.NewMockClock(s.ctrl)
	mockClock.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	reg, err := registry.New(&registry.Config{Clock: mockClock})
	s.Require().NoError(err)
	s.reg = reg

	mockUUID := uuidmock.NewMockUUID(s.ctrl)
	mockUUID.EXPECT().NewUUID().Return("session-1").AnyTimes()

	s.mockLedger = ledgermock.NewMockService(s.ctrl)
	s.mockStats = statsmock.NewMockRepository(s.ctrl)
	s.roller = rngmock.NewMockRoller(s.ctrl)

	svc, err := New(&Config{
		Registry:  s.reg,
		Ledger:    s.mockLedger,
		StatsRepo: s.mockStats,
		Roller:    s.roller,
		UUID:      mockUUID,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.key = registry.Key{ChannelID: "chan-1", UserID: "user-1"}
}

func (s *ArcadeServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestArcadeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArcadeServiceTestSuite))
}

func (s *ArcadeServiceTestSuite) expectAward(amount int64) {
	s.mockLedger.EXPECT().
		AwardExperience(gomock.Any(), &ledger.AwardExperienceInput{
			UserID: "user-1",
			Amount: amount,
		}).
		Return(&ledger.AwardExperienceOutput{
			Account: &models.Account{UserID: "user-1", Experience: amount},
		}, nil)
}

func (s *ArcadeServiceTestSuite) startNumberGuess() {
	// easy difficulty draws from [1,50]
	s.roller.EXPECT().Between(1, 50).Return(42)

	out, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantNumberGuess,
		Option:    "easy",
	})
	s.Require().NoError(err)
	s.Equal("session-1", out.SessionID)
	s.False(out.Settled)
	s.Equal(games.StatusActive, out.Snapshot.Status)
}

func (s *ArcadeServiceTestSuite) TestPlayNumberGuessToWin() {
	s.startNumberGuess()
	s.Equal(1, s.svc.ActiveSessions())

	// a miss keeps the session active
	out, err := s.svc.Advance(context.Background(), &AdvanceInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Input:     "20",
	})
	s.Require().NoError(err)
	s.False(out.Settled)

	// the winning guess settles the session
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledger.AdjustBalanceInput) (*ledger.AdjustBalanceOutput, error) {
			s.Equal(int64(50), input.Delta)
			return &ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 50}}, nil
		})
	s.expectAward(20)
	s.mockStats.EXPECT().RecordResult(gomock.Any(), gomock.Any()).Return(nil)

	out, err = s.svc.Advance(context.Background(), &AdvanceInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Input:     "42",
	})
	s.Require().NoError(err)
	s.True(out.Settled)
	s.Equal(games.StatusWon, out.Snapshot.Status)
	s.Equal(int64(50), out.Settlement.Payout)
	s.Zero(s.svc.ActiveSessions())
}

func (s *ArcadeServiceTestSuite) TestInvalidInputConsumesNothing() {
	s.startNumberGuess()

	_, err := s.svc.Advance(context.Background(), &AdvanceInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Input:     "not a number",
	})
	s.Require().ErrorIs(err, ErrInvalidInput)
	s.Equal(1, s.svc.ActiveSessions())
}

func (s *ArcadeServiceTestSuite) TestSecondStartRejected() {
	s.startNumberGuess()

	_, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantTrivia,
	})
	s.Require().ErrorIs(err, ErrAlreadyActive)
}

func (s *ArcadeServiceTestSuite) TestSameUserDifferentChannels() {
	s.startNumberGuess()

	s.roller.EXPECT().Between(1, 50).Return(7)
	_, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-2",
		UserID:    "user-1",
		Variant:   games.VariantNumberGuess,
		Option:    "easy",
	})
	s.Require().NoError(err)
	s.Equal(2, s.svc.ActiveSessions())
}

func (s *ArcadeServiceTestSuite) TestWagerStakedOnStartAndRefundedOnForfeit() {
	s.roller.EXPECT().Intn(3).Return(0).Times(5)
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  -50,
			Reason: "rps wager",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 0}}, nil)

	_, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantRPS,
		Wager:     50,
	})
	s.Require().NoError(err)

	// forfeiting a cancellable game refunds the stake
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  50,
			Reason: "rps settlement",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 50}}, nil)

	out, err := s.svc.Forfeit(context.Background(), &ForfeitInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
	})
	s.Require().NoError(err)
	s.Equal(games.StatusCancelled, out.Snapshot.Status)
	s.Equal(int64(50), out.Settlement.Payout)
	s.Zero(s.svc.ActiveSessions())
}

func (s *ArcadeServiceTestSuite) TestFailedStakeLeavesNoSession() {
	s.roller.EXPECT().Intn(3).Return(0).Times(5)
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), gomock.Any()).
		Return(nil, ledger.ErrInsufficientFunds)

	_, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantRPS,
		Wager:     50,
	})
	s.Require().ErrorIs(err, ErrInsufficientFunds)
	s.Zero(s.svc.ActiveSessions())
}

func (s *ArcadeServiceTestSuite) TestSecondWageredStartRefundsStake() {
	s.startNumberGuess()

	// the stake is taken before the registry rejects the duplicate, so
	// it has to come back
	s.roller.EXPECT().Intn(3).Return(0).Times(5)
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  -50,
			Reason: "rps wager",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 0}}, nil)
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  50,
			Reason: "rps wager refund",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 50}}, nil)

	_, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantRPS,
		Wager:     50,
	})
	s.Require().ErrorIs(err, ErrAlreadyActive)
	s.Equal(1, s.svc.ActiveSessions())
}

func (s *ArcadeServiceTestSuite) TestAdvanceSettlesWhenSweptMidFlight() {
	s.startNumberGuess()

	entry, err := s.reg.Get(s.key)
	s.Require().NoError(err)

	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  50,
			Reason: "numguess settlement",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 50}}, nil)
	s.expectAward(20)
	s.mockStats.EXPECT().RecordResult(gomock.Any(), gomock.Any()).Return(nil)

	// hold the entry lock so the winning guess parks between its registry
	// lookup and the session transition, then pull the entry out from
	// under it the way the idle sweep would
	entry.Lock()

	type result struct {
		out *AdvanceOutput
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := s.svc.Advance(context.Background(), &AdvanceInput{
			ChannelID: "chan-1",
			UserID:    "user-1",
			Input:     "42",
		})
		done <- result{out, err}
	}()

	time.Sleep(50 * time.Millisecond)
	_, err = s.reg.Remove(s.key)
	s.Require().NoError(err)
	entry.Unlock()

	res := <-done
	s.Require().NoError(res.err)
	s.True(res.out.Settled)
	s.Equal(int64(50), res.out.Settlement.Payout)
}

func (s *ArcadeServiceTestSuite) TestWagerValidation() {
	_, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantBlackjack,
	})
	s.Require().ErrorIs(err, ErrWagerRequired)

	_, err = s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantTrivia,
		Wager:     10,
	})
	s.Require().ErrorIs(err, ErrWagerNotAllowed)

	_, err = s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantRPS,
		Wager:     5,
	})
	s.Require().ErrorIs(err, ErrWagerOutOfRange)

	_, err = s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   "roulette",
	})
	s.Require().ErrorIs(err, ErrUnknownVariant)
}

func (s *ArcadeServiceTestSuite) TestBlackjackNaturalSettlesOnDeal() {
	// order the deck so the player is dealt A♠ K♠
	s.roller.EXPECT().
		Shuffle(52, gomock.Any()).
		Do(func(_ int, swap func(i, j int)) {
			swap(1, 12)
		})
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  -100,
			Reason: "blackjack wager",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 0}}, nil)
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  250,
			Reason: "blackjack settlement",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 250}}, nil)
	s.expectAward(15)
	s.mockStats.EXPECT().RecordResult(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantBlackjack,
		Wager:     100,
	})
	s.Require().NoError(err)
	s.True(out.Settled)
	s.Equal(games.StatusWon, out.Snapshot.Status)
	s.Equal(int64(250), out.Settlement.Payout)
	s.Zero(s.svc.ActiveSessions())
}

func (s *ArcadeServiceTestSuite) TestExpireEntrySettlesOnce() {
	s.startNumberGuess()

	entry, err := s.reg.Remove(s.key)
	s.Require().NoError(err)

	// an expired friendly game owes nothing, so no ledger calls
	s.svc.ExpireEntry(context.Background(), entry)
	s.Equal(games.StatusExpired, entry.Session.Status())

	// a second expiry attempt is a no-op
	s.svc.ExpireEntry(context.Background(), entry)

	_, err = s.svc.Advance(context.Background(), &AdvanceInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Input:     "42",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *ArcadeServiceTestSuite) TestExpiredWagerIsRefunded() {
	s.roller.EXPECT().Intn(3).Return(0).Times(5)
	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  -80,
			Reason: "rps wager",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 20}}, nil)

	_, err := s.svc.StartGame(context.Background(), &StartGameInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Variant:   games.VariantRPS,
		Wager:     80,
	})
	s.Require().NoError(err)

	s.mockLedger.EXPECT().
		AdjustBalance(gomock.Any(), &ledger.AdjustBalanceInput{
			UserID: "user-1",
			Delta:  80,
			Reason: "rps settlement",
		}).
		Return(&ledger.AdjustBalanceOutput{Account: &models.Account{Balance: 100}}, nil)

	entry, err := s.reg.Remove(s.key)
	s.Require().NoError(err)
	s.svc.ExpireEntry(context.Background(), entry)
	s.Equal(games.StatusExpired, entry.Session.Status())
}

func (s *ArcadeServiceTestSuite) TestAdvanceWithoutSession() {
	_, err := s.svc.Advance(context.Background(), &AdvanceInput{
		ChannelID: "chan-1",
		UserID:    "user-1",
		Input:     "rock",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}
