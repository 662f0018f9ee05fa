package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmock "github.com/playroom-bot/playroom/internal/common/clock/mocks"
	"github.com/playroom-bot/playroom/internal/models"
	"github.com/playroom-bot/playroom/internal/repositories/account"
	acctmock "github.com/playroom-bot/playroom/internal/repositories/account/mocks"
	rngmock "github.com/playroom-bot/playroom/internal/rng/mocks"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *acctmock.MockRepository
	clock    *clockmock.MockClock
	roller   *rngmock.MockRoller
	svc      Service

	now  time.Time
	acct *models.Account
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = acctmock.NewMockRepository(s.ctrl)
	s.clock = clockmock.NewMockClock(s.ctrl)
	s.roller = rngmock.NewMockRoller(s.ctrl)

	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	s.clock.EXPECT().Now().Return(s.now).AnyTimes()

	s.acct = &models.Account{UserID: "user-1"}

	svc, err := New(&Config{
		AccountRepo:          s.mockRepo,
		Clock:                s.clock,
		Roller:               s.roller,
		StorageRetries:       1,
		StorageRetryInterval: time.Millisecond,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *LedgerServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

// expectUpdate wires UpdateAccount to run the mutation against the
// suite's stored account the way the real repository would
func (s *LedgerServiceTestSuite) expectUpdate() *gomock.Call {
	return s.mockRepo.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *account.UpdateAccountInput) (*models.Account, error) {
			working := *s.acct
			if err := input.Update(&working); err != nil {
				return nil, err
			}
			if working.Balance < 0 {
				return nil, account.ErrInsufficientFunds
			}
			working.Level = models.LevelForExperience(working.Experience)
			*s.acct = working
			return &working, nil
		})
}

func (s *LedgerServiceTestSuite) TestAdjustBalanceCredit() {
	s.expectUpdate()

	out, err := s.svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		UserID: "user-1",
		Delta:  250,
		Reason: "blackjack payout",
	})
	s.Require().NoError(err)
	s.Equal(int64(250), out.Account.Balance)
	s.Equal(s.now, out.Account.CreatedAt)
	s.Equal(s.now, out.Account.UpdatedAt)
}

func (s *LedgerServiceTestSuite) TestAdjustBalanceOverdraft() {
	s.acct.Balance = 30
	s.expectUpdate()

	_, err := s.svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		UserID: "user-1",
		Delta:  -50,
		Reason: "wager",
	})
	s.Require().ErrorIs(err, ErrInsufficientFunds)
	s.Equal(int64(30), s.acct.Balance)
}

func (s *LedgerServiceTestSuite) TestAwardExperienceLevelsUp() {
	s.acct.Experience = 90
	s.expectUpdate()

	out, err := s.svc.AwardExperience(context.Background(), &AwardExperienceInput{
		UserID: "user-1",
		Amount: 20,
	})
	s.Require().NoError(err)
	s.Equal(int64(110), out.Account.Experience)
	s.Equal(1, out.Account.Level)
	s.True(out.LeveledUp)
}

func (s *LedgerServiceTestSuite) TestAwardExperienceNoLevelUp() {
	s.expectUpdate()

	out, err := s.svc.AwardExperience(context.Background(), &AwardExperienceInput{
		UserID: "user-1",
		Amount: 20,
	})
	s.Require().NoError(err)
	s.False(out.LeveledUp)
}

func (s *LedgerServiceTestSuite) TestClaimDailyFirstTime() {
	s.expectUpdate()
	s.roller.EXPECT().Between(100, 200).Return(150)

	out, err := s.svc.ClaimDaily(context.Background(), &ClaimDailyInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.True(out.Claimed)
	s.Equal(int64(150), out.Amount)
	s.Equal(1, out.Streak)
	s.Equal(s.now.Add(24*time.Hour), out.NextClaimAt)
	s.Equal(int64(150), out.Account.Balance)
}

func (s *LedgerServiceTestSuite) TestClaimDailyOnCooldown() {
	s.acct.Balance = 500
	s.acct.LastDaily = s.now.Add(-time.Hour)
	s.expectUpdate()

	out, err := s.svc.ClaimDaily(context.Background(), &ClaimDailyInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.False(out.Claimed)
	s.Equal(s.acct.LastDaily.Add(24*time.Hour), out.NextClaimAt)
	s.Equal(int64(500), s.acct.Balance)
}

func (s *LedgerServiceTestSuite) TestClaimDailyStreakBonus() {
	s.acct.DailyStreak = 2
	s.acct.LastDaily = s.now.Add(-25 * time.Hour)
	s.expectUpdate()
	s.roller.EXPECT().Between(100, 200).Return(150)

	out, err := s.svc.ClaimDaily(context.Background(), &ClaimDailyInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.True(out.Claimed)
	s.Equal(3, out.Streak)
	s.Equal(int64(150+2*50), out.Amount)
}

func (s *LedgerServiceTestSuite) TestClaimDailyStreakResetsWhenLate() {
	s.acct.DailyStreak = 5
	s.acct.LastDaily = s.now.Add(-49 * time.Hour)
	s.expectUpdate()
	s.roller.EXPECT().Between(100, 200).Return(120)

	out, err := s.svc.ClaimDaily(context.Background(), &ClaimDailyInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(1, out.Streak)
	s.Equal(int64(120), out.Amount)
}

func (s *LedgerServiceTestSuite) TestWork() {
	s.expectUpdate()
	s.roller.EXPECT().Between(10, 50).Return(35)

	out, err := s.svc.Work(context.Background(), &WorkInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.True(out.Worked)
	s.Equal(int64(35), out.Amount)
	s.Equal(s.now.Add(time.Hour), out.NextShiftAt)
	s.Equal(int64(35), out.Account.Balance)
}

func (s *LedgerServiceTestSuite) TestWorkOnCooldown() {
	s.acct.LastWork = s.now.Add(-30 * time.Minute)
	s.expectUpdate()

	out, err := s.svc.Work(context.Background(), &WorkInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.False(out.Worked)
	s.Equal(s.acct.LastWork.Add(time.Hour), out.NextShiftAt)
}

func (s *LedgerServiceTestSuite) TestStorageFailureRetriesThenSurfaces() {
	s.mockRepo.EXPECT().
		UpdateAccount(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(2)

	_, err := s.svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		UserID: "user-1",
		Delta:  10,
	})
	s.Require().ErrorIs(err, ErrStorageUnavailable)
}

func (s *LedgerServiceTestSuite) TestOverdraftIsNotRetried() {
	s.acct.Balance = 5
	s.expectUpdate().Times(1)

	_, err := s.svc.AdjustBalance(context.Background(), &AdjustBalanceInput{
		UserID: "user-1",
		Delta:  -10,
	})
	s.Require().ErrorIs(err, ErrInsufficientFunds)
}

func (s *LedgerServiceTestSuite) TestGetAccountPassesThrough() {
	s.mockRepo.EXPECT().
		GetAccount(gomock.Any(), &account.GetAccountInput{UserID: "user-1"}).
		Return(&models.Account{UserID: "user-1", Balance: 77}, nil)

	out, err := s.svc.GetAccount(context.Background(), &GetAccountInput{UserID: "user-1"})
	s.Require().NoError(err)
	s.Equal(int64(77), out.Account.Balance)
}

func (s *LedgerServiceTestSuite) TestGetTopBalances() {
	s.mockRepo.EXPECT().
		GetTopBalances(gomock.Any(), &account.GetTopBalancesInput{Limit: 3}).
		Return(&account.GetTopBalancesOutput{
			Accounts: []*models.Account{
				{UserID: "rich", Balance: 9000},
				{UserID: "poor", Balance: 2},
			},
		}, nil)

	out, err := s.svc.GetTopBalances(context.Background(), &GetTopBalancesInput{Limit: 3})
	s.Require().NoError(err)
	s.Require().Len(out.Accounts, 2)
	s.Equal("rich", out.Accounts[0].UserID)
}
