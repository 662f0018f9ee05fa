package stats

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) record(variant, userID string, won bool, times int) {
	for i := 0; i < times; i++ {
		err := s.repo.RecordResult(context.Background(), &RecordResultInput{
			Variant: variant,
			UserID:  userID,
			Won:     won,
		})
		s.Require().NoError(err)
	}
}

func (s *RedisRepositoryTestSuite) TestRecordAndGet() {
	s.record("hangman", "user-1", true, 3)
	s.record("hangman", "user-1", false, 1)

	stats, err := s.repo.GetStats(context.Background(), &GetStatsInput{
		Variant: "hangman",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(3), stats.Wins)
	s.Equal(int64(1), stats.Losses)
	s.InDelta(75.0, stats.WinRate(), 0.01)
}

func (s *RedisRepositoryTestSuite) TestStatsScopedPerVariant() {
	s.record("hangman", "user-1", true, 2)

	stats, err := s.repo.GetStats(context.Background(), &GetStatsInput{
		Variant: "blackjack",
		UserID:  "user-1",
	})
	s.Require().NoError(err)
	s.Zero(stats.Wins)
	s.Zero(stats.Losses)
}

func (s *RedisRepositoryTestSuite) TestUnplayedStatsAreZero() {
	stats, err := s.repo.GetStats(context.Background(), &GetStatsInput{
		Variant: "trivia",
		UserID:  "nobody",
	})
	s.Require().NoError(err)
	s.Zero(stats.Wins)
	s.Zero(stats.WinRate())
}

func (s *RedisRepositoryTestSuite) TestGetTopWinners() {
	s.record("trivia", "champ", true, 5)
	s.record("trivia", "runner-up", true, 3)
	s.record("trivia", "loser", false, 4)

	out, err := s.repo.GetTopWinners(context.Background(), &GetTopWinnersInput{
		Variant: "trivia",
		Limit:   2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Stats, 2)
	s.Equal("champ", out.Stats[0].UserID)
	s.Equal(int64(5), out.Stats[0].Wins)
	s.Equal("runner-up", out.Stats[1].UserID)
}
