package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockmock "github.com/playroom-bot/playroom/internal/common/clock/mocks"
	arcademock "github.com/playroom-bot/playroom/internal/services/arcade/mocks"
)

type WebServerTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mr         *miniredis.Miniredis
	client     *redis.Client
	mockArcade *arcademock.MockService
	server     *Server
}

func (s *WebServerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s.mockArcade = arcademock.NewMockService(s.ctrl)

	mockClock := clockmock.NewMockClock(s.ctrl)
	mockClock.EXPECT().Now().Return(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	server, err := New(&Config{
		RedisClient: s.client,
		Arcade:      s.mockArcade,
		Clock:       mockClock,
	})
	s.Require().NoError(err)
	s.server = server
}

func (s *WebServerTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
	s.ctrl.Finish()
}

func TestWebServerTestSuite(t *testing.T) {
	suite.Run(t, new(WebServerTestSuite))
}

func (s *WebServerTestSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.server.engine.ServeHTTP(rec, req)
	return rec
}

func (s *WebServerTestSuite) TestRootIsAlive() {
	rec := s.get("/")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Bot is alive", rec.Body.String())
}

func (s *WebServerTestSuite) TestHealthzChecksRedis() {
	rec := s.get("/healthz")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}

func (s *WebServerTestSuite) TestHealthzReportsRedisDown() {
	s.mr.Close()

	rec := s.get("/healthz")
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "unhealthy")
}

func (s *WebServerTestSuite) TestStatusReportsSessions() {
	s.mockArcade.EXPECT().ActiveSessions().Return(3)

	rec := s.get("/status")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"active_sessions":3`)
}
