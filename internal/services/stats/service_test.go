package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"hwidstore/internal/dependencies/mocks"
	"hwidstore/internal/model"
	"hwidstore/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

func (s *ServiceSuite) seed(records ...*model.HwidRecord) {
	snap := model.NewSnapshot()
	snap.Records = records
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, snap))
}

func (s *ServiceSuite) record(hwid string, lastSeenAgo time.Duration) *model.HwidRecord {
	return &model.HwidRecord{
		HWID:     hwid,
		Executor: "Synapse",
		LastSeen: s.clock.CurrentTime.Add(-lastSeenAgo),
	}
}

func (s *ServiceSuite) TestEmptyRegistry() {
	summary, err := s.service.Compute(s.ctx)
	s.Require().NoError(err)

	s.Equal(0, summary.TotalCount)
	s.Equal(0, summary.AllowedCount)
	s.Empty(summary.ExecutorBreakdown)
	s.Empty(summary.RecentlyActive)
}

func (s *ServiceSuite) TestCountsAndExecutorBreakdown() {
	a := s.record("A", time.Hour)
	a.Allowed = true
	b := s.record("B", time.Hour)
	c := s.record("C", time.Hour)
	c.Executor = "Krnl"
	d := s.record("D", time.Hour)
	d.Executor = ""
	s.seed(a, b, c, d)

	summary, err := s.service.Compute(s.ctx)
	s.Require().NoError(err)

	s.Equal(4, summary.TotalCount)
	s.Equal(1, summary.AllowedCount)
	s.Equal(map[string]int{
		"Synapse": 2,
		"Krnl":    1,
		"Unknown": 1,
	}, summary.ExecutorBreakdown)
}

func (s *ServiceSuite) TestRecentWindowIsStrict() {
	s.seed(
		s.record("FRESH", 23*time.Hour+54*time.Minute), // 23.9h
		s.record("STALE", 24*time.Hour),
		s.record("OLDER", 25*time.Hour),
	)

	summary, err := s.service.Compute(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(summary.RecentlyActive, 1)
	s.Equal("FRESH", summary.RecentlyActive[0].HWID)
	s.InDelta(23.9, summary.RecentlyActive[0].HoursAgo, 0.001)
}

func (s *ServiceSuite) TestHoursAgoRounding() {
	s.seed(s.record("A", 90*time.Minute))

	summary, err := s.service.Compute(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(summary.RecentlyActive, 1)
	s.InDelta(1.5, summary.RecentlyActive[0].HoursAgo, 0.001)
}

func (s *ServiceSuite) TestMissingLastSeenExcluded() {
	rec := s.record("A", 0)
	rec.LastSeen = time.Time{}
	s.seed(rec)

	summary, err := s.service.Compute(s.ctx)
	s.Require().NoError(err)

	// Still counted, just not recently active
	s.Equal(1, summary.TotalCount)
	s.Empty(summary.RecentlyActive)
}

func (s *ServiceSuite) TestUsernameFromPlayerInfo() {
	withPlayer := s.record("A", time.Hour)
	withPlayer.Player = &model.PlayerInfo{UserID: "7", Username: "bob"}
	s.seed(withPlayer, s.record("B", time.Hour))

	summary, err := s.service.Compute(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(summary.RecentlyActive, 2)
	s.Equal("bob", summary.RecentlyActive[0].Username)
	s.Equal("Unknown", summary.RecentlyActive[1].Username)
}
