package allowlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"hwidstore/internal/model"
	"hwidstore/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage)
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestAuthorizeUnknownHwid() {
	ok, err := s.service.Authorize(s.ctx, "X")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestAddThenAuthorize() {
	s.Require().NoError(s.service.Add(s.ctx, "X"))

	ok, err := s.service.Authorize(s.ctx, "X")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ServiceSuite) TestAddIsIdempotent() {
	s.Require().NoError(s.service.Add(s.ctx, "X"))
	s.Require().NoError(s.service.Add(s.ctx, "X"))

	hwids, err := s.storage.LoadAllowlist(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"X"}, hwids)
}

func (s *ServiceSuite) TestRemove() {
	s.Require().NoError(s.service.Add(s.ctx, "X"))
	s.Require().NoError(s.service.Remove(s.ctx, "X"))

	ok, err := s.service.Authorize(s.ctx, "X")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ServiceSuite) TestRemoveAbsentIsNoOp() {
	s.Require().NoError(s.service.Add(s.ctx, "X"))

	s.Require().NoError(s.service.Remove(s.ctx, "Y"))

	hwids, err := s.storage.LoadAllowlist(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"X"}, hwids)
}

func (s *ServiceSuite) TestEmptyHwidRejected() {
	s.ErrorIs(s.service.Add(s.ctx, ""), model.ErrMissingHWID)
	s.ErrorIs(s.service.Remove(s.ctx, ""), model.ErrMissingHWID)

	_, err := s.service.Authorize(s.ctx, "")
	s.ErrorIs(err, model.ErrMissingHWID)
}
