package table

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ewhitmore/scorepad-go/internal/dependencies/mocks"
	"github.com/ewhitmore/scorepad-go/internal/model"
	"github.com/ewhitmore/scorepad-go/internal/storage/memory"
	"github.com/ewhitmore/scorepad-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) TestCreateTableSucceeds() {
	s.random.QueueString("ABC234")

	session, err := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")
	s.Require().NoError(err)

	s.Equal(model.TableCode("ABC234"), session.Code)
	s.Equal(model.SessionStatusSetup, session.Status)
	s.Equal(4, session.Config.MaxPlayers)
	s.Equal(s.clock.Now(), session.CreatedAt)
	s.Empty(session.PasscodeHash)
}

func (s *ControllerSuite) TestCreateTableIsPersisted() {
	s.random.QueueString("ABC234")

	session, _ := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")

	retrieved, err := s.controller.GetTable(s.ctx, session.Code)
	s.Require().NoError(err)
	s.Equal(session.Code, retrieved.Code)
}

func (s *ControllerSuite) TestCreateTableRetriesOnCodeCollision() {
	s.random.QueueString("ABC234")
	_, err := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")
	s.Require().NoError(err)

	s.random.QueueString("ABC234", "XYZ789")
	session, err := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")
	s.Require().NoError(err)

	s.Equal(model.TableCode("XYZ789"), session.Code)
}

func (s *ControllerSuite) TestCreateTableRaisesTinyMaxPlayers() {
	s.random.QueueString("ABC234")

	session, err := s.controller.CreateTable(s.ctx, model.TableConfig{MaxPlayers: 1}, "")
	s.Require().NoError(err)

	s.Equal(model.DefaultTableConfig().MaxPlayers, session.Config.MaxPlayers)
}

func (s *ControllerSuite) TestCreateTableStoresPasscodeHash() {
	s.random.QueueString("ABC234")

	session, err := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "hashed")
	s.Require().NoError(err)

	s.Equal("hashed", session.PasscodeHash)
}

func (s *ControllerSuite) TestGetTableUnknownCode() {
	_, err := s.controller.GetTable(s.ctx, "NOPE99")

	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *ControllerSuite) TestDispatchPersistsResult() {
	s.random.QueueString("ABC234")
	session, _ := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")

	s.clock.Advance(time.Minute)
	updated, err := s.controller.AddPlayer(s.ctx, session.Code, "Alice")
	s.Require().NoError(err)

	s.Len(updated.Players, 1)
	s.Equal(s.clock.Now(), updated.UpdatedAt)

	retrieved, err := s.controller.GetTable(s.ctx, session.Code)
	s.Require().NoError(err)
	s.Len(retrieved.Players, 1)
}

func (s *ControllerSuite) TestDispatchRejectionLeavesStoredStateUntouched() {
	s.random.QueueString("ABC234")
	session, _ := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")
	_, _ = s.controller.AddPlayer(s.ctx, session.Code, "Alice")

	_, err := s.controller.StartGame(s.ctx, session.Code)
	s.ErrorIs(err, model.ErrRosterTooSmall)

	retrieved, _ := s.controller.GetTable(s.ctx, session.Code)
	s.Equal(model.SessionStatusSetup, retrieved.Status)
}

func (s *ControllerSuite) TestDispatchUnknownTable() {
	_, err := s.controller.AddPlayer(s.ctx, "NOPE99", "Alice")

	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *ControllerSuite) TestFullTurnThroughController() {
	s.random.QueueString("ABC234")
	session, _ := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")
	code := session.Code

	_, err := s.controller.AddPlayer(s.ctx, code, "Alice")
	s.Require().NoError(err)
	_, err = s.controller.AddPlayer(s.ctx, code, "Bob")
	s.Require().NoError(err)
	_, err = s.controller.StartGame(s.ctx, code)
	s.Require().NoError(err)

	for i, v := range []int{5, 5, 5, 2, 2} {
		_, err = s.controller.SetDie(s.ctx, code, i, v)
		s.Require().NoError(err)
	}

	updated, err := s.controller.SelectCategory(s.ctx, code, model.CategoryFullHouse)
	s.Require().NoError(err)

	s.Equal(25, updated.Cards[0].Scores[model.CategoryFullHouse])
	s.Equal(1, updated.CurrentPlayer)
}

func (s *ControllerSuite) TestDeleteTable() {
	s.random.QueueString("ABC234")
	session, _ := s.controller.CreateTable(s.ctx, model.DefaultTableConfig(), "")

	err := s.controller.DeleteTable(s.ctx, session.Code)
	s.Require().NoError(err)

	_, err = s.controller.GetTable(s.ctx, session.Code)
	s.ErrorIs(err, model.ErrTableNotFound)
}
