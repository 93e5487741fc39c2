package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ewhitmore/scorepad-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(code model.TableCode) *model.Session {
	return &model.Session{
		Code:      code,
		Status:    model.SessionStatusSetup,
		Config:    model.DefaultTableConfig(),
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("ABC234")
	session.Players = []model.Player{{Index: 0, Name: "Alice"}}
	session.Cards = []model.Scorecard{model.NewScorecard()}

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal(session.Code, retrieved.Code)
	s.Equal(session.Players, retrieved.Players)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "NOPE99")
	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *StorageSuite) TestSaveStoresIndependentCopy() {
	session := s.newSession("ABC234")
	session.Players = []model.Player{{Index: 0, Name: "Alice"}}
	session.Cards = []model.Scorecard{model.NewScorecard()}
	_ = s.storage.SaveSession(s.ctx, session)

	// Mutating the caller's copy must not reach the stored session
	session.Players[0].Name = "Mallory"
	session.Cards[0].Scores[model.CategoryChance] = 30

	retrieved, err := s.storage.GetSession(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.Equal("Alice", retrieved.Players[0].Name)
	s.Empty(retrieved.Cards[0].Scores)
}

func (s *StorageSuite) TestGetReturnsIndependentCopy() {
	session := s.newSession("ABC234")
	session.Players = []model.Player{{Index: 0, Name: "Alice"}}
	_ = s.storage.SaveSession(s.ctx, session)

	first, _ := s.storage.GetSession(s.ctx, "ABC234")
	first.Players[0].Name = "Mallory"

	second, _ := s.storage.GetSession(s.ctx, "ABC234")
	s.Equal("Alice", second.Players[0].Name)
}

func (s *StorageSuite) TestDeleteSession() {
	_ = s.storage.SaveSession(s.ctx, s.newSession("ABC234"))

	err := s.storage.DeleteSession(s.ctx, "ABC234")
	s.Require().NoError(err)

	_, err = s.storage.GetSession(s.ctx, "ABC234")
	s.ErrorIs(err, model.ErrTableNotFound)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveSession(s.ctx, s.newSession("ABC234"))

	exists, err = s.storage.SessionExists(s.ctx, "ABC234")
	s.Require().NoError(err)
	s.True(exists)
}
