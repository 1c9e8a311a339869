package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
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

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:       1,
		Name:     "Chamika Chandimal",
		Category: model.CategoryBatsman,
		Runs:     530,
		Wickets:  0,
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(player.Name, retrieved.Name)
	s.Equal(player.Runs, retrieved.Runs)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, 999)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestGetPlayerReturnsCopy() {
	player := &model.Player{ID: 1, Name: "Original"}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	retrieved, err := s.storage.GetPlayer(s.ctx, 1)
	s.Require().NoError(err)
	retrieved.Name = "Mutated"

	again, err := s.storage.GetPlayer(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal("Original", again.Name)
}

func (s *StorageSuite) TestListPlayersSortedByID() {
	for _, id := range []model.PlayerID{3, 1, 2} {
		s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: id}))
	}

	players, err := s.storage.ListPlayers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(players, 3)
	s.Equal(model.PlayerID(1), players[0].ID)
	s.Equal(model.PlayerID(2), players[1].ID)
	s.Equal(model.PlayerID(3), players[2].ID)
}

func (s *StorageSuite) TestDeletePlayer() {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{ID: 1}))

	err := s.storage.DeletePlayer(s.ctx, 1)
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, 1)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestNextPlayerIDMonotonic() {
	first, err := s.storage.NextPlayerID(s.ctx)
	s.Require().NoError(err)
	second, err := s.storage.NextPlayerID(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.PlayerID(1), first)
	s.Equal(model.PlayerID(2), second)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:       "user-1",
		Username: "spiritfan",
		Role:     model.RoleUser,
	}

	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal("spiritfan", retrieved.Username)

	byName, err := s.storage.GetUserByUsername(s.ctx, "spiritfan")
	s.Require().NoError(err)
	s.Equal(user.ID, byName.ID)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)

	_, err = s.storage.GetUserByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsersSortedByUsername() {
	for _, name := range []string{"charlie", "alice", "bob"} {
		s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{
			ID:       model.UserID("id-" + name),
			Username: name,
		}))
	}

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Equal("alice", users[0].Username)
	s.Equal("bob", users[1].Username)
	s.Equal("charlie", users[2].Username)
}

func (s *StorageSuite) TestUpdateUserRoster() {
	user := &model.User{ID: "user-1", Username: "spiritfan"}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	user.Roster = []model.PlayerID{7}
	err := s.storage.UpdateUserRoster(s.ctx, user, 0)
	s.Require().NoError(err)
	s.Equal(int64(1), user.RosterVersion)

	stored, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{7}, stored.Roster)
	s.Equal(int64(1), stored.RosterVersion)
}

func (s *StorageSuite) TestUpdateUserRosterVersionConflict() {
	user := &model.User{ID: "user-1", Username: "spiritfan"}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	// First writer wins
	first := *user
	first.Roster = []model.PlayerID{1}
	s.Require().NoError(s.storage.UpdateUserRoster(s.ctx, &first, 0))

	// Second writer started from the same version and must fail
	second := *user
	second.Roster = []model.PlayerID{2}
	err := s.storage.UpdateUserRoster(s.ctx, &second, 0)
	s.ErrorIs(err, model.ErrVersionConflict)

	stored, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{1}, stored.Roster)
}

func (s *StorageSuite) TestUpdateUserRosterUnknownUser() {
	user := &model.User{ID: "ghost"}
	err := s.storage.UpdateUserRoster(s.ctx, user, 0)
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveGetDeleteSession() {
	session := &model.Session{
		ID:        "token-1",
		UserID:    "user-1",
		Role:      model.RoleUser,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "token-1")
	s.Require().NoError(err)
	s.Equal(session.UserID, retrieved.UserID)

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "token-1"))

	_, err = s.storage.GetSession(s.ctx, "token-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}
