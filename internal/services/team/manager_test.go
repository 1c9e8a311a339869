package team

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage/memory"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/testutil"
)

type TeamSuite struct {
	suite.Suite
	manager *Manager
	storage *memory.Storage
	ctx     context.Context
}

func TestTeamSuite(t *testing.T) {
	suite.Run(t, new(TeamSuite))
}

func (s *TeamSuite) SetupTest() {
	s.storage = memory.New()
	s.manager = New(s.storage, metrics.NewMock(), testutil.NopLogger())
	s.ctx = context.Background()

	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{
		ID:          "user-1",
		Username:    "spiritfan",
		Role:        model.RoleUser,
		TotalBudget: model.DefaultBudget,
	}))
}

// savePlayer stores a player whose value (and so budget cost) follows from
// the given runs and wickets.
func (s *TeamSuite) savePlayer(id model.PlayerID, runs, wickets int) *model.Player {
	value := runs/10 + 5*wickets
	cost := 5
	switch {
	case value > 100:
		cost = 15
	case value > 75:
		cost = 12
	case value > 50:
		cost = 10
	case value > 25:
		cost = 8
	}

	player := &model.Player{
		ID:         id,
		Name:       fmt.Sprintf("Player %d", id),
		Category:   model.CategoryBatsman,
		Runs:       runs,
		Wickets:    wickets,
		Value:      value,
		BudgetCost: cost,
	}
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))
	return player
}

func (s *TeamSuite) TestAddPlayer() {
	s.savePlayer(1, 100, 0) // value 10, cost 5

	team, err := s.manager.AddPlayer(s.ctx, "user-1", 1)
	s.Require().NoError(err)

	s.Len(team.Slots, model.TeamSize)
	s.Require().NotNil(team.Slots[0].Player)
	s.Equal(model.PlayerID(1), team.Slots[0].Player.ID)
	s.Nil(team.Slots[1].Player)
	s.Nil(team.TotalPoints)
}

func (s *TeamSuite) TestAddUnknownPlayer() {
	_, err := s.manager.AddPlayer(s.ctx, "user-1", 999)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *TeamSuite) TestAddForUnknownUser() {
	s.savePlayer(1, 0, 0)
	_, err := s.manager.AddPlayer(s.ctx, "ghost", 1)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *TeamSuite) TestAddDuplicatePlayer() {
	s.savePlayer(1, 0, 0)

	_, err := s.manager.AddPlayer(s.ctx, "user-1", 1)
	s.Require().NoError(err)

	_, err = s.manager.AddPlayer(s.ctx, "user-1", 1)
	s.ErrorIs(err, model.ErrAlreadyInRoster)
}

func (s *TeamSuite) TestAddBeyondTeamSize() {
	for i := 1; i <= model.TeamSize+1; i++ {
		s.savePlayer(model.PlayerID(i), 0, 0) // cost 5 each, 55 total
	}

	for i := 1; i <= model.TeamSize; i++ {
		_, err := s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(i))
		s.Require().NoError(err)
	}

	_, err := s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(model.TeamSize+1))
	s.ErrorIs(err, model.ErrTeamFull)
}

func (s *TeamSuite) TestAddBeyondBudget() {
	s.savePlayer(1, 960, 10) // value 146, cost 15
	s.savePlayer(2, 960, 10)
	s.savePlayer(3, 960, 10)
	s.savePlayer(4, 960, 10)
	s.savePlayer(5, 960, 10)
	s.savePlayer(6, 960, 10)
	s.savePlayer(7, 960, 10) // seventh would push 105 past the 100 budget

	for i := 1; i <= 6; i++ {
		_, err := s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(i))
		s.Require().NoError(err)
	}

	_, err := s.manager.AddPlayer(s.ctx, "user-1", 7)
	s.ErrorIs(err, model.ErrInsufficientBudget)
}

func (s *TeamSuite) TestRemovePlayerKeepsOrder() {
	s.savePlayer(1, 0, 0)
	s.savePlayer(2, 0, 0)
	s.savePlayer(3, 0, 0)
	for i := 1; i <= 3; i++ {
		_, err := s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(i))
		s.Require().NoError(err)
	}

	team, err := s.manager.RemovePlayer(s.ctx, "user-1", 2)
	s.Require().NoError(err)

	// Slot 2 now holds the former slot 3 player
	s.Require().NotNil(team.Slots[0].Player)
	s.Equal(model.PlayerID(1), team.Slots[0].Player.ID)
	s.Require().NotNil(team.Slots[1].Player)
	s.Equal(model.PlayerID(3), team.Slots[1].Player.ID)
	s.Nil(team.Slots[2].Player)
}

func (s *TeamSuite) TestRemovePlayerNotInRoster() {
	s.savePlayer(1, 0, 0)
	_, err := s.manager.RemovePlayer(s.ctx, "user-1", 1)
	s.ErrorIs(err, model.ErrNotInRoster)
}

func (s *TeamSuite) TestRemoveFreesBudget() {
	s.savePlayer(1, 530, 10) // value 103, cost 15

	_, err := s.manager.AddPlayer(s.ctx, "user-1", 1)
	s.Require().NoError(err)

	budget, err := s.manager.GetBudget(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(85, budget.Remaining)

	_, err = s.manager.RemovePlayer(s.ctx, "user-1", 1)
	s.Require().NoError(err)

	budget, err = s.manager.GetBudget(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(100, budget.Remaining)
	s.Zero(budget.Used)
}

func (s *TeamSuite) TestBudgetTracksLiveCosts() {
	player := s.savePlayer(1, 250, 2) // value 35, cost 8

	_, err := s.manager.AddPlayer(s.ctx, "user-1", 1)
	s.Require().NoError(err)

	budget, err := s.manager.GetBudget(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(8, budget.Used)

	// A stat edit after selection changes what the held player costs
	player.Value = 110
	player.BudgetCost = 15
	s.Require().NoError(s.storage.SavePlayer(s.ctx, player))

	budget, err = s.manager.GetBudget(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(15, budget.Used)
	s.Equal(85, budget.Remaining)
}

func (s *TeamSuite) TestTotalPointsOnlyWhenComplete() {
	for i := 1; i <= model.TeamSize; i++ {
		s.savePlayer(model.PlayerID(i), 100, 0) // value 10 each
	}

	var team *Team
	var err error
	for i := 1; i <= model.TeamSize; i++ {
		team, err = s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(i))
		s.Require().NoError(err)
		if i < model.TeamSize {
			s.Nil(team.TotalPoints)
		}
	}

	s.Require().NotNil(team.TotalPoints)
	s.Equal(110, *team.TotalPoints)
}

func (s *TeamSuite) TestConcurrentAddsRaceForLastSlot() {
	for i := 1; i <= model.TeamSize+1; i++ {
		s.savePlayer(model.PlayerID(i), 0, 0)
	}
	for i := 1; i <= model.TeamSize-1; i++ {
		_, err := s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(i))
		s.Require().NoError(err)
	}

	// Two writers contend for the single remaining slot. The loser re-reads
	// a full roster on retry and reports the team as full.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(model.TeamSize+i))
		}(i)
	}
	wg.Wait()

	var success, full int
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, model.ErrTeamFull):
			full++
		default:
			s.Failf("unexpected error", "got %v", err)
		}
	}
	s.Equal(1, success)
	s.Equal(1, full)

	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(user.Roster, model.TeamSize)
}

func (s *TeamSuite) TestConcurrentAddsRaceForRemainingBudget() {
	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	user.TotalBudget = 10
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	s.savePlayer(1, 300, 0) // value 30, cost 8
	s.savePlayer(2, 300, 0)

	// Each add fits the budget alone but not together. The loser re-reads
	// the committed roster on retry and fails the live budget check.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.manager.AddPlayer(s.ctx, "user-1", model.PlayerID(i+1))
		}(i)
	}
	wg.Wait()

	var success, short int
	for _, err := range errs {
		switch {
		case err == nil:
			success++
		case errors.Is(err, model.ErrInsufficientBudget):
			short++
		default:
			s.Failf("unexpected error", "got %v", err)
		}
	}
	s.Equal(1, success)
	s.Equal(1, short)

	stored, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(stored.Roster, 1)

	budget, err := s.manager.GetBudget(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(8, budget.Used)
	s.Equal(2, budget.Remaining)
}

func (s *TeamSuite) TestGetTeamForUnknownUser() {
	_, err := s.manager.GetTeam(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrUserNotFound)
}
