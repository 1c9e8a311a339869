package suggest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/oracle"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/team"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage/memory"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/testutil"
)

// failingOracle always errors, standing in for an unreachable upstream
type failingOracle struct{}

func (failingOracle) Advise(ctx context.Context, req oracle.Request) (string, error) {
	return "", errors.New("upstream unavailable")
}

type SuggestSuite struct {
	suite.Suite
	service *Service
	storage *memory.Storage
	metrics *metrics.Mock
	ctx     context.Context
}

func TestSuggestSuite(t *testing.T) {
	suite.Run(t, new(SuggestSuite))
}

func (s *SuggestSuite) SetupTest() {
	s.storage = memory.New()
	s.metrics = metrics.NewMock()
	s.ctx = context.Background()

	logger := testutil.NopLogger()
	teams := team.New(s.storage, s.metrics, logger)
	s.service = New(s.storage, teams, &oracle.Static{Reply: "General cricket wisdom."}, s.metrics, logger)

	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{
		ID:          "user-1",
		Username:    "spiritfan",
		TotalBudget: model.DefaultBudget,
	}))
}

func (s *SuggestSuite) savePlayer(id model.PlayerID, name string, category model.Category, value, cost int) {
	s.Require().NoError(s.storage.SavePlayer(s.ctx, &model.Player{
		ID:         id,
		Name:       name,
		Category:   category,
		Value:      value,
		BudgetCost: cost,
	}))
}

func (s *SuggestSuite) setBudget(total int) {
	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	user.TotalBudget = total
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))
}

func (s *SuggestSuite) TestSuggestFiltersByCategory() {
	s.savePlayer(1, "Bowler One", model.CategoryBowler, 60, 10)
	s.savePlayer(2, "Batter One", model.CategoryBatsman, 80, 12)
	s.savePlayer(3, "Bowler Two", model.CategoryBowler, 40, 8)

	result, err := s.service.Suggest(s.ctx, "user-1", "suggest me some bowlers")
	s.Require().NoError(err)

	s.Require().Len(result.Suggestions, 2)
	s.Equal("Bowler One", result.Suggestions[0].Name)
	s.Equal("Bowler Two", result.Suggestions[1].Name)
	s.Equal("Based on your team and budget of 100, here are some recommended bowlers you might consider:", result.Message)
}

func (s *SuggestSuite) TestSuggestDefaultsToAllCategories() {
	s.savePlayer(1, "Bowler", model.CategoryBowler, 60, 10)
	s.savePlayer(2, "Batter", model.CategoryBatsman, 80, 12)
	s.savePlayer(3, "All-Rounder", model.CategoryAllRounder, 70, 10)

	result, err := s.service.Suggest(s.ctx, "user-1", "suggest players for my team")
	s.Require().NoError(err)

	s.Len(result.Suggestions, 3)
	s.Contains(result.Message, "batters and bowlers and all-rounders")
}

func (s *SuggestSuite) TestSuggestCapsAtFiveByValue() {
	for i := 1; i <= 8; i++ {
		s.savePlayer(model.PlayerID(i), "Batter", model.CategoryBatsman, i*10, 5)
	}

	result, err := s.service.Suggest(s.ctx, "user-1", "suggest batters")
	s.Require().NoError(err)

	s.Require().Len(result.Suggestions, 5)
	s.Equal(80, result.Suggestions[0].Value)
	s.Equal(40, result.Suggestions[4].Value)
}

func (s *SuggestSuite) TestSuggestExcludesRosteredPlayers() {
	s.savePlayer(1, "Held", model.CategoryBatsman, 90, 12)
	s.savePlayer(2, "Free", model.CategoryBatsman, 50, 10)

	user, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	user.Roster = []model.PlayerID{1}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	result, err := s.service.Suggest(s.ctx, "user-1", "suggest batters")
	s.Require().NoError(err)

	s.Require().Len(result.Suggestions, 1)
	s.Equal("Free", result.Suggestions[0].Name)
}

func (s *SuggestSuite) TestSuggestNothingAffordable() {
	s.setBudget(5)
	s.savePlayer(1, "Pricey Bowler", model.CategoryBowler, 40, 8)
	s.savePlayer(2, "Pricier Bowler", model.CategoryBowler, 60, 10)

	result, err := s.service.Suggest(s.ctx, "user-1", "suggest bowlers")
	s.Require().NoError(err)

	s.Nil(result.Suggestions)
	s.Equal("You don't have enough budget to add more players to your team.", result.Message)
}

func (s *SuggestSuite) TestSuggestNoCategoryMatchWithinBudget() {
	s.savePlayer(1, "Batter", model.CategoryBatsman, 80, 12)

	result, err := s.service.Suggest(s.ctx, "user-1", "suggest bowlers")
	s.Require().NoError(err)

	s.Nil(result.Suggestions)
	s.Equal("I couldn't find any suitable players that match your criteria within your budget of 100.", result.Message)
}

func (s *SuggestSuite) TestAskRoutesToSuggestion() {
	s.savePlayer(1, "Batter", model.CategoryBatsman, 80, 12)

	for _, query := range []string{
		"suggest a batter",
		"can you recommend a batter",
		"who is the best batter",
	} {
		result, err := s.service.Ask(s.ctx, "user-1", query)
		s.Require().NoError(err)
		s.Require().Len(result.Suggestions, 1, "query %q", query)
	}
}

func (s *SuggestSuite) TestAskRoutesToOracle() {
	result, err := s.service.Ask(s.ctx, "user-1", "how does the budget work?")
	s.Require().NoError(err)

	s.Nil(result.Suggestions)
	s.Equal("General cricket wisdom.", result.Message)
}

func (s *SuggestSuite) TestAskEmptyQuery() {
	_, err := s.service.Ask(s.ctx, "user-1", "   ")
	s.ErrorIs(err, ErrEmptyQuery)
}

func (s *SuggestSuite) TestOracleFailureDegradesToApology() {
	logger := testutil.NopLogger()
	teams := team.New(s.storage, s.metrics, logger)
	service := New(s.storage, teams, failingOracle{}, s.metrics, logger)

	result, err := service.Ask(s.ctx, "user-1", "tell me about the tournament")
	s.Require().NoError(err)

	s.Equal("I'm sorry, I couldn't process your request at the moment. Please try again later.", result.Message)
	s.Equal(1, s.metrics.OracleFailures())
}

func (s *SuggestSuite) TestAskUnknownUser() {
	_, err := s.service.Ask(s.ctx, "ghost", "suggest bowlers")
	s.ErrorIs(err, model.ErrUserNotFound)
}
