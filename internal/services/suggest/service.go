package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/metrics"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/oracle"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/team"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/storage"
)

// ErrEmptyQuery rejects blank assistant queries
var ErrEmptyQuery = errors.New("query must not be empty")

// maxSuggestions caps how many players a single suggestion returns
const maxSuggestions = 5

// fallbackReply is returned whenever the oracle fails. Oracle failures never
// surface as request failures.
const fallbackReply = "I'm sorry, I couldn't process your request at the moment. Please try again later."

// Intent keywords, matched case-insensitively by substring
var (
	battingTerms    = []string{"bat", "batter", "batsman", "batting"}
	bowlingTerms    = []string{"bowl", "bowler", "bowling"}
	allRounderTerms = []string{"all round", "all-round", "allround", "all rounder"}
)

// Service answers assistant queries. Queries asking for a suggestion run
// the deterministic category filter over the catalog; everything else is
// routed to the oracle. The service never mutates state and never reveals
// point values in its text.
type Service struct {
	storage storage.Storage
	teams   *team.Manager
	oracle  oracle.Oracle
	metrics metrics.Metrics
	logger  *slog.Logger
}

// New creates a new suggestion service
func New(storage storage.Storage, teams *team.Manager, oracle oracle.Oracle, metrics metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		teams:   teams,
		oracle:  oracle,
		metrics: metrics,
		logger:  logger,
	}
}

// Result is the assistant's answer. Suggestions is nil when no structured
// recommendation applies.
type Result struct {
	Suggestions []*model.Player
	Message     string
}

// Ask answers a free-text query for the user. "suggest", "recommend" and
// "best" route to the suggestion filter; anything else goes to the oracle.
func (s *Service) Ask(ctx context.Context, userID model.UserID, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	lowered := strings.ToLower(query)
	wantsSuggestion := strings.Contains(lowered, "suggest") ||
		strings.Contains(lowered, "recommend") ||
		strings.Contains(lowered, "best")

	if wantsSuggestion {
		return s.Suggest(ctx, userID, query)
	}
	return s.consultOracle(ctx, userID, query)
}

// Suggest runs the category filter: exclude rostered and unaffordable
// players, keep the requested categories, return the top candidates by
// value descending.
func (s *Service) Suggest(ctx context.Context, userID model.UserID, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	budget, err := s.teams.GetBudget(ctx, userID)
	if err != nil {
		return nil, err
	}

	wantBatting, wantBowling, wantAllRounders := classifyIntent(query)

	affordable := make([]*model.Player, 0, len(players))
	for _, p := range players {
		if user.RosterSlot(p.ID) != 0 {
			continue
		}
		if p.BudgetCost > budget.Remaining {
			continue
		}
		affordable = append(affordable, p)
	}

	if len(affordable) == 0 {
		return &Result{
			Message: "You don't have enough budget to add more players to your team.",
		}, nil
	}

	matched := make([]*model.Player, 0, len(affordable))
	for _, p := range affordable {
		if (wantBatting && p.Category.Matches("bat")) ||
			(wantBowling && p.Category.Matches("bowl")) ||
			(wantAllRounders && (p.Category.Matches("all") || p.Category.Matches("round"))) {
			matched = append(matched, p)
		}
	}

	if len(matched) == 0 {
		return &Result{
			Message: fmt.Sprintf(
				"I couldn't find any suitable players that match your criteria within your budget of %d.",
				budget.Remaining,
			),
		}, nil
	}

	sort.Slice(matched, func(i, j int) bool { return matched[i].Value > matched[j].Value })
	if len(matched) > maxSuggestions {
		matched = matched[:maxSuggestions]
	}

	return &Result{
		Suggestions: matched,
		Message: fmt.Sprintf(
			"Based on your team and budget of %d, here are some recommended %s you might consider:",
			budget.Remaining,
			intentText(wantBatting, wantBowling, wantAllRounders),
		),
	}, nil
}

// consultOracle hands the query to the oracle with team and catalog
// context. A failing oracle degrades to a fixed apology.
func (s *Service) consultOracle(ctx context.Context, userID model.UserID, query string) (*Result, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	players, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	budget, err := s.teams.GetBudget(ctx, userID)
	if err != nil {
		return nil, err
	}

	roster := make([]*model.Player, 0, len(user.Roster))
	for _, id := range user.Roster {
		player, err := s.storage.GetPlayer(ctx, id)
		if err != nil {
			if errors.Is(err, model.ErrPlayerNotFound) {
				continue
			}
			return nil, err
		}
		roster = append(roster, player)
	}

	reply, err := s.oracle.Advise(ctx, oracle.Request{
		Query:           query,
		Catalog:         players,
		Roster:          roster,
		RemainingBudget: budget.Remaining,
	})
	if err != nil {
		s.logger.Warn("oracle request failed", slog.String("error", err.Error()))
		s.metrics.IncOracleFailures()
		return &Result{Message: fallbackReply}, nil
	}

	return &Result{Message: reply}, nil
}

func classifyIntent(query string) (batting, bowling, allRounders bool) {
	lowered := strings.ToLower(query)
	for _, term := range battingTerms {
		if strings.Contains(lowered, term) {
			batting = true
			break
		}
	}
	for _, term := range bowlingTerms {
		if strings.Contains(lowered, term) {
			bowling = true
			break
		}
	}
	for _, term := range allRounderTerms {
		if strings.Contains(lowered, term) {
			allRounders = true
			break
		}
	}

	// An unclassified query asks about everyone
	if !batting && !bowling && !allRounders {
		batting, bowling, allRounders = true, true, true
	}
	return batting, bowling, allRounders
}

func intentText(batting, bowling, allRounders bool) string {
	var kinds []string
	if batting {
		kinds = append(kinds, "batters")
	}
	if bowling {
		kinds = append(kinds, "bowlers")
	}
	if allRounders {
		kinds = append(kinds, "all-rounders")
	}
	return strings.Join(kinds, " and ")
}
