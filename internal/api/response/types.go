package response

import (
	"time"

	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/model"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/catalog"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/suggest"
	"github.com/SpiritX-2025-CodeChefs/SpiritX-CodeChefs-02/internal/services/team"
)

// Player represents a catalog player in user-facing API responses.
// Point values are deliberately absent; only admins see them.
type Player struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	University        string  `json:"university"`
	Category          string  `json:"category"`
	Runs              int     `json:"runs"`
	Wickets           int     `json:"wickets"`
	BudgetCost        int     `json:"budget_cost"`
	BattingStrikeRate float64 `json:"batting_strike_rate"`
	BowlingStrikeRate float64 `json:"bowling_strike_rate"`
	BattingAverage    float64 `json:"batting_average"`
	Economy           float64 `json:"economy"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:                int(p.ID),
		Name:              p.Name,
		University:        p.University,
		Category:          string(p.Category),
		Runs:              p.Runs,
		Wickets:           p.Wickets,
		BudgetCost:        p.BudgetCost,
		BattingStrikeRate: p.BattingStrikeRate,
		BowlingStrikeRate: p.BowlingStrikeRate,
		BattingAverage:    p.BattingAverage,
		Economy:           p.Economy,
	}
}

// PlayersFromModels converts a slice of model players
func PlayersFromModels(players []*model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// AdminPlayer is the admin view of a catalog player, including the value
type AdminPlayer struct {
	Player
	Value int `json:"value"`
}

// AdminPlayerFromModel converts a model.Player to an AdminPlayer
func AdminPlayerFromModel(p *model.Player) AdminPlayer {
	return AdminPlayer{
		Player: PlayerFromModel(p),
		Value:  p.Value,
	}
}

// User represents an account in API responses
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	TotalBudget int    `json:"total_budget"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:          string(u.ID),
		Username:    u.Username,
		Role:        string(u.Role),
		TotalBudget: u.TotalBudget,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User         User      `json:"user"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AuthResponseFromSession creates an AuthResponse from a user and session
func AuthResponseFromSession(u *model.User, s *model.Session) AuthResponse {
	return AuthResponse{
		User:         UserFromModel(u),
		SessionToken: s.ID,
		ExpiresAt:    s.ExpiresAt,
	}
}

// UsernameAvailability is the response for the availability check
type UsernameAvailability struct {
	Available bool `json:"available"`
}

// TeamSlot is one of the 11 positions; Player is null while the slot is open
type TeamSlot struct {
	Position int     `json:"position"`
	Player   *Player `json:"player"`
}

// Team is a user's roster across all 11 slots. TotalPoints appears only
// once the team is complete.
type Team struct {
	Username    string     `json:"username"`
	Slots       []TeamSlot `json:"slots"`
	TotalPoints *int       `json:"total_points,omitempty"`
}

// TeamFromView converts a team view to a response Team
func TeamFromView(t *team.Team) Team {
	out := Team{
		Username:    t.Username,
		Slots:       make([]TeamSlot, len(t.Slots)),
		TotalPoints: t.TotalPoints,
	}
	for i, slot := range t.Slots {
		out.Slots[i] = TeamSlot{Position: slot.Position}
		if slot.Player != nil {
			p := PlayerFromModel(slot.Player)
			out.Slots[i].Player = &p
		}
	}
	return out
}

// Budget is the live budget snapshot
type Budget struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// BudgetFromView converts a budget view
func BudgetFromView(b *team.Budget) Budget {
	return Budget{
		Total:     b.Total,
		Used:      b.Used,
		Remaining: b.Remaining,
	}
}

// Summary is the tournament-wide aggregate for the admin surface
type Summary struct {
	TotalRuns      int          `json:"total_runs"`
	TotalWickets   int          `json:"total_wickets"`
	TopRunScorer   *AdminPlayer `json:"top_run_scorer"`
	TopWicketTaker *AdminPlayer `json:"top_wicket_taker"`
}

// SummaryFromView converts a catalog summary
func SummaryFromView(s *catalog.Summary) Summary {
	out := Summary{
		TotalRuns:    s.TotalRuns,
		TotalWickets: s.TotalWickets,
	}
	if s.TopRunScorer != nil {
		p := AdminPlayerFromModel(s.TopRunScorer)
		out.TopRunScorer = &p
	}
	if s.TopWicketTaker != nil {
		p := AdminPlayerFromModel(s.TopWicketTaker)
		out.TopWicketTaker = &p
	}
	return out
}

// Chat is the assistant's answer. Suggestion is null when the answer
// carries no structured recommendation.
type Chat struct {
	Message    string   `json:"message"`
	Suggestion []Player `json:"suggestion"`
}

// ChatFromResult converts an assistant result
func ChatFromResult(r *suggest.Result) Chat {
	out := Chat{Message: r.Message}
	if len(r.Suggestions) > 0 {
		out.Suggestion = PlayersFromModels(r.Suggestions)
	}
	return out
}
