package model

import "strings"

// PlayerID uniquely identifies a catalog player. IDs are assigned by the
// store's atomic counter and are never reused.
type PlayerID int

// Category is a player's role in the tournament
type Category string

const (
	CategoryBatsman    Category = "Batsman"
	CategoryBowler     Category = "Bowler"
	CategoryAllRounder Category = "All-Rounder"
)

// Matches reports whether the category satisfies an intent keyword
// ("bat", "bowl", "all"/"round"), matched case-insensitively by substring.
func (c Category) Matches(keyword string) bool {
	return strings.Contains(strings.ToLower(string(c)), strings.ToLower(keyword))
}

// Player is a catalog entry. The derived fields are pure functions of
// Runs and Wickets and are recomputed on every stat change.
type Player struct {
	ID         PlayerID `json:"id"`
	Name       string   `json:"name"`
	University string   `json:"university"`
	Category   Category `json:"category"`
	Runs       int      `json:"runs"`
	Wickets    int      `json:"wickets"`

	// Derived
	Value             int     `json:"value"`
	BudgetCost        int     `json:"budget_cost"`
	BattingStrikeRate float64 `json:"batting_strike_rate"`
	BowlingStrikeRate float64 `json:"bowling_strike_rate"`
	BattingAverage    float64 `json:"batting_average"`
	Economy           float64 `json:"economy"`
}
