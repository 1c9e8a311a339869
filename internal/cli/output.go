package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Team:
		o.printTeam(v)
	case Budget:
		o.printBudget(v)
	case []LeaderboardEntry:
		o.printLeaderboard(v)
	case ChatResult:
		o.printChatResult(v)
	case Summary:
		o.printSummary(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	TotalBudget int    `json:"total_budget"`
}

// AuthResult combines user and token
type AuthResult struct {
	User         User      `json:"user"`
	SessionToken string    `json:"session_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// Player response type
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
	Value             int     `json:"value,omitempty"`
}

// TeamSlot response type
type TeamSlot struct {
	Position int     `json:"position"`
	Player   *Player `json:"player"`
}

// Team response type
type Team struct {
	Username    string     `json:"username"`
	Slots       []TeamSlot `json:"slots"`
	TotalPoints *int       `json:"total_points,omitempty"`
}

// Budget response type
type Budget struct {
	Total     int `json:"total"`
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	Username   string `json:"username"`
	TotalValue int    `json:"total_value"`
	IsSelf     bool   `json:"is_self"`
}

// ChatResult response type
type ChatResult struct {
	Message    string   `json:"message"`
	Suggestion []Player `json:"suggestion"`
}

// Summary response type
type Summary struct {
	TotalRuns      int     `json:"total_runs"`
	TotalWickets   int     `json:"total_wickets"`
	TopRunScorer   *Player `json:"top_run_scorer"`
	TopWicketTaker *Player `json:"top_wicket_taker"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Role: %s\n", u.Role)
	fmt.Printf("Total Budget: %d\n", u.TotalBudget)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.SessionToken)
	fmt.Printf("Expires: %s\n", a.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player %d: %s\n", p.ID, p.Name)
	fmt.Printf("University: %s\n", p.University)
	fmt.Printf("Category: %s\n", p.Category)
	fmt.Printf("Runs: %d, Wickets: %d\n", p.Runs, p.Wickets)
	fmt.Printf("Budget Cost: %d\n", p.BudgetCost)
	fmt.Printf("Batting SR: %.2f, Bowling SR: %.2f, Batting Avg: %.2f, Economy: %.2f\n",
		p.BattingStrikeRate, p.BowlingStrikeRate, p.BattingAverage, p.Economy)
	if p.Value > 0 {
		fmt.Printf("Value: %d\n", p.Value)
	}
}

func (o *Output) printPlayers(players []Player) {
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  %3d  %-25s %-12s %-20s cost %d\n", p.ID, p.Name, p.Category, p.University, p.BudgetCost)
	}
}

func (o *Output) printTeam(t Team) {
	fmt.Printf("Team: %s\n", t.Username)
	for _, slot := range t.Slots {
		if slot.Player != nil {
			fmt.Printf("  %2d. %s (%s)\n", slot.Position, slot.Player.Name, slot.Player.Category)
		} else {
			fmt.Printf("  %2d. <open>\n", slot.Position)
		}
	}
	if t.TotalPoints != nil {
		fmt.Printf("Total Points: %d\n", *t.TotalPoints)
	}
}

func (o *Output) printBudget(b Budget) {
	fmt.Printf("Budget: %d total, %d used, %d remaining\n", b.Total, b.Used, b.Remaining)
}

func (o *Output) printLeaderboard(entries []LeaderboardEntry) {
	fmt.Printf("Leaderboard (%d):\n", len(entries))
	for _, e := range entries {
		marker := " "
		if e.IsSelf {
			marker = "*"
		}
		fmt.Printf("%s %3d. %-25s %d\n", marker, e.Rank, e.Username, e.TotalValue)
	}
}

func (o *Output) printChatResult(c ChatResult) {
	fmt.Println(c.Message)
	for _, p := range c.Suggestion {
		fmt.Printf("  %3d  %-25s %-12s cost %d\n", p.ID, p.Name, p.Category, p.BudgetCost)
	}
}

func (o *Output) printSummary(s Summary) {
	fmt.Printf("Total Runs: %d\n", s.TotalRuns)
	fmt.Printf("Total Wickets: %d\n", s.TotalWickets)
	if s.TopRunScorer != nil {
		fmt.Printf("Top Run Scorer: %s (%d runs)\n", s.TopRunScorer.Name, s.TopRunScorer.Runs)
	}
	if s.TopWicketTaker != nil {
		fmt.Printf("Top Wicket Taker: %s (%d wickets)\n", s.TopWicketTaker.Name, s.TopWicketTaker.Wickets)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
