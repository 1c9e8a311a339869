package request

// RegisterRequest is the request body for registering a user
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreatePlayerRequest is the request body for adding a catalog player
type CreatePlayerRequest struct {
	Name       string `json:"name"`
	University string `json:"university"`
	Category   string `json:"category"`
	Runs       int    `json:"runs"`
	Wickets    int    `json:"wickets"`
}

// UpdatePlayerRequest is the request body for a partial player update.
// Omitted fields are left unchanged.
type UpdatePlayerRequest struct {
	Name       *string `json:"name,omitempty"`
	University *string `json:"university,omitempty"`
	Category   *string `json:"category,omitempty"`
	Runs       *int    `json:"runs,omitempty"`
	Wickets    *int    `json:"wickets,omitempty"`
}

// AddTeamPlayerRequest is the request body for adding a player to the team
type AddTeamPlayerRequest struct {
	PlayerID int `json:"player_id"`
}

// ChatRequest is the request body for the assistant
type ChatRequest struct {
	Query string `json:"query"`
}
