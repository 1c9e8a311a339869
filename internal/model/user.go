package model

import "time"

// UserID uniquely identifies a user account
type UserID string

// Role determines which API surface a user may access
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Team and budget limits
const (
	TeamSize      = 11
	DefaultBudget = 100
)

// User is an account with an in-progress or completed roster.
//
// The roster is an ordered slice: index i holds the player in slot i+1, so
// slot contiguity (1..len with no gaps) holds by construction. RosterVersion
// is bumped by the store on every successful roster write and is the token
// for optimistic concurrency control on roster mutations.
type User struct {
	ID            UserID     `json:"id"`
	Username      string     `json:"username"`
	PasswordHash  string     `json:"password_hash"`
	Role          Role       `json:"role"`
	TotalBudget   int        `json:"total_budget"`
	Roster        []PlayerID `json:"roster"`
	RosterVersion int64      `json:"roster_version"`
	CreatedAt     time.Time  `json:"created_at"`
}

// RosterSlot returns the 1-based slot of the given player, or 0 if absent
func (u *User) RosterSlot(id PlayerID) int {
	for i, pid := range u.Roster {
		if pid == id {
			return i + 1
		}
	}
	return 0
}
