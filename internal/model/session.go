package model

import "time"

// Session is a persisted login session. Sessions expire 24h after creation
// and are deleted lazily on the first access past expiry.
type Session struct {
	ID        string    `json:"id"`
	UserID    UserID    `json:"user_id"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given time
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
