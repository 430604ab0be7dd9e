package models

import "time"

// Session represents a server-side login session referenced by a browser cookie
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Remember  bool      `json:"remember"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session's lifetime has passed
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
