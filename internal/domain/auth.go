package domain

import "time"

// Principal is the caller resolved from a session token.
type Principal struct {
	UserID    string
	Username  string
	TokenID   string
	ExpiresAt time.Time
}

// Session is an issued session token and its metadata.
type Session struct {
	Token     string
	TokenID   string
	ExpiresAt time.Time
}
