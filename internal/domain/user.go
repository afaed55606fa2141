package domain

import (
	"strings"
	"time"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// User is an account owning jobs and a single resume.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Resume       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeUsername trims and lowercases a login name.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// StorableText reports whether s can be kept in a Postgres text column,
// which rejects the NUL character.
func StorableText(s string) bool {
	return !strings.ContainsRune(s, 0)
}
