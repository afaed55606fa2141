package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-tracker/internal/domain"
)

// CookieSettings describes the session cookie.
type CookieSettings struct {
	Name   string
	Secure bool
}

// SessionCookie builds the signed, httponly cookie carrying a session token.
func (s CookieSettings) SessionCookie(session domain.Session) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     s.Name,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}

// ClearedCookie overwrites the session cookie with an expired one.
func (s CookieSettings) ClearedCookie() *fiber.Cookie {
	return &fiber.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
