package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-tracker/internal/api/dto"
	"github.com/spec-kit/job-tracker/internal/auth"
	"github.com/spec-kit/job-tracker/internal/domain"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

// AuthService is the account behavior the auth endpoints need.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.User, domain.Session, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler exposes registration and session endpoints.
type AuthHandler struct {
	auth   AuthService
	cookie auth.CookieSettings
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService AuthService, cookie auth.CookieSettings) *AuthHandler {
	return &AuthHandler{auth: authService, cookie: cookie}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if _, err := h.auth.Register(c.UserContext(), req.Username, req.Password); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Account created successfully"})
}

// Login handles POST /auth/login and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, session, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Cookie(h.cookie.SessionCookie(session))
	return c.JSON(dto.AuthResponse{
		Message:   "Logged in",
		User:      dto.NewUserResponse(user),
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout handles POST /auth/logout. It succeeds without a session.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	for _, token := range auth.TokensFromRequest(c, h.cookie.Name) {
		if err := h.auth.Logout(c.UserContext(), token); err != nil {
			return err
		}
	}
	c.Cookie(h.cookie.ClearedCookie())
	return c.JSON(dto.MessageResponse{Message: "Logged out"})
}

// Session handles GET /auth/session for an authenticated caller.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.SessionResponse{
		User:      dto.UserResponse{ID: principal.UserID, Username: principal.Username},
		ExpiresAt: principal.ExpiresAt,
	})
}

func requirePrincipal(c *fiber.Ctx) (*domain.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal == nil || principal.UserID == "" {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}
	return principal, nil
}
