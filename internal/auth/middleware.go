package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/job-tracker/internal/domain"
	"github.com/spec-kit/job-tracker/internal/observability"
	apperrors "github.com/spec-kit/job-tracker/pkg/util"
)

const principalKey = "auth_principal"

// AuthMiddleware validates session tokens and stores the caller principal.
type AuthMiddleware struct {
	tokens  *TokenManager
	revoked RevocationStore
	cookie  CookieSettings
	logger  *zap.Logger
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, revoked RevocationStore, cookie CookieSettings, logger *zap.Logger) *AuthMiddleware {
	if revoked == nil {
		revoked = NewNoopRevocationStore()
	}
	return &AuthMiddleware{tokens: tokens, revoked: revoked, cookie: cookie, logger: logger}
}

// Handle enforces authentication for protected routes. It never touches the
// database; rejected requests stop here.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	principal, err := m.CurrentUser(c)
	if err != nil {
		return err
	}
	attach(c, principal)
	return c.Next()
}

// Optional attaches a principal when a valid session is present and lets
// anonymous requests through.
func (m *AuthMiddleware) Optional(c *fiber.Ctx) error {
	if principal, err := m.CurrentUser(c); err == nil {
		attach(c, principal)
	}
	return c.Next()
}

// CurrentUser decodes and validates the session token attached to the request
// and returns the identity it carries.
func (m *AuthMiddleware) CurrentUser(c *fiber.Ctx) (*domain.Principal, error) {
	tokens := TokensFromRequest(c, m.cookie.Name)
	if len(tokens) == 0 {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}

	// A stale cookie must not shadow a valid bearer header.
	var claims *Claims
	for _, raw := range tokens {
		if parsed, err := m.tokens.ParseToken(raw); err == nil {
			claims = parsed
			break
		}
	}
	if claims == nil {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}

	revoked, err := m.revoked.IsRevoked(c.UserContext(), claims.ID)
	if err != nil {
		m.logger.Error("revocation lookup failed", zap.Error(err))
		return nil, apperrors.NewInternalError(err)
	}
	if revoked {
		return nil, apperrors.NewUnauthorized("Unauthorized")
	}
	return claims.Principal(), nil
}

func attach(c *fiber.Ctx, principal *domain.Principal) {
	c.Locals(principalKey, principal)
	c.Locals(observability.UserIDLocal, principal.UserID)
}

// TokensFromRequest returns the session tokens a request carries, the cookie
// first and then an Authorization bearer header.
func TokensFromRequest(c *fiber.Ctx, cookieName string) []string {
	var tokens []string
	if token := c.Cookies(cookieName); token != "" {
		tokens = append(tokens, token)
	}

	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if token := strings.TrimSpace(parts[1]); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*domain.Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	return principal, ok
}
