package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("super-secret", time.Hour)
	session, err := tm.GenerateToken("user-123", "alice")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if session.Token == "" || session.TokenID == "" {
		t.Fatalf("empty session: %+v", session)
	}

	claims, err := tm.ParseToken(session.Token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	principal := claims.Principal()
	if principal.UserID != "user-123" || principal.Username != "alice" {
		t.Fatalf("principal mismatch: %+v", principal)
	}
	if principal.TokenID != session.TokenID {
		t.Fatalf("token id mismatch: got %q want %q", principal.TokenID, session.TokenID)
	}
	if principal.ExpiresAt.Unix() != session.ExpiresAt.Unix() {
		t.Fatalf("expiry mismatch: got %v want %v", principal.ExpiresAt, session.ExpiresAt)
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	tm.ttl = -time.Second
	session, err := tm.GenerateToken("u1", "alice")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := tm.ParseToken(session.Token); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	session, err := NewTokenManager("right-secret", time.Hour).GenerateToken("u2", "bob")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := NewTokenManager("wrong-secret", time.Hour).ParseToken(session.Token); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenManager("k", time.Hour).ParseToken("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := &Claims{
		Name: "mallory",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "t1",
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := NewTokenManager("k", time.Hour).ParseToken(tok); err == nil {
		t.Fatalf("expected HS512 token to be rejected")
	}
}

func TestParseToken_MissingExpiry(t *testing.T) {
	t.Parallel()

	claims := &Claims{Name: "a", RegisteredClaims: jwt.RegisteredClaims{ID: "t1", Subject: "u1"}}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := NewTokenManager("k", time.Hour).ParseToken(tok); err == nil {
		t.Fatalf("expected token without exp to be rejected")
	}
}
