package authenticator

import (
	"context"
)

// Token represents an authentication token
type Token struct {
	AccessToken  string
	RefreshToken string
	IDToken      string
	Expiry       int64
}

// Claims represents user claims from the ID token
type Claims map[string]interface{}

// Email returns the email claim, or the empty string.
func (c Claims) Email() string {
	if email, ok := c["email"].(string); ok {
		return email
	}
	return ""
}

// Subject returns the sub claim, or the empty string.
func (c Claims) Subject() string {
	if sub, ok := c["sub"].(string); ok {
		return sub
	}
	return ""
}

// Provider interface abstracts OAuth provider operations
type Provider interface {
	GetAuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Token, error)
	GetClaims(ctx context.Context, token *Token) (Claims, error)
}
