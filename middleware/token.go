package middleware

import (
	"errors"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/models"
)

// TokenTTL is how long issued API tokens stay valid.
const TokenTTL = 24 * time.Hour

type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 bearer token for the mobile API.
func IssueToken(secret string, user *models.User) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}

	now := time.Now()
	claims := tokenClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a bearer token and returns the actor it encodes.
func ParseToken(secret, tokenStr string) (authz.Actor, error) {
	if secret == "" {
		return authz.Actor{}, errors.New("jwt secret is empty")
	}

	var claims tokenClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return authz.Actor{}, err
	}
	if !tok.Valid || claims.Subject == "" {
		return authz.Actor{}, errors.New("invalid token")
	}

	role, ok := authz.ParseRole(claims.Role)
	if !ok {
		return authz.Actor{}, errors.New("unknown role in token")
	}

	return authz.Actor{ID: claims.Subject, Email: claims.Email, Role: role}, nil
}

// bearerToken extracts the token from an Authorization header value.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
