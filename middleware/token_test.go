package middleware

import (
	"testing"

	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/models"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:    "user-1",
		Email: "pilot@unit.example",
		Role:  "user",
	}

	token, err := IssueToken("test-secret", user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	actor, err := ParseToken("test-secret", token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}

	if actor.ID != user.ID || actor.Email != user.Email || actor.Role != authz.RoleUser {
		t.Errorf("Expected actor to match user, got %+v", actor)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "pilot@unit.example", Role: "user"}

	token, err := IssueToken("test-secret", user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("Expected parse to fail with the wrong secret")
	}
}

func TestParseTokenUnknownRole(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "pilot@unit.example", Role: "superadmin"}

	token, err := IssueToken("test-secret", user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}

	if _, err := ParseToken("test-secret", token); err == nil {
		t.Error("Expected parse to reject a token with an unknown role")
	}
}

func TestIssueTokenEmptySecret(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "pilot@unit.example", Role: "user"}

	if _, err := IssueToken("", user); err == nil {
		t.Error("Expected issuing with an empty secret to fail")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header   string
		expected string
		ok       bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc.def.ghi", "abc.def.ghi", true},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		if ok != tt.ok || token != tt.expected {
			t.Errorf("bearerToken(%q): expected (%q, %v), got (%q, %v)", tt.header, tt.expected, tt.ok, token, ok)
		}
	}
}
