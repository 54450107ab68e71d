package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/skyfleet/drone-ops/authenticator"
	"github.com/skyfleet/drone-ops/middleware"
	"github.com/skyfleet/drone-ops/services"
)

// AuthController handles login, logout and API token issuing
type AuthController struct {
	services  *services.Services
	jwtSecret string
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, jwtSecret string) *AuthController {
	return &AuthController{
		services:  services,
		jwtSecret: jwtSecret,
	}
}

// Login initiates the OpenID Connect flow for browser clients
func (ac *AuthController) Login(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Generate random state
		state, err := generateRandomState()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Save the state in the session to validate in callback
		sess := session.GetSession(r)
		sess.Set("state", state)

		http.Redirect(w, r, auth.GetAuthURL(state), http.StatusTemporaryRedirect)
	}
}

// Callback handles the redirect back from the identity provider. Only
// users already on the roster may log in; the roster entry supplies the
// role, never the identity provider.
func (ac *AuthController) Callback(auth authenticator.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)

		// Verify state
		storedState := sess.Get("state")
		if storedState == nil {
			http.Error(w, "State not found in session", http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("state") != storedState.(string) {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		// Exchange the code for a token
		token, err := auth.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, "Failed to exchange authorization code for a token: "+err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := auth.GetClaims(r.Context(), token)
		if err != nil {
			http.Error(w, "Failed to verify ID Token: "+err.Error(), http.StatusInternalServerError)
			return
		}

		email := claims.Email()
		if email == "" {
			http.Error(w, "ID token is missing the email claim", http.StatusUnauthorized)
			return
		}

		user, err := ac.services.Users.GetByEmail(r.Context(), email)
		if err != nil || !user.Active {
			http.Error(w, "Account is not on the unit roster", http.StatusForbidden)
			return
		}

		sess.Set("user_id", user.ID)
		sess.Set("user_email", user.Email)
		sess.Set("user_role", user.Role)

		// Clear the state from session
		sess.Delete("state")

		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout clears the session
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	sess.Delete("user_id")
	sess.Delete("user_email")
	sess.Delete("user_role")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Token handles POST /auth/token: local email/password login that
// issues a bearer token for the mobile client.
func (ac *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := ac.services.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
		return
	}

	token, err := middleware.IssueToken(ac.jwtSecret, user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to issue token"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"role":  user.Role,
	})
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
