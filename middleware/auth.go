package middleware

import (
	"context"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/userctx"
)

// RequireAuth ensures the request carries an authenticated identity:
// either a web session (browser client) or a Bearer token (mobile
// client). The resolved actor is placed on the request context.
func RequireAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if actor, ok := actorFromSession(r); ok {
				next.ServeHTTP(w, r.WithContext(withActor(r, actor)))
				return
			}

			if header := r.Header.Get("Authorization"); header != "" {
				tokenStr, ok := bearerToken(header)
				if !ok {
					http.Error(w, "Invalid authorization header", http.StatusUnauthorized)
					return
				}
				actor, err := ParseToken(jwtSecret, tokenStr)
				if err != nil {
					http.Error(w, "Invalid token: "+err.Error(), http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(withActor(r, actor)))
				return
			}

			http.Error(w, "Authentication required", http.StatusUnauthorized)
		})
	}
}

// RequireRole gates a route group behind an authorization predicate.
// Must be mounted inside RequireAuth.
func RequireRole(allowed func(authz.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !allowed(userctx.GetUserRole(r.Context())) {
				http.Error(w, "Insufficient permissions", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func actorFromSession(r *http.Request) (authz.Actor, bool) {
	sess := session.GetSession(r)
	if sess == nil {
		return authz.Actor{}, false
	}

	userID, _ := sess.Get("user_id").(string)
	if userID == "" {
		return authz.Actor{}, false
	}

	email, _ := sess.Get("user_email").(string)
	roleStr, _ := sess.Get("user_role").(string)
	role, ok := authz.ParseRole(roleStr)
	if !ok {
		// A session without a recognized role fails closed.
		return authz.Actor{}, false
	}

	return authz.Actor{ID: userID, Email: email, Role: role}, true
}

func withActor(r *http.Request, actor authz.Actor) context.Context {
	ctx := userctx.SetUserID(r.Context(), actor.ID)
	ctx = userctx.SetUserEmail(ctx, actor.Email)
	return userctx.SetUserRole(ctx, actor.Role)
}
