package userctx

import (
	"context"

	"github.com/skyfleet/drone-ops/authz"
)

// Context key type
type contextKey string

const userEmailKey contextKey = "user_email"
const UserIDKey contextKey = "user_id"
const userRoleKey contextKey = "user_role"

// SetUserEmail adds user email to request context
func SetUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// GetUserEmail retrieves user email from request context
func GetUserEmail(ctx context.Context) string {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok {
		return "anonymous"
	}
	return email
}

// SetUserID adds user ID to request context
func SetUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserID retrieves user ID from request context
func GetUserID(ctx context.Context) string {
	if userID := ctx.Value(UserIDKey); userID != nil {
		if id, ok := userID.(string); ok {
			return id
		}
	}
	return ""
}

// SetUserRole adds the user's role to request context
func SetUserRole(ctx context.Context, role authz.Role) context.Context {
	return context.WithValue(ctx, userRoleKey, role)
}

// GetUserRole retrieves the user's role from request context. The zero
// role is returned when unset, which fails every permission check.
func GetUserRole(ctx context.Context) authz.Role {
	if role, ok := ctx.Value(userRoleKey).(authz.Role); ok {
		return role
	}
	return ""
}

// Actor assembles the explicit actor identity passed to services.
func Actor(ctx context.Context) authz.Actor {
	email := ""
	if e, ok := ctx.Value(userEmailKey).(string); ok {
		email = e
	}
	return authz.Actor{
		ID:    GetUserID(ctx),
		Email: email,
		Role:  GetUserRole(ctx),
	}
}
