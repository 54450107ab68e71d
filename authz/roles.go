package authz

// Role is the closed set of roles a roster member can hold. The zero
// value is not a valid role; every predicate fails closed on it.
type Role string

const (
	RoleUser    Role = "user"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// ParseRole converts a raw role string (from a session, JWT claim or
// database row) into a Role. Unrecognized strings are rejected so that
// permission checks on them fail closed.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleManager, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Actor identifies who is performing an operation. It is threaded
// explicitly into every service call; services never read ambient
// session state.
type Actor struct {
	ID    string
	Email string
	Role  Role
}

// CanClaimOrRelease reports whether the role may claim a shareable
// drone or release its own claim.
func CanClaimOrRelease(r Role) bool {
	switch r {
	case RoleUser, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// CanOverrideClaims reports whether the role may release claims held by
// other actors. Used by the release ownership check.
func CanOverrideClaims(r Role) bool {
	return r == RoleAdmin
}

// CanForceClaim reports whether the role may use the admin-override
// entry point, which force-closes any active claim and optionally opens
// a new one on another actor's behalf.
//
// This is deliberately broader than CanOverrideClaims: managers can use
// the override endpoint but cannot release someone else's claim through
// the normal release path. Keep the two predicates separate.
func CanForceClaim(r Role) bool {
	return r == RoleAdmin || r == RoleManager
}

// CanManageDrones reports whether the role may create, edit, delete or
// restore drones and checklist templates.
func CanManageDrones(r Role) bool {
	return r == RoleAdmin || r == RoleManager
}

// CanManageUsers reports whether the role may mutate the user roster.
func CanManageUsers(r Role) bool {
	return r == RoleAdmin
}

// CanAssignTasks reports whether the role may create tasks and assign
// them to other roster members.
func CanAssignTasks(r Role) bool {
	return r == RoleAdmin || r == RoleManager
}

// CanViewAuditLog reports whether the role may read the audit trail.
func CanViewAuditLog(r Role) bool {
	return r == RoleAdmin || r == RoleManager
}
