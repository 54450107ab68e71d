package authz

import "testing"

func TestParseRole(t *testing.T) {
	for _, s := range []string{"user", "manager", "admin"} {
		role, ok := ParseRole(s)
		if !ok {
			t.Errorf("Expected %s to parse", s)
		}
		if string(role) != s {
			t.Errorf("Expected role %s, got %s", s, role)
		}
	}

	for _, s := range []string{"", "superadmin", "Admin", "USER"} {
		if _, ok := ParseRole(s); ok {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleManager.Valid() {
		t.Error("Expected manager to be valid")
	}
	if Role("").Valid() {
		t.Error("Expected zero role to be invalid")
	}
}

// Permission predicates per role. The unknown role must be denied
// everything.
func TestPermissionPredicates(t *testing.T) {
	unknown := Role("")

	tests := []struct {
		name      string
		predicate func(Role) bool
		user      bool
		manager   bool
		admin     bool
	}{
		{"CanClaimOrRelease", CanClaimOrRelease, true, true, true},
		{"CanOverrideClaims", CanOverrideClaims, false, false, true},
		{"CanForceClaim", CanForceClaim, false, true, true},
		{"CanManageDrones", CanManageDrones, false, true, true},
		{"CanManageUsers", CanManageUsers, false, false, true},
		{"CanAssignTasks", CanAssignTasks, false, true, true},
		{"CanViewAuditLog", CanViewAuditLog, false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.predicate(RoleUser); got != tt.user {
				t.Errorf("Expected %s(user) = %v, got %v", tt.name, tt.user, got)
			}
			if got := tt.predicate(RoleManager); got != tt.manager {
				t.Errorf("Expected %s(manager) = %v, got %v", tt.name, tt.manager, got)
			}
			if got := tt.predicate(RoleAdmin); got != tt.admin {
				t.Errorf("Expected %s(admin) = %v, got %v", tt.name, tt.admin, got)
			}
			if tt.predicate(unknown) {
				t.Errorf("Expected %s to deny the unknown role", tt.name)
			}
		})
	}
}

// Managers may use the override entry point but may not release another
// member's claim through the normal path. The two predicates must not
// be collapsed into one.
func TestOverridePredicatesDiffer(t *testing.T) {
	if CanOverrideClaims(RoleManager) {
		t.Error("Expected manager to be unable to release other members' claims")
	}
	if !CanForceClaim(RoleManager) {
		t.Error("Expected manager to be able to use the override entry point")
	}
}
