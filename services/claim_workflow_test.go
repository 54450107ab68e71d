package services

import (
	"context"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/database"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/repositories"
)

// Full claim workflow against a real database: the store-level
// invariant, the permission asymmetry and the audit trail together.
func TestClaimWorkflow(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "workflow.db")
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	srvs := NewServices(repositories.NewRepositories(db))
	ctx := context.Background()

	bootstrap := authz.Actor{ID: "bootstrap", Email: "bootstrap@unit.example", Role: authz.RoleAdmin}

	newMember := func(email, name, role string) authz.Actor {
		user, err := srvs.Users.Create(ctx, &models.UserForm{
			Email:  email,
			Name:   name,
			Role:   role,
			Active: true,
		}, bootstrap)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", email, err)
		}
		return authz.Actor{ID: user.ID, Email: user.Email, Role: authz.Role(user.Role)}
	}

	pilot := newMember("pilot@unit.example", "Jordan Reyes", "user")
	second := newMember("second@unit.example", "Casey Lin", "user")
	manager := newMember("manager@unit.example", "Sam Okafor", "manager")

	drone, err := srvs.Drones.Create(ctx, &models.DroneForm{
		Name:      "Hawk-3",
		Serial:    "SN-0042",
		Status:    "available",
		Shareable: true,
	}, manager)
	if err != nil {
		t.Fatalf("Failed to create drone: %v", err)
	}

	// Pilot claims the drone
	claimID, err := srvs.Claims.Claim(ctx, drone.ID, pilot)
	if err != nil {
		t.Fatalf("Failed to claim drone: %v", err)
	}

	// A second claim on the same drone conflicts
	if _, err := srvs.Claims.Claim(ctx, drone.ID, second); !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("Expected Conflict for second claim, got %v", err)
	}

	// The drone stays claimable for its holder, not for others
	claimable, err := srvs.Claims.IsClaimable(ctx, drone.ID, pilot)
	if err != nil || !claimable {
		t.Errorf("Expected drone to be claimable for its holder, got %v / %v", claimable, err)
	}
	claimable, err = srvs.Claims.IsClaimable(ctx, drone.ID, second)
	if err != nil || claimable {
		t.Errorf("Expected drone not to be claimable for others, got %v / %v", claimable, err)
	}

	// Neither another member nor a manager can release the claim
	if err := srvs.Claims.Release(ctx, claimID, second); !apperr.IsKind(err, apperr.KindPermissionDenied) {
		t.Errorf("Expected PermissionDenied for other member, got %v", err)
	}
	if err := srvs.Claims.Release(ctx, claimID, manager); !apperr.IsKind(err, apperr.KindPermissionDenied) {
		t.Errorf("Expected PermissionDenied for manager release, got %v", err)
	}

	// A manager can go through the override entry point instead
	newClaimID, err := srvs.Claims.AdminOverride(ctx, drone.ID, second.ID, manager)
	if err != nil {
		t.Fatalf("Failed to override claim: %v", err)
	}
	if newClaimID == "" {
		t.Fatal("Expected override to open a new claim")
	}

	active, err := srvs.Claims.GetActiveClaim(ctx, drone.ID)
	if err != nil {
		t.Fatalf("Failed to get active claim: %v", err)
	}
	if active == nil || active.UserID != second.ID {
		t.Errorf("Expected active claim held by %s, got %+v", second.ID, active)
	}

	// The new holder releases their own claim
	if err := srvs.Claims.Release(ctx, newClaimID, second); err != nil {
		t.Fatalf("Failed to release own claim: %v", err)
	}

	active, err = srvs.Claims.GetActiveClaim(ctx, drone.ID)
	if err != nil {
		t.Fatalf("Failed to get active claim after release: %v", err)
	}
	if active != nil {
		t.Errorf("Expected no active claim, got %+v", active)
	}

	// History keeps both claims
	history, err := srvs.Claims.ClaimHistory(ctx, drone.ID, 0)
	if err != nil {
		t.Fatalf("Failed to get claim history: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("Expected 2 claims in history, got %d", len(history))
	}

	// The audit trail recorded the whole workflow for managers to read
	entries, err := srvs.Audit.List(ctx, repositories.AuditFilter{EntityType: models.EntityTypeDroneClaim}, manager)
	if err != nil {
		t.Fatalf("Failed to list audit log: %v", err)
	}

	// claim, override end, override create, release
	if len(entries) != 4 {
		t.Errorf("Expected 4 claim audit entries, got %d", len(entries))
	}

	actions := make(map[string]int)
	for _, entry := range entries {
		actions[entry.Action]++
	}
	for _, action := range []string{
		models.AuditActionCreate,
		models.AuditActionAdminOverrideEnd,
		models.AuditActionAdminOverrideCreate,
		models.AuditActionRelease,
	} {
		if actions[action] != 1 {
			t.Errorf("Expected 1 %s entry, got %d", action, actions[action])
		}
	}

	// Plain members cannot read the audit trail
	if _, err := srvs.Audit.List(ctx, repositories.AuditFilter{}, pilot); !apperr.IsKind(err, apperr.KindPermissionDenied) {
		t.Errorf("Expected PermissionDenied for member audit read, got %v", err)
	}
}

// Deleting a drone with an active claim must be refused.
func TestDroneDeleteBlockedByActiveClaim(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "delete.db")
	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	srvs := NewServices(repositories.NewRepositories(db))
	ctx := context.Background()

	admin := authz.Actor{ID: "adm-1", Email: "admin@unit.example", Role: authz.RoleAdmin}
	pilot := authz.Actor{ID: "user-1", Email: "pilot@unit.example", Role: authz.RoleUser}

	drone, err := srvs.Drones.Create(ctx, &models.DroneForm{
		Name:      "Hawk-3",
		Serial:    "SN-0042",
		Status:    "available",
		Shareable: true,
	}, admin)
	if err != nil {
		t.Fatalf("Failed to create drone: %v", err)
	}

	if _, err := srvs.Claims.Claim(ctx, drone.ID, pilot); err != nil {
		t.Fatalf("Failed to claim drone: %v", err)
	}

	if err := srvs.Drones.Delete(ctx, drone.ID, admin); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("Expected InvalidState deleting a claimed drone, got %v", err)
	}
}
