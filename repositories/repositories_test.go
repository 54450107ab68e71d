package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/database"
	"github.com/skyfleet/drone-ops/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})

	return db
}

func createTestDrone(t *testing.T, repo DroneRepository) *models.Drone {
	drone := &models.Drone{
		Name:      "Hawk-3",
		Serial:    "SN-0042",
		Model:     "Anafi USA",
		Status:    models.DroneStatusAvailable,
		Shareable: true,
	}
	if err := repo.Create(context.Background(), drone); err != nil {
		t.Fatalf("Failed to create test drone: %v", err)
	}
	return drone
}

func TestUserRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	// Test Create
	user := &models.User{
		Email:  "pilot@unit.example",
		Name:   "Jordan Reyes",
		Role:   "user",
		Active: true,
	}

	err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	if user.ID == "" {
		t.Error("Expected user ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user by ID: %v", err)
	}

	if retrieved.Email != user.Email {
		t.Errorf("Expected email %s, got %s", user.Email, retrieved.Email)
	}

	// Test GetByEmail
	byEmail, err := repo.GetByEmail(ctx, user.Email)
	if err != nil {
		t.Fatalf("Failed to get user by email: %v", err)
	}

	if byEmail.ID != user.ID {
		t.Errorf("Expected ID %s, got %s", user.ID, byEmail.ID)
	}

	// Unknown lookups map to NotFound
	_, err = repo.GetByID(ctx, "missing")
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Expected NotFound for missing user, got %v", err)
	}

	// Test Update
	user.Name = "Jordan A. Reyes"
	user.Role = "manager"
	err = repo.Update(ctx, user)
	if err != nil {
		t.Fatalf("Failed to update user: %v", err)
	}

	updated, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get updated user: %v", err)
	}

	if updated.Name != "Jordan A. Reyes" || updated.Role != "manager" {
		t.Errorf("Expected updated name and role, got %s / %s", updated.Name, updated.Role)
	}

	// Test SetPasswordHash
	err = repo.SetPasswordHash(ctx, user.ID, "hashed-secret")
	if err != nil {
		t.Fatalf("Failed to set password hash: %v", err)
	}

	withHash, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user after password change: %v", err)
	}

	if withHash.PasswordHash != "hashed-secret" {
		t.Error("Expected password hash to be stored")
	}

	// Test Count
	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected count 1, got %d", count)
	}
}

func TestDroneRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewDroneRepository(db)
	ctx := context.Background()

	drone := createTestDrone(t, repo)

	if drone.ID == "" {
		t.Error("Expected drone ID to be set after creation")
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, drone.ID)
	if err != nil {
		t.Fatalf("Failed to get drone by ID: %v", err)
	}

	if retrieved.Serial != drone.Serial {
		t.Errorf("Expected serial %s, got %s", drone.Serial, retrieved.Serial)
	}

	// Test GetBySerial
	bySerial, err := repo.GetBySerial(ctx, drone.Serial)
	if err != nil {
		t.Fatalf("Failed to get drone by serial: %v", err)
	}

	if bySerial.ID != drone.ID {
		t.Errorf("Expected ID %s, got %s", drone.ID, bySerial.ID)
	}

	// Test Update
	drone.Status = models.DroneStatusMaintenance
	drone.Notes = "Gimbal vibration"
	err = repo.Update(ctx, drone)
	if err != nil {
		t.Fatalf("Failed to update drone: %v", err)
	}

	updated, err := repo.GetByID(ctx, drone.ID)
	if err != nil {
		t.Fatalf("Failed to get updated drone: %v", err)
	}

	if updated.Status != models.DroneStatusMaintenance {
		t.Errorf("Expected status maintenance, got %s", updated.Status)
	}
	if updated.ModifiedAt == nil {
		t.Error("Expected modified_at to be stamped on update")
	}

	// Test soft delete and listing visibility
	err = repo.SetDeleted(ctx, drone.ID, true)
	if err != nil {
		t.Fatalf("Failed to soft-delete drone: %v", err)
	}

	visible, err := repo.GetAll(ctx, false)
	if err != nil {
		t.Fatalf("Failed to list drones: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Expected 0 visible drones after delete, got %d", len(visible))
	}

	all, err := repo.GetAll(ctx, true)
	if err != nil {
		t.Fatalf("Failed to list all drones: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 drone including deleted, got %d", len(all))
	}
}

func TestClaimRepository(t *testing.T) {
	db := setupTestDB(t)
	claimRepo := NewClaimRepository(db)
	droneRepo := NewDroneRepository(db)
	ctx := context.Background()

	drone := createTestDrone(t, droneRepo)

	// Test CreateActive
	claim := &models.Claim{
		DroneID:   drone.ID,
		UserID:    "user-1",
		UserEmail: "pilot@unit.example",
	}
	err := claimRepo.CreateActive(ctx, claim)
	if err != nil {
		t.Fatalf("Failed to create claim: %v", err)
	}

	if claim.ID == "" {
		t.Error("Expected claim ID to be set after creation")
	}

	// A second active claim on the same drone must be rejected
	second := &models.Claim{
		DroneID: drone.ID,
		UserID:  "user-2",
	}
	err = claimRepo.CreateActive(ctx, second)
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("Expected Conflict for second active claim, got %v", err)
	}

	// Test GetActiveByDrone
	active, err := claimRepo.GetActiveByDrone(ctx, drone.ID)
	if err != nil {
		t.Fatalf("Failed to get active claim: %v", err)
	}
	if active == nil || active.ID != claim.ID {
		t.Errorf("Expected active claim %s, got %+v", claim.ID, active)
	}

	// Test Close (conditional write)
	closed, err := claimRepo.Close(ctx, claim.ID, time.Now())
	if err != nil {
		t.Fatalf("Failed to close claim: %v", err)
	}
	if !closed {
		t.Error("Expected first close to report success")
	}

	// A second close must report no-op
	closed, err = claimRepo.Close(ctx, claim.ID, time.Now())
	if err != nil {
		t.Fatalf("Failed on repeat close: %v", err)
	}
	if closed {
		t.Error("Expected repeat close to report no matching row")
	}

	// No active claim remains
	active, err = claimRepo.GetActiveByDrone(ctx, drone.ID)
	if err != nil {
		t.Fatalf("Failed to get active claim after close: %v", err)
	}
	if active != nil {
		t.Errorf("Expected no active claim, got %+v", active)
	}

	// Once released, a new claim can be opened
	err = claimRepo.CreateActive(ctx, second)
	if err != nil {
		t.Fatalf("Failed to claim after release: %v", err)
	}

	// Test ListByDrone (history includes released claims, newest first)
	history, err := claimRepo.ListByDrone(ctx, drone.ID, 0)
	if err != nil {
		t.Fatalf("Failed to list claim history: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("Expected 2 claims in history, got %d", len(history))
	}

	// Test ListByUser
	mine, err := claimRepo.ListByUser(ctx, "user-2", 0)
	if err != nil {
		t.Fatalf("Failed to list claims by user: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("Expected 1 claim for user-2, got %d", len(mine))
	}
}

func TestFlightLogRepository(t *testing.T) {
	db := setupTestDB(t)
	flightRepo := NewFlightLogRepository(db)
	droneRepo := NewDroneRepository(db)
	ctx := context.Background()

	drone := createTestDrone(t, droneRepo)

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	entry := &models.FlightLog{
		DroneID:   drone.ID,
		PilotID:   "user-1",
		StartTime: start,
		EndTime:   start.Add(40 * time.Minute),
		Location:  "Training field B",
		Purpose:   "Pattern practice",
		CreatedBy: "user-1",
	}

	err := flightRepo.Create(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to create flight log: %v", err)
	}

	retrieved, err := flightRepo.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Failed to get flight log: %v", err)
	}

	if retrieved.DurationMinutes() != 40 {
		t.Errorf("Expected 40 minute flight, got %d", retrieved.DurationMinutes())
	}

	// Test Update
	entry.Incident = true
	entry.Notes = "Hard landing"
	err = flightRepo.Update(ctx, entry)
	if err != nil {
		t.Fatalf("Failed to update flight log: %v", err)
	}

	updated, err := flightRepo.GetByID(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Failed to get updated flight log: %v", err)
	}
	if !updated.Incident {
		t.Error("Expected incident flag to persist")
	}

	// Test listings
	byDrone, err := flightRepo.ListByDrone(ctx, drone.ID, 0)
	if err != nil {
		t.Fatalf("Failed to list flights by drone: %v", err)
	}
	if len(byDrone) != 1 {
		t.Errorf("Expected 1 flight for drone, got %d", len(byDrone))
	}

	byPilot, err := flightRepo.ListByPilot(ctx, "user-1", 0)
	if err != nil {
		t.Fatalf("Failed to list flights by pilot: %v", err)
	}
	if len(byPilot) != 1 {
		t.Errorf("Expected 1 flight for pilot, got %d", len(byPilot))
	}

	// Test Delete
	err = flightRepo.Delete(ctx, entry.ID)
	if err != nil {
		t.Fatalf("Failed to delete flight log: %v", err)
	}

	_, err = flightRepo.GetByID(ctx, entry.ID)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Expected NotFound after delete, got %v", err)
	}
}

func TestChecklistRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewChecklistRepository(db)
	ctx := context.Background()

	tmpl := &models.ChecklistTemplate{
		Name:  "Standard preflight",
		Phase: models.ChecklistPhasePreflight,
		Items: []string{"Inspect propellers", "Check battery level", "Verify GPS lock"},
	}

	err := repo.Create(ctx, tmpl)
	if err != nil {
		t.Fatalf("Failed to create checklist template: %v", err)
	}

	// Items round-trip through the JSON column
	retrieved, err := repo.GetByID(ctx, tmpl.ID)
	if err != nil {
		t.Fatalf("Failed to get checklist template: %v", err)
	}

	if len(retrieved.Items) != 3 || retrieved.Items[2] != "Verify GPS lock" {
		t.Errorf("Expected items to round-trip, got %v", retrieved.Items)
	}

	// Soft delete hides from default listing
	err = repo.SetDeleted(ctx, tmpl.ID, true)
	if err != nil {
		t.Fatalf("Failed to soft-delete checklist template: %v", err)
	}

	visible, err := repo.GetAll(ctx, false)
	if err != nil {
		t.Fatalf("Failed to list checklist templates: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("Expected 0 visible templates after delete, got %d", len(visible))
	}

	all, err := repo.GetAll(ctx, true)
	if err != nil {
		t.Fatalf("Failed to list all checklist templates: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected 1 template including deleted, got %d", len(all))
	}
}

func TestTaskRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	due := time.Now().AddDate(0, 0, 7)
	task := &models.Task{
		Title:       "Replace propellers on Hawk-3",
		Description: "Front left shows stress marks",
		AssigneeID:  "user-1",
		DueDate:     &due,
		CreatedBy:   "mgr-1",
	}

	err := repo.Create(ctx, task)
	if err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to get task: %v", err)
	}

	if retrieved.Status != models.TaskStatusOpen {
		t.Errorf("Expected new task to be open, got %s", retrieved.Status)
	}
	if retrieved.DueDate == nil {
		t.Error("Expected due date to persist")
	}

	// Test ListByAssignee
	assigned, err := repo.ListByAssignee(ctx, "user-1")
	if err != nil {
		t.Fatalf("Failed to list tasks by assignee: %v", err)
	}
	if len(assigned) != 1 {
		t.Errorf("Expected 1 assigned task, got %d", len(assigned))
	}

	// Test Update
	task.Status = models.TaskStatusInProgress
	task.AssigneeID = ""
	err = repo.Update(ctx, task)
	if err != nil {
		t.Fatalf("Failed to update task: %v", err)
	}

	updated, err := repo.GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to get updated task: %v", err)
	}
	if updated.Status != models.TaskStatusInProgress {
		t.Errorf("Expected status in_progress, got %s", updated.Status)
	}
	if updated.AssigneeID != "" {
		t.Errorf("Expected cleared assignee, got %s", updated.AssigneeID)
	}

	// Test Delete
	err = repo.Delete(ctx, task.ID)
	if err != nil {
		t.Fatalf("Failed to delete task: %v", err)
	}

	_, err = repo.GetByID(ctx, task.ID)
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("Expected NotFound after delete, got %v", err)
	}
}

func TestAuditRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	entries := []*models.AuditLogEntry{
		{
			EntityType: models.EntityTypeDrone,
			EntityID:   "drone-1",
			Action:     models.AuditActionCreate,
			UserID:     "mgr-1",
			UserEmail:  "manager@unit.example",
			Details:    "Added drone Hawk-3",
		},
		{
			EntityType: models.EntityTypeDroneClaim,
			EntityID:   "claim-1",
			Action:     models.AuditActionCreate,
			UserID:     "user-1",
			UserEmail:  "pilot@unit.example",
			Details:    "Claimed drone Hawk-3",
		},
		{
			EntityType: models.EntityTypeDroneClaim,
			EntityID:   "claim-1",
			Action:     models.AuditActionRelease,
			UserID:     "user-1",
			UserEmail:  "pilot@unit.example",
			Details:    "Released claim after 1h 5m",
		},
	}

	for _, entry := range entries {
		if err := repo.Create(ctx, entry); err != nil {
			t.Fatalf("Failed to create audit entry: %v", err)
		}
		if entry.ID == "" {
			t.Error("Expected audit entry ID to be set after creation")
		}
	}

	// Unfiltered listing returns everything
	all, err := repo.List(ctx, AuditFilter{})
	if err != nil {
		t.Fatalf("Failed to list audit log: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 audit entries, got %d", len(all))
	}

	// Filter by entity type
	claims, err := repo.List(ctx, AuditFilter{EntityType: models.EntityTypeDroneClaim})
	if err != nil {
		t.Fatalf("Failed to list filtered audit log: %v", err)
	}
	if len(claims) != 2 {
		t.Errorf("Expected 2 claim entries, got %d", len(claims))
	}

	// Filter by entity type and id with a limit
	one, err := repo.List(ctx, AuditFilter{EntityType: models.EntityTypeDroneClaim, EntityID: "claim-1", Limit: 1})
	if err != nil {
		t.Fatalf("Failed to list limited audit log: %v", err)
	}
	if len(one) != 1 {
		t.Errorf("Expected 1 entry with limit, got %d", len(one))
	}
}
