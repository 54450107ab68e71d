package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/repositories/mocks"
)

// ClaimServiceTestSuite is a test suite for the claim workflow
type ClaimServiceTestSuite struct {
	suite.Suite
	service       ClaimService
	mockClaimRepo *mocks.MockClaimRepository
	mockDroneRepo *mocks.MockDroneRepository
	mockUserRepo  *mocks.MockUserRepository
	mockAuditRepo *mocks.MockAuditRepository

	ctx     context.Context
	pilot   authz.Actor
	manager authz.Actor
	admin   authz.Actor
}

// SetupTest sets up the test suite before each test
func (suite *ClaimServiceTestSuite) SetupTest() {
	suite.mockClaimRepo = mocks.NewMockClaimRepository(suite.T())
	suite.mockDroneRepo = mocks.NewMockDroneRepository(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepository(suite.T())
	suite.mockAuditRepo = mocks.NewMockAuditRepository(suite.T())

	suite.service = NewClaimService(
		suite.mockClaimRepo,
		suite.mockDroneRepo,
		suite.mockUserRepo,
		NewAuditService(suite.mockAuditRepo),
	)

	suite.ctx = context.Background()
	suite.pilot = authz.Actor{ID: "user-1", Email: "pilot@unit.example", Role: authz.RoleUser}
	suite.manager = authz.Actor{ID: "mgr-1", Email: "manager@unit.example", Role: authz.RoleManager}
	suite.admin = authz.Actor{ID: "adm-1", Email: "admin@unit.example", Role: authz.RoleAdmin}
}

func (suite *ClaimServiceTestSuite) shareableDrone() *models.Drone {
	return &models.Drone{
		ID:        "drone-1",
		Name:      "Hawk-3",
		Serial:    "SN-0042",
		Status:    models.DroneStatusAvailable,
		Shareable: true,
	}
}

// expectAudit captures the next recorded audit entry
func (suite *ClaimServiceTestSuite) expectAudit(captured **models.AuditLogEntry) {
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *models.AuditLogEntry) {
			*captured = entry
		}).Return(nil).Once()
}

func (suite *ClaimServiceTestSuite) TestClaim_UnknownRole_PermissionDenied() {
	anonymous := authz.Actor{ID: "ghost", Role: authz.Role("")}

	claimID, err := suite.service.Claim(suite.ctx, "drone-1", anonymous)

	assert.Empty(suite.T(), claimID)
	assert.True(suite.T(), apperr.IsKind(err, apperr.KindPermissionDenied))
}

func (suite *ClaimServiceTestSuite) TestClaim_DroneNotFound() {
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, apperr.NotFound("drone missing not found"))

	claimID, err := suite.service.Claim(suite.ctx, "missing", suite.pilot)

	assert.Empty(suite.T(), claimID)
	assert.True(suite.T(), apperr.IsKind(err, apperr.KindNotFound))
}

func (suite *ClaimServiceTestSuite) TestClaim_DeletedDrone_InvalidState() {
	drone := suite.shareableDrone()
	drone.IsDeleted = true
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)

	claimID, err := suite.service.Claim(suite.ctx, drone.ID, suite.pilot)

	assert.Empty(suite.T(), claimID)
	assert.True(suite.T(), apperr.IsKind(err, apperr.KindInvalidState))
}

func (suite *ClaimServiceTestSuite) TestClaim_NotShareable_InvalidState() {
	drone := suite.shareableDrone()
	drone.Shareable = false
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)

	claimID, err := suite.service.Claim(suite.ctx, drone.ID, suite.pilot)

	assert.Empty(suite.T(), claimID)
	assert.True(suite.T(), apperr.IsKind(err, apperr.KindInvalidState))
}

func (suite *ClaimServiceTestSuite) TestClaim_AlreadyClaimed_Conflict() {
	drone := suite.shareableDrone()
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).
		Return(&models.Claim{ID: "claim-9", DroneID: drone.ID, UserID: "someone-else"}, nil)

	claimID, err := suite.service.Claim(suite.ctx, drone.ID, suite.pilot)

	assert.Empty(suite.T(), claimID)
	assert.True(suite.T(), apperr.IsKind(err, apperr.KindConflict))
}

func (suite *ClaimServiceTestSuite) TestClaim_Success_RecordsAudit() {
	drone := suite.shareableDrone()
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).Return(nil, nil)
	suite.mockClaimRepo.EXPECT().CreateActive(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, claim *models.Claim) {
			claim.ID = "claim-1"
		}).Return(nil)

	var entry *models.AuditLogEntry
	suite.expectAudit(&entry)

	claimID, err := suite.service.Claim(suite.ctx, drone.ID, suite.pilot)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "claim-1", claimID)
	assert.Equal(suite.T(), models.EntityTypeDroneClaim, entry.EntityType)
	assert.Equal(suite.T(), models.AuditActionCreate, entry.Action)
	assert.Equal(suite.T(), suite.pilot.ID, entry.UserID)
	assert.Contains(suite.T(), entry.Details, drone.Name)
}

func (suite *ClaimServiceTestSuite) TestClaim_RepoConflict_PassesThrough() {
	// A concurrent claim that slipped past the read surfaces from the
	// repository's transactional check as Conflict.
	drone := suite.shareableDrone()
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).Return(nil, nil)
	suite.mockClaimRepo.EXPECT().CreateActive(mock.Anything, mock.Anything).
		Return(apperr.Conflict("drone is already claimed"))

	claimID, err := suite.service.Claim(suite.ctx, drone.ID, suite.pilot)

	assert.Empty(suite.T(), claimID)
	assert.True(suite.T(), apperr.IsKind(err, apperr.KindConflict))
}

func (suite *ClaimServiceTestSuite) TestRelease_AlreadyReleased_InvalidState() {
	endTime := time.Now().Add(-time.Hour)
	claim := &models.Claim{ID: "claim-1", DroneID: "drone-1", UserID: suite.pilot.ID, EndTime: &endTime}
	suite.mockClaimRepo.EXPECT().GetByID(mock.Anything, claim.ID).Return(claim, nil)

	err := suite.service.Release(suite.ctx, claim.ID, suite.pilot)

	assert.True(suite.T(), apperr.IsKind(err, apperr.KindInvalidState))
}

func (suite *ClaimServiceTestSuite) TestRelease_NotOwner_PermissionDenied() {
	claim := &models.Claim{ID: "claim-1", DroneID: "drone-1", UserID: "someone-else", StartTime: time.Now()}
	suite.mockClaimRepo.EXPECT().GetByID(mock.Anything, claim.ID).Return(claim, nil)

	err := suite.service.Release(suite.ctx, claim.ID, suite.pilot)

	assert.True(suite.T(), apperr.IsKind(err, apperr.KindPermissionDenied))
}

// Managers may reach the override entry point, but releasing another
// member's claim through the normal path stays admin-only.
func (suite *ClaimServiceTestSuite) TestRelease_ManagerNotOwner_PermissionDenied() {
	claim := &models.Claim{ID: "claim-1", DroneID: "drone-1", UserID: suite.pilot.ID, StartTime: time.Now()}
	suite.mockClaimRepo.EXPECT().GetByID(mock.Anything, claim.ID).Return(claim, nil)

	err := suite.service.Release(suite.ctx, claim.ID, suite.manager)

	assert.True(suite.T(), apperr.IsKind(err, apperr.KindPermissionDenied))
}

func (suite *ClaimServiceTestSuite) TestRelease_Owner_RecordsReleaseAction() {
	claim := &models.Claim{
		ID:        "claim-1",
		DroneID:   "drone-1",
		UserID:    suite.pilot.ID,
		UserEmail: suite.pilot.Email,
		StartTime: time.Now().Add(-90 * time.Minute),
	}
	suite.mockClaimRepo.EXPECT().GetByID(mock.Anything, claim.ID).Return(claim, nil)
	suite.mockClaimRepo.EXPECT().Close(mock.Anything, claim.ID, mock.Anything).Return(true, nil)

	var entry *models.AuditLogEntry
	suite.expectAudit(&entry)

	err := suite.service.Release(suite.ctx, claim.ID, suite.pilot)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AuditActionRelease, entry.Action)
	assert.Contains(suite.T(), entry.Details, "1h 30m")
}

func (suite *ClaimServiceTestSuite) TestRelease_AdminOnBehalf_RecordsOverrideAction() {
	claim := &models.Claim{
		ID:        "claim-1",
		DroneID:   "drone-1",
		UserID:    suite.pilot.ID,
		UserEmail: suite.pilot.Email,
		StartTime: time.Now().Add(-10 * time.Minute),
	}
	suite.mockClaimRepo.EXPECT().GetByID(mock.Anything, claim.ID).Return(claim, nil)
	suite.mockClaimRepo.EXPECT().Close(mock.Anything, claim.ID, mock.Anything).Return(true, nil)

	var entry *models.AuditLogEntry
	suite.expectAudit(&entry)

	err := suite.service.Release(suite.ctx, claim.ID, suite.admin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AuditActionAdminOverride, entry.Action)
	assert.Equal(suite.T(), suite.admin.ID, entry.UserID)
	assert.Contains(suite.T(), entry.Details, suite.pilot.Email)
}

func (suite *ClaimServiceTestSuite) TestRelease_LostRace_InvalidState() {
	claim := &models.Claim{ID: "claim-1", DroneID: "drone-1", UserID: suite.pilot.ID, StartTime: time.Now()}
	suite.mockClaimRepo.EXPECT().GetByID(mock.Anything, claim.ID).Return(claim, nil)
	suite.mockClaimRepo.EXPECT().Close(mock.Anything, claim.ID, mock.Anything).Return(false, nil)

	err := suite.service.Release(suite.ctx, claim.ID, suite.pilot)

	assert.True(suite.T(), apperr.IsKind(err, apperr.KindInvalidState))
}

func (suite *ClaimServiceTestSuite) TestAdminOverride_User_PermissionDenied() {
	claimID, err := suite.service.AdminOverride(suite.ctx, "drone-1", "user-2", suite.pilot)

	assert.Empty(suite.T(), claimID)
	assert.True(suite.T(), apperr.IsKind(err, apperr.KindPermissionDenied))
}

func (suite *ClaimServiceTestSuite) TestAdminOverride_CloseOnly() {
	drone := suite.shareableDrone()
	active := &models.Claim{
		ID:        "claim-1",
		DroneID:   drone.ID,
		UserID:    suite.pilot.ID,
		UserEmail: suite.pilot.Email,
		StartTime: time.Now().Add(-time.Hour),
	}
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).Return(active, nil)
	suite.mockClaimRepo.EXPECT().Close(mock.Anything, active.ID, mock.Anything).Return(true, nil)

	var entry *models.AuditLogEntry
	suite.expectAudit(&entry)

	claimID, err := suite.service.AdminOverride(suite.ctx, drone.ID, "", suite.admin)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), claimID)
	assert.Equal(suite.T(), models.AuditActionAdminOverrideEnd, entry.Action)
	assert.Contains(suite.T(), entry.Details, suite.pilot.Email)
}

// The override entry point is open to managers even though the plain
// release path is not.
func (suite *ClaimServiceTestSuite) TestAdminOverride_ManagerReassigns() {
	drone := suite.shareableDrone()
	active := &models.Claim{
		ID:        "claim-1",
		DroneID:   drone.ID,
		UserID:    suite.pilot.ID,
		UserEmail: suite.pilot.Email,
		StartTime: time.Now().Add(-time.Hour),
	}
	newUser := &models.User{ID: "user-2", Email: "other@unit.example", Role: string(authz.RoleUser), Active: true}

	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).Return(active, nil)
	suite.mockClaimRepo.EXPECT().Close(mock.Anything, active.ID, mock.Anything).Return(true, nil)
	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, newUser.ID).Return(newUser, nil)
	suite.mockClaimRepo.EXPECT().CreateActive(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, claim *models.Claim) {
			claim.ID = "claim-2"
		}).Return(nil)

	var entries []*models.AuditLogEntry
	suite.mockAuditRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, entry *models.AuditLogEntry) {
			entries = append(entries, entry)
		}).Return(nil).Twice()

	claimID, err := suite.service.AdminOverride(suite.ctx, drone.ID, newUser.ID, suite.manager)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "claim-2", claimID)
	assert.Len(suite.T(), entries, 2)
	assert.Equal(suite.T(), models.AuditActionAdminOverrideEnd, entries[0].Action)
	assert.Equal(suite.T(), models.AuditActionAdminOverrideCreate, entries[1].Action)
	assert.Contains(suite.T(), entries[1].Details, newUser.Email)
}

func (suite *ClaimServiceTestSuite) TestAdminOverride_NoActiveClaim_CreatesNew() {
	drone := suite.shareableDrone()
	drone.Shareable = false // override ignores the shareable precondition
	newUser := &models.User{ID: "user-2", Email: "other@unit.example", Role: string(authz.RoleUser), Active: true}

	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).Return(nil, nil)
	suite.mockUserRepo.EXPECT().GetByID(mock.Anything, newUser.ID).Return(newUser, nil)
	suite.mockClaimRepo.EXPECT().CreateActive(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, claim *models.Claim) {
			claim.ID = "claim-2"
		}).Return(nil)

	var entry *models.AuditLogEntry
	suite.expectAudit(&entry)

	claimID, err := suite.service.AdminOverride(suite.ctx, drone.ID, newUser.ID, suite.admin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "claim-2", claimID)
	assert.Equal(suite.T(), models.AuditActionAdminOverrideCreate, entry.Action)
}

func (suite *ClaimServiceTestSuite) TestIsClaimable_OwnClaimCounts() {
	drone := suite.shareableDrone()
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).
		Return(&models.Claim{ID: "claim-1", DroneID: drone.ID, UserID: suite.pilot.ID}, nil)

	claimable, err := suite.service.IsClaimable(suite.ctx, drone.ID, suite.pilot)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), claimable)
}

func (suite *ClaimServiceTestSuite) TestIsClaimable_ClaimedByOther() {
	drone := suite.shareableDrone()
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, drone.ID).Return(drone, nil)
	suite.mockClaimRepo.EXPECT().GetActiveByDrone(mock.Anything, drone.ID).
		Return(&models.Claim{ID: "claim-1", DroneID: drone.ID, UserID: "someone-else"}, nil)

	claimable, err := suite.service.IsClaimable(suite.ctx, drone.ID, suite.pilot)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), claimable)
}

func (suite *ClaimServiceTestSuite) TestIsClaimable_MissingDrone_FalseNoError() {
	suite.mockDroneRepo.EXPECT().GetByID(mock.Anything, "missing").
		Return(nil, apperr.NotFound("drone missing not found"))

	claimable, err := suite.service.IsClaimable(suite.ctx, "missing", suite.pilot)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), claimable)
}

func (suite *ClaimServiceTestSuite) TestIsClaimable_UnknownRole_False() {
	claimable, err := suite.service.IsClaimable(suite.ctx, "drone-1", authz.Actor{Role: authz.Role("")})

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), claimable)
}

// TestClaimServiceTestSuite runs the test suite
func TestClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimServiceTestSuite))
}

func TestCanModifyClaim(t *testing.T) {
	owner := authz.Actor{ID: "user-1", Role: authz.RoleUser}
	manager := authz.Actor{ID: "mgr-1", Role: authz.RoleManager}
	admin := authz.Actor{ID: "adm-1", Role: authz.RoleAdmin}
	claim := &models.Claim{ID: "claim-1", UserID: "user-1"}

	if !CanModifyClaim(claim, owner) {
		t.Error("Expected owner to be able to modify their claim")
	}
	if CanModifyClaim(claim, manager) {
		t.Error("Expected manager to be unable to modify another member's claim")
	}
	if !CanModifyClaim(claim, admin) {
		t.Error("Expected admin to be able to modify any claim")
	}
	if CanModifyClaim(nil, admin) {
		t.Error("Expected nil claim to be unmodifiable")
	}
}

func TestFormatClaimDuration(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{"under an hour", 30 * time.Minute, "30m"},
		{"ninety minutes", 90 * time.Minute, "1h 30m"},
		{"just under a day", 23*time.Hour + 59*time.Minute, "23h 59m"},
		{"fifty hours", 50 * time.Hour, "2d 2h"},
		{"zero", 0, "0m"},
		{"negative clamps to zero", -5 * time.Minute, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := start.Add(tt.elapsed)
			got := FormatClaimDuration(start, &end)
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFormatClaimDuration_OpenClaim(t *testing.T) {
	restore := timeNow
	defer func() { timeNow = restore }()

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return start.Add(2*time.Hour + 5*time.Minute) }

	got := FormatClaimDuration(start, nil)
	if got != "2h 5m" {
		t.Errorf("Expected %q, got %q", "2h 5m", got)
	}
}
