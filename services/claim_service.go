package services

import (
	"context"
	"fmt"
	"time"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/repositories"
)

var timeNow = func() time.Time {
	return time.Now()
}

// ClaimService implements the drone claim workflow: claiming a
// shareable drone for exclusive use, releasing it, and the privileged
// admin override. It is the sole mutation path for claims.
//
// Every operation takes an explicit actor; nothing here reads ambient
// session state.
type ClaimService interface {
	// Claim opens a new claim on a shareable drone and returns its id.
	Claim(ctx context.Context, droneID string, actor authz.Actor) (string, error)
	// Release closes a claim. Non-owners need the override permission.
	Release(ctx context.Context, claimID string, actor authz.Actor) error
	// AdminOverride force-closes the drone's active claim, if any, and
	// when newUserID is non-empty opens a fresh claim on that user's
	// behalf, returning the new claim id (empty otherwise).
	AdminOverride(ctx context.Context, droneID, newUserID string, actor authz.Actor) (string, error)
	// GetActiveClaim returns the drone's active claim, or nil. Read-only
	// and unrestricted; display gating is a UI concern.
	GetActiveClaim(ctx context.Context, droneID string) (*models.Claim, error)
	// IsClaimable reports whether the actor could claim the drone right
	// now. A drone whose active claim already belongs to the actor
	// counts as claimable.
	IsClaimable(ctx context.Context, droneID string, actor authz.Actor) (bool, error)
	ClaimHistory(ctx context.Context, droneID string, limit int) ([]models.Claim, error)
}

// claimService implements ClaimService interface
type claimService struct {
	claimRepo repositories.ClaimRepository
	droneRepo repositories.DroneRepository
	userRepo  repositories.UserRepository
	audit     AuditService
}

// NewClaimService creates a new claim service
func NewClaimService(
	claimRepo repositories.ClaimRepository,
	droneRepo repositories.DroneRepository,
	userRepo repositories.UserRepository,
	audit AuditService,
) ClaimService {
	return &claimService{
		claimRepo: claimRepo,
		droneRepo: droneRepo,
		userRepo:  userRepo,
		audit:     audit,
	}
}

// Claim opens a new claim on a drone for the acting user
func (s *claimService) Claim(ctx context.Context, droneID string, actor authz.Actor) (string, error) {
	if !authz.CanClaimOrRelease(actor.Role) {
		return "", apperr.PermissionDenied("insufficient permissions to claim drones")
	}

	drone, err := s.droneRepo.GetByID(ctx, droneID)
	if err != nil {
		return "", err
	}

	if drone.IsDeleted {
		return "", apperr.InvalidState("cannot claim a deleted drone")
	}

	if !drone.Shareable {
		return "", apperr.InvalidState("drone is not shareable")
	}

	active, err := s.claimRepo.GetActiveByDrone(ctx, droneID)
	if err != nil {
		return "", err
	}
	if active != nil {
		return "", apperr.Conflict("drone is already claimed")
	}

	claim := &models.Claim{
		DroneID:   droneID,
		UserID:    actor.ID,
		UserEmail: s.resolveEmail(ctx, actor.ID, actor.Email),
		StartTime: timeNow(),
	}

	// The repository re-checks the active-claim invariant inside its
	// transaction, so a concurrent claim surfaces here as Conflict.
	if err := s.claimRepo.CreateActive(ctx, claim); err != nil {
		return "", err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeDroneClaim,
		EntityID:   claim.ID,
		Action:     models.AuditActionCreate,
		UserID:     actor.ID,
		UserEmail:  claim.UserEmail,
		Timestamp:  claim.StartTime,
		NewValues:  snapshot(claim),
		Details:    fmt.Sprintf("Claimed drone %s", drone.Name),
	})

	return claim.ID, nil
}

// Release closes a claim held by the actor, or by anyone if the actor
// may override claims
func (s *claimService) Release(ctx context.Context, claimID string, actor authz.Actor) error {
	if !authz.CanClaimOrRelease(actor.Role) {
		return apperr.PermissionDenied("insufficient permissions to release claims")
	}

	claim, err := s.claimRepo.GetByID(ctx, claimID)
	if err != nil {
		return err
	}

	if !claim.Active() {
		return apperr.InvalidState("claim is already released")
	}

	if claim.UserID != actor.ID && !authz.CanOverrideClaims(actor.Role) {
		return apperr.PermissionDenied("can only release your own claims")
	}

	before := snapshot(claim)

	endTime := timeNow()
	closed, err := s.claimRepo.Close(ctx, claimID, endTime)
	if err != nil {
		return err
	}
	if !closed {
		// Lost a race with another release of the same claim.
		return apperr.InvalidState("claim is already released")
	}
	claim.EndTime = &endTime

	action := models.AuditActionRelease
	details := fmt.Sprintf("Released claim after %s", FormatClaimDuration(claim.StartTime, claim.EndTime))
	if claim.UserID != actor.ID {
		action = models.AuditActionAdminOverride
		details = fmt.Sprintf("Released claim held by %s after %s", claim.UserEmail, FormatClaimDuration(claim.StartTime, claim.EndTime))
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType:     models.EntityTypeDroneClaim,
		EntityID:       claim.ID,
		Action:         action,
		UserID:         actor.ID,
		UserEmail:      s.resolveEmail(ctx, actor.ID, actor.Email),
		Timestamp:      endTime,
		PreviousValues: before,
		NewValues:      snapshot(claim),
		Details:        details,
	})

	return nil
}

// AdminOverride force-closes a drone's active claim and optionally
// opens a new one on another user's behalf. It bypasses the shareable,
// deleted and active-claim preconditions of the normal claim path.
func (s *claimService) AdminOverride(ctx context.Context, droneID, newUserID string, actor authz.Actor) (string, error) {
	if !authz.CanForceClaim(actor.Role) {
		return "", apperr.PermissionDenied("insufficient permissions to override claims")
	}

	drone, err := s.droneRepo.GetByID(ctx, droneID)
	if err != nil {
		return "", err
	}

	actorEmail := s.resolveEmail(ctx, actor.ID, actor.Email)

	active, err := s.claimRepo.GetActiveByDrone(ctx, droneID)
	if err != nil {
		return "", err
	}

	if active != nil {
		before := snapshot(active)

		endTime := timeNow()
		if _, err := s.claimRepo.Close(ctx, active.ID, endTime); err != nil {
			return "", err
		}
		active.EndTime = &endTime

		s.audit.Record(ctx, &models.AuditLogEntry{
			EntityType:     models.EntityTypeDroneClaim,
			EntityID:       active.ID,
			Action:         models.AuditActionAdminOverrideEnd,
			UserID:         actor.ID,
			UserEmail:      actorEmail,
			Timestamp:      endTime,
			PreviousValues: before,
			NewValues:      snapshot(active),
			Details:        fmt.Sprintf("Force-closed claim held by %s on drone %s", active.UserEmail, drone.Name),
		})
	}

	if newUserID == "" {
		return "", nil
	}

	claim := &models.Claim{
		DroneID:   droneID,
		UserID:    newUserID,
		UserEmail: s.resolveEmail(ctx, newUserID, ""),
		StartTime: timeNow(),
	}

	if err := s.claimRepo.CreateActive(ctx, claim); err != nil {
		return "", err
	}

	s.audit.Record(ctx, &models.AuditLogEntry{
		EntityType: models.EntityTypeDroneClaim,
		EntityID:   claim.ID,
		Action:     models.AuditActionAdminOverrideCreate,
		UserID:     actor.ID,
		UserEmail:  actorEmail,
		Timestamp:  claim.StartTime,
		NewValues:  snapshot(claim),
		Details:    fmt.Sprintf("Opened claim on drone %s on behalf of %s", drone.Name, claim.UserEmail),
	})

	return claim.ID, nil
}

// GetActiveClaim retrieves the active claim for a drone, if any
func (s *claimService) GetActiveClaim(ctx context.Context, droneID string) (*models.Claim, error) {
	return s.claimRepo.GetActiveByDrone(ctx, droneID)
}

// IsClaimable reports whether the actor could claim the drone right now
func (s *claimService) IsClaimable(ctx context.Context, droneID string, actor authz.Actor) (bool, error) {
	if !authz.CanClaimOrRelease(actor.Role) {
		return false, nil
	}

	drone, err := s.droneRepo.GetByID(ctx, droneID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return false, nil
		}
		return false, err
	}

	if drone.IsDeleted || !drone.Shareable {
		return false, nil
	}

	active, err := s.claimRepo.GetActiveByDrone(ctx, droneID)
	if err != nil {
		return false, err
	}

	return active == nil || active.UserID == actor.ID, nil
}

// ClaimHistory retrieves past and present claims for a drone
func (s *claimService) ClaimHistory(ctx context.Context, droneID string, limit int) ([]models.Claim, error) {
	return s.claimRepo.ListByDrone(ctx, droneID, limit)
}

// resolveEmail returns the given email, or looks it up by user ID.
// Lookup failures yield an empty string, never an error: the email is a
// denormalized display value.
func (s *claimService) resolveEmail(ctx context.Context, userID, email string) string {
	if email != "" {
		return email
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return ""
	}
	return user.Email
}

// CanModifyClaim reports whether the actor may release or edit the
// claim: owners always can, otherwise the override permission applies.
func CanModifyClaim(claim *models.Claim, actor authz.Actor) bool {
	if claim == nil {
		return false
	}
	return claim.UserID == actor.ID || authz.CanOverrideClaims(actor.Role)
}

// FormatClaimDuration renders the elapsed time of a claim. Open claims
// are measured against the current time. Units truncate: "45m" under an
// hour, "3h 20m" under a day, "2d 5h" beyond.
func FormatClaimDuration(start time.Time, end *time.Time) string {
	until := timeNow()
	if end != nil {
		until = *end
	}

	minutes := int(until.Sub(start).Minutes())
	if minutes < 0 {
		minutes = 0
	}

	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh %dm", hours, minutes%60)
	}

	return fmt.Sprintf("%dd %dh", hours/24, hours%24)
}
