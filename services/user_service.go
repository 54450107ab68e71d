package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/skyfleet/drone-ops/apperr"
	"github.com/skyfleet/drone-ops/authz"
	"github.com/skyfleet/drone-ops/models"
	"github.com/skyfleet/drone-ops/repositories"
)

// UnknownUserEmail is the sentinel returned when an actor's email
// cannot be resolved. Lookup failures are never fatal.
const UnknownUserEmail = "Unknown User"

// UserService interface defines roster management business logic
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetEmail resolves a user ID to an email, best-effort. Returns the
	// UnknownUserEmail sentinel when the lookup fails.
	GetEmail(ctx context.Context, id string) string
	Create(ctx context.Context, form *models.UserForm, actor authz.Actor) (*models.User, error)
	Update(ctx context.Context, id string, form *models.UserForm, actor authz.Actor) (*models.User, error)
	Deactivate(ctx context.Context, id string, actor authz.Actor) error
	// SetPassword sets a roster member's local password. Users may set
	// their own; admins may set anyone's.
	SetPassword(ctx context.Context, id, password string, actor authz.Actor) error
	// Authenticate verifies a local email/password pair and returns the
	// user on success.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	// EnsureAdmin creates an active admin account with the given
	// credentials if no user with that email exists. Used at startup.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// userService implements UserService interface
type userService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetAll retrieves all roster members
func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// GetByID retrieves a roster member by ID
func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByEmail retrieves a roster member by email
func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// GetEmail resolves a user ID to an email, best-effort
func (s *userService) GetEmail(ctx context.Context, id string) string {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return UnknownUserEmail
	}
	return user.Email
}

// Create creates a new roster member
func (s *userService) Create(ctx context.Context, form *models.UserForm, actor authz.Actor) (*models.User, error) {
	if !authz.CanManageUsers(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to manage users")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	role, ok := authz.ParseRole(form.Role)
	if !ok {
		return nil, apperr.Invalid("unknown role: %s", form.Role)
	}

	existing, err := s.userRepo.GetByEmail(ctx, form.Email)
	if err == nil && existing != nil {
		return nil, apperr.Conflict("user with email %s already exists", form.Email)
	}

	user := &models.User{
		Email:  strings.TrimSpace(form.Email),
		Name:   strings.TrimSpace(form.Name),
		Role:   string(role),
		Active: form.Active,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Update updates an existing roster member
func (s *userService) Update(ctx context.Context, id string, form *models.UserForm, actor authz.Actor) (*models.User, error) {
	if !authz.CanManageUsers(actor.Role) {
		return nil, apperr.PermissionDenied("insufficient permissions to manage users")
	}

	if errors := form.Validate(); len(errors) > 0 {
		return nil, apperr.Invalid("validation failed: %s", strings.Join(errors, ", "))
	}

	role, ok := authz.ParseRole(form.Role)
	if !ok {
		return nil, apperr.Invalid("unknown role: %s", form.Role)
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Check for duplicate email when it changed
	if form.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, form.Email)
		if err == nil && existing != nil && existing.ID != id {
			return nil, apperr.Conflict("user with email %s already exists", form.Email)
		}
	}

	user.Email = strings.TrimSpace(form.Email)
	user.Name = strings.TrimSpace(form.Name)
	user.Role = string(role)
	user.Active = form.Active

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// Deactivate marks a roster member inactive
func (s *userService) Deactivate(ctx context.Context, id string, actor authz.Actor) error {
	if !authz.CanManageUsers(actor.Role) {
		return apperr.PermissionDenied("insufficient permissions to manage users")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !user.Active {
		return apperr.InvalidState("user is already inactive")
	}

	user.Active = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}

	return nil
}

// SetPassword sets a roster member's local password
func (s *userService) SetPassword(ctx context.Context, id, password string, actor authz.Actor) error {
	if actor.ID != id && !authz.CanManageUsers(actor.Role) {
		return apperr.PermissionDenied("can only change your own password")
	}

	if len(password) < 8 {
		return apperr.Invalid("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.SetPasswordHash(ctx, id, string(hash))
}

// Authenticate verifies a local email/password pair
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperr.PermissionDenied("invalid email or password")
	}

	if !user.Active || user.PasswordHash == "" {
		return nil, apperr.PermissionDenied("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.PermissionDenied("invalid email or password")
	}

	return user, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist
func (s *userService) EnsureAdmin(ctx context.Context, email, password string) error {
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		Email:        email,
		Name:         "Administrator",
		Role:         string(authz.RoleAdmin),
		Active:       true,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}
