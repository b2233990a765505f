package admin

import (
	"context"
	"errors"

	adminRepo "ablecare/database/repository/admin"
	"ablecare/models"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotFound is returned when the admin account no longer exists.
var ErrNotFound = errors.New("admin not found")

// AdminService handles administrator authentication and profile management.
type AdminService interface {
	// Authenticate verifies email and password and returns a signed bearer
	// token plus the account.
	Authenticate(ctx context.Context, email, password string) (string, *models.Admin, error)
	GetProfile(ctx context.Context, id string) (*models.Admin, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*models.Admin, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}

// DefaultAdminService is the standard AdminService implementation.
type DefaultAdminService struct {
	Repo adminRepo.AdminRepository
}
