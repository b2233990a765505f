package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ablecare/config"
	"ablecare/models"
	"ablecare/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultAdminService) Authenticate(ctx context.Context, email, password string) (string, *models.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch admin", zap.Error(err))
		return "", nil, fmt.Errorf("authentication failed, please try again")
	}
	if account == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
	token, err := utils.GenerateToken(account.ID, account.Email, ttl)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, account, nil
}

func (s *DefaultAdminService) GetProfile(ctx context.Context, id string) (*models.Admin, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin profile: %w", err)
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return account, nil
}

func (s *DefaultAdminService) UpdateProfile(ctx context.Context, id, name, email string) (*models.Admin, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch admin profile: %w", err)
	}
	if account == nil {
		return nil, ErrNotFound
	}

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name != "" {
		account.Name = name
	}
	if email != "" {
		account.Email = email
	}

	if err := s.Repo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update admin profile: %w", err)
	}
	return account, nil
}

func (s *DefaultAdminService) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch admin profile: %w", err)
	}
	if account == nil {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return fmt.Errorf("new password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = string(hash)

	if err := s.Repo.Update(ctx, account); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
