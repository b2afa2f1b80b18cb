package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"
	"robimar-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type authService struct {
	adminRepo repository.AdminRepository
	tokens    security.TokenManager
}

func NewAuthService(adminRepo repository.AdminRepository, tokens security.TokenManager) AuthService {
	return &authService{adminRepo: adminRepo, tokens: tokens}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.tokens.GenerateToken(admin.ID, admin.Username)
}

func (s *authService) CreateAdmin(ctx context.Context, username, password string) (*domain.AdminUser, error) {
	if username == "" {
		return nil, &domain.ValidationError{Field: "username", Message: "username is required"}
	}
	if len(password) < 8 {
		return nil, &domain.ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &domain.AdminUser{Username: username, PasswordHash: string(hash)}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
