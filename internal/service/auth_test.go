package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/security"
	"robimar-backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	repo := new(MockAdminRepo)
	repo.On("GetByUsername", mock.Anything, "admin").
		Return(&domain.AdminUser{ID: 1, Username: "admin", PasswordHash: hashPassword(t, "s3cret-pass")}, nil)

	tokens := security.NewTokenManager(testSecret, 60)
	svc := service.NewAuthService(repo, tokens)

	token, err := svc.Login(context.Background(), "admin", "s3cret-pass")

	require.NoError(t, err)
	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int32(1), claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(MockAdminRepo)
	repo.On("GetByUsername", mock.Anything, "admin").
		Return(&domain.AdminUser{ID: 1, Username: "admin", PasswordHash: hashPassword(t, "s3cret-pass")}, nil)

	svc := service.NewAuthService(repo, security.NewTokenManager(testSecret, 60))
	_, err := svc.Login(context.Background(), "admin", "wrong")

	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	repo := new(MockAdminRepo)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)

	svc := service.NewAuthService(repo, security.NewTokenManager(testSecret, 60))
	_, err := svc.Login(context.Background(), "ghost", "whatever")

	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestCreateAdmin(t *testing.T) {
	repo := new(MockAdminRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewAuthService(repo, security.NewTokenManager(testSecret, 60))
	admin, err := svc.CreateAdmin(context.Background(), "admin", "long-enough")

	require.NoError(t, err)
	assert.NotEqual(t, "long-enough", admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("long-enough")))
}

func TestCreateAdminShortPassword(t *testing.T) {
	repo := new(MockAdminRepo)
	svc := service.NewAuthService(repo, security.NewTokenManager(testSecret, 60))

	_, err := svc.CreateAdmin(context.Background(), "admin", "short")

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "password", verr.Field)
	repo.AssertNotCalled(t, "Create")
}
