package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.AdminUser) error {
	query := `INSERT INTO admin_users (username, password_hash, created_on) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Username, a.PasswordHash, time.Now()).Scan(&a.ID)
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	a := &domain.AdminUser{}
	query := `SELECT id, username, password_hash, created_on FROM admin_users WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}
