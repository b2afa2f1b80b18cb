package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"

	"github.com/lib/pq"
)

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// mapClientUniqueViolation converts duplicate-key errors on the clients
// table into field-level validation errors.
func mapClientUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		switch pqErr.Constraint {
		case "clients_rut_key":
			return &domain.ValidationError{Field: "rut", Message: "a client with this RUT already exists"}
		case "clients_email_key":
			return &domain.ValidationError{Field: "email", Message: "a client with this email already exists"}
		}
	}
	return err
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (rut, name, phone, email, created_on) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, c.RUT, c.Name, c.Phone, c.Email, time.Now()).Scan(&c.ID)
	if err != nil {
		return mapClientUniqueViolation(err)
	}
	return nil
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT id, rut, name, phone, email, created_on FROM clients WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.RUT, &c.Name, &c.Phone, &c.Email, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET rut=$1, name=$2, phone=$3, email=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, c.RUT, c.Name, c.Phone, c.Email, c.ID)
	if err != nil {
		return mapClientUniqueViolation(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *clientRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, rut, name, phone, email, created_on FROM clients ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.RUT, &c.Name, &c.Phone, &c.Email, &c.CreatedOn); err != nil {
			return nil, 0, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM clients`).Scan(&count); err != nil {
		return nil, 0, err
	}
	return clients, count, nil
}
