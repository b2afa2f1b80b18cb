package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"
)

type materialRepository struct {
	db *sql.DB
}

func NewMaterialRepository(db *sql.DB) repository.MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, m *domain.Material) error {
	query := `INSERT INTO materials (name, description, price_per_day_cents, stock_total, stock_available, enabled, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	return r.db.QueryRowContext(ctx, query, m.Name, m.Description, m.PricePerDayCents, m.StockTotal, m.StockAvailable, m.Enabled, time.Now()).Scan(&m.ID)
}

func (r *materialRepository) GetByID(ctx context.Context, id int32) (*domain.Material, error) {
	m := &domain.Material{}
	query := `SELECT id, name, COALESCE(description, ''), price_per_day_cents, stock_total, stock_available, enabled, created_on FROM materials WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Name, &m.Description, &m.PricePerDayCents, &m.StockTotal, &m.StockAvailable, &m.Enabled, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Update writes the descriptive fields only. The stock counters move
// exclusively through DeductStock and RestoreStock.
func (r *materialRepository) Update(ctx context.Context, m *domain.Material) error {
	query := `UPDATE materials SET name=$1, description=$2, price_per_day_cents=$3, stock_total=$4, enabled=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, m.Name, m.Description, m.PricePerDayCents, m.StockTotal, m.Enabled, m.ID)
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

func (r *materialRepository) SetEnabled(ctx context.Context, id int32, enabled bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE materials SET enabled = $2 WHERE id = $1`, id, enabled)
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

func (r *materialRepository) List(ctx context.Context, enabledOnly bool, page, pageSize int32) ([]domain.Material, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, name, COALESCE(description, ''), price_per_day_cents, stock_total, stock_available, enabled, created_on FROM materials`
	countQuery := `SELECT count(*) FROM materials`
	if enabledOnly {
		query += ` WHERE enabled`
		countQuery += ` WHERE enabled`
	}
	query += ` ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var materials []domain.Material
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.PricePerDayCents, &m.StockTotal, &m.StockAvailable, &m.Enabled, &m.CreatedOn); err != nil {
			return nil, 0, err
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, err
	}
	return materials, count, nil
}

func (r *materialRepository) DeductStock(ctx context.Context, materialID, quantity int32) error {
	return deductStock(ctx, r.db, materialID, quantity)
}

func (r *materialRepository) RestoreStock(ctx context.Context, materialID, quantity int32) error {
	return restoreStock(ctx, r.db, materialID, quantity)
}
