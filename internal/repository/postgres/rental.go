package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	query := `INSERT INTO rentals (client_id, start_date, return_date, status, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rental.ClientID, rental.StartDate, rental.ReturnDate, rental.Status, time.Now()).Scan(&rental.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rental := &domain.Rental{Client: &domain.Client{}}
	query := `SELECT r.id, r.client_id, r.start_date, r.return_date, r.status, r.created_on,
	                 c.id, c.rut, c.name, c.phone, c.email, c.created_on
	          FROM rentals r JOIN clients c ON c.id = r.client_id WHERE r.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rental.ID, &rental.ClientID, &rental.StartDate, &rental.ReturnDate, &rental.Status, &rental.CreatedOn,
		&rental.Client.ID, &rental.Client.RUT, &rental.Client.Name, &rental.Client.Phone, &rental.Client.Email, &rental.Client.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.ListLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	rental.LineItems = items
	return rental, nil
}

func (r *rentalRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, client_id, start_date, return_date, status, created_on FROM rentals`
	countQuery := `SELECT count(*) FROM rentals`
	args := []any{pageSize, offset}
	if status != "" {
		query += ` WHERE status = $3`
		countQuery += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_on DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.ClientID, &rt.StartDate, &rt.ReturnDate, &rt.Status, &rt.CreatedOn); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var count int32
	var countArgs []any
	if status != "" {
		countArgs = append(countArgs, status)
	}
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, err
	}
	return rentals, count, nil
}

func (r *rentalRepository) ListLineItems(ctx context.Context, rentalID int32) ([]domain.RentalLineItem, error) {
	query := `SELECT li.id, li.rental_id, li.material_id, li.quantity,
	                 m.id, m.name, COALESCE(m.description, ''), m.price_per_day_cents, m.stock_total, m.stock_available, m.enabled, m.created_on
	          FROM rental_line_items li JOIN materials m ON m.id = li.material_id
	          WHERE li.rental_id = $1 ORDER BY li.id`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.RentalLineItem
	for rows.Next() {
		li := domain.RentalLineItem{Material: &domain.Material{}}
		m := li.Material
		if err := rows.Scan(&li.ID, &li.RentalID, &li.MaterialID, &li.Quantity,
			&m.ID, &m.Name, &m.Description, &m.PricePerDayCents, &m.StockTotal, &m.StockAvailable, &m.Enabled, &m.CreatedOn); err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return items, rows.Err()
}

// AddLineItem creates the line and deducts the material's stock as one
// logical unit: if the deduction is impossible the insert never happens.
func (r *rentalRepository) AddLineItem(ctx context.Context, item *domain.RentalLineItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var status domain.RentalStatus
	err = tx.QueryRowContext(ctx, `SELECT status FROM rentals WHERE id = $1`, item.RentalID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	if status != domain.RentalStatusActive {
		return domain.ErrRentalNotActive
	}

	if err := deductStock(ctx, tx, item.MaterialID, item.Quantity); err != nil {
		return err
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO rental_line_items (rental_id, material_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
		item.RentalID, item.MaterialID, item.Quantity).Scan(&item.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// RemoveLineItem deletes the line. Stock is restored only while the owning
// rental is still active; a closed rental already had its stock credited
// back when it left the active state.
func (r *rentalRepository) RemoveLineItem(ctx context.Context, rentalID, lineItemID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var materialID, quantity int32
	var status domain.RentalStatus
	err = tx.QueryRowContext(ctx,
		`SELECT li.material_id, li.quantity, r.status
		 FROM rental_line_items li JOIN rentals r ON r.id = li.rental_id
		 WHERE li.id = $1 AND li.rental_id = $2`,
		lineItemID, rentalID).Scan(&materialID, &quantity, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}

	if status == domain.RentalStatusActive {
		if err := restoreStock(ctx, tx, materialID, quantity); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rental_line_items WHERE id = $1`, lineItemID); err != nil {
		return err
	}

	return tx.Commit()
}

// Close moves an active rental to a terminal status and restores the stock
// of every line item. The status change is guarded on the prior state, so
// invoking it on an already closed rental never credits stock twice.
func (r *rentalRepository) Close(ctx context.Context, rentalID int32, status domain.RentalStatus) error {
	if !status.Terminal() {
		return fmt.Errorf("cannot close rental %d to status %s", rentalID, status)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE rentals SET status = $2 WHERE id = $1 AND status = $3`,
		rentalID, status, domain.RentalStatusActive)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		var current domain.RentalStatus
		err = tx.QueryRowContext(ctx, `SELECT status FROM rentals WHERE id = $1`, rentalID).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return err
		}
		return domain.ErrRentalNotActive
	}

	rows, err := tx.QueryContext(ctx, `SELECT material_id, quantity FROM rental_line_items WHERE rental_id = $1`, rentalID)
	if err != nil {
		return err
	}
	type line struct{ materialID, quantity int32 }
	var lines []line
	for rows.Next() {
		var l line
		if err := rows.Scan(&l.materialID, &l.quantity); err != nil {
			rows.Close()
			return err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	for _, l := range lines {
		if err := restoreStock(ctx, tx, l.materialID, l.quantity); err != nil {
			return err
		}
	}

	return tx.Commit()
}
