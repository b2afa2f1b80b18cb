package postgres

import (
	"context"
	"database/sql"
	"errors"

	"robimar-backend/internal/domain"
)

// execer is satisfied by both *sql.DB and *sql.Tx so the stock helpers can
// run standalone or inside a surrounding transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// deductStock decrements the available stock only when enough units remain.
// The guard and the decrement happen in one statement, so concurrent
// deductions against the same material cannot drive the counter negative.
func deductStock(ctx context.Context, ex execer, materialID, quantity int32) error {
	res, err := ex.ExecContext(ctx,
		`UPDATE materials SET stock_available = stock_available - $2 WHERE id = $1 AND stock_available >= $2`,
		materialID, quantity)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}

	var name string
	var available int32
	err = ex.QueryRowContext(ctx, `SELECT name, stock_available FROM materials WHERE id = $1`, materialID).Scan(&name, &available)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	return &domain.InsufficientStockError{
		MaterialID:   materialID,
		MaterialName: name,
		Requested:    quantity,
		Available:    available,
	}
}

// restoreStock credits previously deducted units back. The upper bound is
// intentionally not enforced here; the stock audit job reports materials
// whose available count exceeds the total.
func restoreStock(ctx context.Context, ex execer, materialID, quantity int32) error {
	res, err := ex.ExecContext(ctx,
		`UPDATE materials SET stock_available = stock_available + $2 WHERE id = $1`,
		materialID, quantity)
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
