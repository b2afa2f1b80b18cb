package jobs

import (
	"context"

	"robimar-backend/internal/logger"
)

// AuditStock compares every material's available counter against the value
// implied by its active rentals (total minus reserved units) and logs any
// discrepancy. Restores are deliberately not capped at the total, so an
// available count above the total is possible and reported here rather
// than silently corrected. The job only reads; it never adjusts stock.
func (jr *JobRunner) AuditStock() {
	jr.runWithRecovery("AuditStock", func() {
		ctx := context.Background()

		query := `
			SELECT m.id, m.name, m.stock_total, m.stock_available,
			       COALESCE(SUM(li.quantity) FILTER (WHERE r.status = 'ACTIVE'), 0) AS reserved
			FROM materials m
			LEFT JOIN rental_line_items li ON li.material_id = m.id
			LEFT JOIN rentals r ON r.id = li.rental_id
			GROUP BY m.id, m.name, m.stock_total, m.stock_available
			ORDER BY m.id
		`

		rows, err := jr.db.QueryContext(ctx, query)
		if err != nil {
			logger.Error("Failed to audit stock", "error", err)
			return
		}
		defer rows.Close()

		audited := 0
		flagged := 0
		for rows.Next() {
			var id, total, available, reserved int32
			var name string
			if err := rows.Scan(&id, &name, &total, &available, &reserved); err != nil {
				logger.Error("Failed to scan stock audit row", "error", err)
				continue
			}
			audited++

			expected := total - reserved
			if available != expected {
				flagged++
				logger.Warn("Stock counter does not match active rentals",
					"material_id", id,
					"material", name,
					"stock_total", total,
					"stock_available", available,
					"reserved", reserved,
					"expected_available", expected,
				)
			}
			if available > total {
				flagged++
				logger.Warn("Available stock exceeds total stock",
					"material_id", id,
					"material", name,
					"stock_total", total,
					"stock_available", available,
				)
			}
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating stock audit rows", "error", err)
			return
		}

		logger.Info("Stock audit finished", "materials", audited, "flagged", flagged)
	})
}
