package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrRentalNotActive = errors.New("rental is not active")
)

// ValidationError reports a rejected field on an entity write.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InsufficientStockError is returned when a deduction would drive a
// material's available stock negative. The triggering write is aborted
// and no stock is mutated.
type InsufficientStockError struct {
	MaterialID   int32
	MaterialName string
	Requested    int32
	Available    int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for material %d: requested %d, available %d", e.MaterialID, e.Requested, e.Available)
}
