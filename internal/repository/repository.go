package repository

import (
	"context"

	"robimar-backend/internal/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error)
}

type MaterialRepository interface {
	Create(ctx context.Context, material *domain.Material) error
	GetByID(ctx context.Context, id int32) (*domain.Material, error)
	Update(ctx context.Context, material *domain.Material) error
	SetEnabled(ctx context.Context, id int32, enabled bool) error
	List(ctx context.Context, enabledOnly bool, page, pageSize int32) ([]domain.Material, int32, error)

	// DeductStock fails with domain.InsufficientStockError when quantity
	// exceeds the available stock; nothing is mutated on failure.
	DeductStock(ctx context.Context, materialID, quantity int32) error
	// RestoreStock always succeeds for an existing material.
	RestoreStock(ctx context.Context, materialID, quantity int32) error
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	// GetByID returns the rental with client, line items and their
	// materials populated.
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	ListLineItems(ctx context.Context, rentalID int32) ([]domain.RentalLineItem, error)

	// AddLineItem inserts the line and deducts the material's stock in one
	// transaction. The owning rental must be ACTIVE.
	AddLineItem(ctx context.Context, item *domain.RentalLineItem) error
	// RemoveLineItem deletes the line, restoring stock only while the
	// owning rental is still ACTIVE.
	RemoveLineItem(ctx context.Context, rentalID, lineItemID int32) error
	// Close moves an ACTIVE rental to the given terminal status and
	// restores stock for every owned line item, in one transaction.
	// Returns domain.ErrRentalNotActive when the rental already left
	// ACTIVE, without touching stock.
	Close(ctx context.Context, rentalID int32, status domain.RentalStatus) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.AdminUser) error
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}
