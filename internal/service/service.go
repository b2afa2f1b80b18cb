package service

import (
	"context"

	"robimar-backend/internal/domain"
)

type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, id int32) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) error
	DeleteClient(ctx context.Context, id int32) error
	ListClients(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error)
}

type MaterialService interface {
	AddMaterial(ctx context.Context, material *domain.Material) error
	GetMaterial(ctx context.Context, id int32) (*domain.Material, error)
	UpdateMaterial(ctx context.Context, material *domain.Material) error
	SetMaterialEnabled(ctx context.Context, id int32, enabled bool) error
	ListMaterials(ctx context.Context, enabledOnly bool, page, pageSize int32) ([]domain.Material, int32, error)
}

type RentalService interface {
	CreateRental(ctx context.Context, clientID int32, startDate, returnDate string) (*domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	AddLineItem(ctx context.Context, rentalID, materialID, quantity int32) (*domain.RentalLineItem, error)
	RemoveLineItem(ctx context.Context, rentalID, lineItemID int32) error
	ReturnRental(ctx context.Context, id int32) (string, error)
	CancelRental(ctx context.Context, id int32) (string, error)
	ReturnRentals(ctx context.Context, ids []int32) []domain.BatchOutcome
	CancelRentals(ctx context.Context, ids []int32) []domain.BatchOutcome
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	CreateAdmin(ctx context.Context, username, password string) (*domain.AdminUser, error)
}
