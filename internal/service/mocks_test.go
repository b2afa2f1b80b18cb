package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"robimar-backend/internal/domain"
)

// MockClientRepo
type MockClientRepo struct {
	mock.Mock
}

func (m *MockClientRepo) Create(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}
func (m *MockClientRepo) Update(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}
func (m *MockClientRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockClientRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Client), args.Get(1).(int32), args.Error(2)
}

// MockMaterialRepo
type MockMaterialRepo struct {
	mock.Mock
}

func (m *MockMaterialRepo) Create(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}
func (m *MockMaterialRepo) GetByID(ctx context.Context, id int32) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}
func (m *MockMaterialRepo) Update(ctx context.Context, material *domain.Material) error {
	args := m.Called(ctx, material)
	return args.Error(0)
}
func (m *MockMaterialRepo) SetEnabled(ctx context.Context, id int32, enabled bool) error {
	args := m.Called(ctx, id, enabled)
	return args.Error(0)
}
func (m *MockMaterialRepo) List(ctx context.Context, enabledOnly bool, page, pageSize int32) ([]domain.Material, int32, error) {
	args := m.Called(ctx, enabledOnly, page, pageSize)
	return args.Get(0).([]domain.Material), args.Get(1).(int32), args.Error(2)
}
func (m *MockMaterialRepo) DeductStock(ctx context.Context, materialID, quantity int32) error {
	args := m.Called(ctx, materialID, quantity)
	return args.Error(0)
}
func (m *MockMaterialRepo) RestoreStock(ctx context.Context, materialID, quantity int32) error {
	args := m.Called(ctx, materialID, quantity)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}
func (m *MockRentalRepo) ListLineItems(ctx context.Context, rentalID int32) ([]domain.RentalLineItem, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.RentalLineItem), args.Error(1)
}
func (m *MockRentalRepo) AddLineItem(ctx context.Context, item *domain.RentalLineItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockRentalRepo) RemoveLineItem(ctx context.Context, rentalID, lineItemID int32) error {
	args := m.Called(ctx, rentalID, lineItemID)
	return args.Error(0)
}
func (m *MockRentalRepo) Close(ctx context.Context, rentalID int32, status domain.RentalStatus) error {
	args := m.Called(ctx, rentalID, status)
	return args.Error(0)
}

// MockAdminRepo
type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.AdminUser) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}
func (m *MockAdminRepo) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AdminUser), args.Error(1)
}
