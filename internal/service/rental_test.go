package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/service"
)

func newRentalService() (service.RentalService, *MockRentalRepo, *MockMaterialRepo, *MockClientRepo) {
	rentalRepo := new(MockRentalRepo)
	materialRepo := new(MockMaterialRepo)
	clientRepo := new(MockClientRepo)
	return service.NewRentalService(rentalRepo, materialRepo, clientRepo), rentalRepo, materialRepo, clientRepo
}

func TestCreateRental(t *testing.T) {
	svc, rentalRepo, _, clientRepo := newRentalService()
	clientRepo.On("GetByID", mock.Anything, int32(7)).
		Return(&domain.Client{ID: 7, RUT: "12345678-5"}, nil)
	rentalRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	rental, err := svc.CreateRental(context.Background(), 7, "2026-03-01", "2026-03-04")

	require.NoError(t, err)
	assert.Equal(t, domain.RentalStatusActive, rental.Status)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), rental.StartDate)
	assert.Equal(t, int32(3), rental.RentalDays())
	rentalRepo.AssertExpectations(t)
}

func TestCreateRentalRejectsBadDates(t *testing.T) {
	tests := []struct {
		name       string
		start, ret string
		field      string
	}{
		{"malformed start", "01-03-2026", "2026-03-04", "start_date"},
		{"malformed return", "2026-03-01", "tomorrow", "return_date"},
		{"inverted range", "2026-03-04", "2026-03-01", "return_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rentalRepo, _, _ := newRentalService()
			_, err := svc.CreateRental(context.Background(), 7, tt.start, tt.ret)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			rentalRepo.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateRentalUnknownClient(t *testing.T) {
	svc, rentalRepo, _, clientRepo := newRentalService()
	clientRepo.On("GetByID", mock.Anything, int32(99)).
		Return(nil, domain.ErrNotFound)

	_, err := svc.CreateRental(context.Background(), 99, "2026-03-01", "2026-03-04")

	require.ErrorIs(t, err, domain.ErrNotFound)
	rentalRepo.AssertNotCalled(t, "Create")
}

func TestAddLineItem(t *testing.T) {
	svc, rentalRepo, materialRepo, _ := newRentalService()
	materialRepo.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Material{ID: 3, Name: "Andamio", PricePerDayCents: 1500, Enabled: true}, nil)
	rentalRepo.On("AddLineItem", mock.Anything, mock.Anything).Return(nil)

	item, err := svc.AddLineItem(context.Background(), 1, 3, 4)

	require.NoError(t, err)
	assert.Equal(t, int32(4), item.Quantity)
	require.NotNil(t, item.Material)
	assert.Equal(t, "Andamio", item.Material.Name)
	rentalRepo.AssertExpectations(t)
}

func TestAddLineItemRejectsNonPositiveQuantity(t *testing.T) {
	svc, rentalRepo, materialRepo, _ := newRentalService()

	_, err := svc.AddLineItem(context.Background(), 1, 3, 0)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Field)
	materialRepo.AssertNotCalled(t, "GetByID")
	rentalRepo.AssertNotCalled(t, "AddLineItem")
}

func TestAddLineItemRejectsDisabledMaterial(t *testing.T) {
	svc, rentalRepo, materialRepo, _ := newRentalService()
	materialRepo.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Material{ID: 3, Name: "Andamio", Enabled: false}, nil)

	_, err := svc.AddLineItem(context.Background(), 1, 3, 2)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "material_id", verr.Field)
	rentalRepo.AssertNotCalled(t, "AddLineItem")
}

func TestAddLineItemPropagatesInsufficientStock(t *testing.T) {
	svc, rentalRepo, materialRepo, _ := newRentalService()
	materialRepo.On("GetByID", mock.Anything, int32(3)).
		Return(&domain.Material{ID: 3, Name: "Andamio", Enabled: true}, nil)
	stockErr := &domain.InsufficientStockError{
		MaterialID: 3, MaterialName: "Andamio", Requested: 10, Available: 2,
	}
	rentalRepo.On("AddLineItem", mock.Anything, mock.Anything).Return(stockErr)

	_, err := svc.AddLineItem(context.Background(), 1, 3, 10)

	var iserr *domain.InsufficientStockError
	require.ErrorAs(t, err, &iserr)
	assert.Equal(t, int32(2), iserr.Available)
}

func TestReturnRental(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService()
	rentalRepo.On("Close", mock.Anything, int32(5), domain.RentalStatusReturned).Return(nil)

	msg, err := svc.ReturnRental(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "materials returned and stock restored", msg)
	rentalRepo.AssertExpectations(t)
}

func TestCancelRental(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService()
	rentalRepo.On("Close", mock.Anything, int32(5), domain.RentalStatusCancelled).Return(nil)

	msg, err := svc.CancelRental(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, "rental cancelled and stock restored", msg)
}

func TestReturnRentalAlreadyClosed(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService()
	rentalRepo.On("Close", mock.Anything, int32(5), domain.RentalStatusReturned).
		Return(domain.ErrRentalNotActive)

	_, err := svc.ReturnRental(context.Background(), 5)

	require.ErrorIs(t, err, domain.ErrRentalNotActive)
}

func TestReturnRentalsReportsPerRental(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService()
	rentalRepo.On("Close", mock.Anything, int32(1), domain.RentalStatusReturned).Return(nil)
	rentalRepo.On("Close", mock.Anything, int32(2), domain.RentalStatusReturned).
		Return(domain.ErrRentalNotActive)
	rentalRepo.On("Close", mock.Anything, int32(3), domain.RentalStatusReturned).Return(nil)

	outcomes := svc.ReturnRentals(context.Background(), []int32{1, 2, 3})

	require.Len(t, outcomes, 3)
	assert.Equal(t, "rental #1: materials returned and stock restored", outcomes[0].Message)
	assert.Equal(t, "rental #2: "+domain.ErrRentalNotActive.Error(), outcomes[1].Message)
	assert.Equal(t, "rental #3: materials returned and stock restored", outcomes[2].Message)
	rentalRepo.AssertExpectations(t)
}

func TestCancelRentalsEmptySelection(t *testing.T) {
	svc, rentalRepo, _, _ := newRentalService()

	outcomes := svc.CancelRentals(context.Background(), nil)

	assert.Empty(t, outcomes)
	rentalRepo.AssertNotCalled(t, "Close")
}
