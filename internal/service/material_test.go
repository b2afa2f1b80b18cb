package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/service"
)

func TestAddMaterialDefaultsAvailableStock(t *testing.T) {
	repo := new(MockMaterialRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := service.NewMaterialService(repo)
	material := &domain.Material{Name: "Betonera", PricePerDayCents: 12000, StockTotal: 5}
	err := svc.AddMaterial(context.Background(), material)

	require.NoError(t, err)
	assert.Equal(t, int32(5), material.StockAvailable)
	repo.AssertExpectations(t)
}

func TestAddMaterialValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Material)
		field  string
	}{
		{"blank name", func(m *domain.Material) { m.Name = "   " }, "name"},
		{"negative price", func(m *domain.Material) { m.PricePerDayCents = -1 }, "price_per_day_cents"},
		{"negative total", func(m *domain.Material) { m.StockTotal = -2 }, "stock_total"},
		{"available above total", func(m *domain.Material) { m.StockAvailable = 9 }, "stock_available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockMaterialRepo)
			svc := service.NewMaterialService(repo)

			material := &domain.Material{Name: "Betonera", PricePerDayCents: 12000, StockTotal: 5}
			tt.mutate(material)
			err := svc.AddMaterial(context.Background(), material)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestUpdateMaterialValidates(t *testing.T) {
	repo := new(MockMaterialRepo)
	svc := service.NewMaterialService(repo)

	err := svc.UpdateMaterial(context.Background(), &domain.Material{ID: 1, Name: ""})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	repo.AssertNotCalled(t, "Update")
}

func TestListMaterialsClampsPagination(t *testing.T) {
	repo := new(MockMaterialRepo)
	repo.On("List", mock.Anything, true, int32(1), int32(20)).
		Return([]domain.Material{}, int32(0), nil)

	svc := service.NewMaterialService(repo)
	_, _, err := svc.ListMaterials(context.Background(), true, -3, 0)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
