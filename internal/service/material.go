package service

import (
	"context"
	"strings"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"
)

type materialService struct {
	materialRepo repository.MaterialRepository
}

func NewMaterialService(materialRepo repository.MaterialRepository) MaterialService {
	return &materialService{materialRepo: materialRepo}
}

func validateMaterial(m *domain.Material) error {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if m.PricePerDayCents < 0 {
		return &domain.ValidationError{Field: "price_per_day_cents", Message: "price must not be negative"}
	}
	if m.StockTotal < 0 {
		return &domain.ValidationError{Field: "stock_total", Message: "total stock must not be negative"}
	}
	return nil
}

func (s *materialService) AddMaterial(ctx context.Context, material *domain.Material) error {
	if err := validateMaterial(material); err != nil {
		return err
	}
	if material.StockAvailable == 0 {
		// A new material starts with its whole stock available.
		material.StockAvailable = material.StockTotal
	}
	if material.StockAvailable < 0 || material.StockAvailable > material.StockTotal {
		return &domain.ValidationError{Field: "stock_available", Message: "available stock must be between 0 and the total stock"}
	}
	return s.materialRepo.Create(ctx, material)
}

func (s *materialService) GetMaterial(ctx context.Context, id int32) (*domain.Material, error) {
	return s.materialRepo.GetByID(ctx, id)
}

// UpdateMaterial changes the descriptive fields. The available counter is
// left alone; it only moves through rental operations.
func (s *materialService) UpdateMaterial(ctx context.Context, material *domain.Material) error {
	if err := validateMaterial(material); err != nil {
		return err
	}
	return s.materialRepo.Update(ctx, material)
}

func (s *materialService) SetMaterialEnabled(ctx context.Context, id int32, enabled bool) error {
	return s.materialRepo.SetEnabled(ctx, id, enabled)
}

func (s *materialService) ListMaterials(ctx context.Context, enabledOnly bool, page, pageSize int32) ([]domain.Material, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.materialRepo.List(ctx, enabledOnly, page, pageSize)
}
