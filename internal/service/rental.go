package service

import (
	"context"
	"fmt"
	"time"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"
)

const dateLayout = "2006-01-02"

type rentalService struct {
	rentalRepo   repository.RentalRepository
	materialRepo repository.MaterialRepository
	clientRepo   repository.ClientRepository
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	materialRepo repository.MaterialRepository,
	clientRepo repository.ClientRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		materialRepo: materialRepo,
		clientRepo:   clientRepo,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, clientID int32, startDate, returnDate string) (*domain.Rental, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "start_date", Message: "expected yyyy-mm-dd"}
	}
	ret, err := time.Parse(dateLayout, returnDate)
	if err != nil {
		return nil, &domain.ValidationError{Field: "return_date", Message: "expected yyyy-mm-dd"}
	}
	if ret.Before(start) {
		return nil, &domain.ValidationError{Field: "return_date", Message: "return date must not precede the start date"}
	}

	if _, err := s.clientRepo.GetByID(ctx, clientID); err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		ClientID:   clientID,
		StartDate:  start,
		ReturnDate: ret,
		Status:     domain.RentalStatusActive,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.rentalRepo.List(ctx, status, page, pageSize)
}

// AddLineItem reserves stock for the material and attaches the line to the
// rental. The repository performs both as one transaction, so a failed
// deduction leaves no line behind.
func (s *rentalService) AddLineItem(ctx context.Context, rentalID, materialID, quantity int32) (*domain.RentalLineItem, error) {
	if quantity <= 0 {
		return nil, &domain.ValidationError{Field: "quantity", Message: "quantity must be positive"}
	}

	material, err := s.materialRepo.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if !material.Enabled {
		return nil, &domain.ValidationError{Field: "material_id", Message: "material is disabled"}
	}

	item := &domain.RentalLineItem{
		RentalID:   rentalID,
		MaterialID: materialID,
		Quantity:   quantity,
	}
	if err := s.rentalRepo.AddLineItem(ctx, item); err != nil {
		return nil, err
	}
	item.Material = material
	return item, nil
}

func (s *rentalService) RemoveLineItem(ctx context.Context, rentalID, lineItemID int32) error {
	return s.rentalRepo.RemoveLineItem(ctx, rentalID, lineItemID)
}

func (s *rentalService) ReturnRental(ctx context.Context, id int32) (string, error) {
	if err := s.rentalRepo.Close(ctx, id, domain.RentalStatusReturned); err != nil {
		return "", err
	}
	return "materials returned and stock restored", nil
}

func (s *rentalService) CancelRental(ctx context.Context, id int32) (string, error) {
	if err := s.rentalRepo.Close(ctx, id, domain.RentalStatusCancelled); err != nil {
		return "", err
	}
	return "rental cancelled and stock restored", nil
}

// ReturnRentals applies the return transition to each rental independently
// and reports one outcome per rental; a failure never aborts the batch.
func (s *rentalService) ReturnRentals(ctx context.Context, ids []int32) []domain.BatchOutcome {
	return s.closeMany(ctx, ids, s.ReturnRental)
}

// CancelRentals mirrors ReturnRentals for the cancel transition.
func (s *rentalService) CancelRentals(ctx context.Context, ids []int32) []domain.BatchOutcome {
	return s.closeMany(ctx, ids, s.CancelRental)
}

func (s *rentalService) closeMany(ctx context.Context, ids []int32, op func(context.Context, int32) (string, error)) []domain.BatchOutcome {
	outcomes := make([]domain.BatchOutcome, 0, len(ids))
	for _, id := range ids {
		msg, err := op(ctx, id)
		if err != nil {
			msg = err.Error()
		}
		outcomes = append(outcomes, domain.BatchOutcome{
			RentalID: id,
			Message:  fmt.Sprintf("rental #%d: %s", id, msg),
		})
	}
	return outcomes
}
