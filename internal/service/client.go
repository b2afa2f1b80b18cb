package service

import (
	"context"
	"strings"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/repository"
	"robimar-backend/internal/validation"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

// normalizeAndValidate runs on every client write. A purely numeric RUT
// gets its check digit appended; a RUT already carrying one is kept as is.
func normalizeAndValidate(c *domain.Client) error {
	c.RUT = validation.NormalizeRUT(strings.TrimSpace(c.RUT))
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)

	if c.RUT == "" {
		return &domain.ValidationError{Field: "rut", Message: "RUT is required"}
	}
	if c.Name == "" {
		return &domain.ValidationError{Field: "name", Message: "name is required"}
	}
	if !validation.IsValidPhone(c.Phone) {
		return &domain.ValidationError{Field: "phone", Message: "phone must contain exactly 9 digits"}
	}
	if !validation.IsValidEmail(c.Email) {
		return &domain.ValidationError{Field: "email", Message: "email must look like user@domain.tld"}
	}
	return nil
}

func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) error {
	if err := normalizeAndValidate(client); err != nil {
		return err
	}
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) error {
	if err := normalizeAndValidate(client); err != nil {
		return err
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *clientService) DeleteClient(ctx context.Context, id int32) error {
	return s.clientRepo.Delete(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context, page, pageSize int32) ([]domain.Client, int32, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return s.clientRepo.List(ctx, page, pageSize)
}
