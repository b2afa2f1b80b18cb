package postgres

import (
	"database/sql"

	"robimar-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ClientRepository
	repository.MaterialRepository
	repository.RentalRepository
	repository.AdminRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		ClientRepository:   NewClientRepository(db),
		MaterialRepository: NewMaterialRepository(db),
		RentalRepository:   NewRentalRepository(db),
		AdminRepository:    NewAdminRepository(db),
	}
}
