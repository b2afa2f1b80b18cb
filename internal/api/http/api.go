// Package http exposes the administrative JSON API: clients, materials and
// rentals, plus the login endpoint issuing admin session tokens.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"robimar-backend/internal/domain"
	"robimar-backend/internal/logger"
	"robimar-backend/internal/security"
	"robimar-backend/internal/service"
)

type API struct {
	clients   service.ClientService
	materials service.MaterialService
	rentals   service.RentalService
	auth      service.AuthService
	tokens    security.TokenManager
}

func NewAPI(
	clients service.ClientService,
	materials service.MaterialService,
	rentals service.RentalService,
	auth service.AuthService,
	tokens security.TokenManager,
) *API {
	return &API{
		clients:   clients,
		materials: materials,
		rentals:   rentals,
		auth:      auth,
		tokens:    tokens,
	}
}

func NewRouter(api *API) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestIDMiddleware, LoggingMiddleware)

	r.HandleFunc("/api/v1/login", api.handleLogin).Methods(http.MethodPost)

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.Use(api.AuthMiddleware)

	v1.HandleFunc("/clients", api.handleListClients).Methods(http.MethodGet)
	v1.HandleFunc("/clients", api.handleCreateClient).Methods(http.MethodPost)
	v1.HandleFunc("/clients/{id}", api.handleGetClient).Methods(http.MethodGet)
	v1.HandleFunc("/clients/{id}", api.handleUpdateClient).Methods(http.MethodPut)
	v1.HandleFunc("/clients/{id}", api.handleDeleteClient).Methods(http.MethodDelete)

	v1.HandleFunc("/materials", api.handleListMaterials).Methods(http.MethodGet)
	v1.HandleFunc("/materials", api.handleCreateMaterial).Methods(http.MethodPost)
	v1.HandleFunc("/materials/{id}", api.handleGetMaterial).Methods(http.MethodGet)
	v1.HandleFunc("/materials/{id}", api.handleUpdateMaterial).Methods(http.MethodPut)
	v1.HandleFunc("/materials/{id}/enable", api.handleEnableMaterial).Methods(http.MethodPost)
	v1.HandleFunc("/materials/{id}/disable", api.handleDisableMaterial).Methods(http.MethodPost)

	// Bulk transitions are registered ahead of the single-rental routes.
	v1.HandleFunc("/rentals/return", api.handleBulkReturn).Methods(http.MethodPost)
	v1.HandleFunc("/rentals/cancel", api.handleBulkCancel).Methods(http.MethodPost)
	v1.HandleFunc("/rentals", api.handleListRentals).Methods(http.MethodGet)
	v1.HandleFunc("/rentals", api.handleCreateRental).Methods(http.MethodPost)
	v1.HandleFunc("/rentals/{id}", api.handleGetRental).Methods(http.MethodGet)
	v1.HandleFunc("/rentals/{id}/lines", api.handleAddLineItem).Methods(http.MethodPost)
	v1.HandleFunc("/rentals/{id}/lines/{lineID}", api.handleRemoveLineItem).Methods(http.MethodDelete)
	v1.HandleFunc("/rentals/{id}/return", api.handleReturnRental).Methods(http.MethodPost)
	v1.HandleFunc("/rentals/{id}/cancel", api.handleCancelRental).Methods(http.MethodPost)

	return r
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var stockErr *domain.InsufficientStockError
	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error":   "validation failed",
			"field":   validationErr.Field,
			"message": validationErr.Message,
		})
	case errors.As(err, &stockErr):
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":       stockErr.Error(),
			"material_id": stockErr.MaterialID,
			"requested":   stockErr.Requested,
			"available":   stockErr.Available,
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, domain.ErrRentalNotActive):
		writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		logger.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: name, Message: "must be a positive integer"}
	}
	return int32(id), nil
}

func queryInt32(r *http.Request, name string, fallback int32) int32 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
