package http

import (
	"encoding/json"
	"net/http"

	"robimar-backend/internal/domain"
)

type clientRequest struct {
	RUT   string `json:"rut"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (a *API) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	client := &domain.Client{RUT: req.RUT, Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := a.clients.CreateClient(r.Context(), client); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, client)
}

func (a *API) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	client, err := a.clients.GetClient(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (a *API) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	client := &domain.Client{ID: id, RUT: req.RUT, Name: req.Name, Phone: req.Phone, Email: req.Email}
	if err := a.clients.UpdateClient(r.Context(), client); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, client)
}

func (a *API) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.clients.DeleteClient(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListClients(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	clients, total, err := a.clients.ListClients(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"clients": clients, "total": total})
}
