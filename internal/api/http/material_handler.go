package http

import (
	"encoding/json"
	"net/http"

	"robimar-backend/internal/domain"
)

type materialRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	PricePerDayCents int32  `json:"price_per_day_cents"`
	StockTotal       int32  `json:"stock_total"`
	StockAvailable   int32  `json:"stock_available"`
	Enabled          *bool  `json:"enabled"`
}

func (a *API) handleCreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req materialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	material := &domain.Material{
		Name:             req.Name,
		Description:      req.Description,
		PricePerDayCents: req.PricePerDayCents,
		StockTotal:       req.StockTotal,
		StockAvailable:   req.StockAvailable,
		Enabled:          true,
	}
	if req.Enabled != nil {
		material.Enabled = *req.Enabled
	}
	if err := a.materials.AddMaterial(r.Context(), material); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, material)
}

func (a *API) handleGetMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	material, err := a.materials.GetMaterial(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, material)
}

func (a *API) handleUpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	current, err := a.materials.GetMaterial(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	var req materialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	current.Name = req.Name
	current.Description = req.Description
	current.PricePerDayCents = req.PricePerDayCents
	current.StockTotal = req.StockTotal
	if req.Enabled != nil {
		current.Enabled = *req.Enabled
	}
	if err := a.materials.UpdateMaterial(r.Context(), current); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, current)
}

func (a *API) handleEnableMaterial(w http.ResponseWriter, r *http.Request) {
	a.setMaterialEnabled(w, r, true)
}

func (a *API) handleDisableMaterial(w http.ResponseWriter, r *http.Request) {
	a.setMaterialEnabled(w, r, false)
}

func (a *API) setMaterialEnabled(w http.ResponseWriter, r *http.Request, enabled bool) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.materials.SetMaterialEnabled(r.Context(), id, enabled); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleListMaterials(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	enabledOnly := r.URL.Query().Get("enabled") == "true"
	materials, total, err := a.materials.ListMaterials(r.Context(), enabledOnly, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"materials": materials, "total": total})
}
