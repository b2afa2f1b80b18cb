package http

import (
	"context"
	"encoding/json"
	"net/http"

	"robimar-backend/internal/domain"
)

type createRentalRequest struct {
	ClientID   int32  `json:"client_id"`
	StartDate  string `json:"start_date"`
	ReturnDate string `json:"return_date"`
}

type addLineItemRequest struct {
	MaterialID int32 `json:"material_id"`
	Quantity   int32 `json:"quantity"`
}

type bulkRequest struct {
	IDs []int32 `json:"ids"`
}

// lineItemView carries the derived pricing values alongside the stored
// line fields.
type lineItemView struct {
	ID             int32  `json:"id"`
	MaterialID     int32  `json:"material_id"`
	MaterialName   string `json:"material_name"`
	Quantity       int32  `json:"quantity"`
	UnitPriceCents int32  `json:"unit_price_cents"`
	TotalCents     int32  `json:"total_cents"`
}

type rentalView struct {
	ID         int32               `json:"id"`
	ClientID   int32               `json:"client_id"`
	Client     *domain.Client      `json:"client,omitempty"`
	StartDate  string              `json:"start_date"`
	ReturnDate string              `json:"return_date"`
	Status     domain.RentalStatus `json:"status"`
	RentalDays int32               `json:"rental_days"`
	TotalCents int32               `json:"total_cents"`
	LineItems  []lineItemView      `json:"line_items"`
}

func newRentalView(r *domain.Rental) rentalView {
	days := r.RentalDays()
	view := rentalView{
		ID:         r.ID,
		ClientID:   r.ClientID,
		Client:     r.Client,
		StartDate:  r.StartDate.Format("2006-01-02"),
		ReturnDate: r.ReturnDate.Format("2006-01-02"),
		Status:     r.Status,
		RentalDays: days,
		TotalCents: r.TotalCents(),
		LineItems:  make([]lineItemView, 0, len(r.LineItems)),
	}
	for i := range r.LineItems {
		li := &r.LineItems[i]
		name := ""
		if li.Material != nil {
			name = li.Material.Name
		}
		view.LineItems = append(view.LineItems, lineItemView{
			ID:             li.ID,
			MaterialID:     li.MaterialID,
			MaterialName:   name,
			Quantity:       li.Quantity,
			UnitPriceCents: li.UnitPriceCents(),
			TotalCents:     li.TotalCents(days),
		})
	}
	return view
}

func (a *API) handleCreateRental(w http.ResponseWriter, r *http.Request) {
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	rental, err := a.rentals.CreateRental(r.Context(), req.ClientID, req.StartDate, req.ReturnDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newRentalView(rental))
}

func (a *API) handleGetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	rental, err := a.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newRentalView(rental))
}

func (a *API) handleListRentals(w http.ResponseWriter, r *http.Request) {
	page := queryInt32(r, "page", 1)
	pageSize := queryInt32(r, "page_size", 20)
	status := r.URL.Query().Get("status")
	rentals, total, err := a.rentals.ListRentals(r.Context(), status, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]rentalView, 0, len(rentals))
	for i := range rentals {
		views = append(views, newRentalView(&rentals[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"rentals": views, "total": total})
}

func (a *API) handleAddLineItem(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req addLineItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	item, err := a.rentals.AddLineItem(r.Context(), rentalID, req.MaterialID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (a *API) handleRemoveLineItem(w http.ResponseWriter, r *http.Request) {
	rentalID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	lineID, err := pathID(r, "lineID")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.rentals.RemoveLineItem(r.Context(), rentalID, lineID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleReturnRental(w http.ResponseWriter, r *http.Request) {
	a.closeRental(w, r, a.rentals.ReturnRental)
}

func (a *API) handleCancelRental(w http.ResponseWriter, r *http.Request) {
	a.closeRental(w, r, a.rentals.CancelRental)
}

func (a *API) closeRental(w http.ResponseWriter, r *http.Request, op func(context.Context, int32) (string, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	msg, err := op(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (a *API) handleBulkReturn(w http.ResponseWriter, r *http.Request) {
	a.bulkClose(w, r, a.rentals.ReturnRentals)
}

func (a *API) handleBulkCancel(w http.ResponseWriter, r *http.Request) {
	a.bulkClose(w, r, a.rentals.CancelRentals)
}

func (a *API) bulkClose(w http.ResponseWriter, r *http.Request, op func(context.Context, []int32) []domain.BatchOutcome) {
	var req bulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	if len(req.IDs) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ids must not be empty"})
		return
	}
	outcomes := op(r.Context(), req.IDs)
	writeJSON(w, http.StatusOK, map[string]any{"outcomes": outcomes})
}
