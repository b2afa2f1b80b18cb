package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive    RentalStatus = "ACTIVE"
	RentalStatusReturned  RentalStatus = "RETURNED"
	RentalStatusCancelled RentalStatus = "CANCELLED"
)

// Terminal reports whether no further transition leaves the status.
func (s RentalStatus) Terminal() bool {
	return s == RentalStatusReturned || s == RentalStatusCancelled
}

type Rental struct {
	ID         int32            `json:"id"`
	ClientID   int32            `json:"client_id"`
	Client     *Client          `json:"client,omitempty"` // Populated when fetching rental details
	StartDate  time.Time        `json:"start_date"`
	ReturnDate time.Time        `json:"return_date"`
	Status     RentalStatus     `json:"status"`
	CreatedOn  time.Time        `json:"created_on"`
	LineItems  []RentalLineItem `json:"line_items,omitempty"`
}

// RentalDays is the billed duration. Spans of zero or fewer days bill as
// a single day.
func (r *Rental) RentalDays() int32 {
	days := int32(r.ReturnDate.Sub(r.StartDate).Hours() / 24)
	if days <= 0 {
		return 1
	}
	return days
}

// TotalCents is recomputed from the populated line items on every call,
// never stored. A price change on a material is reflected retroactively.
func (r *Rental) TotalCents() int32 {
	days := r.RentalDays()
	var total int32
	for i := range r.LineItems {
		total += r.LineItems[i].TotalCents(days)
	}
	return total
}

type RentalLineItem struct {
	ID         int32     `json:"id"`
	RentalID   int32     `json:"rental_id"`
	MaterialID int32     `json:"material_id"`
	Material   *Material `json:"material,omitempty"` // Populated when fetching rental details
	Quantity   int32     `json:"quantity"`
}

// UnitPriceCents is the referenced material's current per-day price.
func (li *RentalLineItem) UnitPriceCents() int32 {
	if li.Material == nil {
		return 0
	}
	return li.Material.PricePerDayCents
}

func (li *RentalLineItem) TotalCents(days int32) int32 {
	return li.UnitPriceCents() * li.Quantity * days
}

// BatchOutcome is the per-rental result of a bulk return or cancel.
type BatchOutcome struct {
	RentalID int32  `json:"rental_id"`
	Message  string `json:"message"`
}
