package domain

import "time"

type Material struct {
	ID               int32     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	PricePerDayCents int32     `json:"price_per_day_cents"`
	StockTotal       int32     `json:"stock_total"`
	StockAvailable   int32     `json:"stock_available"`
	Enabled          bool      `json:"enabled"`
	CreatedOn        time.Time `json:"created_on"`
}
