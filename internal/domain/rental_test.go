package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRental_RentalDays(t *testing.T) {
	t.Run("three day span", func(t *testing.T) {
		r := &Rental{StartDate: date(2025, 3, 1), ReturnDate: date(2025, 3, 4)}
		assert.Equal(t, int32(3), r.RentalDays())
	})

	t.Run("same day bills one day", func(t *testing.T) {
		r := &Rental{StartDate: date(2025, 3, 1), ReturnDate: date(2025, 3, 1)}
		assert.Equal(t, int32(1), r.RentalDays())
	})

	t.Run("inverted span bills one day", func(t *testing.T) {
		r := &Rental{StartDate: date(2025, 3, 4), ReturnDate: date(2025, 3, 1)}
		assert.Equal(t, int32(1), r.RentalDays())
	})
}

func TestRental_TotalCents(t *testing.T) {
	scaffold := &Material{ID: 1, Name: "Scaffold section", PricePerDayCents: 1000}
	mixer := &Material{ID: 2, Name: "Concrete mixer", PricePerDayCents: 2500}

	r := &Rental{
		StartDate:  date(2025, 3, 1),
		ReturnDate: date(2025, 3, 4),
		Status:     RentalStatusActive,
		LineItems: []RentalLineItem{
			{MaterialID: 1, Material: scaffold, Quantity: 2},
			{MaterialID: 2, Material: mixer, Quantity: 1},
		},
	}

	// 1000*2*3 + 2500*1*3
	assert.Equal(t, int32(13500), r.TotalCents())

	t.Run("line totals", func(t *testing.T) {
		days := r.RentalDays()
		assert.Equal(t, int32(1000), r.LineItems[0].UnitPriceCents())
		assert.Equal(t, int32(6000), r.LineItems[0].TotalCents(days))
	})

	t.Run("price change is reflected retroactively", func(t *testing.T) {
		scaffold.PricePerDayCents = 2000
		assert.Equal(t, int32(19500), r.TotalCents())
		scaffold.PricePerDayCents = 1000
	})

	t.Run("no line items", func(t *testing.T) {
		empty := &Rental{StartDate: date(2025, 3, 1), ReturnDate: date(2025, 3, 4)}
		assert.Equal(t, int32(0), empty.TotalCents())
	})
}

func TestRentalStatus_Terminal(t *testing.T) {
	assert.False(t, RentalStatusActive.Terminal())
	assert.True(t, RentalStatusReturned.Terminal())
	assert.True(t, RentalStatusCancelled.Terminal())
}
