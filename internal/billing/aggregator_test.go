package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
)

func TestLineRevenue(t *testing.T) {
	li := models.InvoiceLineItem{Quantity: 10, UnitPriceCents: 350}
	assert.Equal(t, int64(3500), LineRevenue(li))

	li = models.InvoiceLineItem{Quantity: 1, UnitPriceCents: 0}
	assert.Equal(t, int64(0), LineRevenue(li))
}

func TestLineDiscountAmountAppliesBestDiscount(t *testing.T) {
	// 10 units at 350 cents with a 20% discount shaves 700 cents.
	li := models.InvoiceLineItem{Quantity: 10, UnitPriceCents: 350}
	discounts := []models.BulkDiscount{discount(10, 20)}

	got := LineDiscountAmount(li, discounts)
	assert.True(t, got.Equal(decimal.NewFromInt(700)), "got %s", got)
}

func TestLineDiscountAmountZeroWhenNoneApplies(t *testing.T) {
	li := models.InvoiceLineItem{Quantity: 3, UnitPriceCents: 1000}
	discounts := []models.BulkDiscount{discount(10, 20)}

	got := LineDiscountAmount(li, discounts)
	assert.True(t, got.IsZero())
}

func TestLineDiscountAmountKeepsFractionalCents(t *testing.T) {
	// 3 units at 333 cents with 10% off: 99.9 cents, not 99 or 100.
	li := models.InvoiceLineItem{Quantity: 3, UnitPriceCents: 333}
	discounts := []models.BulkDiscount{discount(2, 10)}

	got := LineDiscountAmount(li, discounts)
	want := decimal.RequireFromString("99.9")
	assert.True(t, got.Equal(want), "got %s want %s", got, want)
}
