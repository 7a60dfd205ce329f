package billing

import (
	"github.com/shopspring/decimal"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
)

var oneHundred = decimal.NewFromInt(100)

// LineRevenue is the undiscounted revenue of a line item in integer cents,
// using the unit price snapshot taken at invoicing time.
func LineRevenue(li models.InvoiceLineItem) int64 {
	return li.UnitPriceCents * int64(li.Quantity)
}

// LineDiscountAmount is the monetary amount the best applicable discount
// shaves off a line item. The percent division is exact; fractional cents
// are preserved, not rounded.
func LineDiscountAmount(li models.InvoiceLineItem, discounts []models.BulkDiscount) decimal.Decimal {
	best := ResolveBest(discounts, li.Quantity)
	if best == nil {
		return decimal.Zero
	}
	revenue := decimal.NewFromInt(LineRevenue(li))
	percent := decimal.NewFromInt(int64(best.PercentDiscount))
	return revenue.Mul(percent).Div(oneHundred)
}
