package billing

import (
	"github.com/storecraft/backoffice-backend/pkg/db/models"
)

// ResolveBest picks the bulk discount that applies to a purchase of the given
// quantity. A discount is eligible when its threshold is less than or equal
// to the quantity. Among eligible discounts the highest percent wins; on a
// percent tie the lexicographically smallest ID wins so resolution is
// deterministic. Returns nil when nothing applies.
func ResolveBest(discounts []models.BulkDiscount, quantity int) *models.BulkDiscount {
	var best *models.BulkDiscount
	for i := range discounts {
		d := &discounts[i]
		if d.Threshold > quantity {
			continue
		}
		if best == nil ||
			d.PercentDiscount > best.PercentDiscount ||
			(d.PercentDiscount == best.PercentDiscount && d.ID.String() < best.ID.String()) {
			best = d
		}
	}
	return best
}
