package models

import (
	"time"

	"github.com/google/uuid"
)

// BulkDiscount reduces a line item's billed amount by PercentDiscount when
// the line quantity reaches Threshold. Holiday carries the public-holiday
// label for feed-seeded discounts; it has no effect on resolution.
type BulkDiscount struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MerchantID      uuid.UUID `gorm:"column:merchant_id;type:uuid;not null"`
	Name            string    `gorm:"column:name;not null"`
	Threshold       int       `gorm:"column:threshold;not null"`
	PercentDiscount int       `gorm:"column:percent_discount;not null"`
	Holiday         *string   `gorm:"column:holiday"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// IsHoliday reports whether the discount was seeded from the holiday feed.
func (d BulkDiscount) IsHoliday() bool {
	return d.Holiday != nil && *d.Holiday != ""
}
