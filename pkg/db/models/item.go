package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/storecraft/backoffice-backend/pkg/enums"
)

// Item is a merchant listing. UnitPriceCents is the current asking price;
// invoice line items snapshot their own price at order time.
type Item struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	MerchantID     uuid.UUID        `gorm:"column:merchant_id;type:uuid;not null"`
	Name           string           `gorm:"column:name;not null"`
	Description    string           `gorm:"column:description;not null;default:''"`
	UnitPriceCents int64            `gorm:"column:unit_price_cents;not null"`
	Status         enums.ItemStatus `gorm:"column:status;not null;default:'active'"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
