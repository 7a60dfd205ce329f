package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/storecraft/backoffice-backend/pkg/enums"
)

// InvoiceLineItem records one item-quantity-price entry on an invoice.
// UnitPriceCents snapshots the item price at invoice time and may differ
// from the item's current price.
type InvoiceLineItem struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	InvoiceID      uuid.UUID            `gorm:"column:invoice_id;type:uuid;not null"`
	ItemID         uuid.UUID            `gorm:"column:item_id;type:uuid;not null"`
	Quantity       int                  `gorm:"column:quantity;not null"`
	UnitPriceCents int64                `gorm:"column:unit_price_cents;not null"`
	Status         enums.LineItemStatus `gorm:"column:status;not null;default:'pending'"`
	Item           *Item                `gorm:"foreignKey:ItemID"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
