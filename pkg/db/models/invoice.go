package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/storecraft/backoffice-backend/pkg/enums"
)

// Invoice groups the line items a customer ordered in one checkout. An
// invoice may span items from multiple merchants.
type Invoice struct {
	ID         uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerID uuid.UUID           `gorm:"column:customer_id;type:uuid;not null"`
	Status     enums.InvoiceStatus `gorm:"column:status;not null;default:'in_progress'"`
	Customer   *Customer           `gorm:"foreignKey:CustomerID"`
	LineItems  []InvoiceLineItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
