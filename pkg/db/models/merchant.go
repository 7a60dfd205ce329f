package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/storecraft/backoffice-backend/pkg/enums"
)

// Merchant represents a seller on the platform. Merchants are never hard
// deleted; admins toggle Status instead.
type Merchant struct {
	ID            uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string               `gorm:"column:name;not null"`
	Status        enums.MerchantStatus `gorm:"column:status;not null;default:'enabled'"`
	Items         []Item               `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE"`
	BulkDiscounts []BulkDiscount       `gorm:"foreignKey:MerchantID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
