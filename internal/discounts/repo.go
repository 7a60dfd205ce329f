package discounts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
)

// Repository exposes bulk discount persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a discount row.
func (r *Repository) Create(ctx context.Context, discount *models.BulkDiscount) (*models.BulkDiscount, error) {
	if err := r.db.WithContext(ctx).Create(discount).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

// FindByID loads a single discount.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.BulkDiscount, error) {
	var discount models.BulkDiscount
	if err := r.db.WithContext(ctx).First(&discount, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &discount, nil
}

// ListByMerchant returns the merchant's discounts ordered best-percent first,
// then by id, matching the resolver's tie-break so both paths agree.
func (r *Repository) ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]models.BulkDiscount, error) {
	var rows []models.BulkDiscount
	err := r.db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Order("percent_discount DESC").
		Order("id ASC").
		Find(&rows).
		Error
	return rows, err
}

// Update saves the mutable fields of an existing discount.
func (r *Repository) Update(ctx context.Context, discount *models.BulkDiscount) (*models.BulkDiscount, error) {
	if err := r.db.WithContext(ctx).Save(discount).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

// Delete removes a discount. Historical invoices are unaffected; the
// discount simply stops resolving for future computations.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.BulkDiscount{})
	return result.RowsAffected, result.Error
}
