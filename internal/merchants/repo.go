package merchants

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
	"github.com/storecraft/backoffice-backend/pkg/enums"
)

// Repository exposes merchant persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads the merchant without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error) {
	var merchant models.Merchant
	if err := r.db.WithContext(ctx).First(&merchant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &merchant, nil
}

// List returns all merchants ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Merchant, error) {
	var rows []models.Merchant
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).
		Error
	return rows, err
}

// UpdateStatus writes the status in a single-row update and reports how many
// rows matched.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.MerchantStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Merchant{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
