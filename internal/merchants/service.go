package merchants

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
	"github.com/storecraft/backoffice-backend/pkg/enums"
	pkgerrors "github.com/storecraft/backoffice-backend/pkg/errors"
)

// Service exposes admin merchant management.
type Service interface {
	ListMerchants(ctx context.Context) ([]models.Merchant, error)
	GetMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error)
	SetStatus(ctx context.Context, merchantID uuid.UUID, status string) error
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
	List(ctx context.Context) ([]models.Merchant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.MerchantStatus) (int64, error)
}

type service struct {
	repo repository
}

// NewService builds a merchant service.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("merchants repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListMerchants(ctx context.Context) ([]models.Merchant, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list merchants")
	}
	return rows, nil
}

func (s *service) GetMerchant(ctx context.Context, merchantID uuid.UUID) (*models.Merchant, error) {
	if merchantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "merchant id required")
	}
	merchant, err := s.repo.FindByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "merchant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load merchant")
	}
	return merchant, nil
}

// SetStatus toggles a merchant between enabled and disabled. Merchants are
// never hard-deleted.
func (s *service) SetStatus(ctx context.Context, merchantID uuid.UUID, status string) error {
	if merchantID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "merchant id required")
	}
	parsed, err := enums.ParseMerchantStatus(status)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid merchant status")
	}

	affected, err := s.repo.UpdateStatus(ctx, merchantID, parsed)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update merchant status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "merchant not found")
	}
	return nil
}
