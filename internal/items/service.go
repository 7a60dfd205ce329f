package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
	"github.com/storecraft/backoffice-backend/pkg/enums"
	pkgerrors "github.com/storecraft/backoffice-backend/pkg/errors"
)

// Service exposes merchant item management.
type Service interface {
	CreateItem(ctx context.Context, merchantID uuid.UUID, input CreateItemInput) (*models.Item, error)
	UpdateItem(ctx context.Context, merchantID, itemID uuid.UUID, input UpdateItemInput) (*models.Item, error)
	ListItems(ctx context.Context, merchantID uuid.UUID) ([]models.Item, error)
}

// CreateItemInput holds the validated payload to create an item.
type CreateItemInput struct {
	Name           string
	Description    string
	UnitPriceCents int64
}

// UpdateItemInput holds optional mutation values for an item.
type UpdateItemInput struct {
	Name           *string
	Description    *string
	UnitPriceCents *int64
	Status         *string
}

type merchantLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
}

type repository interface {
	Create(ctx context.Context, item *models.Item) (*models.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]models.Item, error)
	Update(ctx context.Context, item *models.Item) (*models.Item, error)
}

type service struct {
	repo      repository
	merchants merchantLoader
}

// NewService builds an item service with the required dependencies.
func NewService(repo repository, merchants merchantLoader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	if merchants == nil {
		return nil, fmt.Errorf("merchant loader required")
	}
	return &service{repo: repo, merchants: merchants}, nil
}

func (s *service) CreateItem(ctx context.Context, merchantID uuid.UUID, input CreateItemInput) (*models.Item, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	if err := validateItemValues(input.Name, input.UnitPriceCents); err != nil {
		return nil, err
	}

	item := &models.Item{
		MerchantID:     merchantID,
		Name:           strings.TrimSpace(input.Name),
		Description:    strings.TrimSpace(input.Description),
		UnitPriceCents: input.UnitPriceCents,
		Status:         enums.ItemStatusActive,
	}
	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert item")
	}
	return created, nil
}

func (s *service) UpdateItem(ctx context.Context, merchantID, itemID uuid.UUID, input UpdateItemInput) (*models.Item, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load item")
	}
	if item.MerchantID != merchantID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "item not found")
	}

	if input.Name != nil {
		item.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		item.Description = strings.TrimSpace(*input.Description)
	}
	if input.UnitPriceCents != nil {
		item.UnitPriceCents = *input.UnitPriceCents
	}
	if input.Status != nil {
		parsed, err := enums.ParseItemStatus(*input.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid item status")
		}
		item.Status = parsed
	}
	if err := validateItemValues(item.Name, item.UnitPriceCents); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update item")
	}
	return updated, nil
}

func (s *service) ListItems(ctx context.Context, merchantID uuid.UUID) ([]models.Item, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list items")
	}
	return rows, nil
}

func (s *service) requireMerchant(ctx context.Context, merchantID uuid.UUID) error {
	if merchantID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "merchant id required")
	}
	if _, err := s.merchants.FindByID(ctx, merchantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "merchant not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load merchant")
	}
	return nil
}

func validateItemValues(name string, priceCents int64) error {
	details := map[string]string{}
	if strings.TrimSpace(name) == "" {
		details["name"] = "is required"
	}
	if priceCents < 0 {
		details["unit_price_cents"] = "must not be negative"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid item").WithDetails(details)
	}
	return nil
}
