package discounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/internal/holidays"
	"github.com/storecraft/backoffice-backend/pkg/db"
	"github.com/storecraft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/storecraft/backoffice-backend/pkg/errors"
)

// Service exposes merchant-facing bulk discount management.
type Service interface {
	CreateDiscount(ctx context.Context, merchantID uuid.UUID, input CreateDiscountInput) (*models.BulkDiscount, error)
	CreateHolidayDiscount(ctx context.Context, merchantID uuid.UUID, input HolidayDiscountInput) (*models.BulkDiscount, error)
	UpdateDiscount(ctx context.Context, merchantID, discountID uuid.UUID, input UpdateDiscountInput) (*models.BulkDiscount, error)
	DeleteDiscount(ctx context.Context, merchantID, discountID uuid.UUID) error
	GetDiscount(ctx context.Context, merchantID, discountID uuid.UUID) (*models.BulkDiscount, error)
	ListDiscounts(ctx context.Context, merchantID uuid.UUID) ([]models.BulkDiscount, error)
}

// CreateDiscountInput holds the validated payload to create a discount.
// Holiday is set when the discount is seeded from the public-holiday feed.
type CreateDiscountInput struct {
	Name            string
	Threshold       int
	PercentDiscount int
	Holiday         *string
}

// UpdateDiscountInput holds optional mutation values for a discount.
type UpdateDiscountInput struct {
	Name            *string
	Threshold       *int
	PercentDiscount *int
}

// HolidayDiscountInput creates a discount labeled with an upcoming public
// holiday. Name is optional; it defaults to "<holiday> discount".
type HolidayDiscountInput struct {
	HolidayName     string
	Name            string
	Threshold       int
	PercentDiscount int
}

const uniqueDiscountNameConstraint = "uq_bulk_discounts_merchant_name"

type merchantLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
}

type holidayLister interface {
	Upcoming(ctx context.Context) ([]holidays.Holiday, error)
}

type repository interface {
	Create(ctx context.Context, discount *models.BulkDiscount) (*models.BulkDiscount, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.BulkDiscount, error)
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]models.BulkDiscount, error)
	Update(ctx context.Context, discount *models.BulkDiscount) (*models.BulkDiscount, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type service struct {
	repo      repository
	merchants merchantLoader
	holidays  holidayLister
}

// NewService builds a discount service with the required dependencies. The
// holiday lister may be nil; holiday discount creation then fails with a
// dependency error.
func NewService(repo repository, merchants merchantLoader, holidayFeed holidayLister) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("discounts repository required")
	}
	if merchants == nil {
		return nil, fmt.Errorf("merchant loader required")
	}
	return &service{repo: repo, merchants: merchants, holidays: holidayFeed}, nil
}

func (s *service) CreateDiscount(ctx context.Context, merchantID uuid.UUID, input CreateDiscountInput) (*models.BulkDiscount, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	if err := validateDiscountValues(input.Name, input.Threshold, input.PercentDiscount); err != nil {
		return nil, err
	}

	discount := &models.BulkDiscount{
		MerchantID:      merchantID,
		Name:            strings.TrimSpace(input.Name),
		Threshold:       input.Threshold,
		PercentDiscount: input.PercentDiscount,
		Holiday:         input.Holiday,
	}
	created, err := s.repo.Create(ctx, discount)
	if err != nil {
		if db.IsUniqueViolation(err, uniqueDiscountNameConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "discount name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert bulk discount")
	}
	return created, nil
}

// CreateHolidayDiscount verifies the holiday against the upcoming feed and
// stores a regular discount row carrying the holiday label.
func (s *service) CreateHolidayDiscount(ctx context.Context, merchantID uuid.UUID, input HolidayDiscountInput) (*models.BulkDiscount, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	if s.holidays == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "holiday feed not configured")
	}
	if strings.TrimSpace(input.HolidayName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid discount").
			WithDetails(map[string]string{"holiday": "is required"})
	}

	upcoming, err := s.holidays.Upcoming(ctx)
	if err != nil {
		return nil, err
	}
	var matched *holidays.Holiday
	for i := range upcoming {
		if strings.EqualFold(upcoming[i].Name, input.HolidayName) {
			matched = &upcoming[i]
			break
		}
	}
	if matched == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid discount").
			WithDetails(map[string]string{"holiday": "is not an upcoming public holiday"})
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = matched.Name + " discount"
	}
	return s.CreateDiscount(ctx, merchantID, CreateDiscountInput{
		Name:            name,
		Threshold:       input.Threshold,
		PercentDiscount: input.PercentDiscount,
		Holiday:         &matched.Name,
	})
}

func (s *service) UpdateDiscount(ctx context.Context, merchantID, discountID uuid.UUID, input UpdateDiscountInput) (*models.BulkDiscount, error) {
	discount, err := s.loadOwned(ctx, merchantID, discountID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		discount.Name = strings.TrimSpace(*input.Name)
	}
	if input.Threshold != nil {
		discount.Threshold = *input.Threshold
	}
	if input.PercentDiscount != nil {
		discount.PercentDiscount = *input.PercentDiscount
	}
	if err := validateDiscountValues(discount.Name, discount.Threshold, discount.PercentDiscount); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, discount)
	if err != nil {
		if db.IsUniqueViolation(err, uniqueDiscountNameConstraint) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "discount name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update bulk discount")
	}
	return updated, nil
}

func (s *service) DeleteDiscount(ctx context.Context, merchantID, discountID uuid.UUID) error {
	if _, err := s.loadOwned(ctx, merchantID, discountID); err != nil {
		return err
	}
	affected, err := s.repo.Delete(ctx, discountID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete bulk discount")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "discount not found")
	}
	return nil
}

func (s *service) GetDiscount(ctx context.Context, merchantID, discountID uuid.UUID) (*models.BulkDiscount, error) {
	return s.loadOwned(ctx, merchantID, discountID)
}

func (s *service) ListDiscounts(ctx context.Context, merchantID uuid.UUID) ([]models.BulkDiscount, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list bulk discounts")
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

func (s *service) loadOwned(ctx context.Context, merchantID, discountID uuid.UUID) (*models.BulkDiscount, error) {
	if err := s.requireMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	discount, err := s.repo.FindByID(ctx, discountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "discount not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bulk discount")
	}
	if discount.MerchantID != merchantID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "discount not found")
	}
	return discount, nil
}

func validateDiscountValues(name string, threshold, percent int) error {
	details := map[string]string{}
	if strings.TrimSpace(name) == "" {
		details["name"] = "is required"
	}
	if threshold <= 0 {
		details["threshold"] = "must be a positive integer"
	}
	if percent <= 0 || percent > 100 {
		details["percent_discount"] = "must be between 1 and 100"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid discount").WithDetails(details)
	}
	return nil
}
