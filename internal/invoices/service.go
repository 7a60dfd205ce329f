package invoices

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

// Service exposes the invoice and line item status lifecycle.
type Service interface {
	SetInvoiceStatus(ctx context.Context, invoiceID uuid.UUID, status string) error
	SetLineItemStatus(ctx context.Context, lineItemID uuid.UUID, status string) error
	IncompleteInvoices(ctx context.Context) ([]models.Invoice, error)
}

type statusRepository interface {
	UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status enums.InvoiceStatus) (int64, error)
	UpdateLineItemStatus(ctx context.Context, id uuid.UUID, status enums.LineItemStatus) (int64, error)
	IncompleteInvoices(ctx context.Context) ([]models.Invoice, error)
}

type service struct {
	repo statusRepository
}

// NewService builds the lifecycle service.
func NewService(repo statusRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("invoices repository required")
	}
	return &service{repo: repo}, nil
}

// SetInvoiceStatus validates and applies a status. The invoice status set is
// flat: any member may be set from any other.
func (s *service) SetInvoiceStatus(ctx context.Context, invoiceID uuid.UUID, status string) error {
	if invoiceID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "invoice id required")
	}
	parsed, err := enums.ParseInvoiceStatus(status)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid invoice status")
	}

	affected, err := s.repo.UpdateInvoiceStatus(ctx, invoiceID, parsed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update invoice status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found")
	}
	return nil
}

// SetLineItemStatus validates and applies a packaging status.
func (s *service) SetLineItemStatus(ctx context.Context, lineItemID uuid.UUID, status string) error {
	if lineItemID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "line item id required")
	}
	parsed, err := enums.ParseLineItemStatus(status)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid line item status")
	}

	affected, err := s.repo.UpdateLineItemStatus(ctx, lineItemID, parsed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update line item status")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
	}
	return nil
}

// IncompleteInvoices returns invoices with unshipped line items, oldest first.
func (s *service) IncompleteInvoices(ctx context.Context) ([]models.Invoice, error) {
	rows, err := s.repo.IncompleteInvoices(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list incomplete invoices")
	}
	return rows, nil
}
