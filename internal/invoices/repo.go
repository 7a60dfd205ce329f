package invoices

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
	"github.com/storecraft/backoffice-backend/pkg/enums"
)

// Repository exposes invoice and line item persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindInvoice loads the invoice with its customer.
func (r *Repository) FindInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		First(&invoice, "id = ?", id).
		Error; err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindLineItem loads a line item with its item (and thus its merchant scope).
func (r *Repository) FindLineItem(ctx context.Context, id uuid.UUID) (*models.InvoiceLineItem, error) {
	var lineItem models.InvoiceLineItem
	if err := r.db.WithContext(ctx).
		Preload("Item").
		First(&lineItem, "id = ?", id).
		Error; err != nil {
		return nil, err
	}
	return &lineItem, nil
}

// ListLineItems returns every line item on the invoice with items preloaded,
// oldest first.
func (r *Repository) ListLineItems(ctx context.Context, invoiceID uuid.UUID) ([]models.InvoiceLineItem, error) {
	var rows []models.InvoiceLineItem
	err := r.db.WithContext(ctx).
		Preload("Item").
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// IncompleteInvoices returns invoices that still have at least one
// non-shipped line item, each invoice once, oldest first.
func (r *Repository) IncompleteInvoices(ctx context.Context) ([]models.Invoice, error) {
	var rows []models.Invoice
	err := r.db.WithContext(ctx).
		Table("invoices").
		Select("invoices.*").
		Joins("JOIN invoice_line_items ON invoice_line_items.invoice_id = invoices.id").
		Where("invoice_line_items.status <> ?", enums.LineItemStatusShipped).
		Group("invoices.id").
		Order("invoices.created_at ASC").
		Find(&rows).
		Error
	return rows, err
}

// UpdateInvoiceStatus writes the status in a single-row update and reports
// how many rows matched.
func (r *Repository) UpdateInvoiceStatus(ctx context.Context, id uuid.UUID, status enums.InvoiceStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// UpdateLineItemStatus writes the status in a single-row update and reports
// how many rows matched.
func (r *Repository) UpdateLineItemStatus(ctx context.Context, id uuid.UUID, status enums.LineItemStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.InvoiceLineItem{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
