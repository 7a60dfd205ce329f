package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
	pkgerrors "github.com/storecraft/backoffice-backend/pkg/errors"
)

// Service exposes the discount-resolution and revenue-aggregation operations
// keyed by entity IDs. Every call recomputes from the current rows; nothing
// is memoized, so discount edits are visible immediately.
type Service interface {
	ResolveDiscount(ctx context.Context, lineItemID uuid.UUID) (*models.BulkDiscount, error)
	LineRevenue(ctx context.Context, lineItemID uuid.UUID) (int64, error)
	LineDiscountAmount(ctx context.Context, lineItemID uuid.UUID) (decimal.Decimal, error)
	MerchantRevenue(ctx context.Context, invoiceID, merchantID uuid.UUID) (int64, error)
	MerchantDiscount(ctx context.Context, invoiceID, merchantID uuid.UUID) (decimal.Decimal, error)
	InvoiceTotalDiscount(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)
	InvoiceSummary(ctx context.Context, invoiceID uuid.UUID) (*InvoiceSummary, error)
}

// InvoiceSummary is the computed roll-up for one invoice, broken down by the
// merchants whose items appear on it.
type InvoiceSummary struct {
	Invoice       *models.Invoice   `json:"invoice"`
	Merchants     []MerchantSummary `json:"merchants"`
	TotalRevenue  int64             `json:"total_revenue_cents"`
	TotalDiscount decimal.Decimal   `json:"total_discount"`
}

// MerchantSummary is one merchant's slice of an invoice.
type MerchantSummary struct {
	MerchantID uuid.UUID       `json:"merchant_id"`
	Revenue    int64           `json:"revenue_cents"`
	Discount   decimal.Decimal `json:"discount"`
}

type invoiceReader interface {
	FindInvoice(ctx context.Context, id uuid.UUID) (*models.Invoice, error)
	FindLineItem(ctx context.Context, id uuid.UUID) (*models.InvoiceLineItem, error)
	ListLineItems(ctx context.Context, invoiceID uuid.UUID) ([]models.InvoiceLineItem, error)
}

type discountLister interface {
	ListByMerchant(ctx context.Context, merchantID uuid.UUID) ([]models.BulkDiscount, error)
}

type merchantReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Merchant, error)
}

type service struct {
	invoices  invoiceReader
	discounts discountLister
	merchants merchantReader
}

// NewService builds the billing service over the read surfaces it needs.
func NewService(invoices invoiceReader, discounts discountLister, merchants merchantReader) (Service, error) {
	if invoices == nil {
		return nil, fmt.Errorf("invoice reader required")
	}
	if discounts == nil {
		return nil, fmt.Errorf("discount lister required")
	}
	if merchants == nil {
		return nil, fmt.Errorf("merchant reader required")
	}
	return &service{invoices: invoices, discounts: discounts, merchants: merchants}, nil
}

// ResolveDiscount finds the best applicable discount for a line item, scoped
// to the merchant that owns the purchased item. Returns nil when none applies.
func (s *service) ResolveDiscount(ctx context.Context, lineItemID uuid.UUID) (*models.BulkDiscount, error) {
	li, err := s.loadLineItem(ctx, lineItemID)
	if err != nil {
		return nil, err
	}
	discounts, err := s.listDiscounts(ctx, li.Item.MerchantID)
	if err != nil {
		return nil, err
	}
	return ResolveBest(discounts, li.Quantity), nil
}

func (s *service) LineRevenue(ctx context.Context, lineItemID uuid.UUID) (int64, error) {
	li, err := s.loadLineItem(ctx, lineItemID)
	if err != nil {
		return 0, err
	}
	return LineRevenue(*li), nil
}

func (s *service) LineDiscountAmount(ctx context.Context, lineItemID uuid.UUID) (decimal.Decimal, error) {
	li, err := s.loadLineItem(ctx, lineItemID)
	if err != nil {
		return decimal.Zero, err
	}
	discounts, err := s.listDiscounts(ctx, li.Item.MerchantID)
	if err != nil {
		return decimal.Zero, err
	}
	return LineDiscountAmount(*li, discounts), nil
}

// MerchantRevenue sums the undiscounted revenue of the invoice's line items
// whose item belongs to the merchant. Other merchants' lines never leak in.
func (s *service) MerchantRevenue(ctx context.Context, invoiceID, merchantID uuid.UUID) (int64, error) {
	lines, err := s.merchantLines(ctx, invoiceID, merchantID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, li := range lines {
		total += LineRevenue(li)
	}
	return total, nil
}

// MerchantDiscount sums the discount amounts of the merchant's lines on the
// invoice, each resolved against that merchant's own discounts.
func (s *service) MerchantDiscount(ctx context.Context, invoiceID, merchantID uuid.UUID) (decimal.Decimal, error) {
	lines, err := s.merchantLines(ctx, invoiceID, merchantID)
	if err != nil {
		return decimal.Zero, err
	}
	discounts, err := s.listDiscounts(ctx, merchantID)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, li := range lines {
		total = total.Add(LineDiscountAmount(li, discounts))
	}
	return total, nil
}

// InvoiceTotalDiscount is the sum of the per-merchant discounts across every
// merchant represented on the invoice. Each merchant's discounts are fetched
// once regardless of how many lines they own.
func (s *service) InvoiceTotalDiscount(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error) {
	lines, err := s.loadInvoiceLines(ctx, invoiceID)
	if err != nil {
		return decimal.Zero, err
	}
	byMerchant := map[uuid.UUID][]models.BulkDiscount{}
	total := decimal.Zero
	for _, li := range lines {
		merchantID := li.Item.MerchantID
		discounts, ok := byMerchant[merchantID]
		if !ok {
			discounts, err = s.listDiscounts(ctx, merchantID)
			if err != nil {
				return decimal.Zero, err
			}
			byMerchant[merchantID] = discounts
		}
		total = total.Add(LineDiscountAmount(li, discounts))
	}
	return total, nil
}

// InvoiceSummary computes per-merchant revenue and discount plus the invoice
// totals in one pass over the invoice's lines.
func (s *service) InvoiceSummary(ctx context.Context, invoiceID uuid.UUID) (*InvoiceSummary, error) {
	invoice, err := s.loadInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	lines, err := s.loadInvoiceLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		revenue  int64
		discount decimal.Decimal
	}
	byMerchant := map[uuid.UUID][]models.BulkDiscount{}
	buckets := map[uuid.UUID]*bucket{}
	var order []uuid.UUID
	for _, li := range lines {
		merchantID := li.Item.MerchantID
		discounts, ok := byMerchant[merchantID]
		if !ok {
			discounts, err = s.listDiscounts(ctx, merchantID)
			if err != nil {
				return nil, err
			}
			byMerchant[merchantID] = discounts
		}
		b, ok := buckets[merchantID]
		if !ok {
			b = &bucket{discount: decimal.Zero}
			buckets[merchantID] = b
			order = append(order, merchantID)
		}
		b.revenue += LineRevenue(li)
		b.discount = b.discount.Add(LineDiscountAmount(li, discounts))
	}

	summary := &InvoiceSummary{
		Invoice:       invoice,
		TotalDiscount: decimal.Zero,
		Merchants:     make([]MerchantSummary, 0, len(order)),
	}
	for _, merchantID := range order {
		b := buckets[merchantID]
		summary.Merchants = append(summary.Merchants, MerchantSummary{
			MerchantID: merchantID,
			Revenue:    b.revenue,
			Discount:   b.discount,
		})
		summary.TotalRevenue += b.revenue
		summary.TotalDiscount = summary.TotalDiscount.Add(b.discount)
	}
	return summary, nil
}

func (s *service) loadInvoice(ctx context.Context, invoiceID uuid.UUID) (*models.Invoice, error) {
	if invoiceID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invoice id required")
	}
	invoice, err := s.invoices.FindInvoice(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "invoice not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load invoice")
	}
	return invoice, nil
}

func (s *service) loadLineItem(ctx context.Context, lineItemID uuid.UUID) (*models.InvoiceLineItem, error) {
	if lineItemID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "line item id required")
	}
	li, err := s.invoices.FindLineItem(ctx, lineItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "line item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load line item")
	}
	if li.Item == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "line item missing its item")
	}
	return li, nil
}

func (s *service) loadInvoiceLines(ctx context.Context, invoiceID uuid.UUID) ([]models.InvoiceLineItem, error) {
	if _, err := s.loadInvoice(ctx, invoiceID); err != nil {
		return nil, err
	}
	lines, err := s.invoices.ListLineItems(ctx, invoiceID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list invoice line items")
	}
	for i := range lines {
		if lines[i].Item == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "line item missing its item")
		}
	}
	return lines, nil
}

// merchantLines verifies both identifiers before filtering; an unknown
// merchant is a NotFound, not an empty sum.
func (s *service) merchantLines(ctx context.Context, invoiceID, merchantID uuid.UUID) ([]models.InvoiceLineItem, error) {
	if merchantID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "merchant id required")
	}
	if _, err := s.merchants.FindByID(ctx, merchantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "merchant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load merchant")
	}
	lines, err := s.loadInvoiceLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	filtered := lines[:0:0]
	for _, li := range lines {
		if li.Item.MerchantID == merchantID {
			filtered = append(filtered, li)
		}
	}
	return filtered, nil
}

func (s *service) listDiscounts(ctx context.Context, merchantID uuid.UUID) ([]models.BulkDiscount, error) {
	discounts, err := s.discounts.ListByMerchant(ctx, merchantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list merchant discounts")
	}
	return discounts, nil
}
