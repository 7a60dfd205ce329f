package invoices

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
	"github.com/storecraft/backoffice-backend/pkg/enums"
)

func setupInvoicesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	stmts := []string{`
CREATE TABLE merchants (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'enabled',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE items (
  id TEXT PRIMARY KEY,
  merchant_id TEXT NOT NULL,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  unit_price_cents INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'active',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE customers (
  id TEXT PRIMARY KEY,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE invoices (
  id TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'in_progress',
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE invoice_line_items (
  id TEXT PRIMARY KEY,
  invoice_id TEXT NOT NULL,
  item_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price_cents INTEGER NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  created_at DATETIME,
  updated_at DATETIME
);`}
	for _, stmt := range stmts {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()
	customer := models.Customer{ID: uuid.New(), FirstName: "Parker", LastName: "Thomson"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedItem(t *testing.T, db *gorm.DB, merchantID uuid.UUID, priceCents int64) models.Item {
	t.Helper()
	merchant := models.Merchant{ID: merchantID, Name: "seed merchant", Status: enums.MerchantStatusEnabled}
	db.Create(&merchant)
	item := models.Item{ID: uuid.New(), MerchantID: merchantID, Name: "seed item", UnitPriceCents: priceCents, Status: enums.ItemStatusActive}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func seedInvoice(t *testing.T, db *gorm.DB, customerID uuid.UUID, createdAt time.Time) models.Invoice {
	t.Helper()
	invoice := models.Invoice{ID: uuid.New(), CustomerID: customerID, Status: enums.InvoiceStatusInProgress, CreatedAt: createdAt}
	require.NoError(t, db.Create(&invoice).Error)
	return invoice
}

func seedLineItem(t *testing.T, db *gorm.DB, invoiceID, itemID uuid.UUID, qty int, status enums.LineItemStatus, createdAt time.Time) models.InvoiceLineItem {
	t.Helper()
	li := models.InvoiceLineItem{
		ID:             uuid.New(),
		InvoiceID:      invoiceID,
		ItemID:         itemID,
		Quantity:       qty,
		UnitPriceCents: 350,
		Status:         status,
		CreatedAt:      createdAt,
	}
	require.NoError(t, db.Create(&li).Error)
	return li
}

func TestFindLineItemPreloadsItem(t *testing.T) {
	db := setupInvoicesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	item := seedItem(t, db, uuid.New(), 350)
	invoice := seedInvoice(t, db, customer.ID, time.Now())
	seeded := seedLineItem(t, db, invoice.ID, item.ID, 10, enums.LineItemStatusPending, time.Now())

	got, err := repo.FindLineItem(ctx, seeded.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Item)
	assert.Equal(t, item.MerchantID, got.Item.MerchantID)
	assert.Equal(t, 10, got.Quantity)
}

func TestListLineItemsOrderedByCreation(t *testing.T) {
	db := setupInvoicesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	item := seedItem(t, db, uuid.New(), 350)
	invoice := seedInvoice(t, db, customer.ID, time.Now())

	base := time.Now().Add(-time.Hour)
	second := seedLineItem(t, db, invoice.ID, item.ID, 2, enums.LineItemStatusPending, base.Add(time.Minute))
	first := seedLineItem(t, db, invoice.ID, item.ID, 1, enums.LineItemStatusPending, base)

	rows, err := repo.ListLineItems(ctx, invoice.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, second.ID, rows[1].ID)
	require.NotNil(t, rows[0].Item)
}

func TestIncompleteInvoicesDedupsAndOrders(t *testing.T) {
	db := setupInvoicesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	item := seedItem(t, db, uuid.New(), 350)
	base := time.Now().Add(-24 * time.Hour)

	// Older invoice with two unshipped lines: must appear once, first.
	older := seedInvoice(t, db, customer.ID, base)
	seedLineItem(t, db, older.ID, item.ID, 1, enums.LineItemStatusPending, base)
	seedLineItem(t, db, older.ID, item.ID, 2, enums.LineItemStatusPackaged, base)

	// Newer invoice with one unshipped and one shipped line.
	newer := seedInvoice(t, db, customer.ID, base.Add(time.Hour))
	seedLineItem(t, db, newer.ID, item.ID, 3, enums.LineItemStatusPending, base)
	seedLineItem(t, db, newer.ID, item.ID, 4, enums.LineItemStatusShipped, base)

	// Fully shipped invoice: excluded.
	done := seedInvoice(t, db, customer.ID, base.Add(2*time.Hour))
	seedLineItem(t, db, done.ID, item.ID, 5, enums.LineItemStatusShipped, base)

	// Invoice with no line items at all: excluded.
	seedInvoice(t, db, customer.ID, base.Add(3*time.Hour))

	rows, err := repo.IncompleteInvoices(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, older.ID, rows[0].ID)
	assert.Equal(t, newer.ID, rows[1].ID)
}

func TestUpdateInvoiceStatus(t *testing.T) {
	db := setupInvoicesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	invoice := seedInvoice(t, db, customer.ID, time.Now())

	affected, err := repo.UpdateInvoiceStatus(ctx, invoice.ID, enums.InvoiceStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindInvoice(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.InvoiceStatusCompleted, got.Status)

	affected, err = repo.UpdateInvoiceStatus(ctx, uuid.New(), enums.InvoiceStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestUpdateLineItemStatus(t *testing.T) {
	db := setupInvoicesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	customer := seedCustomer(t, db)
	item := seedItem(t, db, uuid.New(), 350)
	invoice := seedInvoice(t, db, customer.ID, time.Now())
	li := seedLineItem(t, db, invoice.ID, item.ID, 1, enums.LineItemStatusPending, time.Now())

	affected, err := repo.UpdateLineItemStatus(ctx, li.ID, enums.LineItemStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindLineItem(ctx, li.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.LineItemStatusShipped, got.Status)
}
