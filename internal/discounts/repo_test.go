package discounts

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
)

func setupDiscountsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
CREATE TABLE bulk_discounts (
  id TEXT PRIMARY KEY,
  merchant_id TEXT NOT NULL,
  name TEXT NOT NULL,
  threshold INTEGER NOT NULL,
  percent_discount INTEGER NOT NULL,
  holiday TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return db
}

func seedDiscount(t *testing.T, db *gorm.DB, merchantID uuid.UUID, threshold, percent int) models.BulkDiscount {
	t.Helper()
	d := models.BulkDiscount{
		ID:              uuid.New(),
		MerchantID:      merchantID,
		Name:            "seed discount",
		Threshold:       threshold,
		PercentDiscount: percent,
	}
	require.NoError(t, db.Create(&d).Error)
	return d
}

func TestCreateAndFindDiscount(t *testing.T) {
	db := setupDiscountsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	holiday := "Labor Day"
	created, err := repo.Create(ctx, &models.BulkDiscount{
		ID:              uuid.New(),
		MerchantID:      uuid.New(),
		Name:            "Labor Day sale",
		Threshold:       2,
		PercentDiscount: 30,
		Holiday:         &holiday,
	})
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Labor Day sale", got.Name)
	require.NotNil(t, got.Holiday)
	assert.True(t, got.IsHoliday())
}

func TestListByMerchantOrdersByPercentThenID(t *testing.T) {
	db := setupDiscountsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	low := seedDiscount(t, db, merchantID, 10, 10)
	high := seedDiscount(t, db, merchantID, 20, 30)
	mid := seedDiscount(t, db, merchantID, 15, 20)
	seedDiscount(t, db, uuid.New(), 5, 50) // other merchant, excluded

	rows, err := repo.ListByMerchant(ctx, merchantID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, high.ID, rows[0].ID)
	assert.Equal(t, mid.ID, rows[1].ID)
	assert.Equal(t, low.ID, rows[2].ID)
}

func TestListByMerchantTieBreaksOnID(t *testing.T) {
	db := setupDiscountsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	a := seedDiscount(t, db, merchantID, 10, 25)
	b := seedDiscount(t, db, merchantID, 10, 25)
	wantFirst := a.ID
	if b.ID.String() < a.ID.String() {
		wantFirst = b.ID
	}

	rows, err := repo.ListByMerchant(ctx, merchantID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, wantFirst, rows[0].ID)
}

func TestRepoDeleteDiscount(t *testing.T) {
	db := setupDiscountsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	d := seedDiscount(t, db, uuid.New(), 10, 20)

	affected, err := repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.FindByID(ctx, d.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	affected, err = repo.Delete(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestUpdateDiscount(t *testing.T) {
	db := setupDiscountsTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	d := seedDiscount(t, db, uuid.New(), 10, 20)
	d.Threshold = 12
	d.PercentDiscount = 25

	updated, err := repo.Update(ctx, &d)
	require.NoError(t, err)
	assert.Equal(t, 12, updated.Threshold)

	got, err := repo.FindByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.PercentDiscount)
}
