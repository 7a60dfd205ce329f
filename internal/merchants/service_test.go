package merchants

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/storecraft/backoffice-backend/pkg/db/models"
	"github.com/storecraft/backoffice-backend/pkg/enums"
	pkgerrors "github.com/storecraft/backoffice-backend/pkg/errors"
)

type fakeMerchantRepo struct {
	rows map[uuid.UUID]*models.Merchant
}

func newFakeMerchantRepo() *fakeMerchantRepo {
	return &fakeMerchantRepo{rows: map[uuid.UUID]*models.Merchant{}}
}

func (f *fakeMerchantRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Merchant, error) {
	if m, ok := f.rows[id]; ok {
		return m, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMerchantRepo) List(_ context.Context) ([]models.Merchant, error) {
	var out []models.Merchant
	for _, m := range f.rows {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMerchantRepo) UpdateStatus(_ context.Context, id uuid.UUID, status enums.MerchantStatus) (int64, error) {
	m, ok := f.rows[id]
	if !ok {
		return 0, nil
	}
	m.Status = status
	return 1, nil
}

func TestSetStatusTogglesMerchant(t *testing.T) {
	repo := newFakeMerchantRepo()
	id := uuid.New()
	repo.rows[id] = &models.Merchant{ID: id, Name: "M", Status: enums.MerchantStatusEnabled}
	svc, err := NewService(repo)
	require.NoError(t, err)

	require.NoError(t, svc.SetStatus(context.Background(), id, "disabled"))
	assert.Equal(t, enums.MerchantStatusDisabled, repo.rows[id].Status)

	require.NoError(t, svc.SetStatus(context.Background(), id, "enabled"))
	assert.Equal(t, enums.MerchantStatusEnabled, repo.rows[id].Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc, err := NewService(newFakeMerchantRepo())
	require.NoError(t, err)

	err = svc.SetStatus(context.Background(), uuid.New(), "suspended")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestSetStatusUnknownMerchant(t *testing.T) {
	svc, err := NewService(newFakeMerchantRepo())
	require.NoError(t, err)

	err = svc.SetStatus(context.Background(), uuid.New(), "disabled")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestGetMerchant(t *testing.T) {
	repo := newFakeMerchantRepo()
	id := uuid.New()
	repo.rows[id] = &models.Merchant{ID: id, Name: "M"}
	svc, err := NewService(repo)
	require.NoError(t, err)

	got, err := svc.GetMerchant(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "M", got.Name)

	_, err = svc.GetMerchant(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestListMerchants(t *testing.T) {
	repo := newFakeMerchantRepo()
	repo.rows[uuid.New()] = &models.Merchant{ID: uuid.New(), Name: "A"}
	repo.rows[uuid.New()] = &models.Merchant{ID: uuid.New(), Name: "B"}
	svc, err := NewService(repo)
	require.NoError(t, err)

	rows, err := svc.ListMerchants(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
