package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/domain/alert"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

type fakeMedicineRepo struct {
	items []*entity.Medicine
}

func (f *fakeMedicineRepo) Create(*entity.Medicine) error                 { return nil }
func (f *fakeMedicineRepo) GetByID(string) (*entity.Medicine, error)      { return nil, nil }
func (f *fakeMedicineRepo) GetByBatchNo(string) (*entity.Medicine, error) { return nil, nil }
func (f *fakeMedicineRepo) Update(*entity.Medicine) error                 { return nil }
func (f *fakeMedicineRepo) List(int, int) ([]*entity.Medicine, error)     { return f.items, nil }
func (f *fakeMedicineRepo) Delete(string) error                           { return nil }
func (f *fakeMedicineRepo) Snapshot(context.Context) ([]*entity.Medicine, error) {
	return f.items, nil
}

type fakeOrderRepo struct {
	items []*entity.Order
}

func (f *fakeOrderRepo) Create(*entity.Order) error                   { return nil }
func (f *fakeOrderRepo) GetByID(string) (*entity.Order, error)        { return nil, nil }
func (f *fakeOrderRepo) UpdateStatus(string, entity.OrderStatus) error { return nil }
func (f *fakeOrderRepo) List(entity.OrderStatus, int, int) ([]*entity.Order, error) {
	return f.items, nil
}
func (f *fakeOrderRepo) Snapshot(context.Context) ([]*entity.Order, error) { return f.items, nil }

func TestGetSummary_AgregadosYOrdenesRecientes(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	medRepo := &fakeMedicineRepo{items: []*entity.Medicine{
		{ID: "a", Name: "A", Quantity: 3, ReorderLevel: 5, UnitPrice: price("2.50"), ExpiryDate: now.AddDate(1, 0, 0)},
		{ID: "b", Name: "B", Quantity: 10, ReorderLevel: 5, UnitPrice: price("1.25"), ExpiryDate: now.AddDate(0, 0, 10)},
	}}
	ordRepo := &fakeOrderRepo{items: []*entity.Order{
		{ID: "o1", Status: entity.OrderStatusPending, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "o2", Status: entity.OrderStatusDelivered, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "o3", Status: entity.OrderStatusPending, CreatedAt: now.Add(-2 * time.Hour)},
	}}

	uc := NewDashboardUseCase(medRepo, ordRepo, alert.NewEngine(30, 2))
	uc.now = func() time.Time { return now }

	out, err := uc.GetSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalMedicines)
	assert.Equal(t, 1, out.LowStockCount, "solo A está en o bajo su umbral")
	assert.Equal(t, 1, out.ExpiringCount, "solo B vence dentro de la ventana")
	assert.Equal(t, 2, out.PendingOrders)

	// 3·2.50 + 10·1.25 = 20.00, aritmética decimal exacta
	assert.True(t, out.TotalValue.Equal(price("20.00")),
		"valor total esperado 20.00, obtenido %s", out.TotalValue)

	// Límite 2, ordenadas por CreatedAt descendente
	require.Len(t, out.RecentOrders, 2)
	assert.Equal(t, "o2", out.RecentOrders[0].ID)
	assert.Equal(t, "o3", out.RecentOrders[1].ID)
}
