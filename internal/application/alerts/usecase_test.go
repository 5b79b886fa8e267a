package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/alert"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake repo en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeMedicineRepo struct {
	items []*entity.Medicine
}

func (f *fakeMedicineRepo) Create(*entity.Medicine) error                  { return nil }
func (f *fakeMedicineRepo) GetByID(string) (*entity.Medicine, error)       { return nil, nil }
func (f *fakeMedicineRepo) GetByBatchNo(string) (*entity.Medicine, error)  { return nil, nil }
func (f *fakeMedicineRepo) Update(*entity.Medicine) error                  { return nil }
func (f *fakeMedicineRepo) List(int, int) ([]*entity.Medicine, error)      { return f.items, nil }
func (f *fakeMedicineRepo) Delete(string) error                            { return nil }
func (f *fakeMedicineRepo) Snapshot(context.Context) ([]*entity.Medicine, error) {
	return f.items, nil
}

func med(name string, qty, reorder int64, expiry time.Time) *entity.Medicine {
	return &entity.Medicine{
		ID:           name,
		Name:         name,
		BatchNo:      "L-" + name,
		ExpiryDate:   expiry,
		Quantity:     qty,
		ReorderLevel: reorder,
		UnitPrice:    decimal.NewFromInt(1),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAlerts_ClasificaYConvierteADTO(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeMedicineRepo{items: []*entity.Medicine{
		// stock bajo (5 <= 10) y lejos de vencer
		med("Amoxicilina", 5, 10, now.AddDate(1, 0, 0)),
		// stock sano, vence en 15 días
		med("Ibuprofeno", 100, 10, now.AddDate(0, 0, 15)),
		// en ambas listas: frontera exacta de stock y ya vencido
		med("Paracetamol", 10, 10, now.AddDate(0, 0, -3)),
		// en ninguna
		med("Omeprazol", 50, 10, now.AddDate(1, 0, 0)),
	}}

	uc := NewAlertsUseCase(repo, alert.NewEngine(30, 5), nil)
	uc.now = func() time.Time { return now }

	out, err := uc.GetAlerts(context.Background())
	require.NoError(t, err)

	require.Len(t, out.LowStock, 2)
	assert.Equal(t, "Amoxicilina", out.LowStock[0].Name, "debe preservar el orden del snapshot")
	assert.Equal(t, "Paracetamol", out.LowStock[1].Name)

	require.Len(t, out.ExpiringOrExpired, 2)
	assert.Equal(t, "Ibuprofeno", out.ExpiringOrExpired[0].Name)
	assert.Equal(t, 15, out.ExpiringOrExpired[0].DaysUntilExpiry)
	assert.False(t, out.ExpiringOrExpired[0].Expired)

	assert.Equal(t, "Paracetamol", out.ExpiringOrExpired[1].Name)
	assert.Equal(t, -3, out.ExpiringOrExpired[1].DaysUntilExpiry)
	assert.True(t, out.ExpiringOrExpired[1].Expired)

	assert.Equal(t, 30, out.ExpiryWindowDays)
	assert.Equal(t, now.Format(time.RFC3339), out.GeneratedAt)
}

func TestGetAlerts_SnapshotVacio(t *testing.T) {
	uc := NewAlertsUseCase(&fakeMedicineRepo{}, alert.NewEngine(0, 0), nil)

	out, err := uc.GetAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.LowStock)
	assert.Empty(t, out.ExpiringOrExpired)
	assert.Equal(t, alert.DefaultExpiryWindowDays, out.ExpiryWindowDays)
}

func TestGetAlerts_FechaCeroFalla(t *testing.T) {
	repo := &fakeMedicineRepo{items: []*entity.Medicine{
		med("SinFecha", 5, 10, time.Time{}),
	}}
	uc := NewAlertsUseCase(repo, alert.NewEngine(30, 5), nil)

	_, err := uc.GetAlerts(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidData,
		"un registro sin fecha de vencimiento no debe clasificarse en silencio")
}

func TestDownloadAlertsReport_SinGeneradorFalla(t *testing.T) {
	uc := NewAlertsUseCase(&fakeMedicineRepo{}, alert.NewEngine(30, 5), nil)

	_, _, err := uc.DownloadAlertsReport(context.Background())
	assert.Error(t, err)
}
