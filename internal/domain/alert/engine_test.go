package alert_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/alert"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

func med(qty, reorder int64, expiry time.Time) *entity.Medicine {
	return &entity.Medicine{
		ID:           "med-1",
		Name:         "Paracetamol 500mg",
		Quantity:     qty,
		ReorderLevel: reorder,
		ExpiryDate:   expiry,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ──────────────────────────────────────────────────────────────────────────────
// IsLowStock
// ──────────────────────────────────────────────────────────────────────────────

// Escenarios del umbral: 5/10 bajo, 10/10 bajo (frontera inclusiva), 11/10 no.
func TestIsLowStock_Frontera(t *testing.T) {
	expiry := date(2030, time.January, 1)

	assert.True(t, alert.IsLowStock(med(5, 10, expiry)))
	assert.True(t, alert.IsLowStock(med(10, 10, expiry)), "quantity == reorderLevel cuenta como bajo")
	assert.False(t, alert.IsLowStock(med(11, 10, expiry)))
	assert.True(t, alert.IsLowStock(med(0, 0, expiry)), "0 <= 0 también es frontera")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vencimientos
// ──────────────────────────────────────────────────────────────────────────────

// Caso de referencia: now=2025-01-01, expiry=2025-01-31 → 30 días,
// próximo a vencer (frontera exacta del horizonte), no vencido.
func TestDaysUntilExpiry_FronteraHorizonte(t *testing.T) {
	e := alert.NewEngine(30, 5)
	now := date(2025, time.January, 1)
	m := med(100, 10, date(2025, time.January, 31))

	assert.Equal(t, 30, alert.DaysUntilExpiry(m, now))
	assert.True(t, e.IsExpiringSoon(m, now))
	assert.False(t, alert.IsExpired(m, now))
}

// Un día más allá del horizonte ya no es "próximo a vencer".
func TestIsExpiringSoon_FueraDelHorizonte(t *testing.T) {
	e := alert.NewEngine(30, 5)
	now := date(2025, time.January, 1)
	m := med(100, 10, date(2025, time.February, 1))

	assert.Equal(t, 31, alert.DaysUntilExpiry(m, now))
	assert.False(t, e.IsExpiringSoon(m, now))
}

// Caso de referencia: now=2025-01-01, expiry=2024-12-31 → vencido.
func TestIsExpired_FechaPasada(t *testing.T) {
	now := date(2025, time.January, 1)
	m := med(100, 10, date(2024, time.December, 31))

	assert.LessOrEqual(t, alert.DaysUntilExpiry(m, now), 0)
	assert.True(t, alert.IsExpired(m, now))
}

// Vence hoy: 0 días → vencido; y sigue contando como "próximo a vencer"
// (los predicados no son excluyentes).
func TestIsExpired_VenceHoy(t *testing.T) {
	e := alert.NewEngine(30, 5)
	now := date(2025, time.June, 15)
	m := med(100, 10, date(2025, time.June, 15))

	assert.Equal(t, 0, alert.DaysUntilExpiry(m, now))
	assert.True(t, alert.IsExpired(m, now))
	assert.True(t, e.IsExpiringSoon(m, now))
}

// El componente horario de now es irrelevante: con 23 horas restantes del día
// sigue quedando 1 día calendario, no 0.
func TestDaysUntilExpiry_RedondeoHaciaArriba(t *testing.T) {
	now := time.Date(2025, time.March, 9, 1, 0, 0, 0, time.UTC) // 01:00
	m := med(100, 10, date(2025, time.March, 10))

	assert.Equal(t, 1, alert.DaysUntilExpiry(m, now))
	assert.False(t, alert.IsExpired(m, now))
}

// Propiedad: isExpired(m, now) == (daysUntilExpiry(m, now) <= 0) para un
// barrido de fechas alrededor del instante de referencia.
func TestIsExpired_RoundTripConDaysUntilExpiry(t *testing.T) {
	now := date(2025, time.May, 20)
	for delta := -40; delta <= 40; delta++ {
		m := med(100, 10, now.AddDate(0, 0, delta))
		assert.Equal(t,
			alert.DaysUntilExpiry(m, now) <= 0,
			alert.IsExpired(m, now),
			"delta %d días", delta,
		)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Classify
// ──────────────────────────────────────────────────────────────────────────────

func TestClassify_FiltrosIndependientesPreservanOrden(t *testing.T) {
	e := alert.NewEngine(30, 5)
	now := date(2025, time.January, 1)

	a := med(5, 10, date(2030, time.January, 1)) // solo bajo stock
	a.ID = "a"
	b := med(100, 10, date(2025, time.January, 10)) // solo por vencer
	b.ID = "b"
	c := med(2, 10, date(2024, time.December, 1)) // ambas listas (bajo + vencido)
	c.ID = "c"
	d := med(100, 10, date(2030, time.January, 1)) // ninguna
	d.ID = "d"

	out, err := e.Classify([]*entity.Medicine{a, b, c, d}, now)
	require.NoError(t, err)

	ids := func(ms []*entity.Medicine) []string {
		r := make([]string, 0, len(ms))
		for _, m := range ms {
			r = append(r, m.ID)
		}
		return r
	}
	assert.Equal(t, []string{"a", "c"}, ids(out.LowStock))
	assert.Equal(t, []string{"b", "c"}, ids(out.ExpiringOrExpired))
}

// Fecha cero (registro malformado que se saltó la frontera) → ErrInvalidData.
func TestClassify_FechaCeroFalla(t *testing.T) {
	e := alert.NewEngine(30, 5)
	bad := med(5, 10, time.Time{})

	_, err := e.Classify([]*entity.Medicine{bad}, date(2025, time.January, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestClassify_SnapshotVacio(t *testing.T) {
	e := alert.NewEngine(30, 5)
	out, err := e.Classify(nil, date(2025, time.January, 1))
	require.NoError(t, err)
	assert.Empty(t, out.LowStock)
	assert.Empty(t, out.ExpiringOrExpired)
}

// ──────────────────────────────────────────────────────────────────────────────
// Aggregate
// ──────────────────────────────────────────────────────────────────────────────

// Caso de referencia: [(qty=2, price=10.50), (qty=3, price=5.00)] → 36.00
// exacto, sin deriva de redondeo entre corridas repetidas.
func TestAggregate_ValorTotalDecimalExacto(t *testing.T) {
	e := alert.NewEngine(30, 5)
	now := date(2025, time.January, 1)

	m1 := med(2, 1, date(2030, time.January, 1))
	m1.UnitPrice = decimal.RequireFromString("10.50")
	m2 := med(3, 1, date(2030, time.January, 1))
	m2.UnitPrice = decimal.RequireFromString("5.00")
	items := []*entity.Medicine{m1, m2}

	first, err := e.Aggregate(items, nil, now)
	require.NoError(t, err)
	assert.True(t, first.TotalValue.Equal(decimal.RequireFromString("36.00")),
		"esperado 36.00, obtenido %s", first.TotalValue)

	// Corridas repetidas sobre el mismo snapshot: resultado idéntico.
	for i := 0; i < 10; i++ {
		again, err := e.Aggregate(items, nil, now)
		require.NoError(t, err)
		assert.True(t, first.TotalValue.Equal(again.TotalValue))
	}
}

func TestAggregate_ContadoresYOrdenesPendientes(t *testing.T) {
	e := alert.NewEngine(30, 5)
	now := date(2025, time.January, 1)

	items := []*entity.Medicine{
		med(5, 10, date(2025, time.January, 10)),  // bajo + por vencer
		med(50, 10, date(2030, time.January, 1)),  // ok
		med(50, 10, date(2024, time.December, 1)), // vencido
	}
	orders := []*entity.Order{
		{ID: "o1", Status: entity.OrderStatusPending},
		{ID: "o2", Status: entity.OrderStatusApproved},
		{ID: "o3", Status: entity.OrderStatusPending},
	}

	stats, err := e.Aggregate(items, orders, now)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalMedicines)
	assert.Equal(t, 1, stats.LowStockCount)
	assert.Equal(t, 2, stats.ExpiringCount)
	assert.Equal(t, 2, stats.PendingOrders)
}

// Órdenes recientes: CreatedAt desc, límite N, empates por orden de inserción
// (sort estable) y sin mutar el slice de entrada.
func TestAggregate_OrdenesRecientesEstables(t *testing.T) {
	e := alert.NewEngine(30, 2)
	now := date(2025, time.January, 1)
	t0 := date(2025, time.January, 1)

	oldest := &entity.Order{ID: "oldest", Status: entity.OrderStatusPending, CreatedAt: t0.Add(-3 * time.Hour)}
	tieA := &entity.Order{ID: "tie-a", Status: entity.OrderStatusPending, CreatedAt: t0}
	tieB := &entity.Order{ID: "tie-b", Status: entity.OrderStatusPending, CreatedAt: t0}
	input := []*entity.Order{oldest, tieA, tieB}

	stats, err := e.Aggregate(nil, input, now)
	require.NoError(t, err)

	require.Len(t, stats.RecentOrders, 2)
	assert.Equal(t, "tie-a", stats.RecentOrders[0].ID, "empate en CreatedAt respeta orden de inserción")
	assert.Equal(t, "tie-b", stats.RecentOrders[1].ID)

	// El slice original no se reordena.
	assert.Equal(t, "oldest", input[0].ID)
}

// Valores <= 0 en la configuración caen a los defaults (30 días, top 5).
func TestNewEngine_Defaults(t *testing.T) {
	e := alert.NewEngine(0, -1)
	now := date(2025, time.January, 1)

	m := med(100, 10, date(2025, time.January, 31)) // exactamente 30 días
	assert.True(t, e.IsExpiringSoon(m, now))

	orders := make([]*entity.Order, 0, 8)
	for i := 0; i < 8; i++ {
		orders = append(orders, &entity.Order{
			ID:        string(rune('a' + i)),
			Status:    entity.OrderStatusDelivered,
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		})
	}
	stats, err := e.Aggregate(nil, orders, now)
	require.NoError(t, err)
	assert.Len(t, stats.RecentOrders, 5)
}
