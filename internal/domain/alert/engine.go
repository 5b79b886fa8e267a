// Package alert deriva alertas de stock y vencimiento a partir de un snapshot
// de inventario y un instante de referencia.
//
// Todas las funciones son puras y deterministas: el snapshot ya fue traído de
// la DB por el caller, y el "ahora" entra como parámetro. La comparación de
// vencimientos es a granularidad de día calendario; el componente horario de
// now es irrelevante.
package alert

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// DefaultExpiryWindowDays ventana por defecto para "próximo a vencer".
const DefaultExpiryWindowDays = 30

// DefaultRecentOrders N por defecto de órdenes recientes en el resumen.
const DefaultRecentOrders = 5

// Engine encapsula los parámetros configurables del motor de alertas.
// El cero value no es usable; construir con NewEngine.
type Engine struct {
	expiryWindowDays int
	recentOrders     int
}

// NewEngine construye el motor. Valores <= 0 caen a los defaults.
func NewEngine(expiryWindowDays, recentOrders int) *Engine {
	if expiryWindowDays <= 0 {
		expiryWindowDays = DefaultExpiryWindowDays
	}
	if recentOrders <= 0 {
		recentOrders = DefaultRecentOrders
	}
	return &Engine{expiryWindowDays: expiryWindowDays, recentOrders: recentOrders}
}

// WindowDays devuelve la ventana de vencimiento configurada, en días.
func (e *Engine) WindowDays() int {
	return e.expiryWindowDays
}

// IsLowStock reporta si el medicamento está en o por debajo de su umbral de
// reposición. Frontera inclusiva: quantity == reorderLevel cuenta como bajo.
func IsLowStock(m *entity.Medicine) bool {
	return m.Quantity <= m.ReorderLevel
}

// ExpiryHorizon devuelve la fecha calendario now + ventana de vencimiento.
func (e *Engine) ExpiryHorizon(now time.Time) time.Time {
	return dateOf(now).AddDate(0, 0, e.expiryWindowDays)
}

// IsExpiringSoon reporta si la fecha de vencimiento cae dentro del horizonte,
// inclusive. Incluye medicamentos ya vencidos: "próximo a vencer" y "vencido"
// no son excluyentes en el predicado; la distinción es de presentación
// (ver IsExpired).
func (e *Engine) IsExpiringSoon(m *entity.Medicine, now time.Time) bool {
	return !dateOf(m.ExpiryDate).After(e.ExpiryHorizon(now))
}

// DaysUntilExpiry devuelve los días calendario hasta el vencimiento,
// redondeando hacia arriba: cualquier fracción de día restante cuenta como un
// día completo (23 horas → 1, no 0). Cero o negativo denota vencido.
func DaysUntilExpiry(m *entity.Medicine, now time.Time) int {
	diff := dateOf(m.ExpiryDate).Sub(dateOf(now))
	return int(diff.Hours() / 24)
}

// IsExpired reporta si el medicamento venció en o antes del instante de referencia.
func IsExpired(m *entity.Medicine, now time.Time) bool {
	return DaysUntilExpiry(m, now) <= 0
}

// Classification resultado de Classify: dos filtros independientes sobre el
// mismo snapshot. Un medicamento puede aparecer en ambos, en uno o en ninguno.
type Classification struct {
	LowStock          []*entity.Medicine
	ExpiringOrExpired []*entity.Medicine
}

// Classify clasifica el snapshot preservando el orden de entrada en ambas
// listas. Un registro con fecha de vencimiento cero (no parseada en la
// frontera) falla con ErrInvalidData en lugar de clasificarse en silencio.
func (e *Engine) Classify(items []*entity.Medicine, now time.Time) (*Classification, error) {
	out := &Classification{
		LowStock:          make([]*entity.Medicine, 0, len(items)),
		ExpiringOrExpired: make([]*entity.Medicine, 0, len(items)),
	}
	for _, m := range items {
		if m.ExpiryDate.IsZero() {
			return nil, fmt.Errorf("%w: medicamento %s sin fecha de vencimiento", domain.ErrInvalidData, m.ID)
		}
		if IsLowStock(m) {
			out.LowStock = append(out.LowStock, m)
		}
		if e.IsExpiringSoon(m, now) {
			out.ExpiringOrExpired = append(out.ExpiringOrExpired, m)
		}
	}
	return out, nil
}

// SummaryStats agregados del dashboard sobre un snapshot de inventario y órdenes.
type SummaryStats struct {
	TotalMedicines    int
	LowStockCount     int
	ExpiringCount     int // próximos a vencer o vencidos
	PendingOrders     int
	TotalValue        decimal.Decimal // Σ quantity · unitPrice, aritmética decimal exacta
	RecentOrders      []*entity.Order // N más recientes por CreatedAt desc, orden estable
	ExpiryWindowDays  int
	RecentOrdersLimit int
}

// Aggregate computa los agregados del dashboard en un paso conceptual.
// El valor total de inventario usa decimal (nunca float): sumas repetidas
// sobre el mismo snapshot producen exactamente el mismo resultado.
// Empates en CreatedAt se resuelven por orden de inserción (sort estable).
func (e *Engine) Aggregate(items []*entity.Medicine, orders []*entity.Order, now time.Time) (*SummaryStats, error) {
	classified, err := e.Classify(items, now)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, m := range items {
		total = total.Add(m.UnitPrice.Mul(decimal.NewFromInt(m.Quantity)))
	}

	pending := 0
	for _, o := range orders {
		if o.Status == entity.OrderStatusPending {
			pending++
		}
	}

	recent := make([]*entity.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > e.recentOrders {
		recent = recent[:e.recentOrders]
	}

	return &SummaryStats{
		TotalMedicines:    len(items),
		LowStockCount:     len(classified.LowStock),
		ExpiringCount:     len(classified.ExpiringOrExpired),
		PendingOrders:     pending,
		TotalValue:        total,
		RecentOrders:      recent,
		ExpiryWindowDays:  e.expiryWindowDays,
		RecentOrdersLimit: e.recentOrders,
	}, nil
}

// dateOf trunca t a su fecha calendario en UTC (00:00). Toda la aritmética de
// vencimientos opera sobre fechas truncadas para que el componente horario no
// afecte el resultado.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
