package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs derivados del snapshot de inventario y órdenes al momento del request.
type DashboardSummaryDTO struct {
	TotalMedicines int `json:"total_medicines"`
	LowStockCount  int `json:"low_stock_count"`
	ExpiringCount  int `json:"expiring_count"` // próximos a vencer o vencidos
	PendingOrders  int `json:"pending_orders"`

	// Valor total de inventario: Σ quantity · unit_price, aritmética decimal.
	TotalValue decimal.Decimal `json:"total_value"`

	// N órdenes más recientes por fecha de creación descendente.
	RecentOrders []OrderResponse `json:"recent_orders"`
}
