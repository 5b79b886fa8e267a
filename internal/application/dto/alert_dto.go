package dto

// AlertItemDTO un medicamento en alguna de las listas de alertas.
type AlertItemDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	BatchNo         string `json:"batch_no"`
	Quantity        int64  `json:"quantity"`
	ReorderLevel    int64  `json:"reorder_level"`
	ExpiryDate      string `json:"expiry_date"` // "2006-01-02"
	DaysUntilExpiry int    `json:"days_until_expiry"`
	Expired         bool   `json:"expired"`
}

// AlertsResponse respuesta de GET /api/alerts: dos listas independientes que
// preservan el orden del snapshot; un medicamento puede aparecer en ambas.
type AlertsResponse struct {
	LowStock          []AlertItemDTO `json:"low_stock"`
	ExpiringOrExpired []AlertItemDTO `json:"expiring_or_expired"`
	ExpiryWindowDays  int            `json:"expiry_window_days"`
	GeneratedAt       string         `json:"generated_at"` // RFC 3339
}
