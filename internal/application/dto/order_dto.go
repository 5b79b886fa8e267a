package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// CreateOrderRequest entrada para crear una orden. El estado inicial siempre
// es pending; el request no puede fijarlo.
type CreateOrderRequest struct {
	OrderType   string          `json:"order_type" validate:"required,oneof=purchase issue"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes"`
}

// UpdateOrderStatusRequest entrada para transicionar el estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	ID          string          `json:"id"`
	OrderType   string          `json:"order_type"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Notes       string          `json:"notes"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ToOrderResponse convierte la entidad en su DTO de salida.
func ToOrderResponse(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	return &OrderResponse{
		ID:          o.ID,
		OrderType:   string(o.OrderType),
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Notes:       o.Notes,
		CreatedBy:   o.CreatedBy,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
