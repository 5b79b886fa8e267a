package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/medtrack/medtrack-api/internal/domain"
)

// OrderType tipo de orden: compra a proveedor o salida de farmacia.
type OrderType string

const (
	OrderTypePurchase OrderType = "purchase"
	OrderTypeIssue    OrderType = "issue"
)

// Valid reporta si t pertenece al conjunto cerrado.
func (t OrderType) Valid() bool {
	return t == OrderTypePurchase || t == OrderTypeIssue
}

// ParseOrderType convierte un valor crudo en OrderType o falla con ErrInvalidData.
func ParseOrderType(s string) (OrderType, error) {
	t := OrderType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: tipo de orden %q", domain.ErrInvalidData, s)
	}
	return t, nil
}

// OrderStatus estado del ciclo de vida de una orden (solo avanza; ver domain/order).
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reporta si s pertenece al conjunto cerrado de estados.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// ParseOrderStatus convierte un valor crudo en OrderStatus o falla con ErrInvalidData.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: estado de orden %q", domain.ErrInvalidData, raw)
	}
	return s, nil
}

// Order representa una orden de compra o de salida.
type Order struct {
	ID          string
	OrderType   OrderType
	Status      OrderStatus
	TotalAmount decimal.Decimal // no negativo
	Notes       string
	CreatedBy   string // ID del usuario creador (supplier o pharmacist)
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
