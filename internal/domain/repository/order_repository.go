package repository

import (
	"context"

	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	// UpdateStatus persiste el nuevo estado. El caller ya validó la transición
	// con domain/order; este método no re-valida.
	UpdateStatus(id string, status entity.OrderStatus) error
	List(status entity.OrderStatus, limit, offset int) ([]*entity.Order, error)

	// Snapshot devuelve todas las órdenes por CreatedAt descendente, para el
	// dashboard (lectura pura).
	Snapshot(ctx context.Context) ([]*entity.Order, error)
}
