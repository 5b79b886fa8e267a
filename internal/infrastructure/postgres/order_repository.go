package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, order_type, status, total_amount, notes, created_by, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de persistencia para órdenes. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste una nueva orden (el caller ya fijó status = pending).
func (r *OrderRepo) Create(o *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		o.ID, string(o.OrderType), string(o.Status), o.TotalAmount, o.Notes,
		o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// UpdateStatus persiste el nuevo estado de la orden. La validez de la
// transición ya la decidió domain/order; aquí solo se escribe.
func (r *OrderRepo) UpdateStatus(id string, status entity.OrderStatus) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes por fecha descendente, opcionalmente filtradas por
// estado (status vacío = todas), con paginación.
func (r *OrderRepo) List(status entity.OrderStatus, limit, offset int) ([]*entity.Order, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if status == "" {
		query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		rows, err = r.q.Query(context.Background(), query, limit, offset)
	} else {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		rows, err = r.q.Query(context.Background(), query, string(status), limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// Snapshot devuelve todas las órdenes por CreatedAt descendente (lectura pura
// para el dashboard).
func (r *OrderRepo) Snapshot(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// scanOrder valida en la frontera: tipo y estado fuera del enum almacenados
// en la DB se rechazan con ErrInvalidData en lugar de propagarse al dominio.
func scanOrder(row pgx.Row) (*entity.Order, error) {
	var (
		o             entity.Order
		rawType, rawS string
	)
	err := row.Scan(&o.ID, &rawType, &rawS, &o.TotalAmount, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if o.OrderType, err = entity.ParseOrderType(rawType); err != nil {
		return nil, err
	}
	if o.Status, err = entity.ParseOrderStatus(rawS); err != nil {
		return nil, err
	}
	return &o, nil
}

func scanOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var list []*entity.Order
	for rows.Next() {
		var (
			o             entity.Order
			rawType, rawS string
		)
		if err := rows.Scan(&o.ID, &rawType, &rawS, &o.TotalAmount, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		var err error
		if o.OrderType, err = entity.ParseOrderType(rawType); err != nil {
			return nil, err
		}
		if o.Status, err = entity.ParseOrderStatus(rawS); err != nil {
			return nil, err
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
