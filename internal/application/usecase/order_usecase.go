package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medtrack/medtrack-api/internal/application/dto"
	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/access"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/order"
	"github.com/medtrack/medtrack-api/internal/domain/repository"
)

// OrderUseCase casos de uso para órdenes: creación y transiciones de estado.
// Las transiciones las valida la máquina de estados de domain/order antes de
// tocar la persistencia; un rechazo nunca muta la orden.
type OrderUseCase struct {
	repo repository.OrderRepository
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(repo repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Create crea una orden con estado inicial pending. Solo supplier y
// pharmacist crean órdenes (la creación no es una transición).
func (uc *OrderUseCase) Create(createdBy string, actorRoles []entity.Role, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	canCreate, err := access.CanAccess(actorRoles, order.CreatorRoles)
	if err != nil {
		return nil, err
	}
	if !canCreate {
		return nil, fmt.Errorf("%w: solo supplier o pharmacist pueden crear órdenes", domain.ErrUnauthorized)
	}
	orderType, err := entity.ParseOrderType(in.OrderType)
	if err != nil {
		return nil, err
	}
	if in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	o := &entity.Order{
		ID:          uuid.New().String(),
		OrderType:   orderType,
		Status:      entity.OrderStatusPending,
		TotalAmount: in.TotalAmount,
		Notes:       in.Notes,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(o); err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(o), nil
}

// GetByID obtiene una orden por ID.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return dto.ToOrderResponse(o), nil
}

// UpdateStatus transiciona el estado de una orden. La autoridad (solo admin)
// y la validez del movimiento las decide domain/order; si el validador
// rechaza, el estado persistido no cambia.
func (uc *OrderUseCase) UpdateStatus(id string, actorRoles []entity.Role, in dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	target, err := entity.ParseOrderStatus(in.Status)
	if err != nil {
		return nil, err
	}
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if err := order.Transition(actorRoles, o.Status, target); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(id, target); err != nil {
		return nil, err
	}
	o.Status = target
	o.UpdatedAt = time.Now()
	return dto.ToOrderResponse(o), nil
}

// List lista órdenes por fecha descendente, con filtro opcional de estado y
// búsqueda. statusFilter vacío o "all" = todas; otro valor se valida contra
// el enum. search filtra en memoria sobre id, tipo y notas (insensible a
// mayúsculas y diacríticos, igual que la búsqueda de medicamentos).
func (uc *OrderUseCase) List(ctx context.Context, statusFilter, search string, limit, offset int) (*dto.OrderListResponse, error) {
	var status entity.OrderStatus
	if statusFilter != "" && statusFilter != "all" {
		var err error
		status, err = entity.ParseOrderStatus(statusFilter)
		if err != nil {
			return nil, err
		}
	}

	var (
		list []*entity.Order
		err  error
	)
	if search == "" {
		list, err = uc.repo.List(status, limit, offset)
		if err != nil {
			return nil, err
		}
	} else {
		snapshot, err := uc.repo.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		needle := searchFold(search)
		filtered := make([]*entity.Order, 0, len(snapshot))
		for _, o := range snapshot {
			if status != "" && o.Status != status {
				continue
			}
			if strings.Contains(searchFold(o.ID), needle) ||
				strings.Contains(searchFold(string(o.OrderType)), needle) ||
				strings.Contains(searchFold(o.Notes), needle) {
				filtered = append(filtered, o)
			}
		}
		if offset > len(filtered) {
			offset = len(filtered)
		}
		end := offset + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		list = filtered[offset:end]
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *dto.ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}
