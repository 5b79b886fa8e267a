// Package order implementa la máquina de estados del ciclo de vida de una
// orden y quién está autorizado a moverla.
//
// Grafo de transiciones (solo avanza):
//
//	pending  → approved | cancelled
//	approved → shipped  | cancelled
//	shipped  → delivered
//
// delivered y cancelled son terminales. La creación de la orden no es una
// transición: el estado inicial siempre es pending y lo fija el creador
// (supplier o pharmacist). Solo admin puede ejecutar transiciones.
package order

import (
	"fmt"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/access"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// transitions tabla de transiciones válidas. Estados sin entrada son terminales.
var transitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.OrderStatusPending:  {entity.OrderStatusApproved, entity.OrderStatusCancelled},
	entity.OrderStatusApproved: {entity.OrderStatusShipped, entity.OrderStatusCancelled},
	entity.OrderStatusShipped:  {entity.OrderStatusDelivered},
}

// CanTransition reporta si from→to está en la tabla. No valida autoridad;
// para eso está Transition. Estados fuera del enum retornan false.
func CanTransition(from, to entity.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CreatorRoles roles autorizados a crear órdenes (la creación no es transición).
var CreatorRoles = []entity.Role{entity.RoleSupplier, entity.RolePharmacist}

// Transition valida que un actor con actorRoles pueda mover una orden de from
// a to. Es un validador puro: no muta nada; el caller persiste el cambio solo
// si el retorno es nil.
//
//   - Estados fuera del enum cerrado → ErrInvalidData.
//   - Actor sin el rol admin → ErrUnauthorized.
//   - Movimiento fuera de la tabla (incluye estados terminales) → ErrInvalidTransition.
func Transition(actorRoles []entity.Role, from, to entity.OrderStatus) error {
	if !from.Valid() {
		return fmt.Errorf("%w: estado de origen %q", domain.ErrInvalidData, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: estado de destino %q", domain.ErrInvalidData, to)
	}
	isAdmin, err := access.HasRole(actorRoles, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if !isAdmin {
		return fmt.Errorf("%w: solo admin puede cambiar el estado de una orden", domain.ErrUnauthorized)
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}
