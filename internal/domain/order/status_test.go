package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/order"
)

var adminRoles = []entity.Role{entity.RoleAdmin}

// ──────────────────────────────────────────────────────────────────────────────
// CanTransition — tabla de la máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_Tabla(t *testing.T) {
	valid := map[[2]entity.OrderStatus]bool{
		{entity.OrderStatusPending, entity.OrderStatusApproved}:  true,
		{entity.OrderStatusPending, entity.OrderStatusCancelled}: true,
		{entity.OrderStatusApproved, entity.OrderStatusShipped}:  true,
		{entity.OrderStatusApproved, entity.OrderStatusCancelled}: true,
		{entity.OrderStatusShipped, entity.OrderStatusDelivered}: true,
	}

	all := []entity.OrderStatus{
		entity.OrderStatusPending, entity.OrderStatusApproved, entity.OrderStatusShipped,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled,
	}
	for _, from := range all {
		for _, to := range all {
			want := valid[[2]entity.OrderStatus{from, to}]
			assert.Equal(t, want, order.CanTransition(from, to), "%s → %s", from, to)
		}
	}
}

// pending → shipped directo siempre es inválido (debe pasar por approved).
func TestTransition_PendingAShippedDirecto(t *testing.T) {
	err := order.Transition(adminRoles, entity.OrderStatusPending, entity.OrderStatusShipped)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// delivered y cancelled son terminales: ninguna salida es válida.
func TestTransition_EstadosTerminales(t *testing.T) {
	targets := []entity.OrderStatus{
		entity.OrderStatusPending, entity.OrderStatusApproved, entity.OrderStatusShipped,
		entity.OrderStatusDelivered, entity.OrderStatusCancelled,
	}
	for _, terminal := range []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		for _, to := range targets {
			err := order.Transition(adminRoles, terminal, to)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition, "%s → %s", terminal, to)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transition — autoridad
// ──────────────────────────────────────────────────────────────────────────────

// Solo admin puede transicionar; una transición válida en la tabla sigue
// fallando con Unauthorized para los demás roles.
func TestTransition_SoloAdmin(t *testing.T) {
	for _, r := range []entity.Role{entity.RoleSupplier, entity.RolePharmacist} {
		err := order.Transition([]entity.Role{r}, entity.OrderStatusPending, entity.OrderStatusApproved)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "rol %s", r)
	}

	err := order.Transition(nil, entity.OrderStatusPending, entity.OrderStatusApproved)
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "sin roles")
}

func TestTransition_AdminValida(t *testing.T) {
	assert.NoError(t, order.Transition(adminRoles, entity.OrderStatusPending, entity.OrderStatusApproved))
	assert.NoError(t, order.Transition(adminRoles, entity.OrderStatusApproved, entity.OrderStatusShipped))
	assert.NoError(t, order.Transition(adminRoles, entity.OrderStatusShipped, entity.OrderStatusDelivered))
	assert.NoError(t, order.Transition(adminRoles, entity.OrderStatusApproved, entity.OrderStatusCancelled))
}

// Admin con multi-rol: basta tener admin en el conjunto.
func TestTransition_AdminEnConjuntoMultiRol(t *testing.T) {
	actor := []entity.Role{entity.RolePharmacist, entity.RoleAdmin}
	assert.NoError(t, order.Transition(actor, entity.OrderStatusPending, entity.OrderStatusCancelled))
}

// ──────────────────────────────────────────────────────────────────────────────
// Transition — datos malformados
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_EstadoFueraDelEnum(t *testing.T) {
	err := order.Transition(adminRoles, entity.OrderStatus("archived"), entity.OrderStatusApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidData)

	err = order.Transition(adminRoles, entity.OrderStatusPending, entity.OrderStatus("done"))
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestTransition_RolFueraDelEnum(t *testing.T) {
	err := order.Transition([]entity.Role{"root"}, entity.OrderStatusPending, entity.OrderStatusApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}
