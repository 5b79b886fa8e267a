// Package access implementa la política de acceso por roles: decisiones
// permitir/denegar y el filtrado del menú de navegación.
//
// Todas las funciones son puras: reciben el conjunto de roles del usuario y
// el requisito del recurso como parámetros explícitos; no leen estado de
// sesión ni globals. La autenticación previa (¿hay usuario?) es
// responsabilidad del colaborador externo (middleware HTTP), no de este
// paquete.
package access

import (
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// NavigationItem entrada del menú de navegación. RequiredRoles vacío = pública.
type NavigationItem struct {
	Path          string        `json:"path"`
	Label         string        `json:"label"`
	RequiredRoles []entity.Role `json:"required_roles"`
}

// DefaultNavigation menú estático de la aplicación. El orden es contrato:
// VisibleNavigation nunca reordena.
var DefaultNavigation = []NavigationItem{
	{Path: "/", Label: "Dashboard", RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RoleSupplier, entity.RolePharmacist}},
	{Path: "/inventory", Label: "Inventory", RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RoleSupplier, entity.RolePharmacist}},
	{Path: "/orders", Label: "Orders", RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RoleSupplier, entity.RolePharmacist}},
	{Path: "/alerts", Label: "Alerts", RequiredRoles: []entity.Role{entity.RoleAdmin, entity.RolePharmacist}},
	{Path: "/users", Label: "Users", RequiredRoles: []entity.Role{entity.RoleAdmin}},
}

// CanAccess decide si un usuario con userRoles puede acceder a un recurso que
// exige requiredRoles. Retorna true si requiredRoles está vacío (recurso
// público) o si la intersección de ambos conjuntos no es vacía.
//
// Ambos argumentos se validan contra el enum cerrado: un valor fuera del
// conjunto retorna ErrInvalidRole en lugar de un false silencioso, para que
// datos corruptos del store no pasen como denegaciones legítimas.
func CanAccess(userRoles, requiredRoles []entity.Role) (bool, error) {
	if err := validateRoles(userRoles); err != nil {
		return false, err
	}
	if err := validateRoles(requiredRoles); err != nil {
		return false, err
	}
	if len(requiredRoles) == 0 {
		return true, nil
	}
	for _, need := range requiredRoles {
		for _, have := range userRoles {
			if have == need {
				return true, nil
			}
		}
	}
	return false, nil
}

// HasRole prueba de pertenencia exacta (case-sensitive, sin normalización).
// role fuera del enum cerrado retorna ErrInvalidRole.
func HasRole(userRoles []entity.Role, role entity.Role) (bool, error) {
	if err := validateRoles(userRoles); err != nil {
		return false, err
	}
	if !role.Valid() {
		return false, invalidRole(role)
	}
	for _, have := range userRoles {
		if have == role {
			return true, nil
		}
	}
	return false, nil
}

// VisibleNavigation filtra items al subconjunto visible para userRoles,
// preservando el orden de entrada (subsecuencia estricta, nunca reordena).
func VisibleNavigation(userRoles []entity.Role, items []NavigationItem) ([]NavigationItem, error) {
	visible := make([]NavigationItem, 0, len(items))
	for _, item := range items {
		ok, err := CanAccess(userRoles, item.RequiredRoles)
		if err != nil {
			return nil, err
		}
		if ok {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

func validateRoles(roles []entity.Role) error {
	for _, r := range roles {
		if !r.Valid() {
			return invalidRole(r)
		}
	}
	return nil
}

func invalidRole(r entity.Role) error {
	_, err := entity.ParseRole(string(r))
	return err
}
