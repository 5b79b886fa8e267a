package entity

import (
	"fmt"

	"github.com/medtrack/medtrack-api/internal/domain"
)

// Role es el conjunto cerrado de roles del sistema. Cualquier otro valor es inválido
// y debe rechazarse en la frontera (ParseRole), nunca propagarse hacia el dominio.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupplier   Role = "supplier"
	RolePharmacist Role = "pharmacist"
)

// AllRoles en orden estable (útil para validación y seeds).
var AllRoles = []Role{RoleAdmin, RoleSupplier, RolePharmacist}

// Valid reporta si r pertenece al conjunto cerrado. Case-sensitive, sin normalización.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupplier, RolePharmacist:
		return true
	}
	return false
}

// String implementa fmt.Stringer.
func (r Role) String() string { return string(r) }

// ParseRole convierte un valor crudo (DB, JWT, request) en Role.
// Retorna ErrInvalidRole si el valor está fuera del conjunto cerrado.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRole, s)
	}
	return r, nil
}

// ParseRoles convierte una lista cruda de roles. Falla ante el primer valor inválido.
func ParseRoles(raw []string) ([]Role, error) {
	roles := make([]Role, 0, len(raw))
	for _, s := range raw {
		r, err := ParseRole(s)
		if err != nil {
			return nil, err
		}
		roles = append(roles, r)
	}
	return roles, nil
}

// RolesToStrings convierte []Role a []string (claims JWT, persistencia).
func RolesToStrings(roles []Role) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}
