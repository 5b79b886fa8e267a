package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/access"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

func roles(rs ...entity.Role) []entity.Role { return rs }

// ──────────────────────────────────────────────────────────────────────────────
// CanAccess
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad: canAccess({r}, R) == R vacío || R contiene r, para todo el enum.
func TestCanAccess_LeyDeInterseccion(t *testing.T) {
	requiredSets := [][]entity.Role{
		{},
		{entity.RoleAdmin},
		{entity.RoleSupplier},
		{entity.RolePharmacist},
		{entity.RoleAdmin, entity.RoleSupplier},
		{entity.RoleAdmin, entity.RolePharmacist},
		{entity.RoleAdmin, entity.RoleSupplier, entity.RolePharmacist},
	}
	for _, r := range entity.AllRoles {
		for _, required := range requiredSets {
			want := len(required) == 0
			for _, req := range required {
				if req == r {
					want = true
				}
			}
			got, err := access.CanAccess(roles(r), required)
			require.NoError(t, err)
			assert.Equal(t, want, got, "rol %s, requeridos %v", r, required)
		}
	}
}

// Caso de referencia: supplier pidiendo ruta que exige {admin} → denegado;
// ruta pública ({}) → permitido sin importar el rol.
func TestCanAccess_SupplierEnRutaAdmin(t *testing.T) {
	got, err := access.CanAccess(roles(entity.RoleSupplier), roles(entity.RoleAdmin))
	require.NoError(t, err)
	assert.False(t, got)

	got, err = access.CanAccess(roles(entity.RoleSupplier), nil)
	require.NoError(t, err)
	assert.True(t, got)
}

// Usuario sin roles: solo las rutas públicas son accesibles.
func TestCanAccess_SinRoles(t *testing.T) {
	got, err := access.CanAccess(nil, roles(entity.RoleAdmin))
	require.NoError(t, err)
	assert.False(t, got)

	got, err = access.CanAccess(nil, nil)
	require.NoError(t, err)
	assert.True(t, got, "ruta pública accesible incluso sin roles")
}

// Multi-rol: basta con que un rol del usuario esté en el conjunto requerido.
func TestCanAccess_MultiRol(t *testing.T) {
	got, err := access.CanAccess(
		roles(entity.RoleSupplier, entity.RolePharmacist),
		roles(entity.RolePharmacist),
	)
	require.NoError(t, err)
	assert.True(t, got)
}

// Un rol fuera del enum cerrado debe fallar con ErrInvalidRole, nunca
// retornar false en silencio.
func TestCanAccess_RolInvalidoFalla(t *testing.T) {
	_, err := access.CanAccess(roles(entity.Role("superuser")), roles(entity.RoleAdmin))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)

	_, err = access.CanAccess(roles(entity.RoleAdmin), roles(entity.Role("root")))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

// Case-sensitive: "Admin" no es "admin".
func TestCanAccess_SinNormalizacion(t *testing.T) {
	_, err := access.CanAccess(roles(entity.Role("Admin")), roles(entity.RoleAdmin))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

// ──────────────────────────────────────────────────────────────────────────────
// HasRole
// ──────────────────────────────────────────────────────────────────────────────

func TestHasRole_PertenenciaExacta(t *testing.T) {
	userRoles := roles(entity.RoleSupplier, entity.RolePharmacist)

	got, err := access.HasRole(userRoles, entity.RoleSupplier)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = access.HasRole(userRoles, entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestHasRole_RolInvalidoFalla(t *testing.T) {
	_, err := access.HasRole(roles(entity.RoleAdmin), entity.Role("ADMIN"))
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

// ──────────────────────────────────────────────────────────────────────────────
// VisibleNavigation
// ──────────────────────────────────────────────────────────────────────────────

// La salida siempre es una subsecuencia de la entrada que preserva el orden.
func TestVisibleNavigation_SubsecuenciaOrdenada(t *testing.T) {
	for _, r := range entity.AllRoles {
		visible, err := access.VisibleNavigation(roles(r), access.DefaultNavigation)
		require.NoError(t, err)

		// Verificar subsecuencia: cada item visible aparece en la entrada
		// en la misma posición relativa.
		idx := 0
		for _, item := range visible {
			found := false
			for ; idx < len(access.DefaultNavigation); idx++ {
				if access.DefaultNavigation[idx].Path == item.Path {
					found = true
					idx++
					break
				}
			}
			require.True(t, found, "item %s fuera de orden para rol %s", item.Path, r)
		}
	}
}

// Visibilidad por rol según el menú estático: pharmacist ve alerts pero no
// users; supplier no ve ninguno de los dos; admin lo ve todo.
func TestVisibleNavigation_PorRol(t *testing.T) {
	paths := func(items []access.NavigationItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Path)
		}
		return out
	}

	admin, err := access.VisibleNavigation(roles(entity.RoleAdmin), access.DefaultNavigation)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/inventory", "/orders", "/alerts", "/users"}, paths(admin))

	supplier, err := access.VisibleNavigation(roles(entity.RoleSupplier), access.DefaultNavigation)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/inventory", "/orders"}, paths(supplier))

	pharmacist, err := access.VisibleNavigation(roles(entity.RolePharmacist), access.DefaultNavigation)
	require.NoError(t, err)
	assert.Equal(t, []string{"/", "/inventory", "/orders", "/alerts"}, paths(pharmacist))
}

// Sin roles: nada del menú por defecto es visible (no hay items públicos).
func TestVisibleNavigation_SinRoles(t *testing.T) {
	visible, err := access.VisibleNavigation(nil, access.DefaultNavigation)
	require.NoError(t, err)
	assert.Empty(t, visible)
}

// Items públicos (RequiredRoles vacío) se incluyen para cualquier usuario.
func TestVisibleNavigation_ItemPublico(t *testing.T) {
	items := []access.NavigationItem{
		{Path: "/about", Label: "About"},
		{Path: "/users", Label: "Users", RequiredRoles: roles(entity.RoleAdmin)},
	}
	visible, err := access.VisibleNavigation(roles(entity.RolePharmacist), items)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "/about", visible[0].Path)
}
