package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/medtrack/medtrack-api/internal/application/dto"
	"github.com/medtrack/medtrack-api/internal/domain/access"
)

// NavigationHandler expone el menú de navegación visible para el usuario
// autenticado: el cliente pinta exactamente lo que esta ruta devuelve.
type NavigationHandler struct{}

// NewNavigationHandler construye el handler.
func NewNavigationHandler() *NavigationHandler { return &NavigationHandler{} }

// Get godoc
// @Summary      Menú de navegación visible para el usuario autenticado
// @Tags         navigation
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  access.NavigationItem
// @Router       /api/navigation [get]
func (h *NavigationHandler) Get(c *fiber.Ctx) error {
	visible, err := access.VisibleNavigation(GetRoles(c), access.DefaultNavigation)
	if err != nil {
		// Los roles ya pasaron por ParseRoles en el middleware; esto no
		// debería ocurrir.
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(visible)
}
