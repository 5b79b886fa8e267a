package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/medtrack/medtrack-api/internal/application/alerts"
	"github.com/medtrack/medtrack-api/internal/application/dto"
	"github.com/medtrack/medtrack-api/internal/domain"
)

// AlertHandler expone las alertas de inventario (solo admin y pharmacist).
type AlertHandler struct {
	uc *alerts.AlertsUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.AlertsUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// GetAlerts godoc
// @Summary      Alertas de stock bajo y vencimientos
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	out, err := h.uc.GetAlerts(c.Context())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidData) {
			// Registro corrupto en el snapshot: mejor 500 explícito que una
			// clasificación parcial en silencio.
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INVALID_DATA", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DownloadReport godoc
// @Summary      Descargar el reporte PDF de alertas
// @Tags         alerts
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  byte
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/report [get]
func (h *AlertHandler) DownloadReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadAlertsReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
