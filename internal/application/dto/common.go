package dto

import (
	"fmt"
	"time"

	"github.com/medtrack/medtrack-api/internal/domain"
)

// DateLayout formato de fechas calendario en la API (fechas de vencimiento).
const DateLayout = "2006-01-02"

// ParseExpiryDate frontera de deserialización para fechas calendario: una
// fecha no parseable retorna ErrInvalidData, nunca un time.Time cero
// silencioso hacia el dominio.
func ParseExpiryDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha %q (formato esperado %s)", domain.ErrInvalidData, s, DateLayout)
	}
	return t, nil
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
