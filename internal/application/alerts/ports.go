package alerts

import (
	"context"
	"time"

	"github.com/medtrack/medtrack-api/internal/domain/alert"
)

// ReportPDFGenerator abstrae la generación del reporte PDF de alertas para no
// acoplar el caso de uso a la librería concreta (Maroto).
type ReportPDFGenerator interface {
	GenerateAlertsReport(ctx context.Context, c *alert.Classification, windowDays int, generatedAt time.Time) ([]byte, error)
}
