package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/medtrack/medtrack-api/internal/application/dto"
	"github.com/medtrack/medtrack-api/internal/domain/alert"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/repository"
)

// AlertsUseCase orquesta el motor de alertas sobre un snapshot fresco de
// inventario: trae los datos, delega la clasificación al dominio y arma los
// DTOs de salida. El "ahora" se inyecta como función para poder fijarlo en tests.
type AlertsUseCase struct {
	medicineRepo repository.MedicineRepository
	engine       *alert.Engine
	generator    ReportPDFGenerator
	now          func() time.Time
}

// NewAlertsUseCase construye el caso de uso. generator puede ser nil si el
// reporte PDF no está habilitado.
func NewAlertsUseCase(medicineRepo repository.MedicineRepository, engine *alert.Engine, generator ReportPDFGenerator) *AlertsUseCase {
	return &AlertsUseCase{
		medicineRepo: medicineRepo,
		engine:       engine,
		generator:    generator,
		now:          time.Now,
	}
}

// GetAlerts clasifica el inventario actual en las dos listas de alertas.
// Ambas listas preservan el orden del snapshot (alfabético por nombre) y un
// medicamento puede aparecer en las dos a la vez.
func (uc *AlertsUseCase) GetAlerts(ctx context.Context) (*dto.AlertsResponse, error) {
	now := uc.now()
	classified, err := uc.classify(ctx, now)
	if err != nil {
		return nil, err
	}
	return &dto.AlertsResponse{
		LowStock:          toAlertItems(classified.LowStock, now),
		ExpiringOrExpired: toAlertItems(classified.ExpiringOrExpired, now),
		ExpiryWindowDays:  uc.engine.WindowDays(),
		GeneratedAt:       now.UTC().Format(time.RFC3339),
	}, nil
}

// DownloadAlertsReport genera el reporte PDF de alertas del momento actual.
// Retorna (pdfBytes, filename, nil) si todo sale bien.
func (uc *AlertsUseCase) DownloadAlertsReport(ctx context.Context) ([]byte, string, error) {
	if uc.generator == nil {
		return nil, "", fmt.Errorf("alertas: generador PDF no configurado")
	}
	now := uc.now()
	classified, err := uc.classify(ctx, now)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.generator.GenerateAlertsReport(ctx, classified, uc.engine.WindowDays(), now)
	if err != nil {
		return nil, "", fmt.Errorf("alertas: generación de PDF fallida: %w", err)
	}
	filename := fmt.Sprintf("alertas_%s.pdf", now.UTC().Format("20060102"))
	return pdfBytes, filename, nil
}

func (uc *AlertsUseCase) classify(ctx context.Context, now time.Time) (*alert.Classification, error) {
	snapshot, err := uc.medicineRepo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("alertas: snapshot de inventario: %w", err)
	}
	return uc.engine.Classify(snapshot, now)
}

func toAlertItems(items []*entity.Medicine, now time.Time) []dto.AlertItemDTO {
	out := make([]dto.AlertItemDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.AlertItemDTO{
			ID:              m.ID,
			Name:            m.Name,
			BatchNo:         m.BatchNo,
			Quantity:        m.Quantity,
			ReorderLevel:    m.ReorderLevel,
			ExpiryDate:      m.ExpiryDate.Format(dto.DateLayout),
			DaysUntilExpiry: alert.DaysUntilExpiry(m, now),
			Expired:         alert.IsExpired(m, now),
		})
	}
	return out
}
