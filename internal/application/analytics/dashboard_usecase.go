// Package analytics contiene el caso de uso del resumen del dashboard:
// KPIs de inventario y órdenes derivados de un snapshot al momento del request.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/medtrack/medtrack-api/internal/application/dto"
	"github.com/medtrack/medtrack-api/internal/domain/alert"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen de KPIs para la pantalla principal.
//
// Fuente de datos: snapshots read-only de medicamentos y órdenes; los
// agregados los computa el motor de alertas (domain/alert), no la DB.
type DashboardUseCase struct {
	medicineRepo repository.MedicineRepository
	orderRepo    repository.OrderRepository
	engine       *alert.Engine
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	medicineRepo repository.MedicineRepository,
	orderRepo repository.OrderRepository,
	engine *alert.Engine,
) *DashboardUseCase {
	return &DashboardUseCase{
		medicineRepo: medicineRepo,
		orderRepo:    orderRepo,
		engine:       engine,
		now:          time.Now,
	}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos consultas en paralelo:
//  1. Snapshot de inventario → total, stock bajo, vencimientos, valor total
//  2. Snapshot de órdenes    → pendientes + N más recientes
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type medicinesResult struct {
		items []*entity.Medicine
		err   error
	}
	type ordersResult struct {
		items []*entity.Order
		err   error
	}

	medCh := make(chan medicinesResult, 1)
	ordCh := make(chan ordersResult, 1)

	go func() {
		items, err := uc.medicineRepo.Snapshot(ctx)
		medCh <- medicinesResult{items, err}
	}()
	go func() {
		items, err := uc.orderRepo.Snapshot(ctx)
		ordCh <- ordersResult{items, err}
	}()

	meds := <-medCh
	ords := <-ordCh

	if meds.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot de inventario: %w", meds.err)
	}
	if ords.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot de órdenes: %w", ords.err)
	}

	stats, err := uc.engine.Aggregate(meds.items, ords.items, uc.now())
	if err != nil {
		return nil, fmt.Errorf("dashboard: agregados: %w", err)
	}

	recent := make([]dto.OrderResponse, 0, len(stats.RecentOrders))
	for _, o := range stats.RecentOrders {
		recent = append(recent, *dto.ToOrderResponse(o))
	}

	return &dto.DashboardSummaryDTO{
		TotalMedicines: stats.TotalMedicines,
		LowStockCount:  stats.LowStockCount,
		ExpiringCount:  stats.ExpiringCount,
		PendingOrders:  stats.PendingOrders,
		TotalValue:     stats.TotalValue.Round(2),
		RecentOrders:   recent,
	}, nil
}
