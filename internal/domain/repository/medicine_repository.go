package repository

import (
	"context"

	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// MedicineRepository define el puerto de persistencia para Medicine (DIP).
type MedicineRepository interface {
	Create(medicine *entity.Medicine) error
	GetByID(id string) (*entity.Medicine, error)
	GetByBatchNo(batchNo string) (*entity.Medicine, error)
	Update(medicine *entity.Medicine) error
	List(limit, offset int) ([]*entity.Medicine, error)
	Delete(id string) error

	// Snapshot devuelve el inventario completo ordenado por nombre, para el
	// motor de alertas y el dashboard (lectura pura, sin paginación).
	Snapshot(ctx context.Context) ([]*entity.Medicine, error)
}
