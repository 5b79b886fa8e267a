package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine representa un medicamento en inventario.
// Quantity y ReorderLevel son independientes entre sí; la relación entre ambos
// la interpreta el motor de alertas, no la entidad.
type Medicine struct {
	ID           string
	Name         string
	BatchNo      string // lote del fabricante, único por medicamento
	Category     string
	Manufacturer string
	ExpiryDate   time.Time       // fecha calendario (sin componente horario relevante)
	Quantity     int64           // unidades en existencia, no negativo
	UnitPrice    decimal.Decimal // precio unitario, no negativo
	ReorderLevel int64           // umbral de reposición, no negativo
	SupplierID   string          // usuario que registró el medicamento
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
