package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// CreateMedicineRequest entrada para crear un medicamento.
// ExpiryDate viaja como fecha calendario "2006-01-02" y se valida en la frontera.
type CreateMedicineRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	BatchNo      string          `json:"batch_no" validate:"required,min=1,max=100"`
	Category     string          `json:"category"`
	Manufacturer string          `json:"manufacturer"`
	ExpiryDate   string          `json:"expiry_date" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"min=0"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int64           `json:"reorder_level" validate:"min=0"`
}

// UpdateMedicineRequest entrada para actualizar un medicamento (campos opcionales).
type UpdateMedicineRequest struct {
	Name         *string          `json:"name"`
	BatchNo      *string          `json:"batch_no"`
	Category     *string          `json:"category"`
	Manufacturer *string          `json:"manufacturer"`
	ExpiryDate   *string          `json:"expiry_date"`
	Quantity     *int64           `json:"quantity"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	ReorderLevel *int64           `json:"reorder_level"`
}

// MedicineResponse salida de un medicamento.
type MedicineResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BatchNo      string          `json:"batch_no"`
	Category     string          `json:"category"`
	Manufacturer string          `json:"manufacturer"`
	ExpiryDate   string          `json:"expiry_date"` // "2006-01-02"
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReorderLevel int64           `json:"reorder_level"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// MedicineListResponse lista paginada de medicamentos.
type MedicineListResponse struct {
	Items []MedicineResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToMedicineResponse convierte la entidad en su DTO de salida.
func ToMedicineResponse(m *entity.Medicine) *MedicineResponse {
	if m == nil {
		return nil
	}
	return &MedicineResponse{
		ID:           m.ID,
		Name:         m.Name,
		BatchNo:      m.BatchNo,
		Category:     m.Category,
		Manufacturer: m.Manufacturer,
		ExpiryDate:   m.ExpiryDate.Format(DateLayout),
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		ReorderLevel: m.ReorderLevel,
		SupplierID:   m.SupplierID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
