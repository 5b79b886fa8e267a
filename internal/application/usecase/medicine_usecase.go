package usecase

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/medtrack/medtrack-api/internal/application/dto"
	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/repository"
)

// MedicineUseCase casos de uso CRUD y búsqueda para medicamentos.
// Las reglas de quién puede invocar cada operación viven en el middleware
// RBAC; aquí solo hay lógica de datos.
type MedicineUseCase struct {
	repo repository.MedicineRepository
}

// NewMedicineUseCase construye el caso de uso.
func NewMedicineUseCase(repo repository.MedicineRepository) *MedicineUseCase {
	return &MedicineUseCase{repo: repo}
}

// Create crea un nuevo medicamento. La fecha de vencimiento se valida en la
// frontera (ErrInvalidData si no parsea); las cantidades no pueden ser negativas.
func (uc *MedicineUseCase) Create(supplierID string, in dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	expiry, err := dto.ParseExpiryDate(in.ExpiryDate)
	if err != nil {
		return nil, err
	}
	if in.Quantity < 0 || in.ReorderLevel < 0 || in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByBatchNo(in.BatchNo)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := in.Category
	if category == "" {
		category = "General"
	}
	m := &entity.Medicine{
		ID:           uuid.New().String(),
		Name:         in.Name,
		BatchNo:      in.BatchNo,
		Category:     category,
		Manufacturer: in.Manufacturer,
		ExpiryDate:   expiry,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		ReorderLevel: in.ReorderLevel,
		SupplierID:   supplierID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return dto.ToMedicineResponse(m), nil
}

// GetByID obtiene un medicamento por ID.
func (uc *MedicineUseCase) GetByID(id string) (*dto.MedicineResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	return dto.ToMedicineResponse(m), nil
}

// Update actualiza un medicamento (campos opcionales).
func (uc *MedicineUseCase) Update(id string, in dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.BatchNo != nil {
		m.BatchNo = *in.BatchNo
	}
	if in.Category != nil {
		m.Category = *in.Category
	}
	if in.Manufacturer != nil {
		m.Manufacturer = *in.Manufacturer
	}
	if in.ExpiryDate != nil {
		expiry, err := dto.ParseExpiryDate(*in.ExpiryDate)
		if err != nil {
			return nil, err
		}
		m.ExpiryDate = expiry
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		m.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		m.UnitPrice = *in.UnitPrice
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		m.ReorderLevel = *in.ReorderLevel
	}
	m.UpdatedAt = time.Now()
	if err := uc.repo.Update(m); err != nil {
		return nil, err
	}
	return dto.ToMedicineResponse(m), nil
}

// List lista medicamentos con paginación. Si search no está vacío, filtra
// sobre nombre, lote y categoría con comparación insensible a mayúsculas y
// diacríticos ("ibuprofeno" encuentra "Ibuprofeno 400mg").
func (uc *MedicineUseCase) List(ctx context.Context, search string, limit, offset int) (*dto.MedicineListResponse, error) {
	var (
		list []*entity.Medicine
		err  error
	)
	if search == "" {
		list, err = uc.repo.List(limit, offset)
		if err != nil {
			return nil, err
		}
	} else {
		// Búsqueda: filtrar el snapshot en memoria y paginar el resultado.
		snapshot, err := uc.repo.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		needle := searchFold(search)
		filtered := make([]*entity.Medicine, 0, len(snapshot))
		for _, m := range snapshot {
			if strings.Contains(searchFold(m.Name), needle) ||
				strings.Contains(searchFold(m.BatchNo), needle) ||
				strings.Contains(searchFold(m.Category), needle) {
				filtered = append(filtered, m)
			}
		}
		if offset > len(filtered) {
			offset = len(filtered)
		}
		end := offset + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		list = filtered[offset:end]
	}

	items := make([]dto.MedicineResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMedicineResponse(m))
	}
	return &dto.MedicineListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un medicamento por ID.
func (uc *MedicineUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// searchFold normaliza un término de búsqueda: minúsculas y sin marcas
// diacríticas (NFD, strip Mn, NFC).
func searchFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
