package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/repository"
)

var _ repository.MedicineRepository = (*MedicineRepo)(nil)

const medicineColumns = `id, name, batch_no, category, manufacturer, expiry_date, quantity, unit_price, reorder_level, supplier_id, created_at, updated_at`

// MedicineRepo implementación del puerto MedicineRepository sobre PostgreSQL
// (usable con pool o tx).
type MedicineRepo struct {
	q Querier
}

// NewMedicineRepository construye el adaptador de persistencia para medicamentos. Pasar pool o tx (Querier).
func NewMedicineRepository(q Querier) *MedicineRepo {
	return &MedicineRepo{q: q}
}

// Create persiste un nuevo medicamento.
func (r *MedicineRepo) Create(m *entity.Medicine) error {
	query := `
		INSERT INTO medicines (` + medicineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.BatchNo, m.Category, m.Manufacturer, m.ExpiryDate,
		m.Quantity, m.UnitPrice, m.ReorderLevel, m.SupplierID, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// GetByID obtiene un medicamento por ID.
func (r *MedicineRepo) GetByID(id string) (*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE id = $1`
	m, err := r.scanOne(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, fmt.Errorf("get medicine: %w", err)
	}
	return m, nil
}

// GetByBatchNo obtiene un medicamento por número de lote.
func (r *MedicineRepo) GetByBatchNo(batchNo string) (*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines WHERE batch_no = $1`
	m, err := r.scanOne(r.q.QueryRow(context.Background(), query, batchNo))
	if err != nil {
		return nil, fmt.Errorf("get medicine by batch: %w", err)
	}
	return m, nil
}

// Update actualiza un medicamento existente.
func (r *MedicineRepo) Update(m *entity.Medicine) error {
	query := `
		UPDATE medicines SET name = $2, batch_no = $3, category = $4, manufacturer = $5,
			expiry_date = $6, quantity = $7, unit_price = $8, reorder_level = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Name, m.BatchNo, m.Category, m.Manufacturer, m.ExpiryDate,
		m.Quantity, m.UnitPrice, m.ReorderLevel, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update medicine: %w", err)
	}
	return nil
}

// List lista medicamentos por nombre con paginación.
func (r *MedicineRepo) List(limit, offset int) ([]*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list medicines: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Delete elimina un medicamento por ID.
func (r *MedicineRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete medicine: %w", err)
	}
	return nil
}

// Snapshot devuelve el inventario completo ordenado por nombre (lectura pura
// para alertas y dashboard).
func (r *MedicineRepo) Snapshot(ctx context.Context) ([]*entity.Medicine, error) {
	query := `SELECT ` + medicineColumns + ` FROM medicines ORDER BY name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("snapshot medicines: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *MedicineRepo) scanOne(row pgx.Row) (*entity.Medicine, error) {
	var m entity.Medicine
	err := row.Scan(
		&m.ID, &m.Name, &m.BatchNo, &m.Category, &m.Manufacturer, &m.ExpiryDate,
		&m.Quantity, &m.UnitPrice, &m.ReorderLevel, &m.SupplierID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MedicineRepo) scanAll(rows pgx.Rows) ([]*entity.Medicine, error) {
	var list []*entity.Medicine
	for rows.Next() {
		var m entity.Medicine
		if err := rows.Scan(
			&m.ID, &m.Name, &m.BatchNo, &m.Category, &m.Manufacturer, &m.ExpiryDate,
			&m.Quantity, &m.UnitPrice, &m.ReorderLevel, &m.SupplierID, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
