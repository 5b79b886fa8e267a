package repository

import (
	"context"

	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User y sus roles (DIP).
// Los roles viven en user_roles (muchos-a-muchos): un usuario puede tener
// cero o más roles, aunque la UI de administración asigna uno a la vez.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.UserWithRoles, error)
	Delete(id string) error

	// GetRoles devuelve el conjunto de roles del usuario. Valores fuera del
	// enum cerrado almacenados en la DB se rechazan con ErrInvalidRole.
	GetRoles(ctx context.Context, userID string) ([]entity.Role, error)
	// ReplaceRoles borra los roles actuales del usuario e inserta los nuevos,
	// en una sola transacción.
	ReplaceRoles(ctx context.Context, userID string, roles []entity.Role) error
}
