package usecase

import (
	"context"

	"github.com/medtrack/medtrack-api/internal/application/dto"
	"github.com/medtrack/medtrack-api/internal/domain"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
	"github.com/medtrack/medtrack-api/internal/domain/repository"
)

// UserUseCase administración de usuarios y sus roles (pantalla de admin).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario con su conjunto de roles.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	roles, err := uc.repo.GetRoles(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user, roles), nil
}

// List lista usuarios con sus roles, por fecha de registro descendente.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.ToUserResponse(&u.User, u.Roles))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AssignRole reemplaza el conjunto de roles del usuario por {role}: borra los
// existentes e inserta el nuevo en una transacción. El rol se valida contra
// el enum cerrado antes de tocar la DB (ErrInvalidRole si no pertenece).
//
// El modelo de datos permite varios roles por usuario; esta operación asigna
// uno porque así opera la pantalla de administración, no porque el dominio lo
// exija.
func (uc *UserUseCase) AssignRole(ctx context.Context, userID string, in dto.AssignRoleRequest) (*dto.UserResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := uc.repo.ReplaceRoles(ctx, userID, []entity.Role{role}); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user, []entity.Role{role}), nil
}
