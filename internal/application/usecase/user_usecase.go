package usecase

import (
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UserUseCase listados administrativos de usuarios. Solo lectura: el alta pasa
// por el registro (auth) y el rol no se muta desde aquí.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

// List devuelve todos los usuarios (sin hash de password en la proyección).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return usersToResponses(list), nil
}

// ListByRole devuelve los usuarios con el rol exacto. Rol fuera de la enumeración es inválido.
func (uc *UserUseCase) ListByRole(role entity.Role) ([]dto.UserResponse, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByRole(role)
	if err != nil {
		return nil, err
	}
	return usersToResponses(list), nil
}

func usersToResponses(list []*entity.User) []dto.UserResponse {
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *entityToUserResponse(u))
	}
	return items
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
