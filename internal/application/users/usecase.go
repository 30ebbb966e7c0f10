package users

import (
	"github.com/tu-usuario/ventasly/internal/application/dto"
	"github.com/tu-usuario/ventasly/internal/domain/repository"
)

// UserUseCase consultas administrativas sobre usuarios.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List devuelve usuarios paginados en su vista saneada (solo admin en el router).
func (uc *UserUseCase) List(limit, offset int) ([]dto.UserResponse, error) {
	list, err := uc.users.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *dto.ToUserResponse(u))
	}
	return out, nil
}
