package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/application/registration"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

// UserUseCase administración de usuarios internos (personal de AquaLife).
// Crear un usuario hace dos cosas: la cuenta en el servicio de identidad y
// el perfil en usuarios, compartiendo el mismo id.
type UserUseCase struct {
	userRepo repository.UserRepository
	identity registration.IdentityService
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, identity registration.IdentityService) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, identity: identity}
}

// Create crea cuenta y perfil de un usuario interno. El tipo por defecto es
// "usuario"; solo se admiten "admin" y "usuario".
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.CreateUserResponse, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if name == "" || email == "" {
		return nil, domain.NewValidationError("Completa todos los campos requeridos.")
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("Debes especificar una contraseña.")
	}
	tipo := strings.TrimSpace(in.Tipo)
	if tipo == "" {
		tipo = entity.TipoUsuario
	}
	if tipo != entity.TipoAdmin && tipo != entity.TipoUsuario {
		return nil, domain.NewValidationError("Tipo de usuario inválido.")
	}

	accountID, err := uc.identity.CreateAccount(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:        accountID,
		Name:      name,
		Email:     email,
		Tipo:      tipo,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.CreateUserResponse{
		User:         userToResponse(user),
		Notification: dto.SuccessNotification(fmt.Sprintf("Se creó un %s correctamente.", tipo)),
	}, nil
}

// List devuelve todos los perfiles de usuario interno.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out, nil
}

// Update modifica nombre y tipo de un usuario interno. Un campo vacío
// conserva el valor actual.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if id == "" {
		return nil, domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if tipo := strings.TrimSpace(in.Tipo); tipo != "" {
		if tipo != entity.TipoAdmin && tipo != entity.TipoUsuario {
			return nil, domain.NewValidationError("Tipo de usuario inválido.")
		}
		user.Tipo = tipo
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

// SetActive suspende o reactiva un usuario interno. Suspendido no puede
// iniciar sesión hasta ser reactivado.
func (uc *UserUseCase) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return domain.ErrNotFound
	}
	return uc.userRepo.SetActive(ctx, id, active)
}

// Delete elimina el perfil del usuario interno. Su cuenta de identidad queda
// huérfana y el login pasa a fallar con credenciales inválidas.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(ctx, id)
}

func userToResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Tipo:      u.Tipo,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
