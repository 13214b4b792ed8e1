// Package auth implementa el inicio de sesión: credenciales contra el
// servicio de identidad, resolución del perfil (cliente o usuario interno)
// y emisión del JWT de sesión.
package auth

import (
	"context"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/application/registration"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
	"github.com/aqualife/aqualife-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de inicio de sesión.
type UseCase struct {
	identity     registration.IdentityService
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	jwtCfg       JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	identity registration.IdentityService,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	jwtCfg JWTConfig,
) *UseCase {
	return &UseCase{identity: identity, customerRepo: customerRepo, userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login autentica email/password, busca el perfil primero en clientes y luego
// en usuarios internos, rechaza cuentas suspendidas (activo=false) y devuelve
// el token JWT con el tipo de perfil.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.NewValidationError("Por favor ingresa correo y contraseña.")
	}

	accountID, err := uc.identity.Authenticate(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	var (
		name   string
		tipo   string
		active bool
	)
	customer, err := uc.customerRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if customer != nil {
		name, tipo, active = customer.Name, customer.Tipo, customer.Active
	} else {
		user, err := uc.userRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, domain.ErrUserNotFound
		}
		name, tipo, active = user.Name, user.Tipo, user.Active
	}

	if !active {
		return nil, domain.ErrAccountSuspended
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, accountID, tipo, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		ID:    accountID,
		Name:  name,
		Email: in.Email,
		Tipo:  tipo,
	}, nil
}
