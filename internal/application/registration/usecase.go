package registration

import (
	"context"
	"time"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

// UseCase caso de uso de registro de clientes.
type UseCase struct {
	customerRepo repository.CustomerRepository
	identity     IdentityService
}

// NewUseCase construye el caso de uso.
func NewUseCase(customerRepo repository.CustomerRepository, identity IdentityService) *UseCase {
	return &UseCase{customerRepo: customerRepo, identity: identity}
}

// Register valida el formulario y, si pasa, ejecuta el registro completo:
//
//	A) busca un cliente existente con la misma cédula (rechaza si lo hay),
//	B) crea la cuenta en el servicio de identidad,
//	C) escribe el perfil en clientes con tipo "cliente" y activo=true.
//
// La validación es todo-o-nada: ninguna llamada externa ocurre si algún campo
// falla. No hay reintentos; ante un fallo el usuario vuelve a enviar.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	n, err := Validate(Input{
		Name:            in.Name,
		Cedula:          in.Cedula,
		Phone:           in.Phone,
		Address:         in.Address,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	})
	if err != nil {
		return nil, err
	}

	existing, err := uc.customerRepo.FindByCedula(ctx, n.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCedulaAlreadyExists
	}

	accountID, err := uc.identity.CreateAccount(ctx, n.Email, n.Password)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		ID:        accountID,
		Name:      n.Name,
		Cedula:    n.Cedula,
		Phone:     n.Phone,
		Address:   n.Address,
		Email:     n.Email,
		Tipo:      entity.TipoCliente,
		Active:    true,
		CreatedAt: time.Now(),
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return &dto.RegisterResponse{
		Customer:     toCustomerResponse(customer),
		Notification: dto.SuccessNotification("Registro exitoso."),
	}, nil
}

// Strength expone el clasificador advisory para el indicador de la pantalla.
func (uc *UseCase) Strength(password string) dto.PasswordStrengthResponse {
	score, level := PasswordStrength(password)
	return dto.PasswordStrengthResponse{Score: score, Level: level}
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Cedula:    c.Cedula,
		Phone:     c.Phone,
		Address:   c.Address,
		Email:     c.Email,
		Tipo:      c.Tipo,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
	}
}
