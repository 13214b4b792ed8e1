package usecase

import (
	"context"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

// CustomerUseCase operaciones administrativas sobre perfiles de cliente.
type CustomerUseCase struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customerRepo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customerRepo: customerRepo}
}

// List devuelve todos los perfiles de cliente.
func (uc *CustomerUseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, customerToResponse(c))
	}
	return out, nil
}

// SetActive suspende o reactiva un cliente. Un cliente suspendido no puede
// iniciar sesión hasta ser reactivado.
func (uc *CustomerUseCase) SetActive(ctx context.Context, id string, active bool) error {
	if id == "" {
		return domain.ErrNotFound
	}
	return uc.customerRepo.SetActive(ctx, id, active)
}

func customerToResponse(c *entity.Customer) dto.CustomerResponse {
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
