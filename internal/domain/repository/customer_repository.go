package repository

import (
	"context"

	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para perfiles de cliente.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	// FindByCedula devuelve el cliente con esa cédula, o nil si no existe.
	FindByCedula(ctx context.Context, cedula int64) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
	SetActive(ctx context.Context, id string, active bool) error
}
