package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos.
type OrderRepository interface {
	// Create persiste el pedido asignándole el siguiente número correlativo
	// de forma transaccional (el contador y el insert comparten la misma tx).
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	ListByCliente(ctx context.Context, clienteID string) ([]*entity.Order, error)
	UpdateEstado(ctx context.Context, id, estado string) error
	// RegisterCharge marca el pedido como cobrado con el monto indicado.
	RegisterCharge(ctx context.Context, id string, monto decimal.Decimal) error
}
