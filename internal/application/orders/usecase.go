// Package orders implementa los pedidos de botellones: creación con número
// correlativo, listado, cambios de estado, cobro y comprobante en PDF.
package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

// Estados operativos admitidos en un cambio de estado.
var validStatuses = map[string]bool{
	entity.OrderStatusPendiente: true,
	entity.OrderStatusListo:     true,
	entity.OrderStatusEntregado: true,
	entity.OrderStatusCancelado: true,
}

// UseCase casos de uso de pedidos.
type UseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	configRepo   repository.ConfigRepository
	pdfGen       ReceiptPDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	configRepo repository.ConfigRepository,
	pdfGen ReceiptPDFGenerator,
) *UseCase {
	return &UseCase{orderRepo: orderRepo, customerRepo: customerRepo, configRepo: configRepo, pdfGen: pdfGen}
}

// Create crea un pedido para el cliente autenticado. El total es
// botellones × precio global (tarifa alta para intercambio, estándar para
// recarga); el número correlativo lo asigna el repositorio al persistir.
func (uc *UseCase) Create(ctx context.Context, clienteID string, in dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	totalBottles := in.WithHandle + in.WithoutHandle
	if totalBottles <= 0 {
		return nil, domain.NewValidationError("La cantidad total de botellones (con y sin asa) debe ser mayor a 0.")
	}
	if in.WithHandle < 0 || in.WithoutHandle < 0 {
		return nil, domain.NewValidationError("Las cantidades de botellones no pueden ser negativas.")
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = entity.OrderTypeRecarga
	}
	if tipo != entity.OrderTypeRecarga && tipo != entity.OrderTypeIntercambio {
		return nil, domain.NewValidationError("Tipo de pedido desconocido.")
	}

	customer, err := uc.customerRepo.GetByID(ctx, clienteID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrUserNotFound
	}

	cfg, err := uc.configRepo.GetBotellonConfig(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.NewValidationError("El precio del botellón no está configurado.")
	}
	price := cfg.Price
	if tipo == entity.OrderTypeIntercambio && !cfg.PriceHigh.IsZero() {
		price = cfg.PriceHigh
	}

	fecha := time.Now()
	if in.Fecha != "" {
		fecha, err = time.ParseInLocation("2006-01-02", in.Fecha, time.Local)
		if err != nil {
			return nil, domain.NewValidationError("Fecha inválida, usa el formato YYYY-MM-DD.")
		}
	}

	now := time.Now()
	order := &entity.Order{
		ID:               uuid.New().String(),
		ClienteID:        customer.ID,
		ClienteName:      customer.Name,
		Tipo:             tipo,
		WithHandle:       in.WithHandle,
		WithoutHandle:    in.WithoutHandle,
		Total:            price.Mul(decimal.NewFromInt(int64(totalBottles))).Round(2),
		Estado:           entity.OrderStatusPendiente,
		EstadoFinanciero: entity.FinancePorCobrar,
		MontoCobrado:     decimal.Zero,
		MontoPagado:      decimal.Zero,
		Fecha:            fecha,
		CreatedAt:        now,
	}
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return &dto.CreateOrderResponse{
		Order:        toOrderResponse(order),
		Notification: dto.SuccessNotification("Pedido creado exitosamente."),
	}, nil
}

// List devuelve todos los pedidos (admin) o los del cliente autenticado.
func (uc *UseCase) List(ctx context.Context, requesterID, tipo string) ([]dto.OrderResponse, error) {
	var (
		orders []*entity.Order
		err    error
	)
	if tipo == entity.TipoCliente {
		orders, err = uc.orderRepo.ListByCliente(ctx, requesterID)
	} else {
		orders, err = uc.orderRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out, nil
}

// UpdateEstado cambia el estado operativo del pedido.
func (uc *UseCase) UpdateEstado(ctx context.Context, orderID, estado string) error {
	if !validStatuses[estado] {
		return domain.NewValidationError("Estado de pedido desconocido.")
	}
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.orderRepo.UpdateEstado(ctx, orderID, estado)
}

// RegisterCharge marca el pedido como cobrado. Sin monto explícito se cobra
// el total del pedido.
func (uc *UseCase) RegisterCharge(ctx context.Context, orderID string, in dto.RegisterChargeRequest) error {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	monto := order.Total
	if in.Monto != nil {
		if in.Monto.LessThanOrEqual(decimal.Zero) {
			return domain.NewValidationError("El monto cobrado debe ser mayor a 0.")
		}
		monto = *in.Monto
	}
	return uc.orderRepo.RegisterCharge(ctx, orderID, monto)
}

// Receipt genera el comprobante del pedido en PDF.
// Un cliente solo puede pedir comprobantes de sus propios pedidos.
func (uc *UseCase) Receipt(ctx context.Context, orderID, requesterID, tipo string) ([]byte, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if tipo == entity.TipoCliente && order.ClienteID != requesterID {
		return nil, domain.ErrForbidden
	}
	customer, err := uc.customerRepo.GetByID(ctx, order.ClienteID)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateReceiptPDF(ctx, order, customer)
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:               o.ID,
		NumeroPedido:     o.NumeroPedido,
		ClienteID:        o.ClienteID,
		ClienteName:      o.ClienteName,
		Tipo:             o.Tipo,
		WithHandle:       o.WithHandle,
		WithoutHandle:    o.WithoutHandle,
		Total:            o.Total,
		Estado:           o.Estado,
		EstadoFinanciero: o.EstadoFinanciero,
		MontoCobrado:     o.MontoCobrado,
		Fecha:            o.Fecha,
		CreatedAt:        o.CreatedAt,
	}
}
