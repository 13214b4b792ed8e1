package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest entrada para crear un pedido de botellones.
type CreateOrderRequest struct {
	Tipo          string `json:"tipo"` // recarga, intercambio
	WithHandle    int    `json:"con_asa"`
	WithoutHandle int    `json:"sin_asa"`
	Fecha         string `json:"fecha"` // YYYY-MM-DD, opcional (hoy por defecto)
}

// UpdateOrderStatusRequest cambio de estado operativo de un pedido.
type UpdateOrderStatusRequest struct {
	Estado string `json:"estado"` // pendiente, listo, entregado, cancelado
}

// RegisterChargeRequest registro de cobro de un pedido.
// Si Monto es nil se cobra el total del pedido.
type RegisterChargeRequest struct {
	Monto *decimal.Decimal `json:"monto"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID               string          `json:"id"`
	NumeroPedido     int64           `json:"numero_pedido"`
	ClienteID        string          `json:"cliente_id"`
	ClienteName      string          `json:"cliente_nombre"`
	Tipo             string          `json:"tipo"`
	WithHandle       int             `json:"con_asa"`
	WithoutHandle    int             `json:"sin_asa"`
	Total            decimal.Decimal `json:"total"`
	Estado           string          `json:"estado"`
	EstadoFinanciero string          `json:"estado_financiero"`
	MontoCobrado     decimal.Decimal `json:"monto_cobrado"`
	Fecha            time.Time       `json:"fecha"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CreateOrderResponse pedido creado más el toast de confirmación.
type CreateOrderResponse struct {
	Order        OrderResponse `json:"pedido"`
	Notification Notification  `json:"notification"`
}
