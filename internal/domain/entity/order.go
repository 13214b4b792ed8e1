package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pedido.
const (
	OrderTypeRecarga     = "recarga"
	OrderTypeIntercambio = "intercambio"
)

// Estados operativos de un pedido.
const (
	OrderStatusPendiente = "pendiente"
	OrderStatusListo     = "listo"
	OrderStatusEntregado = "entregado"
	OrderStatusCancelado = "cancelado"
)

// Estados financieros de un pedido.
const (
	FinancePorCobrar = "por_cobrar"
	FinanceCobrado   = "cobrado"
	FinancePagado    = "pagado"
	FinanceCancelado = "cancelado"
)

// Order representa un pedido de botellones.
// WithHandle/WithoutHandle son cantidades de botellones con y sin asa.
type Order struct {
	ID               string
	NumeroPedido     int64 // correlativo global, asignado al crear
	ClienteID        string
	ClienteName      string
	Tipo             string // recarga, intercambio
	WithHandle       int
	WithoutHandle    int
	Total            decimal.Decimal
	Estado           string // pendiente, listo, entregado, cancelado
	EstadoFinanciero string // por_cobrar, cobrado, pagado, cancelado
	MontoCobrado     decimal.Decimal
	MontoPagado      decimal.Decimal
	Fecha            time.Time // fecha de entrega pactada
	CreatedAt        time.Time
}

// TotalBottles devuelve la cantidad total de botellones del pedido.
func (o *Order) TotalBottles() int {
	return o.WithHandle + o.WithoutHandle
}
