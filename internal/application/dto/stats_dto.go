package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatsQuery parámetros del tablero de estadísticas.
// Range: day, week, month, year, all o custom (con Start/End en YYYY-MM-DD).
// DateField: "fecha" (fecha de entrega) o "created_at" (fecha de creación).
type StatsQuery struct {
	Range     string `query:"rango"`
	DateField string `query:"campo_fecha"`
	Start     string `query:"desde"`
	End       string `query:"hasta"`
}

// FinanceBucketDTO total y cantidad de pedidos en un estado financiero.
type FinanceBucketDTO struct {
	Total decimal.Decimal `json:"total"`
	Count int             `json:"cantidad"`
}

// StatsResponse resumen agregado sobre pedidos, clientes y usuarios.
// Se recalcula sobre las colecciones completas en cada consulta.
type StatsResponse struct {
	TotalRevenue    decimal.Decimal `json:"ingresos_cobrados"`
	PipelineRevenue decimal.Decimal `json:"ingresos_por_cobrar"`
	NetCashFlow     decimal.Decimal `json:"flujo_neto"`

	TotalOrders    int     `json:"total_pedidos"`
	Pendientes     int     `json:"pendientes"`
	Listos         int     `json:"listos"`
	Entregados     int     `json:"entregados"`
	Cancelados     int     `json:"cancelados"`
	CompletionRate float64 `json:"tasa_completados"` // porcentaje 0-100

	OrdersByType map[string]int `json:"pedidos_por_tipo"` // recarga, intercambio

	FinanceBuckets map[string]FinanceBucketDTO `json:"finanzas"` // por_cobrar, cobrado, pagado, cancelado

	TotalClients      int             `json:"total_clientes"`
	ClientsWithOrders int             `json:"clientes_con_pedidos"`
	ChargedClients    int             `json:"clientes_cobrados"`
	TotalUsers        int             `json:"total_usuarios"`
	AvgTicket         decimal.Decimal `json:"ticket_promedio"`
	AvgPerClient      decimal.Decimal `json:"promedio_por_cliente"`

	Comparaciones *StatsComparisons `json:"comparaciones,omitempty"`

	LastUpdated time.Time `json:"actualizado"`
}

// StatsComparisons variación porcentual de los indicadores clave contra el
// período inmediatamente anterior de la misma duración. Si el período
// anterior no tiene datos, un valor actual distinto de cero se reporta
// como 100%.
type StatsComparisons struct {
	TotalRevenue      float64 `json:"ingresos_cobrados"`
	TotalOrders       float64 `json:"total_pedidos"`
	ClientsWithOrders float64 `json:"clientes_con_pedidos"`
	CompletionRate    float64 `json:"tasa_completados"`
	AvgTicket         float64 `json:"ticket_promedio"`
}
