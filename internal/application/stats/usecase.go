// Package stats implementa el tablero de estadísticas: agregados sobre las
// colecciones de pedidos, clientes y usuarios, recalculados completos en cada
// consulta (sin paginación ni actualización incremental).
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
	"github.com/aqualife/aqualife-api/internal/domain/repository"
)

// UseCase caso de uso del tablero de estadísticas.
//
// Fuente de datos: los repositorios de lectura. Las tres colecciones se
// consultan en paralelo y el agregado se calcula en memoria.
type UseCase struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{orderRepo: orderRepo, customerRepo: customerRepo, userRepo: userRepo}
}

// GetStats trae pedidos, clientes y usuarios en tres goroutines y reduce.
func (uc *UseCase) GetStats(ctx context.Context, q dto.StatsQuery) (*dto.StatsResponse, error) {
	type ordersResult struct {
		orders []*entity.Order
		err    error
	}
	type customersResult struct {
		customers []*entity.Customer
		err       error
	}
	type usersResult struct {
		users []*entity.User
		err   error
	}

	ordersCh := make(chan ordersResult, 1)
	customersCh := make(chan customersResult, 1)
	usersCh := make(chan usersResult, 1)

	go func() {
		orders, err := uc.orderRepo.List(ctx)
		ordersCh <- ordersResult{orders, err}
	}()
	go func() {
		customers, err := uc.customerRepo.List(ctx)
		customersCh <- customersResult{customers, err}
	}()
	go func() {
		users, err := uc.userRepo.List(ctx)
		usersCh <- usersResult{users, err}
	}()

	orders := <-ordersCh
	customers := <-customersCh
	users := <-usersCh

	if orders.err != nil {
		return nil, fmt.Errorf("estadísticas: pedidos: %w", orders.err)
	}
	if customers.err != nil {
		return nil, fmt.Errorf("estadísticas: clientes: %w", customers.err)
	}
	if users.err != nil {
		return nil, fmt.Errorf("estadísticas: usuarios: %w", users.err)
	}

	window, err := resolveWindow(q, time.Now())
	if err != nil {
		return nil, err
	}
	resp := BuildStats(filterByWindow(orders.orders, window, q.DateField), customers.customers, users.users)
	if !window.all {
		prev := BuildStats(filterByWindow(orders.orders, previousWindow(window), q.DateField), customers.customers, users.users)
		resp.Comparaciones = &dto.StatsComparisons{
			TotalRevenue:      calcDelta(resp.TotalRevenue.InexactFloat64(), prev.TotalRevenue.InexactFloat64()),
			TotalOrders:       calcDelta(float64(resp.TotalOrders), float64(prev.TotalOrders)),
			ClientsWithOrders: calcDelta(float64(resp.ClientsWithOrders), float64(prev.ClientsWithOrders)),
			CompletionRate:    calcDelta(resp.CompletionRate, prev.CompletionRate),
			AvgTicket:         calcDelta(resp.AvgTicket.InexactFloat64(), prev.AvgTicket.InexactFloat64()),
		}
	}
	resp.LastUpdated = time.Now()
	return resp, nil
}

// window ventana de fechas efectiva del filtro.
type window struct {
	start time.Time
	end   time.Time
	all   bool
}

// resolveWindow calcula la ventana efectiva del filtro. El rango nombrado
// define una ventana rodante anclada en now ("month" son los últimos 30 días,
// "year" el último año); los límites explícitos "desde"/"hasta" reemplazan
// cada extremo por separado sin anular el otro.
func resolveWindow(q dto.StatsQuery, now time.Time) (window, error) {
	var start time.Time
	switch q.Range {
	case "day":
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month", "":
		start = now.AddDate(0, 0, -30)
	case "year":
		start = now.AddDate(-1, 0, 0)
	case "custom":
		start = now
	case "all":
		if q.Start == "" && q.End == "" {
			return window{all: true}, nil
		}
		// sin límite inferior; mandan los bordes explícitos
	default:
		return window{}, domain.NewValidationError(fmt.Sprintf("Rango desconocido: %q.", q.Range))
	}

	w := window{start: start, end: now}
	if q.Start != "" {
		t, err := time.ParseInLocation("2006-01-02", q.Start, now.Location())
		if err != nil {
			return window{}, domain.NewValidationError("Fecha 'desde' inválida, usa el formato YYYY-MM-DD.")
		}
		w.start = t
	}
	if q.End != "" {
		t, err := time.ParseInLocation("2006-01-02", q.End, now.Location())
		if err != nil {
			return window{}, domain.NewValidationError("Fecha 'hasta' inválida, usa el formato YYYY-MM-DD.")
		}
		// fin de día inclusive
		w.end = t.Add(24*time.Hour - time.Nanosecond)
	}
	return w, nil
}

// previousWindow ventana inmediatamente anterior de la misma duración,
// terminando justo antes del inicio de la actual.
func previousWindow(w window) window {
	span := w.end.Sub(w.start)
	prevEnd := w.start.Add(-time.Millisecond)
	return window{start: prevEnd.Add(-span), end: prevEnd}
}

// calcDelta variación porcentual de current contra previous. Sin datos
// previos, cualquier valor actual distinto de cero se reporta como 100%.
func calcDelta(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - previous) / previous * 100
}

// filterByWindow filtra pedidos por la ventana sobre el campo de fecha pedido.
// Un pedido sin fecha utilizable pasa el filtro (comportamiento de la app).
func filterByWindow(orders []*entity.Order, w window, dateField string) []*entity.Order {
	if w.all {
		return orders
	}
	out := make([]*entity.Order, 0, len(orders))
	for _, o := range orders {
		d := o.Fecha
		if dateField == "created_at" {
			d = o.CreatedAt
		}
		if d.IsZero() || (!d.Before(w.start) && !d.After(w.end)) {
			out = append(out, o)
		}
	}
	return out
}

// BuildStats reduce los pedidos ya filtrados más las colecciones de clientes
// y usuarios al resumen del tablero. Función pura: no consulta nada.
func BuildStats(orders []*entity.Order, customers []*entity.Customer, users []*entity.User) *dto.StatsResponse {
	totalOrders := len(orders)

	var pendientes, listos, entregados, cancelados int
	ordersByType := map[string]int{
		entity.OrderTypeRecarga:     0,
		entity.OrderTypeIntercambio: 0,
	}

	financeTotals := map[string]decimal.Decimal{
		entity.FinancePorCobrar: decimal.Zero,
		entity.FinanceCobrado:   decimal.Zero,
		entity.FinancePagado:    decimal.Zero,
		entity.FinanceCancelado: decimal.Zero,
	}
	financeCounts := map[string]int{}

	totalRevenue := decimal.Zero
	pipelineRevenue := decimal.Zero

	clientsSet := make(map[string]struct{})
	chargedClientSet := make(map[string]struct{})

	for _, o := range orders {
		switch o.Estado {
		case entity.OrderStatusPendiente:
			pendientes++
		case entity.OrderStatusListo:
			listos++
		case entity.OrderStatusEntregado:
			entregados++
		case entity.OrderStatusCancelado:
			cancelados++
		}

		// Tipo normalizado: cualquier variante que contenga "inter" cuenta
		// como intercambio, el resto como recarga.
		if strings.Contains(strings.ToLower(strings.TrimSpace(o.Tipo)), "inter") {
			ordersByType[entity.OrderTypeIntercambio]++
		} else {
			ordersByType[entity.OrderTypeRecarga]++
		}

		if o.ClienteID != "" {
			clientsSet[o.ClienteID] = struct{}{}
		}

		baseAmount := o.Total
		montoCobrado := o.MontoCobrado
		if montoCobrado.IsZero() {
			montoCobrado = baseAmount
		}

		financialState := o.EstadoFinanciero
		if financialState == "" {
			if o.Estado == entity.OrderStatusCancelado {
				financialState = entity.FinanceCancelado
			} else {
				financialState = entity.FinancePorCobrar
			}
		}
		financeCounts[financialState]++

		switch financialState {
		case entity.FinanceCobrado:
			financeTotals[entity.FinanceCobrado] = financeTotals[entity.FinanceCobrado].Add(montoCobrado)
			totalRevenue = totalRevenue.Add(montoCobrado)
			if o.ClienteID != "" {
				chargedClientSet[o.ClienteID] = struct{}{}
			}
		case entity.FinancePagado:
			montoPagado := o.MontoPagado
			if montoPagado.IsZero() {
				montoPagado = montoCobrado
			}
			financeTotals[entity.FinanceCobrado] = financeTotals[entity.FinanceCobrado].Add(montoCobrado)
			financeTotals[entity.FinancePagado] = financeTotals[entity.FinancePagado].Add(montoPagado)
			totalRevenue = totalRevenue.Add(montoCobrado)
			if o.ClienteID != "" {
				chargedClientSet[o.ClienteID] = struct{}{}
			}
		case entity.FinanceCancelado:
			financeTotals[entity.FinanceCancelado] = financeTotals[entity.FinanceCancelado].Add(baseAmount)
		default: // por_cobrar y cualquier estado desconocido
			financeTotals[entity.FinancePorCobrar] = financeTotals[entity.FinancePorCobrar].Add(baseAmount)
			pipelineRevenue = pipelineRevenue.Add(baseAmount)
		}
	}

	var completionRate float64
	if totalOrders > 0 {
		completionRate = float64(listos+entregados) / float64(totalOrders) * 100
	}

	chargedOrders := financeCounts[entity.FinanceCobrado] + financeCounts[entity.FinancePagado]
	avgTicket := decimal.Zero
	if chargedOrders > 0 {
		avgTicket = totalRevenue.Div(decimal.NewFromInt(int64(chargedOrders))).Round(2)
	}
	avgPerClient := decimal.Zero
	if len(chargedClientSet) > 0 {
		avgPerClient = totalRevenue.Div(decimal.NewFromInt(int64(len(chargedClientSet)))).Round(2)
	}

	buckets := make(map[string]dto.FinanceBucketDTO, len(financeTotals))
	for state, total := range financeTotals {
		buckets[state] = dto.FinanceBucketDTO{Total: total.Round(2), Count: financeCounts[state]}
	}

	return &dto.StatsResponse{
		TotalRevenue:      totalRevenue.Round(2),
		PipelineRevenue:   pipelineRevenue.Round(2),
		NetCashFlow:       financeTotals[entity.FinanceCobrado].Sub(financeTotals[entity.FinancePagado]).Round(2),
		TotalOrders:       totalOrders,
		Pendientes:        pendientes,
		Listos:            listos,
		Entregados:        entregados,
		Cancelados:        cancelados,
		CompletionRate:    completionRate,
		OrdersByType:      ordersByType,
		FinanceBuckets:    buckets,
		TotalClients:      len(customers),
		ClientsWithOrders: len(clientsSet),
		ChargedClients:    len(chargedClientSet),
		TotalUsers:        len(users),
		AvgTicket:         avgTicket,
		AvgPerClient:      avgPerClient,
	}
}
