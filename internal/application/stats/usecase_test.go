package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorios de lectura
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	orders []*entity.Order
	err    error
}

func (f *fakeOrderRepo) Create(context.Context, *entity.Order) error { return nil }
func (f *fakeOrderRepo) GetByID(context.Context, string) (*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) List(context.Context) ([]*entity.Order, error) { return f.orders, f.err }
func (f *fakeOrderRepo) ListByCliente(context.Context, string) ([]*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrderRepo) UpdateEstado(context.Context, string, string) error { return nil }
func (f *fakeOrderRepo) RegisterCharge(context.Context, string, decimal.Decimal) error {
	return nil
}

type fakeCustomerRepo struct{ customers []*entity.Customer }

func (f *fakeCustomerRepo) Create(context.Context, *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(context.Context, string) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) FindByCedula(context.Context, int64) (*entity.Customer, error) {
	return nil, nil
}
func (f *fakeCustomerRepo) List(context.Context) ([]*entity.Customer, error) {
	return f.customers, nil
}
func (f *fakeCustomerRepo) SetActive(context.Context, string, bool) error { return nil }

type fakeUserRepo struct{ users []*entity.User }

func (f *fakeUserRepo) Create(context.Context, *entity.User) error            { return nil }
func (f *fakeUserRepo) GetByID(context.Context, string) (*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) List(context.Context) ([]*entity.User, error)          { return f.users, nil }
func (f *fakeUserRepo) Update(context.Context, *entity.User) error            { return nil }
func (f *fakeUserRepo) SetActive(context.Context, string, bool) error         { return nil }
func (f *fakeUserRepo) Delete(context.Context, string) error                  { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de fixtures
// ──────────────────────────────────────────────────────────────────────────────

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func order(cliente, tipo, estado, finanza string, total, cobrado int64) *entity.Order {
	return &entity.Order{
		ID:               cliente + "-" + estado,
		ClienteID:        cliente,
		Tipo:             tipo,
		Estado:           estado,
		EstadoFinanciero: finanza,
		Total:            money(total),
		MontoCobrado:     money(cobrado),
		Fecha:            time.Now(),
		CreatedAt:        time.Now(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// BuildStats (reducción pura)
// ──────────────────────────────────────────────────────────────────────────────

func TestBuildStats_SinPedidos(t *testing.T) {
	resp := BuildStats(nil, []*entity.Customer{{ID: "c1"}}, []*entity.User{{ID: "u1"}, {ID: "u2"}})

	assert.Equal(t, 0, resp.TotalOrders)
	assert.Equal(t, float64(0), resp.CompletionRate, "sin pedidos la tasa es 0, no NaN")
	assert.True(t, resp.TotalRevenue.IsZero())
	assert.True(t, resp.AvgTicket.IsZero(), "sin cobros el ticket promedio es 0, sin división por cero")
	assert.Equal(t, 1, resp.TotalClients)
	assert.Equal(t, 2, resp.TotalUsers)
}

func TestBuildStats_EstadosYTasaDeCompletados(t *testing.T) {
	orders := []*entity.Order{
		order("c1", "recarga", entity.OrderStatusPendiente, entity.FinancePorCobrar, 100, 0),
		order("c1", "recarga", entity.OrderStatusListo, entity.FinancePorCobrar, 100, 0),
		order("c2", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 100, 100),
		order("c2", "recarga", entity.OrderStatusCancelado, entity.FinanceCancelado, 100, 0),
	}
	resp := BuildStats(orders, nil, nil)

	assert.Equal(t, 4, resp.TotalOrders)
	assert.Equal(t, 1, resp.Pendientes)
	assert.Equal(t, 1, resp.Listos)
	assert.Equal(t, 1, resp.Entregados)
	assert.Equal(t, 1, resp.Cancelados)
	assert.Equal(t, float64(50), resp.CompletionRate, "listos+entregados sobre el total")
}

// El tipo se normaliza por subcadena: cualquier variante con "inter" cuenta
// como intercambio, el resto (incluido tipo vacío) como recarga.
func TestBuildStats_TipoPorSubcadena(t *testing.T) {
	orders := []*entity.Order{
		order("c1", "intercambio", entity.OrderStatusPendiente, entity.FinancePorCobrar, 100, 0),
		order("c1", " Intercambio ", entity.OrderStatusPendiente, entity.FinancePorCobrar, 100, 0),
		order("c1", "INTERCAMBIO", entity.OrderStatusPendiente, entity.FinancePorCobrar, 100, 0),
		order("c1", "recarga", entity.OrderStatusPendiente, entity.FinancePorCobrar, 100, 0),
		order("c1", "", entity.OrderStatusPendiente, entity.FinancePorCobrar, 100, 0),
	}
	resp := BuildStats(orders, nil, nil)

	assert.Equal(t, 3, resp.OrdersByType[entity.OrderTypeIntercambio])
	assert.Equal(t, 2, resp.OrdersByType[entity.OrderTypeRecarga])
}

func TestBuildStats_FinanzasYFlujoNeto(t *testing.T) {
	orders := []*entity.Order{
		// por cobrar: alimenta pipeline con el total
		order("c1", "recarga", entity.OrderStatusPendiente, entity.FinancePorCobrar, 300, 0),
		// cobrado con monto explícito
		order("c2", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 200, 150),
		// cobrado sin monto explícito: cae al total
		order("c3", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 100, 0),
		// pagado: suma a cobrado y a pagado
		order("c4", "recarga", entity.OrderStatusEntregado, entity.FinancePagado, 80, 80),
		// cancelado: solo al bucket cancelado
		order("c5", "recarga", entity.OrderStatusCancelado, entity.FinanceCancelado, 60, 0),
	}
	resp := BuildStats(orders, nil, nil)

	assert.True(t, resp.PipelineRevenue.Equal(money(300)), "pipeline = %s", resp.PipelineRevenue)
	// 150 + 100 (fallback) + 80 (pagado también suma a cobrado)
	assert.True(t, resp.TotalRevenue.Equal(money(330)), "ingresos = %s", resp.TotalRevenue)
	assert.True(t, resp.FinanceBuckets[entity.FinanceCobrado].Total.Equal(money(330)))
	assert.True(t, resp.FinanceBuckets[entity.FinancePagado].Total.Equal(money(80)))
	assert.True(t, resp.FinanceBuckets[entity.FinanceCancelado].Total.Equal(money(60)))
	assert.True(t, resp.FinanceBuckets[entity.FinancePorCobrar].Total.Equal(money(300)))
	// flujo neto = cobrado - pagado
	assert.True(t, resp.NetCashFlow.Equal(money(250)), "flujo neto = %s", resp.NetCashFlow)

	assert.Equal(t, 2, resp.FinanceBuckets[entity.FinanceCobrado].Count)
	assert.Equal(t, 1, resp.FinanceBuckets[entity.FinancePagado].Count)
}

func TestBuildStats_EstadoFinancieroVacio(t *testing.T) {
	// Sin estado financiero: cancelado va al bucket cancelado, el resto a por_cobrar.
	orders := []*entity.Order{
		order("c1", "recarga", entity.OrderStatusPendiente, "", 100, 0),
		order("c2", "recarga", entity.OrderStatusCancelado, "", 50, 0),
	}
	resp := BuildStats(orders, nil, nil)

	assert.Equal(t, 1, resp.FinanceBuckets[entity.FinancePorCobrar].Count)
	assert.Equal(t, 1, resp.FinanceBuckets[entity.FinanceCancelado].Count)
	assert.True(t, resp.PipelineRevenue.Equal(money(100)))
}

func TestBuildStats_TicketPromedioYClientesCobrados(t *testing.T) {
	orders := []*entity.Order{
		order("c1", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 100, 100),
		order("c1", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 200, 200),
		order("c2", "recarga", entity.OrderStatusEntregado, entity.FinancePagado, 60, 60),
		order("c3", "recarga", entity.OrderStatusPendiente, entity.FinancePorCobrar, 40, 0),
	}
	resp := BuildStats(orders, nil, nil)

	// ingresos 360 sobre 3 pedidos cobrados/pagados
	assert.True(t, resp.AvgTicket.Equal(money(120)), "ticket = %s", resp.AvgTicket)
	assert.Equal(t, 2, resp.ChargedClients, "c1 y c2; c3 sigue por cobrar")
	assert.Equal(t, 3, resp.ClientsWithOrders)
	// 360 / 2 clientes cobrados
	assert.True(t, resp.AvgPerClient.Equal(money(180)), "promedio por cliente = %s", resp.AvgPerClient)
}

// ──────────────────────────────────────────────────────────────────────────────
// resolveWindow / filterByWindow
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveWindow_RangosRodantes(t *testing.T) {
	now := time.Date(2026, 8, 15, 13, 30, 0, 0, time.Local)

	w, err := resolveWindow(dto.StatsQuery{Range: "day"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local), w.start)
	assert.Equal(t, now, w.end)

	w, err = resolveWindow(dto.StatsQuery{Range: "week"}, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), w.start)

	// mes es el valor por defecto: los últimos 30 días, no el mes calendario
	w, err = resolveWindow(dto.StatsQuery{}, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -30), w.start)

	w, err = resolveWindow(dto.StatsQuery{Range: "year"}, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(-1, 0, 0), w.start)

	w, err = resolveWindow(dto.StatsQuery{Range: "all"}, now)
	require.NoError(t, err)
	assert.True(t, w.all)

	_, err = resolveWindow(dto.StatsQuery{Range: "quincena"}, now)
	assert.Error(t, err)
}

// Con rango "month" un pedido de hace 20 días entra en la ventana aunque
// caiga en el mes calendario anterior.
func TestResolveWindow_MesIncluyePedidosDeHace20Dias(t *testing.T) {
	now := time.Date(2026, 8, 15, 13, 30, 0, 0, time.Local)
	w, err := resolveWindow(dto.StatsQuery{Range: "month"}, now)
	require.NoError(t, err)

	orders := []*entity.Order{
		{ID: "hace-20-dias", Fecha: now.AddDate(0, 0, -20)},
		{ID: "hace-40-dias", Fecha: now.AddDate(0, 0, -40)},
	}
	out := filterByWindow(orders, w, "")
	require.Len(t, out, 1)
	assert.Equal(t, "hace-20-dias", out[0].ID)
}

// Un borde explícito reemplaza solo su extremo: el otro sigue saliendo del
// rango nombrado.
func TestResolveWindow_BordeExplicitoNoAnulaElOtro(t *testing.T) {
	now := time.Date(2026, 8, 15, 13, 30, 0, 0, time.Local)

	w, err := resolveWindow(dto.StatsQuery{Range: "month", End: "2026-08-10"}, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -30), w.start, "el inicio sigue siendo now menos 30 días")

	w, err = resolveWindow(dto.StatsQuery{Range: "week", Start: "2026-08-01"}, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), w.start)
	assert.Equal(t, now, w.end, "el fin sigue anclado en now")
}

func TestResolveWindow_CustomFinDeDiaInclusive(t *testing.T) {
	now := time.Date(2026, 8, 15, 13, 30, 0, 0, time.Local)
	w, err := resolveWindow(dto.StatsQuery{Start: "2026-08-01", End: "2026-08-10"}, now)
	require.NoError(t, err)

	dentro := time.Date(2026, 8, 10, 23, 59, 59, 0, time.Local)
	fuera := time.Date(2026, 8, 11, 0, 0, 1, 0, time.Local)
	assert.False(t, dentro.After(w.end), "el día 'hasta' entra completo")
	assert.True(t, fuera.After(w.end))

	_, err = resolveWindow(dto.StatsQuery{Start: "10-08-2026"}, now)
	assert.Error(t, err, "formato distinto a YYYY-MM-DD se rechaza")
}

func TestFilterByWindow_SinFechaPasaElFiltro(t *testing.T) {
	w := window{
		start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
		end:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
	}
	orders := []*entity.Order{
		{ID: "dentro", Fecha: time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)},
		{ID: "fuera", Fecha: time.Date(2026, 7, 10, 0, 0, 0, 0, time.Local)},
		{ID: "sin-fecha"},
	}
	out := filterByWindow(orders, w, "")
	require.Len(t, out, 2)
	assert.Equal(t, "dentro", out[0].ID)
	assert.Equal(t, "sin-fecha", out[1].ID)
}

func TestFilterByWindow_CampoCreatedAt(t *testing.T) {
	w := window{
		start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
		end:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local),
	}
	o := &entity.Order{
		ID:        "o1",
		Fecha:     time.Date(2026, 7, 1, 0, 0, 0, 0, time.Local),  // fuera
		CreatedAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local), // dentro
	}
	assert.Empty(t, filterByWindow([]*entity.Order{o}, w, "fecha"))
	assert.Len(t, filterByWindow([]*entity.Order{o}, w, "created_at"), 1)
}

func TestPreviousWindow_MismaDuracionContigua(t *testing.T) {
	w := window{
		start: time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local),
		end:   time.Date(2026, 8, 11, 0, 0, 0, 0, time.Local),
	}
	prev := previousWindow(w)
	assert.True(t, prev.end.Before(w.start))
	assert.Equal(t, w.end.Sub(w.start), prev.end.Sub(prev.start))
}

func TestCalcDelta(t *testing.T) {
	assert.Equal(t, float64(0), calcDelta(0, 0))
	assert.Equal(t, float64(100), calcDelta(5, 0), "sin período anterior cuenta como +100%")
	assert.Equal(t, float64(100), calcDelta(200, 100))
	assert.Equal(t, float64(-50), calcDelta(50, 100))
}

// ──────────────────────────────────────────────────────────────────────────────
// GetStats (fan-out sobre los repositorios)
// ──────────────────────────────────────────────────────────────────────────────

func TestGetStats_AgregaLasTresColecciones(t *testing.T) {
	uc := NewUseCase(
		&fakeOrderRepo{orders: []*entity.Order{
			order("c1", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 100, 100),
		}},
		&fakeCustomerRepo{customers: []*entity.Customer{{ID: "c1"}, {ID: "c2"}}},
		&fakeUserRepo{users: []*entity.User{{ID: "u1"}}},
	)

	resp, err := uc.GetStats(context.Background(), dto.StatsQuery{Range: "all"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.TotalOrders)
	assert.Equal(t, 2, resp.TotalClients)
	assert.Equal(t, 1, resp.TotalUsers)
	assert.Nil(t, resp.Comparaciones, "con rango 'all' no hay período anterior")
	assert.False(t, resp.LastUpdated.IsZero())
}

func TestGetStats_ComparaContraElPeriodoAnterior(t *testing.T) {
	actual := order("c1", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 200, 200)
	actual.Fecha = time.Date(2026, 8, 10, 0, 0, 0, 0, time.Local)
	anterior := order("c2", "recarga", entity.OrderStatusEntregado, entity.FinanceCobrado, 100, 100)
	anterior.Fecha = time.Date(2026, 7, 10, 0, 0, 0, 0, time.Local)

	uc := NewUseCase(&fakeOrderRepo{orders: []*entity.Order{actual, anterior}}, &fakeCustomerRepo{}, &fakeUserRepo{})
	resp, err := uc.GetStats(context.Background(), dto.StatsQuery{Start: "2026-08-01", End: "2026-08-31"})
	require.NoError(t, err)

	require.NotNil(t, resp.Comparaciones)
	assert.Equal(t, float64(100), resp.Comparaciones.TotalRevenue, "200 contra 100 del período anterior")
	assert.Equal(t, float64(0), resp.Comparaciones.TotalOrders, "un pedido en cada período")
	assert.Equal(t, float64(100), resp.Comparaciones.AvgTicket)
}

func TestGetStats_PropagaErrorDePedidos(t *testing.T) {
	boom := errors.New("sin conexión")
	uc := NewUseCase(&fakeOrderRepo{err: boom}, &fakeCustomerRepo{}, &fakeUserRepo{})

	_, err := uc.GetStats(context.Background(), dto.StatsQuery{Range: "all"})
	require.ErrorIs(t, err, boom)
}
