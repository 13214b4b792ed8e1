// Package pdf implementa el comprobante de pedido en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: AquaLife  │  N° Pedido + Fecha                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + Cédula + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Subtotal              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: TOTAL A PAGAR                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/aqualife/aqualife-api/internal/application/orders"
	"github.com/aqualife/aqualife-api/internal/domain/entity"
)

const companyName = "AquaLife"

var (
	colorPrimary = &props.Color{Red: 0, Green: 102, Blue: 178}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ orders.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el comprobante del pedido y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(
	_ context.Context,
	order *entity.Order,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de pedido", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(itemsHeaderRow())
	m.AddRows(itemRows(order)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar comprobante PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(order *entity.Order) core.Row {
	return row.New(16).Add(
		col.New(6).Add(
			text.New(companyName, props.Text{Size: 16, Style: fontstyle.Bold, Color: colorPrimary}),
			text.New("Agua potable a domicilio", props.Text{Top: 8, Size: 8, Color: colorGray}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("Pedido N° %d", order.NumeroPedido),
				props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
			text.New(order.Fecha.Format("02/01/2006"),
				props.Text{Top: 6, Size: 9, Align: align.Right, Color: colorGray}),
			text.New(fmt.Sprintf("Estado: %s", order.Estado),
				props.Text{Top: 11, Size: 8, Align: align.Right, Color: colorGray}),
		),
	)
}

func clienteRow(customer *entity.Customer) core.Row {
	nombre, contacto := "N/D", ""
	if customer != nil {
		nombre = customer.Name
		contacto = fmt.Sprintf("C.I. %d · %s · %s", customer.Cedula, customer.Phone, customer.Email)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("Cliente", props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}),
			text.New(nombre, props.Text{Top: 4, Size: 10, Style: fontstyle.Bold}),
			text.New(contacto, props.Text{Top: 9, Size: 8, Color: colorGray}),
		),
	)
}

func itemsHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold}
	return row.New(6).Add(
		col.New(2).Add(text.New("Cant.", header)),
		col.New(6).Add(text.New("Descripción", header)),
		col.New(2).Add(text.New("P. Unit", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Subtotal", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right})),
	)
}

func itemRows(order *entity.Order) []core.Row {
	type item struct {
		qty  int
		desc string
	}
	items := make([]item, 0, 2)
	if order.WithHandle > 0 {
		items = append(items, item{order.WithHandle, "Botellón 20L con asa"})
	}
	if order.WithoutHandle > 0 {
		items = append(items, item{order.WithoutHandle, "Botellón 20L sin asa"})
	}

	unitPrice := decimal.Zero
	if total := order.TotalBottles(); total > 0 {
		unitPrice = order.Total.Div(decimal.NewFromInt(int64(total))).Round(2)
	}

	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		subtotal := unitPrice.Mul(decimal.NewFromInt(int64(it.qty))).Round(2)
		rows = append(rows, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.qty), props.Text{Size: 9})),
			col.New(6).Add(text.New(it.desc, props.Text{Size: 9})),
			col.New(2).Add(text.New(unitPrice.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(subtotal.StringFixed(2), props.Text{Size: 9, Align: align.Right})),
		))
	}
	return rows
}

func totalsRow(order *entity.Order) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(2).Add(text.New("TOTAL", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New(order.Total.StringFixed(2),
			props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary})),
	)
}
