// Package pdf implementa la generación del boleto de viaje imprimible.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: NORTEEXPRESO  │  N° Boleto + Fecha de emisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PASAJERO: Nombre + DNI                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Origen | Destino | Salida | Bus | Asiento | Importe │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL PAGADO                                               │
//	│  FOOTER: código del boleto + leyenda                        │
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

	"github.com/Teamwawa12/ProyectoBus/internal/domain/entity"
)

const empresaNombre = "NORTEEXPRESO"

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoBoletoGenerator genera el boleto en PDF usando Maroto v2.
type MarotoBoletoGenerator struct{}

// NewMarotoBoletoGenerator construye el generador.
func NewMarotoBoletoGenerator() *MarotoBoletoGenerator { return &MarotoBoletoGenerator{} }

// GenerarBoleto genera el PDF del pasaje y devuelve sus bytes.
func (g *MarotoBoletoGenerator) GenerarBoleto(_ context.Context, p *entity.PasajeDetalle) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Boleto de viaje", true).
		WithAuthor(empresaNombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pasajeroRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableDetailRow(p))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(p))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(p)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar boleto: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la empresa (izq) y N° de boleto + fecha (der).
func headerRow(p *entity.PasajeDetalle) core.Row {
	numero := fmt.Sprintf("B-%06d", p.Codigo)
	fecha := p.FechaEmision.Format("02/01/2006 15:04")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresaNombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Transporte interprovincial de pasajeros", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("BOLETO DE VIAJE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(numero, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// pasajeroRow: datos del pasajero.
func pasajeroRow(p *entity.PasajeDetalle) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PASAJERO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.PasajeroNombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("DNI: "+p.PasajeroDNI, props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del viaje.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Origen", 2, align.Left),
		h("Destino", 2, align.Left),
		h("Salida", 3, align.Center),
		h("Bus", 2, align.Center),
		h("Asiento", 1, align.Center),
		h("Importe", 2, align.Right),
	)
}

// tableDetailRow: la única fila de detalle del boleto.
func tableDetailRow(p *entity.PasajeDetalle) core.Row {
	return row.New(7).Add(
		col.New(2).Add(text.New(
			p.Origen,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(2).Add(text.New(
			p.Destino,
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			p.FechaHoraSalida.Format("02/01/2006 15:04"),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			p.Placa,
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", p.Asiento),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(2).Add(text.New(
			"S/ "+p.ImportePagar.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: importe pagado alineado a la derecha.
func totalRow(p *entity.PasajeDetalle) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAGADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("S/ "+p.ImportePagar.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// footerRows: código del boleto + leyenda de embarque.
func footerRows(p *entity.PasajeDetalle) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New(fmt.Sprintf("Código de boleto: %d   |   Estado: %s", p.Codigo, p.Estado), props.Text{
				Style: fontstyle.Bold, Size: 7, Top: 1,
			}),
		)),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Presente este boleto junto con su documento de identidad al momento "+
					"del embarque. El pasajero debe estar en el terminal 30 minutos antes "+
					"de la hora de salida.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}
