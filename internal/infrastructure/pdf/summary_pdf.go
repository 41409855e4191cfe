// Package pdf genera el reporte ejecutivo del panel en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteos + crecimiento + ingresos del mes          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Región | Ingresos | Pedidos | Empresas | Crec.%     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: pendientes del feed visible                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

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

	"github.com/tu-usuario/groundnut-admin/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// SummaryGenerator genera el reporte ejecutivo usando Maroto v2.
type SummaryGenerator struct {
	businessName string
}

// NewSummaryGenerator construye el generador.
func NewSummaryGenerator(businessName string) *SummaryGenerator {
	return &SummaryGenerator{businessName: businessName}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *SummaryGenerator) Generate(summary dto.DashboardSummaryDTO, regional []dto.RegionalStatDTO, now time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte Ejecutivo", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRows(summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(regionalHeaderRow())
	for _, r := range regionalRows(regional) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(alertRows(summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *SummaryGenerator) headerRow(now time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte ejecutivo del panel", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func summaryRows(s dto.DashboardSummaryDTO) []core.Row {
	metric := func(label, value, growth string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 5}),
			text.New(growth, props.Text{Size: 7, Color: colorGray, Top: 12}),
		)
	}
	return []core.Row{
		row.New(18).Add(
			metric("Usuarios", fmt.Sprint(s.TotalUsers), fmt.Sprintf("%+d%% este mes", s.Growth.Users)),
			metric("Empresas", fmt.Sprint(s.TotalCompanies), fmt.Sprintf("%+d%% este mes", s.Growth.Companies)),
			metric("Vehículos", fmt.Sprint(s.TotalVehicles), fmt.Sprintf("%+d%% este mes", s.Growth.Vehicles)),
			metric("Lotes", fmt.Sprint(s.TotalProducts), fmt.Sprintf("%+d%% este mes", s.Growth.Products)),
		),
		row.New(10).Add(
			col.New(4).Add(
				text.New("Ingresos del mes", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New("₹ "+s.MonthlyRevenue.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}),
			),
			col.New(4).Add(
				text.New("Pedidos pendientes", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(fmt.Sprint(s.PendingOrders), props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}),
			),
			col.New(4).Add(
				text.New("Alertas sin resolver", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(fmt.Sprint(s.UnresolvedAlerts), props.Text{Style: fontstyle.Bold, Size: 11, Top: 4}),
			),
		),
	}
}

func regionalHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Región", 4, align.Left),
		h("Ingresos", 3, align.Right),
		h("Pedidos", 2, align.Center),
		h("Empresas", 2, align.Center),
		h("Crec.%", 1, align.Right),
	)
}

func regionalRows(regional []dto.RegionalStatDTO) []core.Row {
	result := make([]core.Row, 0, len(regional))
	for _, r := range regional {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(r.Region, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New("₹ "+r.Revenue.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(fmt.Sprint(r.Orders), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprint(r.Companies), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%+d", r.GrowthPct), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func alertRows(s dto.DashboardSummaryDTO) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("ALERTAS VISIBLES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, a := range s.VisibleAlerts {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("[%s] %s", a.Type, a.Message), props.Text{
				Size: 7, Color: colorGray, Top: 0.5, Left: 2,
			}),
		)))
	}
	if len(s.VisibleAlerts) == 0 {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Sin alertas pendientes.", props.Text{Size: 7, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}
