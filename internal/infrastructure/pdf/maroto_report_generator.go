// Package pdf implementa la generación del reporte imprimible de alertas de
// inventario (stock bajo y vencimientos) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación + ventana (días)      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: STOCK BAJO — Medicamento | Lote | Cant | Umbral     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: VENCIMIENTOS — Medicamento | Lote | Vence | Días    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota de interpretación                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
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

	domainalert "github.com/medtrack/medtrack-api/internal/domain/alert"
	"github.com/medtrack/medtrack-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 80}
	colorDanger  = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa alerts.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAlertsReport genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateAlertsReport(
	_ context.Context,
	c *domainalert.Classification,
	windowDays int,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Alertas de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(windowDays, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Stock bajo
	m.AddRows(sectionTitleRow(fmt.Sprintf("STOCK BAJO (%d)", len(c.LowStock))))
	m.AddRows(lowStockHeaderRow())
	if len(c.LowStock) == 0 {
		m.AddRows(emptyRow("Sin medicamentos en o por debajo de su umbral de reposición."))
	}
	for _, r := range lowStockRows(c.LowStock) {
		m.AddRows(r)
	}

	// Vencimientos
	m.AddRows(line.NewRow(2))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitleRow(fmt.Sprintf("PRÓXIMOS A VENCER O VENCIDOS (%d)", len(c.ExpiringOrExpired))))
	m.AddRows(expiryHeaderRow())
	if len(c.ExpiringOrExpired) == 0 {
		m.AddRows(emptyRow(fmt.Sprintf("Sin vencimientos dentro de los próximos %d días.", windowDays)))
	}
	for _, r := range expiryRows(c.ExpiringOrExpired, generatedAt) {
		m.AddRows(r)
	}

	// Footer
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(windowDays))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha + ventana (der).
func headerRow(windowDays int, generatedAt time.Time) core.Row {
	fecha := generatedAt.UTC().Format("02/01/2006 15:04")

	return row.New(16).Add(
		col.New(7).Add(
			text.New("MedTrack", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Alertas de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+fecha+" UTC", props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Ventana de vencimiento: %d días", windowDays), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func lowStockHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Medicamento", 5, align.Left),
		tableHeader("Lote", 3, align.Left),
		tableHeader("Cantidad", 2, align.Right),
		tableHeader("Umbral", 2, align.Right),
	)
}

func lowStockRows(items []*entity.Medicine) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, m := range items {
		result = append(result, row.New(6).Add(
			tableCell(m.Name, 5, align.Left, nil),
			tableCell(m.BatchNo, 3, align.Left, colorGray),
			tableCell(fmt.Sprintf("%d", m.Quantity), 2, align.Right, nil),
			tableCell(fmt.Sprintf("%d", m.ReorderLevel), 2, align.Right, colorGray),
		))
	}
	return result
}

func expiryHeaderRow() core.Row {
	return row.New(7).Add(
		tableHeader("Medicamento", 5, align.Left),
		tableHeader("Lote", 3, align.Left),
		tableHeader("Vence", 2, align.Right),
		tableHeader("Días", 2, align.Right),
	)
}

func expiryRows(items []*entity.Medicine, generatedAt time.Time) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, m := range items {
		days := domainalert.DaysUntilExpiry(m, generatedAt)
		daysLabel := fmt.Sprintf("%d", days)
		var daysColor *props.Color
		if days <= 0 {
			daysLabel = "VENCIDO"
			daysColor = colorDanger
		}
		result = append(result, row.New(6).Add(
			tableCell(m.Name, 5, align.Left, nil),
			tableCell(m.BatchNo, 3, align.Left, colorGray),
			tableCell(m.ExpiryDate.Format("02/01/2006"), 2, align.Right, nil),
			tableCell(daysLabel, 2, align.Right, daysColor),
		))
	}
	return result
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
	))
}

func footerRow(windowDays int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf(
				"Stock bajo: cantidad en o por debajo del umbral de reposición (frontera inclusiva). "+
					"Vencimientos: fecha dentro de los próximos %d días calendario, incluyendo vencidos. "+
					"Un medicamento puede aparecer en ambas listas.", windowDays),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func tableHeader(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func tableCell(content string, size int, a align.Type, color *props.Color) core.Col {
	p := props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}
	if color != nil {
		p.Color = color
	}
	return col.New(size).Add(text.New(content, p))
}
