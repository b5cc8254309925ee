// Package export renders financial reports as PDF documents.
package export

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
	"github.com/shopspring/decimal"

	"github.com/SscSPs/contabilidad_app/internal/core/domain"
	"github.com/SscSPs/contabilidad_app/internal/utils"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// PeriodLabel describes a date range for report headers.
func PeriodLabel(r domain.DateRange) string {
	const layout = "02/01/2006"
	switch {
	case r.Start != nil && r.End != nil:
		return fmt.Sprintf("Del %s al %s", r.Start.Format(layout), r.End.Format(layout))
	case r.Start != nil:
		return "Desde " + r.Start.Format(layout)
	case r.End != nil:
		return "Hasta " + r.End.Format(layout)
	}
	return "Todos los periodos"
}

func titleRow(title string, r domain.DateRange, generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(PeriodLabel(r), props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
		),
	)
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
}

func amountRow(label string, amount decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(7).Add(
		col.New(8).Add(text.New(label, props.Text{Style: style, Size: 9, Top: 1})),
		col.New(4).Add(text.New(utils.FormatCOP(amount), props.Text{Style: style, Size: 9, Align: align.Right, Top: 1})),
	)
}

func separator() core.Row {
	return line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3})
}

// TrialBalancePDF renders the trial balance with one row per account.
func TrialBalancePDF(tb domain.TrialBalance, r domain.DateRange, generatedAt time.Time) ([]byte, error) {
	m := newDocument("Balance de Prueba")
	m.AddRows(titleRow("Balance de Prueba", r, generatedAt))
	m.AddRows(separator())
	m.AddRows(row.New(7).Add(
		headerCell("Código", 2, align.Left),
		headerCell("Cuenta", 4, align.Left),
		headerCell("Débito", 2, align.Right),
		headerCell("Crédito", 2, align.Right),
		headerCell("Saldo", 2, align.Right),
	))

	for _, acc := range tb.Accounts {
		m.AddRows(row.New(6).Add(
			cell(acc.Code, 2, align.Left),
			cell(acc.Name, 4, align.Left),
			cell(utils.FormatCOP(acc.Debit), 2, align.Right),
			cell(utils.FormatCOP(acc.Credit), 2, align.Right),
			cell(utils.FormatCOP(acc.Balance), 2, align.Right),
		))
	}

	status := "Cuadrado"
	if !tb.IsBalanced {
		status = "Descuadrado"
	}
	m.AddRows(separator())
	m.AddRows(row.New(7).Add(
		col.New(6).Add(text.New("Totales ("+status+")", props.Text{Style: fontstyle.Bold, Size: 9, Top: 1})),
		col.New(2).Add(text.New(utils.FormatCOP(tb.TotalDebit), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(2).Add(text.New(utils.FormatCOP(tb.TotalCredit), props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1})),
		col.New(2),
	))
	return generate(m)
}

// IncomeStatementPDF renders the income statement with its detail sections.
func IncomeStatementPDF(is domain.IncomeStatement, r domain.DateRange, generatedAt time.Time) ([]byte, error) {
	m := newDocument("Estado de Resultados")
	m.AddRows(titleRow("Estado de Resultados", r, generatedAt))
	m.AddRows(separator())

	m.AddRows(amountRow("Ingresos", is.Income, true))
	for _, d := range is.IncomeDetails {
		m.AddRows(amountRow("   "+d.Code+" "+d.Name, d.Amount, false))
	}
	m.AddRows(amountRow("Costo de ventas", is.CostOfSales, true))
	m.AddRows(separator())
	m.AddRows(amountRow("Utilidad bruta", is.GrossProfit, true))

	m.AddRows(amountRow("Gastos", is.Expenses, true))
	for _, d := range is.ExpenseDetails {
		m.AddRows(amountRow("   "+d.Code+" "+d.Name, d.Amount, false))
	}
	m.AddRows(separator())
	m.AddRows(amountRow("Utilidad neta", is.NetProfit, true))
	return generate(m)
}
