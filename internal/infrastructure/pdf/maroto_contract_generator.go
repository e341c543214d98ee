// Package pdf implementa la representación PDF de un contrato comercial.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la agencia  │  Título del contrato       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + NIT/CC + contacto                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONDICIONES: Descripción / vigencia / monto mensual        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Agencia | Cliente                                  │
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

	"github.com/agenciaflow/agencia-api/internal/application/usecase"
	"github.com/agenciaflow/agencia-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoContractGenerator implementa usecase.ContractPDFGenerator usando Maroto v2.
type MarotoContractGenerator struct {
	agencyName string
}

// Verificar en tiempo de compilación la interfaz.
var _ usecase.ContractPDFGenerator = (*MarotoContractGenerator)(nil)

// NewMarotoContractGenerator construye el generador con el nombre de la agencia
// que aparece en el encabezado y el bloque de firmas.
func NewMarotoContractGenerator(agencyName string) *MarotoContractGenerator {
	return &MarotoContractGenerator{agencyName: agencyName}
}

// GenerateContractPDF genera el PDF y devuelve sus bytes.
func (g *MarotoContractGenerator) GenerateContractPDF(
	_ context.Context,
	contract *entity.Contract,
	client *entity.Client,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Contrato de servicios", true).
		WithAuthor(g.agencyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.agencyName, contract))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRows(client)...)
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(termsRows(contract)...)
	m.AddRows(line.NewRow(10))
	m.AddRows(signatureRow(g.agencyName, client))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: agencia (izq) y título + estado del contrato (der).
func headerRow(agencyName string, contract *entity.Contract) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New(agencyName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Contrato de prestación de servicios", props.Text{
				Size: 9, Top: 10, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(contract.Title, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Estado: "+contract.Status, props.Text{
				Size: 9, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func clientRows(client *entity.Client) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}),
		)),
		row.New(6).Add(
			col.New(6).Add(text.New(client.Name, props.Text{Style: fontstyle.Bold, Size: 10})),
			col.New(6).Add(text.New(documentLabel(client), props.Text{Size: 9, Align: align.Right, Color: colorGray})),
		),
	}
	contact := client.Email
	if client.Phone != "" {
		contact += " · " + client.Phone
	}
	if contact != "" {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New(contact, props.Text{Size: 9, Color: colorGray}),
		)))
	}
	return rows
}

func documentLabel(client *entity.Client) string {
	if client.TaxID == "" {
		return ""
	}
	if client.Type == entity.ClientTypeEmpresa {
		return "NIT: " + client.TaxID
	}
	return "CC: " + client.TaxID
}

func termsRows(contract *entity.Contract) []core.Row {
	const dateFmt = "02/01/2006"
	vigencia := fmt.Sprintf("Vigencia: %s a %s",
		contract.StartDate.Format(dateFmt), contract.EndDate.Format(dateFmt))
	if contract.EndDate.IsZero() {
		vigencia = "Vigencia: desde " + contract.StartDate.Format(dateFmt) + " (indefinida)"
	}

	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("CONDICIONES", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}),
		)),
	}
	if contract.Description != "" {
		rows = append(rows, row.New(14).Add(col.New(12).Add(
			text.New(contract.Description, props.Text{Size: 10}),
		)))
	}
	rows = append(rows,
		row.New(6).Add(col.New(12).Add(text.New(vigencia, props.Text{Size: 10}))),
		row.New(6).Add(col.New(12).Add(
			text.New("Valor mensual: $"+contract.MonthlyAmount.StringFixed(2), props.Text{
				Style: fontstyle.Bold, Size: 11,
			}),
		)),
	)
	if contract.SignedAt != nil {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Firmado el "+contract.SignedAt.Format(dateFmt), props.Text{Size: 9, Color: colorGray}),
		)))
	}
	return rows
}

// signatureRow: línea de firma de la agencia y del cliente lado a lado.
func signatureRow(agencyName string, client *entity.Client) core.Row {
	return row.New(20).Add(
		col.New(5).Add(
			text.New("______________________________", props.Text{Size: 10, Top: 6}),
			text.New(agencyName, props.Text{Size: 9, Top: 13, Color: colorGray}),
		),
		col.New(2),
		col.New(5).Add(
			text.New("______________________________", props.Text{Size: 10, Top: 6}),
			text.New(client.Name, props.Text{Size: 9, Top: 13, Color: colorGray}),
		),
	)
}
