// Package printer implementa la impresión de tickets de comida como PDF
// de formato ticket (80mm), entregado al directorio de spool de la
// impresora térmica del comedor.
//
// Layout del ticket:
//
//	┌──────────────────────┐
//	│       ALMUERZO       │
//	│  ──────────────────  │
//	│  Nombre del huésped  │
//	│  Empresa             │
//	│  Fecha y hora        │
//	│  ──────────────────  │
//	│  Hotel Sol Nascente  │
//	└──────────────────────┘
package printer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/linestyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/solnascente/frontdesk-api/internal/application/meal"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
	"github.com/solnascente/frontdesk-api/pkg/logger"
)

var colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}

// Asegura que MarotoTicketPrinter implementa meal.TicketPrinter.
var _ meal.TicketPrinter = (*MarotoTicketPrinter)(nil)

// MarotoTicketPrinter genera el ticket con Maroto v2 y lo deposita en el
// directorio de spool. Con spoolDir vacío (desarrollo) el PDF se genera y
// se descarta.
type MarotoTicketPrinter struct {
	hotelName string
	spoolDir  string
	log       *logger.Logger
}

// NewMarotoTicketPrinter construye la impresora de tickets.
func NewMarotoTicketPrinter(hotelName, spoolDir string, log *logger.Logger) *MarotoTicketPrinter {
	return &MarotoTicketPrinter{hotelName: hotelName, spoolDir: spoolDir, log: log}
}

// PrintTicket genera el PDF del ticket y lo entrega al spool.
func (p *MarotoTicketPrinter) PrintTicket(_ context.Context, ticket *entity.MealTicket) error {
	doc, err := p.render(ticket)
	if err != nil {
		return fmt.Errorf("printer: generar ticket: %w", err)
	}

	if p.spoolDir == "" {
		p.log.Debug().Str("meal_id", ticket.ID).Msg("spool deshabilitado, ticket descartado")
		return nil
	}

	path := filepath.Join(p.spoolDir, fmt.Sprintf("ticket-%s.pdf", ticket.ID))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("printer: escribir spool: %w", err)
	}
	p.log.Info().Str("path", path).Msg("ticket enviado al spool")
	return nil
}

func (p *MarotoTicketPrinter) render(ticket *entity.MealTicket) ([]byte, error) {
	// Formato ticket térmico: 80mm de ancho.
	cfg := config.NewBuilder().
		WithDimensions(80, 120).
		WithLeftMargin(5).WithRightMargin(5).
		WithTopMargin(5).WithBottomMargin(5).
		WithDefaultFont(&props.Font{Family: "courier", Size: 9}).
		Build()

	m := maroto.New(cfg)

	// Titular grande con el tipo de comida
	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New(entity.MealTypeDisplay(ticket.Type), props.Text{
			Style: fontstyle.Bold, Size: 20, Align: align.Center, Top: 2,
		}),
	)))
	m.AddRows(dashedRule())

	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(ticket.Name, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 2,
		}),
	)))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(ticket.CompanyName, props.Text{
			Size: 9, Align: align.Center, Top: 1, Color: colorGray,
		}),
	)))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(ticket.CreatedAt.Format("02/01/2006 15:04"), props.Text{
			Size: 8, Align: align.Center, Top: 1, Color: colorGray,
		}),
	)))

	m.AddRows(dashedRule())
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(p.hotelName, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Center, Top: 2,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// dashedRule imita el corte punteado de las impresoras térmicas.
func dashedRule() core.Row {
	return line.NewRow(3, props.Line{
		Color:     colorGray,
		Thickness: 0.3,
		Style:     linestyle.Dashed,
	})
}
