package billing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/domain/entity"
)

// Serialización tabular de los reportes. Separador ';' y fechas dd/mm/aaaa,
// que es lo que abre Excel sin pelear en las recepciones.

const (
	csvDateLayout     = "02/01/2006"
	csvDateTimeLayout = "02/01/2006 15:04"
)

func newCSVWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return cw
}

// WriteClosingCSV serializa el informe de cierre.
func WriteClosingCSV(w io.Writer, lines []dto.GuestBillingLine) error {
	cw := newCSVWriter(w)
	if err := cw.Write([]string{"CPF", "Nombre", "Empresa", "Días", "Almuerzos", "Cenas", "Entrada", "Salida"}); err != nil {
		return fmt.Errorf("csv cierre: %w", err)
	}
	for _, l := range lines {
		rec := []string{
			l.TaxID,
			l.Name,
			l.Company,
			strconv.Itoa(l.Days),
			strconv.Itoa(l.LunchCount),
			strconv.Itoa(l.DinnerCount),
			l.EntryDate.Format(csvDateLayout),
			l.ExitDate.Format(csvDateLayout),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv cierre: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteOccupancyCSV serializa el informe de ocupación actual.
func WriteOccupancyCSV(w io.Writer, lines []dto.OccupancyLine) error {
	cw := newCSVWriter(w)
	if err := cw.Write([]string{"Habitación", "Cama", "Huésped", "Empresa", "CPF", "Estado", "Check-in", "Equipaje"}); err != nil {
		return fmt.Errorf("csv ocupación: %w", err)
	}
	for _, l := range lines {
		luggage := "No"
		if l.HasLuggage {
			luggage = "Sí"
		}
		rec := []string{
			l.RoomNumber,
			l.BedLabel,
			l.GuestName,
			l.CompanyName,
			l.TaxID,
			l.Status,
			l.CheckIn.Format(csvDateTimeLayout),
			luggage,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv ocupación: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFreeBedsCSV serializa el informe de camas libres.
func WriteFreeBedsCSV(w io.Writer, lines []dto.FreeBedLine) error {
	cw := newCSVWriter(w)
	if err := cw.Write([]string{"Habitación", "Cama", "Climatización"}); err != nil {
		return fmt.Errorf("csv camas libres: %w", err)
	}
	for _, l := range lines {
		if err := cw.Write([]string{l.RoomNumber, l.BedLabel, l.Climate}); err != nil {
			return fmt.Errorf("csv camas libres: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMealHistoryCSV serializa el historial de comidas.
func WriteMealHistoryCSV(w io.Writer, lines []dto.MealHistoryLine) error {
	cw := newCSVWriter(w)
	if err := cw.Write([]string{"Fecha", "Hora", "Tipo", "Nombre", "Empresa", "CPF"}); err != nil {
		return fmt.Errorf("csv comidas: %w", err)
	}
	for _, l := range lines {
		rec := []string{
			l.CreatedAt.Format(csvDateLayout),
			l.CreatedAt.Format("15:04"),
			entity.MealTypeDisplay(l.Type),
			l.Name,
			l.CompanyName,
			l.TaxID,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv comidas: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
