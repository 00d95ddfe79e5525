package http

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/solnascente/frontdesk-api/internal/application/billing"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
)

const queryDateLayout = "2006-01-02"

// ReportHandler sirve los informes de ocupación, comidas y el cierre de
// facturación. Todos soportan format=csv para descarga.
type ReportHandler struct {
	closing *billing.ClosingReportUseCase
	reports *billing.ReportsUseCase
}

// NewReportHandler construye el handler de informes.
func NewReportHandler(closing *billing.ClosingReportUseCase, reports *billing.ReportsUseCase) *ReportHandler {
	return &ReportHandler{closing: closing, reports: reports}
}

// parseRange lee from y to (YYYY-MM-DD) de la query. Ambos son requeridos.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := time.Parse(queryDateLayout, c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("from inválido, formato YYYY-MM-DD")
	}
	to, err := time.Parse(queryDateLayout, c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("to inválido, formato YYYY-MM-DD")
	}
	return from, to, nil
}

// sendCSV arma la respuesta de descarga CSV.
func sendCSV(c *fiber.Ctx, filename string, write func(*bytes.Buffer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return respondDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}

// Closing godoc
// @Summary      Informe de cierre de facturación (solo admin)
// @Description  Días ocupados y comidas por huésped dentro de la ventana
// @Description  [from, to], opcionalmente filtrado por empresa.
// @Tags         reports
// @Produce      json
// @Param        from        query  string  true   "Inicio de la ventana (YYYY-MM-DD)"
// @Param        to          query  string  true   "Fin de la ventana (YYYY-MM-DD)"
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Param        format      query  string  false  "csv para descarga"
// @Success      200  {array}  dto.GuestBillingLine
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/closing [get]
func (h *ReportHandler) Closing(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	lines, err := h.closing.ClosingReport(c.Context(), from, to, c.Query("company_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if c.Query("format") == "csv" {
		name := fmt.Sprintf("cierre-%s-%s.csv", c.Query("from"), c.Query("to"))
		return sendCSV(c, name, func(buf *bytes.Buffer) error {
			return billing.WriteClosingCSV(buf, lines)
		})
	}
	return c.JSON(lines)
}

// Occupancy godoc
// @Summary      Informe de ocupación actual
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "csv para descarga"
// @Success      200  {array}  dto.OccupancyLine
// @Router       /api/reports/occupancy [get]
func (h *ReportHandler) Occupancy(c *fiber.Ctx) error {
	lines, err := h.reports.Occupancy()
	if err != nil {
		return respondDomainError(c, err)
	}
	if c.Query("format") == "csv" {
		return sendCSV(c, "ocupacion.csv", func(buf *bytes.Buffer) error {
			return billing.WriteOccupancyCSV(buf, lines)
		})
	}
	return c.JSON(lines)
}

// FreeBeds godoc
// @Summary      Informe de camas libres
// @Tags         reports
// @Produce      json
// @Param        format  query  string  false  "csv para descarga"
// @Success      200  {array}  dto.FreeBedLine
// @Router       /api/reports/free-beds [get]
func (h *ReportHandler) FreeBeds(c *fiber.Ctx) error {
	lines, err := h.reports.FreeBeds()
	if err != nil {
		return respondDomainError(c, err)
	}
	if c.Query("format") == "csv" {
		return sendCSV(c, "camas-libres.csv", func(buf *bytes.Buffer) error {
			return billing.WriteFreeBedsCSV(buf, lines)
		})
	}
	return c.JSON(lines)
}

// MealHistory godoc
// @Summary      Historial de comidas por rango de fechas
// @Tags         reports
// @Produce      json
// @Param        from        query  string  true   "Inicio (YYYY-MM-DD)"
// @Param        to          query  string  true   "Fin (YYYY-MM-DD)"
// @Param        company_id  query  string  false  "Filtrar por empresa"
// @Param        format      query  string  false  "csv para descarga"
// @Success      200  {array}  dto.MealHistoryLine
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/meals [get]
func (h *ReportHandler) MealHistory(c *fiber.Ctx) error {
	from, to, err := parseRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	lines, err := h.reports.MealHistory(c.Context(), from, to, c.Query("company_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	if c.Query("format") == "csv" {
		name := fmt.Sprintf("comidas-%s-%s.csv", c.Query("from"), c.Query("to"))
		return sendCSV(c, name, func(buf *bytes.Buffer) error {
			return billing.WriteMealHistoryCSV(buf, lines)
		})
	}
	return c.JSON(lines)
}
