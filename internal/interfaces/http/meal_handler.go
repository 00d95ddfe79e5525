package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/application/meal"
)

// MealHandler registra consumos de comida y manda los tickets a imprimir.
type MealHandler struct {
	uc *meal.UseCase
}

// NewMealHandler construye el handler de comidas.
func NewMealHandler(uc *meal.UseCase) *MealHandler {
	return &MealHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar ticket de comida
// @Description  Persiste el consumo y manda el ticket a la impresora. Un fallo
// @Description  de impresión no revierte el registro: printed queda en false.
// @Tags         meals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMealRequest  true  "Nombre, empresa y tipo de comida"
// @Success      201   {object}  dto.MealResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/meals [post]
func (h *MealHandler) Register(c *fiber.Ctx) error {
	var in dto.CreateMealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
