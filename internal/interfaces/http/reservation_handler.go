package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/application/reservation"
)

// ReservationHandler maneja el ciclo de vida de las reservas.
type ReservationHandler struct {
	lifecycle    *reservation.LifecycleUseCase
	availability *reservation.AvailabilityUseCase
}

// NewReservationHandler construye el handler inyectando los casos de uso.
func NewReservationHandler(lifecycle *reservation.LifecycleUseCase, availability *reservation.AvailabilityUseCase) *ReservationHandler {
	return &ReservationHandler{lifecycle: lifecycle, availability: availability}
}

// AvailableBeds godoc
// @Summary      Listar camas disponibles
// @Description  Filtra camas ocupadas, en mantenimiento o con compañeros de otra empresa.
// @Tags         reservations
// @Produce      json
// @Param        company_id  query  string  false  "ID de la empresa del huésped"
// @Success      200  {array}  dto.AvailableBedResponse
// @Router       /api/reservations/available-beds [get]
func (h *ReservationHandler) AvailableBeds(c *fiber.Ctx) error {
	out, err := h.availability.AvailableBeds(c.Query("company_id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener reserva por ID con su historial
// @Tags         reservations
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.lifecycle.Get(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear reserva (PRE o check-in directo)
// @Description  Crea huésped y empresa si no existen. Revalida la cama bajo lock.
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReservationRequest  true  "Huésped, cama y tipo"
// @Success      201   {object}  dto.ReservationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reservations [post]
func (h *ReservationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReservationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.lifecycle.Create(c.Context(), GetActor(c), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ConfirmCheckIn godoc
// @Summary      Confirmar check-in de una pre-reserva
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID de la reserva"
// @Param        body  body  dto.ConfirmCheckInRequest  true  "Datos definitivos del huésped"
// @Success      200   {object}  dto.ReservationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/check-in [post]
func (h *ReservationHandler) ConfirmCheckIn(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ConfirmCheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.lifecycle.ConfirmCheckIn(c.Context(), GetActor(c), id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Checkout godoc
// @Summary      Hacer checkout de una reserva viva
// @Tags         reservations
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservationResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/checkout [post]
func (h *ReservationHandler) Checkout(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.lifecycle.Checkout(c.Context(), GetActor(c), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Cancelar una pre-reserva
// @Description  Solo reservas PRE; la reserva y su historial se eliminan.
// @Tags         reservations
// @Param        id   path  string  true  "ID de la reserva"
// @Success      204  "Sin contenido"
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.lifecycle.Cancel(c.Context(), id); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ChangeRoom godoc
// @Summary      Trasladar la reserva a otra cama
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la reserva"
// @Param        body  body  dto.ChangeRoomRequest  true  "Cama destino"
// @Success      200   {object}  dto.ReservationResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/change-room [post]
func (h *ReservationHandler) ChangeRoom(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.ChangeRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.lifecycle.ChangeRoom(c.Context(), GetActor(c), id, in.NewBedID)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ToggleLuggage godoc
// @Summary      Alternar la bandera de equipaje guardado
// @Tags         reservations
// @Produce      json
// @Param        id   path  string  true  "ID de la reserva"
// @Success      200  {object}  dto.ReservationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reservations/{id}/luggage [post]
func (h *ReservationHandler) ToggleLuggage(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.lifecycle.ToggleLuggage(c.Context(), GetActor(c), id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
