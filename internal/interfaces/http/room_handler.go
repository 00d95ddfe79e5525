package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/solnascente/frontdesk-api/internal/application/dto"
	"github.com/solnascente/frontdesk-api/internal/application/usecase"
)

// RoomHandler maneja las peticiones HTTP para habitaciones y camas.
type RoomHandler struct {
	uc *usecase.RoomUseCase
}

// NewRoomHandler construye el handler inyectando el caso de uso.
func NewRoomHandler(uc *usecase.RoomUseCase) *RoomHandler {
	return &RoomHandler{uc: uc}
}

// Create godoc
// @Summary      Crear habitación con sus camas
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoomRequest  true  "Número, climatización y etiquetas de camas"
// @Success      201   {object}  dto.RoomResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rooms [post]
func (h *RoomHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoomRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener habitación por ID
// @Tags         rooms
// @Produce      json
// @Param        id   path  string  true  "ID de la habitación"
// @Success      200  {object}  dto.RoomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id} [get]
func (h *RoomHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar habitaciones con sus camas
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  dto.RoomListResponse
// @Router       /api/rooms [get]
func (h *RoomHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// AddBed godoc
// @Summary      Agregar cama a una habitación
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID de la habitación"
// @Param        body  body  dto.AddBedRequest  true  "Etiqueta de la cama"
// @Success      201   {object}  dto.BedResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rooms/{id}/beds [post]
func (h *RoomHandler) AddBed(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AddBedRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validateStruct(in); fields != nil {
		return respondValidation(c, fields)
	}
	out, err := h.uc.AddBed(id, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ToggleMaintenance godoc
// @Summary      Alternar modo mantenimiento de una habitación
// @Description  No se puede poner en mantenimiento una habitación con reservas vivas.
// @Tags         rooms
// @Produce      json
// @Param        id   path  string  true  "ID de la habitación"
// @Success      200  {object}  dto.RoomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/rooms/{id}/maintenance [post]
func (h *RoomHandler) ToggleMaintenance(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ToggleMaintenance(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
