package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/application/inventory"
	"github.com/aqualife/aqualife-api/internal/domain"
)

// InventoryHandler expone el libro de inventario de la sesión del repartidor.
type InventoryHandler struct {
	svc *inventory.Service
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(svc *inventory.Service) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// State godoc
// @Summary      Estado actual del inventario
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.InventoryStateResponse
// @Router       /api/inventario [get]
func (h *InventoryHandler) State(c *fiber.Ctx) error {
	return c.JSON(h.svc.State(GetUserID(c)))
}

// History godoc
// @Summary      Historial de operaciones (más reciente primero)
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.HistoryEntryResponse
// @Router       /api/inventario/historial [get]
func (h *InventoryHandler) History(c *fiber.Ctx) error {
	return c.JSON(h.svc.History(GetUserID(c)))
}

// AddStock godoc
// @Summary      Ingresar botellones llenos o vacíos
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AddStockRequest  true  "cantidad, llenos"
// @Success      200   {object}  dto.InventoryMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario/ingreso [post]
func (h *InventoryHandler) AddStock(c *fiber.Ctx) error {
	var in dto.AddStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.AddStock(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "Ingresa una cantidad válida."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
	}
	return c.JSON(out)
}

// UpdateCapsAndSeals godoc
// @Summary      Añadir tapas y/o precintos
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateCapsSealsRequest  true  "nuevas_tapas, nuevos_precintos"
// @Success      200   {object}  dto.InventoryMutationResponse
// @Router       /api/inventario/insumos [post]
func (h *InventoryHandler) UpdateCapsAndSeals(c *fiber.Ctx) error {
	var in dto.UpdateCapsSealsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.svc.UpdateCapsAndSeals(GetUserID(c), in))
}

// RegisterMaintenance godoc
// @Summary      Enviar botellones llenos a mantenimiento
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.MaintenanceRequest  true  "cantidad"
// @Success      200   {object}  dto.InventoryMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventario/mantenimiento [post]
func (h *InventoryHandler) RegisterMaintenance(c *fiber.Ctx) error {
	var in dto.MaintenanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.svc.RegisterMaintenance(GetUserID(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "Ingresa una cantidad válida."})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "No hay suficientes botellones llenos."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
		}
	}
	return c.JSON(out)
}
