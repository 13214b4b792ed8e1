package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/application/usecase"
	"github.com/aqualife/aqualife-api/internal/domain"
)

// CustomerHandler expone la administración de perfiles de cliente.
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler de clientes.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Listar perfiles de cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.CustomerResponse
// @Router       /api/clientes [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
	}
	return c.JSON(out)
}

// SetActive godoc
// @Summary      Suspender o reactivar un cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "ID del cliente"
// @Param        body  body  object{activo=bool}  true  "activo"
// @Success      200   {object}  dto.Notification
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/clientes/{id}/activo [put]
func (h *CustomerHandler) SetActive(c *fiber.Ctx) error {
	var in struct {
		Active bool `json:"activo"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), in.Active); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
	}
	msg := "Cliente reactivado."
	if !in.Active {
		msg = "Cliente suspendido."
	}
	return c.JSON(dto.SuccessNotification(msg))
}
