package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/application/usecase"
	"github.com/aqualife/aqualife-api/internal/domain"
)

// ConfigHandler maneja la configuración global de precios del botellón.
type ConfigHandler struct {
	uc *usecase.ConfigUseCase
}

// NewConfigHandler construye el handler de configuración.
func NewConfigHandler(uc *usecase.ConfigUseCase) *ConfigHandler {
	return &ConfigHandler{uc: uc}
}

// Get godoc
// @Summary      Precios vigentes del botellón
// @Tags         config
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BotellonConfigResponse
// @Router       /api/config/botellon [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetBotellonConfig(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar precios del botellón
// @Tags         config
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.UpdateBotellonConfigRequest  true  "precio, precio_alto"
// @Success      200   {object}  dto.Notification
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/config/botellon [put]
func (h *ConfigHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBotellonConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateBotellonConfig(c.Context(), GetUserID(c), in); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: ve.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
	}
	return c.JSON(dto.SuccessNotification("Precio actualizado."))
}

// History godoc
// @Summary      Historial de cambios de precio
// @Tags         config
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PriceChangeResponse
// @Router       /api/config/botellon/historial [get]
func (h *ConfigHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.ListPriceHistory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
	}
	return c.JSON(out)
}
