package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/aqualife/aqualife-api/internal/application/dto"
	"github.com/aqualife/aqualife-api/internal/application/stats"
	"github.com/aqualife/aqualife-api/internal/domain"
)

// StatsHandler expone el tablero de estadísticas del administrador.
type StatsHandler struct {
	uc *stats.UseCase
}

// NewStatsHandler construye el handler de estadísticas.
func NewStatsHandler(uc *stats.UseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Get godoc
// @Summary      Estadísticas agregadas de pedidos, clientes y usuarios
// @Tags         estadisticas
// @Produce      json
// @Security     BearerAuth
// @Param        rango        query  string  false  "day, week, month, year, all o custom"
// @Param        campo_fecha  query  string  false  "fecha o created_at"
// @Param        desde        query  string  false  "YYYY-MM-DD (solo custom)"
// @Param        hasta        query  string  false  "YYYY-MM-DD (solo custom)"
// @Success      200  {object}  dto.StatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estadisticas [get]
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	var q dto.StatsQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.GetStats(c.Context(), q)
	if err != nil {
		if domain.IsValidation(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Ha ocurrido un error. Inténtalo de nuevo."})
	}
	return c.JSON(out)
}
