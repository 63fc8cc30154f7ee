package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// StatsHandler expone el resumen del dashboard (protegido).
type StatsHandler struct {
	uc *analytics.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *analytics.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary GET /api/stats
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	stats, err := h.uc.GetSummary(c.Context(), orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el resumen"})
	}
	return c.JSON(stats)
}
