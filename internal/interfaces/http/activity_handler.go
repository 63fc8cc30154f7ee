package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/activity"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
)

// ActivityHandler expone el feed de auditoría de la organización (protegido).
type ActivityHandler struct {
	recorder *activity.Recorder
}

// NewActivityHandler construye el handler.
func NewActivityHandler(recorder *activity.Recorder) *ActivityHandler {
	return &ActivityHandler{recorder: recorder}
}

// List GET /api/activities?limit=N
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	list, err := h.recorder.List(orgID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar las actividades"})
	}
	return c.JSON(list)
}
