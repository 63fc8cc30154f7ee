package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/assistant"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// AIHandler maneja el asistente conversacional del CRM (protegido).
type AIHandler struct {
	uc *assistant.ChatUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *assistant.ChatUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Chat POST /api/ai/chat
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	resp, err := h.uc.Chat(c.Context(), orgID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "message es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo procesar la pregunta"})
	}
	return c.JSON(resp)
}
