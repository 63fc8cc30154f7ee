package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/application/pipeline"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// DealHandler maneja las peticiones HTTP del pipeline de ventas (protegido).
type DealHandler struct {
	uc *pipeline.DealUseCase
}

// NewDealHandler construye el handler.
func NewDealHandler(uc *pipeline.DealUseCase) *DealHandler {
	return &DealHandler{uc: uc}
}

// Create POST /api/deals
func (h *DealHandler) Create(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deal, err := h.uc.Create(orgID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, account_id y una etapa válida son requeridos"})
		}
		if err == domain.ErrInvalidReference {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: "la cuenta no pertenece a la organización"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo crear el deal"})
	}
	return c.Status(fiber.StatusCreated).JSON(deal)
}

// List GET /api/deals
func (h *DealHandler) List(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	list, err := h.uc.List(orgID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudieron listar los deals"})
	}
	return c.JSON(list)
}

// Update PUT /api/deals/:id
func (h *DealHandler) Update(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateDealRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	deal, err := h.uc.Update(orgID, int64(id), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title, account_id y una etapa válida son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "deal no encontrado"})
		}
		if err == domain.ErrInvalidReference {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_REFERENCE", Message: "la cuenta no pertenece a la organización"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo actualizar el deal"})
	}
	return c.JSON(deal)
}

// Delete DELETE /api/deals/:id
func (h *DealHandler) Delete(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(orgID, int64(id)); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "deal no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo borrar el deal"})
	}
	return c.JSON(dto.MessageResponse{Message: "Deal deleted"})
}
