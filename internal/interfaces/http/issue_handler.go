package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
)

// IssueHandler maneja las peticiones HTTP de salidas de mercadería (protegido).
type IssueHandler struct {
	uc *movements.GoodsIssueUseCase
}

// NewIssueHandler construye el handler.
func NewIssueHandler(uc *movements.GoodsIssueUseCase) *IssueHandler {
	return &IssueHandler{uc: uc}
}

// Register registra una salida de mercadería.
func (h *IssueHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), userID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel anula una salida y devuelve el stock descontado.
func (h *IssueHandler) Cancel(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	if err := h.uc.Cancel(c.Context(), userID, int64(id)); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "salida anulada"})
}

// GetByID obtiene una salida con sus líneas.
func (h *IssueHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "salida no encontrada"})
	}
	return c.JSON(out)
}

// List lista las salidas de la sucursal del usuario.
func (h *IssueHandler) List(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	if storeID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.List(storeID, limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}
