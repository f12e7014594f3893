package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
)

// ReceiptHandler maneja las peticiones HTTP de entradas de mercadería (protegido).
type ReceiptHandler struct {
	uc *movements.GoodsReceiptUseCase
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *movements.GoodsReceiptUseCase) *ReceiptHandler {
	return &ReceiptHandler{uc: uc}
}

// Register registra una entrada de mercadería.
func (h *ReceiptHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Register(c.Context(), userID, in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel anula una entrada y revierte su efecto sobre el stock.
func (h *ReceiptHandler) Cancel(c *fiber.Ctx) error {
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
	return c.JSON(fiber.Map{"message": "entrada anulada"})
}

// GetByID obtiene una entrada con sus líneas.
func (h *ReceiptHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(int64(id))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "entrada no encontrada"})
	}
	return c.JSON(out)
}

// List lista las entradas de la sucursal del usuario.
func (h *ReceiptHandler) List(c *fiber.Ctx) error {
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
