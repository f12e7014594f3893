package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
)

// StockHandler maneja las consultas de inventario y edición de precio (protegido).
type StockHandler struct {
	uc *movements.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *movements.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Get obtiene la fila de stock de un producto en la sucursal del usuario.
func (h *StockHandler) Get(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	if storeID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id requerido"})
	}
	productID, err := c.ParamsInt("product_id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "product_id inválido"})
	}
	out, err := h.uc.Get(storeID, int64(productID))
	if err != nil {
		return errorJSON(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "el producto no tiene stock en esta sucursal"})
	}
	return c.JSON(out)
}

// List lista el inventario de la sucursal del usuario.
func (h *StockHandler) List(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	if storeID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id requerido"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByStore(storeID, limit, offset)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"items": out, "page": dto.PageResponse{Limit: limit, Offset: offset}})
}

// SetPrice fija el precio unitario de un producto en una sucursal.
func (h *StockHandler) SetPrice(c *fiber.Ctx) error {
	var in dto.SetPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetPrice(in); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "precio actualizado"})
}
