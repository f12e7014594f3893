package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
	"github.com/serodominguez/waresoft-api/internal/application/reports"
)

// KardexHandler maneja las consultas y exportaciones del kardex (protegido).
type KardexHandler struct {
	uc     *movements.KardexUseCase
	export *reports.KardexExportUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *movements.KardexUseCase, export *reports.KardexExportUseCase) *KardexHandler {
	return &KardexHandler{uc: uc, export: export}
}

func kardexParams(c *fiber.Ctx) (storeID, productID int64, ok bool) {
	storeID = GetStoreID(c)
	productID = int64(c.QueryInt("product_id", 0))
	if s := c.QueryInt("store_id", 0); s > 0 {
		storeID = int64(s)
	}
	return storeID, productID, storeID > 0 && productID > 0
}

// Get reconstruye el kardex de un producto en una sucursal.
func (h *KardexHandler) Get(c *fiber.Ctx) error {
	storeID, productID, ok := kardexParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y product_id son requeridos"})
	}
	out, err := h.uc.GetKardex(storeID, productID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ExportExcel descarga el kardex como libro Excel.
func (h *KardexHandler) ExportExcel(c *fiber.Ctx) error {
	storeID, productID, ok := kardexParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y product_id son requeridos"})
	}
	data, name, err := h.export.ExportExcel(c.Context(), storeID, productID)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

// ExportPDF descarga el kardex como documento PDF.
func (h *KardexHandler) ExportPDF(c *fiber.Ctx) error {
	storeID, productID, ok := kardexParams(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y product_id son requeridos"})
	}
	data, name, err := h.export.ExportPDF(c.Context(), storeID, productID)
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(data)
}
