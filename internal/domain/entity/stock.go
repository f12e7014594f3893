package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa la fila de inventario de un producto en una sucursal.
// Available es la cantidad disponible para venta/salida; InTransit la cantidad
// descontada del origen de un traslado y aún no recibida en destino.
// UnitPrice se mantiene por un flujo de precios aparte: los movimientos de
// stock nunca lo escriben (ver StockRepository.AdjustQuantities vs SetPrice).
type Stock struct {
	StoreID   int64
	ProductID int64
	Available int64
	InTransit int64
	UnitPrice decimal.Decimal
	UpdatedAt time.Time
}
