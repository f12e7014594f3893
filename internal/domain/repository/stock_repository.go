package repository

import (
	"github.com/shopspring/decimal"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar el inventario por
// sucursal+producto. Devuelve nil cuando la fila no existe: la ausencia es
// señal para los flujos (crear en entradas/recepciones, abortar en salidas).
type StockRepository interface {
	Get(storeID, productID int64) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro
	// de la transacción de cada flujo para serializar mutaciones concurrentes.
	GetForUpdate(storeID, productID int64) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	// AdjustQuantities persiste Available e InTransit. No escribe UnitPrice:
	// el precio lo mantiene SetPrice y no debe pisarse desde los movimientos.
	AdjustQuantities(stock *entity.Stock) error
	SetPrice(storeID, productID int64, price decimal.Decimal) error
	ListByStore(storeID int64, limit, offset int) ([]*entity.Stock, error)
}
