package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// KardexMovementDTO un movimiento del kardex con saldo corrido.
type KardexMovementDTO struct {
	DocumentCode string          `json:"document_code"`
	DocumentDate time.Time       `json:"document_date"`
	MovementType string          `json:"movement_type"`
	DocumentInfo string          `json:"document_info,omitempty"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Balance      int64           `json:"balance"`
}

// KardexResponse kardex de un producto en una sucursal. StockDifference es la
// deriva diagnóstica entre el ledger vivo y el saldo reconstruido (0 = sanos).
type KardexResponse struct {
	StoreID         int64               `json:"store_id"`
	ProductID       int64               `json:"product_id"`
	Movements       []KardexMovementDTO `json:"movements"`
	FinalBalance    int64               `json:"final_balance"`
	LiveAvailable   int64               `json:"live_available"`
	StockDifference int64               `json:"stock_difference"`
}
