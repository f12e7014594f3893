package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptStatus estado de una entrada de mercadería.
type ReceiptStatus int

const (
	ReceiptCancelled ReceiptStatus = 0
	ReceiptActive    ReceiptStatus = 1
)

// Tipos de entrada. "Adquisición" refleja una compra real; el resto son
// regularizaciones. "Ajuste de kardex" no toca el stock vivo (solo historial).
const (
	ReceiptTypePurchase      = "Adquisición"
	ReceiptTypeAdjustment    = "Ajuste de inventario"
	ReceiptTypeKardexAdjust  = "Ajuste de kardex"
	ReceiptTypeRegularizaton = "Regularización"
)

// GoodsReceipt cabecera de una entrada de mercadería (compra o regularización).
type GoodsReceipt struct {
	ID             int64
	Code           string // ENT-000001
	ReceiptType    string
	DocumentDate   time.Time
	DocumentType   string // factura, nota, recibo
	DocumentNumber string
	TotalAmount    decimal.Decimal
	SupplierID     int64
	StoreID        int64
	Status         ReceiptStatus
	CreatedBy      int64
	CreatedAt      time.Time
	CancelledBy    *int64
	CancelledAt    *time.Time
	Details        []GoodsReceiptDetail
}

// GoodsReceiptDetail línea de una entrada. Invariante: TotalCost = Quantity × UnitCost.
type GoodsReceiptDetail struct {
	ReceiptID int64
	Item      int
	ProductID int64
	Quantity  int64
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal
}
