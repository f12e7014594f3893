package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueStatus estado de una salida de mercadería.
type IssueStatus int

const (
	IssueCancelled IssueStatus = 0
	IssueActive    IssueStatus = 1
)

// Tipos de salida. A diferencia de las entradas, toda salida muta el stock
// sin importar el tipo.
const (
	IssueTypeConsignment  = "Consignación"
	IssueTypeAdjustment   = "Ajuste de inventario"
	IssueTypeKardexAdjust = "Ajuste de kardex"
)

// GoodsIssue cabecera de una salida de mercadería.
type GoodsIssue struct {
	ID          int64
	Code        string // SAL-000001
	IssueType   string
	TotalAmount decimal.Decimal
	Annotations string
	StoreID     int64
	Status      IssueStatus
	CreatedBy   int64
	CreatedAt   time.Time
	CancelledBy *int64
	CancelledAt *time.Time
	Details     []GoodsIssueDetail
}

// GoodsIssueDetail línea de una salida. Invariante: TotalPrice = Quantity × UnitPrice.
type GoodsIssueDetail struct {
	IssueID   int64
	Item      int
	ProductID int64
	Quantity  int64
	UnitPrice decimal.Decimal
	TotalPrice decimal.Decimal
}
