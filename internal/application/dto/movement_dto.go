package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementLineRequest línea de un documento de movimiento (entrada, salida o
// traslado). El total debe ser exactamente cantidad × precio/costo unitario;
// el validador lo verifica antes de abrir la transacción.
type MovementLineRequest struct {
	Item      int             `json:"item" validate:"min=1"`
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	Quantity  int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// RegisterReceiptRequest body para POST /api/receipts.
type RegisterReceiptRequest struct {
	ReceiptType    string                `json:"receipt_type" validate:"required"`
	DocumentDate   time.Time             `json:"document_date" validate:"required"`
	DocumentType   string                `json:"document_type" validate:"required"`
	DocumentNumber string                `json:"document_number"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	SupplierID     int64                 `json:"supplier_id" validate:"required,gt=0"`
	StoreID        int64                 `json:"store_id" validate:"required,gt=0"`
	Lines          []MovementLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// RegisterIssueRequest body para POST /api/issues.
type RegisterIssueRequest struct {
	IssueType   string                `json:"issue_type" validate:"required,oneof=Consignación 'Ajuste de inventario' 'Ajuste de kardex'"`
	TotalAmount decimal.Decimal       `json:"total_amount"`
	Annotations string                `json:"annotations"`
	StoreID     int64                 `json:"store_id" validate:"required,gt=0"`
	Lines       []MovementLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// SendTransferRequest body para POST /api/transfers.
type SendTransferRequest struct {
	StoreOriginID      int64                 `json:"store_origin_id" validate:"required,gt=0"`
	StoreDestinationID int64                 `json:"store_destination_id" validate:"required,gt=0"`
	TotalAmount        decimal.Decimal       `json:"total_amount"`
	Annotations        string                `json:"annotations"`
	Lines              []MovementLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// MovementLineResponse línea de documento en respuestas.
type MovementLineResponse struct {
	Item      int             `json:"item"`
	ProductID int64           `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// ReceiptResponse respuesta de una entrada de mercadería.
type ReceiptResponse struct {
	ID             int64                  `json:"id"`
	Code           string                 `json:"code"`
	ReceiptType    string                 `json:"receipt_type"`
	DocumentDate   time.Time              `json:"document_date"`
	DocumentType   string                 `json:"document_type"`
	DocumentNumber string                 `json:"document_number"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	SupplierID     int64                  `json:"supplier_id"`
	StoreID        int64                  `json:"store_id"`
	Status         string                 `json:"status"`
	CreatedAt      time.Time              `json:"created_at"`
	Lines          []MovementLineResponse `json:"lines,omitempty"`
}

// IssueResponse respuesta de una salida de mercadería.
type IssueResponse struct {
	ID          int64                  `json:"id"`
	Code        string                 `json:"code"`
	IssueType   string                 `json:"issue_type"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
	Annotations string                 `json:"annotations,omitempty"`
	StoreID     int64                  `json:"store_id"`
	Status      string                 `json:"status"`
	CreatedAt   time.Time              `json:"created_at"`
	Lines       []MovementLineResponse `json:"lines,omitempty"`
}

// TransferResponse respuesta de un traslado. Status es el estado de
// presentación según la sucursal que consulta (puede ser "Pendiente de
// recepción" aunque el estado persistido sea "Enviado").
type TransferResponse struct {
	ID                 int64                  `json:"id"`
	Code               string                 `json:"code"`
	SendDate           time.Time              `json:"send_date"`
	ReceiveDate        *time.Time             `json:"receive_date,omitempty"`
	TotalAmount        decimal.Decimal        `json:"total_amount"`
	Annotations        string                 `json:"annotations,omitempty"`
	StoreOriginID      int64                  `json:"store_origin_id"`
	StoreDestinationID int64                  `json:"store_destination_id"`
	Status             string                 `json:"status"`
	SentByName         string                 `json:"sent_by_name,omitempty"`
	ReceivedByName     string                 `json:"received_by_name,omitempty"`
	Lines              []MovementLineResponse `json:"lines,omitempty"`
}

// ReceiptListResponse listado paginado de entradas.
type ReceiptListResponse struct {
	Items []ReceiptResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// IssueListResponse listado paginado de salidas.
type IssueListResponse struct {
	Items []IssueResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// TransferListResponse listado paginado de traslados.
type TransferListResponse struct {
	Items []TransferResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// StockResponse fila de inventario de una sucursal.
type StockResponse struct {
	StoreID   int64           `json:"store_id"`
	ProductID int64           `json:"product_id"`
	Available int64           `json:"available"`
	InTransit int64           `json:"in_transit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SetPriceRequest body para PUT /api/stock/price.
type SetPriceRequest struct {
	StoreID   int64           `json:"store_id" validate:"required,gt=0"`
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
