package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus estado persistido de un traslado entre sucursales.
// TransferPending (3) nunca se persiste: es un estado de presentación derivado
// cuando la sucursal que consulta es el destino y el traslado sigue enviado.
type TransferStatus int

const (
	TransferCancelled TransferStatus = 0
	TransferSent      TransferStatus = 1
	TransferReceived  TransferStatus = 2
	TransferPending   TransferStatus = 3
)

// Label etiqueta legible del estado.
func (s TransferStatus) Label() string {
	switch s {
	case TransferCancelled:
		return "Anulado"
	case TransferSent:
		return "Enviado"
	case TransferReceived:
		return "Recibido"
	case TransferPending:
		return "Pendiente de recepción"
	default:
		return "Desconocido"
	}
}

// Transfer cabecera de un traslado de mercadería entre dos sucursales.
// Auditoría con campos propios por acción: quien envía, quien recibe y quien
// anula se registran por separado (no se reutiliza un slot de borrado).
type Transfer struct {
	ID                 int64
	Code               string // TRAS-000001
	SendDate           time.Time
	ReceiveDate        *time.Time
	TotalAmount        decimal.Decimal
	Annotations        string
	StoreOriginID      int64
	StoreDestinationID int64
	Status             TransferStatus
	SentBy             int64
	SentAt             time.Time
	ReceivedBy         *int64
	ReceivedAt         *time.Time
	CancelledBy        *int64
	CancelledAt        *time.Time
	Details            []TransferDetail
}

// TransferDetail línea de un traslado. Invariante: TotalPrice = Quantity × UnitPrice.
type TransferDetail struct {
	TransferID int64
	Item       int
	ProductID  int64
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}
