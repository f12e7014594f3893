package entity

import "time"

// Nombres de secuencia por tipo de documento.
const (
	SequenceGoodsReceipt = "GOODS_RECEIPT"
	SequenceGoodsIssue   = "GOODS_ISSUE"
	SequenceTransfer     = "TRANSFER"
)

// Prefijos de código de documento (fijos, no configurables).
const (
	PrefixGoodsReceipt = "ENT-"
	PrefixGoodsIssue   = "SAL-"
	PrefixTransfer     = "TRAS-"
)

// Sequence es la fila contadora de una secuencia de códigos de documento.
// Sin relleno de huecos ni reutilización de números de documentos anulados.
type Sequence struct {
	Name         string
	CurrentValue int64
	LastUpdated  time.Time
}
