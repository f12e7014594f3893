package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Etiquetas de tipo de movimiento en el kardex.
const (
	KardexMovementReceipt  = "Entrada"
	KardexMovementIssue    = "Salida"
	KardexMovementTransfer = "Traslado"
)

// KardexMovement es un movimiento normalizado del kardex de un producto en una
// sucursal: cantidad con signo (+entrada, -salida), etiquetado con el documento
// que lo originó. Se deriva de las líneas de entradas, salidas y traslados no
// anulados; nunca se persiste.
type KardexMovement struct {
	DocumentCode string
	DocumentDate time.Time
	MovementType string // Entrada | Salida | Traslado
	DocumentInfo string // tipo de entrada/salida o sucursal contraparte
	Quantity     int64  // con signo
	UnitPrice    decimal.Decimal
	Balance      int64 // saldo corrido, calculado por el servicio de dominio
}
