package movements

import (
	"sort"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
)

// Kardex es la reconstrucción cronológica de movimientos de un producto en una
// sucursal, con saldo corrido y la diferencia contra el stock vivo.
// StockDifference es solo diagnóstico: un valor distinto de cero señala deriva
// entre los contadores vivos y el historial, pero nunca corrige el ledger.
type Kardex struct {
	Movements       []entity.KardexMovement
	FinalBalance    int64
	LiveAvailable   int64
	StockDifference int64 // LiveAvailable - FinalBalance
}

// BuildKardex ordena los movimientos por fecha (y código como desempate
// estable), calcula el saldo corrido y compara el saldo final contra el stock
// disponible vivo (servicio de dominio, función pura).
func BuildKardex(movs []entity.KardexMovement, liveAvailable int64) Kardex {
	sorted := make([]entity.KardexMovement, len(movs))
	copy(sorted, movs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].DocumentDate.Equal(sorted[j].DocumentDate) {
			return sorted[i].DocumentCode < sorted[j].DocumentCode
		}
		return sorted[i].DocumentDate.Before(sorted[j].DocumentDate)
	})

	var balance int64
	for i := range sorted {
		balance += sorted[i].Quantity
		sorted[i].Balance = balance
	}

	return Kardex{
		Movements:       sorted,
		FinalBalance:    balance,
		LiveAvailable:   liveAvailable,
		StockDifference: liveAvailable - balance,
	}
}
