package movements

import (
	"github.com/shopspring/decimal"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/domain"
)

// validateLines verifica los invariantes de totales antes de abrir la
// transacción: cada línea debe cumplir total = cantidad × precio unitario, la
// cabecera debe cuadrar con la suma de líneas y no se admiten productos
// repetidos. Cualquier incumplimiento es ErrInvalidInput (ningún estado
// parcial se escribe).
func validateLines(lines []dto.MovementLineRequest, totalAmount decimal.Decimal) error {
	if len(lines) == 0 {
		return domain.ErrInvalidInput
	}
	seen := make(map[int64]bool, len(lines))
	sum := decimal.Zero
	for _, l := range lines {
		if l.Quantity <= 0 || l.ProductID <= 0 {
			return domain.ErrInvalidInput
		}
		if seen[l.ProductID] {
			return domain.ErrInvalidInput
		}
		seen[l.ProductID] = true

		expected := l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
		if !l.Total.Equal(expected) {
			return domain.ErrInvalidInput
		}
		sum = sum.Add(l.Total)
	}
	if !totalAmount.Equal(sum) {
		return domain.ErrInvalidInput
	}
	return nil
}
