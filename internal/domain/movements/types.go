package movements

import "golang.org/x/text/cases"

var fold = cases.Fold()

// IsKardexAdjustment indica si un tipo de entrada corresponde a un ajuste de
// kardex, que registra historial sin tocar el stock vivo. La comparación es
// case-insensitive (case folding Unicode): el tipo llega escrito de forma
// distinta según el flujo ("Ajuste de kardex" al registrar, "ajuste de kardex"
// al anular) y ambos deben comportarse igual.
func IsKardexAdjustment(receiptType string) bool {
	return fold.String(receiptType) == fold.String("Ajuste de kardex")
}
