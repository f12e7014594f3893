package movements

import (
	"context"

	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para cada flujo de
// movimiento: cabecera, líneas, secuencia y mutaciones de stock se confirman
// juntas o se revierten juntas al primer fallo.
type TxRunner interface {
	RunReceipt(ctx context.Context, fn func(
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockRepository,
		receiptRepo repository.GoodsReceiptRepository,
	) error) error

	RunIssue(ctx context.Context, fn func(
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockRepository,
		issueRepo repository.GoodsIssueRepository,
	) error) error

	RunTransfer(ctx context.Context, fn func(
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockRepository,
		transferRepo repository.TransferRepository,
	) error) error
}
