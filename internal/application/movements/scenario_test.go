package movements_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serodominguez/waresoft-api/internal/application/movements"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
)

// Flujo completo sobre la misma base en memoria: entradas, salidas y un
// traslado entre sucursales, verificando saldos y kardex al final.
func TestFlujoCompleto_EntradasSalidasYTraslado(t *testing.T) {
	db := newMemDB()
	ctx := context.Background()

	receipts := movements.NewGoodsReceiptUseCase(&fakeTxRunner{db}, &fakeReceiptRepo{db})
	issues := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})
	transfers := movements.NewTransferUseCase(&fakeTxRunner{db}, &fakeTransferRepo{db}, &fakeUserRepo{db})
	kardex := movements.NewKardexUseCase(&fakeKardexRepo{db}, &fakeStockRepo{db})

	const productID = int64(7)

	// Entrada inicial de 50 unidades en la sucursal A
	_, err := receipts.Register(ctx, 1, receiptRequest(storeA, entity.ReceiptTypePurchase, line(1, productID, 50, 100)))
	require.NoError(t, err)

	// Salida de 10 unidades
	_, err = issues.Register(ctx, 1, issueRequest(storeA, entity.IssueTypeConsignment, line(1, productID, 10, 100)))
	require.NoError(t, err)

	// Segunda entrada de 5 unidades
	_, err = receipts.Register(ctx, 1, receiptRequest(storeA, entity.ReceiptTypePurchase, line(1, productID, 5, 100)))
	require.NoError(t, err)

	// Traslado de 20 unidades de A hacia B, recibido en destino
	sent, err := transfers.Send(ctx, 1, transferRequest(storeA, storeB, line(1, productID, 20, 100)))
	require.NoError(t, err)
	require.NoError(t, transfers.Receive(ctx, 2, sent.ID))

	// Saldos finales: A = 50 - 10 + 5 - 20 = 25, B = 20
	a := db.stockAt(storeA, productID)
	b := db.stockAt(storeB, productID)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, int64(25), a.Available)
	assert.Equal(t, int64(0), a.InTransit)
	assert.Equal(t, int64(20), b.Available)

	// Conservación entre sucursales: 45 unidades netas en total
	assert.Equal(t, int64(45), a.Available+b.Available)

	// El kardex de cada sucursal reconstruye exactamente su saldo vivo
	kaA, err := kardex.GetKardex(storeA, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(25), kaA.FinalBalance)
	assert.Equal(t, int64(0), kaA.StockDifference)
	assert.Len(t, kaA.Movements, 4)

	kaB, err := kardex.GetKardex(storeB, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(20), kaB.FinalBalance)
	assert.Equal(t, int64(0), kaB.StockDifference)
	assert.Len(t, kaB.Movements, 1)
}

// Un ajuste de kardex registra el documento sin mover stock, por lo que la
// reconstrucción sí lo cuenta y la deriva queda expuesta en StockDifference.
func TestFlujoCompleto_AjusteDeKardexGeneraDeriva(t *testing.T) {
	db := newMemDB()
	ctx := context.Background()

	receipts := movements.NewGoodsReceiptUseCase(&fakeTxRunner{db}, &fakeReceiptRepo{db})
	kardex := movements.NewKardexUseCase(&fakeKardexRepo{db}, &fakeStockRepo{db})

	const productID = int64(7)

	_, err := receipts.Register(ctx, 1, receiptRequest(storeA, entity.ReceiptTypePurchase, line(1, productID, 50, 100)))
	require.NoError(t, err)

	_, err = receipts.Register(ctx, 1, receiptRequest(storeA, entity.ReceiptTypeKardexAdjust, line(1, productID, 10, 100)))
	require.NoError(t, err)

	ka, err := kardex.GetKardex(storeA, productID)
	require.NoError(t, err)
	assert.Equal(t, int64(60), ka.FinalBalance, "el ajuste cuenta en la reconstrucción")
	assert.Equal(t, int64(50), ka.LiveAvailable, "pero el stock vivo no cambió")
	assert.Equal(t, int64(-10), ka.StockDifference)
}

// Anular un documento lo saca de la reconstrucción del kardex.
func TestFlujoCompleto_AnulacionExcluyeDelKardex(t *testing.T) {
	db := newMemDB()
	ctx := context.Background()

	receipts := movements.NewGoodsReceiptUseCase(&fakeTxRunner{db}, &fakeReceiptRepo{db})
	kardex := movements.NewKardexUseCase(&fakeKardexRepo{db}, &fakeStockRepo{db})

	const productID = int64(7)

	_, err := receipts.Register(ctx, 1, receiptRequest(storeA, entity.ReceiptTypePurchase, line(1, productID, 50, 100)))
	require.NoError(t, err)
	second, err := receipts.Register(ctx, 1, receiptRequest(storeA, entity.ReceiptTypePurchase, line(1, productID, 5, 100)))
	require.NoError(t, err)

	require.NoError(t, receipts.Cancel(ctx, 1, second.ID))

	ka, err := kardex.GetKardex(storeA, productID)
	require.NoError(t, err)
	assert.Len(t, ka.Movements, 1)
	assert.Equal(t, int64(50), ka.FinalBalance)
	assert.Equal(t, int64(0), ka.StockDifference, "anulación y reversa se compensan")
}
