package movements_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
	"github.com/serodominguez/waresoft-api/internal/domain"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
)

func issueRequest(storeID int64, issueType string, lines ...dto.MovementLineRequest) dto.RegisterIssueRequest {
	return dto.RegisterIssueRequest{
		IssueType:   issueType,
		TotalAmount: sumTotals(lines),
		Annotations: "salida de prueba",
		StoreID:     storeID,
		Lines:       lines,
	}
}

func TestIssueRegister_DescuentaStock(t *testing.T) {
	db := newMemDB()
	db.seedStock(1, 7, 50, 0)
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	resp, err := uc.Register(context.Background(), 1, issueRequest(1, entity.IssueTypeConsignment, line(1, 7, 10, 100)))
	require.NoError(t, err)
	assert.Equal(t, "SAL-000001", resp.Code)

	assert.Equal(t, int64(40), db.stockAt(1, 7).Available)
}

func TestIssueRegister_AjusteDeKardexTambienDescuenta(t *testing.T) {
	// A diferencia de las entradas, las salidas mutan stock sin importar el tipo
	db := newMemDB()
	db.seedStock(1, 7, 50, 0)
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	_, err := uc.Register(context.Background(), 1, issueRequest(1, entity.IssueTypeKardexAdjust, line(1, 7, 10, 100)))
	require.NoError(t, err)

	assert.Equal(t, int64(40), db.stockAt(1, 7).Available)
}

func TestIssueRegister_SinFilaDeStockHaceRollback(t *testing.T) {
	db := newMemDB()
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	_, err := uc.Register(context.Background(), 1, issueRequest(1, entity.IssueTypeConsignment, line(1, 7, 10, 100)))
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	// Atomicidad: el rollback no deja cabecera ni líneas; el código generado
	// no debe existir tras revertir
	assert.Empty(t, db.issues)
	ghost, repoErr := (&fakeIssueRepo{db}).GetByCode("SAL-000001")
	require.NoError(t, repoErr)
	assert.Nil(t, ghost)
}

func TestIssueRegister_RollbackParcialRevierteLineasPrevias(t *testing.T) {
	// La primera línea sí tiene stock; la segunda no. Todo debe revertirse.
	db := newMemDB()
	db.seedStock(1, 7, 50, 0)
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	_, err := uc.Register(context.Background(), 1,
		issueRequest(1, entity.IssueTypeConsignment, line(1, 7, 10, 100), line(2, 8, 5, 50)))
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	assert.Equal(t, int64(50), db.stockAt(1, 7).Available, "la línea ya aplicada se revierte")
	assert.Empty(t, db.issues)
}

func TestIssueRegister_StockInsuficiente(t *testing.T) {
	db := newMemDB()
	db.seedStock(1, 7, 5, 0)
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	_, err := uc.Register(context.Background(), 1, issueRequest(1, entity.IssueTypeConsignment, line(1, 7, 10, 100)))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(5), db.stockAt(1, 7).Available)
}

func TestIssueRegister_ValidaTotalCabecera(t *testing.T) {
	db := newMemDB()
	db.seedStock(1, 7, 50, 0)
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	bad := issueRequest(1, entity.IssueTypeConsignment, line(1, 7, 10, 100))
	bad.TotalAmount = bad.TotalAmount.Add(decimal.NewFromInt(1))

	_, err := uc.Register(context.Background(), 1, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIssueCancel_DevuelveStock(t *testing.T) {
	db := newMemDB()
	db.seedStock(1, 7, 50, 0)
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	resp, err := uc.Register(context.Background(), 1, issueRequest(1, entity.IssueTypeConsignment, line(1, 7, 10, 100)))
	require.NoError(t, err)
	require.Equal(t, int64(40), db.stockAt(1, 7).Available)

	require.NoError(t, uc.Cancel(context.Background(), 2, resp.ID))

	assert.Equal(t, int64(50), db.stockAt(1, 7).Available)
	cancelled := db.issues[resp.ID]
	assert.Equal(t, entity.IssueCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledBy)
	assert.Equal(t, int64(2), *cancelled.CancelledBy)
}

func TestIssueCancel_EsTerminal(t *testing.T) {
	db := newMemDB()
	db.seedStock(1, 7, 50, 0)
	uc := movements.NewGoodsIssueUseCase(&fakeTxRunner{db}, &fakeIssueRepo{db})

	resp, err := uc.Register(context.Background(), 1, issueRequest(1, entity.IssueTypeConsignment, line(1, 7, 10, 100)))
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(context.Background(), 1, resp.ID))

	assert.ErrorIs(t, uc.Cancel(context.Background(), 1, resp.ID), domain.ErrConflict)
}
