package movements_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
	"github.com/serodominguez/waresoft-api/internal/domain"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
)

const (
	storeA = int64(1)
	storeB = int64(2)
)

func transferRequest(origin, destination int64, lines ...dto.MovementLineRequest) dto.SendTransferRequest {
	return dto.SendTransferRequest{
		StoreOriginID:      origin,
		StoreDestinationID: destination,
		TotalAmount:        sumTotals(lines),
		Lines:              lines,
	}
}

func newTransferUC(db *memDB) *movements.TransferUseCase {
	return movements.NewTransferUseCase(&fakeTxRunner{db}, &fakeTransferRepo{db}, &fakeUserRepo{db})
}

func TestTransferSend_MueveDisponibleATransito(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)
	assert.Equal(t, "TRAS-000001", resp.Code)
	assert.Equal(t, "Enviado", resp.Status, "visto por el origen")

	origin := db.stockAt(storeA, 7)
	assert.Equal(t, int64(30), origin.Available)
	assert.Equal(t, int64(20), origin.InTransit)
	assert.Nil(t, db.stockAt(storeB, 7), "el destino no se toca hasta recibir")
}

func TestTransferSend_MismaSucursalInvalida(t *testing.T) {
	db := newMemDB()
	uc := newTransferUC(db)

	_, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeA, line(1, 7, 20, 100)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTransferSend_SinFilaDeStockHaceRollback(t *testing.T) {
	db := newMemDB()
	uc := newTransferUC(db)

	_, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
	assert.Empty(t, db.transfers)
}

func TestTransferSend_StockInsuficiente(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 10, 0)
	uc := newTransferUC(db)

	_, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(10), db.stockAt(storeA, 7).Available)
}

func TestTransferReceive_CompletaElTraslado(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	db.seedStock(storeB, 7, 5, 0)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)
	require.NoError(t, uc.Receive(context.Background(), 2, resp.ID))

	origin := db.stockAt(storeA, 7)
	dest := db.stockAt(storeB, 7)
	assert.Equal(t, int64(30), origin.Available)
	assert.Equal(t, int64(0), origin.InTransit, "el tránsito se libera")
	assert.Equal(t, int64(25), dest.Available)
	assert.Equal(t, int64(0), dest.InTransit)

	// Conservación: el disponible total entre ambas sucursales se mantiene
	assert.Equal(t, int64(55), origin.Available+dest.Available)

	stored := db.transfers[resp.ID]
	assert.Equal(t, entity.TransferReceived, stored.Status)
	require.NotNil(t, stored.ReceiveDate)
	require.NotNil(t, stored.ReceivedBy)
	assert.Equal(t, int64(2), *stored.ReceivedBy)
}

func TestTransferReceive_CreaFilaEnDestinoSiNoExiste(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)
	require.NoError(t, uc.Receive(context.Background(), 2, resp.ID))

	dest := db.stockAt(storeB, 7)
	require.NotNil(t, dest)
	assert.Equal(t, int64(20), dest.Available)
	assert.Equal(t, int64(0), dest.InTransit)
}

func TestTransferReceive_OrigenSinFilaRevierteAltaEnDestino(t *testing.T) {
	// El alta en destino ocurre antes de verificar el origen: si el origen no
	// tiene fila, el rollback debe deshacer también esa alta.
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)

	delete(db.stocks, stockKey{storeA, 7})

	err = uc.Receive(context.Background(), 2, resp.ID)
	assert.ErrorIs(t, err, domain.ErrStockNotFound)

	assert.Nil(t, db.stockAt(storeB, 7), "el alta en destino se revierte con el rollback")
	assert.Equal(t, entity.TransferSent, db.transfers[resp.ID].Status)
}

func TestTransferCancel_EsInversoExactoDelEnvio(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 3)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(context.Background(), 1, resp.ID))

	origin := db.stockAt(storeA, 7)
	assert.Equal(t, int64(50), origin.Available, "vuelve al estado previo al envío")
	assert.Equal(t, int64(3), origin.InTransit)
	assert.Equal(t, entity.TransferCancelled, db.transfers[resp.ID].Status)
}

func TestTransferCancel_SoloAntesDeRecibir(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)
	require.NoError(t, uc.Receive(context.Background(), 2, resp.ID))

	assert.ErrorIs(t, uc.Cancel(context.Background(), 1, resp.ID), domain.ErrConflict)
}

func TestTransferReceive_NoRepetible(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)
	require.NoError(t, uc.Receive(context.Background(), 2, resp.ID))

	assert.ErrorIs(t, uc.Receive(context.Background(), 2, resp.ID), domain.ErrConflict)
}

func TestTransferGetByID_EstadoDerivadoSegunSucursal(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	uc := newTransferUC(db)

	resp, err := uc.Send(context.Background(), 1, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)

	fromOrigin, err := uc.GetByID(resp.ID, storeA)
	require.NoError(t, err)
	assert.Equal(t, "Enviado", fromOrigin.Status)

	fromDestination, err := uc.GetByID(resp.ID, storeB)
	require.NoError(t, err)
	assert.Equal(t, "Pendiente de recepción", fromDestination.Status,
		"el destino ve el envío como pendiente mientras no reciba")

	// El estado persistido sigue siendo Enviado: el 3 nunca se guarda
	assert.Equal(t, entity.TransferSent, db.transfers[resp.ID].Status)
}

func TestTransferList_ResuelveNombresDeUsuarios(t *testing.T) {
	db := newMemDB()
	db.seedStock(storeA, 7, 50, 0)
	users := &fakeUserRepo{db}
	sender := &entity.User{StoreID: storeA, UserName: "mperez", Names: "María", LastNames: "Pérez"}
	receiver := &entity.User{StoreID: storeB, UserName: "jrojas", Names: "Juan", LastNames: "Rojas"}
	require.NoError(t, users.Create(sender))
	require.NoError(t, users.Create(receiver))

	uc := newTransferUC(db)
	resp, err := uc.Send(context.Background(), sender.ID, transferRequest(storeA, storeB, line(1, 7, 20, 100)))
	require.NoError(t, err)
	require.NoError(t, uc.Receive(context.Background(), receiver.ID, resp.ID))

	list, err := uc.List(storeB, 20, 0)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "María Pérez", list.Items[0].SentByName)
	assert.Equal(t, "Juan Rojas", list.Items[0].ReceivedByName)
	assert.Equal(t, "Recibido", list.Items[0].Status)
}
