package movements_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/movements"
)

func kardexMov(code string, day int, qty int64) entity.KardexMovement {
	return entity.KardexMovement{
		DocumentCode: code,
		DocumentDate: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Quantity:     qty,
		UnitPrice:    decimal.NewFromInt(10),
	}
}

func TestBuildKardex_SaldoCorrido(t *testing.T) {
	movs := []entity.KardexMovement{
		// Desordenados a propósito: el servicio debe ordenar por fecha
		kardexMov("SAL-000001", 5, -10),
		kardexMov("ENT-000001", 1, 50),
		kardexMov("TRAS-000001", 9, -20),
		kardexMov("ENT-000002", 7, 5),
	}

	k := movements.BuildKardex(movs, 25)

	require.Len(t, k.Movements, 4)
	assert.Equal(t, "ENT-000001", k.Movements[0].DocumentCode)
	assert.Equal(t, int64(50), k.Movements[0].Balance)
	assert.Equal(t, int64(40), k.Movements[1].Balance)
	assert.Equal(t, int64(45), k.Movements[2].Balance)
	assert.Equal(t, int64(25), k.Movements[3].Balance)

	assert.Equal(t, int64(25), k.FinalBalance)
	assert.Equal(t, int64(0), k.StockDifference, "sin deriva: ledger == historial")
}

func TestBuildKardex_DetectaDeriva(t *testing.T) {
	movs := []entity.KardexMovement{
		kardexMov("ENT-000001", 1, 30),
		kardexMov("SAL-000001", 2, -10),
	}

	// El ledger vivo dice 23 pero el historial reconstruye 20
	k := movements.BuildKardex(movs, 23)

	assert.Equal(t, int64(20), k.FinalBalance)
	assert.Equal(t, int64(3), k.StockDifference, "la deriva se reporta, no se corrige")
}

func TestBuildKardex_MismaFechaDesempataPorCodigo(t *testing.T) {
	movs := []entity.KardexMovement{
		kardexMov("ENT-000002", 1, 5),
		kardexMov("ENT-000001", 1, 50),
	}

	k := movements.BuildKardex(movs, 55)

	assert.Equal(t, "ENT-000001", k.Movements[0].DocumentCode)
	assert.Equal(t, "ENT-000002", k.Movements[1].DocumentCode)
}

func TestBuildKardex_Vacio(t *testing.T) {
	k := movements.BuildKardex(nil, 7)

	assert.Empty(t, k.Movements)
	assert.Equal(t, int64(0), k.FinalBalance)
	assert.Equal(t, int64(7), k.StockDifference)
}
