package movements_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/movements"
)

func TestDisplayTransferStatus(t *testing.T) {
	const origin, destination, other = int64(1), int64(2), int64(9)

	tests := []struct {
		name      string
		persisted entity.TransferStatus
		viewing   int64
		want      entity.TransferStatus
	}{
		{"enviado visto por destino -> pendiente", entity.TransferSent, destination, entity.TransferPending},
		{"enviado visto por origen -> enviado", entity.TransferSent, origin, entity.TransferSent},
		{"enviado visto por tercero -> enviado", entity.TransferSent, other, entity.TransferSent},
		{"recibido visto por destino -> recibido", entity.TransferReceived, destination, entity.TransferReceived},
		{"anulado visto por destino -> anulado", entity.TransferCancelled, destination, entity.TransferCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := movements.DisplayTransferStatus(tt.persisted, tt.viewing, destination)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransferStatusLabel(t *testing.T) {
	assert.Equal(t, "Anulado", entity.TransferCancelled.Label())
	assert.Equal(t, "Enviado", entity.TransferSent.Label())
	assert.Equal(t, "Recibido", entity.TransferReceived.Label())
	assert.Equal(t, "Pendiente de recepción", entity.TransferPending.Label())
}

func TestIsKardexAdjustment(t *testing.T) {
	// Ambas variantes de mayúsculas deben comportarse igual
	assert.True(t, movements.IsKardexAdjustment("Ajuste de kardex"))
	assert.True(t, movements.IsKardexAdjustment("ajuste de kardex"))
	assert.True(t, movements.IsKardexAdjustment("AJUSTE DE KARDEX"))

	assert.False(t, movements.IsKardexAdjustment("Adquisición"))
	assert.False(t, movements.IsKardexAdjustment("Ajuste de inventario"))
	assert.False(t, movements.IsKardexAdjustment(""))
}
