package movements

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// DisplayTransferStatus calcula el estado de presentación de un traslado según
// la sucursal que consulta (servicio de dominio, función pura).
// Un traslado enviado (1) se muestra como "pendiente de recepción" (3) cuando
// quien consulta es la sucursal destino; en cualquier otro caso se muestra el
// estado persistido. El 3 nunca se persiste: se recalcula en cada lectura.
func DisplayTransferStatus(persisted entity.TransferStatus, viewingStoreID, destinationStoreID int64) entity.TransferStatus {
	if persisted == entity.TransferSent && viewingStoreID == destinationStoreID {
		return entity.TransferPending
	}
	return persisted
}
