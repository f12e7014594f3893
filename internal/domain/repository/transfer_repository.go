package repository

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados entre sucursales.
type TransferRepository interface {
	// Create inserta cabecera y líneas; asigna transfer.ID.
	Create(transfer *entity.Transfer) error
	GetByID(id int64) (*entity.Transfer, error) // con líneas; nil si no existe
	GetByCode(code string) (*entity.Transfer, error)
	// Receive persiste fecha de recepción, estado y auditoría de recepción.
	Receive(transfer *entity.Transfer) error
	Cancel(transfer *entity.Transfer) error
	// ListByStore lista traslados donde la sucursal es origen o destino.
	ListByStore(storeID int64, limit, offset int) ([]*entity.Transfer, error)
}
