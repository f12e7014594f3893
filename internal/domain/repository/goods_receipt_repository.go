package repository

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// GoodsReceiptRepository define el puerto de persistencia para entradas de mercadería.
type GoodsReceiptRepository interface {
	// Create inserta cabecera y líneas; asigna receipt.ID.
	Create(receipt *entity.GoodsReceipt) error
	GetByID(id int64) (*entity.GoodsReceipt, error)  // con líneas; nil si no existe
	GetByCode(code string) (*entity.GoodsReceipt, error)
	// Cancel persiste el estado anulado y la auditoría de anulación.
	Cancel(receipt *entity.GoodsReceipt) error
	ListByStore(storeID int64, limit, offset int) ([]*entity.GoodsReceipt, error)
}
