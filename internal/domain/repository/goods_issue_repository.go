package repository

import "github.com/serodominguez/waresoft-api/internal/domain/entity"

// GoodsIssueRepository define el puerto de persistencia para salidas de mercadería.
type GoodsIssueRepository interface {
	// Create inserta cabecera y líneas; asigna issue.ID.
	Create(issue *entity.GoodsIssue) error
	GetByID(id int64) (*entity.GoodsIssue, error) // con líneas; nil si no existe
	GetByCode(code string) (*entity.GoodsIssue, error)
	Cancel(issue *entity.GoodsIssue) error
	ListByStore(storeID int64, limit, offset int) ([]*entity.GoodsIssue, error)
}
