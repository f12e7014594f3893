package movements

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/domain"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

// GoodsIssueUseCase registra y anula salidas de mercadería de forma
// transaccional. A diferencia de las entradas, toda salida muta el stock sin
// importar el tipo, y exige que la fila de stock exista.
type GoodsIssueUseCase struct {
	txRunner  TxRunner
	issueRepo repository.GoodsIssueRepository // lecturas fuera de tx
	validate  *validator.Validate
}

// NewGoodsIssueUseCase construye el caso de uso.
func NewGoodsIssueUseCase(txRunner TxRunner, issueRepo repository.GoodsIssueRepository) *GoodsIssueUseCase {
	return &GoodsIssueUseCase{
		txRunner:  txRunner,
		issueRepo: issueRepo,
		validate:  validator.New(),
	}
}

// Register valida el request, genera el código SAL- y persiste cabecera+líneas
// en una transacción, restando cada línea del stock disponible de la sucursal.
// Una fila de stock ausente o insuficiente aborta la transacción completa.
func (uc *GoodsIssueUseCase) Register(ctx context.Context, userID int64, in dto.RegisterIssueRequest) (*dto.IssueResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLines(in.Lines, in.TotalAmount); err != nil {
		return nil, err
	}

	now := time.Now()
	issue := &entity.GoodsIssue{
		IssueType:   in.IssueType,
		TotalAmount: in.TotalAmount,
		Annotations: in.Annotations,
		StoreID:     in.StoreID,
		Status:      entity.IssueActive,
		CreatedBy:   userID,
		CreatedAt:   now,
	}
	for _, l := range in.Lines {
		issue.Details = append(issue.Details, entity.GoodsIssueDetail{
			Item:       l.Item,
			ProductID:  l.ProductID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.Total,
		})
	}

	err := uc.txRunner.RunIssue(ctx, func(
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockRepository,
		issueRepo repository.GoodsIssueRepository,
	) error {
		code, err := generateCode(seqRepo, entity.SequenceGoodsIssue, entity.PrefixGoodsIssue)
		if err != nil {
			return err
		}
		issue.Code = code
		if err := issueRepo.Create(issue); err != nil {
			return err
		}
		for _, d := range issue.Details {
			stock, err := stockRepo.GetForUpdate(issue.StoreID, d.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				return fmt.Errorf("%w para el producto %d", domain.ErrStockNotFound, d.ProductID)
			}
			if stock.Available < d.Quantity {
				return fmt.Errorf("%w para el producto %d", domain.ErrInsufficientStock, d.ProductID)
			}
			stock.Available -= d.Quantity
			stock.UpdatedAt = now
			if err := stockRepo.AdjustQuantities(stock); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toIssueResponse(issue, true), nil
}

// Cancel anula una salida: marca estado anulado con auditoría y devuelve la
// cantidad de cada línea al stock disponible. La reversión corre siempre,
// sin importar el tipo de salida. Anulación terminal.
func (uc *GoodsIssueUseCase) Cancel(ctx context.Context, userID, id int64) error {
	issue, err := uc.issueRepo.GetByID(id)
	if err != nil {
		return err
	}
	if issue == nil {
		return domain.ErrNotFound
	}
	if issue.Status == entity.IssueCancelled {
		return domain.ErrConflict
	}

	now := time.Now()
	issue.Status = entity.IssueCancelled
	issue.CancelledBy = &userID
	issue.CancelledAt = &now

	return uc.txRunner.RunIssue(ctx, func(
		_ repository.SequenceRepository,
		stockRepo repository.StockRepository,
		issueRepo repository.GoodsIssueRepository,
	) error {
		if err := issueRepo.Cancel(issue); err != nil {
			return err
		}
		for _, d := range issue.Details {
			stock, err := stockRepo.GetForUpdate(issue.StoreID, d.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				return fmt.Errorf("%w para el producto %d", domain.ErrStockNotFound, d.ProductID)
			}
			stock.Available += d.Quantity
			stock.UpdatedAt = now
			if err := stockRepo.AdjustQuantities(stock); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID obtiene una salida con sus líneas.
func (uc *GoodsIssueUseCase) GetByID(id int64) (*dto.IssueResponse, error) {
	issue, err := uc.issueRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, nil
	}
	return toIssueResponse(issue, true), nil
}

// List lista salidas de una sucursal con paginación.
func (uc *GoodsIssueUseCase) List(storeID int64, limit, offset int) (*dto.IssueListResponse, error) {
	list, err := uc.issueRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IssueResponse, 0, len(list))
	for _, i := range list {
		items = append(items, *toIssueResponse(i, false))
	}
	return &dto.IssueListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func issueStatusLabel(s entity.IssueStatus) string {
	if s == entity.IssueActive {
		return "Activo"
	}
	return "Anulado"
}

func toIssueResponse(i *entity.GoodsIssue, withLines bool) *dto.IssueResponse {
	resp := &dto.IssueResponse{
		ID:          i.ID,
		Code:        i.Code,
		IssueType:   i.IssueType,
		TotalAmount: i.TotalAmount,
		Annotations: i.Annotations,
		StoreID:     i.StoreID,
		Status:      issueStatusLabel(i.Status),
		CreatedAt:   i.CreatedAt,
	}
	if withLines {
		for _, d := range i.Details {
			resp.Lines = append(resp.Lines, dto.MovementLineResponse{
				Item:      d.Item,
				ProductID: d.ProductID,
				Quantity:  d.Quantity,
				UnitPrice: d.UnitPrice,
				Total:     d.TotalPrice,
			})
		}
	}
	return resp
}
