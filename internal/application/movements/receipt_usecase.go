package movements

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/domain"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	domainmov "github.com/serodominguez/waresoft-api/internal/domain/movements"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

// GoodsReceiptUseCase registra y anula entradas de mercadería de forma
// transaccional, con bloqueo de fila sobre el stock (SELECT FOR UPDATE).
// Los ajustes de kardex registran historial sin tocar el stock vivo.
type GoodsReceiptUseCase struct {
	txRunner    TxRunner
	receiptRepo repository.GoodsReceiptRepository // lecturas fuera de tx
	validate    *validator.Validate
}

// NewGoodsReceiptUseCase construye el caso de uso.
func NewGoodsReceiptUseCase(txRunner TxRunner, receiptRepo repository.GoodsReceiptRepository) *GoodsReceiptUseCase {
	return &GoodsReceiptUseCase{
		txRunner:    txRunner,
		receiptRepo: receiptRepo,
		validate:    validator.New(),
	}
}

// Register valida el request, genera el código ENT- y persiste cabecera+líneas
// en una transacción. Salvo que el tipo sea ajuste de kardex, suma la cantidad
// de cada línea al stock disponible de la sucursal, creando la fila de stock
// si no existe. Cualquier fallo revierte la transacción completa.
func (uc *GoodsReceiptUseCase) Register(ctx context.Context, userID int64, in dto.RegisterReceiptRequest) (*dto.ReceiptResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLines(in.Lines, in.TotalAmount); err != nil {
		return nil, err
	}

	now := time.Now()
	receipt := &entity.GoodsReceipt{
		ReceiptType:    in.ReceiptType,
		DocumentDate:   in.DocumentDate,
		DocumentType:   in.DocumentType,
		DocumentNumber: in.DocumentNumber,
		TotalAmount:    in.TotalAmount,
		SupplierID:     in.SupplierID,
		StoreID:        in.StoreID,
		Status:         entity.ReceiptActive,
		CreatedBy:      userID,
		CreatedAt:      now,
	}
	for _, l := range in.Lines {
		receipt.Details = append(receipt.Details, entity.GoodsReceiptDetail{
			Item:      l.Item,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitCost:  l.UnitPrice,
			TotalCost: l.Total,
		})
	}

	err := uc.txRunner.RunReceipt(ctx, func(
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockRepository,
		receiptRepo repository.GoodsReceiptRepository,
	) error {
		code, err := generateCode(seqRepo, entity.SequenceGoodsReceipt, entity.PrefixGoodsReceipt)
		if err != nil {
			return err
		}
		receipt.Code = code
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		// Ajuste de kardex: solo historial, el stock vivo no se toca
		if domainmov.IsKardexAdjustment(receipt.ReceiptType) {
			return nil
		}
		for _, d := range receipt.Details {
			stock, err := stockRepo.GetForUpdate(receipt.StoreID, d.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				stock = &entity.Stock{
					StoreID:   receipt.StoreID,
					ProductID: d.ProductID,
					Available: d.Quantity,
					InTransit: 0,
					UpdatedAt: now,
				}
				if err := stockRepo.Create(stock); err != nil {
					return err
				}
				continue
			}
			stock.Available += d.Quantity
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
	return toReceiptResponse(receipt, true), nil
}

// Cancel anula una entrada: marca estado anulado con auditoría de anulación y,
// salvo ajuste de kardex, revierte el incremento restando cada línea del stock
// disponible. Una fila de stock ausente aborta la transacción completa.
// La anulación es terminal: una entrada anulada no admite más transiciones.
func (uc *GoodsReceiptUseCase) Cancel(ctx context.Context, userID, id int64) error {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return domain.ErrNotFound
	}
	if receipt.Status == entity.ReceiptCancelled {
		return domain.ErrConflict
	}

	now := time.Now()
	receipt.Status = entity.ReceiptCancelled
	receipt.CancelledBy = &userID
	receipt.CancelledAt = &now

	return uc.txRunner.RunReceipt(ctx, func(
		_ repository.SequenceRepository,
		stockRepo repository.StockRepository,
		receiptRepo repository.GoodsReceiptRepository,
	) error {
		if err := receiptRepo.Cancel(receipt); err != nil {
			return err
		}
		if domainmov.IsKardexAdjustment(receipt.ReceiptType) {
			return nil
		}
		for _, d := range receipt.Details {
			stock, err := stockRepo.GetForUpdate(receipt.StoreID, d.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				return fmt.Errorf("%w para el producto %d", domain.ErrStockNotFound, d.ProductID)
			}
			stock.Available -= d.Quantity
			stock.UpdatedAt = now
			if err := stockRepo.AdjustQuantities(stock); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID obtiene una entrada con sus líneas.
func (uc *GoodsReceiptUseCase) GetByID(id int64) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, nil
	}
	return toReceiptResponse(receipt, true), nil
}

// List lista entradas de una sucursal con paginación.
func (uc *GoodsReceiptUseCase) List(storeID int64, limit, offset int) (*dto.ReceiptListResponse, error) {
	list, err := uc.receiptRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toReceiptResponse(r, false))
	}
	return &dto.ReceiptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func receiptStatusLabel(s entity.ReceiptStatus) string {
	if s == entity.ReceiptActive {
		return "Activo"
	}
	return "Anulado"
}

func toReceiptResponse(r *entity.GoodsReceipt, withLines bool) *dto.ReceiptResponse {
	resp := &dto.ReceiptResponse{
		ID:             r.ID,
		Code:           r.Code,
		ReceiptType:    r.ReceiptType,
		DocumentDate:   r.DocumentDate,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		TotalAmount:    r.TotalAmount,
		SupplierID:     r.SupplierID,
		StoreID:        r.StoreID,
		Status:         receiptStatusLabel(r.Status),
		CreatedAt:      r.CreatedAt,
	}
	if withLines {
		for _, d := range r.Details {
			resp.Lines = append(resp.Lines, dto.MovementLineResponse{
				Item:      d.Item,
				ProductID: d.ProductID,
				Quantity:  d.Quantity,
				UnitPrice: d.UnitCost,
				Total:     d.TotalCost,
			})
		}
	}
	return resp
}
