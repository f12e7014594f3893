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

// TransferUseCase maneja el traslado de mercadería entre sucursales con el
// handshake de tres fases: enviar (descuenta disponible del origen y lo pone
// en tránsito), recibir (suma disponible en destino y libera el tránsito) o
// anular antes de recibir (revierte exactamente el envío).
type TransferUseCase struct {
	txRunner     TxRunner
	transferRepo repository.TransferRepository // lecturas fuera de tx
	userRepo     repository.UserRepository     // nombres remitente/receptor
	validate     *validator.Validate
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner, transferRepo repository.TransferRepository, userRepo repository.UserRepository) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		transferRepo: transferRepo,
		userRepo:     userRepo,
		validate:     validator.New(),
	}
}

// Send valida el request, genera el código TRAS- y persiste cabecera+líneas en
// una transacción. Por cada línea, en el origen: disponible -= cantidad y en
// tránsito += cantidad, con bloqueo de fila. Fila ausente o stock insuficiente
// aborta la transacción.
func (uc *TransferUseCase) Send(ctx context.Context, userID int64, in dto.SendTransferRequest) (*dto.TransferResponse, error) {
	if err := uc.validate.Struct(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.StoreOriginID == in.StoreDestinationID {
		return nil, domain.ErrInvalidInput
	}
	if err := validateLines(in.Lines, in.TotalAmount); err != nil {
		return nil, err
	}

	now := time.Now()
	transfer := &entity.Transfer{
		SendDate:           now,
		TotalAmount:        in.TotalAmount,
		Annotations:        in.Annotations,
		StoreOriginID:      in.StoreOriginID,
		StoreDestinationID: in.StoreDestinationID,
		Status:             entity.TransferSent,
		SentBy:             userID,
		SentAt:             now,
	}
	for _, l := range in.Lines {
		transfer.Details = append(transfer.Details, entity.TransferDetail{
			Item:       l.Item,
			ProductID:  l.ProductID,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
			TotalPrice: l.Total,
		})
	}

	err := uc.txRunner.RunTransfer(ctx, func(
		seqRepo repository.SequenceRepository,
		stockRepo repository.StockRepository,
		transferRepo repository.TransferRepository,
	) error {
		code, err := generateCode(seqRepo, entity.SequenceTransfer, entity.PrefixTransfer)
		if err != nil {
			return err
		}
		transfer.Code = code
		if err := transferRepo.Create(transfer); err != nil {
			return err
		}
		for _, d := range transfer.Details {
			stock, err := stockRepo.GetForUpdate(transfer.StoreOriginID, d.ProductID)
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
			stock.InTransit += d.Quantity
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
	return uc.toTransferResponse(transfer, in.StoreOriginID, true), nil
}

// Receive completa un traslado enviado: fija fecha de recepción y auditoría,
// suma cada línea al disponible del destino (creando la fila de stock si no
// existe) y libera el tránsito en el origen. La creación en destino ocurre
// antes de verificar el origen: si el origen no tiene fila, el rollback
// deshace también el alta en destino (atomicidad real, no best-effort).
func (uc *TransferUseCase) Receive(ctx context.Context, userID, id int64) error {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return err
	}
	if transfer == nil {
		return domain.ErrNotFound
	}
	if transfer.Status != entity.TransferSent {
		return domain.ErrConflict
	}

	now := time.Now()
	transfer.Status = entity.TransferReceived
	transfer.ReceiveDate = &now
	transfer.ReceivedBy = &userID
	transfer.ReceivedAt = &now

	return uc.txRunner.RunTransfer(ctx, func(
		_ repository.SequenceRepository,
		stockRepo repository.StockRepository,
		transferRepo repository.TransferRepository,
	) error {
		if err := transferRepo.Receive(transfer); err != nil {
			return err
		}
		for _, d := range transfer.Details {
			dest, err := stockRepo.GetForUpdate(transfer.StoreDestinationID, d.ProductID)
			if err != nil {
				return err
			}
			if dest == nil {
				dest = &entity.Stock{
					StoreID:   transfer.StoreDestinationID,
					ProductID: d.ProductID,
					Available: d.Quantity,
					InTransit: 0,
					UpdatedAt: now,
				}
				if err := stockRepo.Create(dest); err != nil {
					return err
				}
			} else {
				dest.Available += d.Quantity
				dest.UpdatedAt = now
				if err := stockRepo.AdjustQuantities(dest); err != nil {
					return err
				}
			}

			origin, err := stockRepo.GetForUpdate(transfer.StoreOriginID, d.ProductID)
			if err != nil {
				return err
			}
			if origin == nil {
				return fmt.Errorf("%w para el producto %d", domain.ErrStockNotFound, d.ProductID)
			}
			origin.InTransit -= d.Quantity
			origin.UpdatedAt = now
			if err := stockRepo.AdjustQuantities(origin); err != nil {
				return err
			}
		}
		return nil
	})
}

// Cancel anula un traslado aún no recibido revirtiendo el envío en el origen:
// disponible += cantidad, en tránsito -= cantidad. Send y Cancel son inversos
// exactos. Un traslado recibido o ya anulado no admite anulación.
func (uc *TransferUseCase) Cancel(ctx context.Context, userID, id int64) error {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return err
	}
	if transfer == nil {
		return domain.ErrNotFound
	}
	if transfer.Status != entity.TransferSent {
		return domain.ErrConflict
	}

	now := time.Now()
	transfer.Status = entity.TransferCancelled
	transfer.CancelledBy = &userID
	transfer.CancelledAt = &now

	return uc.txRunner.RunTransfer(ctx, func(
		_ repository.SequenceRepository,
		stockRepo repository.StockRepository,
		transferRepo repository.TransferRepository,
	) error {
		if err := transferRepo.Cancel(transfer); err != nil {
			return err
		}
		for _, d := range transfer.Details {
			stock, err := stockRepo.GetForUpdate(transfer.StoreOriginID, d.ProductID)
			if err != nil {
				return err
			}
			if stock == nil {
				return fmt.Errorf("%w para el producto %d", domain.ErrStockNotFound, d.ProductID)
			}
			stock.Available += d.Quantity
			stock.InTransit -= d.Quantity
			stock.UpdatedAt = now
			if err := stockRepo.AdjustQuantities(stock); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID obtiene un traslado con sus líneas. El estado se deriva según la
// sucursal que consulta (un envío visto por el destino aparece pendiente).
func (uc *TransferUseCase) GetByID(id, viewingStoreID int64) (*dto.TransferResponse, error) {
	transfer, err := uc.transferRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if transfer == nil {
		return nil, nil
	}
	return uc.toTransferResponse(transfer, viewingStoreID, true), nil
}

// List lista traslados donde la sucursal es origen o destino, con estado de
// presentación recalculado por fila y nombres de remitente/receptor resueltos.
func (uc *TransferUseCase) List(viewingStoreID int64, limit, offset int) (*dto.TransferListResponse, error) {
	list, err := uc.transferRepo.ListByStore(viewingStoreID, limit, offset)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(list)*2)
	for _, t := range list {
		ids = append(ids, t.SentBy)
		if t.ReceivedBy != nil {
			ids = append(ids, *t.ReceivedBy)
		}
	}
	names, err := uc.userRepo.NamesByIDs(ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.TransferResponse, 0, len(list))
	for _, t := range list {
		resp := uc.toTransferResponse(t, viewingStoreID, false)
		resp.SentByName = names[t.SentBy]
		if t.ReceivedBy != nil {
			resp.ReceivedByName = names[*t.ReceivedBy]
		}
		items = append(items, *resp)
	}
	return &dto.TransferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *TransferUseCase) toTransferResponse(t *entity.Transfer, viewingStoreID int64, withLines bool) *dto.TransferResponse {
	display := domainmov.DisplayTransferStatus(t.Status, viewingStoreID, t.StoreDestinationID)
	resp := &dto.TransferResponse{
		ID:                 t.ID,
		Code:               t.Code,
		SendDate:           t.SendDate,
		ReceiveDate:        t.ReceiveDate,
		TotalAmount:        t.TotalAmount,
		Annotations:        t.Annotations,
		StoreOriginID:      t.StoreOriginID,
		StoreDestinationID: t.StoreDestinationID,
		Status:             display.Label(),
	}
	if withLines {
		for _, d := range t.Details {
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
