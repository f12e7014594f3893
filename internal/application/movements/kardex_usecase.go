package movements

import (
	"github.com/serodominguez/waresoft-api/internal/application/dto"
	domainmov "github.com/serodominguez/waresoft-api/internal/domain/movements"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

// KardexUseCase reconstruye el kardex de un producto en una sucursal a partir
// de las líneas de documentos no anulados y lo compara contra el ledger vivo.
// La comparación (StockDifference) es solo diagnóstico: nunca corrige el stock.
type KardexUseCase struct {
	kardexRepo repository.KardexRepository
	stockRepo  repository.StockRepository
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(kardexRepo repository.KardexRepository, stockRepo repository.StockRepository) *KardexUseCase {
	return &KardexUseCase{kardexRepo: kardexRepo, stockRepo: stockRepo}
}

// GetKardex lista los movimientos ordenados con saldo corrido y la deriva
// contra el stock disponible vivo (0 si el producto no tiene fila de stock).
func (uc *KardexUseCase) GetKardex(storeID, productID int64) (*dto.KardexResponse, error) {
	movs, err := uc.kardexRepo.ListMovements(storeID, productID)
	if err != nil {
		return nil, err
	}

	var live int64
	stock, err := uc.stockRepo.Get(storeID, productID)
	if err != nil {
		return nil, err
	}
	if stock != nil {
		live = stock.Available
	}

	k := domainmov.BuildKardex(movs, live)

	resp := &dto.KardexResponse{
		StoreID:         storeID,
		ProductID:       productID,
		Movements:       make([]dto.KardexMovementDTO, 0, len(k.Movements)),
		FinalBalance:    k.FinalBalance,
		LiveAvailable:   k.LiveAvailable,
		StockDifference: k.StockDifference,
	}
	for _, m := range k.Movements {
		resp.Movements = append(resp.Movements, dto.KardexMovementDTO{
			DocumentCode: m.DocumentCode,
			DocumentDate: m.DocumentDate,
			MovementType: m.MovementType,
			DocumentInfo: m.DocumentInfo,
			Quantity:     m.Quantity,
			UnitPrice:    m.UnitPrice,
			Balance:      m.Balance,
		})
	}
	return resp, nil
}
