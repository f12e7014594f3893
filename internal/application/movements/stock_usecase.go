package movements

import (
	"github.com/go-playground/validator/v10"

	"github.com/serodominguez/waresoft-api/internal/application/dto"
	"github.com/serodominguez/waresoft-api/internal/domain"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

// StockUseCase consultas de inventario y edición de precio. El precio se
// escribe por un camino propio (SetPrice) que no toca cantidades, y los
// movimientos ajustan cantidades sin tocar el precio: campos disjuntos.
type StockUseCase struct {
	stockRepo repository.StockRepository
	validate  *validator.Validate
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, validate: validator.New()}
}

// Get obtiene la fila de stock de un producto en una sucursal (nil si no existe).
func (uc *StockUseCase) Get(storeID, productID int64) (*dto.StockResponse, error) {
	stock, err := uc.stockRepo.Get(storeID, productID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, nil
	}
	return toStockResponse(stock), nil
}

// ListByStore lista el inventario de una sucursal con paginación.
func (uc *StockUseCase) ListByStore(storeID int64, limit, offset int) ([]dto.StockResponse, error) {
	list, err := uc.stockRepo.ListByStore(storeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStockResponse(s))
	}
	return items, nil
}

// SetPrice fija el precio unitario de un producto en una sucursal. Requiere
// que la fila de stock exista (el precio vive junto a las cantidades).
func (uc *StockUseCase) SetPrice(in dto.SetPriceRequest) error {
	if err := uc.validate.Struct(in); err != nil {
		return domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	stock, err := uc.stockRepo.Get(in.StoreID, in.ProductID)
	if err != nil {
		return err
	}
	if stock == nil {
		return domain.ErrStockNotFound
	}
	return uc.stockRepo.SetPrice(in.StoreID, in.ProductID, in.UnitPrice)
}

func toStockResponse(s *entity.Stock) *dto.StockResponse {
	return &dto.StockResponse{
		StoreID:   s.StoreID,
		ProductID: s.ProductID,
		Available: s.Available,
		InTransit: s.InTransit,
		UnitPrice: s.UnitPrice,
		UpdatedAt: s.UpdatedAt,
	}
}
