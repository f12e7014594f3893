package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/serodominguez/waresoft-api/internal/domain"
	domainmov "github.com/serodominguez/waresoft-api/internal/domain/movements"
	"github.com/serodominguez/waresoft-api/internal/domain/repository"
)

// KardexExportUseCase arma el kardex de un producto y lo entrega como archivo
// descargable (Excel o PDF) a través de los generadores inyectados.
type KardexExportUseCase struct {
	kardexRepo  repository.KardexRepository
	stockRepo   repository.StockRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	excel       ExcelGenerator
	pdf         PDFGenerator
}

// NewKardexExportUseCase construye el caso de uso.
func NewKardexExportUseCase(
	kardexRepo repository.KardexRepository,
	stockRepo repository.StockRepository,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	excel ExcelGenerator,
	pdf PDFGenerator,
) *KardexExportUseCase {
	return &KardexExportUseCase{
		kardexRepo:  kardexRepo,
		stockRepo:   stockRepo,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		excel:       excel,
		pdf:         pdf,
	}
}

// ExportExcel genera el kardex como libro Excel. Devuelve bytes y nombre de archivo.
func (uc *KardexExportUseCase) ExportExcel(ctx context.Context, storeID, productID int64) ([]byte, string, error) {
	report, err := uc.buildReport(storeID, productID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.excel.GenerateKardexExcel(ctx, report)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("kardex_%s_%s.xlsx", report.Store.Code, report.Product.Code)
	return data, name, nil
}

// ExportPDF genera el kardex como documento PDF. Devuelve bytes y nombre de archivo.
func (uc *KardexExportUseCase) ExportPDF(ctx context.Context, storeID, productID int64) ([]byte, string, error) {
	report, err := uc.buildReport(storeID, productID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.pdf.GenerateKardexPDF(ctx, report)
	if err != nil {
		return nil, "", err
	}
	name := fmt.Sprintf("kardex_%s_%s.pdf", report.Store.Code, report.Product.Code)
	return data, name, nil
}

func (uc *KardexExportUseCase) buildReport(storeID, productID int64) (*KardexReport, error) {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("%w: sucursal %d", domain.ErrNotFound, storeID)
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, productID)
	}

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

	return &KardexReport{
		Store:       store,
		Product:     product,
		Kardex:      domainmov.BuildKardex(movs, live),
		GeneratedAt: time.Now(),
	}, nil
}
