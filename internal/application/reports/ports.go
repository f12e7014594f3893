package reports

import (
	"context"
	"time"

	"github.com/serodominguez/waresoft-api/internal/domain/entity"
	domainmov "github.com/serodominguez/waresoft-api/internal/domain/movements"
)

// KardexReport datos ya resueltos para renderizar un kardex exportable.
type KardexReport struct {
	Store       *entity.Store
	Product     *entity.Product
	Kardex      domainmov.Kardex
	GeneratedAt time.Time
}

// ExcelGenerator puerto para renderizar el kardex como libro Excel.
type ExcelGenerator interface {
	GenerateKardexExcel(ctx context.Context, report *KardexReport) ([]byte, error)
}

// PDFGenerator puerto para renderizar el kardex como documento PDF.
type PDFGenerator interface {
	GenerateKardexPDF(ctx context.Context, report *KardexReport) ([]byte, error)
}
