package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/serodominguez/waresoft-api/internal/application/auth"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
	"github.com/serodominguez/waresoft-api/internal/application/reports"
	"github.com/serodominguez/waresoft-api/internal/application/usecase"
	"github.com/serodominguez/waresoft-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	StoreUC      *usecase.StoreUseCase
	ProductUC    *usecase.ProductUseCase
	SupplierUC   *usecase.SupplierUseCase
	CustomerUC   *usecase.CustomerUseCase
	ReceiptUC    *movements.GoodsReceiptUseCase
	IssueUC      *movements.GoodsIssueUseCase
	TransferUC   *movements.TransferUseCase
	StockUC      *movements.StockUseCase
	KardexUC     *movements.KardexUseCase
	KardexExport *reports.KardexExportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogos (la gestión de sucursales es solo para administradores)
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	adminOnly := RequireRole(entity.RoleAdministrador)
	stores.Post("/", adminOnly, storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", adminOnly, storeHandler.Update)
	stores.Delete("/:id", adminOnly, storeHandler.Deactivate)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Deactivate)

	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Deactivate)

	// Entradas de mercadería (anular requiere rol de almacén)
	warehouseRoles := RequireRole(entity.RoleAdministrador, entity.RoleAlmacenero)
	receipts := protected.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	receipts.Post("/", receiptHandler.Register)
	receipts.Get("/", receiptHandler.List)
	receipts.Get("/:id", receiptHandler.GetByID)
	receipts.Put("/:id/cancel", warehouseRoles, receiptHandler.Cancel)

	// Salidas de mercadería
	issues := protected.Group("/issues")
	issueHandler := NewIssueHandler(deps.IssueUC)
	issues.Post("/", issueHandler.Register)
	issues.Get("/", issueHandler.List)
	issues.Get("/:id", issueHandler.GetByID)
	issues.Put("/:id/cancel", warehouseRoles, issueHandler.Cancel)

	// Traslados entre sucursales
	transfers := protected.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transfers.Post("/", transferHandler.Send)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Put("/:id/receive", transferHandler.Receive)
	transfers.Put("/:id/cancel", warehouseRoles, transferHandler.Cancel)

	// Inventario
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/:product_id", stockHandler.Get)
	stock.Put("/price", stockHandler.SetPrice)

	// Kardex
	kardex := protected.Group("/kardex")
	kardexHandler := NewKardexHandler(deps.KardexUC, deps.KardexExport)
	kardex.Get("/", kardexHandler.Get)
	kardex.Get("/export/excel", kardexHandler.ExportExcel)
	kardex.Get("/export/pdf", kardexHandler.ExportPDF)
}
