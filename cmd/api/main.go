package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/serodominguez/waresoft-api/internal/application/auth"
	"github.com/serodominguez/waresoft-api/internal/application/movements"
	"github.com/serodominguez/waresoft-api/internal/application/reports"
	"github.com/serodominguez/waresoft-api/internal/application/usecase"
	"github.com/serodominguez/waresoft-api/internal/infrastructure/postgres"
	"github.com/serodominguez/waresoft-api/internal/infrastructure/report"
	httpRouter "github.com/serodominguez/waresoft-api/internal/interfaces/http"
	"github.com/serodominguez/waresoft-api/pkg/config"
	"github.com/serodominguez/waresoft-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	storeRepo := postgres.NewStoreRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	kardexRepo := postgres.NewKardexRepository(pool)
	receiptRepo := postgres.NewGoodsReceiptRepository(pool)
	issueRepo := postgres.NewGoodsIssueRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	storeUC := usecase.NewStoreUseCase(storeRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)

	receiptUC := movements.NewGoodsReceiptUseCase(txRunner, receiptRepo)
	issueUC := movements.NewGoodsIssueUseCase(txRunner, issueRepo)
	transferUC := movements.NewTransferUseCase(txRunner, transferRepo, userRepo)
	stockUC := movements.NewStockUseCase(stockRepo)
	kardexUC := movements.NewKardexUseCase(kardexRepo, stockRepo)

	excelGen := report.NewExcelKardexGenerator()
	pdfGen := report.NewMarotoKardexGenerator()
	kardexExport := reports.NewKardexExportUseCase(
		kardexRepo, stockRepo, storeRepo, productRepo, excelGen, pdfGen,
	)

	authUC := auth.NewAuthUseCase(userRepo, storeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		StoreUC:      storeUC,
		ProductUC:    productUC,
		SupplierUC:   supplierUC,
		CustomerUC:   customerUC,
		ReceiptUC:    receiptUC,
		IssueUC:      issueUC,
		TransferUC:   transferUC,
		StockUC:      stockUC,
		KardexUC:     kardexUC,
		KardexExport: kardexExport,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
