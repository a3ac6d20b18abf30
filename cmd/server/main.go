package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	appcustomer "github.com/orgalaser/invoicing/internal/application/customer"
	appinvoice "github.com/orgalaser/invoicing/internal/application/invoice"
	appprinting "github.com/orgalaser/invoicing/internal/application/printing"
	appproduct "github.com/orgalaser/invoicing/internal/application/product"
	appseed "github.com/orgalaser/invoicing/internal/application/seed"
	"github.com/orgalaser/invoicing/internal/domain/printing"
	"github.com/orgalaser/invoicing/internal/infrastructure/cache"
	"github.com/orgalaser/invoicing/internal/infrastructure/config"
	"github.com/orgalaser/invoicing/internal/infrastructure/export"
	"github.com/orgalaser/invoicing/internal/infrastructure/logger"
	"github.com/orgalaser/invoicing/internal/infrastructure/persistence"
	infraprinting "github.com/orgalaser/invoicing/internal/infrastructure/printing"
	"github.com/orgalaser/invoicing/internal/infrastructure/storage"
	"github.com/orgalaser/invoicing/internal/infrastructure/telemetry"
	"github.com/orgalaser/invoicing/internal/interfaces/http/handler"
	"github.com/orgalaser/invoicing/internal/interfaces/http/middleware"
	"github.com/orgalaser/invoicing/internal/interfaces/http/router"
	"go.uber.org/zap"

	_ "github.com/orgalaser/invoicing/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Orgalaser Invoicing API
//	@version		1.0
//	@description	Customers, products, invoices and quotations for the Orgalaser print shop.

//	@contact.name	Orgalaser
//	@contact.url	https://github.com/orgalaser/invoicing

//	@BasePath	/api

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := logger.ConfigForEnvironment(cfg.App.Env, cfg.Log.Level)
	if cfg.Log.Format != "" {
		logCfg.Format = cfg.Log.Format
	}
	if cfg.Log.Output != "" {
		logCfg.Output = cfg.Log.Output
	}
	baseLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	// Telemetry first so the OTLP log bridge wraps every later component's logger
	tel, err := telemetry.Setup(context.Background(), cfg.Telemetry, baseLog, logger.ParseLevel(cfg.Log.Level))
	if err != nil {
		baseLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	log := tel.Logger
	defer func() {
		_ = log.Sync()
	}()
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tel.Shutdown(ctx); err != nil {
			log.Warn("Telemetry shutdown incomplete", zap.Error(err))
		}
	}()

	log.Info("Starting Orgalaser invoicing",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("database", cfg.Database.Driver),
	)

	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, log); err != nil {
		log.Warn("Database tracing unavailable", zap.Error(err))
	}
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
		log.Info("Database schema migrated")
	}
	log.Info("Database connected successfully")

	// Document_ID sequence: redis when configured, otherwise the per-day document count
	sequence, closeSequence, err := cache.NewSequenceFactory(cfg.Invoice.Sequence, cfg.Redis,
		cache.WithLogger(log),
		cache.WithDatabaseFallback(cfg.App.Env != "production"),
	).Create()
	if err != nil {
		log.Fatal("Failed to initialize Document ID sequence", zap.Error(err))
	}
	defer func() {
		if err := closeSequence(); err != nil {
			log.Warn("Error closing sequence connection", zap.Error(err))
		}
	}()

	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	typeIndexRepo := persistence.NewGormTypeIndexRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	barcodes := appproduct.NewBarcodeGenerator(cfg.Product.BarcodeMaxAttempts)
	customerService := appcustomer.NewService(customerRepo, typeIndexRepo, invoiceRepo, txScope)
	productService := appproduct.NewService(productRepo, barcodes)
	invoiceService := appinvoice.NewService(invoiceRepo, customerRepo, productRepo, txScope, sequence, appinvoice.Options{
		Location:              cfg.Invoice.Location(),
		DocumentIDMaxAttempts: cfg.Invoice.DocumentIDMaxAttempts,
		WarnLineTotalMismatch: cfg.Invoice.LineTotalMismatchWarns,
		Metrics:               tel.Metrics,
	}, log)
	seedService := appseed.NewService(txScope, barcodes, log)

	sheets, labels, closeRenderers := newRenderers(cfg.Print, log)
	defer closeRenderers()
	printService := appprinting.NewService(sheets, labels, newArchive(cfg.Storage, log), productRepo, companyFromConfig(cfg.Company), log,
		appprinting.WithLocation(cfg.Invoice.Location()),
		appprinting.WithMetrics(tel.Metrics),
	)

	pingers := map[string]handler.Pinger{"database": db}
	if p, ok := sequence.(handler.Pinger); ok {
		pingers["redis"] = p
	}
	handlers := router.Handlers{
		Health:    handler.NewHealthHandler(version, pingers),
		Customers: handler.NewCustomerHandler(customerService),
		Products:  handler.NewProductHandler(productService, printService),
		Invoices:  handler.NewInvoiceHandler(invoiceService, printService, export.NewXLSXWriter()),
		Seed:      handler.NewSeedHandler(seedService, cfg.App.EnableSeed),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order:
	// 1. RequestID - generate/propagate request ID
	// 2. Recovery - catch panics
	// 3. Logger - log requests
	// 4. Tracing - server span per request, then request ID and status on it
	// 5. Metrics - request counters and latency
	// 6. Security headers, CORS, body limit, request timeout
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(middleware.HTTPMetrics(tel.Meter.Meter(telemetry.TracerName)))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RequestTimeout > 0 {
		engine.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	}

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine).RegisterAPI(handlers)
	r.Setup()
	log.Info("Routes registered", zap.String("prefix", r.Prefix()), zap.Bool("seed_enabled", cfg.App.EnableSeed))

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// newRenderers picks the invoice sheet engine. Labels always use gofpdf.
// A chromedp engine that cannot start falls back to gofpdf.
func newRenderers(cfg config.PrintConfig, log *zap.Logger) (infraprinting.SheetRenderer, infraprinting.LabelRenderer, func()) {
	fpdf := infraprinting.NewFPDFRenderer(log)
	if cfg.Engine != "chromedp" {
		return fpdf, fpdf, func() {}
	}

	engine, err := infraprinting.NewTemplateEngine()
	if err == nil {
		var chrome *infraprinting.ChromedpRenderer
		chrome, err = infraprinting.NewChromedpRenderer(&infraprinting.ChromedpConfig{
			DefaultTimeout: cfg.Timeout,
			RemoteURL:      cfg.ChromeRemoteURL,
			NoSandbox:      cfg.ChromeNoSandbox,
			Logger:         log,
		}, engine)
		if err == nil {
			log.Info("Printing invoices through Chrome")
			return chrome, fpdf, func() {
				if err := chrome.Close(); err != nil {
					log.Warn("Error closing Chrome renderer", zap.Error(err))
				}
			}
		}
	}
	log.Warn("Chrome renderer unavailable, using gofpdf", zap.Error(err))
	return fpdf, fpdf, func() {}
}

// newArchive returns the S3 archive for printed documents, or a no-op one
// when storage is disabled or unreachable.
func newArchive(cfg config.StorageConfig, log *zap.Logger) appprinting.DocumentArchive {
	if !cfg.Enabled {
		return storage.NewNoopObjectStorage(log)
	}
	s3, err := storage.NewS3ObjectStorage(&cfg, storage.WithLogger(log))
	if err != nil {
		log.Warn("Document archive unavailable", zap.Error(err))
		return storage.NewNoopObjectStorage(log)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s3.EnsureBucket(ctx); err != nil {
		log.Warn("Document archive bucket check failed", zap.String("bucket", s3.GetBucket()), zap.Error(err))
	}
	return s3
}

func companyFromConfig(c config.CompanyConfig) printing.Company {
	return printing.Company{
		Name:              c.Name,
		RegistrationNo:    c.RegistrationNo,
		Address:           c.Address,
		Phone:             c.Phone,
		Email:             c.Email,
		Salesperson:       c.Salesperson,
		BankName:          c.BankName,
		BankAccountName:   c.BankAccountName,
		BankAccountNumber: c.BankAccountNumber,
		BankCode:          c.BankCode,
	}
}
