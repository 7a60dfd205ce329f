package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/storecraft/backoffice-backend/api/routes"
	"github.com/storecraft/backoffice-backend/internal/billing"
	"github.com/storecraft/backoffice-backend/internal/discounts"
	"github.com/storecraft/backoffice-backend/internal/holidays"
	"github.com/storecraft/backoffice-backend/internal/invoices"
	"github.com/storecraft/backoffice-backend/internal/items"
	"github.com/storecraft/backoffice-backend/internal/merchants"
	"github.com/storecraft/backoffice-backend/pkg/config"
	"github.com/storecraft/backoffice-backend/pkg/db"
	"github.com/storecraft/backoffice-backend/pkg/logger"
	"github.com/storecraft/backoffice-backend/pkg/migrate"
	"github.com/storecraft/backoffice-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	merchantRepo := merchants.NewRepository(dbClient.DB())
	invoiceRepo := invoices.NewRepository(dbClient.DB())
	discountRepo := discounts.NewRepository(dbClient.DB())
	itemRepo := items.NewRepository(dbClient.DB())

	merchantService, err := merchants.NewService(merchantRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create merchant service", err)
		os.Exit(1)
	}

	holidayService, err := holidays.NewService(holidays.NewClient(cfg.Holidays), redisClient, cfg.Holidays, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create holiday service", err)
		os.Exit(1)
	}

	discountService, err := discounts.NewService(discountRepo, merchantRepo, holidayService)
	if err != nil {
		logg.Error(context.Background(), "failed to create discount service", err)
		os.Exit(1)
	}

	itemService, err := items.NewService(itemRepo, merchantRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create item service", err)
		os.Exit(1)
	}

	invoiceService, err := invoices.NewService(invoiceRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create invoice service", err)
		os.Exit(1)
	}

	billingService, err := billing.NewService(invoiceRepo, discountRepo, merchantRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create billing service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:    cfg,
			Logger:    logg,
			DB:        dbClient,
			Redis:     redisClient,
			Registry:  prometheus.NewRegistry(),
			Billing:   billingService,
			Discounts: discountService,
			Holidays:  holidayService,
			Invoices:  invoiceService,
			Items:     itemService,
			Merchants: merchantService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
