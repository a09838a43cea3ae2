package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/okorolenko/storefront/internal/cart"
	"github.com/okorolenko/storefront/internal/catalog"
	"github.com/okorolenko/storefront/internal/config"
	"github.com/okorolenko/storefront/internal/events"
	"github.com/okorolenko/storefront/internal/httpserver"
	"github.com/okorolenko/storefront/internal/kv"
	"github.com/okorolenko/storefront/internal/logging"
	"github.com/okorolenko/storefront/internal/order"
	"github.com/okorolenko/storefront/internal/repo"
	"github.com/okorolenko/storefront/internal/resolver"
	"github.com/okorolenko/storefront/internal/search"
	"github.com/okorolenko/storefront/internal/wishlist"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	e := echo.New()
	e.HideBanner = true

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(logging.RequestLogger(logger))

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	local, err := kv.OpenSQLite(cfg.LocalStorePath)
	if err != nil {
		log.Fatalf("local store init error: %v", err)
	}

	cartStore, err := cart.New(initCtx, local)
	if err != nil {
		log.Fatalf("cart init error: %v", err)
	}
	wishStore, err := wishlist.New(initCtx, local)
	if err != nil {
		log.Fatalf("wishlist init error: %v", err)
	}

	var gormRepo *repo.GormRepo
	var assembler *order.Assembler
	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	if cfg.DatabaseURL != "" {
		db, err := config.OpenDB(initCtx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db init error: %v", err)
		}
		gormRepo = repo.New(db)
		if err := gormRepo.AutoMigrate(); err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
		assembler = order.New(gormRepo, cartStore, producer, order.Config{
			TaxRate:               cfg.TaxRate,
			ShippingFee:           cfg.ShippingFee,
			FreeShippingThreshold: cfg.FreeShippingThreshold,
		})
	} else {
		logger.Warn("DATABASE_URL not set, serving the bundled catalog only")
	}

	var searcher resolver.Searcher
	switch {
	case cfg.ESURL == "":
	case gormRepo == nil:
		// Search queries never leave the bundled dataset in this mode,
		// so an index client would sit idle.
		logger.Warn("ES_URL ignored, search requires DATABASE_URL")
	default:
		es, err := search.NewClient(search.Config{
			URL:      cfg.ESURL,
			Username: cfg.ESUser,
			Password: cfg.ESPassword,
			Index:    cfg.ESIndex,
		})
		if err != nil {
			logger.Warn("elasticsearch unavailable, search falls back to the persistence service", "error", err)
		} else {
			searcher = es
		}
	}

	var remote resolver.ProductSource
	if gormRepo != nil {
		remote = gormRepo
	}
	products := resolver.New(remote, searcher, catalog.NewDataset())

	httpserver.Register(e, &httpserver.Deps{
		Resolver:    products,
		Cart:        cartStore,
		Wishlist:    wishStore,
		Orders:      assembler,
		Repo:        gormRepo,
		JWTSecret:   cfg.JWTSecret,
		PreferLocal: cfg.PreferLocalCatalog,
	})

	go func() {
		logger.Info("starting storefront", "port", cfg.ServerPort)
		if err := e.Start(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("echo shutdown", "error", err)
	}
}
