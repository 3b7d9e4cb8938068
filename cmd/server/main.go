package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"stock_dashboard/internal/app/di"
	"stock_dashboard/internal/app/router"
	"stock_dashboard/internal/feature/candles/domain/indicator"
	candleshandler "stock_dashboard/internal/feature/candles/transport/handler"
	candlesusecase "stock_dashboard/internal/feature/candles/usecase"
	companyadapters "stock_dashboard/internal/feature/company/adapters"
	companyentity "stock_dashboard/internal/feature/company/domain/entity"
	companyhandler "stock_dashboard/internal/feature/company/transport/handler"
	companyusecase "stock_dashboard/internal/feature/company/usecase"
	sectoradapters "stock_dashboard/internal/feature/sector/adapters"
	sectorhandler "stock_dashboard/internal/feature/sector/transport/handler"
	sectorusecase "stock_dashboard/internal/feature/sector/usecase"
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/db"
	healthhandler "stock_dashboard/internal/platform/http/handler"
	"stock_dashboard/internal/platform/logger"
	"stock_dashboard/internal/platform/metrics"
	platformredis "stock_dashboard/internal/platform/redis"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// .env は任意
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[WARN] failed to load .env: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	level, _ := config.ParseLevel(cfg.Log.Level)
	logger.Init(os.Stdout, "stock-dashboard", level)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// db
	gdb, err := db.Open(db.Config{Path: cfg.Database.SQLitePath, BusyTimeout: 5000})
	if err != nil {
		return err
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()

	// Redis
	rdb, err := platformredis.NewRedisClient(ctx, platformredis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		slog.Warn("Redis unavailable. Running without cache.")
		rdb = nil
	}
	if rdb != nil {
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	loc, err := time.LoadLocation(cfg.Redis.Location)
	if err != nil {
		return err
	}
	unit, err := companyentity.ParseDividendUnit(cfg.Database.DividendUnit)
	if err != nil {
		return err
	}

	m := metrics.NewMetrics()

	// Repository
	barRepo := di.NewBarRepository(ctx, gdb, rdb, di.CacheConfig{
		Namespace:   "bars",
		RefreshHour: cfg.Redis.RefreshHour,
		Location:    loc,
	})
	companyRepo := companyadapters.NewCompanyRepository(gdb)
	sectorRepo := sectoradapters.NewSectorRepository(gdb)

	// Usecase
	candlesUC := candlesusecase.NewCandlesUsecase(barRepo)
	analysisUC := candlesusecase.NewAnalysisUsecase(barRepo, indicator.DefaultConfig(), candlesusecase.WithObserver(m))
	companyUC := companyusecase.NewCompanyUsecase(companyRepo)
	sectorUC := sectorusecase.NewSectorUsecase(sectorRepo)

	// ルータ生成
	engine := router.NewRouter(router.Handlers{
		Candles: candleshandler.NewCandlesHandler(candlesUC, analysisUC),
		Company: companyhandler.NewCompanyHandler(companyUC, unit),
		Sector:  sectorhandler.NewSectorHandler(sectorUC),
		Health:  healthhandler.NewHealth(sqlDB),
	}, m, cfg.Server.AllowOrigins)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("dashboard listening", "addr", "http://"+cfg.Server.Addr, "db", cfg.Database.SQLitePath, "cache", rdb != nil)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
