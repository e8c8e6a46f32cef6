package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"rostipos/internal/app/pos/config"
	"rostipos/internal/app/pos/handler"
	"rostipos/internal/app/pos/processor"
	"rostipos/internal/app/pos/repository"
	"rostipos/internal/app/pos/service"
	"rostipos/internal/app/pos/util"
	"rostipos/pkg/logger"
)

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("pos", cfg.Log.Level)

	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open database")
	}
	if err := repository.InitDatabase(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize database")
	}
	logger.Info().Str("path", cfg.Database.Path).Msg("Database ready")

	var cache util.RedisCache
	if cfg.Redis.Enabled {
		cache, err = util.NewRedisCache(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	var producer util.MessagePublisher
	if cfg.Kafka.Enabled {
		producer = util.NewKafkaProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer producer.Close()
	}

	categoriaRepo := repository.NewCategoriaRepository(db)
	articuloRepo := repository.NewArticuloRepository(db)
	mesaRepo := repository.NewMesaRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	statsRepo := repository.NewEstadisticasRepository(db)
	reporteRepo := repository.NewReporteRepository(db)

	catalogoService := service.NewCatalogoService(categoriaRepo, articuloRepo, mesaRepo, cache)
	pedidoService := service.NewPedidoService(pedidoRepo, mesaRepo, cache, producer)
	estadisticasService := service.NewEstadisticasService(statsRepo, cache)
	exportService := service.NewExportService(reporteRepo)

	catalogoHandler := handler.NewCatalogoHandler(catalogoService)
	pedidoHandler := handler.NewPedidoHandler(pedidoService)
	estadisticasHandler := handler.NewEstadisticasHandler(estadisticasService)
	exportHandler := handler.NewExportHandler(exportService)

	router := handler.SetupRoutes(catalogoHandler, pedidoHandler, estadisticasHandler, exportHandler)

	scheduler := processor.NewReportScheduler(estadisticasService)
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	defer cancelScheduler()
	if err := scheduler.Start(schedulerCtx, cfg.Worker.ReportCron); err != nil {
		logger.Fatal().Err(err).Msg("Failed to start report scheduler")
	}
	defer scheduler.Stop()

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("address", cfg.Server.Address()).Msg("Starting POS backend")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down POS backend...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("POS backend stopped gracefully")
}
