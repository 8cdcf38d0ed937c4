package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/gstbill/invoice-service/internal/config"
	"github.com/gstbill/invoice-service/internal/interfaces/http"
	"github.com/gstbill/invoice-service/internal/invoice"
	"github.com/gstbill/invoice-service/internal/render"
	"github.com/gstbill/invoice-service/internal/storage"
	"github.com/gstbill/invoice-service/pkg/utils"
)

func main() {
	// Local .env overrides, ignored when absent
	gotenv.Load()

	cfg, err := config.Load(configPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting tax invoice service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	spool, err := storage.NewSpoolStore(cfg.Invoice.SpoolDir, logger)
	if err != nil {
		logger.Fatal("Failed to initialize spool store", zap.Error(err))
	}

	validator := invoice.NewValidator(cfg.Invoice.MaxImageMB)
	renderer := render.NewRenderer(logger)

	server := http.NewServer(http.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		MaxBodyBytes: int64(cfg.Invoice.MaxBodyMB) * 1024 * 1024,
	}, validator, renderer, spool, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "configs/config.yaml"
}
