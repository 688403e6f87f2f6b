package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	_ "github.com/lvyanru/soda-apiserver/docs" // swagger docs
	"github.com/lvyanru/soda-apiserver/internal/config"
	"github.com/lvyanru/soda-apiserver/internal/handler"
	"github.com/lvyanru/soda-apiserver/internal/infrastructure/soda"
	"github.com/lvyanru/soda-apiserver/internal/router"
	"github.com/lvyanru/soda-apiserver/internal/usecase"
	"github.com/lvyanru/soda-apiserver/pkg/logger"
)

//	@title			SODA Core Snowflake Validator
//	@version		1.0.0
//	@description	Data quality validation for custom Snowflake queries using SODA Core

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8000
//	@BasePath	/api/v1

var (
	cfgFile string
	version = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "soda-apiserver",
	Short: "Data quality validation API server for Snowflake",
	Long: `soda-apiserver exposes SodaCL data quality validation of Snowflake tables
and custom SQL queries over HTTP. Scans are executed by an external Soda scan
runner; the server serializes runner access, enforces scan deadlines and
normalizes results into a stable report.`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("soda-apiserver starting...",
		"version", version,
		"config", cfgFile,
	)

	// Route Hertz's own logs through slog
	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))
	if cfg.Server.Mode == "debug" {
		hlog.SetLevel(hlog.LevelDebug)
	}

	// Scan runner client
	engineClient, err := soda.NewClient(
		cfg.Engine.BaseURL,
		cfg.Engine.Timeout,
		cfg.Engine.DataSourceName,
		slog.Default(),
	)
	if err != nil {
		slog.Error("failed to create scan runner client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := engineClient.HealthCheck(ctx); err != nil {
		slog.Warn("scan runner health check failed, scans may not work until it recovers", "error", err)
	}

	// The gate serializes all engine invocations process-wide
	gate := soda.NewExecutionGate(engineClient, cfg.Validation.ScanDeadline, slog.Default())

	validationUsecase := usecase.NewValidationUsecase(
		gate,
		cfg.Validation,
		cfg.Engine.DataSourceName,
		slog.Default(),
	)
	validationHandler := handler.NewValidationHandler(validationUsecase, slog.Default())
	healthHandler := handler.NewHealthHandler(engineClient, version)

	slog.Info("validation module initialized",
		"scan_deadline", cfg.Validation.ScanDeadline.String(),
		"max_workers", cfg.Validation.MaxWorkers,
	)

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, validationHandler, healthHandler)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
