package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/isbleu/concept/config"
	"github.com/isbleu/concept/data"
	"github.com/isbleu/concept/data/cache"
	"github.com/isbleu/concept/data/repository/file"
	"github.com/isbleu/concept/data/repository/postgres"
	"github.com/isbleu/concept/internal/chart"
	"github.com/isbleu/concept/internal/eventPublisher"
	"github.com/isbleu/concept/internal/externalApi/chartApi"
	"github.com/isbleu/concept/internal/externalApi/cloudStorageApi/googleDriveApi"
	"github.com/isbleu/concept/internal/externalApi/glmApi"
	"github.com/isbleu/concept/internal/externalApi/quoteApi"
	"github.com/isbleu/concept/internal/reportGenerator/xslsxGenerator"
	"github.com/isbleu/concept/internal/scheduler"
	"github.com/isbleu/concept/internal/service/chartService"
	"github.com/isbleu/concept/internal/service/conceptService"
	"github.com/isbleu/concept/internal/tgbot"
	"github.com/isbleu/concept/internal/transport/rest"
	"github.com/isbleu/concept/internal/transport/telegram"
)

const shutdownTimeout = 10 * time.Second

type conceptCache interface {
	conceptService.QuoteCache
	chartService.ChartCache
}

type publisher interface {
	conceptService.Publisher
	Close() error
}

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.String("storage", cfg.Storage.Driver), slog.Bool("redis", cfg.Redis.Enabled), slog.Any("kafka", cfg.Kafka.Brokers))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repo conceptService.Repository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pgClient := data.NewPostgresClient(ctx, cfg)
		defer pgClient.Close()
		repo = postgres.NewPostgres(cfg, pgClient)
	default:
		repo = file.New(cfg)
	}

	var conceptsCache conceptCache = cache.Nop{}
	if cfg.Redis.Enabled {
		redisClient := data.NewRedisClient(ctx, cfg)
		defer redisClient.Close()
		conceptsCache = cache.NewRedisCache(redisClient, cfg)
	}

	var events publisher = eventPublisher.Nop{}
	if len(cfg.Kafka.Brokers) > 0 {
		events = eventPublisher.NewProducer(cfg)
	}
	defer events.Close()

	var cloudStorage conceptService.CloudStorage
	if cfg.GoogleDrive.CredentialsFile != "" {
		cloudStorage = googleDriveApi.New(ctx, cfg)
	}

	if cfg.GLM.ApiKey == "" {
		slog.Warn("GLM_API_KEY is empty, concepts can only be created with explicit stocks")
	}

	conceptSrv := conceptService.New(
		repo,
		quoteApi.New(cfg),
		glmApi.New(cfg),
		conceptsCache,
		events,
		xslsxGenerator.New(),
		cloudStorage,
	)
	chartSrv := chartService.New(chartApi.New(cfg), conceptsCache, chart.NewGenerator())

	sched := scheduler.New()
	if cfg.Redis.Enabled {
		sched.NewIntervalJob("fill quote cache", conceptSrv.FillQuoteCache, cfg.Jobs.FillQuoteCacheInterval, true)
	}
	if cloudStorage != nil {
		sched.NewCrontabJob("upload concepts export", conceptSrv.UploadExport, cfg.Jobs.ExportCrontab, false)
	}
	sched.Start()
	defer sched.Stop()

	if cfg.Telegram.Token != "" {
		tgBot := tgbot.New(cfg, telegram.NewController(conceptSrv))
		tgBot.Start()
		defer tgBot.Stop()
	}

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      rest.NewRouter(cfg, rest.NewController(conceptSrv, chartSrv)),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		slog.Info("http server started", slog.String("addr", cfg.HTTP.Addr), slog.Bool("auth", cfg.Auth.Enabled()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", slog.String("err", err.Error()))
			cancel()
		}
	}()

	// Waiting interruption signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case <-interrupt:
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", slog.String("err", err.Error()))
	}
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
