package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	goredis "github.com/redis/go-redis/v9"

	"github.com/grafit-studio/portfolio-cms/internal/api"
	"github.com/grafit-studio/portfolio-cms/internal/core/ports"
	"github.com/grafit-studio/portfolio-cms/internal/core/service"
	"github.com/grafit-studio/portfolio-cms/internal/infrastructure/config"
	mongorepo "github.com/grafit-studio/portfolio-cms/internal/infrastructure/db/mongo"
	redisrepo "github.com/grafit-studio/portfolio-cms/internal/infrastructure/db/redis"
	"github.com/grafit-studio/portfolio-cms/internal/infrastructure/notify"
	"github.com/grafit-studio/portfolio-cms/internal/infrastructure/queue"
	"github.com/grafit-studio/portfolio-cms/internal/infrastructure/storage"
	"github.com/grafit-studio/portfolio-cms/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	// --- MongoDB ---
	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// --- Redis (optional) ---
	var rdb *goredis.Client
	var dedup queue.DedupChecker
	if cfg.Redis.Addr != "" {
		rdb, err = redisrepo.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer rdb.Close()
		dedup = redisrepo.NewDedupChecker(rdb)
	} else {
		log.Warn().Msg("redis not configured, notification dedup disabled")
	}

	// --- Admin seed ---
	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		users := service.NewUserService(mongorepo.NewUserRepository(db), log)
		if err := users.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password, "Administrator"); err != nil {
			log.Fatal().Err(err).Msg("admin seed failed")
		}
	}

	// --- Notification dispatcher ---
	var notifiers []ports.Notifier
	if cfg.Notification.TelegramBotToken != "" && cfg.Notification.TelegramChatID != "" {
		notifiers = append(notifiers, notify.NewTelegramNotifier(
			cfg.Notification.TelegramBotToken,
			cfg.Notification.TelegramChatID,
			log,
		))
	}
	if cfg.Notification.Email != "" {
		notifiers = append(notifiers, notify.NewEmailNotifier(cfg.Notification.Email, log))
	}

	var notifyQueue ports.NotificationQueue
	if len(notifiers) > 0 {
		dispatcher := queue.NewDispatcher(cfg.Notification.Workers, notifiers, dedup, log)
		dispatcher.Start(ctx)
		notifyQueue = dispatcher
	} else {
		log.Warn().Msg("no notification channels configured")
	}

	// --- Upload storage ---
	store, err := buildStorage(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage setup failed")
	}

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, cfg, notifyQueue, store)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}

func buildStorage(ctx context.Context, cfg *config.Config) (ports.FileStorage, error) {
	switch cfg.Storage.Driver {
	case "s3":
		awsConfig, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Storage.S3Region))
		if err != nil {
			return nil, err
		}
		client := s3.NewFromConfig(awsConfig)
		return storage.NewS3Storage(client, cfg.Storage.S3Bucket, cfg.Storage.S3KeyPrefix, cfg.Storage.S3BaseURL), nil
	default:
		return storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL), nil
	}
}
