package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/retocart/server/internal/config"
	"github.com/retocart/server/internal/db"
	"github.com/retocart/server/internal/events"
	"github.com/retocart/server/internal/handlers"
	"github.com/retocart/server/internal/logger"
	"github.com/retocart/server/internal/middleware"
	"github.com/retocart/server/internal/server"
	"github.com/retocart/server/internal/services"
	"github.com/retocart/server/internal/storage"
	"github.com/retocart/server/internal/store"
	"github.com/retocart/server/internal/store/memstore"
	"github.com/retocart/server/internal/store/mongostore"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	appLog, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, appLog)
	stop()
	if err != nil {
		appLog.Error("server stopped", zap.Error(err))
		_ = appLog.Sync()
		os.Exit(1)
	}
	_ = appLog.Sync()
}

// run serves until ctx is cancelled or the listener fails. Every opened
// resource is closed before it returns.
func run(ctx context.Context, cfg *config.Config, appLog *zap.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st, closeStore, err := openStore(ctx, cfg, appLog)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.NATS.URL != "" {
		p, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			return fmt.Errorf("connect nats: %w", err)
		}
		publisher = p
		appLog.Info("publishing product events", zap.String("nats", cfg.NATS.URL))
	}
	defer publisher.Close()

	// the service checks for a nil interface, so never pass a typed nil store
	var objects services.ObjectStore
	if cfg.Minio.Endpoint != "" {
		images, err := storage.NewImageStore(ctx, cfg.Minio)
		if err != nil {
			return fmt.Errorf("connect minio: %w", err)
		}
		objects = images
		appLog.Info("image uploads enabled", zap.String("bucket", cfg.Minio.Bucket))
	}

	var limiterStorage fiber.Storage
	if cfg.Redis.Addr != "" {
		redisStorage, err := storage.NewRedisStorage(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer redisStorage.Close()
		limiterStorage = redisStorage
	}

	auth := services.NewAuthService(st.Users, cfg.Token.Secret, cfg.Token.TTL)
	deps := handlers.NewDeps(handlers.Services{
		Categories: services.NewCategoryService(st.Categories, st.Products),
		Products:   services.NewProductService(st.Products, st.Joiner, publisher, appLog),
		Users:      services.NewUserService(st.Users),
		Auth:       auth,
		Images:     services.NewImageService(objects),
	})

	app := server.New(deps, server.Options{
		Log:              appLog,
		Tokens:           auth,
		Metrics:          middleware.NewMetrics(),
		AccessLog:        cfg.Log.AccessLog,
		RateLimitMax:     cfg.RateLimit.Max,
		RateLimitWindow:  cfg.RateLimit.Window,
		RateLimitStorage: limiterStorage,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLog.Error("shutdown", zap.Error(err))
		}
	}()

	appLog.Info("retoCart server listening", zap.String("port", cfg.Port), zap.String("store", cfg.StoreDriver))
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, appLog *zap.Logger) (*store.Store, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		appLog.Warn("using in-memory store; data is lost on restart")
		return memstore.New(), func() {}, nil
	}

	client, err := db.ConnectMongoDB(ctx, cfg.Mongo.URI)
	if err != nil {
		return nil, nil, err
	}
	database := client.Database(cfg.Mongo.Database)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	appLog.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	closeFn := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			appLog.Error("mongodb disconnect", zap.Error(err))
		}
	}
	return mongostore.New(database), closeFn, nil
}
