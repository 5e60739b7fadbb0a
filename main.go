package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"promptsmith-backend/config"
	"promptsmith-backend/internal/api"
	"promptsmith-backend/internal/database"
	"promptsmith-backend/internal/services"
	"promptsmith-backend/internal/store"
	"promptsmith-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title PromptSmith API
// @version 1.0
// @description Build, save and export structured AI prompts.

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log, err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	svc, err := newServices(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to initialize services", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewRouter(cfg, log, svc),
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}
}

// newServices builds the stores selected by cfg and the services on top of
// them. Stores start from the bundled sample data.
func newServices(ctx context.Context, cfg *config.Config, log *zap.Logger) (api.Services, error) {
	seedPrompts, err := store.SeedPrompts()
	if err != nil {
		return api.Services{}, err
	}
	seedTemplates, err := store.SeedTemplates()
	if err != nil {
		return api.Services{}, err
	}

	var (
		prompts  store.PromptStore
		settings store.SettingsStore
	)
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return api.Services{}, err
		}
		db, err := database.Open(cfg.SQLitePath)
		if err != nil {
			return api.Services{}, err
		}
		gormPrompts := store.NewGormPromptStore(db)
		if err := gormPrompts.Seed(ctx, seedPrompts); err != nil {
			return api.Services{}, err
		}
		prompts = gormPrompts
		settings = store.NewGormSettingsStore(db)
	default:
		prompts = store.NewMemoryPromptStore(seedPrompts)
		settings = store.NewMemorySettingsStore()
	}

	cache, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		return api.Services{}, err
	}
	if cache == nil {
		log.Info("redis not configured, caching disabled")
	}

	return api.Services{
		Prompts:   services.NewPromptService(prompts, cache, cfg.CacheTTL, log),
		Templates: services.NewTemplateService(store.NewMemoryTemplateStore(seedTemplates), cache, cfg.CacheTTL, log),
		Settings:  services.NewSettingsService(settings, log),
	}, nil
}
