package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"malaynews/db"
	"malaynews/internal/config"
	"malaynews/internal/handler"
	"malaynews/internal/repository"
	"malaynews/internal/syncer"
	"malaynews/logger"
	"malaynews/pkg/news"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(logger.New(os.Stderr, cfg.LogFormat))

	if err := run(ctx, cfg); err != nil {
		slog.Error("error running", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	slog.Info("running", "config", cfg)

	if err := db.Connect(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("error connecting to DB: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(db.DB); err != nil {
		return err
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	client := news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL)

	opts := []syncer.Option{
		syncer.WithKeyword(cfg.Keyword),
		syncer.WithWindow(cfg.SyncWindow),
	}

	var statusStore *db.SyncStatusStore
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
			return fmt.Errorf("error connecting to Redis: %w", err)
		}
		defer db.CloseRedis()

		statusStore = db.NewSyncStatusStore(db.Redis)
		opts = append(opts, syncer.WithRecorder(statusStore))
	}

	sync := syncer.New(client, articleRepo, opts...)
	newsHandler := handler.NewNewsHandler(articleRepo, sync)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/getNews", newsHandler.GetNews)
	r.GET("/generateNews", newsHandler.GenerateNews)
	r.GET("/health", newsHandler.GetHealth)
	if statusStore != nil {
		r.GET("/syncStatus", handler.NewSyncStatusHandler(statusStore).GetSyncStatus)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()

		downCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(downCtx); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
		return nil
	})

	if cfg.SyncInterval > 0 {
		g.Go(func() error {
			slog.Info("periodic sync enabled", "interval", cfg.SyncInterval)
			if err := sync.Run(gCtx, cfg.SyncInterval); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("error running syncer: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}
