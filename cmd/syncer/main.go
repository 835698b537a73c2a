package main

import (
	"context"
	"log"
	"log/slog"
	"malaynews/db"
	"malaynews/internal/config"
	"malaynews/internal/repository"
	"malaynews/internal/syncer"
	"malaynews/logger"
	"malaynews/pkg/news"
	"os"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	slog.SetDefault(logger.New(os.Stdout, "json"))

	err = db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(db.DB); err != nil {
		log.Fatalf("error migrating DB: %v", err)
	}

	opts := []syncer.Option{
		syncer.WithKeyword(cfg.Keyword),
		syncer.WithWindow(cfg.SyncWindow),
	}

	if cfg.RedisURL != "" {
		err = db.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()

		opts = append(opts, syncer.WithRecorder(db.NewSyncStatusStore(db.Redis)))
	}

	client := news.NewNewsAPIClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL)
	repo := repository.NewArticleRepository(db.DB)

	_, err = syncer.New(client, repo, opts...).Sync(ctx)
	if err != nil {
		// os.Exit skips deferred calls
		db.CloseRedis()
		db.Close()
		os.Exit(1)
	}
}
