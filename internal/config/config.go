package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL, required"`
	RedisURL    string `env:"REDIS_URL"`

	// Never logged; see LogValue.
	NewsAPIKey     string `env:"NEWS_API_KEY, required"`
	NewsAPIBaseURL string `env:"NEWS_API_BASE_URL, default=https://newsapi.org/v2"`
	Keyword        string `env:"NEWS_KEYWORD, default=Malaysia"`

	SyncWindow   time.Duration `env:"SYNC_WINDOW, default=48h"`
	SyncInterval time.Duration `env:"SYNC_INTERVAL, default=0s"`

	Port        int    `env:"PORT, default=8080"`
	FrontendURL string `env:"FRONTEND_URL"`
	LogFormat   string `env:"LOG_FORMAT, default=text"`
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (Config, error) {
	godotenv.Load()

	return process(ctx, envconfig.OsLookuper())
}

func process(ctx context.Context, lookuper envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("error parsing config: %w", err)
	}

	if cfg.SyncWindow <= 0 {
		return Config{}, fmt.Errorf("SYNC_WINDOW must be positive, got %s", cfg.SyncWindow)
	}

	return cfg, nil
}

func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("news_api_base_url", c.NewsAPIBaseURL),
		slog.String("keyword", c.Keyword),
		slog.Duration("sync_window", c.SyncWindow),
		slog.Duration("sync_interval", c.SyncInterval),
		slog.Int("port", c.Port),
		slog.Bool("redis", c.RedisURL != ""),
		slog.String("log_format", c.LogFormat),
	)
}
