package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"malaynews/internal/model"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const SyncStatusKey = "malaynews:sync:last"

func ConnectRedis(ctx context.Context, redisURL string) error {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	_, err = Redis.Ping(ctx).Result()
	return err
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// SyncStatusStore keeps the outcome of the most recent sync in Redis.
type SyncStatusStore struct {
	client *redis.Client
}

func NewSyncStatusStore(client *redis.Client) *SyncStatusStore {
	return &SyncStatusStore{client: client}
}

func (s *SyncStatusStore) RecordSync(ctx context.Context, report model.SyncReport, syncErr error) error {
	status := model.SyncStatus{SyncReport: report}
	if syncErr != nil {
		status.Error = syncErr.Error()
	}

	data, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("sync status encode: %w", err)
	}

	return s.client.Set(ctx, SyncStatusKey, data, 0).Err()
}

// LastSync returns nil when no sync has been recorded yet.
func (s *SyncStatusStore) LastSync(ctx context.Context) (*model.SyncStatus, error) {
	data, err := s.client.Get(ctx, SyncStatusKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var status model.SyncStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, fmt.Errorf("sync status decode: %w", err)
	}

	return &status, nil
}
