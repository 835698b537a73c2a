// Package syncer keeps the stored news table in step with the upstream
// search: fetch, prune the rows that fell out of the window, insert the
// articles not yet stored by title.
package syncer

import (
	"context"
	"errors"
	"log/slog"
	"malaynews/internal/model"
	"malaynews/logger"
	"malaynews/pkg/news"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultKeyword = "Malaysia"
	DefaultWindow  = 48 * time.Hour
)

type Fetcher interface {
	Fetch(ctx context.Context, keyword string, from time.Time) ([]news.Article, error)
}

type ArticleStore interface {
	FindByTitle(ctx context.Context, title *string) (*model.Article, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	Insert(ctx context.Context, article *model.Article) error
}

// Recorder keeps the outcome of the last sync. err is nil on success.
type Recorder interface {
	RecordSync(ctx context.Context, report model.SyncReport, err error) error
}

type Synchronizer struct {
	fetcher  Fetcher
	store    ArticleStore
	recorder Recorder

	keyword string
	window  time.Duration
	now     func() time.Time
}

type Option func(*Synchronizer)

func WithKeyword(keyword string) Option {
	return func(s *Synchronizer) {
		if keyword != "" {
			s.keyword = keyword
		}
	}
}

func WithWindow(window time.Duration) Option {
	return func(s *Synchronizer) {
		if window > 0 {
			s.window = window
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(s *Synchronizer) {
		s.recorder = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Synchronizer) {
		s.now = now
	}
}

func New(fetcher Fetcher, store ArticleStore, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		fetcher: fetcher,
		store:   store,
		keyword: DefaultKeyword,
		window:  DefaultWindow,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Sync runs one fetch/prune/insert pass. The prune runs even when the fetch
// failed. The returned error is either ErrNoArticlesFound or an
// *UpstreamRequestFailedError.
func (s *Synchronizer) Sync(ctx context.Context) (model.SyncReport, error) {
	ctx = logger.Ctx(ctx, slog.String("run_id", uuid.NewString()))

	report, err := s.sync(ctx)
	report.FinishedAt = s.now()

	if err != nil {
		slog.ErrorContext(ctx, "sync failed", "error", err, "pruned", report.Pruned)
	} else {
		slog.InfoContext(ctx, "sync complete",
			"count", report.Count,
			"inserted", report.Inserted,
			"pruned", report.Pruned,
		)
	}

	if s.recorder != nil {
		if recErr := s.recorder.RecordSync(ctx, report, err); recErr != nil {
			slog.WarnContext(ctx, "error recording sync status", "error", recErr)
		}
	}

	return report, err
}

func (s *Synchronizer) sync(ctx context.Context) (model.SyncReport, error) {
	report := model.SyncReport{StartedAt: s.now()}
	cutoff := report.StartedAt.Add(-s.window)

	fetched, fetchErr := s.fetcher.Fetch(ctx, s.keyword, cutoff)

	pruned, err := s.store.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return report, &UpstreamRequestFailedError{Message: err.Error()}
	}
	report.Pruned = pruned

	if fetchErr != nil {
		return report, fetchFailure(fetchErr)
	}

	if len(fetched) == 0 {
		return report, ErrNoArticlesFound
	}

	for _, article := range lo.Map(fetched, toModel) {
		existing, err := s.store.FindByTitle(ctx, article.Title)
		if err != nil {
			return report, &UpstreamRequestFailedError{Message: err.Error()}
		}

		if existing != nil {
			continue
		}

		if err := s.store.Insert(ctx, &article); err != nil {
			return report, &UpstreamRequestFailedError{Message: err.Error()}
		}
		report.Inserted++
	}

	report.Count = len(fetched)
	return report, nil
}

func fetchFailure(err error) error {
	if errors.Is(err, news.ErrMalformedResponse) {
		return ErrNoArticlesFound
	}

	var statusErr *news.StatusError
	if errors.As(err, &statusErr) {
		return &UpstreamRequestFailedError{
			Status:  statusErr.Code,
			Message: strconv.Itoa(statusErr.Code),
		}
	}

	return &UpstreamRequestFailedError{Message: err.Error()}
}

func toModel(a news.Article, _ int) model.Article {
	return model.Article{
		Title:       a.Title,
		Description: a.Description,
		Author:      a.Author,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		PublishedAt: a.PublishedAt,
	}
}

// Run syncs once per interval until ctx is done. Failed syncs are logged and
// do not stop the loop.
func (s *Synchronizer) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sync(ctx)
		}
	}
}
