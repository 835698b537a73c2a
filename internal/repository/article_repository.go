package repository

import (
	"context"
	"database/sql"
	"malaynews/internal/model"
	"time"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) ListAll(ctx context.Context) ([]model.Article, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, description, author, url, url_to_image, published_at, created_at, updated_at
		FROM news
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

// FindByTitle matches on exact title. A nil title matches a row whose title
// is NULL.
func (r *ArticleRepository) FindByTitle(ctx context.Context, title *string) (*model.Article, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, title, description, author, url, url_to_image, published_at, created_at, updated_at
		FROM news
		WHERE title IS NOT DISTINCT FROM $1
		ORDER BY id ASC
		LIMIT 1
	`, nullString(title))

	a, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *ArticleRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM news WHERE published_at < $1
	`, cutoff)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *ArticleRepository) Insert(ctx context.Context, article *model.Article) error {
	return r.db.QueryRowContext(ctx, `
		INSERT INTO news(title, description, author, url, url_to_image, published_at)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, nullString(article.Title), nullString(article.Description), nullString(article.Author),
		nullString(article.URL), nullString(article.URLToImage), nullTime(article.PublishedAt),
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
}

func (r *ArticleRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM news
	`).Scan(&total)
	return total, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (*model.Article, error) {
	var (
		a                                           model.Article
		title, description, author, url, urlToImage sql.NullString
		publishedAt                                 sql.NullTime
	)

	err := s.Scan(&a.ID, &title, &description, &author, &url, &urlToImage, &publishedAt, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.Title = stringPtr(title)
	a.Description = stringPtr(description)
	a.Author = stringPtr(author)
	a.URL = stringPtr(url)
	a.URLToImage = stringPtr(urlToImage)
	if publishedAt.Valid {
		a.PublishedAt = &publishedAt.Time
	}

	return &a, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
