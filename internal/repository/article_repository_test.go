package repository

import (
	"context"
	"database/sql"
	"malaynews/internal/model"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
)

var articleColumns = []string{"id", "title", "description", "author", "url", "url_to_image", "published_at", "created_at", "updated_at"}

func newMockRepo(t *testing.T) (*ArticleRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewArticleRepository(db), mock
}

func TestListAll_PreservesFields(t *testing.T) {
	repo, mock := newMockRepo(t)
	published := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
	created := time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(articleColumns).
		AddRow(1, "Ringgit Strengthens", "desc", "Jane Tan", "https://example.com/a", "https://example.com/a.jpg", published, created, created).
		AddRow(2, nil, nil, nil, nil, nil, nil, created, created)
	mock.ExpectQuery(regexp.QuoteMeta("FROM news")).WillReturnRows(rows)

	articles, err := repo.ListAll(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, "Ringgit Strengthens", *a.Title)
	assert.Equal(t, "desc", *a.Description)
	assert.Equal(t, "Jane Tan", *a.Author)
	assert.Equal(t, "https://example.com/a", *a.URL)
	assert.Equal(t, "https://example.com/a.jpg", *a.URLToImage)
	assert.Equal(t, true, a.PublishedAt.Equal(published))

	b := articles[1]
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, true, b.Title == nil)
	assert.Equal(t, true, b.PublishedAt == nil)

	assert.Equal(t, nil, mock.ExpectationsWereMet())
}

func TestListAll_EmptyIsNotNil(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM news")).WillReturnRows(sqlmock.NewRows(articleColumns))

	articles, err := repo.ListAll(context.Background())

	assert.Equal(t, nil, err)
	assert.Equal(t, true, articles != nil)
	assert.Equal(t, 0, len(articles))
}

func TestFindByTitle_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	title := "Missing"
	mock.ExpectQuery(regexp.QuoteMeta("WHERE title IS NOT DISTINCT FROM $1")).
		WithArgs("Missing").
		WillReturnError(sql.ErrNoRows)

	a, err := repo.FindByTitle(context.Background(), &title)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, a == nil)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}

func TestFindByTitle_NilTitleQueriesNull(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE title IS NOT DISTINCT FROM $1")).
		WithArgs(nil).
		WillReturnRows(sqlmock.NewRows(articleColumns).AddRow(7, nil, nil, nil, nil, nil, nil, created, created))

	a, err := repo.FindByTitle(context.Background(), nil)

	assert.Equal(t, nil, err)
	assert.Equal(t, int64(7), a.ID)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}

func TestDeleteOlderThan(t *testing.T) {
	repo, mock := newMockRepo(t)
	cutoff := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM news WHERE published_at < $1")).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteOlderThan(context.Background(), cutoff)

	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}

func TestInsert_SetsIDAndNulls(t *testing.T) {
	repo, mock := newMockRepo(t)
	title := "Flood Warning"
	created := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO news")).
		WithArgs("Flood Warning", nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(42, created, created))

	article := model.Article{Title: &title}
	err := repo.Insert(context.Background(), &article)

	assert.Equal(t, nil, err)
	assert.Equal(t, int64(42), article.ID)
	assert.Equal(t, nil, mock.ExpectationsWereMet())
}
