package handler

import (
	"context"
	"errors"
	"log/slog"
	"malaynews/internal/model"
	"malaynews/internal/syncer"
	"net/http"

	"github.com/gin-gonic/gin"
)

type NewsStore interface {
	ListAll(ctx context.Context) ([]model.Article, error)
	Count(ctx context.Context) (int, error)
}

type Syncer interface {
	Sync(ctx context.Context) (model.SyncReport, error)
}

type NewsHandler struct {
	repository NewsStore
	syncer     Syncer
}

func NewNewsHandler(repository NewsStore, syncer Syncer) *NewsHandler {
	return &NewsHandler{repository: repository, syncer: syncer}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	articles, err := h.repository.ListAll(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "error fetching news", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *NewsHandler) GenerateNews(c *gin.Context) {
	report, err := h.syncer.Sync(c.Request.Context())
	if err == nil {
		c.JSON(http.StatusOK, GenerateResponse{
			Status:  "success",
			Message: "News generated successfully",
			Count:   report.Count,
		})
		return
	}

	if errors.Is(err, syncer.ErrNoArticlesFound) {
		c.JSON(http.StatusBadRequest, GenerateErrorResponse{
			Status:  "error",
			Message: "No articles found in response",
		})
		return
	}

	res := UpstreamErrorResponse{Error: "News API request failed", Message: err.Error()}

	var upErr *syncer.UpstreamRequestFailedError
	if errors.As(err, &upErr) {
		res.Message = upErr.Message
		if upErr.Status != 0 {
			res.Message = upErr.Status
		}
	}

	c.JSON(http.StatusInternalServerError, res)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
