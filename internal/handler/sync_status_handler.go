package handler

import (
	"context"
	"log/slog"
	"malaynews/internal/model"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SyncStatusStore interface {
	LastSync(ctx context.Context) (*model.SyncStatus, error)
}

type SyncStatusHandler struct {
	store SyncStatusStore
}

func NewSyncStatusHandler(store SyncStatusStore) *SyncStatusHandler {
	return &SyncStatusHandler{store: store}
}

func (h *SyncStatusHandler) GetSyncStatus(c *gin.Context) {
	status, err := h.store.LastSync(c.Request.Context())
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "error fetching sync status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Status store error"})
		return
	}

	if status == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No sync recorded"})
		return
	}

	c.JSON(http.StatusOK, SyncStatusResponse{
		Count:      status.Count,
		Inserted:   status.Inserted,
		Pruned:     status.Pruned,
		StartedAt:  status.StartedAt.Format(time.RFC3339),
		FinishedAt: status.FinishedAt.Format(time.RFC3339),
		Error:      status.Error,
	})
}
