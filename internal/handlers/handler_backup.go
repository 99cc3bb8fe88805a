package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// maxRestoreBytes bounds the size of an uploaded backup document.
const maxRestoreBytes = 32 << 20

type backupHandler struct {
	backupService portssvc.BackupSvc
	now           func() time.Time
}

func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvc) {
	h := &backupHandler{backupService: backupService, now: time.Now}

	rg.GET("/backup", h.downloadBackup)
	rg.POST("/restore", h.restoreBackup)
	rg.POST("/reset", h.resetData)
}

// downloadBackup godoc
// @Summary Download a full backup
// @Description All customers, suppliers, transactions and settings as one JSON document.
// @Tags backup
// @Produce json
// @Success 200 {object} models.Backup
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /backup [get]
func (h *backupHandler) downloadBackup(c *gin.Context) {
	backup, err := h.backupService.CreateBackup(c.Request.Context())
	if err != nil {
		respondServiceError(c, middleware.GetLoggerFromCtx(c.Request.Context()), err, "create backup")
		return
	}
	filename := fmt.Sprintf("ledger_backup_%s.json", h.now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, backup)
}

// restoreBackup godoc
// @Summary Restore from a backup document
// @Description Merges the backup into current data. Records that cannot be written are reported; the rest are kept.
// @Tags backup
// @Accept json
// @Produce json
// @Param backup body models.Backup true "Backup document"
// @Success 200 {object} domain.RestoreReport
// @Failure 400 {object} ErrorResponse "Not a backup document"
// @Failure 413 {object} ErrorResponse
// @Security BearerAuth
// @Router /restore [post]
func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRestoreBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Backup document is too large"})
			return
		}
		badRequest(c, logger, err)
		return
	}

	report, err := h.backupService.Restore(c.Request.Context(), raw)
	if err != nil {
		respondServiceError(c, logger, err, "restore backup")
		return
	}
	logger.Info("Backup restored",
		slog.Int("entities", report.EntitiesRestored),
		slog.Int("transactions", report.TransactionsRestored),
		slog.Int("failures", len(report.Failures)))
	c.JSON(http.StatusOK, report)
}

// resetData godoc
// @Summary Delete all data
// @Description Irreversible. The body must carry confirm=CONFIRM.
// @Tags backup
// @Accept json
// @Param request body dto.ResetRequest true "Confirmation"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reset [post]
func (h *backupHandler) resetData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}
	if err := h.backupService.Reset(c.Request.Context(), req.Confirm); err != nil {
		respondServiceError(c, logger, err, "reset data")
		return
	}
	logger.Warn("All ledger data was reset")
	c.Status(http.StatusNoContent)
}
