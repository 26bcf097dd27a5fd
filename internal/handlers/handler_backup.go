package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	"github.com/trovehq/trove-backend/internal/apperrors"
	portssvc "github.com/trovehq/trove-backend/internal/core/ports/services"
	"github.com/trovehq/trove-backend/internal/dto"
	"github.com/trovehq/trove-backend/internal/middleware"
)

// backupHandler handles HTTP requests for database backup and restore.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

// newBackupHandler creates a new backupHandler.
func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{
		backupService: bs,
	}
}

// registerBackupRoutes registers the backup routes behind a rate limiter.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade, limiterInstance *limiter.Limiter) {
	h := newBackupHandler(backupService)

	backups := rg.Group("/backups", middleware.RateLimit(limiterInstance))
	{
		backups.POST("", h.createBackup)
		backups.GET("", h.listBackups)
		backups.POST("/restore", h.restoreBackup)
	}

	// Reset lives beside the backups because both rewrite the whole store.
	rg.POST("/database/reset", middleware.RateLimit(limiterInstance), h.resetDatabase)
}

// createBackup godoc
// @Summary Create a backup
// @Description Checkpoints the database and copies it into the backup directory
// @Tags backups
// @Produce  json
// @Success 201 {object} dto.BackupResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to create backup"
// @Router /backups [post]
func (h *backupHandler) createBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	backup, err := h.backupService.CreateBackup(c.Request.Context())
	if err != nil {
		logger.Error("Failed to create backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create backup"})
		return
	}

	c.JSON(http.StatusCreated, backup)
}

// listBackups godoc
// @Summary List backups
// @Description Returns available backup files, newest first
// @Tags backups
// @Produce  json
// @Success 200 {array} dto.BackupResponse
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to list backups"
// @Router /backups [get]
func (h *backupHandler) listBackups(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	backups, err := h.backupService.ListBackups(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list backups", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list backups"})
		return
	}

	c.JSON(http.StatusOK, backups)
}

// restoreBackup godoc
// @Summary Restore a backup
// @Description Verifies the named backup's signature and swaps it in as the live database
// @Tags backups
// @Accept  json
// @Produce  json
// @Param   restore body dto.RestoreRequest true "Backup file to restore"
// @Success 200 {object} map[string]string "Backup restored"
// @Failure 400 {object} map[string]string "Invalid input or signature mismatch"
// @Failure 404 {object} map[string]string "Backup file not found"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to restore backup"
// @Router /backups/restore [post]
func (h *backupHandler) restoreBackup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RestoreBackup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.backupService.RestoreBackup(c.Request.Context(), req.FileName)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected backup restore", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Backup file not found", slog.String("file_name", req.FileName))
			c.JSON(http.StatusNotFound, gin.H{"error": "Backup file not found"})
		} else {
			logger.Error("Failed to restore backup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore backup"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Backup restored"})
}

// resetDatabase godoc
// @Summary Reset the database
// @Description Drops all data and reinitializes an empty store
// @Tags backups
// @Produce  json
// @Success 200 {object} map[string]string "Database reset"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to reset database"
// @Router /database/reset [post]
func (h *backupHandler) resetDatabase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.backupService.ResetDatabase(c.Request.Context()); err != nil {
		logger.Error("Failed to reset database", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset database"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database reset"})
}
