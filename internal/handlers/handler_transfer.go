package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trovehq/trove-backend/internal/apperrors"
	portssvc "github.com/trovehq/trove-backend/internal/core/ports/services"
	"github.com/trovehq/trove-backend/internal/dto"
	"github.com/trovehq/trove-backend/internal/middleware"
)

// transferHandler handles HTTP requests that move funds between accounts.
type transferHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransferHandler creates a new transferHandler.
func newTransferHandler(ls portssvc.LedgerSvcFacade) *transferHandler {
	return &transferHandler{
		ledgerService: ls,
	}
}

// registerTransferRoutes registers the transfer route.
func registerTransferRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransferHandler(ledgerService)
	rg.POST("/transfers", h.createTransfer)
}

// createTransfer godoc
// @Summary Transfer funds between accounts
// @Description Debits the source account and credits the destination atomically; both balances change or neither does
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 422 {object} map[string]string "Insufficient balance"
// @Failure 500 {object} map[string]string "Failed to execute transfer"
// @Router /transfers [post]
func (h *transferHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.ledgerService.Transfer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error executing transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Account not found for transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrInsufficientBalance) {
			logger.Warn("Insufficient balance for transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to execute transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to execute transfer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}
