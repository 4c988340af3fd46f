package handler

import (
	"errors"
	"net/http"
	apperrors "raffle-tracker/pkg/app_errors"
	"raffle-tracker/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError 錯誤對應到 HTTP 狀態碼；驗證錯誤帶上欄位名稱
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	field := apperrors.FieldOf(err)

	switch {
	case errors.Is(err, apperrors.ErrMissingField):
		log.Warn("Missing field")
		respondError(c, http.StatusBadRequest, "Missing required field", field)
	case errors.Is(err, apperrors.ErrInvalidNumber):
		log.Warn("Invalid number")
		respondError(c, http.StatusBadRequest, "Invalid raffle number", field)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		log.Warn("Invalid amount")
		respondError(c, http.StatusBadRequest, "Invalid amount", field)
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		respondError(c, http.StatusBadRequest, "Invalid input", field)
	case errors.Is(err, apperrors.ErrNumberAlreadySold):
		log.Warn("Number already sold")
		respondError(c, http.StatusConflict, "Number already sold", field)
	case errors.Is(err, apperrors.ErrNoEligibleNumbers):
		log.Info("No eligible numbers")
		respondError(c, http.StatusUnprocessableEntity, "No sold numbers to draw", "")
	case errors.Is(err, apperrors.ErrResetDisabled):
		log.Warn("Reset disabled")
		respondError(c, http.StatusForbidden, "Reset is disabled", "")
	case errors.Is(err, apperrors.ErrResetNotConfirmed):
		log.Warn("Reset not confirmed")
		respondError(c, http.StatusBadRequest, "Reset confirmation does not match ledger name", field)
	case errors.Is(err, apperrors.ErrStoreUnavailable), errors.Is(err, apperrors.ErrDataRead):
		log.Error("Ledger store unavailable")
		respondError(c, http.StatusServiceUnavailable, "Ledger store unavailable, try again or register manually", "")
	default:
		log.Error("Unexpected error")
		respondError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}

func respondError(c *gin.Context, status int, message, field string) {
	body := gin.H{"error": message}
	if field != "" {
		body["field"] = field
	}
	c.JSON(status, body)
}
