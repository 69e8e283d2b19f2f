package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apperrors "gym-admin/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	response := &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	}
	return ctx.JSON(code, response)
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}

		response := map[string]interface{}{
			"status":  false,
			"message": httpErr.Message,
		}
		if httpErr.Details != nil {
			response["body"] = httpErr.Details
		}
		return c.JSON(httpErr.Code, response)
	}

	var invalidInput *apperrors.InvalidInputError
	if errors.As(err, &invalidInput) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": invalidInput.Message,
		})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var msgs []string
		for _, e := range validationErrors {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "Validation error: " + strings.Join(msgs, "; "),
		})
	}

	if code, message, ok := sentinelStatus(err); ok {
		logger.Warn("Request failed", zap.Int("code", code), zap.Error(err))
		return c.JSON(code, map[string]interface{}{
			"status":  false,
			"message": message,
		})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": "Internal server error",
	})
}

func sentinelStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, apperrors.ErrNotFound.Error(), true
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, apperrors.ErrBadRequest.Error(), true
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		return http.StatusBadGateway, apperrors.ErrUpstreamUnavailable.Error(), true
	case errors.Is(err, apperrors.ErrSaveInFlight):
		return http.StatusConflict, apperrors.ErrSaveInFlight.Error(), true
	case errors.Is(err, apperrors.ErrNothingStaged):
		return http.StatusConflict, apperrors.ErrNothingStaged.Error(), true
	case errors.Is(err, apperrors.ErrNoConfirmation):
		return http.StatusNotFound, apperrors.ErrNoConfirmation.Error(), true
	}
	return 0, "", false
}
