package utils

import (
	"errors"
	"net/http"

	apperrors "gema-backend/pkg/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type HTTPResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

// verboseErrors controls whether raw storage error text reaches the client.
// Enabled in development, off in production.
var verboseErrors = true

func SetErrorVerbosity(verbose bool) {
	verboseErrors = verbose
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HTTPResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

var sentinelCodes = []struct {
	err     error
	code    int
	message string
}{
	{apperrors.ErrNotFound, http.StatusNotFound, "record not found"},
	{apperrors.ErrConflict, http.StatusConflict, "record already exists"},
	{apperrors.ErrBadRequest, http.StatusBadRequest, "invalid request"},
}

func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("http error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
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

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		// The full violation list goes back to the client, never a partial one.
		violations := make([]apperrors.FieldViolation, 0, len(validationErrors))
		for _, e := range validationErrors {
			violations = append(violations, apperrors.FieldViolation{
				Field: e.Field(),
				Rule:  e.Tag(),
				Param: e.Param(),
			})
		}
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"status":  false,
			"message": "validation failed",
			"body":    violations,
		})
	}

	for _, s := range sentinelCodes {
		if errors.Is(err, s.err) {
			return c.JSON(s.code, map[string]interface{}{
				"status":  false,
				"message": s.message,
			})
		}
	}

	logger.Error("unexpected error", zap.Error(err))

	message := "internal server error"
	if verboseErrors {
		message = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"status":  false,
		"message": message,
	})
}
