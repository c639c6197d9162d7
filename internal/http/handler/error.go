package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"riskmai/internal/extract"
	"riskmai/internal/http/middleware"
	"riskmai/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "VALIDATION_ERROR", "NOT_FOUND", "INTERNAL_ERROR")
// - message: human-readable safe message
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		Error:     message,
		Code:      code,
		RequestID: requestIDFromCtx(c),
	})
}

// writeServiceError maps the service error taxonomy to a status code.
// Store and unknown errors are logged and hidden behind a generic message.
func writeServiceError(c *fiber.Ctx, err error) error {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
		extractErr    *extract.ExtractionError
		storeErr      *service.StoreError
	)
	switch {
	case errors.As(err, &validationErr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", validationErr.Message)
	case errors.As(err, &notFoundErr):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", notFoundErr.Error())
	case errors.As(err, &extractErr):
		return writeError(c, fiber.StatusInternalServerError, "EXTRACTION_FAILED", extractErr.Error())
	case errors.As(err, &storeErr):
		zap.L().Error("store operation failed",
			zap.String("request_id", requestIDFromCtx(c)),
			zap.String("op", storeErr.Op),
			zap.Error(storeErr.Err),
		)
		return writeError(c, fiber.StatusInternalServerError, "STORE_ERROR", "internal server error")
	default:
		zap.L().Error("request failed",
			zap.String("request_id", requestIDFromCtx(c)),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if !errors.As(err, &fe) {
			return writeServiceError(c, err)
		}

		switch fe.Code {
		case fiber.StatusBadRequest:
			return writeError(c, fe.Code, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, fe.Code, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, fe.Code, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, fe.Code, "PAYLOAD_TOO_LARGE", "file exceeds the upload size limit")
		default:
			return writeError(c, fe.Code, "INTERNAL_ERROR", "internal server error")
		}
	}
}
