package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bos-com/Recipe-management-System/internal/application/services"
)

// Response is the envelope for service-level endpoints such as health.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// writeError maps service errors onto status codes. notFound is the message
// for a missing resource and failure the message for anything unexpected;
// unexpected errors are logged and never echoed to the client.
func writeError(c echo.Context, logger *slog.Logger, err error, notFound, failure string) error {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: notFound})
	case errors.Is(err, services.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests"})
	}

	logger.ErrorContext(c.Request().Context(), "handler: request failed",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err)
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: failure})
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
}

func download(c echo.Context, filename, contentType string, body []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, contentType, body)
}
