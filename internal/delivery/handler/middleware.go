package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/bos-com/Recipe-management-System/internal/application/interfaces"
	"github.com/bos-com/Recipe-management-System/internal/domain/entities"
)

const userContextKey = "user"

// RequestLogger logs one line per request after the handler has run.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			level := slog.LevelInfo
			if c.Response().Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(req.Context(), level, "http: request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"latency", time.Since(start),
				"role", currentUser(c).Role.String())
			return nil
		}
	}
}

// RateLimit rejects requests once the shared token bucket is empty.
func RateLimit(limiter *rate.Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests"})
			}
			return next(c)
		}
	}
}

// Identity resolves the bearer token into a user. Requests without a valid
// token continue as guests.
func Identity(sessions interfaces.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.Set(userContextKey, sessions.Identify(req.Context(), req.Header.Get(echo.HeaderAuthorization)))
			return next(c)
		}
	}
}

func currentUser(c echo.Context) *entities.User {
	if u, ok := c.Get(userContextKey).(*entities.User); ok && u != nil {
		return u
	}
	return entities.Guest()
}
