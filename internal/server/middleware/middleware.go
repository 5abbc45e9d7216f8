package middleware

import (
	"time"

	"cosmossdk.io/log"
	"github.com/labstack/echo/v4"
)

// Logging logs every request at debug level and its outcome once it returns.
func Logging(logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			start := time.Now()
			logger.Debug("Received request", "method", req.Method, "path", req.URL.Path)

			err := next(c)
			if err != nil {
				status, _ := ExtractError(err)
				logger.Info("Request failed", "method", req.Method, "path", req.URL.Path, "status", status, "error", err)
				return err
			}
			logger.Debug("Request served", "method", req.Method, "path", req.URL.Path,
				"status", c.Response().Status, "took", time.Since(start))
			return nil
		}
	}
}
