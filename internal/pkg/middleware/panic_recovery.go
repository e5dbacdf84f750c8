package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/scrapcycle/scrapcycle/internal/pkg/logger"
	"github.com/scrapcycle/scrapcycle/internal/utils"
)

// PanicRecoveryMiddleware converts handler panics into 500 responses so a
// single bad request never takes down the process.
func PanicRecoveryMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic",
						logger.String("path", c.Request().URL.Path),
						logger.String("method", c.Request().Method),
						logger.Any("panic", r),
						logger.String("stack", string(debug.Stack())),
					)
					err = utils.InternalServerErrorResponse(c, fmt.Sprintf("internal error: %v", r))
				}
			}()
			return next(c)
		}
	}
}
