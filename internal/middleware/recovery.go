package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Osama-oo1909415/hall-booking/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery превращает панику обработчика в 500 с тем же телом ошибки, что и у API.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			c.Set("error", fmt.Sprint(rec))
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "handler panicked",
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.Request.URL.Path),
				logger.Any("panic", rec),
				logger.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "internal server error",
				Code:  "internal",
			})
		}()

		c.Next()
	}
}
