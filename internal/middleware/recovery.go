package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/username/prazo-calc/internal/api/dto"
	"go.uber.org/zap"
)

// Recovery turns a panic in a handler into a 500 JSON response
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("request_id", GetRequestID(c)),
					zap.String("panic", fmt.Sprintf("%v", r)),
					zap.ByteString("stack", debug.Stack()))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewErrorResponse("internal_error", "Internal server error", GetRequestID(c)))
			}
		}()

		c.Next()
	}
}
