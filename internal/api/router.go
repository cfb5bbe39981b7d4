package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/username/prazo-calc/internal/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a gin engine with middlewares and routes registered
func NewRouter(handler *Handler, requestTimeout time.Duration, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.Timeout(requestTimeout),
	)

	router.GET("/healthz", handler.Health)
	router.GET("/status", handler.Status)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/prazos", handler.Calculate)
		v1.POST("/prazos/pdf", handler.CalculatePDF)
		v1.GET("/feriados/:year", handler.Holidays)
	}

	return router
}
