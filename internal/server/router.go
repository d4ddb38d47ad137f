package server

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Setup creates and configures the Gin router
func Setup(h *Handler, log *zap.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(RequestID())
	router.Use(Logger(log))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(Recovery(log))

	router.GET("/health", h.Health)
	router.GET("/analyze", h.Analyze)

	return router
}
