package app

import (
	"log/slog"

	"PlanSync/pkg/logger"
	"PlanSync/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine(l *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		metrics.GinMiddleware("/metrics", "/health/live", "/health/ready"),
		logger.GinBodyLogger(l),
		gin.Recovery(),
	)
	return engine
}
