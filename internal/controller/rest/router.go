package rest

import (
	"PlanSync/internal/controller/rest/handlers"
	"PlanSync/pkg/health"
	"PlanSync/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	product        *handlers.ProductHandler
	healthRegistry *health.Registry
}

func (r *Router) SetUp(engine *gin.Engine) {
	// Health checks (Kubernetes-style)
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(r.healthRegistry, health.DefaultTimeout))

	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	engine.POST("/webhooks/contentful/products", r.product.Webhook)
}

func NewRouter(product *handlers.ProductHandler, healthRegistry *health.Registry) *Router {
	return &Router{
		product:        product,
		healthRegistry: healthRegistry,
	}
}
