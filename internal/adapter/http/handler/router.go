package handler

import (
	"webhook-reconciler/internal/adapter/http/middleware"
	"webhook-reconciler/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Processor      ports.NotificationProcessor
	SigSvc         ports.SignatureService
	HMACKey        string
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	notifications := NewNotificationHandler(deps.Processor, deps.SigSvc, deps.HMACKey, deps.Logger)
	v1 := r.Group("/api/v1")
	v1.POST("/notifications", notifications.Receive)

	return r
}
