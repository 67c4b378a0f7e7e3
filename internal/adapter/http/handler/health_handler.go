package handler

import (
	"context"
	"net/http"
	"time"

	"webhook-reconciler/internal/core/ports"
	"webhook-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
)

// healthPingTimeout bounds each dependency ping so a hung backend cannot
// stall the health endpoint.
const healthPingTimeout = 2 * time.Second

type healthReport struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthCheck returns a handler that pings every dependency. Any failing
// dependency reports the service as degraded with 503.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps := make(map[string]dependencyStatus, len(checkers))
		healthy := true

		for _, checker := range checkers {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
			err := checker.Ping(ctx)
			cancel()

			if err != nil {
				deps[checker.Name()] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
				healthy = false
				continue
			}
			deps[checker.Name()] = dependencyStatus{Status: "healthy"}
		}

		if !healthy {
			response.JSON(c, http.StatusServiceUnavailable, healthReport{Status: "degraded", Dependencies: deps})
			return
		}
		response.OK(c, healthReport{Status: "healthy", Dependencies: deps})
	}
}
