package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/ports"
)

// HealthResponse is the aggregated component health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests. A degraded component (such as a
// missing API key) still answers 200; only an unhealthy one answers 503.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	results := s.healthChecker.CheckAll(c.Request.Context())
	overall := infrastructure.OverallStatus(results)

	statusCode := http.StatusOK
	if overall == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{Status: overall, Components: results})
}
