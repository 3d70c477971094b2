package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AI2HU/mongoping/internal/db"
	"github.com/AI2HU/mongoping/internal/probe"
)

// HealthData is returned on a successful check
type HealthData struct {
	ID         string          `json:"id"`
	Status     string          `json:"status"`
	Target     string          `json:"target"`
	Role       string          `json:"role"`
	DurationMS int64           `json:"duration_ms"`
	Hello      *db.HelloResult `json:"hello,omitempty"`
}

// healthCheck handles GET /health and GET /api/v1/health
func (s *Server) healthCheck(c *gin.Context) {
	res := probe.Run(c.Request.Context(), s.newChecker(), s.uri, nil)
	c.Header("X-Check-Id", res.ID)

	if !res.OK {
		s.errorResponse(c, http.StatusServiceUnavailable, res.Line())
		return
	}

	s.successResponse(c, HealthData{
		ID:         res.ID,
		Status:     "healthy",
		Target:     res.Target,
		Role:       res.Hello.Role(),
		DurationMS: res.Duration.Milliseconds(),
		Hello:      res.Hello,
	})
}
