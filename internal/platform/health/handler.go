package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lydiaandcrim/wyshdrop-backend/internal/platform/database"
)

// Healthz reports liveness. Redis health is the gate; the SQL store is
// opened at startup and a lost connection surfaces per-request.
func Healthz(c *gin.Context) {
	if !database.IsRedisHealthy() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
