package health

import (
	"time"

	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// HandleHealth answers the liveness probe
// @Summary Health check
// @Description Liveness probe for the API
// @Tags health
// @Produce json
// @Success 200 {object} utils.Response
// @Router /api/health [get]
func (h *Handler) HandleHealth(c *gin.Context) {
	utils.SendSuccess(c, 200, "Portfolio API is running", gin.H{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
