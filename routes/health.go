package routes

import (
	"portfolio-backend/handlers/health"

	"github.com/gin-gonic/gin"
)

func HealthRoutes(r *gin.Engine) {
	handler := health.New()
	r.GET("/api/health", handler.HandleHealth)
}
