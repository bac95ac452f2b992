package routes

import (
	"portfolio-backend/handlers/portfolio"

	"github.com/gin-gonic/gin"
)

func PortfolioRoutes(r *gin.Engine) {
	group := r.Group("/api/portfolio")
	group.GET("/personal", portfolio.GetPersonal)
	group.GET("/projects", portfolio.GetProjects)
	group.GET("/projects/featured", portfolio.GetFeaturedProjects)
	group.GET("/tech-stack", portfolio.GetTechStack)
	group.GET("/stats", portfolio.GetStats)
}
