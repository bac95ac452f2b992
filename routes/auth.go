package routes

import (
	"portfolio-backend/handlers/auth"
	"portfolio-backend/middleware"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	group := r.Group("/api/auth")
	group.POST("/login", auth.Login)
	group.POST("/verify", middleware.JWTAuth(), auth.Verify)
	group.POST("/logout", middleware.JWTAuth(), auth.Logout)
}
