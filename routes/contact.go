package routes

import (
	"portfolio-backend/handlers/contacts"
	"portfolio-backend/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func ContactRoutes(r *gin.Engine, rdb *redis.Client) {
	r.POST("/api/contact", middleware.ContactRateLimit(rdb), contacts.CreateContact)
}
