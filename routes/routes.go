package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"portfolio-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// allowedOrigins reads the comma-separated ALLOWED_ORIGINS list, falling
// back to the local dev frontend.
func allowedOrigins() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func SetupRouter(rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(utils.LogWriter()), gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-RateLimit-Bypass"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/api", func(c *gin.Context) {
		utils.SendSuccess(c, http.StatusOK, "Portfolio Backend API", gin.H{
			"version": "1.0.0",
		})
	})

	HealthRoutes(r)
	AuthRoutes(r)
	PortfolioRoutes(r)
	ContactRoutes(r, rdb)
	AdminRoutes(r)

	return r
}
