package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/db"
	_ "portfolio-backend/docs"
	"portfolio-backend/routes"
	"portfolio-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Portfolio Backend API
// @version 1.0
// @description API serving the public portfolio site and its admin panel
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token: Bearer <JWT>
func main() {
	gin.SetMode(gin.ReleaseMode)

	db.InitDB()
	db.SeedAdminUser()

	if err := utils.InitCloudinary(); err != nil {
		utils.LogError(err, "Cloudinary initialization failed; uploads and asset cleanup will not work")
	}

	r := routes.SetupRouter(newRedisClient())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		utils.LogInfo("Server listening on port " + port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.LogError(err, "Error starting the server")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.LogInfo("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		utils.LogError(err, "Error during server shutdown")
	}
	db.CloseDB()
}

// newRedisClient builds the rate-limiter backend. Without REDIS_URL the
// contact endpoint runs unlimited, which is preferable to refusing to boot.
func newRedisClient() *redis.Client {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		utils.LogInfo("REDIS_URL not set, contact rate limiting is disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		utils.LogError(err, "Invalid REDIS_URL, contact rate limiting is disabled")
		return nil
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		utils.LogError(err, "Redis unreachable at startup, the rate limiter will fail open")
	}
	return client
}
