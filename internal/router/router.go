// Package router sets up HTTP routes for the local audio storage API.
package router

import (
	"net/http"

	_ "audiocheck/swagger" // Import generated swagger docs

	"audiocheck/internal/handler"
	"audiocheck/internal/middleware"
	"audiocheck/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AudioHandler *handler.AudioHandler
	// Middleware runs before every route, after recovery.
	Middleware []gin.HandlerFunc
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	validator.RegisterCustomValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	if gin.Mode() != gin.TestMode {
		r.Use(gin.Logger())
	}
	r.Use(middleware.CORS())
	r.Use(cfg.Middleware...)

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	audio := r.Group("/audio/user/:user_id/phrase/:phrase_id")
	{
		audio.POST("", cfg.AudioHandler.Upload)
		audio.GET("/:audio_format", cfg.AudioHandler.Download)
	}

	return r
}
