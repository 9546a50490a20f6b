// Command mockserver serves the audio storage API from memory so the
// runner can be tried locally. It does not transcode.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"audiocheck/internal/config"
	"audiocheck/internal/handler"
	"audiocheck/internal/repository"
	"audiocheck/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadServer()
	log.Println("Configuration loaded")

	gin.SetMode(cfg.GinMode)

	// Repository layer
	audioRepo := repository.NewMemoryAudioRepository()

	// Handler layer
	audioHandler := handler.NewAudioHandler(audioRepo)

	r := router.Setup(&router.Config{
		AudioHandler: audioHandler,
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if count, err := audioRepo.Count(shutdownCtx); err == nil {
		log.Printf("Served %d stored upload(s)", count)
	}

	log.Println("Server shutdown complete")
}
