// Package server exposes the HTTP surface of the audio transmuter:
// conversion, cookie upload, and file download endpoints.
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"audio-transmuter/config"
	"audio-transmuter/internal/converter"
	"audio-transmuter/internal/cookies"
	"audio-transmuter/internal/storage"
)

// Server handles HTTP requests for the audio transmuter.
type Server struct {
	cfg       *config.Config
	router    *gin.Engine
	store     *storage.Local
	cookies   *cookies.Provider
	converter converter.Converter
}

// New creates a new HTTP server instance.
func New(cfg *config.Config) (*Server, error) {
	store, err := storage.NewLocal(cfg.Storage.DownloadDir)
	if err != nil {
		return nil, err
	}

	server := &Server{
		cfg:       cfg,
		router:    gin.Default(),
		store:     store,
		cookies:   cookies.NewProvider(cfg.Cookies.FilePath),
		converter: converter.NewYtDlp(),
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures the HTTP routes.
func (s *Server) setupRoutes() {
	// Add CORS middleware
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	s.router.GET("/health", s.health)

	api := s.router.Group("/api")
	{
		api.POST("/convert", s.convert)
		api.POST("/upload-cookies", s.uploadCookies)
	}

	s.router.GET("/download/:filename", s.download)
}

// Start starts the HTTP server.
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}

// health godoc
// @Summary Health check
// @Tags Utility
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /health [get]
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
		"service":   "audio-transmuter",
	})
}
