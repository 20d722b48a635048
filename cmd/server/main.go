package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"audio-transmuter/config"
	"audio-transmuter/internal/server"
)

func main() {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	configPath := flag.String("config", "./config/config.yaml", "Path to configuration file")
	port := flag.String("port", "", "Server port (overrides configuration)")
	flag.Parse()

	if envPath := os.Getenv("TRANSMUTER_CONFIG"); envPath != "" {
		*configPath = envPath
	}

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}))
	slog.SetDefault(logger)

	if *port == "" {
		*port = cfg.Server.Port
	}

	// Create and start server
	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting audio transmuter API server", "port", *port, "format", cfg.AudioFormat)
	if err := srv.Start(*port); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
