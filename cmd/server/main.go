package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/contentaudit/contentaudit/internal/aggregator"
	"github.com/contentaudit/contentaudit/internal/api"
	"github.com/contentaudit/contentaudit/internal/fetch"
	"github.com/contentaudit/contentaudit/internal/llm"
	"github.com/contentaudit/contentaudit/internal/metrics"
	"github.com/contentaudit/contentaudit/pkg/logging"
	"github.com/contentaudit/contentaudit/pkg/tracing"
)

func main() {
	// Setup structured logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Optional .env file for local development
	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment from .env file")
	}

	logger.Info("contentaudit service initializing", "version", "1.0.0")

	// Initialize tracing
	tp, err := tracing.InitTracer("contentaudit")
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("error shutting down tracer", "error", err)
			}
		}()
		logger.Info("tracing initialized successfully")
	}

	// Get default values from environment variables, with fallbacks
	portDefault := getEnv("PORT", "8080")
	ollamaURLDefault := getEnv("OLLAMA_URL", "http://localhost:11434")
	ollamaModelDefault := getEnv("OLLAMA_MODEL", llm.DefaultModel)
	useAIDefault := getEnvBool("USE_AI", true)

	var (
		port        = flag.String("port", portDefault, "Server port (env: PORT)")
		ollamaURL   = flag.String("ollama-url", ollamaURLDefault, "Ollama API URL (env: OLLAMA_URL)")
		ollamaModel = flag.String("ollama-model", ollamaModelDefault, "Ollama model to use (env: OLLAMA_MODEL)")
		useAI       = flag.Bool("use-ai", useAIDefault, "Enable AI-assisted analyzers (env: USE_AI)")
	)
	flag.Parse()

	analysisMetrics := metrics.NewAnalysisMetrics("contentaudit")

	// Initialize the AI client. The AI-assisted analyzers degrade per call,
	// but running with AI disabled makes analysis requests fail with a
	// configuration error.
	var agg *aggregator.Aggregator
	if *useAI {
		aiClient, err := llm.New(llm.Config{
			Host:  *ollamaURL,
			Model: *ollamaModel,
		})
		if err != nil {
			logger.Error("failed to initialize AI client",
				"error", err,
				"ollama_url", *ollamaURL,
				"ollama_model", *ollamaModel,
			)
			os.Exit(1)
		}
		logger.Info("AI client initialized", "model", *ollamaModel, "url", *ollamaURL)
		agg = aggregator.New(aiClient, analysisMetrics)
	} else {
		logger.Warn("AI disabled, analysis requests will be rejected")
		agg = aggregator.New(nil, analysisMetrics)
	}

	// Initialize API handler
	apiHandler := api.NewHandler(agg, fetch.New())

	// Wrap handler with middleware chain: HTTP logging -> tracing -> handlers
	handler := logging.HTTPLoggingMiddleware(logger)(
		tracing.HTTPMiddleware("contentaudit")(apiHandler),
	)

	// Create server with extended timeouts for AI processing
	srv := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("contentaudit service starting",
			"port", *port,
			"ai_enabled", *useAI,
			"ollama_url", *ollamaURL,
			"ollama_model", *ollamaModel,
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
