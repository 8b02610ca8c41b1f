package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/intereco/gaia/internal/adapter/llm"
	"github.com/intereco/gaia/internal/composer"
	"github.com/intereco/gaia/internal/config"
	"github.com/intereco/gaia/internal/history"
	"github.com/intereco/gaia/internal/judge"
	"github.com/intereco/gaia/internal/knowledge"
	"github.com/intereco/gaia/internal/prompt"
	"github.com/intereco/gaia/internal/repository"
	"github.com/intereco/gaia/internal/router"
	"github.com/intereco/gaia/internal/service"
	"github.com/intereco/gaia/internal/specialist"
	"github.com/intereco/gaia/internal/tools"
	transport "github.com/intereco/gaia/internal/transport/http"
	"github.com/intereco/gaia/policy"
)

func main() {
	// Load .env if present; real environment wins.
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting gaia",
		zap.Int("http_port", cfg.HTTPPort),
		zap.String("database", cfg.DatabaseURL),
		zap.String("model", cfg.Model),
		zap.String("fast_model", cfg.FastModel),
	)

	ctx := context.Background()

	// Initialize form store
	formStore, err := repository.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize form store", zap.Error(err))
	}
	defer formStore.Close()

	// Initialize FAQ index
	faqIndex, err := knowledge.NewIndex(logger)
	if err != nil {
		logger.Fatal("failed to initialize faq index", zap.Error(err))
	}
	defer faqIndex.Close()
	passages, err := faqIndex.IngestFile(cfg.FAQPath)
	if err != nil {
		logger.Fatal("failed to ingest faq file", zap.Error(err))
	}
	logger.Info("faq index ready", zap.Int("passages", passages))

	// Initialize moderation pre-filter
	banned, err := policy.LoadBannedWords(cfg.BadWordsPath)
	if err != nil {
		logger.Fatal("failed to load banned words", zap.Error(err))
	}
	prefilter, err := policy.NewEngine(ctx, banned)
	if err != nil {
		logger.Fatal("failed to initialize policy engine", zap.Error(err))
	}
	logger.Info("moderation pre-filter ready", zap.Int("banned_terms", len(banned)))

	// Initialize completers
	creative, fast, err := llm.NewCompleters(ctx, llm.Options{
		APIKey:    cfg.GeminiAPIKey,
		Model:     cfg.Model,
		FastModel: cfg.FastModel,
		Timeout:   cfg.LLMTimeout,
	})
	if err != nil {
		logger.Fatal("failed to initialize completers", zap.Error(err))
	}

	// Initialize service
	svc := service.New(
		history.NewMemoryStore(),
		prefilter,
		router.New(fast, prompt.Persona),
		specialist.NewCarbono(creative, prompt.Persona),
		specialist.NewDiagnostico(creative, tools.NewFormRegistry(formStore), prompt.Persona, logger),
		specialist.NewFAQ(creative, faqIndex, prompt.Persona),
		judge.New(fast),
		composer.New(fast, prompt.Persona),
		logger,
	)

	// Create HTTP server
	server := transport.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	logger.Info("gaia started", zap.Int("port", cfg.HTTPPort))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down gaia")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("failed to shut down server gracefully", zap.Error(err))
	}

	logger.Info("gaia stopped")
}

func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
