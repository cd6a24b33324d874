package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres"
	journalrepo "github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres/journal"
	userrepo "github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/voicejournal-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/voicejournal-backend/internal/adapter/provider/openai"
	"github.com/heartmarshall/voicejournal-backend/internal/adapter/storage/supabase"
	"github.com/heartmarshall/voicejournal-backend/internal/auth"
	"github.com/heartmarshall/voicejournal-backend/internal/config"
	"github.com/heartmarshall/voicejournal-backend/internal/metrics"
	"github.com/heartmarshall/voicejournal-backend/internal/service/journal"
	"github.com/heartmarshall/voicejournal-backend/internal/service/processing"
	"github.com/heartmarshall/voicejournal-backend/internal/service/profile"
	"github.com/heartmarshall/voicejournal-backend/internal/service/stats"
	"github.com/heartmarshall/voicejournal-backend/internal/service/streak"
	"github.com/heartmarshall/voicejournal-backend/internal/service/usage"
	"github.com/heartmarshall/voicejournal-backend/internal/transport/middleware"
	"github.com/heartmarshall/voicejournal-backend/internal/transport/rest"
	"github.com/heartmarshall/voicejournal-backend/migrations"
)

const rateLimitCleanupInterval = time.Minute

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.App.Timezone),
		slog.String("analyzer", cfg.AI.Analyzer),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: connect to database: %w", err)
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrations {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("app: migrate: %w", err)
		}
	}

	m := metrics.New()
	loc := cfg.App.Location

	// Repositories
	users := userrepo.New(pool)
	entries := journalrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Outbound clients
	openaiClient := openai.NewClient(cfg.AI, logger)
	storage := supabase.NewClient(logger, cfg.Storage.URL, cfg.Storage.ServiceKey, cfg.Storage.Bucket, cfg.Storage.Timeout)

	// Services
	usageSvc := usage.NewService(logger, users, m, loc, cfg.Quota.DailyLimit)
	streakSvc := streak.NewService(logger, entries, users, tx, m, loc)
	statsSvc := stats.NewService(logger, entries, streakSvc, loc)
	journalSvc := journal.NewService(logger, entries, users, streakSvc, tx, loc)
	processingSvc := processing.NewService(logger, openaiClient, newAnalyzer(cfg.AI, openaiClient, logger), openaiClient, storage, usageSvc)
	profileSvc := profile.NewService(logger, users)

	health := rest.NewHealthHandler(rest.HealthDeps{
		DB:      pool,
		Storage: storage,
		AI:      rest.AIStatus{Analyzer: cfg.AI.Analyzer, Configured: cfg.AI.Configured()},
	}, BuildVersion())

	handlers := rest.Handlers{
		Health:     health,
		Usage:      rest.NewUsageHandler(usageSvc, streakSvc, logger),
		Stats:      rest.NewStatsHandler(statsSvc, logger),
		Processing: rest.NewProcessingHandler(processingSvc, logger),
		Journal:    rest.NewJournalHandler(journalSvc, logger),
		Profile:    rest.NewProfileHandler(profileSvc, logger),
	}

	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)

	router := rest.NewRouter(handlers, rest.RouterOptions{
		Auth:           middleware.Auth(validator, logger),
		Metrics:        middleware.Metrics(m),
		MetricsHandler: m.Handler(),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, rateLimitCleanupInterval, logger)
	defer limiter.Stop()

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      chain(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("app: http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

type completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// newAnalyzer picks the transcript analysis backend. OpenAI is the default.
func newAnalyzer(cfg config.AIConfig, fallback completer, logger *slog.Logger) completer {
	if cfg.Analyzer == config.AnalyzerAnthropic {
		return anthropic.NewAnalyzer(cfg.AnthropicAPIKey, cfg.AnthropicModel, "", cfg.Timeout, logger)
	}
	return fallback
}
