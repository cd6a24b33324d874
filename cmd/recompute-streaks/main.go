// Command recompute-streaks refreshes the cached streak of every user whose
// last entry is older than yesterday, so stored counts do not keep reporting a
// broken streak. It is intended to be invoked by an external cron job shortly
// after local midnight.
//
// Exit codes: 0 = success, 1 = error, 2 = invalid flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres"
	journalrepo "github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres/journal"
	userrepo "github.com/heartmarshall/voicejournal-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/voicejournal-backend/internal/app"
	"github.com/heartmarshall/voicejournal-backend/internal/config"
	"github.com/heartmarshall/voicejournal-backend/internal/service/streak"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the exit code, so deferred cleanup (pool close, context
// cancel) happens before the process exits.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("recompute-streaks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	batch := fs.Int("batch", 500, "users fetched per page")
	timeout := fs.Duration("timeout", 10*time.Minute, "overall run timeout")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if *batch <= 0 || *timeout <= 0 {
		fmt.Fprintln(stderr, "recompute-streaks: -batch and -timeout must be positive")
		return exitUsage
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "recompute-streaks: load config: %v\n", err)
		return exitError
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		return exitError
	}
	defer pool.Close()

	users := userrepo.New(pool)
	svc := streak.NewService(logger, journalrepo.New(pool), users, postgres.NewTxManager(pool), nil, cfg.App.Location)

	start := time.Now()
	refreshed, err := svc.RecomputeStale(ctx, *batch)
	if err != nil {
		logger.Error("recompute streaks failed",
			slog.String("error", err.Error()),
			slog.Int("refreshed", refreshed),
		)
		return exitError
	}

	logger.Info("recompute streaks completed",
		slog.Int("refreshed", refreshed),
		slog.Duration("took", time.Since(start)),
	)
	return exitOK
}
