package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osu-ultimate/tournament-console/external/osuapi"
	"github.com/osu-ultimate/tournament-console/internal/config"
	"github.com/osu-ultimate/tournament-console/internal/interfaces/httpapi"
	"github.com/osu-ultimate/tournament-console/internal/jobs"
	"github.com/osu-ultimate/tournament-console/internal/platform/cache"
	idgen "github.com/osu-ultimate/tournament-console/internal/platform/id"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
	"github.com/osu-ultimate/tournament-console/internal/platform/resilience"
	"github.com/osu-ultimate/tournament-console/internal/usecase"
)

// App is the assembled process: the public HTTP server plus background jobs.
type App struct {
	Server  *http.Server
	Queries *cache.QueryCache
	warmer  *jobs.CacheWarmer
	logger  *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	client, err := osuapi.NewClient(osuapi.ClientConfig{
		BaseURL: cfg.OSUAPIBaseURL,
		Timeout: cfg.OSUAPITimeout,
		Logger:  logger.Named("osuapi"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.OSUAPICircuitEnabled,
			FailureThreshold: cfg.OSUAPICircuitFailureCount,
			OpenTimeout:      cfg.OSUAPICircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.OSUAPICircuitHalfOpenMaxReq,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("build osu api client: %w", err)
	}

	queryLogger := logger.Named("queries")
	queries := cache.New(cache.Config{
		StaleTime:  cfg.QueryStaleTime,
		GCTime:     cfg.QueryGCTime,
		MaxEntries: cfg.QueryMaxEntries,
		Retry: resilience.RetryConfig{
			MaxRetries: cfg.QueryMaxRetries,
			BaseDelay:  cfg.QueryRetryBaseDelay,
			MaxDelay:   cfg.QueryRetryMaxDelay,
		},
	},
		cache.WithLogger(queryLogger),
		cache.WithRetryHook(func(key cache.Key, attempt int, err error, wait time.Duration) {
			queryLogger.Warn("query retry scheduled",
				"key", key.String(),
				"attempt", attempt,
				"wait", wait,
				"error", err,
			)
		}),
	)

	tournamentRepo := osuapi.NewTournamentRepository(client)
	fieldRepo := osuapi.NewFieldRepository(client)
	stageRepo := osuapi.NewStageRepository(client)
	matchRepo := osuapi.NewMatchRepository(client)
	teamRepo := osuapi.NewTeamRepository(client)
	playerRepo := osuapi.NewPlayerRepository(client)
	userRepo := osuapi.NewUserRepository(client)

	tournaments := usecase.NewTournamentService(tournamentRepo, queries)
	matches := usecase.NewMatchService(matchRepo, queries)
	fields := usecase.NewFieldService(fieldRepo, queries)
	stages := usecase.NewStageService(stageRepo, queries)

	handler := httpapi.NewHandler(httpapi.Services{
		Tournaments: tournaments,
		Schedule:    usecase.NewScheduleService(tournaments, matches, fields),
		Standings:   usecase.NewStandingsService(tournaments, stages),
		Matches:     matches,
		Fields:      fields,
		Stages:      stages,
		Teams:       usecase.NewTeamService(teamRepo, playerRepo, matches, queries),
		Players:     usecase.NewPlayerService(playerRepo, queries),
		Auth:        usecase.NewAuthService(userRepo, queries, logger.Named("auth")),
	}, logger)

	router := httpapi.NewRouter(handler, logger, idgen.NewUUIDGenerator(), httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		ConsoleToken:       cfg.ConsoleToken,
	})

	app := &App{
		Server: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
		},
		Queries: queries,
		logger:  logger,
	}

	if cfg.WarmerEnabled {
		app.warmer, err = jobs.NewCacheWarmer(jobs.WarmerConfig{
			Interval: cfg.WarmerInterval,
			Workers:  cfg.WarmerWorkers,
		}, tournaments, matches, fields, logger.Named("jobs"))
		if err != nil {
			return nil, fmt.Errorf("build cache warmer: %w", err)
		}
	}

	return app, nil
}

// Run serves HTTP until ctx is done, then shuts everything down within
// shutdownTimeout.
func (a *App) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	if a.warmer != nil {
		if err := a.warmer.Start(); err != nil {
			return fmt.Errorf("start cache warmer: %w", err)
		}
	} else {
		a.logger.Info("cache warmer disabled", "reason", "WARMER_ENABLED=false")
	}

	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		runErr = fmt.Errorf("http server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.warmer != nil {
		if err := a.warmer.Stop(); err != nil {
			a.logger.Warn("stop cache warmer", "error", err)
		}
	}
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, fmt.Errorf("graceful shutdown failed: %w", err))
	}
	a.logger.Info("http server stopped")

	return runErr
}
