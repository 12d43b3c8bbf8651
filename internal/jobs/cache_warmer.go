package jobs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"

	"github.com/osu-ultimate/tournament-console/internal/domain/match"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
	"github.com/osu-ultimate/tournament-console/internal/platform/logging"
)

const cacheWarmerJobName = "cache-warmer"

type tournamentLister interface {
	List(ctx context.Context) ([]tournament.Tournament, error)
}

type matchRefresher interface {
	Refresh(ctx context.Context, tournamentID int64) ([]match.Match, error)
}

type fieldRefresher interface {
	Refresh(ctx context.Context, tournamentID int64) ([]tournament.Field, error)
}

type WarmerConfig struct {
	Interval time.Duration
	Workers  int
	// RunTimeout bounds one pass. Defaults to the interval.
	RunTimeout time.Duration
}

// WarmResult summarizes one pass over the live tournaments.
type WarmResult struct {
	Tournaments int
	Refreshed   int
	Failed      int
	Duration    time.Duration
}

// CacheWarmer periodically refetches the queries that change while a
// tournament is being played, so readers rarely hit a stale entry.
type CacheWarmer struct {
	cfg         WarmerConfig
	tournaments tournamentLister
	matches     matchRefresher
	fields      fieldRefresher
	logger      *logging.Logger

	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

type warmTask struct {
	name         string
	tournamentID int64
	run          func(ctx context.Context, tournamentID int64) error
}

func NewCacheWarmer(
	cfg WarmerConfig,
	tournaments tournamentLister,
	matches matchRefresher,
	fields fieldRefresher,
	logger *logging.Logger,
) (*CacheWarmer, error) {
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("cache warmer interval must be positive, got %s", cfg.Interval)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.RunTimeout <= 0 {
		cfg.RunTimeout = cfg.Interval
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &CacheWarmer{
		cfg:         cfg,
		tournaments: tournaments,
		matches:     matches,
		fields:      fields,
		logger:      logger.With("job_name", cacheWarmerJobName),
	}, nil
}

// Start schedules the warmer. The first pass runs immediately.
func (w *CacheWarmer) Start() error {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					w.logger.Error("scheduler job panicked",
						"job_id", jobID.String(),
						"panic", recoverData,
					)
				}),
			),
		),
	)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(w.cfg.Interval),
		gocron.NewTask(w.tick),
		gocron.WithName(cacheWarmerJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return fmt.Errorf("register cache warmer job: %w", err)
	}

	w.scheduler = sched
	sched.Start()
	w.logger.Info("cache warmer started", "interval", w.cfg.Interval, "workers", w.cfg.Workers)
	return nil
}

func (w *CacheWarmer) Stop() error {
	if w.scheduler == nil {
		return nil
	}
	w.stopOnce.Do(func() {
		w.stopErr = w.scheduler.Shutdown()
		w.logger.Info("cache warmer stopped")
	})
	return w.stopErr
}

func (w *CacheWarmer) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.RunTimeout)
	defer cancel()

	result, err := w.RunOnce(ctx)
	if err != nil {
		w.logger.WarnContext(ctx, "cache warmer run failed", "error", err)
		return
	}
	w.logger.DebugContext(ctx, "cache warmer run finished",
		"tournaments", result.Tournaments,
		"refreshed", result.Refreshed,
		"failed", result.Failed,
		"duration_ms", result.Duration.Milliseconds(),
	)
}

// RunOnce refreshes matches and fields of every live tournament. Individual
// refresh failures are counted, not returned.
func (w *CacheWarmer) RunOnce(ctx context.Context) (WarmResult, error) {
	started := time.Now()

	items, err := w.tournaments.List(ctx)
	if err != nil {
		return WarmResult{}, fmt.Errorf("list tournaments: %w", err)
	}

	tasks := make([]warmTask, 0, len(items)*2)
	live := 0
	for _, item := range items {
		if item.Status != tournament.StatusLive {
			continue
		}
		live++
		tasks = append(tasks,
			warmTask{name: "matches", tournamentID: item.ID, run: w.refreshMatches},
			warmTask{name: "fields", tournamentID: item.ID, run: w.refreshFields},
		)
	}

	result := WarmResult{Tournaments: live}
	if len(tasks) == 0 {
		result.Duration = time.Since(started)
		return result, nil
	}

	pool, err := ants.NewPool(min(w.cfg.Workers, len(tasks)))
	if err != nil {
		return WarmResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		refreshed atomic.Int32
		failed    atomic.Int32
		workers   sync.WaitGroup
	)
	for _, task := range tasks {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := task.run(ctx, task.tournamentID); err != nil {
				failed.Add(1)
				w.logger.WarnContext(ctx, "cache refresh failed",
					"query", task.name,
					"tournament_id", task.tournamentID,
					"error", err,
				)
				return
			}
			refreshed.Add(1)
		}); err != nil {
			workers.Done()
			failed.Add(1)
			w.logger.WarnContext(ctx, "submit cache refresh", "query", task.name, "error", err)
		}
	}
	workers.Wait()

	result.Refreshed = int(refreshed.Load())
	result.Failed = int(failed.Load())
	result.Duration = time.Since(started)
	return result, nil
}

func (w *CacheWarmer) refreshMatches(ctx context.Context, tournamentID int64) error {
	_, err := w.matches.Refresh(ctx, tournamentID)
	return err
}

func (w *CacheWarmer) refreshFields(ctx context.Context, tournamentID int64) error {
	_, err := w.fields.Refresh(ctx, tournamentID)
	return err
}
