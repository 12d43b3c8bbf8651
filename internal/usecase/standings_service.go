package usecase

import (
	"context"
	"sort"

	"github.com/sourcegraph/conc/pool"

	"github.com/osu-ultimate/tournament-console/internal/domain/standing"
	"github.com/osu-ultimate/tournament-console/internal/domain/tournament"
)

type stageSource interface {
	ListPools(ctx context.Context, tournamentSlug string) ([]tournament.Pool, error)
	GetCrossPool(ctx context.Context, tournamentID int64) (tournament.CrossPool, bool, error)
	ListBrackets(ctx context.Context, tournamentSlug string) ([]tournament.Bracket, error)
	ListPositionPools(ctx context.Context, tournamentID int64) ([]tournament.Pool, error)
}

// PoolTable is a pool with its ranked rows.
type PoolTable struct {
	Pool tournament.Pool
	Rows []standing.Row
}

// Standings is the standings page of a tournament.
type Standings struct {
	Tournament    tournament.Tournament
	Teams         standing.Lookup
	Pools         []PoolTable
	CrossPool     *tournament.CrossPool
	Brackets      []tournament.Bracket
	PositionPools []PoolTable
	Spirit        []tournament.SpiritRank
}

type StandingsService struct {
	tournaments tournamentSource
	stages      stageSource
}

func NewStandingsService(tournaments tournamentSource, stages stageSource) *StandingsService {
	return &StandingsService{
		tournaments: tournaments,
		stages:      stages,
	}
}

func (s *StandingsService) Get(ctx context.Context, slug string) (Standings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Get")
	defer span.End()

	t, err := s.tournaments.GetBySlug(ctx, slug)
	if err != nil {
		return Standings{}, err
	}

	var (
		pools         []tournament.Pool
		positionPools []tournament.Pool
		brackets      []tournament.Bracket
		crossPool     tournament.CrossPool
		hasCrossPool  bool
	)
	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		pools, err = s.stages.ListPools(ctx, t.Slug)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		crossPool, hasCrossPool, err = s.stages.GetCrossPool(ctx, t.ID)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		brackets, err = s.stages.ListBrackets(ctx, t.Slug)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		positionPools, err = s.stages.ListPositionPools(ctx, t.ID)
		return err
	})
	if err := p.Wait(); err != nil {
		return Standings{}, err
	}

	out := Standings{
		Tournament:    t,
		Teams:         standing.TeamLookup(t.Teams),
		Pools:         rankPools(pools),
		Brackets:      append([]tournament.Bracket(nil), brackets...),
		PositionPools: rankPools(positionPools),
		Spirit:        standing.SpiritTable(t.SpiritRanking),
	}
	if hasCrossPool {
		out.CrossPool = &crossPool
	}
	sort.SliceStable(out.Brackets, func(i, j int) bool {
		return out.Brackets[i].SequenceNumber < out.Brackets[j].SequenceNumber
	})
	return out, nil
}

func rankPools(pools []tournament.Pool) []PoolTable {
	out := make([]PoolTable, 0, len(pools))
	for _, p := range pools {
		out = append(out, PoolTable{
			Pool: p,
			Rows: standing.RankPool(p.Results, p.InitialSeeding),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pool.SequenceNumber < out[j].Pool.SequenceNumber
	})
	return out
}
