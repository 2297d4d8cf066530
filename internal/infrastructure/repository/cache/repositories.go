package cache

import (
	"context"
	"strconv"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	basecache "github.com/graphiclux/kicker-league/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := "league:id:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) ListBySeason(ctx context.Context, seasonYear int) ([]league.League, error) {
	key := "league:season:" + strconv.Itoa(seasonYear)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]league.League, error) {
		return r.next.ListBySeason(ctx, seasonYear)
	})
	if err != nil {
		return nil, err
	}
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) ListTeams(ctx context.Context, leagueID string) ([]league.Team, error) {
	key := "league:teams:" + leagueID
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]league.Team, error) {
		return r.next.ListTeams(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	return append([]league.Team(nil), items...), nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type NFLTeamRepository struct {
	next  nflteam.Repository
	cache *basecache.Store
}

func NewNFLTeamRepository(next nflteam.Repository, cache *basecache.Store) *NFLTeamRepository {
	return &NFLTeamRepository{next: next, cache: cache}
}

func (r *NFLTeamRepository) List(ctx context.Context) ([]nflteam.Team, error) {
	items, err := basecache.Load(ctx, r.cache, "nflteam:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]nflteam.Team(nil), items...), nil
}

// ScoreRepository caches leaderboard reads per league and drops them on
// every write to that league.
type ScoreRepository struct {
	next  score.Repository
	cache *basecache.Store
}

func NewScoreRepository(next score.Repository, cache *basecache.Store) *ScoreRepository {
	return &ScoreRepository{next: next, cache: cache}
}

func (r *ScoreRepository) Upsert(ctx context.Context, item score.Score) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, scorePrefix(item.LeagueID))
	return nil
}

func (r *ScoreRepository) ListByLeagueWeek(ctx context.Context, leagueID string, season, week int) ([]score.Score, error) {
	key := scorePrefix(leagueID) + "week:" + strconv.Itoa(season) + ":" + strconv.Itoa(week)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]score.Score, error) {
		return r.next.ListByLeagueWeek(ctx, leagueID, season, week)
	})
	if err != nil {
		return nil, err
	}
	return append([]score.Score(nil), items...), nil
}

func (r *ScoreRepository) ListSeasonTotals(ctx context.Context, leagueID string, season int) ([]score.Total, error) {
	key := scorePrefix(leagueID) + "totals:" + strconv.Itoa(season)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]score.Total, error) {
		return r.next.ListSeasonTotals(ctx, leagueID, season)
	})
	if err != nil {
		return nil, err
	}
	return append([]score.Total(nil), items...), nil
}

func (r *ScoreRepository) ListWeeks(ctx context.Context, leagueID string, season int) ([]int, error) {
	key := scorePrefix(leagueID) + "weeks:" + strconv.Itoa(season)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]int, error) {
		return r.next.ListWeeks(ctx, leagueID, season)
	})
	if err != nil {
		return nil, err
	}
	return append([]int(nil), items...), nil
}

func scorePrefix(leagueID string) string {
	return "score:league:" + leagueID + ":"
}
