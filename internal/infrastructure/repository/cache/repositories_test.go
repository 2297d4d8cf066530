package cache

import (
	"context"
	"testing"
	"time"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	"github.com/graphiclux/kicker-league/internal/infrastructure/repository/memory"
	basecache "github.com/graphiclux/kicker-league/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueRepository_CachesMisses(t *testing.T) {
	t.Parallel()

	next := &countingGetByID{LeagueRepository: memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedLeagueTeams())}
	repo := NewLeagueRepository(next, basecache.NewStore(time.Minute))

	for i := 0; i < 3; i++ {
		_, exists, err := repo.GetByID(context.Background(), "missing")
		require.NoError(t, err)
		assert.False(t, exists)
	}
	assert.Equal(t, 1, next.calls)
}

func TestScoreRepository_UpsertInvalidatesLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewScoreRepository(memory.NewScoreRepository(), basecache.NewStore(time.Minute))

	require.NoError(t, repo.Upsert(ctx, score.Score{LeagueID: "l1", LeagueTeamID: "t1", Season: 2025, Week: 1, Points: 2}))
	totals, err := repo.ListSeasonTotals(ctx, "l1", 2025)
	require.NoError(t, err)
	assert.Equal(t, []score.Total{{LeagueTeamID: "t1", Points: 2}}, totals)

	require.NoError(t, repo.Upsert(ctx, score.Score{LeagueID: "l1", LeagueTeamID: "t1", Season: 2025, Week: 2, Points: 3}))
	totals, err = repo.ListSeasonTotals(ctx, "l1", 2025)
	require.NoError(t, err)
	assert.Equal(t, []score.Total{{LeagueTeamID: "t1", Points: 5}}, totals)

	weeks, err := repo.ListWeeks(ctx, "l1", 2025)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, weeks)
}

type countingGetByID struct {
	*memory.LeagueRepository
	calls int
}

func (r *countingGetByID) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	r.calls++
	return r.LeagueRepository.GetByID(ctx, leagueID)
}
