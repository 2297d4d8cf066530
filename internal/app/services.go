package app

import (
	"context"
	"fmt"

	"github.com/graphiclux/kicker-league/external/nflverse"
	"github.com/graphiclux/kicker-league/external/sleeper"
	"github.com/graphiclux/kicker-league/internal/config"
	"github.com/graphiclux/kicker-league/internal/domain/kickplay"
	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	cacherepo "github.com/graphiclux/kicker-league/internal/infrastructure/repository/cache"
	"github.com/graphiclux/kicker-league/internal/infrastructure/repository/memory"
	"github.com/graphiclux/kicker-league/internal/infrastructure/repository/postgres"
	"github.com/graphiclux/kicker-league/internal/platform/cache"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/graphiclux/kicker-league/internal/usecase"
	"github.com/jonboulle/clockwork"
)

type repositories struct {
	plays    kickplay.Repository
	leagues  league.Repository
	scores   score.Repository
	nflTeams nflteam.Repository
}

// Services is the usecase layer shared by the API and the importer CLI.
type Services struct {
	Calendar    usecase.SeasonCalendar
	PlayImport  *usecase.PlayImportService
	WeeklyScore *usecase.WeeklyScoreService
	Leaderboard *usecase.LeaderboardService
	Reference   *usecase.ReferenceService
	Kickers     *usecase.KickerService
	FeedImport  *usecase.FeedImportService

	closers []func() error
}

// Close releases the storage held by the services.
func (s *Services) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}

func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	clock := clockwork.NewRealClock()
	services := &Services{
		Calendar: usecase.NewSeasonCalendar(cfg.SeasonYear, cfg.SeasonStart, cfg.SeasonRegularWeeks, clock),
	}

	repos, err := services.openRepositories(ctx, cfg, logger)
	if err != nil {
		_ = services.Close()
		return nil, err
	}
	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.nflTeams = cacherepo.NewNFLTeamRepository(repos.nflTeams, store)
		repos.scores = cacherepo.NewScoreRepository(repos.scores, store)
	}

	services.PlayImport = usecase.NewPlayImportService(repos.plays, logger.Named("play_import"))
	services.WeeklyScore = usecase.NewWeeklyScoreService(repos.plays, repos.leagues, repos.scores, services.Calendar, logger.Named("weekly_score"))
	services.Leaderboard = usecase.NewLeaderboardService(repos.leagues, repos.scores, repos.nflTeams)
	services.Reference = usecase.NewReferenceService(repos.leagues, repos.nflTeams)

	feed, err := nflverse.NewClient(nflverse.ClientConfig{
		Sources:        cfg.NFLVerseSources,
		Timeout:        cfg.NFLVerseTimeout,
		Logger:         logger.Named("nflverse"),
		CircuitBreaker: cfg.NFLVerseCircuit,
		Clock:          clock,
	})
	if err != nil {
		_ = services.Close()
		return nil, fmt.Errorf("build nflverse client: %w", err)
	}
	services.FeedImport = usecase.NewFeedImportService(feed, services.PlayImport, logger.Named("feed_import"))

	if cfg.SleeperEnabled {
		provider, err := sleeper.NewClient(sleeper.ClientConfig{
			BaseURL:        cfg.SleeperBaseURL,
			Timeout:        cfg.SleeperTimeout,
			Logger:         logger.Named("sleeper"),
			CircuitBreaker: cfg.SleeperCircuit,
			Clock:          clock,
		})
		if err != nil {
			_ = services.Close()
			return nil, fmt.Errorf("build sleeper client: %w", err)
		}
		services.Kickers = usecase.NewKickerService(provider, cache.NewStoreWithClock(cfg.KickersCacheTTL, clock), services.Calendar)
	} else {
		logger.Info("kicker feed disabled", "reason", "SLEEPER_ENABLED=false")
	}

	return services, nil
}

func (s *Services) openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		var leagues []league.League
		var teams []league.Team
		if cfg.SeedDemoLeague {
			leagues = memory.SeedLeagues()
			teams = memory.SeedLeagueTeams()
		}
		logger.Info("storage ready", "driver", config.StorageDriverMemory, "demo_league", cfg.SeedDemoLeague)
		return repositories{
			plays:    memory.NewKickPlayRepository(),
			leagues:  memory.NewLeagueRepository(leagues, teams),
			scores:   memory.NewScoreRepository(),
			nflTeams: memory.NewNFLTeamRepository(memory.SeedNFLTeams()),
		}, nil
	default:
		db, err := OpenDatabase(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		s.closers = append(s.closers, db.Close)

		if err := postgres.BootstrapSeed(ctx, db, cfg.SeedDemoLeague); err != nil {
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}
		logger.Info("storage ready", "driver", config.StorageDriverPostgres, "database", databaseName(cfg.DBURL))
		return repositories{
			plays:    postgres.NewKickPlayRepository(db),
			leagues:  postgres.NewLeagueRepository(db),
			scores:   postgres.NewScoreRepository(db),
			nflTeams: postgres.NewNFLTeamRepository(db),
		}, nil
	}
}
