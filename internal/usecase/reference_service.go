package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
)

type LeagueDetails struct {
	League league.League
	Teams  []league.Team
}

// ReferenceService serves the read-only league and NFL team data the scoring
// pipeline joins against.
type ReferenceService struct {
	leagueRepo  league.Repository
	nflTeamRepo nflteam.Repository
}

func NewReferenceService(leagueRepo league.Repository, nflTeamRepo nflteam.Repository) *ReferenceService {
	return &ReferenceService{
		leagueRepo:  leagueRepo,
		nflTeamRepo: nflTeamRepo,
	}
}

func (s *ReferenceService) ListNFLTeams(ctx context.Context) ([]nflteam.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.ListNFLTeams")
	defer span.End()

	items, err := s.nflTeamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nfl teams: %w", err)
	}

	out := append([]nflteam.Team(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Abbr < out[j].Abbr
	})
	return out, nil
}

func (s *ReferenceService) GetLeague(ctx context.Context, leagueID string) (LeagueDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReferenceService.GetLeague")
	defer span.End()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return LeagueDetails{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return LeagueDetails{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return LeagueDetails{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.leagueRepo.ListTeams(ctx, leagueID)
	if err != nil {
		return LeagueDetails{}, fmt.Errorf("list league teams: %w", err)
	}

	return LeagueDetails{League: item, Teams: teams}, nil
}
