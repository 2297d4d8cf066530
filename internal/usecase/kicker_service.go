package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/graphiclux/kicker-league/internal/platform/cache"
)

const (
	kickerPosition     = "K"
	kickersCacheKey    = "kickers:current"
	unknownDepthOrder  = 999
	defaultKickerLabel = " kicker"
)

// KickerCandidate is a kicker-eligible player as listed by a roster feed.
type KickerCandidate struct {
	PlayerID           string
	FullName           string
	Position           string
	Team               string
	Active             bool
	DepthChartOrder    *int
	DepthChartPosition string
	InjuryStatus       string
	InjuryNotes        string
}

type Kicker struct {
	PlayerID     string
	Name         string
	Team         string
	InjuryStatus string
	InjuryNotes  string
}

type KickerList struct {
	Source    string
	UpdatedAt time.Time
	Kickers   []Kicker
}

type KickerProvider interface {
	Name() string
	ListPlayers(ctx context.Context) ([]KickerCandidate, error)
}

type KickerService struct {
	provider KickerProvider
	cache    *cache.Store
	calendar SeasonCalendar
}

// NewKickerService caches the provider result in store when it is non-nil.
func NewKickerService(provider KickerProvider, store *cache.Store, calendar SeasonCalendar) *KickerService {
	return &KickerService{
		provider: provider,
		cache:    store,
		calendar: calendar,
	}
}

// ListCurrentKickers returns one kicker per NFL team ordered by team.
func (s *KickerService) ListCurrentKickers(ctx context.Context) (KickerList, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.KickerService.ListCurrentKickers")
	defer span.End()

	if s.provider == nil {
		return KickerList{}, fmt.Errorf("%w: kicker provider is not configured", ErrDependencyUnavailable)
	}

	load := func(ctx context.Context) (KickerList, error) {
		players, err := s.provider.ListPlayers(ctx)
		if err != nil {
			return KickerList{}, fmt.Errorf("%w: list %s players: %v", ErrDependencyUnavailable, s.provider.Name(), err)
		}
		return KickerList{
			Source:    s.provider.Name(),
			UpdatedAt: s.calendar.Now().UTC(),
			Kickers:   pickKickers(players),
		}, nil
	}

	if s.cache == nil {
		return load(ctx)
	}
	return cache.Load(ctx, s.cache, kickersCacheKey, load)
}

func pickKickers(players []KickerCandidate) []Kicker {
	byTeam := make(map[string][]KickerCandidate)
	for _, p := range players {
		team := strings.ToUpper(strings.TrimSpace(p.Team))
		if p.Position != kickerPosition || team == "" {
			continue
		}
		p.Team = team
		byTeam[team] = append(byTeam[team], p)
	}

	out := make([]Kicker, 0, len(byTeam))
	for team, candidates := range byTeam {
		sort.SliceStable(candidates, func(i, j int) bool {
			return kickerBefore(candidates[i], candidates[j])
		})
		chosen := candidates[0]
		name := strings.TrimSpace(chosen.FullName)
		if name == "" {
			name = team + defaultKickerLabel
		}
		out = append(out, Kicker{
			PlayerID:     chosen.PlayerID,
			Name:         name,
			Team:         team,
			InjuryStatus: chosen.InjuryStatus,
			InjuryNotes:  chosen.InjuryNotes,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Team < out[j].Team
	})
	return out
}

// kickerBefore prefers the depth chart K slot, then active players, then the
// lowest depth order, then name.
func kickerBefore(a, b KickerCandidate) bool {
	aIsK, bIsK := a.DepthChartPosition == kickerPosition, b.DepthChartPosition == kickerPosition
	if aIsK != bIsK {
		return aIsK
	}
	if a.Active != b.Active {
		return a.Active
	}
	aOrder, bOrder := depthOrder(a), depthOrder(b)
	if aOrder != bOrder {
		return aOrder < bOrder
	}
	return a.FullName < b.FullName
}

func depthOrder(c KickerCandidate) int {
	if c.DepthChartOrder == nil {
		return unknownDepthOrder
	}
	return *c.DepthChartOrder
}
