package memory

import (
	"time"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
	"github.com/graphiclux/kicker-league/internal/platform/id"
)

const DemoLeagueSeason = 2025

var (
	DemoLeagueID = id.Stable("league:demo-2025")
	seededAt     = time.Date(2025, time.August, 15, 0, 0, 0, 0, time.UTC)
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:         DemoLeagueID,
			Name:       "Kicker League Demo",
			SeasonYear: DemoLeagueSeason,
			MaxTeams:   12,
			CreatedAt:  seededAt,
		},
	}
}

func SeedOwners() []league.Owner {
	return []league.Owner{
		{ID: id.Stable("user:avery"), Name: "Avery", Email: "avery@example.com"},
		{ID: id.Stable("user:blake"), Name: "Blake", Email: "blake@example.com"},
		{ID: id.Stable("user:casey"), Name: "Casey", Email: "casey@example.com"},
		{ID: id.Stable("user:devon"), Name: "Devon", Email: "devon@example.com"},
	}
}

// SeedLeagueTeams claims BUF, KC, DEN and an undrafted PHI in the demo league.
func SeedLeagueTeams() []league.Team {
	owners := SeedOwners()
	slot := func(v int) *int { return &v }

	return []league.Team{
		{ID: id.Stable("team:demo-2025:BUF"), LeagueID: DemoLeagueID, NFLTeam: "BUF", DraftSlot: slot(1), Owner: owners[0], CreatedAt: seededAt},
		{ID: id.Stable("team:demo-2025:KC"), LeagueID: DemoLeagueID, NFLTeam: "KC", DraftSlot: slot(2), Owner: owners[1], CreatedAt: seededAt.Add(time.Minute)},
		{ID: id.Stable("team:demo-2025:DEN"), LeagueID: DemoLeagueID, NFLTeam: "DEN", DraftSlot: slot(3), Owner: owners[2], CreatedAt: seededAt.Add(2 * time.Minute)},
		{ID: id.Stable("team:demo-2025:PHI"), LeagueID: DemoLeagueID, NFLTeam: "PHI", Owner: owners[3], CreatedAt: seededAt.Add(3 * time.Minute)},
	}
}

func SeedNFLTeams() []nflteam.Team {
	return nflteam.Catalog()
}
