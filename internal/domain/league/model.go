package league

import (
	"fmt"
	"time"
)

// League is a kicker league played over one NFL season.
type League struct {
	ID         string
	Name       string
	SeasonYear int
	MaxTeams   int
	CreatedAt  time.Time
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.SeasonYear <= 0 {
		return fmt.Errorf("league season year is required")
	}

	return nil
}

type Owner struct {
	ID    string
	Name  string
	Email string
}

// Team is a user's claimed NFL kicker slot inside one league.
type Team struct {
	ID        string
	LeagueID  string
	NFLTeam   string
	DraftSlot *int
	Owner     Owner
	CreatedAt time.Time
}
