package postgres

import (
	"database/sql"
	"time"
)

type kickPlayTableModel struct {
	ID         int64         `db:"id"`
	Season     int           `db:"season"`
	Week       int           `db:"week"`
	GameID     string        `db:"game_id"`
	Possession string        `db:"possession"`
	PlayType   string        `db:"play_type"`
	Result     string        `db:"result"`
	Distance   sql.NullInt32 `db:"distance"`
	Blocked    bool          `db:"blocked"`
}

type kickPlayInsertModel struct {
	Season     int           `db:"season"`
	Week       int           `db:"week"`
	GameID     string        `db:"game_id"`
	Possession string        `db:"possession"`
	PlayType   string        `db:"play_type"`
	Result     string        `db:"result"`
	Distance   sql.NullInt32 `db:"distance"`
	Blocked    bool          `db:"blocked"`
}

type scoreTableModel struct {
	LeagueID     string `db:"league_id"`
	LeagueTeamID string `db:"league_team_id"`
	Season       int    `db:"season"`
	Week         int    `db:"week"`
	Points       int    `db:"points"`
	Breakdown    []byte `db:"breakdown"`
}

// Breakdown is sent as text so postgres casts it into the jsonb column.
type scoreUpsertModel struct {
	LeagueID     string `db:"league_id"`
	LeagueTeamID string `db:"league_team_id"`
	Season       int    `db:"season"`
	Week         int    `db:"week"`
	Points       int    `db:"points"`
	Breakdown    string `db:"breakdown"`
}

type scoreTotalModel struct {
	LeagueTeamID string `db:"league_team_id"`
	Points       int    `db:"points"`
}

type leagueTableModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	SeasonYear int       `db:"season_year"`
	MaxTeams   int       `db:"max_teams"`
	CreatedAt  time.Time `db:"created_at"`
}

type leagueTeamTableModel struct {
	ID         string         `db:"id"`
	LeagueID   string         `db:"league_id"`
	NFLTeam    string         `db:"nfl_team"`
	DraftSlot  sql.NullInt32  `db:"draft_slot"`
	CreatedAt  time.Time      `db:"created_at"`
	OwnerID    string         `db:"owner_id"`
	OwnerName  sql.NullString `db:"owner_name"`
	OwnerEmail string         `db:"owner_email"`
}

type nflTeamTableModel struct {
	Abbr string `db:"abbr"`
	Name string `db:"name"`
}
