package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/graphiclux/kicker-league/internal/domain/league"
	"github.com/graphiclux/kicker-league/internal/domain/nflteam"
	"github.com/graphiclux/kicker-league/internal/domain/score"
	"github.com/graphiclux/kicker-league/internal/usecase"
)

const defaultWeek = 1

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// seasonWeekFromQuery reads ?season=&week=, falling back to the configured
// season and week 1 when a parameter is absent.
func (h *Handler) seasonWeekFromQuery(r *http.Request) (int, int, error) {
	season, err := queryPositiveInt(r, "season", h.calendar.Season())
	if err != nil {
		return 0, 0, err
	}
	week, err := queryPositiveInt(r, "week", defaultWeek)
	if err != nil {
		return 0, 0, err
	}
	return season, week, nil
}

func queryPositiveInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}

func queryOptionalPositiveInt(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return nil, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, key)
	}
	return &value, nil
}

type importPlaysRequest struct {
	Plays []importPlayRecord `json:"plays" validate:"required,dive"`
}

type importPlayRecord struct {
	GameID     string `json:"gameId" validate:"required"`
	Possession string `json:"possession" validate:"required,max=4"`
	PlayType   string `json:"playType" validate:"required,oneof=field_goal extra_point"`
	Result     string `json:"result" validate:"required,oneof=made missed"`
	Distance   *int   `json:"distance" validate:"omitempty,gte=0,lte=99"`
	Blocked    *bool  `json:"blocked"`
}

func (r importPlayRecord) toInput() usecase.PlayInput {
	return usecase.PlayInput{
		GameID:     r.GameID,
		Possession: r.Possession,
		PlayType:   r.PlayType,
		Result:     r.Result,
		Distance:   r.Distance,
		Blocked:    r.Blocked,
	}
}

type importPlaysDTO struct {
	Season   int `json:"season"`
	Week     int `json:"week"`
	Inserted int `json:"inserted"`
}

type playCountDTO struct {
	Season int    `json:"season"`
	Week   int    `json:"week"`
	Count  int    `json:"count"`
	Note   string `json:"note"`
}

type teamPointsDTO struct {
	Team   string `json:"team"`
	Points int    `json:"pts"`
}

type weeklyScoreDTO struct {
	Season        int              `json:"season"`
	Week          int              `json:"week"`
	TeamsComputed []teamPointsDTO  `json:"teamsComputed"`
	LeaguesScored int              `json:"leaguesScored"`
	ScoresWritten int              `json:"scoresWritten"`
	AutoDetected  *autoDetectedDTO `json:"autoDetected,omitempty"`
}

type autoDetectedDTO struct {
	Season int    `json:"season"`
	Week   int    `json:"week"`
	Now    string `json:"now"`
}

type nflTeamDTO struct {
	Abbr string `json:"abbr"`
	Name string `json:"name"`
}

type ownerDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type leagueDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SeasonYear int    `json:"seasonYear"`
	MaxTeams   int    `json:"maxTeams"`
}

type leagueTeamDTO struct {
	ID        string   `json:"id"`
	NFLTeam   string   `json:"nflTeam"`
	DraftSlot *int     `json:"draftSlot"`
	Owner     ownerDTO `json:"owner"`
}

type leagueDetailsDTO struct {
	League leagueDTO       `json:"league"`
	Teams  []leagueTeamDTO `json:"teams"`
}

type breakdownEntryDTO struct {
	Description string `json:"desc"`
	Points      int    `json:"pts"`
}

type leaderboardRowDTO struct {
	LeagueTeamID string              `json:"leagueTeamId"`
	NFLTeam      string              `json:"nflTeam"`
	NFLTeamName  string              `json:"nflTeamName"`
	Owner        ownerDTO            `json:"owner"`
	DraftSlot    *int                `json:"draftSlot"`
	Points       int                 `json:"points"`
	Breakdown    []breakdownEntryDTO `json:"breakdown"`
}

type seasonTotalDTO struct {
	LeagueTeamID string   `json:"leagueTeamId"`
	NFLTeam      string   `json:"nflTeam"`
	NFLTeamName  string   `json:"nflTeamName"`
	Owner        ownerDTO `json:"owner"`
	TotalPoints  int      `json:"totalPoints"`
}

type leaderboardDTO struct {
	League         leagueDTO           `json:"league"`
	Season         int                 `json:"season"`
	Week           int                 `json:"week"`
	Rows           []leaderboardRowDTO `json:"rows"`
	SeasonTotals   []seasonTotalDTO    `json:"seasonTotals"`
	AvailableWeeks []int               `json:"availableWeeks"`
	LatestWeek     *int                `json:"latestWeek"`
}

type kickerDTO struct {
	PlayerID     string `json:"playerId"`
	Name         string `json:"name"`
	Team         string `json:"team"`
	InjuryStatus string `json:"injuryStatus,omitempty"`
	InjuryNotes  string `json:"injuryNotes,omitempty"`
}

type kickerListDTO struct {
	Source    string      `json:"source"`
	UpdatedAt string      `json:"updatedAt"`
	Kickers   []kickerDTO `json:"kickers"`
}

type feedWeekDTO struct {
	Week       int    `json:"week"`
	Inserted   int    `json:"inserted"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"durationMs"`
}

type feedImportDTO struct {
	Source        string        `json:"source"`
	Season        int           `json:"season"`
	WorkerCount   int           `json:"workerCount"`
	Weeks         []feedWeekDTO `json:"weeks"`
	TotalInserted int           `json:"totalInserted"`
	SuccessCount  int           `json:"successCount"`
	FailedCount   int           `json:"failedCount"`
}

func weeklyScoreToDTO(result usecase.WeeklyScoreResult) weeklyScoreDTO {
	teams := make([]teamPointsDTO, 0, len(result.TeamsComputed))
	for _, item := range result.TeamsComputed {
		teams = append(teams, teamPointsDTO{Team: item.Team, Points: item.Points})
	}
	return weeklyScoreDTO{
		Season:        result.Season,
		Week:          result.Week,
		TeamsComputed: teams,
		LeaguesScored: result.LeaguesScored,
		ScoresWritten: result.ScoresWritten,
	}
}

func nflTeamToDTO(v nflteam.Team) nflTeamDTO {
	return nflTeamDTO{Abbr: v.Abbr, Name: v.Name}
}

func ownerToDTO(v league.Owner) ownerDTO {
	return ownerDTO{Name: v.Name, Email: v.Email}
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:         v.ID,
		Name:       v.Name,
		SeasonYear: v.SeasonYear,
		MaxTeams:   v.MaxTeams,
	}
}

func leagueDetailsToDTO(v usecase.LeagueDetails) leagueDetailsDTO {
	teams := make([]leagueTeamDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		teams = append(teams, leagueTeamDTO{
			ID:        t.ID,
			NFLTeam:   t.NFLTeam,
			DraftSlot: t.DraftSlot,
			Owner:     ownerToDTO(t.Owner),
		})
	}
	return leagueDetailsDTO{League: leagueToDTO(v.League), Teams: teams}
}

func breakdownToDTO(entries []score.Entry) []breakdownEntryDTO {
	out := make([]breakdownEntryDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, breakdownEntryDTO{Description: entry.Description, Points: entry.Points})
	}
	return out
}

func leaderboardToDTO(v usecase.Leaderboard) leaderboardDTO {
	rows := make([]leaderboardRowDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		rows = append(rows, leaderboardRowDTO{
			LeagueTeamID: row.LeagueTeamID,
			NFLTeam:      row.NFLTeam,
			NFLTeamName:  row.NFLTeamName,
			Owner:        ownerToDTO(row.Owner),
			DraftSlot:    row.DraftSlot,
			Points:       row.Points,
			Breakdown:    breakdownToDTO(row.Breakdown),
		})
	}

	totals := make([]seasonTotalDTO, 0, len(v.SeasonTotals))
	for _, total := range v.SeasonTotals {
		totals = append(totals, seasonTotalDTO{
			LeagueTeamID: total.LeagueTeamID,
			NFLTeam:      total.NFLTeam,
			NFLTeamName:  total.NFLTeamName,
			Owner:        ownerToDTO(total.Owner),
			TotalPoints:  total.TotalPoints,
		})
	}

	weeks := v.AvailableWeeks
	if weeks == nil {
		weeks = []int{}
	}

	return leaderboardDTO{
		League:         leagueToDTO(v.League),
		Season:         v.Season,
		Week:           v.Week,
		Rows:           rows,
		SeasonTotals:   totals,
		AvailableWeeks: weeks,
		LatestWeek:     v.LatestWeek,
	}
}

func kickerListToDTO(v usecase.KickerList) kickerListDTO {
	items := make([]kickerDTO, 0, len(v.Kickers))
	for _, k := range v.Kickers {
		items = append(items, kickerDTO{
			PlayerID:     k.PlayerID,
			Name:         k.Name,
			Team:         k.Team,
			InjuryStatus: k.InjuryStatus,
			InjuryNotes:  k.InjuryNotes,
		})
	}
	return kickerListDTO{
		Source:    v.Source,
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
		Kickers:   items,
	}
}

func feedImportToDTO(v usecase.FeedImportResult) feedImportDTO {
	weeks := make([]feedWeekDTO, 0, len(v.Weeks))
	for _, w := range v.Weeks {
		weeks = append(weeks, feedWeekDTO{
			Week:       w.Week,
			Inserted:   w.Inserted,
			Status:     w.Status,
			Message:    w.Message,
			DurationMs: w.DurationMs,
		})
	}
	return feedImportDTO{
		Source:        v.Source,
		Season:        v.Season,
		WorkerCount:   v.WorkerCount,
		Weeks:         weeks,
		TotalInserted: v.TotalInserted,
		SuccessCount:  v.SuccessCount,
		FailedCount:   v.FailedCount,
	}
}
