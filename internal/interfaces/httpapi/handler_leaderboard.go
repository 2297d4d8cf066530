package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	annotateLeague(span, leagueID)

	// Season 0 lets the service fall back to the league's own season.
	season, err := queryPositiveInt(r, "season", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryOptionalPositiveInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(ctx, leagueID, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "league_id", leagueID, "season", season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(board))
}
