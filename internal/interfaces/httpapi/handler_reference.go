package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/graphiclux/kicker-league/internal/usecase"
)

func (h *Handler) ListNFLTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListNFLTeams")
	defer span.End()

	teams, err := h.referenceService.ListNFLTeams(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list nfl teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]nflTeamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, nflTeamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	annotateLeague(span, leagueID)
	details, err := h.referenceService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueDetailsToDTO(details))
}

func (h *Handler) ListKickers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListKickers")
	defer span.End()

	if h.kickerService == nil {
		writeError(ctx, w, fmt.Errorf("%w: kicker feed is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	list, err := h.kickerService.ListCurrentKickers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list kickers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, kickerListToDTO(list))
}
