package httpapi

import (
	"fmt"
	"net/http"

	"github.com/graphiclux/kicker-league/internal/usecase"
)

const feedImportWorkersParam = "workers"

// ImportNFLVerse pulls plays from the nflverse feed. With ?week= it replaces
// that one week; without it every week the feed has for the season.
func (h *Handler) ImportNFLVerse(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportNFLVerse")
	defer span.End()

	if h.feedImportService == nil {
		writeError(ctx, w, fmt.Errorf("%w: nflverse feed is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	season, err := queryPositiveInt(r, "season", h.calendar.Season())
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	week, err := queryOptionalPositiveInt(r, "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	workers, err := queryPositiveInt(r, feedImportWorkersParam, 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var result usecase.FeedImportResult
	if week != nil {
		result, err = h.feedImportService.ImportWeek(ctx, season, *week)
	} else {
		result, err = h.feedImportService.ImportSeason(ctx, season, workers)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "nflverse import failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, feedImportToDTO(result))
}
