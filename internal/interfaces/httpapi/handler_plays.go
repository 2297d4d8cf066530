package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/graphiclux/kicker-league/internal/usecase"
)

const playCountNote = "POST plays to this same URL to (re)import for the week."

// ImportPlays replaces the stored plays for ?season=&week= with the request
// body. An empty plays array clears the week.
func (h *Handler) ImportPlays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportPlays")
	defer span.End()

	season, week, err := h.seasonWeekFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotateSeasonWeek(span, season, week)

	var req importPlaysRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.PlayInput, 0, len(req.Plays))
	for _, item := range req.Plays {
		inputs = append(inputs, item.toInput())
	}

	inserted, err := h.playImportService.ReplaceWeek(ctx, season, week, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "import plays failed", "season", season, "week", week, "plays", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importPlaysDTO{
		Season:   season,
		Week:     week,
		Inserted: inserted,
	})
}

func (h *Handler) CountPlays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CountPlays")
	defer span.End()

	season, week, err := h.seasonWeekFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotateSeasonWeek(span, season, week)

	count, err := h.playImportService.CountWeek(ctx, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "count plays failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playCountDTO{
		Season: season,
		Week:   week,
		Count:  count,
		Note:   playCountNote,
	})
}
