package httpapi

import "net/http"

// SeedPlays loads the fixed BUF/KC sample week for local testing.
func (h *Handler) SeedPlays(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedPlays")
	defer span.End()

	season, week, err := h.seasonWeekFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotateSeasonWeek(span, season, week)

	inserted, err := h.playImportService.SeedSampleWeek(ctx, season, week)
	if err != nil {
		h.logger.WarnContext(ctx, "seed sample plays failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, importPlaysDTO{
		Season:   season,
		Week:     week,
		Inserted: inserted,
	})
}
