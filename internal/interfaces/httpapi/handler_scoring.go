package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/graphiclux/kicker-league/internal/usecase"
)

func (h *Handler) RunWeeklyScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunWeeklyScore")
	defer span.End()

	season, week, err := h.seasonWeekFromQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	annotateSeasonWeek(span, season, week)

	result, err := h.weeklyScoreService.ComputeWeek(ctx, season, week)
	if err != nil {
		h.logger.ErrorContext(ctx, "weekly score failed", "season", season, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weeklyScoreToDTO(result))
}

// RunCurrentWeeklyScore scores the week the season calendar places now in.
func (h *Handler) RunCurrentWeeklyScore(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunCurrentWeeklyScore")
	defer span.End()

	now := h.calendar.Now().UTC()
	result, err := h.weeklyScoreService.ComputeCurrentWeek(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrSeasonNotStarted) {
			h.logger.InfoContext(ctx, "current week not available", "now", now.Format(time.RFC3339), "error", err)
		} else {
			h.logger.ErrorContext(ctx, "current weekly score failed", "error", err)
		}
		writeError(ctx, w, err)
		return
	}

	dto := weeklyScoreToDTO(result)
	dto.AutoDetected = &autoDetectedDTO{
		Season: result.Season,
		Week:   result.Week,
		Now:    now.Format(time.RFC3339),
	}
	writeSuccess(ctx, w, http.StatusOK, dto)
}
