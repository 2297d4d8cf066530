package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
	"github.com/graphiclux/kicker-league/internal/usecase"
)

type Handler struct {
	playImportService  *usecase.PlayImportService
	weeklyScoreService *usecase.WeeklyScoreService
	leaderboardService *usecase.LeaderboardService
	referenceService   *usecase.ReferenceService
	kickerService      *usecase.KickerService
	feedImportService  *usecase.FeedImportService
	calendar           usecase.SeasonCalendar
	logger             *logging.Logger
	validator          *validator.Validate
}

// NewHandler wires the HTTP surface. kickerService and feedImportService may
// be nil; their routes then answer 503.
func NewHandler(
	playImportService *usecase.PlayImportService,
	weeklyScoreService *usecase.WeeklyScoreService,
	leaderboardService *usecase.LeaderboardService,
	referenceService *usecase.ReferenceService,
	kickerService *usecase.KickerService,
	feedImportService *usecase.FeedImportService,
	calendar usecase.SeasonCalendar,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		playImportService:  playImportService,
		weeklyScoreService: weeklyScoreService,
		leaderboardService: leaderboardService,
		referenceService:   referenceService,
		kickerService:      kickerService,
		feedImportService:  feedImportService,
		calendar:           calendar,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
