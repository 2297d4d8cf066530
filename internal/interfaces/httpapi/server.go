package httpapi

import (
	"net/http"

	"github.com/graphiclux/kicker-league/internal/platform/id"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	AdminKey           string
	CronSecret         string
	DevRoutesEnabled   bool
	RequestIDs         id.Generator
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerPublicRoutes(mux, handler)
	registerAdminRoutes(mux, handler, cfg.AdminKey)
	registerCronRoutes(mux, handler, cfg.CronSecret)
	if cfg.DevRoutesEnabled {
		registerDevRoutes(mux, handler)
	}

	return RequestTracing(RequestID(cfg.RequestIDs, RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
