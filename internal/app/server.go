package app

import (
	"fmt"
	"net/http"

	"github.com/graphiclux/kicker-league/internal/config"
	"github.com/graphiclux/kicker-league/internal/interfaces/httpapi"
	idgen "github.com/graphiclux/kicker-league/internal/platform/id"
	"github.com/graphiclux/kicker-league/internal/platform/logging"
)

func NewHTTPServer(cfg config.Config, services *Services, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	handler := httpapi.NewHandler(
		services.PlayImport,
		services.WeeklyScore,
		services.Leaderboard,
		services.Reference,
		services.Kickers,
		services.FeedImport,
		services.Calendar,
		logger.Named("http"),
	)
	if cfg.AdminKey == "" {
		logger.Warn("ADMIN_KEY is empty; admin routes are open")
	}

	router := httpapi.NewRouter(handler, logger.Named("http"), httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminKey:           cfg.AdminKey,
		CronSecret:         cfg.CronSecret,
		DevRoutesEnabled:   cfg.DevRoutesEnabled,
		RequestIDs:         idgen.NewUUIDGenerator(),
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
