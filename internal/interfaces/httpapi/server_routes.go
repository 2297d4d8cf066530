package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/nfl-teams", handler.ListNFLTeams)
	mux.HandleFunc("GET /v1/nfl/kickers", handler.ListKickers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/leaderboard", handler.GetLeaderboard)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminKey string) {
	mux.Handle("POST /v1/admin/plays", RequireAdminKey(adminKey, http.HandlerFunc(handler.ImportPlays)))
	mux.HandleFunc("GET /v1/admin/plays", handler.CountPlays)
	mux.Handle("POST /v1/admin/feeds/nflverse", RequireAdminKey(adminKey, http.HandlerFunc(handler.ImportNFLVerse)))
}

func registerCronRoutes(mux *http.ServeMux, handler *Handler, cronSecret string) {
	mux.Handle("GET /v1/cron/weekly-score", RequireCronToken(cronSecret, http.HandlerFunc(handler.RunWeeklyScore)))
	mux.Handle("POST /v1/cron/weekly-score", RequireCronToken(cronSecret, http.HandlerFunc(handler.RunWeeklyScore)))
	mux.Handle("GET /v1/cron/weekly-score-current", RequireCronToken(cronSecret, http.HandlerFunc(handler.RunCurrentWeeklyScore)))
	mux.Handle("POST /v1/cron/weekly-score-current", RequireCronToken(cronSecret, http.HandlerFunc(handler.RunCurrentWeeklyScore)))
}

func registerDevRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/dev/seed-plays", handler.SeedPlays)
}
