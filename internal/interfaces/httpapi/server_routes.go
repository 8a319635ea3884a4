package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics http.Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons/{seasonID}/standings", handler.GetSeasonStandings)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/playoffs", handler.GetPlayoffStandings)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/leaderboard", handler.GetLeaderboard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/members/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMe)))
	mux.Handle("PUT /v1/members/me", RequireAuth(verifier, http.HandlerFunc(handler.UpdateMe)))
	mux.Handle("POST /v1/tours/{tourID}/tour-cards", RequireAuth(verifier, http.HandlerFunc(handler.JoinTour)))
	mux.Handle("PUT /v1/tournaments/{tournamentID}/team", RequireAuth(verifier, http.HandlerFunc(handler.SaveTeam)))
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier, admins AdminChecker) {
	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAuth(verifier, RequireAdmin(admins, h))
	}

	mux.Handle("GET /v1/admin/members", admin(handler.ListMembers))
	mux.Handle("PUT /v1/admin/members/{memberID}/role", admin(handler.UpdateMemberRole))
	mux.Handle("POST /v1/admin/members/{memberID}/account", admin(handler.AdjustMemberAccount))
	mux.Handle("POST /v1/admin/tournaments/{tournamentID}/finalize", admin(handler.FinalizeTournament))
	mux.Handle("GET /v1/admin/seasons/{seasonID}/standings/export", admin(handler.ExportSeasonStandings))
}
