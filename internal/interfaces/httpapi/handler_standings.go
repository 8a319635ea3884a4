package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

func (h *Handler) GetSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	result, err := h.standingsService.GetSeasonStandings(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get season standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasonStandingsToDTO(ctx, result))
}

func (h *Handler) GetPlayoffStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayoffStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	result, err := h.standingsService.GetPlayoffStandings(ctx, seasonID)
	if err != nil {
		h.logger.WarnContext(ctx, "get playoff standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playoffStandingsToDTO(ctx, result))
}

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	tourID := strings.TrimSpace(r.URL.Query().Get("tour_id"))
	result, err := h.leaderboardService.GetLeaderboard(ctx, tournamentID, tourID)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "tournament_id", tournamentID, "tour_id", tourID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(ctx, result))
}

func (h *Handler) ExportSeasonStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportSeasonStandings")
	defer span.End()

	seasonID := strings.TrimSpace(r.PathValue("seasonID"))
	export, err := h.exportService.ExportSeasonStandings(ctx, seasonID)
	if err != nil {
		h.logger.ErrorContext(ctx, "export season standings failed", "season_id", seasonID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Body)
}
