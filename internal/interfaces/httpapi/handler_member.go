package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-golf/internal/usecase"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	m, err := h.memberService.Get(ctx, principal)
	if err != nil {
		h.logger.WarnContext(ctx, "get member failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memberToDTO(m))
}

func (h *Handler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMe")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateProfileRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	// First contact may be a profile update, so make sure the member exists.
	if _, err := h.memberService.Get(ctx, principal); err != nil {
		writeError(ctx, w, err)
		return
	}
	m, err := h.memberService.UpdateProfile(ctx, principal.UserID, usecase.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update member profile failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memberToDTO(m))
}

func (h *Handler) JoinTour(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.JoinTour")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if _, err := h.memberService.Get(ctx, principal); err != nil {
		writeError(ctx, w, err)
		return
	}

	tourID := strings.TrimSpace(r.PathValue("tourID"))
	result, err := h.tourCardService.JoinTour(ctx, principal.UserID, tourID)
	if err != nil {
		h.logger.WarnContext(ctx, "join tour failed", "user_id", principal.UserID, "tour_id", tourID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, joinTourDTO{
		TourCard: tourCardToDTO(result.TourCard),
		Balance:  result.Balance,
	})
}

func (h *Handler) SaveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTeam")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	t, err := h.teamService.SaveTeam(ctx, principal.UserID, tournamentID, req.GolferIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "save team failed", "user_id", principal.UserID, "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(t))
}
