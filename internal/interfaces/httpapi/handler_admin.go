package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMembers")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	members, err := h.memberService.List(ctx, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "list members failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]memberDTO, 0, len(members))
	for _, m := range members {
		items = append(items, memberToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) UpdateMemberRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMemberRole")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req updateRoleRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	memberID := strings.TrimSpace(r.PathValue("memberID"))
	m, err := h.memberService.UpdateRole(ctx, principal.UserID, memberID, req.Role)
	if err != nil {
		h.logger.WarnContext(ctx, "update member role failed", "actor_id", principal.UserID, "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, memberToDTO(m))
}

func (h *Handler) AdjustMemberAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AdjustMemberAccount")
	defer span.End()

	principal, err := requirePrincipal(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req adjustAccountRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	memberID := strings.TrimSpace(r.PathValue("memberID"))
	balance, err := h.memberService.AdjustAccount(ctx, principal.UserID, memberID, req.Amount)
	if err != nil {
		h.logger.WarnContext(ctx, "adjust member account failed", "actor_id", principal.UserID, "member_id", memberID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, accountDTO{MemberID: memberID, Balance: balance})
}

func (h *Handler) FinalizeTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FinalizeTournament")
	defer span.End()

	tournamentID := strings.TrimSpace(r.PathValue("tournamentID"))
	result, err := h.resultsService.FinalizeTournament(ctx, tournamentID)
	if err != nil {
		h.logger.ErrorContext(ctx, "finalize tournament failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, finalizeToDTO(result))
}
