package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-golf/internal/domain/user"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
	"github.com/riskibarqy/fantasy-golf/internal/usecase"
)

const maxRequestBody = 1 << 20

type Handler struct {
	standingsService   *usecase.StandingsService
	leaderboardService *usecase.LeaderboardService
	resultsService     *usecase.ResultsService
	teamService        *usecase.TeamService
	tourCardService    *usecase.TourCardService
	memberService      *usecase.MemberService
	exportService      *usecase.ExportService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	standingsService *usecase.StandingsService,
	leaderboardService *usecase.LeaderboardService,
	resultsService *usecase.ResultsService,
	teamService *usecase.TeamService,
	tourCardService *usecase.TourCardService,
	memberService *usecase.MemberService,
	exportService *usecase.ExportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		standingsService:   standingsService,
		leaderboardService: leaderboardService,
		resultsService:     resultsService,
		teamService:        teamService,
		tourCardService:    tourCardService,
		memberService:      memberService,
		exportService:      exportService,
		logger:             logger.Named("httpapi"),
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// decodeRequest reads a JSON body strictly and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigStd.NewDecoder(io.LimitReader(r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}
