package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
)

type RouterConfig struct {
	Verifier TokenVerifier
	Admins   AdminChecker
	// Metrics serves GET /metrics when set.
	Metrics            http.Handler
	Observer           HTTPObserver
	Logger             *logging.Logger
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
}

func NewRouter(handler *Handler, cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.Metrics, cfg.SwaggerEnabled)
	registerPublicRoutes(mux, handler)
	registerAuthorizedRoutes(mux, handler, cfg.Verifier)
	registerAdminRoutes(mux, handler, cfg.Verifier, cfg.Admins)

	return RequestTracing(RequestLogging(logger, CORS(cfg.CORSAllowedOrigins, recoverPanic(logger, RequestMetrics(cfg.Observer, mux)))))
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
