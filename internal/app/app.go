// Package app assembles the service from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/fantasy-golf/internal/config"
	"github.com/riskibarqy/fantasy-golf/internal/domain/golfer"
	"github.com/riskibarqy/fantasy-golf/internal/domain/team"
	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/account/identity"
	cacherepo "github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-golf/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-golf/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-golf/internal/jobs"
	"github.com/riskibarqy/fantasy-golf/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-golf/internal/platform/id"
	"github.com/riskibarqy/fantasy-golf/internal/platform/logging"
	"github.com/riskibarqy/fantasy-golf/internal/platform/metrics"
	"github.com/riskibarqy/fantasy-golf/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-golf/internal/usecase"
)

// Runtime holds the assembled server and the resources it owns.
type Runtime struct {
	Server    *http.Server
	Scheduler *jobs.Scheduler
	Metrics   *metrics.Metrics

	db *sqlx.DB
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	rt := &Runtime{Metrics: metrics.New()}
	repos, err := rt.buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
		repos.Seasons = cacherepo.NewSeasonRepository(repos.Seasons, store)
		repos.Tours = cacherepo.NewTourRepository(repos.Tours, store)
		repos.Tiers = cacherepo.NewTierRepository(repos.Tiers, store)
	}

	ids := idgen.NewUUIDGenerator()
	rules := team.Rules{Size: cfg.TeamSize, PerGroup: cfg.TeamPerGroup, Groups: golfer.MaxGroup}

	standingsSvc := usecase.NewStandingsService(repos, store, rt.Metrics, usecase.StandingsConfig{}, logger)
	leaderboardSvc := usecase.NewLeaderboardService(repos, store, rt.Metrics, logger)
	resultsSvc := usecase.NewResultsService(repos, usecase.ResultsConfig{Workers: cfg.ResultsWorkers}, rt.Metrics, logger)
	memberSvc := usecase.NewMemberService(repos.Members, logger)
	handler := httpapi.NewHandler(
		standingsSvc,
		leaderboardSvc,
		resultsSvc,
		usecase.NewTeamService(repos, ids, rules, logger),
		usecase.NewTourCardService(repos, ids, logger),
		memberSvc,
		usecase.NewExportService(standingsSvc),
		logger,
	)

	identityClient := identity.NewClient(identity.ClientConfig{
		BaseURL:        cfg.IdentityBaseURL,
		IntrospectPath: cfg.IdentityIntrospectPath,
		AdminKey:       cfg.IdentityAdminKey,
		Timeout:        cfg.IdentityTimeout,
		Breaker:        newIdentityBreaker(cfg, rt.Metrics),
		Cache:          identityCache(cfg),
		Logger:         logger,
	})

	routerCfg := httpapi.RouterConfig{
		Verifier:           identityClient,
		Admins:             memberSvc,
		Observer:           rt.Metrics,
		Logger:             logger,
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.MetricsEnabled {
		routerCfg.Metrics = rt.Metrics.Handler()
	}

	rt.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, routerCfg),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if cfg.FinalizeJobEnable {
		sched, err := jobs.NewScheduler(logger)
		if err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("create scheduler: %w", err)
		}
		rt.Scheduler = sched
		if _, err := sched.RegisterFinalize(resultsSvc, rt.Metrics, jobs.FinalizeJobConfig{Interval: cfg.FinalizeInterval}); err != nil {
			_ = rt.Close()
			return nil, fmt.Errorf("register finalize job: %w", err)
		}
	}

	return rt, nil
}

// Close stops the scheduler and releases the database pool.
func (r *Runtime) Close() error {
	var errs []error
	if r.Scheduler != nil {
		if err := r.Scheduler.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop scheduler: %w", err))
		}
	}
	if r.db != nil {
		if err := r.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (r *Runtime) buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.Repositories, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return usecase.Repositories{}, err
		}
		r.db = db
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
		return usecase.Repositories{
			Seasons:     postgres.NewSeasonRepository(db),
			Tiers:       postgres.NewTierRepository(db),
			Tours:       postgres.NewTourRepository(db),
			Tournaments: postgres.NewTournamentRepository(db),
			Members:     postgres.NewMemberRepository(db),
			TourCards:   postgres.NewTourCardRepository(db),
			Golfers:     postgres.NewGolferRepository(db),
			Teams:       postgres.NewTeamRepository(db),
		}, nil
	default:
		ds, err := loadDataset(cfg.SeedFile)
		if err != nil {
			return usecase.Repositories{}, err
		}
		mem := memory.NewRepositories(ds)
		logger.Info("storage ready", "driver", config.StorageMemory, "seed_file", cfg.SeedFile, "tour_cards", len(ds.TourCards))
		return usecase.Repositories{
			Seasons:     mem.Seasons,
			Tiers:       mem.Tiers,
			Tours:       mem.Tours,
			Tournaments: mem.Tournaments,
			Members:     mem.Members,
			TourCards:   mem.TourCards,
			Golfers:     mem.Golfers,
			Teams:       mem.Teams,
		}, nil
	}
}

func loadDataset(path string) (memory.Dataset, error) {
	ds, err := memory.LoadDatasetFile(path)
	if err != nil {
		return memory.Dataset{}, fmt.Errorf("load seed dataset %q: %w", path, err)
	}
	return ds, nil
}

func newIdentityBreaker(cfg config.Config, m *metrics.Metrics) *resilience.CircuitBreaker {
	bcfg := cfg.IdentityCircuitBreaker()
	if !bcfg.Enabled {
		return nil
	}
	return resilience.NewCircuitBreaker("identity", bcfg, func(name string, from, to resilience.CircuitState) {
		m.BreakerChanged(name, string(from), string(to))
	})
}

func identityCache(cfg config.Config) *cache.Store {
	if cfg.IdentityCacheTTL <= 0 {
		return nil
	}
	return cache.NewStore(cfg.IdentityCacheTTL)
}
