package app

import (
	"context"
	"time"

	"talent-match/internal/commute"
	"talent-match/internal/config"
	"talent-match/internal/database"
	dbpostgres "talent-match/internal/database/postgres"
	"talent-match/internal/database/seeder"
	"talent-match/internal/geo"
	"talent-match/internal/infrastructure/cache"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
	"talent-match/internal/usecase"
	"talent-match/internal/ws"

	"go.uber.org/zap"
)

// Container wires configuration into the dependency graph: database, cache,
// geo providers, repositories and usecases.
type Container struct {
	Config config.Config
	Logger *zap.Logger

	DB    database.DB
	Redis *cache.Redis

	Hub      *ws.Hub
	Notifier *ws.BatchNotifier

	JWT   jwt.Service
	Auth  usecase.AuthUsecase
	Match usecase.MatchUsecase
	Batch usecase.BatchUsecase
}

func NewContainer(cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Bootstrap {
		runner := seeder.Runner{Seeders: seeder.Defaults()}
		if err := runner.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		logger.Info("database bootstrap complete")
	}

	redis := cache.NewRedis(cfg.Redis, logger)

	candidates := repository.NewPostgresCandidateRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	units := repository.NewPostgresUnitRegistry(db)
	records := repository.NewPostgresMatchRecordRepository(db)
	users := repository.NewPostgresUserRepository(db)

	commutes := buildCommuteAnalyzer(cfg.Geo, redis, logger)

	matcher := usecase.NewMatcher(usecase.MatcherOptions{
		Candidates: candidates,
		Jobs:       jobs,
		Units:      units,
		Records:    records,
		Commutes:   commutes,
		Cache:      redis,
		CacheTTL:   cfg.Match.ResultCacheTTL,
		Logger:     logger,
	})

	hub := ws.NewHub(logger)
	notifier := ws.NewBatchNotifier(hub)

	batch := usecase.NewBatch(matcher, jobs, units, cfg.Match.BatchConcurrency, notifier, logger)

	jwtSvc := jwt.NewHMACService(
		cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret,
		cfg.Auth.AccessExpiresIn, cfg.Auth.RefreshExpiresIn,
	)
	auth := usecase.NewAuthUsecase(users, jwtSvc)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Redis:    redis,
		Hub:      hub,
		Notifier: notifier,
		JWT:      jwtSvc,
		Auth:     auth,
		Match:    matcher,
		Batch:    batch,
	}, nil
}

// buildCommuteAnalyzer assembles the geo stack. Providers without a configured
// URL stay nil; the geocoder and distance engine degrade to fallback paths.
func buildCommuteAnalyzer(cfg config.GeoConfig, store geo.Store, logger *zap.Logger) *commute.Analyzer {
	var primary, fallback geo.GeocodeProvider
	if cfg.PrimaryGeocodeURL != "" {
		primary = geo.NewHTTPGeocodeProvider(cfg.PrimaryGeocodeURL, cfg.PrimaryGeocodeKey, geo.AccuracyRooftop)
	}
	if cfg.FallbackGeocodeURL != "" {
		fallback = geo.NewHTTPGeocodeProvider(cfg.FallbackGeocodeURL, cfg.FallbackGeocodeKey, geo.AccuracyLocality)
	}

	var matrix geo.MatrixProvider
	if cfg.MatrixURL != "" {
		matrix = geo.NewHTTPMatrixProvider(cfg.MatrixURL, cfg.MatrixKey)
	}

	geocoder := geo.NewGeocoder(primary, fallback, store, cfg.GeocodeTimeout, logger)
	engine := geo.NewEngine(matrix, store, cfg.MatrixTimeout, geo.TrafficModel(cfg.TrafficModel), logger)
	return commute.NewAnalyzer(geocoder, engine, logger)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
