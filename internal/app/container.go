package app

import (
	"context"
	"log"
	"time"

	"campushire/internal/config"
	"campushire/internal/database"
	dbpostgres "campushire/internal/database/postgres"
	"campushire/internal/database/seeder"
	"campushire/internal/delivery/http/handler"
	"campushire/internal/delivery/http/middleware"
	"campushire/internal/delivery/http/routes"
	v1 "campushire/internal/delivery/http/routes/v1"
	"campushire/internal/infrastructure/cache"
	"campushire/internal/pkg/jwt"
	"campushire/internal/repository"
	"campushire/internal/usecase"
	ucauth "campushire/internal/usecase/auth"
	"campushire/internal/ws"
)

// Container owns every long-lived dependency and the wiring between
// them. Close releases them in reverse order of construction.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Routes *routes.Registry
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := seeder.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(cfg.Redis, logger)
	hub := ws.NewHub(logger)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	studentRepo := repository.NewPostgresStudentRepository(db)
	companyRepo := repository.NewPostgresCompanyRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)
	savedJobRepo := repository.NewPostgresSavedJobRepository(db)
	vocabRepo := repository.NewPostgresVocabularyRepository(db)

	authSvc := ucauth.NewService(userRepo, studentRepo, companyRepo)
	authUC := usecase.NewAuthUsecase(authSvc, userRepo, jwtSvc)
	jobListUC := usecase.NewJobListUsecase(jobRepo)
	jobUC := usecase.NewJobUsecase(jobRepo)
	candidateListUC := usecase.NewCandidateListUsecase(studentRepo)
	applicationListUC := usecase.NewApplicationListUsecase(applicationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, hub)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo)
	statsUC := usecase.NewStatsUsecase(applicationRepo, redisCache, logger)
	optionsUC := usecase.NewOptionsUsecase(vocabRepo, redisCache, logger)

	registry := &routes.Registry{
		Health:    handler.NewHealthHandler(db),
		Dashboard: ws.NewHandler(hub, logger),
		AuthMw:    middleware.NewAuthMiddleware(jwtSvc),
		V1: v1.Handlers{
			Auth:         handler.NewAuthHandler(authUC),
			Jobs:         handler.NewJobsHandler(jobListUC, jobUC),
			Candidates:   handler.NewCandidatesHandler(candidateListUC),
			Applications: handler.NewApplicationsHandler(applicationListUC, applicationUC),
			SavedJobs:    handler.NewSavedJobsHandler(savedJobUC),
			Stats:        handler.NewStatsHandler(statsUC),
			Meta:         handler.NewMetaHandler(optionsUC),
		},
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  redisCache,
		Hub:    hub,
		Routes: registry,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
