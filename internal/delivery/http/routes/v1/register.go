package v1

import (
	"career-compass/internal/catalog"
	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/infrastructure/persistence/postgres"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
	"career-compass/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type Deps struct {
	Config  config.Config
	DB      database.DB
	Catalog *catalog.Store
	Cache   *cache.Redis
	Logger  *zap.Logger
	Hub     *ws.Hub
}

func Register(r fiber.Router, deps Deps) error {
	if r == nil {
		return nil
	}

	jwtSvc := jwt.NewHMACService(
		deps.Config.JWT.AccessSecret,
		deps.Config.JWT.RefreshSecret,
		deps.Config.JWT.AccessExpiresIn,
		deps.Config.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo, err := postgres.NewUserRepository(deps.DB.SQLDB())
	if err != nil {
		return err
	}
	profileRepo, err := postgres.NewProfileRepository(deps.DB.SQLDB())
	if err != nil {
		return err
	}
	resourceRepo := repository.NewPostgresLearningResourceRepository(deps.DB)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, deps.Catalog)
	recommendUC := usecase.NewRecommendationUsecase(deps.Catalog, deps.Cache, deps.Logger)
	gapUC := usecase.NewGapAnalysisUsecase(deps.Catalog, deps.Cache, deps.Logger)
	resourceUC := usecase.NewResourceUsecase(deps.Catalog, resourceRepo, deps.Cache, deps.Logger)
	extractionUC := usecase.NewExtractionUsecase(deps.Catalog)
	simulationUC := usecase.NewSimulationUsecase(deps.Catalog, profileRepo)
	planUC := usecase.NewPlanUsecase(deps.Catalog, profileRepo, resourceUC)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	careerHandler := handler.NewCareerHandler(recommendUC, gapUC)
	skillHandler := handler.NewSkillHandler(resourceUC, extractionUC)
	simulationHandler := handler.NewSimulationHandler(simulationUC)
	planHandler := handler.NewPlanHandler(planUC)
	fetchCompletedHandler := handler.NewFetchCompletedHandler(deps.Config, deps.Cache, deps.Logger)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	RegisterCareers(r.Group("/careers"), careerHandler)
	skillHandler.RegisterRoutes(r.Group("/skills"))

	internalGroup := r.Group("/internal")
	internalGroup.Post("/fetch-completed", fetchCompletedHandler.HandleFetchCompleted)

	protected := r.Group("", authMw.Middleware())

	RegisterUsers(protected.Group("/users"), userHandler, profileHandler)
	simulationHandler.RegisterRoutes(protected.Group("/simulations"))
	planHandler.RegisterRoutes(protected.Group("/plans"))

	return nil
}
