package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	v1 "github.com/qslrm-api/api/v1"
	"github.com/qslrm-api/config"
	"github.com/qslrm-api/database"
	"github.com/qslrm-api/middleware"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	// Repositories
	researcherRepo := repositories.NewResearcherRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	simulationRepo := repositories.NewSimulationRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	metadataRepo := repositories.NewMetadataRepository(db)
	parameterRepo := repositories.NewParameterRepository(db)
	accessLogRepo := repositories.NewAccessLogRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	// Services
	researcherService := services.NewResearcherService(researcherRepo, projectRepo, simulationRepo, logger)
	projectService := services.NewProjectService(projectRepo, researcherRepo, simulationRepo, logger)
	simulationService := services.NewSimulationService(
		simulationRepo, projectRepo, researcherRepo, resultRepo, metadataRepo, parameterRepo, logger)
	analyticsService := services.NewAnalyticsService(analyticsRepo, projectRepo, simulationRepo, accessLogRepo)
	searchService := services.NewSearchService(researcherRepo, projectRepo, simulationRepo)
	exportService := services.NewExportService(researcherRepo, projectRepo, simulationRepo)
	authService := services.NewAuthService(researcherRepo, accessLogRepo, cfg, logger)

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
	}))

	api := router.Group("/api/v1")
	v1.RegisterRoutes(api, v1.Controllers{
		Researchers: v1.NewResearcherController(researcherService),
		Projects:    v1.NewProjectController(projectService),
		Simulations: v1.NewSimulationController(simulationService),
		Analytics:   v1.NewAnalyticsController(analyticsService),
		Search:      v1.NewSearchController(searchService),
		Export:      v1.NewExportController(exportService),
		Auth:        v1.NewAuthController(authService),
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))
	if err := router.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
