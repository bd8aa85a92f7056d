package v1

import "github.com/gin-gonic/gin"

// Controllers bundles everything the v1 API mounts.
type Controllers struct {
	Researchers *ResearcherController
	Projects    *ProjectController
	Simulations *SimulationController
	Analytics   *AnalyticsController
	Search      *SearchController
	Export      *ExportController
	Auth        *AuthController
}

// RegisterRoutes registers all v1 API routes.
func RegisterRoutes(router *gin.RouterGroup, c Controllers) {
	router.GET("/health", HealthCheck)

	c.Researchers.RegisterRoutes(router)
	c.Projects.RegisterRoutes(router)
	c.Simulations.RegisterRoutes(router)
	c.Analytics.RegisterRoutes(router)
	c.Search.RegisterRoutes(router)
	c.Export.RegisterRoutes(router)
	c.Auth.RegisterRoutes(router)
}
