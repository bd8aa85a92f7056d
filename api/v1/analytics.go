package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/services"
)

// AnalyticsController exposes the derived reporting endpoints.
type AnalyticsController struct {
	service *services.AnalyticsService
}

// NewAnalyticsController creates an analytics controller.
func NewAnalyticsController(service *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{service: service}
}

// RegisterRoutes mounts the analytics endpoints.
func (ctl *AnalyticsController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/analytics")
	{
		group.GET("/frameworks", ctl.Frameworks)
		group.GET("/algorithms", ctl.Algorithms)
		group.GET("/leaderboard", ctl.Leaderboard)
		group.GET("/project-health/:id", ctl.ProjectHealth)
		group.GET("/trends", ctl.Trends)
		group.GET("/qubit-scaling", ctl.QubitScaling)
		group.GET("/institutions", ctl.Institutions)
		group.GET("/dashboard", ctl.Dashboard)
		group.GET("/dashboard/enhanced", ctl.EnhancedDashboard)
		group.GET("/activity", ctl.Activity)
	}
}

// Frameworks handles GET /analytics/frameworks.
func (ctl *AnalyticsController) Frameworks(c *gin.Context) {
	stats, err := ctl.service.FrameworkComparison()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Algorithms handles GET /analytics/algorithms.
func (ctl *AnalyticsController) Algorithms(c *gin.Context) {
	stats, err := ctl.service.AlgorithmComparison()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Leaderboard handles GET /analytics/leaderboard.
func (ctl *AnalyticsController) Leaderboard(c *gin.Context) {
	entries, err := ctl.service.Leaderboard(queryInt(c, "limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// ProjectHealth handles GET /analytics/project-health/:id.
func (ctl *AnalyticsController) ProjectHealth(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	health, err := ctl.service.ProjectHealth(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, health)
}

// Trends handles GET /analytics/trends.
func (ctl *AnalyticsController) Trends(c *gin.Context) {
	trends, err := ctl.service.Trends(c.DefaultQuery("period", "30d"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// QubitScaling handles GET /analytics/qubit-scaling.
func (ctl *AnalyticsController) QubitScaling(c *gin.Context) {
	stats, err := ctl.service.QubitScaling()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Institutions handles GET /analytics/institutions.
func (ctl *AnalyticsController) Institutions(c *gin.Context) {
	stats, err := ctl.service.InstitutionComparison()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Dashboard handles GET /analytics/dashboard.
func (ctl *AnalyticsController) Dashboard(c *gin.Context) {
	dashboard, err := ctl.service.Dashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// EnhancedDashboard handles GET /analytics/dashboard/enhanced.
func (ctl *AnalyticsController) EnhancedDashboard(c *gin.Context) {
	dashboard, err := ctl.service.EnhancedDashboard()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// Activity handles GET /analytics/activity.
func (ctl *AnalyticsController) Activity(c *gin.Context) {
	entries, err := ctl.service.Activity(queryInt(c, "limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
