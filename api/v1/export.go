package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/services"
)

// ExportController exposes the downloadable export endpoints.
type ExportController struct {
	service *services.ExportService
}

// NewExportController creates an export controller.
func NewExportController(service *services.ExportService) *ExportController {
	return &ExportController{service: service}
}

// RegisterRoutes mounts the export endpoints.
func (ctl *ExportController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/export")
	{
		group.GET("/simulations/csv", ctl.SimulationsCSV)
		group.GET("/project/:id/report", ctl.ProjectReport)
		group.GET("/researcher/:id/portfolio", ctl.ResearcherPortfolio)
		group.GET("/all/json", ctl.FullExport)
	}
}

// SimulationsCSV handles GET /export/simulations/csv.
func (ctl *ExportController) SimulationsCSV(c *gin.Context) {
	filter := repositories.SimulationFilter{
		ProjectID: queryInt(c, "project_id"),
		Framework: c.Query("framework"),
		Status:    c.Query("status"),
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=simulations.csv")
	if err := ctl.service.SimulationsCSV(c.Writer, filter); err != nil {
		respondError(c, err)
	}
}

// ProjectReport handles GET /export/project/:id/report.
func (ctl *ExportController) ProjectReport(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	report, err := ctl.service.ProjectReport(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=project_%d_report.json", id))
	c.IndentedJSON(http.StatusOK, report)
}

// ResearcherPortfolio handles GET /export/researcher/:id/portfolio.
func (ctl *ExportController) ResearcherPortfolio(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	portfolio, err := ctl.service.ResearcherPortfolio(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=researcher_%d_portfolio.json", id))
	c.IndentedJSON(http.StatusOK, portfolio)
}

// FullExport handles GET /export/all/json.
func (ctl *ExportController) FullExport(c *gin.Context) {
	data, err := ctl.service.FullExport()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=full_export.json")
	c.IndentedJSON(http.StatusOK, data)
}
