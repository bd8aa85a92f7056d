package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/services"
)

// SearchController exposes the global and faceted search endpoints.
type SearchController struct {
	service *services.SearchService
}

// NewSearchController creates a search controller.
func NewSearchController(service *services.SearchService) *SearchController {
	return &SearchController{service: service}
}

// RegisterRoutes mounts the search endpoints.
func (ctl *SearchController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/search")
	{
		group.GET("", ctl.Global)
		group.GET("/simulations", ctl.Simulations)
		group.GET("/researchers", ctl.Researchers)
		group.GET("/projects", ctl.Projects)
		group.GET("/filters", ctl.FilterOptions)
	}
}

// Global handles GET /search.
func (ctl *SearchController) Global(c *gin.Context) {
	results, err := ctl.service.Global(c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// Simulations handles GET /search/simulations.
func (ctl *SearchController) Simulations(c *gin.Context) {
	filter := dto.SimulationSearchFilter{
		Page:         queryInt(c, "page"),
		PerPage:      queryInt(c, "per_page"),
		SortBy:       c.DefaultQuery("sort_by", "execution_date"),
		Order:        c.DefaultQuery("order", "desc"),
		Framework:    c.Query("framework"),
		Status:       c.Query("status"),
		Algorithm:    c.Query("algorithm"),
		ProjectID:    queryInt(c, "project_id"),
		ResearcherID: queryInt(c, "researcher_id"),
		MinQubits:    queryInt(c, "min_qubits"),
		MaxQubits:    queryInt(c, "max_qubits"),
		MinFidelity:  queryFloat(c, "min_fidelity"),
		DateFrom:     c.Query("date_from"),
		DateTo:       c.Query("date_to"),
	}
	page, err := ctl.service.Simulations(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Researchers handles GET /search/researchers.
func (ctl *SearchController) Researchers(c *gin.Context) {
	filter := dto.ResearcherSearchFilter{
		Page:        queryInt(c, "page"),
		PerPage:     queryInt(c, "per_page"),
		Query:       c.Query("q"),
		Institution: c.Query("institution"),
		Department:  c.Query("department"),
		Role:        c.Query("role"),
	}
	page, err := ctl.service.Researchers(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Projects handles GET /search/projects.
func (ctl *SearchController) Projects(c *gin.Context) {
	filter := dto.ProjectSearchFilter{
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "per_page"),
		Query:   c.Query("q"),
		Status:  c.Query("status"),
		Field:   c.Query("field_of_study"),
		OwnerID: queryInt(c, "owner_id"),
	}
	page, err := ctl.service.Projects(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// FilterOptions handles GET /search/filters.
func (ctl *SearchController) FilterOptions(c *gin.Context) {
	options, err := ctl.service.FilterOptions()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, options)
}
