package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/services"
)

// ResearcherController exposes the researcher CRUD endpoints.
type ResearcherController struct {
	service *services.ResearcherService
}

// NewResearcherController creates a researcher controller.
func NewResearcherController(service *services.ResearcherService) *ResearcherController {
	return &ResearcherController{service: service}
}

// RegisterRoutes mounts the researcher endpoints.
func (ctl *ResearcherController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/researchers")
	{
		group.GET("", ctl.List)
		group.POST("", ctl.Create)
		group.GET("/:id", ctl.Get)
		group.PUT("/:id", ctl.Update)
		group.DELETE("/:id", ctl.Delete)
		group.GET("/:id/simulations", ctl.Simulations)
		group.GET("/:id/projects", ctl.Projects)
	}
}

// List handles GET /researchers.
func (ctl *ResearcherController) List(c *gin.Context) {
	filter := repositories.ResearcherFilter{
		Institution: c.Query("institution"),
		Department:  c.Query("department"),
		Role:        c.Query("role"),
		Search:      c.Query("search"),
	}
	researchers, err := ctl.service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, researchers)
}

// Get handles GET /researchers/:id.
func (ctl *ResearcherController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	researcher, err := ctl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, researcher)
}

// Create handles POST /researchers.
func (ctl *ResearcherController) Create(c *gin.Context) {
	var payload dto.ResearcherPayload
	if !bindJSON(c, &payload) {
		return
	}
	researcher, err := ctl.service.Create(&payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Researcher created successfully",
		"researcher": researcher,
	})
}

// Update handles PUT /researchers/:id.
func (ctl *ResearcherController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload dto.ResearcherPayload
	if !bindJSON(c, &payload) {
		return
	}
	researcher, err := ctl.service.Update(id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Researcher updated successfully",
		"researcher": researcher,
	})
}

// Delete handles DELETE /researchers/:id.
func (ctl *ResearcherController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Researcher deleted successfully"})
}

// Simulations handles GET /researchers/:id/simulations.
func (ctl *ResearcherController) Simulations(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	simulations, err := ctl.service.Simulations(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, simulations)
}

// Projects handles GET /researchers/:id/projects.
func (ctl *ResearcherController) Projects(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	projects, err := ctl.service.Projects(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
