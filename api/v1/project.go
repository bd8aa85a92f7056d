package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/services"
)

// ProjectController exposes the project and team endpoints.
type ProjectController struct {
	service *services.ProjectService
}

// NewProjectController creates a project controller.
func NewProjectController(service *services.ProjectService) *ProjectController {
	return &ProjectController{service: service}
}

// RegisterRoutes mounts the project endpoints.
func (ctl *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/projects")
	{
		group.GET("", ctl.List)
		group.POST("", ctl.Create)
		group.GET("/:id", ctl.Get)
		group.PUT("/:id", ctl.Update)
		group.DELETE("/:id", ctl.Delete)
		group.GET("/:id/team", ctl.Team)
		group.POST("/:id/team", ctl.AddMember)
		group.DELETE("/:id/team/:researcher_id", ctl.RemoveMember)
		group.GET("/:id/simulations", ctl.Simulations)
	}
}

// List handles GET /projects.
func (ctl *ProjectController) List(c *gin.Context) {
	filter := repositories.ProjectFilter{
		Status:  c.Query("status"),
		Field:   c.Query("field_of_study"),
		OwnerID: queryInt(c, "owner_id"),
	}
	projects, err := ctl.service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Get handles GET /projects/:id.
func (ctl *ProjectController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	project, err := ctl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Create handles POST /projects.
func (ctl *ProjectController) Create(c *gin.Context) {
	var payload dto.ProjectPayload
	if !bindJSON(c, &payload) {
		return
	}
	project, err := ctl.service.Create(&payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": project,
	})
}

// Update handles PUT /projects/:id.
func (ctl *ProjectController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload dto.ProjectPayload
	if !bindJSON(c, &payload) {
		return
	}
	project, err := ctl.service.Update(id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Project updated successfully",
		"project": project,
	})
}

// Delete handles DELETE /projects/:id.
func (ctl *ProjectController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// Team handles GET /projects/:id/team.
func (ctl *ProjectController) Team(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if _, err := ctl.service.Get(id); err != nil {
		respondError(c, err)
		return
	}
	team, err := ctl.service.Team(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// AddMember handles POST /projects/:id/team.
func (ctl *ProjectController) AddMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload dto.TeamMemberPayload
	if !bindJSON(c, &payload) {
		return
	}
	member, err := ctl.service.AddMember(id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Team member added successfully",
		"member":  member,
	})
}

// RemoveMember handles DELETE /projects/:id/team/:researcher_id.
func (ctl *ProjectController) RemoveMember(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	researcherID, ok := pathID(c, "researcher_id")
	if !ok {
		return
	}
	if err := ctl.service.RemoveMember(id, researcherID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Team member removed successfully"})
}

// Simulations handles GET /projects/:id/simulations.
func (ctl *ProjectController) Simulations(c *gin.Context) {
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
