package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/services"
)

// SimulationController exposes the simulation endpoints together with
// their result, metadata, and parameter sub-resources.
type SimulationController struct {
	service *services.SimulationService
}

// NewSimulationController creates a simulation controller.
func NewSimulationController(service *services.SimulationService) *SimulationController {
	return &SimulationController{service: service}
}

// RegisterRoutes mounts the simulation endpoints.
func (ctl *SimulationController) RegisterRoutes(router *gin.RouterGroup) {
	group := router.Group("/simulations")
	{
		group.GET("", ctl.List)
		group.POST("", ctl.Create)
		group.GET("/:id", ctl.Get)
		group.PUT("/:id", ctl.Update)
		group.DELETE("/:id", ctl.Delete)
		group.GET("/:id/results", ctl.Result)
		group.POST("/:id/results", ctl.SaveResult)
		group.PUT("/:id/results", ctl.SaveResult)
		group.GET("/:id/metadata", ctl.Metadata)
		group.POST("/:id/metadata", ctl.SaveMetadata)
		group.PUT("/:id/metadata", ctl.SaveMetadata)
		group.GET("/:id/parameters", ctl.Parameters)
		group.POST("/:id/parameters", ctl.AddParameter)
		group.DELETE("/:id/parameters/:param_id", ctl.DeleteParameter)
	}
}

// List handles GET /simulations.
func (ctl *SimulationController) List(c *gin.Context) {
	filter := repositories.SimulationFilter{
		Status:       c.Query("status"),
		Framework:    c.Query("framework"),
		ProjectID:    queryInt(c, "project_id"),
		ResearcherID: queryInt(c, "researcher_id"),
		MinQubits:    queryInt(c, "min_qubits"),
		MaxQubits:    queryInt(c, "max_qubits"),
		Algorithm:    c.Query("algorithm"),
	}
	simulations, err := ctl.service.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, simulations)
}

// Get handles GET /simulations/:id.
func (ctl *SimulationController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	simulation, err := ctl.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, simulation)
}

// Create handles POST /simulations.
func (ctl *SimulationController) Create(c *gin.Context) {
	var payload dto.SimulationPayload
	if !bindJSON(c, &payload) {
		return
	}
	simulation, err := ctl.service.Create(&payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Simulation created successfully",
		"simulation": simulation,
	})
}

// Update handles PUT /simulations/:id.
func (ctl *SimulationController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload dto.SimulationPayload
	if !bindJSON(c, &payload) {
		return
	}
	simulation, err := ctl.service.Update(id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Simulation updated successfully",
		"simulation": simulation,
	})
}

// Delete handles DELETE /simulations/:id.
func (ctl *SimulationController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctl.service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Simulation deleted successfully"})
}

// Result handles GET /simulations/:id/results.
func (ctl *SimulationController) Result(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	result, err := ctl.service.Result(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SaveResult handles POST and PUT /simulations/:id/results.
func (ctl *SimulationController) SaveResult(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload dto.ResultPayload
	if !bindJSON(c, &payload) {
		return
	}
	result, created, err := ctl.service.SaveResult(id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"message": "Results saved successfully",
		"result":  result,
	})
}

// Metadata handles GET /simulations/:id/metadata.
func (ctl *SimulationController) Metadata(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	metadata, err := ctl.service.Metadata(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, metadata)
}

// SaveMetadata handles POST and PUT /simulations/:id/metadata.
func (ctl *SimulationController) SaveMetadata(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload dto.MetadataPayload
	if !bindJSON(c, &payload) {
		return
	}
	metadata, created, err := ctl.service.SaveMetadata(id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"message":  "Metadata saved successfully",
		"metadata": metadata,
	})
}

// Parameters handles GET /simulations/:id/parameters.
func (ctl *SimulationController) Parameters(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	parameters, err := ctl.service.Parameters(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parameters)
}

// AddParameter handles POST /simulations/:id/parameters.
func (ctl *SimulationController) AddParameter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload dto.ParameterPayload
	if !bindJSON(c, &payload) {
		return
	}
	parameter, err := ctl.service.AddParameter(id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Parameter added successfully",
		"parameter": parameter,
	})
}

// DeleteParameter handles DELETE /simulations/:id/parameters/:param_id.
func (ctl *SimulationController) DeleteParameter(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	parameterID, ok := pathID(c, "param_id")
	if !ok {
		return
	}
	if err := ctl.service.DeleteParameter(id, parameterID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Parameter deleted successfully"})
}
