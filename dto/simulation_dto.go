package dto

import (
	"time"

	"github.com/qslrm-api/models"
)

// SimulationPayload is the request body for creating or updating a
// simulation run.
type SimulationPayload struct {
	ProjectID     *int    `json:"project_id"`
	SimulationID  *string `json:"simulation_id"`
	ResearcherID  *int    `json:"researcher_id"`
	Framework     *string `json:"framework"`
	NumQubits     *int    `json:"num_qubits"`
	CircuitDepth  *int    `json:"circuit_depth"`
	AlgorithmType *string `json:"algorithm_type"`
	Description   *string `json:"description"`
	Status        *string `json:"status"`
}

// ResultPayload is the request body for saving a simulation result.
// OutputData accepts any JSON value and is stored as text.
type ResultPayload struct {
	ExecutionTimeSeconds *float64    `json:"execution_time_seconds"`
	SuccessProbability   *float64    `json:"success_probability"`
	Fidelity             *float64    `json:"fidelity"`
	ErrorRate            *float64    `json:"error_rate"`
	OutputData           interface{} `json:"output_data"`
}

// MetadataPayload is the request body for saving reproducibility
// metadata. Supplying VerifiedBy stamps the verification date.
type MetadataPayload struct {
	RandomSeed           *int64   `json:"random_seed"`
	HardwareBackend      *string  `json:"hardware_backend"`
	FrameworkVersion     *string  `json:"framework_version"`
	ReproducibilityScore *float64 `json:"reproducibility_score"`
	VerifiedBy           *int     `json:"verified_by"`
}

// ParameterPayload is the request body for attaching a parameter.
type ParameterPayload struct {
	ParameterName  *string     `json:"parameter_name"`
	ParameterValue interface{} `json:"parameter_value"`
	ParameterUnit  *string     `json:"parameter_unit"`
	ParameterType  *string     `json:"parameter_type"`
}

// SimulationResponse is the shaped simulation record. Result and
// Metadata appear only on detail views and only when present.
type SimulationResponse struct {
	RunID          int     `json:"run_id"`
	ProjectID      int     `json:"project_id"`
	SimulationID   string  `json:"simulation_id"`
	ResearcherID   int     `json:"researcher_id"`
	ResearcherName string  `json:"researcher_name"`
	Framework      string  `json:"framework"`
	NumQubits      int     `json:"num_qubits"`
	CircuitDepth   *int    `json:"circuit_depth"`
	AlgorithmType  *string `json:"algorithm_type"`
	Description    *string `json:"description"`
	Status         string  `json:"status"`
	ExecutionDate  string  `json:"execution_date"`

	Result   *models.SimulationResult        `json:"result,omitempty"`
	Metadata *models.ReproducibilityMetadata `json:"metadata,omitempty"`

	Parameters []models.Parameter `json:"parameters,omitempty"`
}

// FromSimulation maps a simulation model (with Researcher preloaded) to
// its response shape.
func FromSimulation(s *models.QuantumSimulation) SimulationResponse {
	return SimulationResponse{
		RunID:          s.RunID,
		ProjectID:      s.ProjectID,
		SimulationID:   s.SimulationID,
		ResearcherID:   s.ResearcherID,
		ResearcherName: s.Researcher.FullName(),
		Framework:      s.Framework,
		NumQubits:      s.NumQubits,
		CircuitDepth:   s.CircuitDepth,
		AlgorithmType:  s.AlgorithmType,
		Description:    s.Description,
		Status:         s.Status,
		ExecutionDate:  s.ExecutionDate.UTC().Format(time.RFC3339),
	}
}

// FromSimulationDetailed includes result and metadata when loaded.
func FromSimulationDetailed(s *models.QuantumSimulation) SimulationResponse {
	resp := FromSimulation(s)
	resp.Result = s.Result
	resp.Metadata = s.ReproMetadata
	return resp
}
