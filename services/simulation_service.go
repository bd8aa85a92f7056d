package services

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/metrics"
	"github.com/qslrm-api/models"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/validation"
)

// SimulationService handles simulation runs and their dependent
// results, metadata, and parameters.
type SimulationService struct {
	simulations *repositories.SimulationRepository
	projects    *repositories.ProjectRepository
	researchers *repositories.ResearcherRepository
	results     *repositories.ResultRepository
	metadata    *repositories.MetadataRepository
	parameters  *repositories.ParameterRepository
	logger      *zap.Logger
}

// NewSimulationService creates a simulation service.
func NewSimulationService(
	simulations *repositories.SimulationRepository,
	projects *repositories.ProjectRepository,
	researchers *repositories.ResearcherRepository,
	results *repositories.ResultRepository,
	metadata *repositories.MetadataRepository,
	parameters *repositories.ParameterRepository,
	logger *zap.Logger,
) *SimulationService {
	return &SimulationService{
		simulations: simulations,
		projects:    projects,
		researchers: researchers,
		results:     results,
		metadata:    metadata,
		parameters:  parameters,
		logger:      logger,
	}
}

// List retrieves simulations matching the filter, newest first.
func (s *SimulationService) List(filter repositories.SimulationFilter) ([]dto.SimulationResponse, error) {
	simulations, err := s.simulations.FindAll(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SimulationResponse, 0, len(simulations))
	for i := range simulations {
		out = append(out, dto.FromSimulationDetailed(&simulations[i]))
	}
	return out, nil
}

// Get retrieves one simulation with result, metadata, and parameters.
func (s *SimulationService) Get(runID int) (*dto.SimulationResponse, error) {
	simulation, err := s.simulations.FindByID(runID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromSimulationDetailed(simulation)
	resp.Parameters = simulation.Parameters
	return &resp, nil
}

// Create registers a new simulation run. The project and researcher
// must exist and the caller-chosen id must be free within the project.
func (s *SimulationService) Create(p *dto.SimulationPayload) (*dto.SimulationResponse, error) {
	if err := validation.SimulationData(p, false); err != nil {
		return nil, err
	}

	if _, err := s.projects.FindByID(*p.ProjectID); err != nil {
		return nil, err
	}
	researcher, err := s.researchers.FindByID(*p.ResearcherID)
	if err != nil {
		return nil, err
	}

	taken, err := s.simulations.ExistsInProject(*p.ProjectID, *p.SimulationID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("Simulation ID already exists in this project")
	}

	simulation := models.QuantumSimulation{
		ProjectID:     *p.ProjectID,
		SimulationID:  *p.SimulationID,
		ResearcherID:  *p.ResearcherID,
		Framework:     *p.Framework,
		NumQubits:     *p.NumQubits,
		CircuitDepth:  p.CircuitDepth,
		ExecutionDate: time.Now().UTC(),
		Status:        models.SimulationStatusPending,
	}
	if p.Status != nil {
		simulation.Status = *p.Status
	}
	applyOptionalString(&simulation.AlgorithmType, p.AlgorithmType, 100)
	applyOptionalString(&simulation.Description, p.Description, 0)

	if err := s.simulations.Create(&simulation); err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues("simulation").Inc()
	s.logger.Info("simulation created",
		zap.Int("run_id", simulation.RunID),
		zap.String("simulation_id", simulation.SimulationID),
		zap.Int("project_id", simulation.ProjectID))

	simulation.Researcher = *researcher
	resp := dto.FromSimulation(&simulation)
	return &resp, nil
}

// Update modifies the supplied fields of an existing simulation.
func (s *SimulationService) Update(runID int, p *dto.SimulationPayload) (*dto.SimulationResponse, error) {
	if err := validation.SimulationData(p, true); err != nil {
		return nil, err
	}

	simulation, err := s.simulations.FindByID(runID)
	if err != nil {
		return nil, err
	}

	if p.SimulationID != nil && *p.SimulationID != simulation.SimulationID {
		if err := validation.SimulationID(*p.SimulationID); err != nil {
			return nil, err
		}
		taken, err := s.simulations.ExistsInProject(simulation.ProjectID, *p.SimulationID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Conflict("Simulation ID already exists in this project")
		}
		simulation.SimulationID = *p.SimulationID
	}
	if p.Framework != nil {
		simulation.Framework = *p.Framework
	}
	if p.NumQubits != nil {
		simulation.NumQubits = *p.NumQubits
	}
	if p.CircuitDepth != nil {
		simulation.CircuitDepth = p.CircuitDepth
	}
	if p.Status != nil {
		simulation.Status = *p.Status
	}
	applyOptionalString(&simulation.AlgorithmType, p.AlgorithmType, 100)
	applyOptionalString(&simulation.Description, p.Description, 0)

	if err := s.simulations.Save(simulation); err != nil {
		return nil, err
	}

	resp := dto.FromSimulationDetailed(simulation)
	return &resp, nil
}

// Delete removes a simulation and its dependent records.
func (s *SimulationService) Delete(runID int) error {
	if _, err := s.simulations.FindByID(runID); err != nil {
		return err
	}
	if err := s.simulations.DeleteCascade(runID); err != nil {
		return err
	}
	s.logger.Info("simulation deleted", zap.Int("run_id", runID))
	return nil
}

// Result retrieves the result attached to a run.
func (s *SimulationService) Result(runID int) (*models.SimulationResult, error) {
	if _, err := s.simulations.FindByID(runID); err != nil {
		return nil, err
	}
	return s.results.FindByRun(runID)
}

// SaveResult records or replaces a run's result, reporting whether the
// record was newly created. Saving a result onto a pending or running
// simulation marks it completed in the same transaction.
func (s *SimulationService) SaveResult(runID int, p *dto.ResultPayload) (*models.SimulationResult, bool, error) {
	if err := validation.ResultData(p); err != nil {
		return nil, false, err
	}

	simulation, err := s.simulations.FindByID(runID)
	if err != nil {
		return nil, false, err
	}

	result := simulation.Result
	created := result == nil
	if result == nil {
		result = &models.SimulationResult{RunID: runID}
	}
	if p.ExecutionTimeSeconds != nil {
		result.ExecutionTimeSeconds = p.ExecutionTimeSeconds
	}
	if p.SuccessProbability != nil {
		result.SuccessProbability = p.SuccessProbability
	}
	if p.Fidelity != nil {
		result.Fidelity = p.Fidelity
	}
	if p.ErrorRate != nil {
		result.ErrorRate = p.ErrorRate
	}
	if p.OutputData != nil {
		encoded := stringifyJSON(p.OutputData)
		result.OutputData = &encoded
	}

	completeRun := simulation.Status == models.SimulationStatusPending ||
		simulation.Status == models.SimulationStatusRunning
	if err := s.results.SaveCompleting(result, completeRun); err != nil {
		return nil, false, err
	}
	if completeRun {
		s.logger.Info("simulation completed", zap.Int("run_id", runID))
	}
	return result, created, nil
}

// Metadata retrieves the reproducibility metadata attached to a run.
func (s *SimulationService) Metadata(runID int) (*models.ReproducibilityMetadata, error) {
	if _, err := s.simulations.FindByID(runID); err != nil {
		return nil, err
	}
	return s.metadata.FindByRun(runID)
}

// SaveMetadata records or replaces a run's reproducibility metadata,
// reporting whether the record was newly created. Supplying a verifier
// stamps the verification date.
func (s *SimulationService) SaveMetadata(runID int, p *dto.MetadataPayload) (*models.ReproducibilityMetadata, bool, error) {
	if err := validation.MetadataData(p); err != nil {
		return nil, false, err
	}

	simulation, err := s.simulations.FindByID(runID)
	if err != nil {
		return nil, false, err
	}

	metadata := simulation.ReproMetadata
	created := metadata == nil
	if metadata == nil {
		metadata = &models.ReproducibilityMetadata{RunID: runID}
	}
	if p.RandomSeed != nil {
		metadata.RandomSeed = p.RandomSeed
	}
	if p.HardwareBackend != nil {
		metadata.HardwareBackend = p.HardwareBackend
	}
	if p.FrameworkVersion != nil {
		metadata.FrameworkVersion = p.FrameworkVersion
	}
	if p.ReproducibilityScore != nil {
		metadata.ReproducibilityScore = p.ReproducibilityScore
	}
	if p.VerifiedBy != nil {
		now := time.Now().UTC()
		metadata.VerifiedBy = p.VerifiedBy
		metadata.VerificationDate = &now
	}

	if err := s.metadata.Save(metadata); err != nil {
		return nil, false, err
	}
	return metadata, created, nil
}

// Parameters retrieves a run's parameters.
func (s *SimulationService) Parameters(runID int) ([]models.Parameter, error) {
	if _, err := s.simulations.FindByID(runID); err != nil {
		return nil, err
	}
	return s.parameters.ListByRun(runID)
}

// AddParameter attaches a parameter to a run. Names are unique within
// the run.
func (s *SimulationService) AddParameter(runID int, p *dto.ParameterPayload) (*models.Parameter, error) {
	if err := validation.ParameterData(p); err != nil {
		return nil, err
	}

	if _, err := s.simulations.FindByID(runID); err != nil {
		return nil, err
	}

	name := validation.SanitizeString(*p.ParameterName, 100)
	taken, err := s.parameters.NameExists(runID, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("Parameter already exists for this simulation")
	}

	parameter := models.Parameter{
		RunID:          runID,
		ParameterName:  name,
		ParameterValue: stringifyJSON(p.ParameterValue),
		ParameterUnit:  p.ParameterUnit,
		ParameterType:  "string",
	}
	if p.ParameterType != nil {
		parameter.ParameterType = *p.ParameterType
	}

	if err := s.parameters.Create(&parameter); err != nil {
		return nil, err
	}
	return &parameter, nil
}

// DeleteParameter removes one parameter from a run.
func (s *SimulationService) DeleteParameter(runID, parameterID int) error {
	if _, err := s.simulations.FindByID(runID); err != nil {
		return err
	}
	if _, err := s.parameters.FindByID(runID, parameterID); err != nil {
		return err
	}
	return s.parameters.Delete(runID, parameterID)
}

// stringifyJSON renders a decoded JSON value as its stored text form.
// Plain strings are kept as-is; everything else is re-encoded.
func stringifyJSON(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(encoded)
}
