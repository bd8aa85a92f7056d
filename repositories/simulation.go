package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
)

// SimulationFilter narrows the simulation listing.
type SimulationFilter struct {
	Status       string
	Framework    string
	ProjectID    int
	ResearcherID int
	MinQubits    int
	MaxQubits    int
	Algorithm    string
}

// simulationSortFields is the sort allow-list for the faceted search.
// Unknown fields fall back to execution_date.
var simulationSortFields = map[string]string{
	"execution_date": "execution_date",
	"num_qubits":     "num_qubits",
	"circuit_depth":  "circuit_depth",
	"simulation_id":  "simulation_id",
}

// SimulationRepository handles database operations for simulation runs.
type SimulationRepository struct {
	db *gorm.DB
}

// NewSimulationRepository creates a simulation repository bound to the
// given connection.
func NewSimulationRepository(db *gorm.DB) *SimulationRepository {
	return &SimulationRepository{db: db}
}

// FindAll retrieves simulations matching the filter, newest first, with
// researcher, result, and metadata preloaded.
func (r *SimulationRepository) FindAll(filter SimulationFilter) ([]models.QuantumSimulation, error) {
	query := r.db.Model(&models.QuantumSimulation{}).
		Preload("Researcher").Preload("Result").Preload("ReproMetadata")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Framework != "" {
		query = query.Where("framework = ?", filter.Framework)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.ResearcherID != 0 {
		query = query.Where("researcher_id = ?", filter.ResearcherID)
	}
	if filter.MinQubits != 0 {
		query = query.Where("num_qubits >= ?", filter.MinQubits)
	}
	if filter.MaxQubits != 0 {
		query = query.Where("num_qubits <= ?", filter.MaxQubits)
	}
	if filter.Algorithm != "" {
		query = query.Where("LOWER(algorithm_type) LIKE LOWER(?)", "%"+filter.Algorithm+"%")
	}

	var simulations []models.QuantumSimulation
	err := query.Order("execution_date DESC").Find(&simulations).Error
	return simulations, err
}

// FindByID retrieves a simulation by run id with all dependents
// preloaded.
func (r *SimulationRepository) FindByID(runID int) (*models.QuantumSimulation, error) {
	var simulation models.QuantumSimulation
	err := r.db.Preload("Researcher").Preload("Result").Preload("ReproMetadata").Preload("Parameters").
		First(&simulation, "run_id = ?", runID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Simulation not found")
	}
	return &simulation, err
}

// ExistsInProject reports whether the caller-chosen simulation id is
// already taken within the project.
func (r *SimulationRepository) ExistsInProject(projectID int, simulationID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.QuantumSimulation{}).
		Where("project_id = ? AND simulation_id = ?", projectID, simulationID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new simulation run.
func (r *SimulationRepository) Create(simulation *models.QuantumSimulation) error {
	return r.db.Create(simulation).Error
}

// Save persists all fields of an existing simulation.
func (r *SimulationRepository) Save(simulation *models.QuantumSimulation) error {
	return r.db.Save(simulation).Error
}

// DeleteCascade removes the simulation and its dependent records
// atomically.
func (r *SimulationRepository) DeleteCascade(runID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", runID).Delete(&models.Parameter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("run_id = ?", runID).Delete(&models.SimulationResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("run_id = ?", runID).Delete(&models.ReproducibilityMetadata{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.QuantumSimulation{}, "run_id = ?", runID).Error
	})
}

// ListByResearcher retrieves a researcher's simulations with dependents
// preloaded.
func (r *SimulationRepository) ListByResearcher(researcherID int) ([]models.QuantumSimulation, error) {
	var simulations []models.QuantumSimulation
	err := r.db.Preload("Researcher").Preload("Result").Preload("ReproMetadata").
		Where("researcher_id = ?", researcherID).
		Find(&simulations).Error
	return simulations, err
}

// CountByResearcher counts a researcher's simulations, optionally
// restricted to one status.
func (r *SimulationRepository) CountByResearcher(researcherID int, status string) (int64, error) {
	query := r.db.Model(&models.QuantumSimulation{}).Where("researcher_id = ?", researcherID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// CountByProject counts a project's simulations, optionally restricted
// to one status.
func (r *SimulationRepository) CountByProject(projectID int, status string) (int64, error) {
	query := r.db.Model(&models.QuantumSimulation{}).Where("project_id = ?", projectID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// ListRecentByProject retrieves a project's newest runs.
func (r *SimulationRepository) ListRecentByProject(projectID, limit int) ([]models.QuantumSimulation, error) {
	var simulations []models.QuantumSimulation
	err := r.db.Preload("Researcher").
		Where("project_id = ?", projectID).
		Order("execution_date DESC").
		Limit(limit).
		Find(&simulations).Error
	return simulations, err
}

// ListByProject retrieves all of a project's runs with dependents
// preloaded.
func (r *SimulationRepository) ListByProject(projectID int) ([]models.QuantumSimulation, error) {
	var simulations []models.QuantumSimulation
	err := r.db.Preload("Researcher").Preload("Result").Preload("ReproMetadata").
		Where("project_id = ?", projectID).
		Find(&simulations).Error
	return simulations, err
}

// ListCompletedByProject retrieves a project's completed runs with
// result and metadata preloaded, for quality averaging.
func (r *SimulationRepository) ListCompletedByProject(projectID int) ([]models.QuantumSimulation, error) {
	var simulations []models.QuantumSimulation
	err := r.db.Preload("Result").Preload("ReproMetadata").
		Where("project_id = ? AND status = ?", projectID, models.SimulationStatusCompleted).
		Find(&simulations).Error
	return simulations, err
}

// SearchWithPagination retrieves a simulation page for the faceted
// search, returning the rows and the unpaged total. The sort field is
// restricted to the allow-list and silently falls back to
// execution_date.
func (r *SimulationRepository) SearchWithPagination(filter dto.SimulationSearchFilter) ([]models.QuantumSimulation, int64, error) {
	query := r.db.Model(&models.QuantumSimulation{}).
		Preload("Researcher").Preload("Result").Preload("ReproMetadata")

	if filter.Framework != "" {
		query = query.Where("framework = ?", filter.Framework)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Algorithm != "" {
		query = query.Where("LOWER(algorithm_type) LIKE LOWER(?)", "%"+filter.Algorithm+"%")
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.ResearcherID != 0 {
		query = query.Where("researcher_id = ?", filter.ResearcherID)
	}
	if filter.MinQubits != 0 {
		query = query.Where("num_qubits >= ?", filter.MinQubits)
	}
	if filter.MaxQubits != 0 {
		query = query.Where("num_qubits <= ?", filter.MaxQubits)
	}
	if filter.MinFidelity != 0 {
		query = query.Joins("JOIN simulation_result ON simulation_result.run_id = quantum_simulation.run_id").
			Where("simulation_result.fidelity >= ?", filter.MinFidelity)
	}
	if filter.DateFrom != "" {
		query = query.Where("execution_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		query = query.Where("execution_date <= ?", filter.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortColumn, ok := simulationSortFields[filter.SortBy]
	if !ok {
		sortColumn = "execution_date"
	}
	direction := "DESC"
	if filter.Order == "asc" {
		direction = "ASC"
	}

	var simulations []models.QuantumSimulation
	offset := (filter.Page - 1) * filter.PerPage
	err := query.Order(sortColumn + " " + direction).
		Limit(filter.PerPage).Offset(offset).
		Find(&simulations).Error
	return simulations, total, err
}

// SearchText finds simulations whose identifying fields contain the
// query, capped at limit rows.
func (r *SimulationRepository) SearchText(query string, limit int) ([]models.QuantumSimulation, error) {
	pattern := "%" + query + "%"
	var simulations []models.QuantumSimulation
	err := r.db.
		Where("LOWER(simulation_id) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(algorithm_type) LIKE LOWER(?) OR LOWER(framework) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern).
		Limit(limit).
		Find(&simulations).Error
	return simulations, err
}

// DistinctFrameworks lists the frameworks seen across all runs.
func (r *SimulationRepository) DistinctFrameworks() ([]string, error) {
	var values []string
	err := r.db.Model(&models.QuantumSimulation{}).
		Distinct("framework").Order("framework").
		Pluck("framework", &values).Error
	return values, err
}

// DistinctStatuses lists the statuses seen across all runs.
func (r *SimulationRepository) DistinctStatuses() ([]string, error) {
	var values []string
	err := r.db.Model(&models.QuantumSimulation{}).
		Distinct("status").Order("status").
		Pluck("status", &values).Error
	return values, err
}

// DistinctAlgorithms lists the algorithm types seen across all runs,
// nulls excluded.
func (r *SimulationRepository) DistinctAlgorithms() ([]string, error) {
	var values []string
	err := r.db.Model(&models.QuantumSimulation{}).
		Distinct("algorithm_type").
		Where("algorithm_type IS NOT NULL").
		Order("algorithm_type").
		Pluck("algorithm_type", &values).Error
	return values, err
}

// QubitRange reports the observed min and max qubit counts, 0/0 when no
// simulations exist.
func (r *SimulationRepository) QubitRange() (int, int, error) {
	type bounds struct {
		Min *int
		Max *int
	}
	var b bounds
	err := r.db.Model(&models.QuantumSimulation{}).
		Select("MIN(num_qubits) AS min, MAX(num_qubits) AS max").
		Scan(&b).Error
	if err != nil {
		return 0, 0, err
	}
	min, max := 0, 0
	if b.Min != nil {
		min = *b.Min
	}
	if b.Max != nil {
		max = *b.Max
	}
	return min, max, nil
}
