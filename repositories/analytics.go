package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/qslrm-api/models"
)

// FrameworkRow is one grouped framework aggregate. Averages are nil
// when the group has no joined values.
type FrameworkRow struct {
	Framework          string
	TotalRuns          int64
	AvgFidelity        *float64
	AvgTime            *float64
	AvgReproducibility *float64
	AvgQubits          *float64
}

// AlgorithmRow is one grouped algorithm aggregate.
type AlgorithmRow struct {
	AlgorithmType string
	TotalRuns     int64
	AvgFidelity   *float64
	AvgSuccess    *float64
	MinQubits     int
	MaxQubits     int
}

// LeaderboardRow is one researcher ranking aggregate.
type LeaderboardRow struct {
	ResearcherID     int
	FirstName        string
	LastName         string
	Institution      *string
	TotalSimulations int64
	AvgFidelity      *float64
}

// QubitScalingRow is one per-qubit-count aggregate.
type QubitScalingRow struct {
	NumQubits   int
	TotalRuns   int64
	AvgFidelity *float64
	AvgTime     *float64
}

// InstitutionRow is one per-institution aggregate.
type InstitutionRow struct {
	Institution      *string
	ResearcherCount  int64
	TotalSimulations int64
	AvgFidelity      *float64
}

// QualityTotals carries corpus-wide sums for the dashboard means. The
// means divide the non-null sums by the full row counts, matching the
// historical reports.
type QualityTotals struct {
	FidelitySum        float64
	ResultCount        int64
	ReproducibilitySum float64
	MetadataCount      int64
}

// AnalyticsRepository runs the read-only grouped aggregates behind the
// reporting endpoints. It never mutates the store.
type AnalyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates an analytics repository bound to the
// given connection.
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// FrameworkStats groups simulations by framework.
func (r *AnalyticsRepository) FrameworkStats() ([]FrameworkRow, error) {
	var rows []FrameworkRow
	err := r.db.Table("quantum_simulation").
		Select(`quantum_simulation.framework AS framework,
			COUNT(quantum_simulation.run_id) AS total_runs,
			AVG(simulation_result.fidelity) AS avg_fidelity,
			AVG(simulation_result.execution_time_seconds) AS avg_time,
			AVG(reproducibility_metadata.reproducibility_score) AS avg_reproducibility,
			AVG(quantum_simulation.num_qubits) AS avg_qubits`).
		Joins("LEFT JOIN simulation_result ON simulation_result.run_id = quantum_simulation.run_id").
		Joins("LEFT JOIN reproducibility_metadata ON reproducibility_metadata.run_id = quantum_simulation.run_id").
		Group("quantum_simulation.framework").
		Order("total_runs DESC").
		Scan(&rows).Error
	return rows, err
}

// AlgorithmStats groups simulations by algorithm type, skipping runs
// with no algorithm recorded.
func (r *AnalyticsRepository) AlgorithmStats() ([]AlgorithmRow, error) {
	var rows []AlgorithmRow
	err := r.db.Table("quantum_simulation").
		Select(`quantum_simulation.algorithm_type AS algorithm_type,
			COUNT(quantum_simulation.run_id) AS total_runs,
			AVG(simulation_result.fidelity) AS avg_fidelity,
			AVG(simulation_result.success_probability) AS avg_success,
			MIN(quantum_simulation.num_qubits) AS min_qubits,
			MAX(quantum_simulation.num_qubits) AS max_qubits`).
		Joins("LEFT JOIN simulation_result ON simulation_result.run_id = quantum_simulation.run_id").
		Where("quantum_simulation.algorithm_type IS NOT NULL").
		Group("quantum_simulation.algorithm_type").
		Order("total_runs DESC").
		Scan(&rows).Error
	return rows, err
}

// Leaderboard ranks researchers by simulation count. Ties keep the
// store's natural order.
func (r *AnalyticsRepository) Leaderboard(limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.db.Table("researcher").
		Select(`researcher.researcher_id AS researcher_id,
			researcher.first_name AS first_name,
			researcher.last_name AS last_name,
			researcher.institution AS institution,
			COUNT(quantum_simulation.run_id) AS total_simulations,
			AVG(simulation_result.fidelity) AS avg_fidelity`).
		Joins("LEFT JOIN quantum_simulation ON quantum_simulation.researcher_id = researcher.researcher_id").
		Joins("LEFT JOIN simulation_result ON simulation_result.run_id = quantum_simulation.run_id").
		Group("researcher.researcher_id, researcher.first_name, researcher.last_name, researcher.institution").
		Order("total_simulations DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// QubitScaling groups simulations by qubit count, ascending.
func (r *AnalyticsRepository) QubitScaling() ([]QubitScalingRow, error) {
	var rows []QubitScalingRow
	err := r.db.Table("quantum_simulation").
		Select(`quantum_simulation.num_qubits AS num_qubits,
			COUNT(quantum_simulation.run_id) AS total_runs,
			AVG(simulation_result.fidelity) AS avg_fidelity,
			AVG(simulation_result.execution_time_seconds) AS avg_time`).
		Joins("LEFT JOIN simulation_result ON simulation_result.run_id = quantum_simulation.run_id").
		Group("quantum_simulation.num_qubits").
		Order("quantum_simulation.num_qubits").
		Scan(&rows).Error
	return rows, err
}

// InstitutionStats groups researchers by institution, busiest first.
func (r *AnalyticsRepository) InstitutionStats() ([]InstitutionRow, error) {
	var rows []InstitutionRow
	err := r.db.Table("researcher").
		Select(`researcher.institution AS institution,
			COUNT(DISTINCT researcher.researcher_id) AS researcher_count,
			COUNT(quantum_simulation.run_id) AS total_simulations,
			AVG(simulation_result.fidelity) AS avg_fidelity`).
		Joins("LEFT JOIN quantum_simulation ON quantum_simulation.researcher_id = researcher.researcher_id").
		Joins("LEFT JOIN simulation_result ON simulation_result.run_id = quantum_simulation.run_id").
		Group("researcher.institution").
		Order("total_simulations DESC").
		Scan(&rows).Error
	return rows, err
}

// StatusBreakdown counts simulations per status.
func (r *AnalyticsRepository) StatusBreakdown() (map[string]int64, error) {
	return r.breakdown("status")
}

// FrameworkBreakdown counts simulations per framework.
func (r *AnalyticsRepository) FrameworkBreakdown() (map[string]int64, error) {
	return r.breakdown("framework")
}

func (r *AnalyticsRepository) breakdown(column string) (map[string]int64, error) {
	type row struct {
		Key   string
		Total int64
	}
	var rows []row
	err := r.db.Model(&models.QuantumSimulation{}).
		Select(column + " AS key, COUNT(run_id) AS total").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, b := range rows {
		out[b.Key] = b.Total
	}
	return out, nil
}

// Counts returns the headline entity totals.
func (r *AnalyticsRepository) Counts() (researchers, projects, simulations int64, err error) {
	if err = r.db.Model(&models.Researcher{}).Count(&researchers).Error; err != nil {
		return
	}
	if err = r.db.Model(&models.SimulationProject{}).Count(&projects).Error; err != nil {
		return
	}
	err = r.db.Model(&models.QuantumSimulation{}).Count(&simulations).Error
	return
}

// CountSimulationsSince counts runs executed at or after the cutoff.
func (r *AnalyticsRepository) CountSimulationsSince(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.QuantumSimulation{}).
		Where("execution_date >= ?", cutoff).
		Count(&count).Error
	return count, err
}

// SimulationsSince retrieves runs executed at or after the cutoff in
// chronological order, result and metadata preloaded.
func (r *AnalyticsRepository) SimulationsSince(cutoff time.Time) ([]models.QuantumSimulation, error) {
	var simulations []models.QuantumSimulation
	err := r.db.Preload("Result").Preload("ReproMetadata").
		Where("execution_date >= ?", cutoff).
		Order("execution_date").
		Find(&simulations).Error
	return simulations, err
}

// Quality returns the corpus-wide fidelity and reproducibility totals.
func (r *AnalyticsRepository) Quality() (QualityTotals, error) {
	var totals QualityTotals

	type sums struct {
		Sum   *float64
		Total int64
	}

	var res sums
	err := r.db.Model(&models.SimulationResult{}).
		Select("SUM(fidelity) AS sum, COUNT(result_id) AS total").
		Scan(&res).Error
	if err != nil {
		return totals, err
	}
	if res.Sum != nil {
		totals.FidelitySum = *res.Sum
	}
	totals.ResultCount = res.Total

	var meta sums
	err = r.db.Model(&models.ReproducibilityMetadata{}).
		Select("SUM(reproducibility_score) AS sum, COUNT(metadata_id) AS total").
		Scan(&meta).Error
	if err != nil {
		return totals, err
	}
	if meta.Sum != nil {
		totals.ReproducibilitySum = *meta.Sum
	}
	totals.MetadataCount = meta.Total

	return totals, nil
}
