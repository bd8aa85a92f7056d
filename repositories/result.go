package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/models"
)

// ResultRepository handles database operations for simulation results.
type ResultRepository struct {
	db *gorm.DB
}

// NewResultRepository creates a result repository bound to the given
// connection.
func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// FindByRun retrieves the result attached to a run.
func (r *ResultRepository) FindByRun(runID int) (*models.SimulationResult, error) {
	var result models.SimulationResult
	err := r.db.First(&result, "run_id = ?", runID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("No results available")
	}
	return &result, err
}

// SaveCompleting persists the result and, when completeRun is set,
// flips the owning simulation to completed in the same transaction.
func (r *ResultRepository) SaveCompleting(result *models.SimulationResult, completeRun bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(result).Error; err != nil {
			return err
		}
		if completeRun {
			return tx.Model(&models.QuantumSimulation{}).
				Where("run_id = ?", result.RunID).
				Update("status", models.SimulationStatusCompleted).Error
		}
		return nil
	})
}
