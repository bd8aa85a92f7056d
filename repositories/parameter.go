package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/models"
)

// ParameterRepository handles database operations for simulation
// parameters.
type ParameterRepository struct {
	db *gorm.DB
}

// NewParameterRepository creates a parameter repository bound to the
// given connection.
func NewParameterRepository(db *gorm.DB) *ParameterRepository {
	return &ParameterRepository{db: db}
}

// ListByRun retrieves all parameters attached to a run.
func (r *ParameterRepository) ListByRun(runID int) ([]models.Parameter, error) {
	var parameters []models.Parameter
	err := r.db.Where("run_id = ?", runID).Find(&parameters).Error
	return parameters, err
}

// NameExists reports whether the run already has a parameter with the
// given name.
func (r *ParameterRepository) NameExists(runID int, name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Parameter{}).
		Where("run_id = ? AND parameter_name = ?", runID, name).
		Count(&count).Error
	return count > 0, err
}

// FindByID retrieves one parameter scoped to its run.
func (r *ParameterRepository) FindByID(runID, parameterID int) (*models.Parameter, error) {
	var parameter models.Parameter
	err := r.db.First(&parameter, "parameter_id = ? AND run_id = ?", parameterID, runID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Parameter not found")
	}
	return &parameter, err
}

// Create inserts a new parameter.
func (r *ParameterRepository) Create(parameter *models.Parameter) error {
	return r.db.Create(parameter).Error
}

// Delete removes a parameter.
func (r *ParameterRepository) Delete(runID, parameterID int) error {
	return r.db.Delete(&models.Parameter{}, "parameter_id = ? AND run_id = ?", parameterID, runID).Error
}
