package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/models"
)

// MetadataRepository handles database operations for reproducibility
// metadata.
type MetadataRepository struct {
	db *gorm.DB
}

// NewMetadataRepository creates a metadata repository bound to the
// given connection.
func NewMetadataRepository(db *gorm.DB) *MetadataRepository {
	return &MetadataRepository{db: db}
}

// FindByRun retrieves the metadata attached to a run.
func (r *MetadataRepository) FindByRun(runID int) (*models.ReproducibilityMetadata, error) {
	var metadata models.ReproducibilityMetadata
	err := r.db.First(&metadata, "run_id = ?", runID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("No metadata available")
	}
	return &metadata, err
}

// Save persists the metadata record, inserting or updating as needed.
func (r *MetadataRepository) Save(metadata *models.ReproducibilityMetadata) error {
	return r.db.Save(metadata).Error
}
