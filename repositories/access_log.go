package repositories

import (
	"gorm.io/gorm"

	"github.com/qslrm-api/models"
)

// AccessLogRepository appends to and reads the activity trail. Rows are
// never updated or deleted.
type AccessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository creates an access log repository bound to the
// given connection.
func NewAccessLogRepository(db *gorm.DB) *AccessLogRepository {
	return &AccessLogRepository{db: db}
}

// Append records one action.
func (r *AccessLogRepository) Append(entry *models.AccessLog) error {
	return r.db.Create(entry).Error
}

// ListRecent retrieves the newest entries, capped at limit rows.
func (r *AccessLogRepository) ListRecent(limit int) ([]models.AccessLog, error) {
	var entries []models.AccessLog
	err := r.db.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
