package models

import "time"

// ReproducibilityMetadata captures what is needed to re-run a
// simulation, one record per run at most. VerifiedBy and
// VerificationDate are set together when a reviewer signs off.
type ReproducibilityMetadata struct {
	MetadataID           int        `json:"metadata_id" gorm:"column:metadata_id;primaryKey;autoIncrement"`
	RunID                int        `json:"run_id" gorm:"column:run_id;uniqueIndex;not null"`
	RandomSeed           *int64     `json:"random_seed"`
	HardwareBackend      *string    `json:"hardware_backend" gorm:"size:100"`
	FrameworkVersion     *string    `json:"framework_version" gorm:"size:50"`
	ReproducibilityScore *float64   `json:"reproducibility_score"`
	VerifiedBy           *int       `json:"-"`
	VerificationDate     *time.Time `json:"-"`
}

// TableName keeps the original table name.
func (ReproducibilityMetadata) TableName() string { return "reproducibility_metadata" }
