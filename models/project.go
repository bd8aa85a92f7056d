package models

import "time"

// Project status values.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"
	ProjectStatusOnHold    = "on-hold"
)

// ProjectStatuses lists the accepted project status values.
var ProjectStatuses = []string{
	ProjectStatusActive,
	ProjectStatusCompleted,
	ProjectStatusArchived,
	ProjectStatusOnHold,
}

// SimulationProject groups simulations under an owning researcher.
type SimulationProject struct {
	ProjectID    int        `json:"project_id" gorm:"column:project_id;primaryKey;autoIncrement"`
	Title        string     `json:"title" gorm:"size:255;not null"`
	Description  *string    `json:"description"`
	FieldOfStudy *string    `json:"field_of_study" gorm:"size:100"`
	OwnerID      int        `json:"owner_id" gorm:"not null;index"`
	Status       string     `json:"status" gorm:"size:20;default:active"`
	StartDate    time.Time  `json:"start_date" gorm:"type:date"`
	EndDate      *time.Time `json:"end_date" gorm:"type:date"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"-"`

	Owner Researcher `json:"-" gorm:"foreignKey:OwnerID;references:ResearcherID"`
}

// TableName keeps the original singular table name.
func (SimulationProject) TableName() string { return "simulation_project" }
