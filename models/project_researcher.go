package models

import "time"

// Membership roles.
const (
	MemberRoleLead         = "lead"
	MemberRoleCollaborator = "collaborator"
)

// ProjectResearcher is the membership join between projects and
// researchers. A (project, researcher) pair appears at most once and the
// project owner always holds the lead role.
type ProjectResearcher struct {
	ProjectID    int       `json:"project_id" gorm:"primaryKey;autoIncrement:false"`
	ResearcherID int       `json:"researcher_id" gorm:"primaryKey;autoIncrement:false"`
	Role         string    `json:"role" gorm:"size:50;default:collaborator"`
	JoinedDate   time.Time `json:"joined_date" gorm:"type:date"`

	Researcher Researcher        `json:"-" gorm:"foreignKey:ResearcherID;references:ResearcherID"`
	Project    SimulationProject `json:"-" gorm:"foreignKey:ProjectID;references:ProjectID"`
}

// TableName keeps the original table name.
func (ProjectResearcher) TableName() string { return "project_researchers" }
