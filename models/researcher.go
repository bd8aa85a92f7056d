package models

import "time"

// Researcher represents a registered researcher.
type Researcher struct {
	ResearcherID int       `json:"researcher_id" gorm:"column:researcher_id;primaryKey;autoIncrement"`
	FirstName    string    `json:"first_name" gorm:"size:100;not null"`
	LastName     string    `json:"last_name" gorm:"size:100;not null"`
	Email        string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	OrcidID      *string   `json:"orcid_id" gorm:"column:orcid_id;size:19;uniqueIndex"`
	Institution  *string   `json:"institution" gorm:"size:255"`
	Department   *string   `json:"department" gorm:"size:255"`
	Role         *string   `json:"role" gorm:"size:100"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

// TableName keeps the original singular table name.
func (Researcher) TableName() string { return "researcher" }

// FullName joins the name parts the way every report renders them.
func (r *Researcher) FullName() string {
	return r.FirstName + " " + r.LastName
}
