package dto

import (
	"time"

	"github.com/qslrm-api/models"
)

// ProjectPayload is the request body for creating or updating a project.
// Dates arrive as YYYY-MM-DD strings; an empty end_date clears it.
type ProjectPayload struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	FieldOfStudy *string `json:"field_of_study"`
	OwnerID      *int    `json:"owner_id"`
	Status       *string `json:"status"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
}

// TeamMemberPayload is the request body for adding a team member.
type TeamMemberPayload struct {
	ResearcherID *int    `json:"researcher_id"`
	Role         *string `json:"role"`
}

// ProjectResponse is the shaped project record. TeamSize and
// SimulationCount are only present on stats-bearing views.
type ProjectResponse struct {
	ProjectID       int     `json:"project_id"`
	Title           string  `json:"title"`
	Description     *string `json:"description"`
	FieldOfStudy    *string `json:"field_of_study"`
	OwnerID         int     `json:"owner_id"`
	OwnerName       string  `json:"owner_name"`
	Status          string  `json:"status"`
	StartDate       string  `json:"start_date"`
	EndDate         *string `json:"end_date"`
	CreatedAt       string  `json:"created_at"`
	TeamSize        *int64  `json:"team_size,omitempty"`
	SimulationCount *int64  `json:"simulation_count,omitempty"`

	RoleInProject *string `json:"role_in_project,omitempty"`
	JoinedDate    *string `json:"joined_date,omitempty"`
}

// TeamMemberResponse is one row of a project's team listing.
type TeamMemberResponse struct {
	ResearcherID   int     `json:"researcher_id"`
	ResearcherName string  `json:"researcher_name"`
	Email          *string `json:"email,omitempty"`
	Role           string  `json:"role"`
	JoinedDate     string  `json:"joined_date"`
}

// ProjectDetailResponse adds the team and recent runs to the stats view.
type ProjectDetailResponse struct {
	ProjectResponse
	Team              []TeamMemberResponse `json:"team"`
	RecentSimulations []SimulationResponse `json:"recent_simulations"`
}

// FromProject maps a project model (with Owner preloaded) to its
// response shape.
func FromProject(p *models.SimulationProject) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:    p.ProjectID,
		Title:        p.Title,
		Description:  p.Description,
		FieldOfStudy: p.FieldOfStudy,
		OwnerID:      p.OwnerID,
		OwnerName:    p.Owner.FullName(),
		Status:       p.Status,
		StartDate:    p.StartDate.Format("2006-01-02"),
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if p.EndDate != nil {
		end := p.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}

// WithStats attaches the membership and simulation counts.
func (r ProjectResponse) WithStats(teamSize, simulationCount int64) ProjectResponse {
	r.TeamSize = &teamSize
	r.SimulationCount = &simulationCount
	return r
}
