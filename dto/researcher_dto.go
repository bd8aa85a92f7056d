package dto

import (
	"time"

	"github.com/qslrm-api/models"
)

// ResearcherPayload is the request body for creating or updating a
// researcher. Pointer fields distinguish supplied from omitted values so
// updates only touch what the caller sent.
type ResearcherPayload struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Email       *string `json:"email"`
	OrcidID     *string `json:"orcid_id"`
	Institution *string `json:"institution"`
	Department  *string `json:"department"`
	Role        *string `json:"role"`
}

// ResearcherResponse is the shaped researcher record.
type ResearcherResponse struct {
	ResearcherID int     `json:"researcher_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	FullName     string  `json:"full_name"`
	Email        string  `json:"email"`
	OrcidID      *string `json:"orcid_id"`
	Institution  *string `json:"institution"`
	Department   *string `json:"department"`
	Role         *string `json:"role"`
	CreatedAt    string  `json:"created_at"`
}

// ResearcherStatistics is the per-researcher activity summary attached
// to the detail view.
type ResearcherStatistics struct {
	TotalSimulations     int64 `json:"total_simulations"`
	CompletedSimulations int64 `json:"completed_simulations"`
	FailedSimulations    int64 `json:"failed_simulations"`
	RunningSimulations   int64 `json:"running_simulations"`
	ProjectsOwned        int64 `json:"projects_owned"`
	ProjectsInvolved     int64 `json:"projects_involved"`
}

// ResearcherDetailResponse embeds the statistics block.
type ResearcherDetailResponse struct {
	ResearcherResponse
	Statistics ResearcherStatistics `json:"statistics"`
}

// FromResearcher maps a researcher model to its response shape.
func FromResearcher(r *models.Researcher) ResearcherResponse {
	return ResearcherResponse{
		ResearcherID: r.ResearcherID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		FullName:     r.FullName(),
		Email:        r.Email,
		OrcidID:      r.OrcidID,
		Institution:  r.Institution,
		Department:   r.Department,
		Role:         r.Role,
		CreatedAt:    r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromResearchers maps a researcher slice to response shapes.
func FromResearchers(rs []models.Researcher) []ResearcherResponse {
	out := make([]ResearcherResponse, 0, len(rs))
	for i := range rs {
		out = append(out, FromResearcher(&rs[i]))
	}
	return out
}
