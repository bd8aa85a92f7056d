package services

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/metrics"
	"github.com/qslrm-api/models"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/validation"
)

const recentSimulationLimit = 10

// ProjectService handles project and team membership business logic.
type ProjectService struct {
	projects    *repositories.ProjectRepository
	researchers *repositories.ResearcherRepository
	simulations *repositories.SimulationRepository
	logger      *zap.Logger
}

// NewProjectService creates a project service.
func NewProjectService(
	projects *repositories.ProjectRepository,
	researchers *repositories.ResearcherRepository,
	simulations *repositories.SimulationRepository,
	logger *zap.Logger,
) *ProjectService {
	return &ProjectService{
		projects:    projects,
		researchers: researchers,
		simulations: simulations,
		logger:      logger,
	}
}

// List retrieves projects matching the filter.
func (s *ProjectService) List(filter repositories.ProjectFilter) ([]dto.ProjectResponse, error) {
	projects, err := s.projects.FindAll(filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, dto.FromProject(&projects[i]))
	}
	return out, nil
}

// Get retrieves one project with its team, counts, and recent runs.
func (s *ProjectService) Get(id int) (*dto.ProjectDetailResponse, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return nil, err
	}

	teamSize, err := s.projects.CountTeam(id)
	if err != nil {
		return nil, err
	}
	simulationCount, err := s.simulations.CountByProject(id, "")
	if err != nil {
		return nil, err
	}
	team, err := s.Team(id)
	if err != nil {
		return nil, err
	}
	recent, err := s.simulations.ListRecentByProject(id, recentSimulationLimit)
	if err != nil {
		return nil, err
	}

	recentResponses := make([]dto.SimulationResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, dto.FromSimulation(&recent[i]))
	}

	return &dto.ProjectDetailResponse{
		ProjectResponse:   dto.FromProject(project).WithStats(teamSize, simulationCount),
		Team:              team,
		RecentSimulations: recentResponses,
	}, nil
}

// Create registers a new project. The owner is verified and enrolled as
// the lead team member in the same transaction as the insert.
func (s *ProjectService) Create(p *dto.ProjectPayload) (*dto.ProjectResponse, error) {
	if err := validation.ProjectData(p, false); err != nil {
		return nil, err
	}

	owner, err := s.researchers.FindByID(*p.OwnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFound("Owner researcher not found")
		}
		return nil, err
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if p.StartDate != nil && *p.StartDate != "" {
		startDate, _ = validation.ParseDate(*p.StartDate)
	}

	project := models.SimulationProject{
		Title:     validation.SanitizeString(*p.Title, 255),
		OwnerID:   owner.ResearcherID,
		Status:    models.ProjectStatusActive,
		StartDate: startDate,
	}
	if p.Status != nil {
		project.Status = *p.Status
	}
	applyOptionalString(&project.Description, p.Description, 0)
	applyOptionalString(&project.FieldOfStudy, p.FieldOfStudy, 100)
	if p.EndDate != nil && *p.EndDate != "" {
		end, _ := validation.ParseDate(*p.EndDate)
		project.EndDate = &end
	}

	if err := s.projects.CreateWithLead(&project, startDate); err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues("project").Inc()
	s.logger.Info("project created",
		zap.Int("project_id", project.ProjectID),
		zap.Int("owner_id", project.OwnerID))

	project.Owner = *owner
	resp := dto.FromProject(&project)
	return &resp, nil
}

// Update modifies the supplied fields of an existing project.
func (s *ProjectService) Update(id int, p *dto.ProjectPayload) (*dto.ProjectResponse, error) {
	if err := validation.ProjectData(p, true); err != nil {
		return nil, err
	}

	project, err := s.projects.FindByID(id)
	if err != nil {
		return nil, err
	}

	if p.Title != nil {
		project.Title = validation.SanitizeString(*p.Title, 255)
	}
	applyOptionalString(&project.Description, p.Description, 0)
	applyOptionalString(&project.FieldOfStudy, p.FieldOfStudy, 100)
	if p.Status != nil {
		project.Status = *p.Status
	}
	if p.StartDate != nil && *p.StartDate != "" {
		start, _ := validation.ParseDate(*p.StartDate)
		project.StartDate = start
	}
	if p.EndDate != nil {
		if *p.EndDate == "" {
			project.EndDate = nil
		} else {
			end, _ := validation.ParseDate(*p.EndDate)
			project.EndDate = &end
		}
	}

	if err := s.projects.Save(project); err != nil {
		return nil, err
	}

	resp := dto.FromProject(project)
	return &resp, nil
}

// Delete removes a project together with its memberships, simulations,
// and their dependent records.
func (s *ProjectService) Delete(id int) error {
	if _, err := s.projects.FindByID(id); err != nil {
		return err
	}
	if err := s.projects.DeleteCascade(id); err != nil {
		return err
	}
	s.logger.Info("project deleted", zap.Int("project_id", id))
	return nil
}

// Team retrieves a project's members.
func (s *ProjectService) Team(projectID int) ([]dto.TeamMemberResponse, error) {
	members, err := s.projects.ListTeam(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TeamMemberResponse, 0, len(members))
	for i := range members {
		m := &members[i]
		email := m.Researcher.Email
		out = append(out, dto.TeamMemberResponse{
			ResearcherID:   m.ResearcherID,
			ResearcherName: m.Researcher.FullName(),
			Email:          &email,
			Role:           m.Role,
			JoinedDate:     m.JoinedDate.Format("2006-01-02"),
		})
	}
	return out, nil
}

// AddMember enrolls a researcher in a project's team.
func (s *ProjectService) AddMember(projectID int, p *dto.TeamMemberPayload) (*dto.TeamMemberResponse, error) {
	if p.ResearcherID == nil {
		return nil, &validation.Error{Field: "researcher_id", Message: "Missing required fields: researcher_id"}
	}

	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}
	researcher, err := s.researchers.FindByID(*p.ResearcherID)
	if err != nil {
		return nil, err
	}

	if _, err := s.projects.FindMember(projectID, *p.ResearcherID); err == nil {
		return nil, apperrors.Conflict("Researcher is already a team member")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	role := models.MemberRoleCollaborator
	if p.Role != nil && *p.Role != "" {
		role = *p.Role
	}
	member := models.ProjectResearcher{
		ProjectID:    projectID,
		ResearcherID: *p.ResearcherID,
		Role:         role,
		JoinedDate:   time.Now().UTC().Truncate(24 * time.Hour),
	}
	if err := s.projects.AddMember(&member); err != nil {
		return nil, err
	}

	email := researcher.Email
	return &dto.TeamMemberResponse{
		ResearcherID:   member.ResearcherID,
		ResearcherName: researcher.FullName(),
		Email:          &email,
		Role:           member.Role,
		JoinedDate:     member.JoinedDate.Format("2006-01-02"),
	}, nil
}

// RemoveMember withdraws a researcher from a project's team. The owner
// cannot be removed while they own the project.
func (s *ProjectService) RemoveMember(projectID, researcherID int) error {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		return err
	}
	if _, err := s.projects.FindMember(projectID, researcherID); err != nil {
		return err
	}
	if researcherID == project.OwnerID {
		return apperrors.Conflict("Cannot remove project owner from team")
	}
	return s.projects.RemoveMember(projectID, researcherID)
}

// Simulations retrieves all runs recorded under a project.
func (s *ProjectService) Simulations(projectID int) ([]dto.SimulationResponse, error) {
	if _, err := s.projects.FindByID(projectID); err != nil {
		return nil, err
	}
	simulations, err := s.simulations.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SimulationResponse, 0, len(simulations))
	for i := range simulations {
		out = append(out, dto.FromSimulationDetailed(&simulations[i]))
	}
	return out, nil
}
