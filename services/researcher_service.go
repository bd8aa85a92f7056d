package services

import (
	"go.uber.org/zap"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/metrics"
	"github.com/qslrm-api/models"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/validation"
)

// ResearcherService handles researcher business logic.
type ResearcherService struct {
	researchers *repositories.ResearcherRepository
	projects    *repositories.ProjectRepository
	simulations *repositories.SimulationRepository
	logger      *zap.Logger
}

// NewResearcherService creates a researcher service.
func NewResearcherService(
	researchers *repositories.ResearcherRepository,
	projects *repositories.ProjectRepository,
	simulations *repositories.SimulationRepository,
	logger *zap.Logger,
) *ResearcherService {
	return &ResearcherService{
		researchers: researchers,
		projects:    projects,
		simulations: simulations,
		logger:      logger,
	}
}

// List retrieves researchers matching the filter.
func (s *ResearcherService) List(filter repositories.ResearcherFilter) ([]dto.ResearcherResponse, error) {
	researchers, err := s.researchers.FindAll(filter)
	if err != nil {
		return nil, err
	}
	return dto.FromResearchers(researchers), nil
}

// Get retrieves one researcher with their activity statistics.
func (s *ResearcherService) Get(id int) (*dto.ResearcherDetailResponse, error) {
	researcher, err := s.researchers.FindByID(id)
	if err != nil {
		return nil, err
	}

	total, err := s.simulations.CountByResearcher(id, "")
	if err != nil {
		return nil, err
	}
	completed, err := s.simulations.CountByResearcher(id, models.SimulationStatusCompleted)
	if err != nil {
		return nil, err
	}
	failed, err := s.simulations.CountByResearcher(id, models.SimulationStatusFailed)
	if err != nil {
		return nil, err
	}
	running, err := s.simulations.CountByResearcher(id, models.SimulationStatusRunning)
	if err != nil {
		return nil, err
	}
	owned, err := s.projects.CountByOwner(id)
	if err != nil {
		return nil, err
	}
	involved, err := s.projects.CountMemberships(id)
	if err != nil {
		return nil, err
	}

	return &dto.ResearcherDetailResponse{
		ResearcherResponse: dto.FromResearcher(researcher),
		Statistics: dto.ResearcherStatistics{
			TotalSimulations:     total,
			CompletedSimulations: completed,
			FailedSimulations:    failed,
			RunningSimulations:   running,
			ProjectsOwned:        owned,
			ProjectsInvolved:     involved,
		},
	}, nil
}

// Create registers a new researcher after checking email and ORCID
// uniqueness.
func (s *ResearcherService) Create(p *dto.ResearcherPayload) (*dto.ResearcherResponse, error) {
	if err := validation.ResearcherData(p, false); err != nil {
		return nil, err
	}

	email := validation.SanitizeString(*p.Email, 255)
	taken, err := s.researchers.EmailExists(email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.Conflict("Email already exists")
	}

	researcher := models.Researcher{
		FirstName: validation.SanitizeString(*p.FirstName, 100),
		LastName:  validation.SanitizeString(*p.LastName, 100),
		Email:     email,
	}
	if p.OrcidID != nil && *p.OrcidID != "" {
		taken, err := s.researchers.OrcidExists(*p.OrcidID, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Conflict("ORCID ID already exists")
		}
		researcher.OrcidID = p.OrcidID
	}
	applyOptionalString(&researcher.Institution, p.Institution, 200)
	applyOptionalString(&researcher.Department, p.Department, 200)
	applyOptionalString(&researcher.Role, p.Role, 50)
	if researcher.Role == nil {
		role := "Researcher"
		researcher.Role = &role
	}

	if err := s.researchers.Create(&researcher); err != nil {
		return nil, err
	}

	metrics.RecordsCreated.WithLabelValues("researcher").Inc()
	s.logger.Info("researcher created",
		zap.Int("researcher_id", researcher.ResearcherID),
		zap.String("email", researcher.Email))

	resp := dto.FromResearcher(&researcher)
	return &resp, nil
}

// Update modifies the supplied fields of an existing researcher.
func (s *ResearcherService) Update(id int, p *dto.ResearcherPayload) (*dto.ResearcherResponse, error) {
	if err := validation.ResearcherData(p, true); err != nil {
		return nil, err
	}

	researcher, err := s.researchers.FindByID(id)
	if err != nil {
		return nil, err
	}

	if p.Email != nil && *p.Email != researcher.Email {
		taken, err := s.researchers.EmailExists(*p.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Conflict("Email already exists")
		}
		researcher.Email = validation.SanitizeString(*p.Email, 255)
	}
	if p.OrcidID != nil && *p.OrcidID != "" {
		taken, err := s.researchers.OrcidExists(*p.OrcidID, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.Conflict("ORCID ID already exists")
		}
		researcher.OrcidID = p.OrcidID
	}
	if p.FirstName != nil {
		researcher.FirstName = validation.SanitizeString(*p.FirstName, 100)
	}
	if p.LastName != nil {
		researcher.LastName = validation.SanitizeString(*p.LastName, 100)
	}
	applyOptionalString(&researcher.Institution, p.Institution, 200)
	applyOptionalString(&researcher.Department, p.Department, 200)
	applyOptionalString(&researcher.Role, p.Role, 50)

	if err := s.researchers.Save(researcher); err != nil {
		return nil, err
	}

	resp := dto.FromResearcher(researcher)
	return &resp, nil
}

// Delete removes a researcher. Owning projects or having simulations
// blocks the deletion so history is never orphaned.
func (s *ResearcherService) Delete(id int) error {
	if _, err := s.researchers.FindByID(id); err != nil {
		return err
	}

	owned, err := s.projects.CountByOwner(id)
	if err != nil {
		return err
	}
	if owned > 0 {
		return apperrors.Conflict("Cannot delete researcher who owns projects")
	}

	simulations, err := s.simulations.CountByResearcher(id, "")
	if err != nil {
		return err
	}
	if simulations > 0 {
		return apperrors.Conflict("Cannot delete researcher with simulations")
	}

	if err := s.researchers.Delete(id); err != nil {
		return err
	}
	s.logger.Info("researcher deleted", zap.Int("researcher_id", id))
	return nil
}

// Simulations retrieves a researcher's simulation runs.
func (s *ResearcherService) Simulations(id int) ([]dto.SimulationResponse, error) {
	if _, err := s.researchers.FindByID(id); err != nil {
		return nil, err
	}
	simulations, err := s.simulations.ListByResearcher(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SimulationResponse, 0, len(simulations))
	for i := range simulations {
		out = append(out, dto.FromSimulationDetailed(&simulations[i]))
	}
	return out, nil
}

// Projects retrieves the projects a researcher participates in, with the
// membership role and join date attached.
func (s *ResearcherService) Projects(id int) ([]dto.ProjectResponse, error) {
	if _, err := s.researchers.FindByID(id); err != nil {
		return nil, err
	}
	memberships, err := s.projects.ListMemberships(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(memberships))
	for i := range memberships {
		m := &memberships[i]
		resp := dto.FromProject(&m.Project)
		role := m.Role
		joined := m.JoinedDate.Format("2006-01-02")
		resp.RoleInProject = &role
		resp.JoinedDate = &joined
		out = append(out, resp)
	}
	return out, nil
}

// applyOptionalString sanitizes and assigns a supplied optional field.
func applyOptionalString(dst **string, src *string, maxLength int) {
	if src == nil {
		return
	}
	value := validation.SanitizeString(*src, maxLength)
	if value == "" {
		*dst = nil
		return
	}
	*dst = &value
}
