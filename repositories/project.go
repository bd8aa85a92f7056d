package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
)

// ProjectFilter narrows the project listing.
type ProjectFilter struct {
	Status  string
	Field   string
	OwnerID int
}

// ProjectRepository handles database operations for projects and their
// team memberships.
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a project repository bound to the given
// connection.
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll retrieves projects matching the filter, owners preloaded.
func (r *ProjectRepository) FindAll(filter ProjectFilter) ([]models.SimulationProject, error) {
	query := r.db.Model(&models.SimulationProject{}).Preload("Owner")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Field != "" {
		query = query.Where("LOWER(field_of_study) LIKE LOWER(?)", "%"+filter.Field+"%")
	}
	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}

	var projects []models.SimulationProject
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID retrieves a project by primary key, owner preloaded.
func (r *ProjectRepository) FindByID(id int) (*models.SimulationProject, error) {
	var project models.SimulationProject
	err := r.db.Preload("Owner").First(&project, "project_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Project not found")
	}
	return &project, err
}

// CreateWithLead inserts the project and its owner's lead membership as
// one atomic unit.
func (r *ProjectRepository) CreateWithLead(project *models.SimulationProject, joined time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}
		member := models.ProjectResearcher{
			ProjectID:    project.ProjectID,
			ResearcherID: project.OwnerID,
			Role:         models.MemberRoleLead,
			JoinedDate:   joined,
		}
		return tx.Create(&member).Error
	})
}

// Save persists all fields of an existing project.
func (r *ProjectRepository) Save(project *models.SimulationProject) error {
	return r.db.Save(project).Error
}

// DeleteCascade removes the project together with its memberships,
// simulations, and the simulations' dependent records, atomically.
func (r *ProjectRepository) DeleteCascade(id int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		runIDs := tx.Model(&models.QuantumSimulation{}).
			Select("run_id").
			Where("project_id = ?", id)

		if err := tx.Where("run_id IN (?)", runIDs).Delete(&models.Parameter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("run_id IN (?)", runIDs).Delete(&models.SimulationResult{}).Error; err != nil {
			return err
		}
		if err := tx.Where("run_id IN (?)", runIDs).Delete(&models.ReproducibilityMetadata{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.QuantumSimulation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectResearcher{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SimulationProject{}, "project_id = ?", id).Error
	})
}

// CountByOwner counts projects owned by a researcher.
func (r *ProjectRepository) CountByOwner(ownerID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.SimulationProject{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

// ListByOwner retrieves the projects a researcher owns.
func (r *ProjectRepository) ListByOwner(ownerID int) ([]models.SimulationProject, error) {
	var projects []models.SimulationProject
	err := r.db.Preload("Owner").Where("owner_id = ?", ownerID).Find(&projects).Error
	return projects, err
}

// ListMemberships retrieves a researcher's memberships with the
// projects (and their owners) preloaded.
func (r *ProjectRepository) ListMemberships(researcherID int) ([]models.ProjectResearcher, error) {
	var memberships []models.ProjectResearcher
	err := r.db.Preload("Project").Preload("Project.Owner").
		Where("researcher_id = ?", researcherID).
		Find(&memberships).Error
	return memberships, err
}

// CountMemberships counts the projects a researcher participates in.
func (r *ProjectRepository) CountMemberships(researcherID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectResearcher{}).Where("researcher_id = ?", researcherID).Count(&count).Error
	return count, err
}

// ListTeam retrieves a project's memberships, researchers preloaded.
func (r *ProjectRepository) ListTeam(projectID int) ([]models.ProjectResearcher, error) {
	var team []models.ProjectResearcher
	err := r.db.Preload("Researcher").Where("project_id = ?", projectID).Find(&team).Error
	return team, err
}

// CountTeam counts a project's memberships.
func (r *ProjectRepository) CountTeam(projectID int) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProjectResearcher{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}

// FindMember retrieves one membership, researcher preloaded.
func (r *ProjectRepository) FindMember(projectID, researcherID int) (*models.ProjectResearcher, error) {
	var member models.ProjectResearcher
	err := r.db.Preload("Researcher").
		First(&member, "project_id = ? AND researcher_id = ?", projectID, researcherID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Team member not found")
	}
	return &member, err
}

// AddMember inserts a membership row.
func (r *ProjectRepository) AddMember(member *models.ProjectResearcher) error {
	return r.db.Create(member).Error
}

// RemoveMember deletes a membership row. The owner check happens in the
// service before this is called.
func (r *ProjectRepository) RemoveMember(projectID, researcherID int) error {
	return r.db.Delete(&models.ProjectResearcher{}, "project_id = ? AND researcher_id = ?", projectID, researcherID).Error
}

// TitlesByIDs maps project ids to titles for the given set.
func (r *ProjectRepository) TitlesByIDs(ids []int) (map[int]string, error) {
	if len(ids) == 0 {
		return map[int]string{}, nil
	}
	type row struct {
		ProjectID int
		Title     string
	}
	var rows []row
	err := r.db.Model(&models.SimulationProject{}).
		Select("project_id, title").
		Where("project_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	titles := make(map[int]string, len(rows))
	for _, p := range rows {
		titles[p.ProjectID] = p.Title
	}
	return titles, nil
}

// SearchText finds projects whose descriptive fields contain the query,
// capped at limit rows.
func (r *ProjectRepository) SearchText(query string, limit int) ([]models.SimulationProject, error) {
	pattern := "%" + query + "%"
	var projects []models.SimulationProject
	err := r.db.Preload("Owner").
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(field_of_study) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Limit(limit).
		Find(&projects).Error
	return projects, err
}

// SearchWithPagination retrieves a project page for the faceted search,
// returning the rows and the unpaged total.
func (r *ProjectRepository) SearchWithPagination(filter dto.ProjectSearchFilter) ([]models.SimulationProject, int64, error) {
	query := r.db.Model(&models.SimulationProject{}).Preload("Owner")

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Field != "" {
		query = query.Where("LOWER(field_of_study) LIKE LOWER(?)", "%"+filter.Field+"%")
	}
	if filter.OwnerID != 0 {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.SimulationProject
	offset := (filter.Page - 1) * filter.PerPage
	err := query.Limit(filter.PerPage).Offset(offset).Find(&projects).Error
	return projects, total, err
}
