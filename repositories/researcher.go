package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
)

// ResearcherFilter narrows the researcher listing.
type ResearcherFilter struct {
	Institution string
	Department  string
	Role        string
	Search      string
}

// ResearcherRepository handles database operations for researchers.
type ResearcherRepository struct {
	db *gorm.DB
}

// NewResearcherRepository creates a researcher repository bound to the
// given connection.
func NewResearcherRepository(db *gorm.DB) *ResearcherRepository {
	return &ResearcherRepository{db: db}
}

// FindAll retrieves researchers matching the filter.
func (r *ResearcherRepository) FindAll(filter ResearcherFilter) ([]models.Researcher, error) {
	query := r.db.Model(&models.Researcher{})
	if filter.Institution != "" {
		query = query.Where("LOWER(institution) LIKE LOWER(?)", "%"+filter.Institution+"%")
	}
	if filter.Department != "" {
		query = query.Where("LOWER(department) LIKE LOWER(?)", "%"+filter.Department+"%")
	}
	if filter.Role != "" {
		query = query.Where("LOWER(role) LIKE LOWER(?)", "%"+filter.Role+"%")
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}

	var researchers []models.Researcher
	err := query.Find(&researchers).Error
	return researchers, err
}

// FindByID retrieves a researcher by primary key.
func (r *ResearcherRepository) FindByID(id int) (*models.Researcher, error) {
	var researcher models.Researcher
	err := r.db.First(&researcher, "researcher_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Researcher not found")
	}
	return &researcher, err
}

// FindByEmail retrieves a researcher by email address.
func (r *ResearcherRepository) FindByEmail(email string) (*models.Researcher, error) {
	var researcher models.Researcher
	err := r.db.First(&researcher, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Researcher not found")
	}
	return &researcher, err
}

// EmailExists reports whether another researcher already uses the email.
func (r *ResearcherRepository) EmailExists(email string, excludeID int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Researcher{}).
		Where("email = ? AND researcher_id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// OrcidExists reports whether another researcher already uses the ORCID.
func (r *ResearcherRepository) OrcidExists(orcid string, excludeID int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Researcher{}).
		Where("orcid_id = ? AND researcher_id <> ?", orcid, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a new researcher.
func (r *ResearcherRepository) Create(researcher *models.Researcher) error {
	return r.db.Create(researcher).Error
}

// Save persists all fields of an existing researcher.
func (r *ResearcherRepository) Save(researcher *models.Researcher) error {
	return r.db.Save(researcher).Error
}

// Delete removes a researcher. Dependency checks happen in the service
// before this is called.
func (r *ResearcherRepository) Delete(id int) error {
	return r.db.Delete(&models.Researcher{}, "researcher_id = ?", id).Error
}

// SearchText finds researchers whose identity fields contain the query,
// capped at limit rows.
func (r *ResearcherRepository) SearchText(query string, limit int) ([]models.Researcher, error) {
	pattern := "%" + query + "%"
	var researchers []models.Researcher
	err := r.db.
		Where("LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?) OR LOWER(institution) LIKE LOWER(?) OR LOWER(department) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern, pattern).
		Limit(limit).
		Find(&researchers).Error
	return researchers, err
}

// SearchWithPagination retrieves a researcher page for the faceted
// search, returning the rows and the unpaged total.
func (r *ResearcherRepository) SearchWithPagination(filter dto.ResearcherSearchFilter) ([]models.Researcher, int64, error) {
	query := r.db.Model(&models.Researcher{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		query = query.Where(
			"LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)",
			pattern, pattern, pattern,
		)
	}
	if filter.Institution != "" {
		query = query.Where("LOWER(institution) LIKE LOWER(?)", "%"+filter.Institution+"%")
	}
	if filter.Department != "" {
		query = query.Where("LOWER(department) LIKE LOWER(?)", "%"+filter.Department+"%")
	}
	if filter.Role != "" {
		query = query.Where("LOWER(role) LIKE LOWER(?)", "%"+filter.Role+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var researchers []models.Researcher
	offset := (filter.Page - 1) * filter.PerPage
	err := query.Limit(filter.PerPage).Offset(offset).Find(&researchers).Error
	return researchers, total, err
}

// DistinctInstitutions lists the known institutions, nulls excluded,
// alphabetically sorted.
func (r *ResearcherRepository) DistinctInstitutions() ([]string, error) {
	var institutions []string
	err := r.db.Model(&models.Researcher{}).
		Distinct("institution").
		Where("institution IS NOT NULL").
		Order("institution").
		Pluck("institution", &institutions).Error
	return institutions, err
}
