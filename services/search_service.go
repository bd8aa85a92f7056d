package services

import (
	"unicode/utf8"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/metrics"
	"github.com/qslrm-api/repositories"
	"github.com/qslrm-api/validation"
)

const (
	globalSearchCap = 10
	defaultPerPage  = 20
	maxPerPage      = 100
)

// SearchService handles the global text search, the faceted per-entity
// searches, and the filter option listings.
type SearchService struct {
	researchers *repositories.ResearcherRepository
	projects    *repositories.ProjectRepository
	simulations *repositories.SimulationRepository
}

// NewSearchService creates a search service.
func NewSearchService(
	researchers *repositories.ResearcherRepository,
	projects *repositories.ProjectRepository,
	simulations *repositories.SimulationRepository,
) *SearchService {
	return &SearchService{
		researchers: researchers,
		projects:    projects,
		simulations: simulations,
	}
}

// Global searches all three entity types at once, capped per category.
// Queries shorter than two characters are rejected.
func (s *SearchService) Global(query string) (*dto.GlobalSearchResponse, error) {
	if utf8.RuneCountInString(query) < 2 {
		return nil, &validation.Error{Field: "q", Message: "Search query must be at least 2 characters"}
	}

	researchers, err := s.researchers.SearchText(query, globalSearchCap)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.SearchText(query, globalSearchCap)
	if err != nil {
		return nil, err
	}
	simulations, err := s.simulations.SearchText(query, globalSearchCap)
	if err != nil {
		return nil, err
	}

	resp := &dto.GlobalSearchResponse{Query: query}
	for i := range researchers {
		r := &researchers[i]
		resp.Results.Researchers.Items = append(resp.Results.Researchers.Items, dto.SearchHit{
			ID:          r.ResearcherID,
			Type:        "researcher",
			Name:        r.FullName(),
			Email:       r.Email,
			Institution: r.Institution,
		})
	}
	for i := range projects {
		p := &projects[i]
		resp.Results.Projects.Items = append(resp.Results.Projects.Items, dto.SearchHit{
			ID:     p.ProjectID,
			Type:   "project",
			Title:  p.Title,
			Field:  p.FieldOfStudy,
			Status: p.Status,
		})
	}
	for i := range simulations {
		sim := &simulations[i]
		resp.Results.Simulations.Items = append(resp.Results.Simulations.Items, dto.SearchHit{
			ID:           sim.RunID,
			Type:         "simulation",
			SimulationID: sim.SimulationID,
			Framework:    sim.Framework,
			Algorithm:    sim.AlgorithmType,
			Status:       sim.Status,
		})
	}
	resp.Results.Researchers.Count = len(resp.Results.Researchers.Items)
	resp.Results.Projects.Count = len(resp.Results.Projects.Items)
	resp.Results.Simulations.Count = len(resp.Results.Simulations.Items)
	resp.TotalResults = resp.Results.Researchers.Count +
		resp.Results.Projects.Count +
		resp.Results.Simulations.Count

	metrics.SearchesTotal.WithLabelValues("global").Inc()
	return resp, nil
}

// Simulations runs the faceted simulation search.
func (s *SearchService) Simulations(filter dto.SimulationSearchFilter) (*dto.PageResponse, error) {
	filter.Page, filter.PerPage = clampPage(filter.Page, filter.PerPage)
	simulations, total, err := s.simulations.SearchWithPagination(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SimulationResponse, 0, len(simulations))
	for i := range simulations {
		items = append(items, dto.FromSimulationDetailed(&simulations[i]))
	}
	metrics.SearchesTotal.WithLabelValues("simulations").Inc()
	page := dto.NewPageResponse(filter.Page, filter.PerPage, total, items)
	return &page, nil
}

// Researchers runs the faceted researcher search.
func (s *SearchService) Researchers(filter dto.ResearcherSearchFilter) (*dto.PageResponse, error) {
	filter.Page, filter.PerPage = clampPage(filter.Page, filter.PerPage)
	researchers, total, err := s.researchers.SearchWithPagination(filter)
	if err != nil {
		return nil, err
	}
	metrics.SearchesTotal.WithLabelValues("researchers").Inc()
	page := dto.NewPageResponse(filter.Page, filter.PerPage, total, dto.FromResearchers(researchers))
	return &page, nil
}

// Projects runs the faceted project search.
func (s *SearchService) Projects(filter dto.ProjectSearchFilter) (*dto.PageResponse, error) {
	filter.Page, filter.PerPage = clampPage(filter.Page, filter.PerPage)
	projects, total, err := s.projects.SearchWithPagination(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProjectResponse, 0, len(projects))
	for i := range projects {
		items = append(items, dto.FromProject(&projects[i]))
	}
	metrics.SearchesTotal.WithLabelValues("projects").Inc()
	page := dto.NewPageResponse(filter.Page, filter.PerPage, total, items)
	return &page, nil
}

// FilterOptions lists the distinct values usable as search filters.
func (s *SearchService) FilterOptions() (*dto.FilterOptionsResponse, error) {
	frameworks, err := s.simulations.DistinctFrameworks()
	if err != nil {
		return nil, err
	}
	statuses, err := s.simulations.DistinctStatuses()
	if err != nil {
		return nil, err
	}
	algorithms, err := s.simulations.DistinctAlgorithms()
	if err != nil {
		return nil, err
	}
	institutions, err := s.researchers.DistinctInstitutions()
	if err != nil {
		return nil, err
	}
	minQubits, maxQubits, err := s.simulations.QubitRange()
	if err != nil {
		return nil, err
	}

	return &dto.FilterOptionsResponse{
		Frameworks:   frameworks,
		Statuses:     statuses,
		Algorithms:   algorithms,
		Institutions: institutions,
		QubitRange:   dto.QubitRange{Min: minQubits, Max: maxQubits},
	}, nil
}

// clampPage normalizes pagination inputs to their allowed ranges.
func clampPage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}
