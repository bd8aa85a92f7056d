package services

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
	"github.com/qslrm-api/repositories"
)

const portfolioRecentLimit = 10

// ExportService renders downloadable snapshots of the stored records.
type ExportService struct {
	researchers *repositories.ResearcherRepository
	projects    *repositories.ProjectRepository
	simulations *repositories.SimulationRepository
}

// NewExportService creates an export service.
func NewExportService(
	researchers *repositories.ResearcherRepository,
	projects *repositories.ProjectRepository,
	simulations *repositories.SimulationRepository,
) *ExportService {
	return &ExportService{
		researchers: researchers,
		projects:    projects,
		simulations: simulations,
	}
}

// SimulationsCSV streams the filtered simulations as CSV rows. Missing
// optional values render as empty cells.
func (s *ExportService) SimulationsCSV(w io.Writer, filter repositories.SimulationFilter) error {
	simulations, err := s.simulations.FindAll(filter)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	header := []string{
		"Run ID", "Simulation ID", "Project ID", "Researcher ID",
		"Framework", "Algorithm", "Qubits", "Circuit Depth",
		"Status", "Execution Date", "Fidelity", "Success Rate",
		"Reproducibility Score", "Execution Time (s)",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for i := range simulations {
		sim := &simulations[i]
		row := []string{
			strconv.Itoa(sim.RunID),
			sim.SimulationID,
			strconv.Itoa(sim.ProjectID),
			strconv.Itoa(sim.ResearcherID),
			sim.Framework,
			stringCell(sim.AlgorithmType),
			strconv.Itoa(sim.NumQubits),
			intCell(sim.CircuitDepth),
			sim.Status,
			sim.ExecutionDate.UTC().Format(time.RFC3339),
			"", "", "", "",
		}
		if sim.Result != nil {
			row[10] = floatCell(sim.Result.Fidelity)
			row[11] = floatCell(sim.Result.SuccessProbability)
			row[13] = floatCell(sim.Result.ExecutionTimeSeconds)
		}
		if sim.ReproMetadata != nil {
			row[12] = floatCell(sim.ReproMetadata.ReproducibilityScore)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ProjectReport assembles the full downloadable report for a project.
func (s *ExportService) ProjectReport(projectID int) (*dto.ProjectReport, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		return nil, err
	}
	team, err := s.projects.ListTeam(projectID)
	if err != nil {
		return nil, err
	}
	simulations, err := s.simulations.ListByProject(projectID)
	if err != nil {
		return nil, err
	}

	report := dto.ProjectReport{
		Project: dto.ReportProject{
			ID:           project.ProjectID,
			Title:        project.Title,
			Description:  project.Description,
			FieldOfStudy: project.FieldOfStudy,
			Status:       project.Status,
			StartDate:    project.StartDate.Format("2006-01-02"),
			Owner: dto.ReportOwner{
				ID:          project.Owner.ResearcherID,
				Name:        project.Owner.FullName(),
				Email:       project.Owner.Email,
				Institution: project.Owner.Institution,
			},
		},
		GeneratedAt: time.Now().UTC(),
	}
	if project.EndDate != nil {
		end := project.EndDate.Format("2006-01-02")
		report.Project.EndDate = &end
	}

	for i := range team {
		m := &team[i]
		report.Team = append(report.Team, dto.ReportTeamMember{
			ResearcherID: m.ResearcherID,
			Name:         m.Researcher.FullName(),
			Role:         m.Role,
			Institution:  m.Researcher.Institution,
		})
	}

	var fidelitySum, reproSum float64
	var fidelityCount, reproCount int
	for i := range simulations {
		sim := &simulations[i]
		switch sim.Status {
		case models.SimulationStatusCompleted:
			report.Statistics.Completed++
		case models.SimulationStatusFailed:
			report.Statistics.Failed++
		case models.SimulationStatusRunning:
			report.Statistics.Running++
		}
		entry := dto.ReportSimulation{
			RunID:         sim.RunID,
			SimulationID:  sim.SimulationID,
			Framework:     sim.Framework,
			Algorithm:     sim.AlgorithmType,
			Qubits:        sim.NumQubits,
			Status:        sim.Status,
			ExecutionDate: sim.ExecutionDate.UTC().Format(time.RFC3339),
		}
		if sim.Result != nil && sim.Result.Fidelity != nil {
			entry.Fidelity = sim.Result.Fidelity
			fidelitySum += *sim.Result.Fidelity
			fidelityCount++
		}
		if sim.ReproMetadata != nil && sim.ReproMetadata.ReproducibilityScore != nil {
			entry.Reproducibility = sim.ReproMetadata.ReproducibilityScore
			reproSum += *sim.ReproMetadata.ReproducibilityScore
			reproCount++
		}
		report.Simulations = append(report.Simulations, entry)
	}
	report.Statistics.TotalSimulations = len(simulations)
	if fidelityCount > 0 {
		report.Statistics.AvgFidelity = fidelitySum / float64(fidelityCount)
	}
	if reproCount > 0 {
		report.Statistics.AvgReproducibility = reproSum / float64(reproCount)
	}

	return &report, nil
}

// ResearcherPortfolio assembles the downloadable activity summary for a
// researcher.
func (s *ExportService) ResearcherPortfolio(researcherID int) (*dto.ResearcherPortfolio, error) {
	researcher, err := s.researchers.FindByID(researcherID)
	if err != nil {
		return nil, err
	}
	simulations, err := s.simulations.ListByResearcher(researcherID)
	if err != nil {
		return nil, err
	}
	owned, err := s.projects.ListByOwner(researcherID)
	if err != nil {
		return nil, err
	}

	portfolio := dto.ResearcherPortfolio{
		Researcher: dto.PortfolioResearcher{
			ID:          researcher.ResearcherID,
			Name:        researcher.FullName(),
			Email:       researcher.Email,
			Orcid:       researcher.OrcidID,
			Institution: researcher.Institution,
			Department:  researcher.Department,
			Role:        researcher.Role,
		},
		GeneratedAt: time.Now().UTC(),
	}

	var fidelitySum float64
	var fidelityCount, completed int
	for i := range simulations {
		sim := &simulations[i]
		if sim.Status == models.SimulationStatusCompleted {
			completed++
		}
		if sim.Result != nil && sim.Result.Fidelity != nil {
			fidelitySum += *sim.Result.Fidelity
			fidelityCount++
		}
	}
	portfolio.Statistics = dto.PortfolioStatistics{
		TotalSimulations:     len(simulations),
		CompletedSimulations: completed,
		ProjectsOwned:        len(owned),
	}
	if fidelityCount > 0 {
		portfolio.Statistics.AvgFidelity = fidelitySum / float64(fidelityCount)
	}

	for i := range owned {
		p := &owned[i]
		count, err := s.simulations.CountByProject(p.ProjectID, "")
		if err != nil {
			return nil, err
		}
		portfolio.OwnedProjects = append(portfolio.OwnedProjects, dto.PortfolioProject{
			ID:               p.ProjectID,
			Title:            p.Title,
			Status:           p.Status,
			SimulationsCount: count,
		})
	}

	sort.Slice(simulations, func(i, j int) bool {
		return simulations[i].ExecutionDate.After(simulations[j].ExecutionDate)
	})
	recent := simulations
	if len(recent) > portfolioRecentLimit {
		recent = recent[:portfolioRecentLimit]
	}

	projectIDs := make([]int, 0, len(recent))
	for i := range recent {
		projectIDs = append(projectIDs, recent[i].ProjectID)
	}
	titles, err := s.projects.TitlesByIDs(projectIDs)
	if err != nil {
		return nil, err
	}
	for i := range recent {
		sim := &recent[i]
		portfolio.RecentSimulations = append(portfolio.RecentSimulations, dto.PortfolioSimulation{
			RunID:         sim.RunID,
			SimulationID:  sim.SimulationID,
			Project:       titles[sim.ProjectID],
			Framework:     sim.Framework,
			Status:        sim.Status,
			ExecutionDate: sim.ExecutionDate.UTC().Format(time.RFC3339),
		})
	}

	return &portfolio, nil
}

// FullExport assembles the complete downloadable data set.
func (s *ExportService) FullExport() (*dto.FullExport, error) {
	researchers, err := s.researchers.FindAll(repositories.ResearcherFilter{})
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.FindAll(repositories.ProjectFilter{})
	if err != nil {
		return nil, err
	}
	simulations, err := s.simulations.FindAll(repositories.SimulationFilter{})
	if err != nil {
		return nil, err
	}

	out := dto.FullExport{
		Researchers: dto.FromResearchers(researchers),
		ExportedAt:  time.Now().UTC(),
	}
	for i := range projects {
		out.Projects = append(out.Projects, dto.FromProject(&projects[i]))
	}
	for i := range simulations {
		out.Simulations = append(out.Simulations, dto.FromSimulationDetailed(&simulations[i]))
	}
	return &out, nil
}

func stringCell(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func intCell(value *int) string {
	if value == nil {
		return ""
	}
	return strconv.Itoa(*value)
}

func floatCell(value *float64) string {
	if value == nil {
		return ""
	}
	return strconv.FormatFloat(*value, 'g', -1, 64)
}
