package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
	"github.com/qslrm-api/repositories"
)

const (
	defaultTrendDays      = 30
	recentActivityWindow  = 7 * 24 * time.Hour
	defaultLeaderboardTop = 10
)

// AnalyticsService derives the reporting views from stored records. All
// reads are point-in-time; nothing here mutates the store.
type AnalyticsService struct {
	analytics   *repositories.AnalyticsRepository
	projects    *repositories.ProjectRepository
	simulations *repositories.SimulationRepository
	accessLogs  *repositories.AccessLogRepository
}

// NewAnalyticsService creates an analytics service.
func NewAnalyticsService(
	analytics *repositories.AnalyticsRepository,
	projects *repositories.ProjectRepository,
	simulations *repositories.SimulationRepository,
	accessLogs *repositories.AccessLogRepository,
) *AnalyticsService {
	return &AnalyticsService{
		analytics:   analytics,
		projects:    projects,
		simulations: simulations,
		accessLogs:  accessLogs,
	}
}

// FrameworkComparison aggregates simulation quality per framework.
func (s *AnalyticsService) FrameworkComparison() ([]dto.FrameworkStats, error) {
	rows, err := s.analytics.FrameworkStats()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FrameworkStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.FrameworkStats{
			Framework:          row.Framework,
			TotalSimulations:   row.TotalRuns,
			AvgFidelity:        roundPtr(row.AvgFidelity, 4),
			AvgExecutionTime:   roundPtr(row.AvgTime, 3),
			AvgReproducibility: roundPtr(row.AvgReproducibility, 4),
			AvgQubits:          roundPtr(row.AvgQubits, 2),
		})
	}
	return out, nil
}

// AlgorithmComparison aggregates simulation quality per algorithm type.
func (s *AnalyticsService) AlgorithmComparison() ([]dto.AlgorithmStats, error) {
	rows, err := s.analytics.AlgorithmStats()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AlgorithmStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.AlgorithmStats{
			Algorithm:      row.AlgorithmType,
			TotalRuns:      row.TotalRuns,
			AvgFidelity:    roundPtr(row.AvgFidelity, 4),
			AvgSuccessRate: roundPtr(row.AvgSuccess, 4),
			QubitRange:     fmt.Sprintf("%d-%d", row.MinQubits, row.MaxQubits),
		})
	}
	return out, nil
}

// Leaderboard ranks researchers by simulation volume. Researchers with
// no runs still appear with a null average.
func (s *AnalyticsService) Leaderboard(limit int) ([]dto.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardTop
	}
	rows, err := s.analytics.Leaderboard(limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entry := dto.LeaderboardEntry{
			Rank:             i + 1,
			ResearcherID:     row.ResearcherID,
			Name:             row.FirstName + " " + row.LastName,
			Institution:      row.Institution,
			TotalSimulations: row.TotalSimulations,
		}
		if row.AvgFidelity != nil {
			rounded := round(*row.AvgFidelity, 4)
			entry.AvgFidelity = &rounded
		}
		out = append(out, entry)
	}
	return out, nil
}

// ProjectHealth scores a project from its completion, failure, and
// quality figures. A project with no simulations reports no_data.
func (s *AnalyticsService) ProjectHealth(projectID int) (*dto.ProjectHealthResponse, error) {
	project, err := s.projects.FindByID(projectID)
	if err != nil {
		return nil, err
	}

	total, err := s.simulations.CountByProject(projectID, "")
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &dto.ProjectHealthResponse{
			ProjectID:   projectID,
			HealthScore: 0,
			Status:      "no_data",
			Message:     "No simulations in this project",
		}, nil
	}

	completed, err := s.simulations.CountByProject(projectID, models.SimulationStatusCompleted)
	if err != nil {
		return nil, err
	}
	failed, err := s.simulations.CountByProject(projectID, models.SimulationStatusFailed)
	if err != nil {
		return nil, err
	}
	running, err := s.simulations.CountByProject(projectID, models.SimulationStatusRunning)
	if err != nil {
		return nil, err
	}

	completionRate := float64(completed) / float64(total)
	failureRate := float64(failed) / float64(total)

	// Quality means divide by the full completed count so missing
	// results drag the average down rather than hiding.
	var avgFidelity, avgReproducibility float64
	completedSims, err := s.simulations.ListCompletedByProject(projectID)
	if err != nil {
		return nil, err
	}
	if len(completedSims) > 0 {
		var fidelitySum, reproSum float64
		for i := range completedSims {
			if r := completedSims[i].Result; r != nil && r.Fidelity != nil {
				fidelitySum += *r.Fidelity
			}
			if m := completedSims[i].ReproMetadata; m != nil && m.ReproducibilityScore != nil {
				reproSum += *m.ReproducibilityScore
			}
		}
		avgFidelity = fidelitySum / float64(len(completedSims))
		avgReproducibility = reproSum / float64(len(completedSims))
	}

	score := 30*completionRate + 20*(1-failureRate) + 25*avgFidelity + 25*avgReproducibility
	status := "poor"
	switch {
	case score >= 80:
		status = "excellent"
	case score >= 60:
		status = "good"
	case score >= 40:
		status = "fair"
	}

	return &dto.ProjectHealthResponse{
		ProjectID:   projectID,
		ProjectName: project.Title,
		HealthScore: round(score, 2),
		Status:      status,
		Metrics: &dto.HealthMetrics{
			TotalSimulations:   total,
			Completed:          completed,
			Failed:             failed,
			Running:            running,
			CompletionRate:     round(completionRate, 4),
			FailureRate:        round(failureRate, 4),
			AvgFidelity:        round(avgFidelity, 4),
			AvgReproducibility: round(avgReproducibility, 4),
		},
	}, nil
}

// Trends buckets simulations per calendar day over the requested
// period. Periods read like "30d"; anything unparseable falls back to
// the default window. Only days with at least one run appear, sorted
// ascending, and the supplied period string is echoed back unchanged.
func (s *AnalyticsService) Trends(period string) (*dto.TrendsResponse, error) {
	days := parsePeriodDays(period)
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	simulations, err := s.analytics.SimulationsSince(cutoff)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		count      int
		fidelities []float64
		repros     []float64
	}
	buckets := make(map[string]*bucket)
	for i := range simulations {
		sim := &simulations[i]
		key := sim.ExecutionDate.UTC().Format("2006-01-02")
		b := buckets[key]
		if b == nil {
			b = &bucket{}
			buckets[key] = b
		}
		b.count++
		if sim.Result != nil && sim.Result.Fidelity != nil {
			b.fidelities = append(b.fidelities, *sim.Result.Fidelity)
		}
		if sim.ReproMetadata != nil && sim.ReproMetadata.ReproducibilityScore != nil {
			b.repros = append(b.repros, *sim.ReproMetadata.ReproducibilityScore)
		}
	}

	dates := make([]string, 0, len(buckets))
	for key := range buckets {
		dates = append(dates, key)
	}
	sort.Strings(dates)

	trends := make([]dto.TrendPoint, 0, len(dates))
	for _, key := range dates {
		b := buckets[key]
		trends = append(trends, dto.TrendPoint{
			Date:               key,
			SimulationCount:    b.count,
			AvgFidelity:        meanPtr(b.fidelities, 4),
			AvgReproducibility: meanPtr(b.repros, 4),
		})
	}

	return &dto.TrendsResponse{
		Period:    period,
		TotalDays: len(trends),
		Trends:    trends,
	}, nil
}

// QubitScaling aggregates simulation quality per qubit count.
func (s *AnalyticsService) QubitScaling() ([]dto.QubitScalingStats, error) {
	rows, err := s.analytics.QubitScaling()
	if err != nil {
		return nil, err
	}
	out := make([]dto.QubitScalingStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.QubitScalingStats{
			Qubits:           row.NumQubits,
			Simulations:      row.TotalRuns,
			AvgFidelity:      roundPtr(row.AvgFidelity, 4),
			AvgExecutionTime: roundPtr(row.AvgTime, 3),
		})
	}
	return out, nil
}

// InstitutionComparison aggregates activity per institution.
func (s *AnalyticsService) InstitutionComparison() ([]dto.InstitutionStats, error) {
	rows, err := s.analytics.InstitutionStats()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InstitutionStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.InstitutionStats{
			Institution:      row.Institution,
			Researchers:      row.ResearcherCount,
			TotalSimulations: row.TotalSimulations,
			AvgFidelity:      roundPtr(row.AvgFidelity, 4),
		})
	}
	return out, nil
}

// Dashboard returns the headline counters.
func (s *AnalyticsService) Dashboard() (*dto.DashboardResponse, error) {
	overview, err := s.overview()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{Overview: *overview}, nil
}

// EnhancedDashboard adds status and framework breakdowns and the
// corpus-wide quality means to the headline counters.
func (s *AnalyticsService) EnhancedDashboard() (*dto.EnhancedDashboardResponse, error) {
	overview, err := s.overview()
	if err != nil {
		return nil, err
	}
	statusBreakdown, err := s.analytics.StatusBreakdown()
	if err != nil {
		return nil, err
	}
	frameworkBreakdown, err := s.analytics.FrameworkBreakdown()
	if err != nil {
		return nil, err
	}
	quality, err := s.analytics.Quality()
	if err != nil {
		return nil, err
	}

	metrics := dto.QualityMetrics{}
	if quality.ResultCount > 0 {
		metrics.AvgFidelity = round(quality.FidelitySum/float64(quality.ResultCount), 4)
	}
	if quality.MetadataCount > 0 {
		metrics.AvgReproducibility = round(quality.ReproducibilitySum/float64(quality.MetadataCount), 4)
	}

	return &dto.EnhancedDashboardResponse{
		Overview:           *overview,
		StatusBreakdown:    statusBreakdown,
		FrameworkBreakdown: frameworkBreakdown,
		QualityMetrics:     metrics,
	}, nil
}

// Activity retrieves the newest access log entries.
func (s *AnalyticsService) Activity(limit int) ([]models.AccessLog, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.accessLogs.ListRecent(limit)
}

func (s *AnalyticsService) overview() (*dto.DashboardOverview, error) {
	researchers, projects, simulations, err := s.analytics.Counts()
	if err != nil {
		return nil, err
	}
	recent, err := s.analytics.CountSimulationsSince(time.Now().UTC().Add(-recentActivityWindow))
	if err != nil {
		return nil, err
	}
	return &dto.DashboardOverview{
		TotalResearchers: researchers,
		TotalProjects:    projects,
		TotalSimulations: simulations,
		RecentActivity:   recent,
	}, nil
}

// parsePeriodDays reads a "<N>d" period, falling back to the default on
// anything malformed or non-positive.
func parsePeriodDays(period string) int {
	if !strings.HasSuffix(period, "d") {
		return defaultTrendDays
	}
	days, err := strconv.Atoi(strings.TrimSuffix(period, "d"))
	if err != nil || days <= 0 {
		return defaultTrendDays
	}
	return days
}

func round(value float64, places int) float64 {
	factor := math.Pow10(places)
	return math.Round(value*factor) / factor
}

// roundPtr rounds a nullable average, rendering missing values as zero.
func roundPtr(value *float64, places int) float64 {
	if value == nil {
		return 0
	}
	return round(*value, places)
}

// meanPtr averages the values, nil when there are none.
func meanPtr(values []float64, places int) *float64 {
	if len(values) == 0 {
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := round(sum/float64(len(values)), places)
	return &mean
}
