package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
)

func TestProjectHealthNoData(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")

	health, err := env.analytics.ProjectHealth(project.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "no_data", health.Status)
	assert.Zero(t, health.HealthScore)
	assert.Equal(t, "No simulations in this project", health.Message)
}

func TestProjectHealthScore(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.95)})
	require.NoError(t, err)
	_, _, err = env.simulations.SaveMetadata(sim.RunID, &dto.MetadataPayload{
		ReproducibilityScore: floatPtr(0.95),
	})
	require.NoError(t, err)

	health, err := env.analytics.ProjectHealth(project.ProjectID)
	require.NoError(t, err)

	// 30*1.0 + 20*1.0 + 25*0.95 + 25*0.95
	assert.InDelta(t, 97.5, health.HealthScore, 0.001)
	assert.Equal(t, "excellent", health.Status)
	require.NotNil(t, health.Metrics)
	assert.EqualValues(t, 1, health.Metrics.TotalSimulations)
	assert.EqualValues(t, 1, health.Metrics.Completed)
	assert.InDelta(t, 1.0, health.Metrics.CompletionRate, 0.001)
}

func TestProjectHealthMissingResultDragsScore(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")

	first := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")
	second := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-002")

	_, _, err := env.simulations.SaveResult(first.RunID, &dto.ResultPayload{Fidelity: floatPtr(1.0)})
	require.NoError(t, err)
	// Complete the second run without a fidelity figure.
	_, _, err = env.simulations.SaveResult(second.RunID, &dto.ResultPayload{
		ExecutionTimeSeconds: floatPtr(3.0),
	})
	require.NoError(t, err)

	health, err := env.analytics.ProjectHealth(project.ProjectID)
	require.NoError(t, err)

	// Fidelity mean divides by all completed runs: 1.0 / 2 = 0.5.
	assert.InDelta(t, 0.5, health.Metrics.AvgFidelity, 0.001)
}

func TestLeaderboardOrdering(t *testing.T) {
	env := newTestEnv(t)
	busy := env.createResearcher(t, "ada@mit.edu")
	idle := env.createResearcher(t, "grace@yale.edu")
	project := env.createProject(t, busy.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, busy.ResearcherID, "run-001")
	env.createSimulation(t, project.ProjectID, busy.ResearcherID, "run-002")

	entries, err := env.analytics.Leaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, busy.ResearcherID, entries[0].ResearcherID)
	assert.EqualValues(t, 2, entries[0].TotalSimulations)
	assert.Nil(t, entries[0].AvgFidelity)
	assert.Equal(t, idle.ResearcherID, entries[1].ResearcherID)
	assert.EqualValues(t, 0, entries[1].TotalSimulations)
}

func TestFrameworkComparison(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{
		Fidelity:             floatPtr(0.9),
		ExecutionTimeSeconds: floatPtr(1.23456),
	})
	require.NoError(t, err)

	stats, err := env.analytics.FrameworkComparison()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Qiskit", stats[0].Framework)
	assert.EqualValues(t, 1, stats[0].TotalSimulations)
	assert.InDelta(t, 0.9, stats[0].AvgFidelity, 0.001)
	assert.InDelta(t, 1.235, stats[0].AvgExecutionTime, 0.0001)
	assert.InDelta(t, 5, stats[0].AvgQubits, 0.001)
}

func TestTrendsBucketsObservedDaysOnly(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-002")

	trends, err := env.analytics.Trends("7d")
	require.NoError(t, err)
	assert.Equal(t, "7d", trends.Period)

	// Both runs land on today; empty days produce no bucket at all.
	require.Len(t, trends.Trends, 1)
	assert.Equal(t, 1, trends.TotalDays)
	today := trends.Trends[0]
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), today.Date)
	assert.Equal(t, 2, today.SimulationCount)
	assert.Nil(t, today.AvgFidelity)
}

func TestTrendsEchoesSuppliedPeriod(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")

	// A malformed period falls back to the default 30 day window but
	// the caller's string comes back verbatim.
	trends, err := env.analytics.Trends("bogus")
	require.NoError(t, err)
	assert.Equal(t, "bogus", trends.Period)
	assert.Equal(t, 1, trends.TotalDays)
}

func TestEnhancedDashboard(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-002")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.8)})
	require.NoError(t, err)

	dashboard, err := env.analytics.EnhancedDashboard()
	require.NoError(t, err)
	assert.EqualValues(t, 1, dashboard.Overview.TotalResearchers)
	assert.EqualValues(t, 1, dashboard.Overview.TotalProjects)
	assert.EqualValues(t, 2, dashboard.Overview.TotalSimulations)
	assert.EqualValues(t, 2, dashboard.Overview.RecentActivity)
	assert.EqualValues(t, 1, dashboard.StatusBreakdown[models.SimulationStatusCompleted])
	assert.EqualValues(t, 1, dashboard.StatusBreakdown[models.SimulationStatusPending])
	assert.EqualValues(t, 2, dashboard.FrameworkBreakdown["Qiskit"])
	assert.InDelta(t, 0.8, dashboard.QualityMetrics.AvgFidelity, 0.001)
}

func TestInstitutionComparisonRendersZeroWhenEmpty(t *testing.T) {
	env := newTestEnv(t)
	env.createResearcher(t, "ada@mit.edu")

	stats, err := env.analytics.InstitutionComparison()
	require.NoError(t, err)
	require.Len(t, stats, 1)
	require.NotNil(t, stats[0].Institution)
	assert.Equal(t, "MIT", *stats[0].Institution)
	assert.EqualValues(t, 1, stats[0].Researchers)
	assert.Zero(t, stats[0].AvgFidelity)
}
