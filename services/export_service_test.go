package services

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/repositories"
)

func TestSimulationsCSV(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-002")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.9)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, env.export.SimulationsCSV(&buf, repositories.SimulationFilter{ProjectID: project.ProjectID}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Run ID", rows[0][0])
	assert.Equal(t, "Fidelity", rows[0][10])

	// Missing result fields render as empty cells.
	byID := map[string][]string{rows[1][1]: rows[1], rows[2][1]: rows[2]}
	assert.Equal(t, "0.9", byID["run-001"][10])
	assert.Equal(t, "", byID["run-002"][10])
}

func TestProjectReport(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.8)})
	require.NoError(t, err)

	report, err := env.export.ProjectReport(project.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "VQE Benchmarks", report.Project.Title)
	assert.Equal(t, owner.ResearcherID, report.Project.Owner.ID)
	require.Len(t, report.Team, 1)
	assert.Equal(t, 1, report.Statistics.TotalSimulations)
	assert.Equal(t, 1, report.Statistics.Completed)
	assert.InDelta(t, 0.8, report.Statistics.AvgFidelity, 0.001)
	require.Len(t, report.Simulations, 1)
}

func TestResearcherPortfolio(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")

	portfolio, err := env.export.ResearcherPortfolio(owner.ResearcherID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", portfolio.Researcher.Name)
	assert.Equal(t, 1, portfolio.Statistics.TotalSimulations)
	require.Len(t, portfolio.OwnedProjects, 1)
	assert.EqualValues(t, 1, portfolio.OwnedProjects[0].SimulationsCount)
	require.Len(t, portfolio.RecentSimulations, 1)
	assert.Equal(t, "VQE Benchmarks", portfolio.RecentSimulations[0].Project)
}
