package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/validation"
)

func TestGlobalSearchRejectsShortQuery(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.search.Global("q")
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Search query must be at least 2 characters", vErr.Message)
}

func TestGlobalSearchCountsCharactersNotBytes(t *testing.T) {
	env := newTestEnv(t)
	env.createResearcher(t, "ada@mit.edu")

	// A single accented character is two bytes but still one character.
	_, err := env.search.Global("é")
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "q", vErr.Field)

	_, err = env.search.Global("éé")
	require.NoError(t, err)
}

func TestGlobalSearchMatchesAcrossEntities(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "Qiskit Noise Study")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "noise-sweep-01")

	results, err := env.search.Global("qis")
	require.NoError(t, err)
	assert.Equal(t, 1, results.Results.Projects.Count)
	assert.Equal(t, 1, results.Results.Simulations.Count)
	assert.Equal(t, 0, results.Results.Researchers.Count)
	assert.Equal(t, 2, results.TotalResults)
}

func TestGlobalSearchCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	env.createResearcher(t, "ada@mit.edu")

	results, err := env.search.Global("LOVELACE")
	require.NoError(t, err)
	assert.Equal(t, 1, results.Results.Researchers.Count)
}

func TestSimulationSearchPagination(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	for i := 0; i < 25; i++ {
		env.createSimulation(t, project.ProjectID, owner.ResearcherID, fmt.Sprintf("run-%03d", i))
	}

	page, err := env.search.Simulations(dto.SimulationSearchFilter{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.EqualValues(t, 25, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)

	last, err := env.search.Simulations(dto.SimulationSearchFilter{Page: 3, PerPage: 10})
	require.NoError(t, err)
	assert.False(t, last.HasNext)
	assert.True(t, last.HasPrev)
	items, ok := last.Items.([]dto.SimulationResponse)
	require.True(t, ok)
	assert.Len(t, items, 5)
}

func TestSimulationSearchClampsPerPage(t *testing.T) {
	env := newTestEnv(t)

	page, err := env.search.Simulations(dto.SimulationSearchFilter{Page: 0, PerPage: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 100, page.PerPage)
}

func TestSimulationSearchSortFallback(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")

	// An unknown sort field silently falls back to execution_date.
	page, err := env.search.Simulations(dto.SimulationSearchFilter{
		Page:    1,
		PerPage: 10,
		SortBy:  "evil; DROP TABLE",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalItems)
}

func TestResearcherSearchFilters(t *testing.T) {
	env := newTestEnv(t)
	env.createResearcher(t, "ada@mit.edu")
	grace, err := env.researchers.Create(&dto.ResearcherPayload{
		FirstName:   strPtr("Grace"),
		LastName:    strPtr("Hopper"),
		Email:       strPtr("grace@yale.edu"),
		Institution: strPtr("Yale"),
	})
	require.NoError(t, err)

	page, err := env.search.Researchers(dto.ResearcherSearchFilter{
		Page:        1,
		PerPage:     10,
		Institution: "yale",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.TotalItems)
	items, ok := page.Items.([]dto.ResearcherResponse)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, grace.ResearcherID, items[0].ResearcherID)
}

func TestFilterOptions(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "run-001")

	options, err := env.search.FilterOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"Qiskit"}, options.Frameworks)
	assert.Equal(t, []string{"pending"}, options.Statuses)
	assert.Equal(t, []string{"MIT"}, options.Institutions)
	assert.Equal(t, 5, options.QubitRange.Min)
	assert.Equal(t, 5, options.QubitRange.Max)
}

func TestFilterOptionsEmptyStore(t *testing.T) {
	env := newTestEnv(t)

	options, err := env.search.FilterOptions()
	require.NoError(t, err)
	assert.Zero(t, options.QubitRange.Min)
	assert.Zero(t, options.QubitRange.Max)
	assert.Empty(t, options.Frameworks)
}
