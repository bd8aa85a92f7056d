package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/validation"
)

func TestResearcherCreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	created := env.createResearcher(t, "ada@mit.edu")
	assert.Equal(t, "Ada Lovelace", created.FullName)

	detail, err := env.researchers.Get(created.ResearcherID)
	require.NoError(t, err)
	assert.Equal(t, "ada@mit.edu", detail.Email)
	assert.Zero(t, detail.Statistics.TotalSimulations)
}

func TestResearcherCreateDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.createResearcher(t, "ada@mit.edu")

	_, err := env.researchers.Create(&dto.ResearcherPayload{
		FirstName: strPtr("Grace"),
		LastName:  strPtr("Hopper"),
		Email:     strPtr("ada@mit.edu"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Email already exists", err.Error())
}

func TestResearcherCreateDefaultsRole(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.researchers.Create(&dto.ResearcherPayload{
		FirstName: strPtr("Grace"),
		LastName:  strPtr("Hopper"),
		Email:     strPtr("grace@yale.edu"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Role)
	assert.Equal(t, "Researcher", *created.Role)

	professor, err := env.researchers.Create(&dto.ResearcherPayload{
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		Email:     strPtr("ada@mit.edu"),
		Role:      strPtr("Professor"),
	})
	require.NoError(t, err)
	require.NotNil(t, professor.Role)
	assert.Equal(t, "Professor", *professor.Role)
}

func TestResearcherCreateInvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.researchers.Create(&dto.ResearcherPayload{
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		Email:     strPtr("not-an-email"),
	})
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "email", vErr.Field)
}

func TestResearcherCreateDuplicateOrcid(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.researchers.Create(&dto.ResearcherPayload{
		FirstName: strPtr("Ada"),
		LastName:  strPtr("Lovelace"),
		Email:     strPtr("ada@mit.edu"),
		OrcidID:   strPtr("0000-0001-2345-6789"),
	})
	require.NoError(t, err)

	_, err = env.researchers.Create(&dto.ResearcherPayload{
		FirstName: strPtr("Grace"),
		LastName:  strPtr("Hopper"),
		Email:     strPtr("grace@yale.edu"),
		OrcidID:   strPtr("0000-0001-2345-6789"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestResearcherUpdatePartial(t *testing.T) {
	env := newTestEnv(t)
	created := env.createResearcher(t, "ada@mit.edu")

	updated, err := env.researchers.Update(created.ResearcherID, &dto.ResearcherPayload{
		Department: strPtr("Quantum Computing"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@mit.edu", updated.Email)
	require.NotNil(t, updated.Department)
	assert.Equal(t, "Quantum Computing", *updated.Department)
}

func TestResearcherDeleteBlockedByOwnedProject(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	env.createProject(t, owner.ResearcherID, "VQE Benchmarks")

	err := env.researchers.Delete(owner.ResearcherID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Cannot delete researcher who owns projects", err.Error())
}

func TestResearcherDeleteBlockedBySimulations(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	collaborator := env.createResearcher(t, "grace@yale.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, collaborator.ResearcherID, "vqe-run-001")

	err := env.researchers.Delete(collaborator.ResearcherID)
	require.Error(t, err)
	assert.Equal(t, "Cannot delete researcher with simulations", err.Error())
}

func TestResearcherDeleteSuccess(t *testing.T) {
	env := newTestEnv(t)
	researcher := env.createResearcher(t, "ada@mit.edu")

	require.NoError(t, env.researchers.Delete(researcher.ResearcherID))

	_, err := env.researchers.Get(researcher.ResearcherID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestResearcherGetNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.researchers.Get(9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestResearcherStatistics(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.9)})
	require.NoError(t, err)

	detail, err := env.researchers.Get(owner.ResearcherID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, detail.Statistics.TotalSimulations)
	assert.EqualValues(t, 1, detail.Statistics.CompletedSimulations)
	assert.EqualValues(t, 1, detail.Statistics.ProjectsOwned)
	assert.EqualValues(t, 1, detail.Statistics.ProjectsInvolved)
}
