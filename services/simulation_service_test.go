package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qslrm-api/apperrors"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
	"github.com/qslrm-api/validation"
)

func TestSimulationCreateDefaultsToPending(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")

	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")
	assert.Equal(t, models.SimulationStatusPending, sim.Status)
	assert.Equal(t, "Ada Lovelace", sim.ResearcherName)
}

func TestSimulationDuplicateIDWithinProject(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, err := env.simulations.Create(&dto.SimulationPayload{
		ProjectID:    intPtr(project.ProjectID),
		SimulationID: strPtr("vqe-run-001"),
		ResearcherID: intPtr(owner.ResearcherID),
		Framework:    strPtr("Qiskit"),
		NumQubits:    intPtr(3),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Simulation ID already exists in this project", err.Error())
}

func TestSimulationSameIDAcrossProjects(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	first := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	second := env.createProject(t, owner.ResearcherID, "QAOA Benchmarks")

	env.createSimulation(t, first.ProjectID, owner.ResearcherID, "run-001")
	env.createSimulation(t, second.ProjectID, owner.ResearcherID, "run-001")
}

func TestSimulationCreateInvalidQubits(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")

	_, err := env.simulations.Create(&dto.SimulationPayload{
		ProjectID:    intPtr(project.ProjectID),
		SimulationID: strPtr("too-big"),
		ResearcherID: intPtr(owner.ResearcherID),
		Framework:    strPtr("Qiskit"),
		NumQubits:    intPtr(1001),
	})
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "num_qubits", vErr.Field)
}

func TestSimulationCreateInvalidFramework(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")

	_, err := env.simulations.Create(&dto.SimulationPayload{
		ProjectID:    intPtr(project.ProjectID),
		SimulationID: strPtr("bad-framework"),
		ResearcherID: intPtr(owner.ResearcherID),
		Framework:    strPtr("AbacusSim"),
		NumQubits:    intPtr(3),
	})
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "framework", vErr.Field)
}

func TestSaveResultCompletesPendingRun(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	result, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{
		Fidelity:             floatPtr(0.95),
		ExecutionTimeSeconds: floatPtr(12.5),
	})
	require.NoError(t, err)
	require.NotNil(t, result.Fidelity)

	reloaded, err := env.simulations.Get(sim.RunID)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationStatusCompleted, reloaded.Status)
}

func TestSaveResultKeepsFailedStatus(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, err := env.simulations.Update(sim.RunID, &dto.SimulationPayload{
		Status: strPtr(models.SimulationStatusFailed),
	})
	require.NoError(t, err)

	_, _, err = env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.1)})
	require.NoError(t, err)

	reloaded, err := env.simulations.Get(sim.RunID)
	require.NoError(t, err)
	assert.Equal(t, models.SimulationStatusFailed, reloaded.Status)
}

func TestSaveResultReportsCreationThenUpdate(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, created, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.9)})
	require.NoError(t, err)
	assert.True(t, created)

	result, created, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.95)})
	require.NoError(t, err)
	assert.False(t, created)
	require.NotNil(t, result.Fidelity)
	assert.InDelta(t, 0.95, *result.Fidelity, 0.001)
}

func TestSaveMetadataReportsCreationThenUpdate(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, created, err := env.simulations.SaveMetadata(sim.RunID, &dto.MetadataPayload{
		ReproducibilityScore: floatPtr(0.8),
	})
	require.NoError(t, err)
	assert.True(t, created)

	_, created, err = env.simulations.SaveMetadata(sim.RunID, &dto.MetadataPayload{
		ReproducibilityScore: floatPtr(0.85),
	})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSaveResultRejectsOutOfRangeFidelity(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(1.5)})
	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fidelity", vErr.Field)
}

func TestResultNotFound(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, err := env.simulations.Result(sim.RunID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "No results available", err.Error())
}

func TestSaveMetadataStampsVerification(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	metadata, _, err := env.simulations.SaveMetadata(sim.RunID, &dto.MetadataPayload{
		ReproducibilityScore: floatPtr(0.9),
		VerifiedBy:           intPtr(owner.ResearcherID),
	})
	require.NoError(t, err)
	require.NotNil(t, metadata.VerifiedBy)
	assert.NotNil(t, metadata.VerificationDate)
}

func TestParameterDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, err := env.simulations.AddParameter(sim.RunID, &dto.ParameterPayload{
		ParameterName:  strPtr("shots"),
		ParameterValue: 1024,
	})
	require.NoError(t, err)

	_, err = env.simulations.AddParameter(sim.RunID, &dto.ParameterPayload{
		ParameterName:  strPtr("shots"),
		ParameterValue: 2048,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestParameterValueStoredAsText(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	parameter, err := env.simulations.AddParameter(sim.RunID, &dto.ParameterPayload{
		ParameterName:  strPtr("optimizer"),
		ParameterValue: "COBYLA",
		ParameterType:  strPtr("string"),
	})
	require.NoError(t, err)
	assert.Equal(t, "COBYLA", parameter.ParameterValue)

	numeric, err := env.simulations.AddParameter(sim.RunID, &dto.ParameterPayload{
		ParameterName:  strPtr("shots"),
		ParameterValue: 1024,
	})
	require.NoError(t, err)
	assert.Equal(t, "1024", numeric.ParameterValue)
}

func TestParameterTypeDefaultsToString(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	parameter, err := env.simulations.AddParameter(sim.RunID, &dto.ParameterPayload{
		ParameterName:  strPtr("ansatz"),
		ParameterValue: "UCCSD",
	})
	require.NoError(t, err)
	assert.Equal(t, "string", parameter.ParameterType)

	typed, err := env.simulations.AddParameter(sim.RunID, &dto.ParameterPayload{
		ParameterName:  strPtr("shots"),
		ParameterValue: 1024,
		ParameterType:  strPtr("numeric"),
	})
	require.NoError(t, err)
	assert.Equal(t, "numeric", typed.ParameterType)
}

func TestSimulationDeleteRemovesDependents(t *testing.T) {
	env := newTestEnv(t)
	owner := env.createResearcher(t, "ada@mit.edu")
	project := env.createProject(t, owner.ResearcherID, "VQE Benchmarks")
	sim := env.createSimulation(t, project.ProjectID, owner.ResearcherID, "vqe-run-001")

	_, _, err := env.simulations.SaveResult(sim.RunID, &dto.ResultPayload{Fidelity: floatPtr(0.9)})
	require.NoError(t, err)

	require.NoError(t, env.simulations.Delete(sim.RunID))

	_, err = env.simulations.Get(sim.RunID)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
