package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/qslrm-api/config"
	"github.com/qslrm-api/database"
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/repositories"
)

// testEnv wires the full service stack onto an in-memory database.
type testEnv struct {
	db          *gorm.DB
	researchers *ResearcherService
	projects    *ProjectService
	simulations *SimulationService
	analytics   *AnalyticsService
	search      *SearchService
	export      *ExportService
	auth        *AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// The in-memory store lives per connection; keep the pool at one.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	logger := zap.NewNop()
	researcherRepo := repositories.NewResearcherRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	simulationRepo := repositories.NewSimulationRepository(db)
	resultRepo := repositories.NewResultRepository(db)
	metadataRepo := repositories.NewMetadataRepository(db)
	parameterRepo := repositories.NewParameterRepository(db)
	accessLogRepo := repositories.NewAccessLogRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	cfg := &config.Config{JWTSecret: "test-secret", TokenTTLHrs: 1}

	return &testEnv{
		db:          db,
		researchers: NewResearcherService(researcherRepo, projectRepo, simulationRepo, logger),
		projects:    NewProjectService(projectRepo, researcherRepo, simulationRepo, logger),
		simulations: NewSimulationService(simulationRepo, projectRepo, researcherRepo, resultRepo, metadataRepo, parameterRepo, logger),
		analytics:   NewAnalyticsService(analyticsRepo, projectRepo, simulationRepo, accessLogRepo),
		search:      NewSearchService(researcherRepo, projectRepo, simulationRepo),
		export:      NewExportService(researcherRepo, projectRepo, simulationRepo),
		auth:        NewAuthService(researcherRepo, accessLogRepo, cfg, logger),
	}
}

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func (env *testEnv) createResearcher(t *testing.T, email string) *dto.ResearcherResponse {
	t.Helper()
	researcher, err := env.researchers.Create(&dto.ResearcherPayload{
		FirstName:   strPtr("Ada"),
		LastName:    strPtr("Lovelace"),
		Email:       strPtr(email),
		Institution: strPtr("MIT"),
	})
	require.NoError(t, err)
	return researcher
}

func (env *testEnv) createProject(t *testing.T, ownerID int, title string) *dto.ProjectResponse {
	t.Helper()
	project, err := env.projects.Create(&dto.ProjectPayload{
		Title:     strPtr(title),
		OwnerID:   intPtr(ownerID),
		StartDate: strPtr("2026-01-01"),
	})
	require.NoError(t, err)
	return project
}

func (env *testEnv) createSimulation(t *testing.T, projectID, researcherID int, simID string) *dto.SimulationResponse {
	t.Helper()
	simulation, err := env.simulations.Create(&dto.SimulationPayload{
		ProjectID:    intPtr(projectID),
		SimulationID: strPtr(simID),
		ResearcherID: intPtr(researcherID),
		Framework:    strPtr("Qiskit"),
		NumQubits:    intPtr(5),
	})
	require.NoError(t, err)
	return simulation
}
