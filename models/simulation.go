package models

import "time"

// Simulation status values.
const (
	SimulationStatusPending   = "pending"
	SimulationStatusRunning   = "running"
	SimulationStatusCompleted = "completed"
	SimulationStatusFailed    = "failed"
	SimulationStatusCancelled = "cancelled"
)

// SimulationStatuses lists the accepted simulation status values.
var SimulationStatuses = []string{
	SimulationStatusPending,
	SimulationStatusRunning,
	SimulationStatusCompleted,
	SimulationStatusFailed,
	SimulationStatusCancelled,
}

// Frameworks lists the accepted quantum framework names.
var Frameworks = []string{"Qiskit", "Cirq", "PennyLane", "ProjectQ", "QuTiP", "Other"}

// QuantumSimulation records a single simulation run. The caller-chosen
// SimulationID is unique within its project; RunID is the surrogate key.
type QuantumSimulation struct {
	RunID         int       `json:"run_id" gorm:"column:run_id;primaryKey;autoIncrement"`
	ProjectID     int       `json:"project_id" gorm:"not null;index;uniqueIndex:idx_project_simulation"`
	SimulationID  string    `json:"simulation_id" gorm:"column:simulation_id;size:50;not null;uniqueIndex:idx_project_simulation"`
	ResearcherID  int       `json:"researcher_id" gorm:"not null;index"`
	Framework     string    `json:"framework" gorm:"size:50;not null"`
	NumQubits     int       `json:"num_qubits" gorm:"not null"`
	CircuitDepth  *int      `json:"circuit_depth"`
	AlgorithmType *string   `json:"algorithm_type" gorm:"size:100"`
	Description   *string   `json:"description"`
	ExecutionDate time.Time `json:"execution_date"`
	Status        string    `json:"status" gorm:"size:20;default:pending"`
	CreatedAt     time.Time `json:"-"`

	Researcher    Researcher               `json:"-" gorm:"foreignKey:ResearcherID;references:ResearcherID"`
	Result        *SimulationResult        `json:"-" gorm:"foreignKey:RunID;references:RunID"`
	ReproMetadata *ReproducibilityMetadata `json:"-" gorm:"foreignKey:RunID;references:RunID"`
	Parameters    []Parameter              `json:"-" gorm:"foreignKey:RunID;references:RunID"`
}

// TableName keeps the original singular table name.
func (QuantumSimulation) TableName() string { return "quantum_simulation" }
