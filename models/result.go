package models

import "time"

// SimulationResult holds the measured outcome of a run, one per
// simulation at most.
type SimulationResult struct {
	ResultID             int       `json:"result_id" gorm:"column:result_id;primaryKey;autoIncrement"`
	RunID                int       `json:"run_id" gorm:"column:run_id;uniqueIndex;not null"`
	OutputData           *string   `json:"-"`
	ExecutionTimeSeconds *float64  `json:"execution_time_seconds"`
	SuccessProbability   *float64  `json:"success_probability"`
	Fidelity             *float64  `json:"fidelity"`
	EnergyValue          *float64  `json:"-"`
	MeasurementCounts    *string   `json:"-"`
	ErrorRate            *float64  `json:"error_rate"`
	CreatedAt            time.Time `json:"-"`
}

// TableName keeps the original singular table name.
func (SimulationResult) TableName() string { return "simulation_result" }
