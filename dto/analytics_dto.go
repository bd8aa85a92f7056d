package dto

// FrameworkStats is one row of the framework comparison.
type FrameworkStats struct {
	Framework          string  `json:"framework"`
	TotalSimulations   int64   `json:"total_simulations"`
	AvgFidelity        float64 `json:"avg_fidelity"`
	AvgExecutionTime   float64 `json:"avg_execution_time"`
	AvgReproducibility float64 `json:"avg_reproducibility"`
	AvgQubits          float64 `json:"avg_qubits"`
}

// AlgorithmStats is one row of the algorithm comparison.
type AlgorithmStats struct {
	Algorithm      string  `json:"algorithm"`
	TotalRuns      int64   `json:"total_runs"`
	AvgFidelity    float64 `json:"avg_fidelity"`
	AvgSuccessRate float64 `json:"avg_success_rate"`
	QubitRange     string  `json:"qubit_range"`
}

// LeaderboardEntry ranks a researcher by simulation volume.
type LeaderboardEntry struct {
	Rank             int      `json:"rank"`
	ResearcherID     int      `json:"researcher_id"`
	Name             string   `json:"name"`
	Institution      *string  `json:"institution"`
	TotalSimulations int64    `json:"total_simulations"`
	AvgFidelity      *float64 `json:"avg_fidelity"`
}

// HealthMetrics is the breakdown behind a project health score.
type HealthMetrics struct {
	TotalSimulations   int64   `json:"total_simulations"`
	Completed          int64   `json:"completed"`
	Failed             int64   `json:"failed"`
	Running            int64   `json:"running"`
	CompletionRate     float64 `json:"completion_rate"`
	FailureRate        float64 `json:"failure_rate"`
	AvgFidelity        float64 `json:"avg_fidelity"`
	AvgReproducibility float64 `json:"avg_reproducibility"`
}

// ProjectHealthResponse is the derived health report for a project.
type ProjectHealthResponse struct {
	ProjectID   int            `json:"project_id"`
	ProjectName string         `json:"project_name,omitempty"`
	HealthScore float64        `json:"health_score"`
	Status      string         `json:"status"`
	Message     string         `json:"message,omitempty"`
	Metrics     *HealthMetrics `json:"metrics,omitempty"`
}

// TrendPoint is one calendar-day bucket of the trend series.
type TrendPoint struct {
	Date               string   `json:"date"`
	SimulationCount    int      `json:"simulation_count"`
	AvgFidelity        *float64 `json:"avg_fidelity"`
	AvgReproducibility *float64 `json:"avg_reproducibility"`
}

// TrendsResponse is the chronological trend series for a period.
type TrendsResponse struct {
	Period    string       `json:"period"`
	TotalDays int          `json:"total_days"`
	Trends    []TrendPoint `json:"trends"`
}

// QubitScalingStats is one row of the qubit scaling analysis.
type QubitScalingStats struct {
	Qubits           int     `json:"qubits"`
	Simulations      int64   `json:"simulations"`
	AvgFidelity      float64 `json:"avg_fidelity"`
	AvgExecutionTime float64 `json:"avg_execution_time"`
}

// InstitutionStats is one row of the per-institution rollup.
type InstitutionStats struct {
	Institution      *string `json:"institution"`
	Researchers      int64   `json:"researchers"`
	TotalSimulations int64   `json:"total_simulations"`
	AvgFidelity      float64 `json:"avg_fidelity"`
}

// DashboardOverview is the headline counters block.
type DashboardOverview struct {
	TotalResearchers int64 `json:"total_researchers"`
	TotalProjects    int64 `json:"total_projects"`
	TotalSimulations int64 `json:"total_simulations"`
	RecentActivity   int64 `json:"recent_activity"`
}

// QualityMetrics is the corpus-wide quality block.
type QualityMetrics struct {
	AvgFidelity        float64 `json:"avg_fidelity"`
	AvgReproducibility float64 `json:"avg_reproducibility"`
}

// DashboardResponse is the basic dashboard payload.
type DashboardResponse struct {
	Overview DashboardOverview `json:"overview"`
}

// EnhancedDashboardResponse adds breakdowns and quality metrics.
type EnhancedDashboardResponse struct {
	Overview           DashboardOverview `json:"overview"`
	StatusBreakdown    map[string]int64  `json:"status_breakdown"`
	FrameworkBreakdown map[string]int64  `json:"framework_breakdown"`
	QualityMetrics     QualityMetrics    `json:"quality_metrics"`
}
