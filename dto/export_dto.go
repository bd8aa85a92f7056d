package dto

import "time"

// ReportOwner identifies a project owner inside an exported report.
type ReportOwner struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Institution *string `json:"institution"`
}

// ReportProject is the project block of an exported report.
type ReportProject struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Description  *string     `json:"description"`
	FieldOfStudy *string     `json:"field_of_study"`
	Status       string      `json:"status"`
	StartDate    string      `json:"start_date"`
	EndDate      *string     `json:"end_date"`
	Owner        ReportOwner `json:"owner"`
}

// ReportTeamMember is one team row of an exported report.
type ReportTeamMember struct {
	ResearcherID int     `json:"researcher_id"`
	Name         string  `json:"name"`
	Role         string  `json:"role"`
	Institution  *string `json:"institution"`
}

// ReportStatistics summarizes a project's runs in an exported report.
type ReportStatistics struct {
	TotalSimulations   int     `json:"total_simulations"`
	Completed          int     `json:"completed"`
	Failed             int     `json:"failed"`
	Running            int     `json:"running"`
	AvgFidelity        float64 `json:"avg_fidelity"`
	AvgReproducibility float64 `json:"avg_reproducibility"`
}

// ReportSimulation is one run row of an exported report.
type ReportSimulation struct {
	RunID           int      `json:"run_id"`
	SimulationID    string   `json:"simulation_id"`
	Framework       string   `json:"framework"`
	Algorithm       *string  `json:"algorithm"`
	Qubits          int      `json:"qubits"`
	Status          string   `json:"status"`
	ExecutionDate   string   `json:"execution_date"`
	Fidelity        *float64 `json:"fidelity"`
	Reproducibility *float64 `json:"reproducibility"`
}

// ProjectReport is the full downloadable project report.
type ProjectReport struct {
	Project     ReportProject      `json:"project"`
	Team        []ReportTeamMember `json:"team"`
	Statistics  ReportStatistics   `json:"statistics"`
	Simulations []ReportSimulation `json:"simulations"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// PortfolioResearcher is the identity block of a researcher portfolio.
type PortfolioResearcher struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Orcid       *string `json:"orcid"`
	Institution *string `json:"institution"`
	Department  *string `json:"department"`
	Role        *string `json:"role"`
}

// PortfolioStatistics summarizes a researcher's activity.
type PortfolioStatistics struct {
	TotalSimulations     int     `json:"total_simulations"`
	CompletedSimulations int     `json:"completed_simulations"`
	ProjectsOwned        int     `json:"projects_owned"`
	AvgFidelity          float64 `json:"avg_fidelity"`
}

// PortfolioProject is one owned project row of a portfolio.
type PortfolioProject struct {
	ID               int    `json:"id"`
	Title            string `json:"title"`
	Status           string `json:"status"`
	SimulationsCount int64  `json:"simulations_count"`
}

// PortfolioSimulation is one recent run row of a portfolio.
type PortfolioSimulation struct {
	RunID         int    `json:"run_id"`
	SimulationID  string `json:"simulation_id"`
	Project       string `json:"project"`
	Framework     string `json:"framework"`
	Status        string `json:"status"`
	ExecutionDate string `json:"execution_date"`
}

// ResearcherPortfolio is the full downloadable researcher portfolio.
type ResearcherPortfolio struct {
	Researcher        PortfolioResearcher   `json:"researcher"`
	Statistics        PortfolioStatistics   `json:"statistics"`
	OwnedProjects     []PortfolioProject    `json:"owned_projects"`
	RecentSimulations []PortfolioSimulation `json:"recent_simulations"`
	GeneratedAt       time.Time             `json:"generated_at"`
}

// FullExport is the complete downloadable data set.
type FullExport struct {
	Researchers []ResearcherResponse `json:"researchers"`
	Projects    []ProjectResponse    `json:"projects"`
	Simulations []SimulationResponse `json:"simulations"`
	ExportedAt  time.Time            `json:"exported_at"`
}
