package dto

// PageResponse is the envelope for every paginated listing.
type PageResponse struct {
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalItems int64       `json:"total_items"`
	TotalPages int         `json:"total_pages"`
	HasNext    bool        `json:"has_next"`
	HasPrev    bool        `json:"has_prev"`
	Items      interface{} `json:"items"`
}

// NewPageResponse computes the derived pagination fields.
func NewPageResponse(page, perPage int, totalItems int64, items interface{}) PageResponse {
	totalPages := int((totalItems + int64(perPage) - 1) / int64(perPage))
	return PageResponse{
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Items:      items,
	}
}

// SimulationSearchFilter carries the faceted simulation search inputs.
type SimulationSearchFilter struct {
	Page         int
	PerPage      int
	SortBy       string
	Order        string
	Framework    string
	Status       string
	Algorithm    string
	ProjectID    int
	ResearcherID int
	MinQubits    int
	MaxQubits    int
	MinFidelity  float64
	DateFrom     string
	DateTo       string
}

// ResearcherSearchFilter carries the faceted researcher search inputs.
type ResearcherSearchFilter struct {
	Page        int
	PerPage     int
	Query       string
	Institution string
	Department  string
	Role        string
}

// ProjectSearchFilter carries the faceted project search inputs.
type ProjectSearchFilter struct {
	Page    int
	PerPage int
	Query   string
	Status  string
	Field   string
	OwnerID int
}

// SearchHit is one row of the global search results.
type SearchHit struct {
	ID           int     `json:"id"`
	Type         string  `json:"type"`
	Name         string  `json:"name,omitempty"`
	Email        string  `json:"email,omitempty"`
	Institution  *string `json:"institution,omitempty"`
	Title        string  `json:"title,omitempty"`
	Field        *string `json:"field,omitempty"`
	Status       string  `json:"status,omitempty"`
	SimulationID string  `json:"simulation_id,omitempty"`
	Framework    string  `json:"framework,omitempty"`
	Algorithm    *string `json:"algorithm,omitempty"`
}

// SearchCategory is the per-entity slice of global search results.
type SearchCategory struct {
	Count int         `json:"count"`
	Items []SearchHit `json:"items"`
}

// GlobalSearchResponse is the cross-entity search envelope.
type GlobalSearchResponse struct {
	Query   string `json:"query"`
	Results struct {
		Researchers SearchCategory `json:"researchers"`
		Projects    SearchCategory `json:"projects"`
		Simulations SearchCategory `json:"simulations"`
	} `json:"results"`
	TotalResults int `json:"total_results"`
}

// QubitRange is the observed qubit span across all simulations.
type QubitRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterOptionsResponse lists the distinct values usable as filters.
type FilterOptionsResponse struct {
	Frameworks   []string   `json:"frameworks"`
	Statuses     []string   `json:"statuses"`
	Algorithms   []string   `json:"algorithms"`
	Institutions []string   `json:"institutions"`
	QubitRange   QubitRange `json:"qubit_range"`
}
