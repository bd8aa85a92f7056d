package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Error is a field-level validation failure. It never reaches the store:
// validators run before any write is attempted.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string { return e.Message }

func fail(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

var (
	emailPattern        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	orcidPattern        = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[0-9X]$`)
	simulationIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

const dateLayout = "2006-01-02"

// Email checks the address format.
func Email(email string) error {
	if !emailPattern.MatchString(email) {
		return fail("email", "Invalid email format: %s", email)
	}
	return nil
}

// Orcid checks the ORCID identifier format. Empty is fine, the field is
// optional.
func Orcid(orcid string) error {
	if orcid == "" {
		return nil
	}
	if !orcidPattern.MatchString(orcid) {
		return fail("orcid_id", "Invalid ORCID format. Expected: 0000-0000-0000-0000, got: %s", orcid)
	}
	return nil
}

// QubitCount checks the qubit count range.
func QubitCount(numQubits int) error {
	if numQubits < 1 {
		return fail("num_qubits", "Qubit count must be at least 1")
	}
	if numQubits > 1000 {
		return fail("num_qubits", "Qubit count cannot exceed 1000")
	}
	return nil
}

// Probability checks that a value lies in [0,1].
func Probability(value float64, field string) error {
	if value < 0 || value > 1 {
		return fail(field, "%s must be between 0 and 1, got: %v", field, value)
	}
	return nil
}

// StatusIn checks membership in an allowed status list.
func StatusIn(status string, valid []string) error {
	for _, v := range valid {
		if status == v {
			return nil
		}
	}
	return fail("status", "Invalid status. Must be one of: %s", strings.Join(valid, ", "))
}

// Framework checks the quantum framework name.
func Framework(framework string, valid []string) error {
	for _, v := range valid {
		if framework == v {
			return nil
		}
	}
	return fail("framework", "Invalid framework. Must be one of: %s", strings.Join(valid, ", "))
}

// ParameterType checks the declared parameter value type.
func ParameterType(paramType string, valid []string) error {
	for _, v := range valid {
		if paramType == v {
			return nil
		}
	}
	return fail("parameter_type", "Invalid parameter type. Must be one of: %s", strings.Join(valid, ", "))
}

// Date checks the YYYY-MM-DD format. Empty is fine.
func Date(dateStr, field string) error {
	if dateStr == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return fail(field, "%s must be in format YYYY-MM-DD, got: %s", field, dateStr)
	}
	return nil
}

// ParseDate parses a validated YYYY-MM-DD string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(dateLayout, dateStr)
}

// DateRange checks that the end does not precede the start. Either side
// may be empty.
func DateRange(startDate, endDate string) error {
	if startDate == "" || endDate == "" {
		return nil
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fail("start_date", "Invalid date format: %s", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fail("end_date", "Invalid date format: %s", endDate)
	}
	if end.Before(start) {
		return fail("end_date", "End date must be after start date")
	}
	return nil
}

// CircuitDepth checks the circuit depth bound.
func CircuitDepth(depth int) error {
	if depth < 0 {
		return fail("circuit_depth", "Circuit depth cannot be negative")
	}
	if depth > 10000 {
		return fail("circuit_depth", "Circuit depth seems unreasonably large (max 10000)")
	}
	return nil
}

// ExecutionTime checks the execution time bound.
func ExecutionTime(seconds float64) error {
	if seconds < 0 {
		return fail("execution_time_seconds", "Execution time cannot be negative")
	}
	if seconds > 86400 {
		return fail("execution_time_seconds", "Execution time seems unreasonably long (max 24 hours)")
	}
	return nil
}

// SimulationID checks the caller-chosen simulation identifier.
func SimulationID(simID string) error {
	if simID == "" {
		return fail("simulation_id", "Simulation ID is required")
	}
	if !simulationIDPattern.MatchString(simID) {
		return fail("simulation_id", "Simulation ID can only contain letters, numbers, hyphens, and underscores")
	}
	if len(simID) > 100 {
		return fail("simulation_id", "Simulation ID too long (max 100 characters)")
	}
	return nil
}

// Required reports the first missing field of the given set. The fields
// map pairs field names with presence flags.
func Required(fields map[string]bool, order []string) error {
	var missing []string
	for _, name := range order {
		if !fields[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fail(missing[0], "Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// SanitizeString trims whitespace and truncates to maxLength when
// maxLength is positive. The input is never modified in place.
func SanitizeString(text string, maxLength int) string {
	text = strings.TrimSpace(text)
	if maxLength > 0 && len(text) > maxLength {
		text = text[:maxLength]
	}
	return text
}
