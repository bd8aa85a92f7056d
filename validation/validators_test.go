package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("ada@mit.edu"))
	assert.NoError(t, Email("first.last+tag@sub.example.org"))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("missing@tld"))
	assert.Error(t, Email("@example.org"))
}

func TestOrcid(t *testing.T) {
	assert.NoError(t, Orcid(""))
	assert.NoError(t, Orcid("0000-0001-2345-6789"))
	assert.NoError(t, Orcid("0000-0001-2345-678X"))
	assert.Error(t, Orcid("0000-0001-2345"))
	assert.Error(t, Orcid("0000000123456789"))
}

func TestQubitCount(t *testing.T) {
	assert.NoError(t, QubitCount(1))
	assert.NoError(t, QubitCount(1000))
	assert.Error(t, QubitCount(0))
	assert.Error(t, QubitCount(-3))
	assert.Error(t, QubitCount(1001))
}

func TestProbability(t *testing.T) {
	assert.NoError(t, Probability(0, "fidelity"))
	assert.NoError(t, Probability(1, "fidelity"))
	assert.NoError(t, Probability(0.5, "fidelity"))

	err := Probability(1.01, "fidelity")
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fidelity", vErr.Field)
	assert.Error(t, Probability(-0.01, "error_rate"))
}

func TestStatusIn(t *testing.T) {
	valid := []string{"pending", "running", "completed"}
	assert.NoError(t, StatusIn("running", valid))
	assert.Error(t, StatusIn("paused", valid))
	assert.Error(t, StatusIn("", valid))
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("", "start_date"))
	assert.NoError(t, Date("2026-02-28", "start_date"))
	assert.Error(t, Date("2026-13-01", "start_date"))
	assert.Error(t, Date("28-02-2026", "start_date"))
	assert.Error(t, Date("2026-02-30", "start_date"))
}

func TestDateRange(t *testing.T) {
	assert.NoError(t, DateRange("2026-01-01", "2026-06-01"))
	assert.NoError(t, DateRange("2026-01-01", "2026-01-01"))
	assert.NoError(t, DateRange("", "2026-06-01"))
	assert.NoError(t, DateRange("2026-01-01", ""))
	assert.Error(t, DateRange("2026-06-01", "2026-01-01"))
}

func TestCircuitDepth(t *testing.T) {
	assert.NoError(t, CircuitDepth(0))
	assert.NoError(t, CircuitDepth(10000))
	assert.Error(t, CircuitDepth(-1))
	assert.Error(t, CircuitDepth(10001))
}

func TestExecutionTime(t *testing.T) {
	assert.NoError(t, ExecutionTime(0))
	assert.NoError(t, ExecutionTime(86400))
	assert.Error(t, ExecutionTime(-1))
	assert.Error(t, ExecutionTime(86401))
}

func TestSimulationID(t *testing.T) {
	assert.NoError(t, SimulationID("vqe-run_001"))
	assert.Error(t, SimulationID(""))
	assert.Error(t, SimulationID("has space"))
	assert.Error(t, SimulationID("semi;colon"))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, SimulationID(string(long)))
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required(map[string]bool{"title": true}, []string{"title"}))

	err := Required(map[string]bool{"title": false, "owner_id": false}, []string{"title", "owner_id"})
	var vErr *Error
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Missing required fields: title, owner_id", vErr.Message)
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  ", 0))
	assert.Equal(t, "he", SanitizeString("hello", 2))
	assert.Equal(t, "", SanitizeString("   ", 10))
}
