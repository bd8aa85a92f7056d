package validation

import (
	"github.com/qslrm-api/dto"
	"github.com/qslrm-api/models"
)

// Composite validators bundle the per-entity field checks. In update
// mode required-field enforcement is skipped and only supplied fields
// are validated. All checks run before anything is written, so a
// failing payload leaves the store untouched.

// ResearcherData validates a researcher create/update payload.
func ResearcherData(p *dto.ResearcherPayload, isUpdate bool) error {
	if !isUpdate {
		if err := Required(map[string]bool{
			"first_name": p.FirstName != nil,
			"last_name":  p.LastName != nil,
			"email":      p.Email != nil,
		}, []string{"first_name", "last_name", "email"}); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := Email(*p.Email); err != nil {
			return err
		}
	}
	if p.OrcidID != nil {
		if err := Orcid(*p.OrcidID); err != nil {
			return err
		}
	}
	return nil
}

// ProjectData validates a project create/update payload.
func ProjectData(p *dto.ProjectPayload, isUpdate bool) error {
	if !isUpdate {
		if err := Required(map[string]bool{
			"title":    p.Title != nil,
			"owner_id": p.OwnerID != nil,
		}, []string{"title", "owner_id"}); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if err := StatusIn(*p.Status, models.ProjectStatuses); err != nil {
			return err
		}
	}
	if p.StartDate != nil {
		if err := Date(*p.StartDate, "start_date"); err != nil {
			return err
		}
	}
	if p.EndDate != nil {
		if err := Date(*p.EndDate, "end_date"); err != nil {
			return err
		}
	}
	if p.StartDate != nil && p.EndDate != nil {
		if err := DateRange(*p.StartDate, *p.EndDate); err != nil {
			return err
		}
	}
	return nil
}

// SimulationData validates a simulation create/update payload.
func SimulationData(p *dto.SimulationPayload, isUpdate bool) error {
	if !isUpdate {
		if err := Required(map[string]bool{
			"project_id":    p.ProjectID != nil,
			"simulation_id": p.SimulationID != nil,
			"researcher_id": p.ResearcherID != nil,
			"framework":     p.Framework != nil,
			"num_qubits":    p.NumQubits != nil,
		}, []string{"project_id", "simulation_id", "researcher_id", "framework", "num_qubits"}); err != nil {
			return err
		}
		if err := SimulationID(*p.SimulationID); err != nil {
			return err
		}
	}
	if p.Framework != nil {
		if err := Framework(*p.Framework, models.Frameworks); err != nil {
			return err
		}
	}
	if p.NumQubits != nil {
		if err := QubitCount(*p.NumQubits); err != nil {
			return err
		}
	}
	if p.Status != nil {
		if err := StatusIn(*p.Status, models.SimulationStatuses); err != nil {
			return err
		}
	}
	if p.CircuitDepth != nil {
		if err := CircuitDepth(*p.CircuitDepth); err != nil {
			return err
		}
	}
	return nil
}

// ResultData validates a result payload.
func ResultData(p *dto.ResultPayload) error {
	if p.ExecutionTimeSeconds != nil {
		if err := ExecutionTime(*p.ExecutionTimeSeconds); err != nil {
			return err
		}
	}
	if p.SuccessProbability != nil {
		if err := Probability(*p.SuccessProbability, "success_probability"); err != nil {
			return err
		}
	}
	if p.Fidelity != nil {
		if err := Probability(*p.Fidelity, "fidelity"); err != nil {
			return err
		}
	}
	if p.ErrorRate != nil {
		if err := Probability(*p.ErrorRate, "error_rate"); err != nil {
			return err
		}
	}
	return nil
}

// MetadataData validates a reproducibility metadata payload.
func MetadataData(p *dto.MetadataPayload) error {
	if p.ReproducibilityScore != nil {
		if err := Probability(*p.ReproducibilityScore, "reproducibility_score"); err != nil {
			return err
		}
	}
	return nil
}

// ParameterData validates a parameter payload.
func ParameterData(p *dto.ParameterPayload) error {
	if err := Required(map[string]bool{
		"parameter_name":  p.ParameterName != nil,
		"parameter_value": p.ParameterValue != nil,
	}, []string{"parameter_name", "parameter_value"}); err != nil {
		return err
	}
	if p.ParameterType != nil {
		if err := ParameterType(*p.ParameterType, models.ParameterTypes); err != nil {
			return err
		}
	}
	return nil
}
