package models

// ParameterTypes lists the accepted parameter value types.
var ParameterTypes = []string{"numeric", "string", "boolean", "array", "object"}

// Parameter is a named input value attached to a simulation run. Values
// are stored as text regardless of their declared type.
type Parameter struct {
	ParameterID    int     `json:"parameter_id" gorm:"column:parameter_id;primaryKey;autoIncrement"`
	RunID          int     `json:"run_id" gorm:"column:run_id;not null;uniqueIndex:idx_run_parameter"`
	ParameterName  string  `json:"parameter_name" gorm:"size:100;not null;uniqueIndex:idx_run_parameter"`
	ParameterValue string  `json:"parameter_value" gorm:"not null"`
	ParameterUnit  *string `json:"parameter_unit" gorm:"size:50"`
	ParameterType  string  `json:"parameter_type" gorm:"size:20;default:numeric"`
}

// TableName keeps the original singular table name.
func (Parameter) TableName() string { return "parameter" }
