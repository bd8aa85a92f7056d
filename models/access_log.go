package models

import "time"

// AccessLog is the append-only activity trail. Rows are written on auth
// actions and only ever read back for reporting.
type AccessLog struct {
	LogID        int       `json:"log_id" gorm:"column:log_id;primaryKey;autoIncrement"`
	ResearcherID int       `json:"researcher_id" gorm:"not null;index"`
	ActionType   string    `json:"action_type" gorm:"size:50;not null"`
	TargetEntity *string   `json:"target_entity" gorm:"size:50"`
	TargetID     *string   `json:"target_id" gorm:"column:target_id;size:100"`
	Timestamp    time.Time `json:"timestamp" gorm:"not null"`
	IPAddress    *string   `json:"ip_address" gorm:"column:ip_address;size:45"`
	UserAgent    *string   `json:"user_agent" gorm:"size:255"`
}

// TableName keeps the original table name.
func (AccessLog) TableName() string { return "access_log" }
