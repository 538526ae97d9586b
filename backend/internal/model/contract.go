package model

import "time"

// Contract 合同表 — 对应 contracts
// 项目群下的资助协议，必须关联项目群、签约机构与合同类型
type Contract struct {
	ContractID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"contract_id"`
	ProgramID            string    `gorm:"type:uuid;not null;index"                       json:"program_id"`
	AgencyID             string    `gorm:"type:uuid;not null"                             json:"agency_id"`
	ContractTypeID       string    `gorm:"type:uuid;not null"                             json:"contract_type_id"`
	ContractNumber       string    `gorm:"type:varchar(50);not null"                      json:"contract_number"`
	Title                string    `gorm:"type:varchar(200);not null"                     json:"title"`
	StartDate            time.Time `gorm:"not null"                                       json:"start_date"`
	EndDate              time.Time `gorm:"not null"                                       json:"end_date"`
	TotalValue           float64   `gorm:"not null"                                       json:"total_value"`
	FundedValue          float64   `gorm:"not null"                                       json:"funded_value"`
	Status               string    `gorm:"type:varchar(50);not null"                      json:"status"`
	ContractingOfficer   string    `gorm:"type:varchar(100);not null"                     json:"contracting_officer"`
	CorName              string    `gorm:"type:varchar(100);not null"                     json:"cor_name"`
	SecurityClearanceReq string    `gorm:"type:varchar(50);not null"                      json:"security_clearance_req"`
	PerformanceLocation  string    `gorm:"type:varchar(200);not null"                     json:"performance_location"`
	NaicsCode            string    `gorm:"type:varchar(10);not null"                      json:"naics_code"`
	SmallBusinessGoalPct float64   `gorm:"not null"                                       json:"small_business_goal_pct"`
	IsClassified         bool      `gorm:"not null;default:false"                         json:"is_classified"`
	BaseModel

	// 关联
	Program      *Program      `gorm:"foreignKey:ProgramID;references:ProgramID"           json:"program,omitempty"`
	Agency       *Agency       `gorm:"foreignKey:AgencyID;references:AgencyID"             json:"agency,omitempty"`
	ContractType *ContractType `gorm:"foreignKey:ContractTypeID;references:ContractTypeID" json:"contract_type,omitempty"`
}

// TableName 指定表名
func (Contract) TableName() string { return "contracts" }

// [自证通过] internal/model/contract.go
