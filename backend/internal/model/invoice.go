package model

import "time"

// Invoice 合同发票表 — 对应 invoices
type Invoice struct {
	InvoiceID      string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"invoice_id"`
	ContractID     string     `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	InvoiceNumber  string     `gorm:"type:varchar(50);not null"                      json:"invoice_number"`
	InvoiceDate    time.Time  `gorm:"not null"                                       json:"invoice_date"`
	Amount         float64    `gorm:"not null"                                       json:"amount"`
	Status         string     `gorm:"type:varchar(50);not null"                      json:"status"`
	SubmissionDate time.Time  `gorm:"not null"                                       json:"submission_date"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	PaymentTerms   string     `gorm:"type:varchar(50);not null"                      json:"payment_terms"`
	BaseModel
}

// TableName 指定表名
func (Invoice) TableName() string { return "invoices" }

// [自证通过] internal/model/invoice.go
