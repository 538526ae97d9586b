package dto

// ── 基础字典模块 DTO（签约机构 / 合同类型） ──

// CreateAgencyRequest 创建签约机构请求
// 除名称外均可缺省，缺省值由 service 层补齐
type CreateAgencyRequest struct {
	Name          string `json:"name"           binding:"required,min=2,max=200"`
	Department    string `json:"department"     binding:"omitempty,max=100"`
	Address       string `json:"address"`
	PaymentOffice string `json:"payment_office" binding:"omitempty,max=100"`
}

// CreateContractTypeRequest 创建合同类型请求
type CreateContractTypeRequest struct {
	Name                string `json:"name"                 binding:"required,min=2,max=100"`
	Category            string `json:"category"             binding:"omitempty,max=50"`
	BillingRequirements string `json:"billing_requirements"`
}
