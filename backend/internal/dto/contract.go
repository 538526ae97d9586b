package dto

// ── 合同模块 DTO ──

// CreateContractRequest 创建合同请求
// program_id / agency_id / contract_type_id 必须指向存量行，否则整体失败
type CreateContractRequest struct {
	ProgramID            string  `json:"program_id"              binding:"required,uuid"`
	AgencyID             string  `json:"agency_id"               binding:"required,uuid"`
	ContractTypeID       string  `json:"contract_type_id"        binding:"required,uuid"`
	ContractNumber       string  `json:"contract_number"         binding:"required,max=50"`
	Title                string  `json:"title"                   binding:"required,min=2,max=200"`
	StartDate            string  `json:"start_date"              binding:"required"` // "2026-01-01"
	EndDate              string  `json:"end_date"                binding:"required"`
	TotalValue           float64 `json:"total_value"             binding:"required,gte=0"`
	FundedValue          float64 `json:"funded_value"            binding:"gte=0"`
	Status               string  `json:"status"                  binding:"required,max=50"`
	ContractingOfficer   string  `json:"contracting_officer"     binding:"omitempty,max=100"`
	CorName              string  `json:"cor_name"                binding:"omitempty,max=100"`
	SecurityClearanceReq string  `json:"security_clearance_req"  binding:"omitempty,max=50"`
	PerformanceLocation  string  `json:"performance_location"    binding:"omitempty,max=200"`
	NaicsCode            string  `json:"naics_code"              binding:"omitempty,max=10"`
	SmallBusinessGoalPct float64 `json:"small_business_goal_pct" binding:"gte=0,lte=100"`
	IsClassified         bool    `json:"is_classified"`
}

// UpdateContractRequest 更新合同请求（nil 字段不参与更新与历史比对）
type UpdateContractRequest struct {
	ContractNumber       *string  `json:"contract_number"         binding:"omitempty,max=50"`
	Title                *string  `json:"title"                   binding:"omitempty,min=2,max=200"`
	StartDate            *string  `json:"start_date"`
	EndDate              *string  `json:"end_date"`
	TotalValue           *float64 `json:"total_value"             binding:"omitempty,gte=0"`
	FundedValue          *float64 `json:"funded_value"            binding:"omitempty,gte=0"`
	Status               *string  `json:"status"                  binding:"omitempty,max=50"`
	ContractingOfficer   *string  `json:"contracting_officer"     binding:"omitempty,max=100"`
	CorName              *string  `json:"cor_name"                binding:"omitempty,max=100"`
	SecurityClearanceReq *string  `json:"security_clearance_req"  binding:"omitempty,max=50"`
	PerformanceLocation  *string  `json:"performance_location"    binding:"omitempty,max=200"`
	NaicsCode            *string  `json:"naics_code"              binding:"omitempty,max=10"`
	SmallBusinessGoalPct *float64 `json:"small_business_goal_pct" binding:"omitempty,gte=0,lte=100"`
	IsClassified         *bool    `json:"is_classified"`
}

// CreateAttachmentRequest 创建合同附件请求
type CreateAttachmentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	URL  string `json:"url"  binding:"required,url"`
}

// DeleteAttachmentResponse 删除附件响应（返回父合同 id 便于调用方刷新）
type DeleteAttachmentResponse struct {
	AttachmentID string `json:"attachment_id"`
	ContractID   string `json:"contract_id"`
}

// CreateLaborCategoryRequest 创建劳务类别请求
type CreateLaborCategoryRequest struct {
	ContractID    string  `json:"contract_id"    binding:"required,uuid"`
	Title         string  `json:"title"          binding:"required,max=100"`
	Description   string  `json:"description"`
	MinRate       float64 `json:"min_rate"       binding:"gte=0"`
	MaxRate       float64 `json:"max_rate"       binding:"gte=0"`
	EducationReq  string  `json:"education_req"  binding:"omitempty,max=100"`
	ExperienceReq string  `json:"experience_req" binding:"omitempty,max=100"`
	ClearanceReq  string  `json:"clearance_req"  binding:"omitempty,max=50"`
}
