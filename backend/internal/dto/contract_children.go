package dto

// ── 合同子实体 DTO（任务 / 发票 / 变更 / 分包） ──

// CreateTaskRequest 创建合同任务请求
type CreateTaskRequest struct {
	Description       string  `json:"description"        binding:"required"`
	DueDate           string  `json:"due_date"           binding:"required"` // "2026-01-01"
	Status            string  `json:"status"             binding:"required,max=50"`
	EstimatedHours    float64 `json:"estimated_hours"    binding:"gte=0"`
	DeliverableFormat string  `json:"deliverable_format" binding:"omitempty,max=50"`
}

// CreateInvoiceRequest 创建合同发票请求
type CreateInvoiceRequest struct {
	InvoiceNumber  string  `json:"invoice_number"  binding:"required,max=50"`
	InvoiceDate    string  `json:"invoice_date"    binding:"required"`
	Amount         float64 `json:"amount"          binding:"required,gte=0"`
	Status         string  `json:"status"          binding:"required,max=50"`
	SubmissionDate string  `json:"submission_date" binding:"required"`
	PaymentDate    *string `json:"payment_date"`
	PaymentTerms   string  `json:"payment_terms"   binding:"omitempty,max=50"`
}

// CreateModificationRequest 创建合同变更请求
// value_change 允许为负（减资变更）
type CreateModificationRequest struct {
	ModNumber     string  `json:"mod_number"     binding:"required,max=50"`
	EffectiveDate string  `json:"effective_date" binding:"required"`
	ValueChange   float64 `json:"value_change"`
	Description   string  `json:"description"    binding:"required"`
	Status        string  `json:"status"         binding:"required,max=50"`
}

// CreateSubcontractingGoalRequest 创建分包目标请求
type CreateSubcontractingGoalRequest struct {
	BusinessType      string  `json:"business_type"      binding:"required,max=50"`
	GoalPercentage    float64 `json:"goal_percentage"    binding:"gte=0,lte=100"`
	CurrentPercentage float64 `json:"current_percentage" binding:"gte=0,lte=100"`
	GoalAmount        float64 `json:"goal_amount"        binding:"gte=0"`
	CurrentAmount     float64 `json:"current_amount"     binding:"gte=0"`
	ReportPeriod      string  `json:"report_period"      binding:"required"`
}

// CreateSubcontractorRequest 创建分包商请求
type CreateSubcontractorRequest struct {
	Name          string `json:"name"           binding:"required,max=200"`
	DunsNumber    string `json:"duns_number"    binding:"required,len=9"`
	CageCode      string `json:"cage_code"      binding:"required,len=5"`
	BusinessSize  string `json:"business_size"  binding:"required,max=20"`
	BusinessTypes string `json:"business_types" binding:"omitempty,max=100"`
}

// CreateSubcontractorAssignmentRequest 创建分包商分配请求
type CreateSubcontractorAssignmentRequest struct {
	SubcontractorID string  `json:"subcontractor_id" binding:"required,uuid"`
	StartDate       string  `json:"start_date"       binding:"required"`
	EndDate         *string `json:"end_date"`
	PlannedValue    float64 `json:"planned_value"    binding:"gte=0"`
	CurrentValue    float64 `json:"current_value"    binding:"gte=0"`
	Status          string  `json:"status"           binding:"required,max=50"`
}
