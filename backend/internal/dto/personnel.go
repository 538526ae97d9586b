package dto

// ── 人员分配模块 DTO ──

// CreatePersonnelRequest 创建人员分配请求
// contract_id 与 labor_category_id 必须同时为空或同时提供，
// 单边提供在 service 层拒绝
type CreatePersonnelRequest struct {
	ProgramID       string  `json:"program_id"        binding:"required,uuid"`
	EmployeeID      string  `json:"employee_id"       binding:"required,uuid"`
	ContractID      *string `json:"contract_id"       binding:"omitempty,uuid"`
	LaborCategoryID *string `json:"labor_category_id" binding:"omitempty,uuid"`
	Role            string  `json:"role"              binding:"required,max=100"`
	StartDate       string  `json:"start_date"        binding:"required"` // "2026-01-01"
	AssignmentStart *string `json:"assignment_start"`
	AssignmentEnd   *string `json:"assignment_end"`
	BillableRate    float64 `json:"billable_rate"     binding:"gte=0"`
	ClearanceLevel  string  `json:"clearance_level"   binding:"omitempty,max=50"`
}
