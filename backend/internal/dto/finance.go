package dto

// ── 财务模块 DTO ──

// CreateFinancialDataRequest 创建财务数据请求
type CreateFinancialDataRequest struct {
	ProgramID   string  `json:"program_id"  binding:"required,uuid"`
	Type        string  `json:"type"        binding:"required,oneof=REVENUE EXPENSE BUDGET_ALLOCATION INVESTMENT"`
	Amount      float64 `json:"amount"      binding:"required,gte=0"`
	Date        string  `json:"date"        binding:"required"` // "2026-01-01"
	Description string  `json:"description"`
}

// CreateExpenseRequest 创建费用请求
type CreateExpenseRequest struct {
	ProgramID   string  `json:"program_id"  binding:"required,uuid"`
	Amount      float64 `json:"amount"      binding:"required,gte=0"`
	Date        string  `json:"date"        binding:"required"`
	Description string  `json:"description" binding:"required"`
	Category    string  `json:"category"    binding:"required,oneof=TRAVEL EQUIPMENT SUPPLIES SERVICES MISCELLANEOUS"`
}

// CostCategoryItem 费用类别列表项（展示名 + 原始枚举值）
type CostCategoryItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CreateLaborCostRequest 创建工时成本请求
type CreateLaborCostRequest struct {
	ProgramID   string  `json:"program_id"   binding:"required,uuid"`
	PersonnelID string  `json:"personnel_id" binding:"required,uuid"`
	EmployeeID  string  `json:"employee_id"  binding:"required,uuid"`
	Hours       float64 `json:"hours"        binding:"required,gte=0"`
	Date        string  `json:"date"         binding:"required"`
}

// CreateWorkHoursRequest 登记工时请求
// 仅给出员工与项目群，人员分配行由 service 层按二者查出
type CreateWorkHoursRequest struct {
	ProgramID  string  `json:"program_id"  binding:"required,uuid"`
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Hours      float64 `json:"hours"       binding:"required,gte=0"`
	Date       string  `json:"date"        binding:"required"`
}

// CreateFacilitiesCostRequest 创建设施成本请求
type CreateFacilitiesCostRequest struct {
	ProgramID   string  `json:"program_id"  binding:"required,uuid"`
	Amount      float64 `json:"amount"      binding:"required,gte=0"`
	Date        string  `json:"date"        binding:"required"`
	Description string  `json:"description" binding:"required"`
}
