package dto

// ── 管理模块 DTO（种子数据 / 清空数据） ──

// SeedResult 种子数据执行结果（各实体写入条数）
type SeedResult struct {
	Programs                 int `json:"programs"`
	Employees                int `json:"employees"`
	Agencies                 int `json:"agencies"`
	ContractTypes            int `json:"contract_types"`
	Contracts                int `json:"contracts"`
	LaborCategories          int `json:"labor_categories"`
	Personnel                int `json:"personnel"`
	Projects                 int `json:"projects"`
	FinancialData            int `json:"financial_data"`
	Expenses                 int `json:"expenses"`
	LaborCosts               int `json:"labor_costs"`
	FacilitiesCosts          int `json:"facilities_costs"`
	Tasks                    int `json:"tasks"`
	Invoices                 int `json:"invoices"`
	Modifications            int `json:"modifications"`
	SubcontractingGoals      int `json:"subcontracting_goals"`
	Subcontractors           int `json:"subcontractors"`
	SubcontractorAssignments int `json:"subcontractor_assignments"`
	CustomProjectStatuses    int `json:"custom_project_statuses"`
}

// PurgeResult 清空数据执行结果
type PurgeResult struct {
	TablesCleared int `json:"tables_cleared"`
}
