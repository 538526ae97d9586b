package dto

// ── 分析模块 DTO ──
//
// 图表数据点的 JSON 键与前端图表组件约定一致（camelCase），
// 与其余模块的 snake_case 风格不同，不要"顺手统一"

// BurnRatePoint 累计支出燃烧率数据点
type BurnRatePoint struct {
	Date     string  `json:"date"` // "2026-01-01"
	BurnRate float64 `json:"burnRate"`
}

// ExpenseVsBudgetPoint 月度支出与月度预算对比数据点
type ExpenseVsBudgetPoint struct {
	Month   string  `json:"month"` // "2026-01"
	Expense float64 `json:"expense"`
	Budget  float64 `json:"budget"`
}

// ObligationRatePoint 预算占用率数据点
type ObligationRatePoint struct {
	Date           string  `json:"date"`
	ObligationRate float64 `json:"obligationRate"`
}

// RevenueVsExpensesPoint 月度收支对比数据点
type RevenueVsExpensesPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// ProfitMarginPoint 月度利润率数据点
type ProfitMarginPoint struct {
	Month        string  `json:"month"`
	ProfitMargin float64 `json:"profitMargin"`
}

// ResourceUtilizationPoint 资源利用率数据点
type ResourceUtilizationPoint struct {
	Resource    string  `json:"resource"`
	Utilization float64 `json:"utilization"`
}

// EmployeeProductivityPoint 员工产出数据点
type EmployeeProductivityPoint struct {
	Employee       string `json:"employee"`
	HoursWorked    int    `json:"hoursWorked"`
	TasksCompleted int    `json:"tasksCompleted"`
}

// CycleTimePoint 流程周期数据点
type CycleTimePoint struct {
	Process   string `json:"process"`
	CycleTime int    `json:"cycleTime"` // 天
}

// MilestoneCompletionPoint 里程碑完成度数据点
type MilestoneCompletionPoint struct {
	Milestone            string `json:"milestone"`
	CompletionPercentage int    `json:"completionPercentage"`
}

// ProjectStatusPoint 项目进度数据点
type ProjectStatusPoint struct {
	Project              string `json:"project"`
	CompletionPercentage int    `json:"completionPercentage"`
}

// GanttChartPoint 甘特图数据点
type GanttChartPoint struct {
	Task     string `json:"task"`
	Date     string `json:"date"`
	Duration int    `json:"duration"` // 天
}

// RiskMatrixPoint 风险矩阵数据点
type RiskMatrixPoint struct {
	Name       string `json:"name"`
	Likelihood int    `json:"likelihood"`
	Impact     int    `json:"impact"`
	Value      int    `json:"value"`
}

// RiskTrendPoint 风险趋势数据点
type RiskTrendPoint struct {
	Date        string `json:"date"` // "2026-01"
	HighRisks   int    `json:"highRisks"`
	MediumRisks int    `json:"mediumRisks"`
	LowRisks    int    `json:"lowRisks"`
}

// IssueTrackerPoint 问题追踪数据点
type IssueTrackerPoint struct {
	Category     string `json:"category"`
	OpenIssues   int    `json:"openIssues"`
	ClosedIssues int    `json:"closedIssues"`
}

// DashboardPoint 仪表盘累计预算/实际支出数据点
type DashboardPoint struct {
	Date   string  `json:"date"` // "2026-01"
	Budget float64 `json:"budget"`
	Actual float64 `json:"actual"`
}
