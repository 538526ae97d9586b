package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
)

// ── 分析模块业务错误 ──

// ErrUnknownChartType 不支持的图表类型
var ErrUnknownChartType = errors.New("不支持的图表类型")

// AnalyticsService 分析业务接口
// 每种图表是一个独立的纯转换：取出项目群范围内的扁平行，
// 单趟归并为图表数据点
type AnalyticsService interface {
	ProgramChart(ctx context.Context, programID, chartType string) (interface{}, error)
	Dashboard(ctx context.Context, programID, category string) ([]dto.DashboardPoint, error)
}

type analyticsService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnalyticsService 创建 AnalyticsService 实例
func NewAnalyticsService(repo *repository.Repository, logger *zap.Logger) AnalyticsService {
	return &analyticsService{repo: repo, logger: logger}
}

const monthLayout = "2006-01"

// ────────────────────── ProgramChart ──────────────────────

func (s *analyticsService) ProgramChart(ctx context.Context, programID, chartType string) (interface{}, error) {
	program, err := s.repo.Program.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		s.logger.Error("查询项目群失败", zap.String("id", programID), zap.Error(err))
		return nil, err
	}

	switch chartType {
	// 财务
	case "burnRate":
		return s.burnRate(ctx, programID)
	case "expenseVsBudget":
		return s.expenseVsBudget(ctx, program)
	case "obligationRate":
		return s.obligationRate(ctx, program)
	case "revenueVsExpenses":
		return s.revenueVsExpenses(ctx, programID)
	case "profitMargin":
		return s.profitMargin(ctx, programID)

	// 运营
	case "resourceUtilization":
		return s.resourceUtilization(ctx, programID)
	case "employeeProductivity":
		return s.employeeProductivity(ctx, programID)
	case "cycleTimeAnalysis":
		return s.cycleTimeAnalysis()

	// 项目进度
	case "milestoneCompletion":
		return s.milestoneCompletion(ctx, programID)
	case "projectStatus":
		return s.projectStatus(ctx, programID)
	case "ganttChart":
		return s.ganttChart(ctx, programID)

	// 风险
	case "riskMatrix":
		return s.riskMatrix()
	case "riskTrend":
		return s.riskTrend()
	case "issueTracker":
		return s.issueTracker()

	default:
		return nil, ErrUnknownChartType
	}
}

// ────────────────────── 财务图表 ──────────────────────

// burnRate 支出类财务数据按日期升序累加
func (s *analyticsService) burnRate(ctx context.Context, programID string) ([]dto.BurnRatePoint, error) {
	data, err := s.repo.FinancialData.ListByProgramAndTypes(ctx, programID, []string{model.FinancialTypeExpense})
	if err != nil {
		return nil, err
	}

	cumulative := 0.0
	points := make([]dto.BurnRatePoint, 0, len(data))
	for _, d := range data {
		cumulative += d.Amount
		points = append(points, dto.BurnRatePoint{
			Date:     d.Date.Format(dateLayout),
			BurnRate: cumulative,
		})
	}
	return points, nil
}

// expenseVsBudget 支出按月聚合，与月度预算（年度预算的 1/12）对比
func (s *analyticsService) expenseVsBudget(ctx context.Context, program *model.Program) ([]dto.ExpenseVsBudgetPoint, error) {
	data, err := s.repo.FinancialData.ListByProgramAndTypes(ctx, program.ProgramID, []string{model.FinancialTypeExpense})
	if err != nil {
		return nil, err
	}

	monthlyBudget := program.Budget / 12

	byMonth := make(map[string]float64)
	var order []string
	for _, d := range data {
		month := d.Date.Format(monthLayout)
		if _, ok := byMonth[month]; !ok {
			order = append(order, month)
		}
		byMonth[month] += d.Amount
	}

	points := make([]dto.ExpenseVsBudgetPoint, 0, len(order))
	for _, month := range order {
		points = append(points, dto.ExpenseVsBudgetPoint{
			Month:   month,
			Expense: byMonth[month],
			Budget:  monthlyBudget,
		})
	}
	return points, nil
}

// obligationRate 支出与预算划拨按日期升序扫描，
// 仅支出计入累计额，每行输出一次占预算百分比
func (s *analyticsService) obligationRate(ctx context.Context, program *model.Program) ([]dto.ObligationRatePoint, error) {
	data, err := s.repo.FinancialData.ListByProgramAndTypes(ctx, program.ProgramID,
		[]string{model.FinancialTypeExpense, model.FinancialTypeBudgetAllocation})
	if err != nil {
		return nil, err
	}

	cumulative := 0.0
	points := make([]dto.ObligationRatePoint, 0, len(data))
	for _, d := range data {
		if d.Type == model.FinancialTypeExpense {
			cumulative += d.Amount
		}
		points = append(points, dto.ObligationRatePoint{
			Date:           d.Date.Format(dateLayout),
			ObligationRate: cumulative / program.Budget * 100,
		})
	}
	return points, nil
}

// revenueVsExpenses 收入与支出按月各自求和
func (s *analyticsService) revenueVsExpenses(ctx context.Context, programID string) ([]dto.RevenueVsExpensesPoint, error) {
	months, byMonth, err := s.monthlyRevenueExpenses(ctx, programID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.RevenueVsExpensesPoint, 0, len(months))
	for _, month := range months {
		points = append(points, dto.RevenueVsExpensesPoint{
			Month:    month,
			Revenue:  byMonth[month].revenue,
			Expenses: byMonth[month].expenses,
		})
	}
	return points, nil
}

// profitMargin 月度利润率；月收入为零时利润率取 0 而非 NaN
func (s *analyticsService) profitMargin(ctx context.Context, programID string) ([]dto.ProfitMarginPoint, error) {
	months, byMonth, err := s.monthlyRevenueExpenses(ctx, programID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.ProfitMarginPoint, 0, len(months))
	for _, month := range months {
		m := byMonth[month]
		margin := 0.0
		if m.revenue > 0 {
			margin = (m.revenue - m.expenses) / m.revenue * 100
		}
		points = append(points, dto.ProfitMarginPoint{
			Month:        month,
			ProfitMargin: margin,
		})
	}
	return points, nil
}

type monthlyTotals struct {
	revenue  float64
	expenses float64
}

func (s *analyticsService) monthlyRevenueExpenses(ctx context.Context, programID string) ([]string, map[string]monthlyTotals, error) {
	data, err := s.repo.FinancialData.ListByProgramAndTypes(ctx, programID,
		[]string{model.FinancialTypeRevenue, model.FinancialTypeExpense})
	if err != nil {
		return nil, nil, err
	}

	byMonth := make(map[string]monthlyTotals)
	var order []string
	for _, d := range data {
		month := d.Date.Format(monthLayout)
		m, ok := byMonth[month]
		if !ok {
			order = append(order, month)
		}
		if d.Type == model.FinancialTypeRevenue {
			m.revenue += d.Amount
		} else {
			m.expenses += d.Amount
		}
		byMonth[month] = m
	}
	return order, byMonth, nil
}

// ────────────────────── 运营图表 ──────────────────────
//
// 利用率/产出/周期/风险/问题类指标沿用占位随机值，
// 维持既有图表消费方的数据契约，真实计算另行立项

func (s *analyticsService) resourceUtilization(ctx context.Context, programID string) ([]dto.ResourceUtilizationPoint, error) {
	personnel, err := s.repo.Personnel.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.ResourceUtilizationPoint, 0, len(personnel))
	for _, p := range personnel {
		name := ""
		if p.Employee != nil {
			name = p.Employee.Name
		}
		points = append(points, dto.ResourceUtilizationPoint{
			Resource:    name,
			Utilization: rand.Float64() * 100,
		})
	}
	return points, nil
}

func (s *analyticsService) employeeProductivity(ctx context.Context, programID string) ([]dto.EmployeeProductivityPoint, error) {
	personnel, err := s.repo.Personnel.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.EmployeeProductivityPoint, 0, len(personnel))
	for _, p := range personnel {
		name := ""
		if p.Employee != nil {
			name = p.Employee.Name
		}
		points = append(points, dto.EmployeeProductivityPoint{
			Employee:       name,
			HoursWorked:    rand.Intn(160) + 40,
			TasksCompleted: rand.Intn(50) + 10,
		})
	}
	return points, nil
}

func (s *analyticsService) cycleTimeAnalysis() ([]dto.CycleTimePoint, error) {
	processes := []string{"Requirements", "Design", "Development", "Testing", "Deployment"}
	points := make([]dto.CycleTimePoint, 0, len(processes))
	for _, p := range processes {
		points = append(points, dto.CycleTimePoint{
			Process:   p,
			CycleTime: rand.Intn(30) + 1,
		})
	}
	return points, nil
}

// ────────────────────── 项目进度图表 ──────────────────────

func (s *analyticsService) milestoneCompletion(ctx context.Context, programID string) ([]dto.MilestoneCompletionPoint, error) {
	projects, err := s.repo.Project.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.MilestoneCompletionPoint, 0, len(projects))
	for _, p := range projects {
		points = append(points, dto.MilestoneCompletionPoint{
			Milestone:            p.Name,
			CompletionPercentage: rand.Intn(100),
		})
	}
	return points, nil
}

func (s *analyticsService) projectStatus(ctx context.Context, programID string) ([]dto.ProjectStatusPoint, error) {
	projects, err := s.repo.Project.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.ProjectStatusPoint, 0, len(projects))
	for _, p := range projects {
		points = append(points, dto.ProjectStatusPoint{
			Project:              p.Name,
			CompletionPercentage: rand.Intn(100),
		})
	}
	return points, nil
}

func (s *analyticsService) ganttChart(ctx context.Context, programID string) ([]dto.GanttChartPoint, error) {
	projects, err := s.repo.Project.ListByProgram(ctx, programID)
	if err != nil {
		return nil, err
	}

	points := make([]dto.GanttChartPoint, 0, len(projects))
	for _, p := range projects {
		points = append(points, dto.GanttChartPoint{
			Task:     p.Name,
			Date:     p.StartDate.Format(dateLayout),
			Duration: int(p.EndDate.Sub(p.StartDate).Hours() / 24),
		})
	}
	return points, nil
}

// ────────────────────── 风险图表 ──────────────────────

func (s *analyticsService) riskMatrix() ([]dto.RiskMatrixPoint, error) {
	risks := []string{"Budget Overrun", "Schedule Delay", "Scope Creep", "Resource Shortage", "Technical Issues"}
	points := make([]dto.RiskMatrixPoint, 0, len(risks))
	for _, r := range risks {
		points = append(points, dto.RiskMatrixPoint{
			Name:       r,
			Likelihood: rand.Intn(100),
			Impact:     rand.Intn(100),
			Value:      rand.Intn(1000000),
		})
	}
	return points, nil
}

func (s *analyticsService) riskTrend() ([]dto.RiskTrendPoint, error) {
	now := time.Now()
	points := make([]dto.RiskTrendPoint, 0, 6)
	for i := 0; i < 6; i++ {
		points = append(points, dto.RiskTrendPoint{
			Date:        now.AddDate(0, i-5, 0).Format(monthLayout),
			HighRisks:   rand.Intn(5),
			MediumRisks: rand.Intn(10),
			LowRisks:    rand.Intn(15),
		})
	}
	return points, nil
}

func (s *analyticsService) issueTracker() ([]dto.IssueTrackerPoint, error) {
	categories := []string{"Technical", "Process", "People", "External"}
	points := make([]dto.IssueTrackerPoint, 0, len(categories))
	for _, c := range categories {
		points = append(points, dto.IssueTrackerPoint{
			Category:     c,
			OpenIssues:   rand.Intn(10),
			ClosedIssues: rand.Intn(15),
		})
	}
	return points, nil
}

// ────────────────────── Dashboard ──────────────────────

// Dashboard 近 12 个月逐月累计的预算划拨与实际费用对比；
// programID / category 为空时不过滤
func (s *analyticsService) Dashboard(ctx context.Context, programID, category string) ([]dto.DashboardPoint, error) {
	now := time.Now()
	start := now.AddDate(0, -12, 0)

	budgetData, err := s.repo.FinancialData.ListByTypeSince(ctx, model.FinancialTypeBudgetAllocation, start, programID)
	if err != nil {
		s.logger.Error("查询预算划拨失败", zap.Error(err))
		return nil, err
	}
	expenseData, err := s.repo.Expense.ListSince(ctx, start, programID, category)
	if err != nil {
		s.logger.Error("查询费用失败", zap.Error(err))
		return nil, err
	}

	budgetByMonth := make(map[string]float64)
	for _, d := range budgetData {
		budgetByMonth[d.Date.Format(monthLayout)] += d.Amount
	}
	expenseByMonth := make(map[string]float64)
	for _, e := range expenseData {
		expenseByMonth[e.Date.Format(monthLayout)] += e.Amount
	}

	var points []dto.DashboardPoint
	cumulativeBudget := 0.0
	cumulativeExpense := 0.0
	for cursor := start; !cursor.After(now); cursor = cursor.AddDate(0, 1, 0) {
		month := cursor.Format(monthLayout)
		cumulativeBudget += budgetByMonth[month]
		cumulativeExpense += expenseByMonth[month]
		points = append(points, dto.DashboardPoint{
			Date:   month,
			Budget: cumulativeBudget,
			Actual: cumulativeExpense,
		})
	}
	return points, nil
}
