package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
	"github.com/morbidsteve/business-analyst/backend/pkg/redis"
)

// FinanceService 财务业务接口（财务数据 / 费用 / 工时成本 / 设施成本）
type FinanceService interface {
	ListFinancialData(ctx context.Context, programID string) ([]model.FinancialData, error)
	CreateFinancialData(ctx context.Context, req *dto.CreateFinancialDataRequest) (*model.FinancialData, error)
	CreateExpense(ctx context.Context, req *dto.CreateExpenseRequest) (*model.Expense, error)
	ListCostCategories(ctx context.Context) ([]dto.CostCategoryItem, error)
	ListLaborCosts(ctx context.Context, programID string) ([]model.LaborCost, error)
	CreateLaborCost(ctx context.Context, req *dto.CreateLaborCostRequest) (*model.LaborCost, error)
	CreateWorkHours(ctx context.Context, req *dto.CreateWorkHoursRequest) (*model.LaborCost, error)
	CreateFacilitiesCost(ctx context.Context, req *dto.CreateFacilitiesCostRequest) (*model.FacilitiesCost, error)
}

type financeService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewFinanceService 创建 FinanceService 实例
func NewFinanceService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) FinanceService {
	return &financeService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── 财务数据 ──────────────────────

func (s *financeService) ListFinancialData(ctx context.Context, programID string) ([]model.FinancialData, error) {
	if _, err := s.repo.Program.GetByID(ctx, programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	data, err := s.repo.FinancialData.ListByProgram(ctx, programID)
	if err != nil {
		s.logger.Error("列出财务数据失败", zap.String("program_id", programID), zap.Error(err))
		return nil, err
	}
	return data, nil
}

func (s *financeService) CreateFinancialData(ctx context.Context, req *dto.CreateFinancialDataRequest) (*model.FinancialData, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProgram(ctx, req.ProgramID); err != nil {
		return nil, err
	}

	data := &model.FinancialData{
		ProgramID:   req.ProgramID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}
	if err := s.repo.FinancialData.Create(ctx, data); err != nil {
		s.logger.Error("创建财务数据失败", zap.Error(err))
		return nil, err
	}

	s.invalidateFinancePages(ctx, req.ProgramID)
	return data, nil
}

// ────────────────────── 费用 ──────────────────────

func (s *financeService) CreateExpense(ctx context.Context, req *dto.CreateExpenseRequest) (*model.Expense, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProgram(ctx, req.ProgramID); err != nil {
		return nil, err
	}

	expense := &model.Expense{
		ProgramID:   req.ProgramID,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
		Category:    req.Category,
	}
	if err := s.repo.Expense.Create(ctx, expense); err != nil {
		s.logger.Error("创建费用失败", zap.Error(err))
		return nil, err
	}

	s.invalidateFinancePages(ctx, req.ProgramID)
	return expense, nil
}

// ListCostCategories 列出库中实际出现过的费用类别，
// 枚举值转为展示写法（"TRAVEL" → "Travel"）
func (s *financeService) ListCostCategories(ctx context.Context) ([]dto.CostCategoryItem, error) {
	categories, err := s.repo.Expense.DistinctCategories(ctx)
	if err != nil {
		s.logger.Error("列出费用类别失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CostCategoryItem, 0, len(categories))
	for _, c := range categories {
		result = append(result, dto.CostCategoryItem{
			Value: c,
			Label: displayCase(c),
		})
	}
	return result, nil
}

// ────────────────────── 工时成本 ──────────────────────

func (s *financeService) ListLaborCosts(ctx context.Context, programID string) ([]model.LaborCost, error) {
	costs, err := s.repo.LaborCost.List(ctx, programID)
	if err != nil {
		s.logger.Error("列出工时成本失败", zap.Error(err))
		return nil, err
	}
	return costs, nil
}

func (s *financeService) CreateLaborCost(ctx context.Context, req *dto.CreateLaborCostRequest) (*model.LaborCost, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProgram(ctx, req.ProgramID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Personnel.GetByID(ctx, req.PersonnelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonnelNotFound
		}
		return nil, err
	}

	cost := &model.LaborCost{
		ProgramID:   req.ProgramID,
		PersonnelID: req.PersonnelID,
		EmployeeID:  req.EmployeeID,
		Hours:       req.Hours,
		Date:        date,
	}
	if err := s.repo.LaborCost.Create(ctx, cost); err != nil {
		s.logger.Error("创建工时成本失败", zap.Error(err))
		return nil, err
	}

	s.invalidateFinancePages(ctx, req.ProgramID)
	return cost, nil
}

// CreateWorkHours 按员工与项目群登记工时：
// 先定位该员工在项目群下的人员分配行，再落一条工时成本
func (s *financeService) CreateWorkHours(ctx context.Context, req *dto.CreateWorkHoursRequest) (*model.LaborCost, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	personnel, err := s.repo.Personnel.GetByProgramAndEmployee(ctx, req.ProgramID, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonnelNotFound
		}
		s.logger.Error("查询人员分配失败", zap.Error(err))
		return nil, err
	}

	cost := &model.LaborCost{
		ProgramID:   req.ProgramID,
		PersonnelID: personnel.PersonnelID,
		EmployeeID:  req.EmployeeID,
		Hours:       req.Hours,
		Date:        date,
	}
	if err := s.repo.LaborCost.Create(ctx, cost); err != nil {
		s.logger.Error("登记工时失败", zap.Error(err))
		return nil, err
	}

	s.invalidateFinancePages(ctx, req.ProgramID)
	return cost, nil
}

// ────────────────────── 设施成本 ──────────────────────

func (s *financeService) CreateFacilitiesCost(ctx context.Context, req *dto.CreateFacilitiesCostRequest) (*model.FacilitiesCost, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if err := s.ensureProgram(ctx, req.ProgramID); err != nil {
		return nil, err
	}

	cost := &model.FacilitiesCost{
		ProgramID:   req.ProgramID,
		Amount:      req.Amount,
		Date:        date,
		Description: req.Description,
	}
	if err := s.repo.FacilitiesCost.Create(ctx, cost); err != nil {
		s.logger.Error("创建设施成本失败", zap.Error(err))
		return nil, err
	}

	s.invalidateFinancePages(ctx, req.ProgramID)
	return cost, nil
}

// ────────────────────── 内部方法 ──────────────────────

func (s *financeService) ensureProgram(ctx context.Context, programID string) error {
	if _, err := s.repo.Program.GetByID(ctx, programID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProgramNotFound
		}
		s.logger.Error("查询项目群失败", zap.String("id", programID), zap.Error(err))
		return err
	}
	return nil
}

func (s *financeService) invalidateFinancePages(ctx context.Context, programID string) {
	if err := s.cache.InvalidatePrefix(ctx, "/programs/"+programID); err != nil {
		s.logger.Warn("项目群缓存失效失败", zap.String("program_id", programID), zap.Error(err))
	}
	if err := s.cache.InvalidatePath(ctx, "/dashboard-data"); err != nil {
		s.logger.Warn("仪表盘缓存失效失败", zap.Error(err))
	}
}

// displayCase 枚举值转展示写法："BUDGET_ALLOCATION" → "Budget Allocation"
func displayCase(value string) string {
	words := strings.Split(strings.ToLower(value), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
