package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
	"github.com/morbidsteve/business-analyst/backend/pkg/redis"
)

// ── 员工模块业务错误 ──

var (
	ErrEmployeeNotFound   = errors.New("员工不存在")
	ErrEmployeeEmailTaken = errors.New("邮箱已被其他员工使用")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*model.Employee, error)
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*model.Employee, error)
	Delete(ctx context.Context, id string) error
	ListHistory(ctx context.Context, id string) ([]dto.HistoricalChangeEntry, error)
}

type employeeService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 创建员工；请求携带 program_id 时在同一事务内
// 追加一条计划态人员分配（无合同、无劳务类别）
func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*model.Employee, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.Employee.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, ErrEmployeeEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询员工邮箱失败", zap.Error(err))
		return nil, err
	}

	employee := &model.Employee{
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		StartDate:  startDate,
		EndDate:    endDate,
		HourlyRate: req.HourlyRate,
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Employee.Create(ctx, employee); err != nil {
			return err
		}
		if req.ProgramID == nil {
			return nil
		}
		if _, err := txRepo.Program.GetByID(ctx, *req.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProgramNotFound
			}
			return err
		}
		planning := &model.Personnel{
			ProgramID:       *req.ProgramID,
			EmployeeID:      employee.EmployeeID,
			Role:            req.Position,
			StartDate:       startDate,
			AssignmentStart: time.Now(),
			BillableRate:    req.HourlyRate,
			ClearanceLevel:  "None",
			CurrentStatus:   true,
		}
		return txRepo.Personnel.Create(ctx, planning)
	})
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) {
			return nil, err
		}
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	if err := s.cache.InvalidatePath(ctx, "/employees"); err != nil {
		s.logger.Warn("员工缓存失效失败", zap.Error(err))
	}

	return employee, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *employeeService) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return employee, nil
}

// ────────────────────── List ──────────────────────

// List 列出员工（软删除行已由数据层排除）
func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

// ────────────────────── Update ──────────────────────

// Update 更新员工：逐字段与存量行比对，差异字段各落一条历史记录，
// 历史记录与更新在同一事务内提交
func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*model.Employee, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	var diff historyDiff
	diff.str("name", &employee.Name, req.Name)
	diff.str("email", &employee.Email, req.Email)
	diff.str("position", &employee.Position, req.Position)
	diff.str("department", &employee.Department, req.Department)
	if err := diff.date("startDate", &employee.StartDate, req.StartDate); err != nil {
		return nil, err
	}
	if err := diff.datePtr("endDate", &employee.EndDate, req.EndDate); err != nil {
		return nil, err
	}
	diff.float("hourlyRate", &employee.HourlyRate, req.HourlyRate)

	if len(diff.changes) == 0 {
		return employee, nil
	}

	changes := make([]model.EmployeeHistoricalChange, 0, len(diff.changes))
	for _, c := range diff.changes {
		changes = append(changes, model.EmployeeHistoricalChange{
			EmployeeID: employee.EmployeeID,
			Field:      c.Field,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			ChangedAt:  time.Now(),
		})
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Employee.Update(ctx, employee); err != nil {
			return err
		}
		return txRepo.Employee.AddHistory(ctx, changes)
	})
	if err != nil {
		s.logger.Error("更新员工失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.cache.InvalidatePath(ctx, "/employees"); err != nil {
		s.logger.Warn("员工缓存失效失败", zap.Error(err))
	}

	return employee, nil
}

// ────────────────────── Delete ──────────────────────

// Delete 软删除员工（历史分配与成本记录保留）
func (s *employeeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Employee.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Employee.SoftDelete(ctx, id); err != nil {
		s.logger.Error("删除员工失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.cache.InvalidatePath(ctx, "/employees"); err != nil {
		s.logger.Warn("员工缓存失效失败", zap.Error(err))
	}

	return nil
}

// ────────────────────── ListHistory ──────────────────────

func (s *employeeService) ListHistory(ctx context.Context, id string) ([]dto.HistoricalChangeEntry, error) {
	if _, err := s.repo.Employee.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	changes, err := s.repo.Employee.ListHistory(ctx, id)
	if err != nil {
		s.logger.Error("查询员工历史失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.HistoricalChangeEntry, 0, len(changes))
	for _, c := range changes {
		result = append(result, dto.HistoricalChangeEntry{
			Field:     c.Field,
			OldValue:  c.OldValue,
			NewValue:  c.NewValue,
			ChangedAt: c.ChangedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}
