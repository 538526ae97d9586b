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

// ── 人员分配模块业务错误 ──

var (
	ErrPersonnelNotFound = errors.New("人员分配不存在")
	// ErrAssignmentMixed 合同与劳务类别必须同空或同有
	ErrAssignmentMixed = errors.New("合同与劳务类别必须同时为空或同时提供")
)

// PersonnelService 人员分配业务接口
type PersonnelService interface {
	Create(ctx context.Context, req *dto.CreatePersonnelRequest) (*model.Personnel, error)
	ListByProgram(ctx context.Context, programID string) ([]model.Personnel, error)
}

type personnelService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewPersonnelService 创建 PersonnelService 实例
func NewPersonnelService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) PersonnelService {
	return &personnelService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 创建人员分配。单边提供合同或劳务类别直接拒绝；
// 正式分配（两者均有）时校验劳务类别确属该合同
func (s *personnelService) Create(ctx context.Context, req *dto.CreatePersonnelRequest) (*model.Personnel, error) {
	if (req.ContractID == nil) != (req.LaborCategoryID == nil) {
		return nil, ErrAssignmentMixed
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	assignmentStart := time.Now()
	if req.AssignmentStart != nil {
		assignmentStart, err = parseDate(*req.AssignmentStart)
		if err != nil {
			return nil, err
		}
	}
	assignmentEnd, err := parseDatePtr(req.AssignmentEnd)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Program.GetByID(ctx, req.ProgramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if _, err := s.repo.Employee.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}

	if req.ContractID != nil {
		if _, err := s.repo.Contract.GetByID(ctx, *req.ContractID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrContractNotFound
			}
			return nil, err
		}
		category, err := s.repo.LaborCategory.GetByID(ctx, *req.LaborCategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrLaborCategoryNotFound
			}
			return nil, err
		}
		if category.ContractID != *req.ContractID {
			return nil, ErrLaborCategoryNotFound
		}
	}

	personnel := &model.Personnel{
		ProgramID:       req.ProgramID,
		EmployeeID:      req.EmployeeID,
		ContractID:      req.ContractID,
		LaborCategoryID: req.LaborCategoryID,
		Role:            req.Role,
		StartDate:       startDate,
		AssignmentStart: assignmentStart,
		AssignmentEnd:   assignmentEnd,
		BillableRate:    req.BillableRate,
		ClearanceLevel:  defaultIfEmpty(req.ClearanceLevel, "None"),
		CurrentStatus:   true,
	}

	if err := s.repo.Personnel.Create(ctx, personnel); err != nil {
		s.logger.Error("创建人员分配失败", zap.Error(err))
		return nil, err
	}

	if err := s.cache.InvalidatePrefix(ctx, "/programs/"+req.ProgramID); err != nil {
		s.logger.Warn("项目群缓存失效失败", zap.Error(err))
	}

	return personnel, nil
}

// ────────────────────── ListByProgram ──────────────────────

func (s *personnelService) ListByProgram(ctx context.Context, programID string) ([]model.Personnel, error) {
	personnel, err := s.repo.Personnel.ListByProgram(ctx, programID)
	if err != nil {
		s.logger.Error("列出人员分配失败", zap.String("program_id", programID), zap.Error(err))
		return nil, err
	}
	return personnel, nil
}
