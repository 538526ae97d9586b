package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
	"github.com/morbidsteve/business-analyst/backend/pkg/redis"
)

// ── 项目群模块业务错误 ──

var ErrProgramNotFound = errors.New("项目群不存在")

// ProgramService 项目群业务接口
type ProgramService interface {
	Create(ctx context.Context, req *dto.CreateProgramRequest) (*model.Program, error)
	GetByID(ctx context.Context, id string) (*model.Program, error)
	List(ctx context.Context) ([]dto.ProgramListItem, error)
}

type programService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewProgramService 创建 ProgramService 实例
func NewProgramService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) ProgramService {
	return &programService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *programService) Create(ctx context.Context, req *dto.CreateProgramRequest) (*model.Program, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	program := &model.Program{
		Name:        req.Name,
		Description: req.Description,
		Budget:      req.Budget,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err := s.repo.Program.Create(ctx, program); err != nil {
		s.logger.Error("创建项目群失败", zap.Error(err))
		return nil, err
	}

	if err := s.cache.InvalidatePath(ctx, "/programs"); err != nil {
		s.logger.Warn("项目群缓存失效失败", zap.Error(err))
	}

	return program, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *programService) GetByID(ctx context.Context, id string) (*model.Program, error) {
	program, err := s.repo.Program.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		s.logger.Error("查询项目群失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return program, nil
}

// ────────────────────── List ──────────────────────

func (s *programService) List(ctx context.Context) ([]dto.ProgramListItem, error) {
	programs, err := s.repo.Program.List(ctx)
	if err != nil {
		s.logger.Error("列出项目群失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProgramListItem, 0, len(programs))
	for i := range programs {
		result = append(result, dto.ProgramListItem{
			ProgramID: programs[i].ProgramID,
			Name:      programs[i].Name,
		})
	}
	return result, nil
}
