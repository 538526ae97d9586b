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

// ── 项目模块业务错误 ──

var (
	ErrProjectStatusUnknown = errors.New("项目状态不是内置状态或已有自定义状态")
	ErrStatusNameTaken      = errors.New("状态名称已存在")
)

// ProjectService 项目业务接口
type ProjectService interface {
	Create(ctx context.Context, req *dto.CreateProjectRequest) (*model.Project, error)
	List(ctx context.Context, programID string) ([]model.Project, error)
	ListStatuses(ctx context.Context) ([]dto.ProjectStatusItem, error)
	CreateStatus(ctx context.Context, req *dto.CreateProjectStatusRequest) (*model.CustomProjectStatus, error)
}

type projectService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewProjectService 创建 ProjectService 实例
func NewProjectService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) ProjectService {
	return &projectService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 创建项目；状态必须是内置状态或已存在的自定义状态名
func (s *projectService) Create(ctx context.Context, req *dto.CreateProjectRequest) (*model.Project, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Program.GetByID(ctx, req.ProgramID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}

	if !isDefaultStatus(req.Status) {
		if _, err := s.repo.ProjectStatus.GetByName(ctx, req.Status); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrProjectStatusUnknown
			}
			s.logger.Error("查询项目状态失败", zap.String("status", req.Status), zap.Error(err))
			return nil, err
		}
	}

	project := &model.Project{
		ProgramID:   req.ProgramID,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      req.Budget,
		Status:      req.Status,
	}
	if err := s.repo.Project.Create(ctx, project); err != nil {
		s.logger.Error("创建项目失败", zap.Error(err))
		return nil, err
	}

	if err := s.cache.InvalidatePath(ctx, "/projects"); err != nil {
		s.logger.Warn("项目缓存失效失败", zap.Error(err))
	}

	return project, nil
}

// ────────────────────── List ──────────────────────

func (s *projectService) List(ctx context.Context, programID string) ([]model.Project, error) {
	projects, err := s.repo.Project.List(ctx, programID)
	if err != nil {
		s.logger.Error("列出项目失败", zap.Error(err))
		return nil, err
	}
	return projects, nil
}

// ────────────────────── 项目状态 ──────────────────────

// ListStatuses 合并返回五个内置状态与全部自定义状态；
// 内置状态不落库，固定携带默认展示色与 is_default 标记
func (s *projectService) ListStatuses(ctx context.Context) ([]dto.ProjectStatusItem, error) {
	custom, err := s.repo.ProjectStatus.List(ctx)
	if err != nil {
		s.logger.Error("列出自定义项目状态失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ProjectStatusItem, 0, len(model.DefaultProjectStatuses)+len(custom))
	for _, name := range model.DefaultProjectStatuses {
		result = append(result, dto.ProjectStatusItem{
			Name:      name,
			Color:     model.DefaultStatusColor,
			IsDefault: true,
		})
	}
	for i := range custom {
		result = append(result, dto.ProjectStatusItem{
			StatusID:  custom[i].StatusID,
			Name:      custom[i].Name,
			Color:     custom[i].Color,
			IsDefault: false,
		})
	}
	return result, nil
}

// CreateStatus 创建自定义项目状态；名称不得与内置或已有状态重复
func (s *projectService) CreateStatus(ctx context.Context, req *dto.CreateProjectStatusRequest) (*model.CustomProjectStatus, error) {
	if isDefaultStatus(req.Name) {
		return nil, ErrStatusNameTaken
	}
	if _, err := s.repo.ProjectStatus.GetByName(ctx, req.Name); err == nil {
		return nil, ErrStatusNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询项目状态失败", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	status := &model.CustomProjectStatus{
		Name:  req.Name,
		Color: req.Color,
	}
	if err := s.repo.ProjectStatus.Create(ctx, status); err != nil {
		s.logger.Error("创建自定义项目状态失败", zap.Error(err))
		return nil, err
	}

	if err := s.cache.InvalidatePath(ctx, "/project-statuses"); err != nil {
		s.logger.Warn("项目状态缓存失效失败", zap.Error(err))
	}

	return status, nil
}

func isDefaultStatus(name string) bool {
	for _, s := range model.DefaultProjectStatuses {
		if s == name {
			return true
		}
	}
	return false
}
