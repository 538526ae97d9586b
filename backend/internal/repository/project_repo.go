package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ProjectRepository 项目数据访问接口
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	List(ctx context.Context, programID string) ([]model.Project, error)
	ListByProgram(ctx context.Context, programID string) ([]model.Project, error)
}

type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepo 创建 ProjectRepository 实例
func NewProjectRepo(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

func (r *projectRepo) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// List 列出项目（含项目群）；programID 为空时不过滤
func (r *projectRepo) List(ctx context.Context, programID string) ([]model.Project, error) {
	var projects []model.Project
	query := r.db.WithContext(ctx).
		Preload("Program").
		Order("start_date DESC")
	if programID != "" {
		query = query.Where("program_id = ?", programID)
	}
	err := query.Find(&projects).Error
	return projects, err
}

func (r *projectRepo) ListByProgram(ctx context.Context, programID string) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("start_date ASC").
		Find(&projects).Error
	return projects, err
}

// ProjectStatusRepository 自定义项目状态数据访问接口
type ProjectStatusRepository interface {
	Create(ctx context.Context, status *model.CustomProjectStatus) error
	GetByName(ctx context.Context, name string) (*model.CustomProjectStatus, error)
	List(ctx context.Context) ([]model.CustomProjectStatus, error)
}

type projectStatusRepo struct {
	db *gorm.DB
}

// NewProjectStatusRepo 创建 ProjectStatusRepository 实例
func NewProjectStatusRepo(db *gorm.DB) ProjectStatusRepository {
	return &projectStatusRepo{db: db}
}

func (r *projectStatusRepo) Create(ctx context.Context, status *model.CustomProjectStatus) error {
	return r.db.WithContext(ctx).Create(status).Error
}

func (r *projectStatusRepo) GetByName(ctx context.Context, name string) (*model.CustomProjectStatus, error) {
	var status model.CustomProjectStatus
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *projectStatusRepo) List(ctx context.Context) ([]model.CustomProjectStatus, error) {
	var statuses []model.CustomProjectStatus
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&statuses).Error
	return statuses, err
}
