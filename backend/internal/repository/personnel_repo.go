package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// PersonnelRepository 人员分配数据访问接口
type PersonnelRepository interface {
	Create(ctx context.Context, personnel *model.Personnel) error
	GetByID(ctx context.Context, id string) (*model.Personnel, error)
	ListByProgram(ctx context.Context, programID string) ([]model.Personnel, error)
	GetByProgramAndEmployee(ctx context.Context, programID, employeeID string) (*model.Personnel, error)
}

type personnelRepo struct {
	db *gorm.DB
}

// NewPersonnelRepo 创建 PersonnelRepository 实例
func NewPersonnelRepo(db *gorm.DB) PersonnelRepository {
	return &personnelRepo{db: db}
}

func (r *personnelRepo) Create(ctx context.Context, personnel *model.Personnel) error {
	return r.db.WithContext(ctx).Create(personnel).Error
}

func (r *personnelRepo) GetByID(ctx context.Context, id string) (*model.Personnel, error) {
	var personnel model.Personnel
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("personnel_id = ?", id).
		First(&personnel).Error
	if err != nil {
		return nil, err
	}
	return &personnel, nil
}

func (r *personnelRepo) ListByProgram(ctx context.Context, programID string) ([]model.Personnel, error) {
	var personnel []model.Personnel
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("program_id = ?", programID).
		Order("assignment_start DESC").
		Find(&personnel).Error
	return personnel, err
}

// GetByProgramAndEmployee 取员工在某项目群下最近一条分配（工时登记用）
func (r *personnelRepo) GetByProgramAndEmployee(ctx context.Context, programID, employeeID string) (*model.Personnel, error) {
	var personnel model.Personnel
	err := r.db.WithContext(ctx).
		Where("program_id = ? AND employee_id = ?", programID, employeeID).
		Order("assignment_start DESC").
		First(&personnel).Error
	if err != nil {
		return nil, err
	}
	return &personnel, nil
}
