package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ── 合同子实体数据访问（任务 / 发票 / 变更 / 分包） ──

// TaskRepository 合同任务数据访问接口
type TaskRepository interface {
	Create(ctx context.Context, task *model.Task) error
	ListByContract(ctx context.Context, contractID string) ([]model.Task, error)
	ListAll(ctx context.Context) ([]model.Task, error)
}

type taskRepo struct {
	db *gorm.DB
}

// NewTaskRepo 创建 TaskRepository 实例
func NewTaskRepo(db *gorm.DB) TaskRepository {
	return &taskRepo{db: db}
}

func (r *taskRepo) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *taskRepo) ListByContract(ctx context.Context, contractID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

// ListAll 全量任务（日历导出用）
func (r *taskRepo) ListAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

// InvoiceRepository 合同发票数据访问接口
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *model.Invoice) error
	ListByContract(ctx context.Context, contractID string) ([]model.Invoice, error)
}

type invoiceRepo struct {
	db *gorm.DB
}

// NewInvoiceRepo 创建 InvoiceRepository 实例
func NewInvoiceRepo(db *gorm.DB) InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, invoice *model.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepo) ListByContract(ctx context.Context, contractID string) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("invoice_date DESC").
		Find(&invoices).Error
	return invoices, err
}

// ModificationRepository 合同变更数据访问接口
type ModificationRepository interface {
	Create(ctx context.Context, modification *model.Modification) error
	ListByContract(ctx context.Context, contractID string) ([]model.Modification, error)
}

type modificationRepo struct {
	db *gorm.DB
}

// NewModificationRepo 创建 ModificationRepository 实例
func NewModificationRepo(db *gorm.DB) ModificationRepository {
	return &modificationRepo{db: db}
}

func (r *modificationRepo) Create(ctx context.Context, modification *model.Modification) error {
	return r.db.WithContext(ctx).Create(modification).Error
}

func (r *modificationRepo) ListByContract(ctx context.Context, contractID string) ([]model.Modification, error) {
	var modifications []model.Modification
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("effective_date DESC").
		Find(&modifications).Error
	return modifications, err
}

// SubcontractingRepository 分包数据访问接口（目标 / 分包商 / 分配）
type SubcontractingRepository interface {
	CreateGoal(ctx context.Context, goal *model.SubcontractingGoal) error
	ListGoalsByContract(ctx context.Context, contractID string) ([]model.SubcontractingGoal, error)
	CreateSubcontractor(ctx context.Context, sub *model.Subcontractor) error
	GetSubcontractorByID(ctx context.Context, id string) (*model.Subcontractor, error)
	ListSubcontractors(ctx context.Context) ([]model.Subcontractor, error)
	CreateAssignment(ctx context.Context, assignment *model.SubcontractorAssignment) error
	ListAssignmentsByContract(ctx context.Context, contractID string) ([]model.SubcontractorAssignment, error)
}

type subcontractingRepo struct {
	db *gorm.DB
}

// NewSubcontractingRepo 创建 SubcontractingRepository 实例
func NewSubcontractingRepo(db *gorm.DB) SubcontractingRepository {
	return &subcontractingRepo{db: db}
}

func (r *subcontractingRepo) CreateGoal(ctx context.Context, goal *model.SubcontractingGoal) error {
	return r.db.WithContext(ctx).Create(goal).Error
}

func (r *subcontractingRepo) ListGoalsByContract(ctx context.Context, contractID string) ([]model.SubcontractingGoal, error) {
	var goals []model.SubcontractingGoal
	err := r.db.WithContext(ctx).
		Where("contract_id = ?", contractID).
		Order("report_period DESC").
		Find(&goals).Error
	return goals, err
}

func (r *subcontractingRepo) CreateSubcontractor(ctx context.Context, sub *model.Subcontractor) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subcontractingRepo) GetSubcontractorByID(ctx context.Context, id string) (*model.Subcontractor, error) {
	var sub model.Subcontractor
	err := r.db.WithContext(ctx).
		Where("subcontractor_id = ?", id).
		First(&sub).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subcontractingRepo) ListSubcontractors(ctx context.Context) ([]model.Subcontractor, error) {
	var subs []model.Subcontractor
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&subs).Error
	return subs, err
}

func (r *subcontractingRepo) CreateAssignment(ctx context.Context, assignment *model.SubcontractorAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *subcontractingRepo) ListAssignmentsByContract(ctx context.Context, contractID string) ([]model.SubcontractorAssignment, error) {
	var assignments []model.SubcontractorAssignment
	err := r.db.WithContext(ctx).
		Preload("Subcontractor").
		Where("contract_id = ?", contractID).
		Order("start_date DESC").
		Find(&assignments).Error
	return assignments, err
}
