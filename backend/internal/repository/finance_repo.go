package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ── 财务数据访问（财务数据 / 费用 / 工时成本 / 设施成本） ──

// FinancialDataRepository 财务数据访问接口
type FinancialDataRepository interface {
	Create(ctx context.Context, data *model.FinancialData) error
	ListByProgram(ctx context.Context, programID string) ([]model.FinancialData, error)
	ListByProgramAndTypes(ctx context.Context, programID string, types []string) ([]model.FinancialData, error)
	ListByTypeSince(ctx context.Context, finType string, since time.Time, programID string) ([]model.FinancialData, error)
}

type financialDataRepo struct {
	db *gorm.DB
}

// NewFinancialDataRepo 创建 FinancialDataRepository 实例
func NewFinancialDataRepo(db *gorm.DB) FinancialDataRepository {
	return &financialDataRepo{db: db}
}

func (r *financialDataRepo) Create(ctx context.Context, data *model.FinancialData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

// ListByProgram 按项目群列出财务数据，日期倒序
func (r *financialDataRepo) ListByProgram(ctx context.Context, programID string) ([]model.FinancialData, error) {
	var data []model.FinancialData
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("date DESC").
		Find(&data).Error
	return data, err
}

// ListByProgramAndTypes 按项目群与类型集合列出财务数据，日期升序（分析用）
func (r *financialDataRepo) ListByProgramAndTypes(ctx context.Context, programID string, types []string) ([]model.FinancialData, error) {
	var data []model.FinancialData
	err := r.db.WithContext(ctx).
		Where("program_id = ? AND type IN ?", programID, types).
		Order("date ASC").
		Find(&data).Error
	return data, err
}

// ListByTypeSince 按类型列出起始日期之后的财务数据；programID 为空时不过滤（仪表盘用）
func (r *financialDataRepo) ListByTypeSince(ctx context.Context, finType string, since time.Time, programID string) ([]model.FinancialData, error) {
	var data []model.FinancialData
	query := r.db.WithContext(ctx).
		Where("type = ? AND date >= ?", finType, since).
		Order("date ASC")
	if programID != "" {
		query = query.Where("program_id = ?", programID)
	}
	err := query.Find(&data).Error
	return data, err
}

// ExpenseRepository 费用数据访问接口
type ExpenseRepository interface {
	Create(ctx context.Context, expense *model.Expense) error
	ListSince(ctx context.Context, since time.Time, programID, category string) ([]model.Expense, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

type expenseRepo struct {
	db *gorm.DB
}

// NewExpenseRepo 创建 ExpenseRepository 实例
func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, expense *model.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

// ListSince 列出起始日期之后的费用；programID / category 为空时不过滤
func (r *expenseRepo) ListSince(ctx context.Context, since time.Time, programID, category string) ([]model.Expense, error) {
	var expenses []model.Expense
	query := r.db.WithContext(ctx).
		Where("date >= ?", since).
		Order("date ASC")
	if programID != "" {
		query = query.Where("program_id = ?", programID)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&expenses).Error
	return expenses, err
}

// DistinctCategories 库内实际出现过的费用类别（去重）
func (r *expenseRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&model.Expense{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	return categories, err
}

// LaborCostRepository 工时成本数据访问接口
type LaborCostRepository interface {
	Create(ctx context.Context, cost *model.LaborCost) error
	List(ctx context.Context, programID string) ([]model.LaborCost, error)
}

type laborCostRepo struct {
	db *gorm.DB
}

// NewLaborCostRepo 创建 LaborCostRepository 实例
func NewLaborCostRepo(db *gorm.DB) LaborCostRepository {
	return &laborCostRepo{db: db}
}

func (r *laborCostRepo) Create(ctx context.Context, cost *model.LaborCost) error {
	return r.db.WithContext(ctx).Create(cost).Error
}

// List 列出工时成本（含员工与项目群）；programID 为空时不过滤
func (r *laborCostRepo) List(ctx context.Context, programID string) ([]model.LaborCost, error) {
	var costs []model.LaborCost
	query := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Program").
		Order("date DESC")
	if programID != "" {
		query = query.Where("program_id = ?", programID)
	}
	err := query.Find(&costs).Error
	return costs, err
}

// FacilitiesCostRepository 设施成本数据访问接口
type FacilitiesCostRepository interface {
	Create(ctx context.Context, cost *model.FacilitiesCost) error
	ListByProgram(ctx context.Context, programID string) ([]model.FacilitiesCost, error)
}

type facilitiesCostRepo struct {
	db *gorm.DB
}

// NewFacilitiesCostRepo 创建 FacilitiesCostRepository 实例
func NewFacilitiesCostRepo(db *gorm.DB) FacilitiesCostRepository {
	return &facilitiesCostRepo{db: db}
}

func (r *facilitiesCostRepo) Create(ctx context.Context, cost *model.FacilitiesCost) error {
	return r.db.WithContext(ctx).Create(cost).Error
}

func (r *facilitiesCostRepo) ListByProgram(ctx context.Context, programID string) ([]model.FacilitiesCost, error) {
	var costs []model.FacilitiesCost
	err := r.db.WithContext(ctx).
		Where("program_id = ?", programID).
		Order("date DESC").
		Find(&costs).Error
	return costs, err
}
