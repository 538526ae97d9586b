package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// purgeOrder 清库删除顺序（满足外键约束）：
// 历史表 → 合同子实体 → 工时成本 → 人员分配 → 劳务类别 → 合同
// → 项目群子实体 → 员工 → 项目群 → 字典表。
// 人员分配引用合同与劳务类别，必须先于二者删除
var purgeOrder = []interface{}{
	&model.EmployeeHistoricalChange{},
	&model.ContractHistoricalChange{},
	&model.SubcontractorAssignment{},
	&model.SubcontractingGoal{},
	&model.Subcontractor{},
	&model.Modification{},
	&model.Invoice{},
	&model.Task{},
	&model.ContractAttachment{},
	&model.LaborCost{},
	&model.Personnel{},
	&model.LaborCategory{},
	&model.Contract{},
	&model.FacilitiesCost{},
	&model.Expense{},
	&model.Project{},
	&model.FinancialData{},
	&model.Employee{},
	&model.Program{},
	&model.CustomProjectStatus{},
	&model.Agency{},
	&model.ContractType{},
}

// AdminRepository 全库维护数据访问接口
type AdminRepository interface {
	// PurgeAll 按外键安全顺序清空全部业务表，返回清空的表数；
	// 必须在事务内调用（通过 Repository.Transaction）
	PurgeAll(ctx context.Context) (int, error)
}

type adminRepo struct {
	db *gorm.DB
}

// NewAdminRepo 创建 AdminRepository 实例
func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db: db}
}

func (r *adminRepo) PurgeAll(ctx context.Context) (int, error) {
	for _, m := range purgeOrder {
		// 员工为软删除实体，清库时一并物理删除
		err := r.db.WithContext(ctx).
			Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(m).Error
		if err != nil {
			return 0, err
		}
	}
	return len(purgeOrder), nil
}
