package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/pkg/oplog"
)

// ── 测试辅助 ──

func setupTestAdminService(t *testing.T) (AdminService, *mockRepos, string) {
	t.Helper()
	repo, m := newMockRepos()
	logPath := filepath.Join(t.TempDir(), "database-seed.log")
	opLog := oplog.New(logPath)
	t.Cleanup(func() { opLog.Close() })
	svc := NewAdminService(repo, nil, opLog, zap.NewNop())
	return svc, m, logPath
}

// ── Seed 测试 ──

func TestAdminService_Seed_Counts(t *testing.T) {
	svc, _, _ := setupTestAdminService(t)

	result, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed 应成功: %v", err)
	}

	if result.Programs != 3 {
		t.Errorf("期望3个项目群，实际=%d", result.Programs)
	}
	if result.Employees != 5 {
		t.Errorf("期望5名员工，实际=%d", result.Employees)
	}
	if result.Agencies != 8 {
		t.Errorf("期望8个机构，实际=%d", result.Agencies)
	}
	if result.ContractTypes != 8 {
		t.Errorf("期望8种合同类型，实际=%d", result.ContractTypes)
	}
	if result.Contracts != 6 {
		t.Errorf("每个项目群2份合同，期望6份，实际=%d", result.Contracts)
	}
	if result.LaborCategories != 18 {
		t.Errorf("每份合同3个劳务类别，期望18个，实际=%d", result.LaborCategories)
	}
	if result.Personnel != 9 {
		t.Errorf("每个项目群3条人员分配，期望9条，实际=%d", result.Personnel)
	}
	if result.Projects != 6 {
		t.Errorf("每个项目群2个项目，期望6个，实际=%d", result.Projects)
	}
	if result.FinancialData != 15 {
		t.Errorf("每个项目群5条财务数据，期望15条，实际=%d", result.FinancialData)
	}
	if result.Expenses != 15 {
		t.Errorf("每个项目群5条费用，期望15条，实际=%d", result.Expenses)
	}
	if result.LaborCosts != 45 {
		t.Errorf("每条人员分配5条工时成本，期望45条，实际=%d", result.LaborCosts)
	}
	if result.FacilitiesCosts != 6 {
		t.Errorf("每个项目群2条设施成本，期望6条，实际=%d", result.FacilitiesCosts)
	}
	if result.Tasks != 18 {
		t.Errorf("每份合同3条任务，期望18条，实际=%d", result.Tasks)
	}
	if result.Invoices != 24 {
		t.Errorf("每份合同4张发票，期望24张，实际=%d", result.Invoices)
	}
	if result.Modifications != 12 {
		t.Errorf("每份合同2条变更，期望12条，实际=%d", result.Modifications)
	}
	if result.SubcontractingGoals != 12 {
		t.Errorf("每份合同2条分包目标，期望12条，实际=%d", result.SubcontractingGoals)
	}
	if result.Subcontractors != 5 {
		t.Errorf("期望5家分包商，实际=%d", result.Subcontractors)
	}
	if result.SubcontractorAssignments != 12 {
		t.Errorf("每份合同2条分包指派，期望12条，实际=%d", result.SubcontractorAssignments)
	}
	if result.CustomProjectStatuses != 3 {
		t.Errorf("期望3个自定义状态，实际=%d", result.CustomProjectStatuses)
	}
}

func TestAdminService_Seed_PersonnelAssignmentInvariant(t *testing.T) {
	svc, m, _ := setupTestAdminService(t)

	if _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed 应成功: %v", err)
	}

	// 种子分配必须成对挂合同与劳务类别，或两者皆空
	for _, p := range m.personnel.personnel {
		if (p.ContractID == nil) != (p.LaborCategoryID == nil) {
			t.Fatalf("种子人员分配出现单边状态: %+v", p)
		}
		if p.ContractID != nil {
			category, ok := m.laborCategory.categories[*p.LaborCategoryID]
			if !ok {
				t.Fatalf("分配引用了不存在的劳务类别: %s", *p.LaborCategoryID)
			}
			if category.ContractID != *p.ContractID {
				t.Errorf("分配的劳务类别应属于同一合同: %+v", p)
			}
		}
	}
}

func TestAdminService_Seed_BillableRateDerivedFromHourlyRate(t *testing.T) {
	svc, m, _ := setupTestAdminService(t)

	if _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed 应成功: %v", err)
	}

	for _, p := range m.personnel.personnel {
		employee, ok := m.employee.employees[p.EmployeeID]
		if !ok {
			t.Fatalf("分配引用了不存在的员工: %s", p.EmployeeID)
		}
		if p.BillableRate != employee.HourlyRate*2.5 {
			t.Errorf("计费费率应为时薪的2.5倍，员工时薪=%f 实际=%f", employee.HourlyRate, p.BillableRate)
		}
	}
}

func TestAdminService_Seed_WritesOperationLog(t *testing.T) {
	svc, _, logPath := setupTestAdminService(t)

	if _, err := svc.Seed(context.Background()); err != nil {
		t.Fatalf("Seed 应成功: %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("读取操作日志失败: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "Starting database seeding") {
		t.Error("操作日志应包含起始标记")
	}
	if !strings.Contains(text, "Programs created") {
		t.Error("操作日志应包含各步计数")
	}
}

// ── Purge 测试 ──

func TestAdminService_Purge(t *testing.T) {
	svc, m, logPath := setupTestAdminService(t)

	result, err := svc.Purge(context.Background())
	if err != nil {
		t.Fatalf("Purge 应成功: %v", err)
	}
	if result.TablesCleared != 22 {
		t.Errorf("期望清空22张表，实际=%d", result.TablesCleared)
	}
	if m.admin.purgeCalls != 1 {
		t.Errorf("PurgeAll 应恰好调用1次，实际=%d", m.admin.purgeCalls)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("读取操作日志失败: %v", err)
	}
	if !strings.Contains(string(content), "Database purge completed successfully") {
		t.Error("操作日志应记录清库完成")
	}
}
