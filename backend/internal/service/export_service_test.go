package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockRepos) {
	repo, m := newMockRepos()
	svc := NewExportService(repo, zap.NewNop())
	return svc, m
}

// ── 财务导出测试 ──

func TestExportService_ExportProgramFinancials(t *testing.T) {
	svc, m := setupTestExportService()
	m.program.programs["prog-001"] = &model.Program{
		ProgramID: "prog-001",
		Name:      "Satellite Alpha",
		Budget:    1000000,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	m.financialData.records = []model.FinancialData{
		{FinancialDataID: "fin-1", ProgramID: "prog-001", Type: model.FinancialTypeExpense, Amount: 500, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Description: "Licenses"},
	}
	m.expense.expenses = []model.Expense{
		{ExpenseID: "exp-1", ProgramID: "prog-001", Category: model.ExpenseCategoryTravel, Amount: 200, Date: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), Description: "Site visit"},
	}

	buf, filename, err := svc.ExportProgramFinancials(context.Background(), "prog-001")
	if err != nil {
		t.Fatalf("ExportProgramFinancials 应成功: %v", err)
	}
	if filename != "Satellite Alpha-financials.xlsx" {
		t.Errorf("文件名不符，实际=%s", filename)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("导出内容应为合法 xlsx: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Summary": false, "Financial Data": false, "Expenses": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("缺少工作表 %s，实际=%v", name, sheets)
		}
	}

	name, err := f.GetCellValue("Summary", "B1")
	if err != nil || name != "Satellite Alpha" {
		t.Errorf("Summary B1 应为项目群名称，实际=%q err=%v", name, err)
	}
	category, err := f.GetCellValue("Expenses", "A2")
	if err != nil || category != "TRAVEL" {
		t.Errorf("Expenses A2 应为费用类别，实际=%q err=%v", category, err)
	}
}

func TestExportService_ExportProgramFinancials_ProgramNotFound(t *testing.T) {
	svc, _ := setupTestExportService()

	_, _, err := svc.ExportProgramFinancials(context.Background(), "prog-missing")
	if !errors.Is(err, ErrProgramNotFound) {
		t.Errorf("期望 ErrProgramNotFound，实际: %v", err)
	}
}

// ── 日历导出测试 ──

func TestExportService_ExportCalendar(t *testing.T) {
	svc, m := setupTestExportService()
	m.contract.contracts["con-1"] = &model.Contract{
		ContractID:     "con-1",
		ProgramID:      "prog-001",
		Title:          "Ground Station Support",
		ContractNumber: "CTR-0001",
		EndDate:        time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	m.task.tasks = []model.Task{
		{TaskID: "task-1", ContractID: "con-1", Description: "Deliver monthly report", DueDate: time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)},
	}

	out, err := svc.ExportCalendar(context.Background())
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("输出应为完整 VCALENDAR")
	}
	if !strings.Contains(out, "contract-con-1") {
		t.Error("日历应包含合同截止事件")
	}
	if !strings.Contains(out, "task-task-1") {
		t.Error("日历应包含任务到期事件")
	}
	if !strings.Contains(out, "Ground Station Support") {
		t.Error("合同事件摘要应包含合同标题")
	}
}

func TestExportService_ExportCalendar_EmptyStillValid(t *testing.T) {
	svc, _ := setupTestExportService()

	out, err := svc.ExportCalendar(context.Background())
	if err != nil {
		t.Fatalf("ExportCalendar 应成功: %v", err)
	}
	if !strings.Contains(out, "BEGIN:VCALENDAR") {
		t.Error("空数据也应输出合法日历")
	}
}
