package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/repository"
)

// ── 导出模块业务错误 ──

// ErrExportGenerateFail 生成导出文件失败
var ErrExportGenerateFail = errors.New("生成导出文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 财务导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
//   - 日历导出聚合所有合同截止日与任务到期日，输出标准 ICS 订阅源
type ExportService interface {
	// ExportProgramFinancials 导出项目群财务汇总为 Excel
	ExportProgramFinancials(ctx context.Context, programID string) (*bytes.Buffer, string, error)
	// ExportCalendar 导出合同/任务节点日历（ICS）
	ExportCalendar(ctx context.Context) (string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportProgramFinancials — 导出项目群财务汇总为 Excel
// ═══════════════════════════════════════════════════════════
//
// 输出格式：
//   - Sheet "Summary"：项目群名称、预算、起止日期
//   - Sheet "Financial Data"：类型 / 金额 / 日期 / 说明
//   - Sheet "Expenses"：类别 / 金额 / 日期 / 说明

func (s *exportService) ExportProgramFinancials(ctx context.Context, programID string) (*bytes.Buffer, string, error) {
	program, err := s.repo.Program.GetByID(ctx, programID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrProgramNotFound
		}
		s.logger.Error("查询项目群失败", zap.String("id", programID), zap.Error(err))
		return nil, "", err
	}

	financialData, err := s.repo.FinancialData.ListByProgram(ctx, programID)
	if err != nil {
		s.logger.Error("查询财务数据失败", zap.Error(err))
		return nil, "", err
	}
	// 该项目群全部费用，不限时间窗
	expenses, err := s.repo.Expense.ListSince(ctx, time.Time{}, programID, "")
	if err != nil {
		s.logger.Error("查询费用失败", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// Summary
	summarySheet := "Summary"
	idx, err := f.NewSheet(summarySheet)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(summarySheet, "A", "A", 18)
	f.SetColWidth(summarySheet, "B", "B", 50)
	f.SetCellValue(summarySheet, "A1", "Program")
	f.SetCellValue(summarySheet, "B1", program.Name)
	f.SetCellValue(summarySheet, "A2", "Budget")
	f.SetCellValue(summarySheet, "B2", program.Budget)
	f.SetCellValue(summarySheet, "A3", "Start Date")
	f.SetCellValue(summarySheet, "B3", program.StartDate.Format(dateLayout))
	if program.EndDate != nil {
		f.SetCellValue(summarySheet, "A4", "End Date")
		f.SetCellValue(summarySheet, "B4", program.EndDate.Format(dateLayout))
	}
	f.SetCellStyle(summarySheet, "A1", "A4", headerStyle)

	// Financial Data
	finSheet := "Financial Data"
	if _, err := f.NewSheet(finSheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetColWidth(finSheet, "A", "D", 22)
	for col, title := range map[string]string{"A1": "Type", "B1": "Amount", "C1": "Date", "D1": "Description"} {
		f.SetCellValue(finSheet, col, title)
	}
	f.SetCellStyle(finSheet, "A1", "D1", headerStyle)
	for i, d := range financialData {
		row := i + 2
		f.SetCellValue(finSheet, fmt.Sprintf("A%d", row), d.Type)
		f.SetCellValue(finSheet, fmt.Sprintf("B%d", row), d.Amount)
		f.SetCellValue(finSheet, fmt.Sprintf("C%d", row), d.Date.Format(dateLayout))
		f.SetCellValue(finSheet, fmt.Sprintf("D%d", row), d.Description)
	}

	// Expenses
	expSheet := "Expenses"
	if _, err := f.NewSheet(expSheet); err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetColWidth(expSheet, "A", "D", 22)
	for col, title := range map[string]string{"A1": "Category", "B1": "Amount", "C1": "Date", "D1": "Description"} {
		f.SetCellValue(expSheet, col, title)
	}
	f.SetCellStyle(expSheet, "A1", "D1", headerStyle)
	for i, e := range expenses {
		row := i + 2
		f.SetCellValue(expSheet, fmt.Sprintf("A%d", row), e.Category)
		f.SetCellValue(expSheet, fmt.Sprintf("B%d", row), e.Amount)
		f.SetCellValue(expSheet, fmt.Sprintf("C%d", row), e.Date.Format(dateLayout))
		f.SetCellValue(expSheet, fmt.Sprintf("D%d", row), e.Description)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 文件失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("%s-financials.xlsx", program.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCalendar — 导出合同/任务节点日历（ICS）
// ═══════════════════════════════════════════════════════════
//
// 事件来源：
//   - 每份合同的截止日期（全天事件）
//   - 每条任务的到期日期（全天事件）

func (s *exportService) ExportCalendar(ctx context.Context) (string, error) {
	contracts, err := s.repo.Contract.List(ctx, "")
	if err != nil {
		s.logger.Error("查询合同失败", zap.Error(err))
		return "", err
	}
	tasks, err := s.repo.Task.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询任务失败", zap.Error(err))
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//business-analyst//contract-calendar//EN")

	now := time.Now()
	for _, c := range contracts {
		event := cal.AddEvent("contract-" + c.ContractID)
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(c.EndDate)
		event.SetAllDayEndAt(c.EndDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("Contract end: %s (%s)", c.Title, c.ContractNumber))
	}
	for _, t := range tasks {
		event := cal.AddEvent("task-" + t.TaskID)
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(t.DueDate)
		event.SetAllDayEndAt(t.DueDate.AddDate(0, 0, 1))
		event.SetSummary("Task due: " + t.Description)
	}

	return cal.Serialize(), nil
}
