package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// FinanceHandler 财务模块 HTTP 处理器
// 覆盖财务记录、支出、成本分类、人力成本、工时与设施成本
type FinanceHandler struct {
	financeSvc service.FinanceService
}

// NewFinanceHandler 创建 FinanceHandler
func NewFinanceHandler(financeSvc service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeSvc: financeSvc}
}

// ListFinancialData 获取项目群财务记录列表
// GET /api/v1/financial-data?programId=xxx
func (h *FinanceHandler) ListFinancialData(c *gin.Context) {
	programID := c.Query("programId")
	if programID == "" {
		response.BadRequest(c, 10001, "programId 不能为空")
		return
	}

	records, err := h.financeSvc.ListFinancialData(c.Request.Context(), programID)
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": records})
}

// CreateFinancialData 创建财务记录
// POST /api/v1/financial-data
func (h *FinanceHandler) CreateFinancialData(c *gin.Context) {
	var req dto.CreateFinancialDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	record, err := h.financeSvc.CreateFinancialData(c.Request.Context(), &req)
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.Created(c, record)
}

// CreateExpense 创建支出记录
// POST /api/v1/expenses
func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	expense, err := h.financeSvc.CreateExpense(c.Request.Context(), &req)
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.Created(c, expense)
}

// ListCostCategories 获取支出分类选项（含展示名）
// GET /api/v1/cost-categories
func (h *FinanceHandler) ListCostCategories(c *gin.Context) {
	categories, err := h.financeSvc.ListCostCategories(c.Request.Context())
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": categories})
}

// ListLaborCosts 获取人力成本列表，支持按项目群过滤
// GET /api/v1/labor-costs?programId=xxx
func (h *FinanceHandler) ListLaborCosts(c *gin.Context) {
	programID := c.Query("programId")

	costs, err := h.financeSvc.ListLaborCosts(c.Request.Context(), programID)
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": costs})
}

// CreateLaborCost 创建人力成本记录
// POST /api/v1/labor-costs
func (h *FinanceHandler) CreateLaborCost(c *gin.Context) {
	var req dto.CreateLaborCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cost, err := h.financeSvc.CreateLaborCost(c.Request.Context(), &req)
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.Created(c, cost)
}

// CreateWorkHours 按项目群+员工登记工时，换算为人力成本
// POST /api/v1/work-hours
func (h *FinanceHandler) CreateWorkHours(c *gin.Context) {
	var req dto.CreateWorkHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cost, err := h.financeSvc.CreateWorkHours(c.Request.Context(), &req)
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.Created(c, cost)
}

// CreateFacilitiesCost 创建设施成本记录
// POST /api/v1/facilities-costs
func (h *FinanceHandler) CreateFacilitiesCost(c *gin.Context) {
	var req dto.CreateFacilitiesCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	cost, err := h.financeSvc.CreateFacilitiesCost(c.Request.Context(), &req)
	if err != nil {
		h.handleFinanceError(c, err)
		return
	}

	response.Created(c, cost)
}

func (h *FinanceHandler) handleFinanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, 11001, "项目群不存在")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrPersonnelNotFound):
		response.NotFound(c, 14001, "人员分配不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 15001, "日期格式非法")
	default:
		response.InternalError(c)
	}
}
