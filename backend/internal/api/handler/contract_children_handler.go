package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// 合同子资源：任务、发票、变更单、分包目标、分包商及其指派。
// 与合同本体共用 ContractHandler 与 handleContractError。

// ListTasks 获取合同任务列表
// GET /api/v1/contracts/:id/tasks
func (h *ContractHandler) ListTasks(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	tasks, err := h.contractSvc.ListTasks(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": tasks})
}

// CreateTask 为合同创建任务
// POST /api/v1/contracts/:id/tasks
func (h *ContractHandler) CreateTask(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	task, err := h.contractSvc.CreateTask(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, task)
}

// ListInvoices 获取合同发票列表
// GET /api/v1/contracts/:id/invoices
func (h *ContractHandler) ListInvoices(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	invoices, err := h.contractSvc.ListInvoices(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": invoices})
}

// CreateInvoice 为合同创建发票
// POST /api/v1/contracts/:id/invoices
func (h *ContractHandler) CreateInvoice(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	invoice, err := h.contractSvc.CreateInvoice(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, invoice)
}

// ListModifications 获取合同变更单列表
// GET /api/v1/contracts/:id/modifications
func (h *ContractHandler) ListModifications(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	mods, err := h.contractSvc.ListModifications(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": mods})
}

// CreateModification 为合同创建变更单
// POST /api/v1/contracts/:id/modifications
func (h *ContractHandler) CreateModification(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.CreateModificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	mod, err := h.contractSvc.CreateModification(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, mod)
}

// ListSubcontractingGoals 获取合同分包目标列表
// GET /api/v1/contracts/:id/subcontracting-goals
func (h *ContractHandler) ListSubcontractingGoals(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	goals, err := h.contractSvc.ListSubcontractingGoals(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": goals})
}

// CreateSubcontractingGoal 为合同创建分包目标
// POST /api/v1/contracts/:id/subcontracting-goals
func (h *ContractHandler) CreateSubcontractingGoal(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.CreateSubcontractingGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	goal, err := h.contractSvc.CreateSubcontractingGoal(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, goal)
}

// ListSubcontractors 获取分包商列表
// GET /api/v1/subcontractors
func (h *ContractHandler) ListSubcontractors(c *gin.Context) {
	subs, err := h.contractSvc.ListSubcontractors(c.Request.Context())
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": subs})
}

// CreateSubcontractor 创建分包商
// POST /api/v1/subcontractors
func (h *ContractHandler) CreateSubcontractor(c *gin.Context) {
	var req dto.CreateSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	sub, err := h.contractSvc.CreateSubcontractor(c.Request.Context(), &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, sub)
}

// ListSubcontractorAssignments 获取合同下的分包商指派列表
// GET /api/v1/contracts/:id/subcontractor-assignments
func (h *ContractHandler) ListSubcontractorAssignments(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	assignments, err := h.contractSvc.ListSubcontractorAssignments(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": assignments})
}

// CreateSubcontractorAssignment 为合同指派分包商
// POST /api/v1/contracts/:id/subcontractor-assignments
func (h *ContractHandler) CreateSubcontractorAssignment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.CreateSubcontractorAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	assignment, err := h.contractSvc.CreateSubcontractorAssignment(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, assignment)
}
