package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// ContractHandler 合同模块 HTTP 处理器
// 覆盖合同本体、附件与劳务类别，子资源见 contract_children_handler.go
type ContractHandler struct {
	contractSvc service.ContractService
}

// NewContractHandler 创建 ContractHandler
func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

// ListContracts 获取合同列表，支持按项目群过滤
// GET /api/v1/contracts?programId=xxx
func (h *ContractHandler) ListContracts(c *gin.Context) {
	programID := c.Query("programId")

	contracts, err := h.contractSvc.List(c.Request.Context(), programID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": contracts})
}

// GetContract 获取合同详情（含项目群、机构与类型）
// GET /api/v1/contracts/:id
func (h *ContractHandler) GetContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	contract, err := h.contractSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, contract)
}

// CreateContract 创建合同
// POST /api/v1/contracts
func (h *ContractHandler) CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	contract, err := h.contractSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, contract)
}

// UpdateContract 更新合同（差异字段写入历史）
// PATCH /api/v1/contracts/:id
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	contract, err := h.contractSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, contract)
}

// ListContractHistory 获取合同字段变更历史
// GET /api/v1/contracts/:id/history
func (h *ContractHandler) ListContractHistory(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	history, err := h.contractSvc.ListHistory(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": history})
}

// ListAttachments 获取合同附件列表
// GET /api/v1/contracts/:id/attachments
func (h *ContractHandler) ListAttachments(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	attachments, err := h.contractSvc.ListAttachments(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": attachments})
}

// CreateAttachment 为合同添加附件
// POST /api/v1/contracts/:id/attachments
func (h *ContractHandler) CreateAttachment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	var req dto.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	attachment, err := h.contractSvc.CreateAttachment(c.Request.Context(), id, &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, attachment)
}

// DeleteAttachment 删除附件，返回被删附件及所属合同
// DELETE /api/v1/attachments/:id
func (h *ContractHandler) DeleteAttachment(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "附件ID不能为空")
		return
	}

	result, err := h.contractSvc.DeleteAttachment(c.Request.Context(), id)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, result)
}

// ListLaborCategories 获取合同下的劳务类别列表
// GET /api/v1/labor-categories?contractId=xxx
func (h *ContractHandler) ListLaborCategories(c *gin.Context) {
	contractID := c.Query("contractId")
	if contractID == "" {
		response.BadRequest(c, 10001, "合同ID不能为空")
		return
	}

	categories, err := h.contractSvc.ListLaborCategories(c.Request.Context(), contractID)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.OK(c, gin.H{"list": categories})
}

// CreateLaborCategory 创建劳务类别
// POST /api/v1/labor-categories
func (h *ContractHandler) CreateLaborCategory(c *gin.Context) {
	var req dto.CreateLaborCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	category, err := h.contractSvc.CreateLaborCategory(c.Request.Context(), &req)
	if err != nil {
		h.handleContractError(c, err)
		return
	}

	response.Created(c, category)
}

func (h *ContractHandler) handleContractError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContractNotFound):
		response.NotFound(c, 13001, "合同不存在")
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, 11001, "项目群不存在")
	case errors.Is(err, service.ErrAgencyNotFound):
		response.NotFound(c, 13002, "签约机构不存在")
	case errors.Is(err, service.ErrContractTypeNotFound):
		response.NotFound(c, 13003, "合同类型不存在")
	case errors.Is(err, service.ErrAttachmentNotFound):
		response.NotFound(c, 13004, "附件不存在")
	case errors.Is(err, service.ErrLaborCategoryNotFound):
		response.NotFound(c, 13005, "劳务类别不存在")
	case errors.Is(err, service.ErrSubcontractorNotFound):
		response.NotFound(c, 13006, "分包商不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 13007, "日期格式非法")
	default:
		response.InternalError(c)
	}
}
