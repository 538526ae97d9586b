package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// LookupHandler 基础字典模块 HTTP 处理器（签约机构 / 合同类型）
type LookupHandler struct {
	lookupSvc service.LookupService
}

// NewLookupHandler 创建 LookupHandler
func NewLookupHandler(lookupSvc service.LookupService) *LookupHandler {
	return &LookupHandler{lookupSvc: lookupSvc}
}

// ListAgencies 获取签约机构列表
// GET /api/v1/agencies
func (h *LookupHandler) ListAgencies(c *gin.Context) {
	agencies, err := h.lookupSvc.ListAgencies(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": agencies})
}

// CreateAgency 创建签约机构
// POST /api/v1/agencies
func (h *LookupHandler) CreateAgency(c *gin.Context) {
	var req dto.CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	agency, err := h.lookupSvc.CreateAgency(c.Request.Context(), &req)
	if err != nil {
		h.handleLookupError(c, err)
		return
	}

	response.Created(c, agency)
}

// ListContractTypes 获取合同类型列表
// GET /api/v1/contract-types
func (h *LookupHandler) ListContractTypes(c *gin.Context) {
	types, err := h.lookupSvc.ListContractTypes(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": types})
}

// CreateContractType 创建合同类型
// POST /api/v1/contract-types
func (h *LookupHandler) CreateContractType(c *gin.Context) {
	var req dto.CreateContractTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	contractType, err := h.lookupSvc.CreateContractType(c.Request.Context(), &req)
	if err != nil {
		h.handleLookupError(c, err)
		return
	}

	response.Created(c, contractType)
}

func (h *LookupHandler) handleLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 17001, "日期格式非法")
	default:
		response.InternalError(c)
	}
}
