package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// PersonnelHandler 人员分配模块 HTTP 处理器
type PersonnelHandler struct {
	personnelSvc service.PersonnelService
}

// NewPersonnelHandler 创建 PersonnelHandler
func NewPersonnelHandler(personnelSvc service.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{personnelSvc: personnelSvc}
}

// ListPersonnel 获取项目群下的人员分配列表
// GET /api/v1/personnel?programId=xxx
func (h *PersonnelHandler) ListPersonnel(c *gin.Context) {
	programID := c.Query("programId")
	if programID == "" {
		response.BadRequest(c, 10001, "programId 不能为空")
		return
	}

	personnel, err := h.personnelSvc.ListByProgram(c.Request.Context(), programID)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}

	response.OK(c, gin.H{"list": personnel})
}

// CreatePersonnel 创建人员分配（计划态或正式态）
// POST /api/v1/personnel
func (h *PersonnelHandler) CreatePersonnel(c *gin.Context) {
	var req dto.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	personnel, err := h.personnelSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handlePersonnelError(c, err)
		return
	}

	response.Created(c, personnel)
}

func (h *PersonnelHandler) handlePersonnelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonnelNotFound):
		response.NotFound(c, 14001, "人员分配不存在")
	case errors.Is(err, service.ErrAssignmentMixed):
		response.BadRequest(c, 14002, "合同与劳务类别必须同时为空或同时提供")
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, 11001, "项目群不存在")
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, 12001, "员工不存在")
	case errors.Is(err, service.ErrContractNotFound):
		response.NotFound(c, 13001, "合同不存在")
	case errors.Is(err, service.ErrLaborCategoryNotFound):
		response.NotFound(c, 13005, "劳务类别不存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 14003, "日期格式非法")
	default:
		response.InternalError(c)
	}
}
