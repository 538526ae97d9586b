package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// ProjectHandler 项目与项目状态模块 HTTP 处理器
type ProjectHandler struct {
	projectSvc service.ProjectService
}

// NewProjectHandler 创建 ProjectHandler
func NewProjectHandler(projectSvc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectSvc: projectSvc}
}

// ListProjects 获取项目列表，支持按项目群过滤
// GET /api/v1/projects?programId=xxx
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	programID := c.Query("programId")

	projects, err := h.projectSvc.List(c.Request.Context(), programID)
	if err != nil {
		h.handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": projects})
}

// CreateProject 创建项目
// POST /api/v1/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	project, err := h.projectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleProjectError(c, err)
		return
	}

	response.Created(c, project)
}

// ListProjectStatuses 获取项目状态列表（内置 + 自定义）
// GET /api/v1/project-statuses
func (h *ProjectHandler) ListProjectStatuses(c *gin.Context) {
	statuses, err := h.projectSvc.ListStatuses(c.Request.Context())
	if err != nil {
		h.handleProjectError(c, err)
		return
	}

	response.OK(c, gin.H{"list": statuses})
}

// CreateProjectStatus 创建自定义项目状态
// POST /api/v1/project-statuses
func (h *ProjectHandler) CreateProjectStatus(c *gin.Context) {
	var req dto.CreateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	status, err := h.projectSvc.CreateStatus(c.Request.Context(), &req)
	if err != nil {
		h.handleProjectError(c, err)
		return
	}

	response.Created(c, status)
}

func (h *ProjectHandler) handleProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, 11001, "项目群不存在")
	case errors.Is(err, service.ErrProjectStatusUnknown):
		response.BadRequest(c, 16001, "项目状态不存在")
	case errors.Is(err, service.ErrStatusNameTaken):
		response.Conflict(c, 16002, "状态名称已存在")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 16003, "日期格式非法")
	default:
		response.InternalError(c)
	}
}
