package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// AdminHandler 数据管理模块 HTTP 处理器（种子数据 / 清库）
type AdminHandler struct {
	adminSvc service.AdminService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

// Seed 写入演示数据集，返回各表写入数量
// POST /api/v1/admin/seed
func (h *AdminHandler) Seed(c *gin.Context) {
	result, err := h.adminSvc.Seed(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 19001, "种子数据写入失败")
		return
	}

	response.OK(c, result)
}

// Purge 清空全部业务数据
// POST /api/v1/admin/purge
func (h *AdminHandler) Purge(c *gin.Context) {
	result, err := h.adminSvc.Purge(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, 19002, "数据清理失败")
		return
	}

	response.OK(c, result)
}
