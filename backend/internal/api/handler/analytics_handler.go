package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

// AnalyticsHandler 分析模块 HTTP 处理器
type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

// NewAnalyticsHandler 创建 AnalyticsHandler
func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// ProgramChart 按图表类型返回项目群分析数据
// GET /api/v1/program-analytics?programId=xxx&chartType=burnRate
func (h *AnalyticsHandler) ProgramChart(c *gin.Context) {
	programID := c.Query("programId")
	if programID == "" {
		response.BadRequest(c, 10001, "programId 不能为空")
		return
	}

	chartType := c.Query("chartType")
	if chartType == "" {
		response.BadRequest(c, 10001, "chartType 不能为空")
		return
	}

	points, err := h.analyticsSvc.ProgramChart(c.Request.Context(), programID, chartType)
	if err != nil {
		h.handleAnalyticsError(c, err)
		return
	}

	response.OK(c, points)
}

// Dashboard 返回近一年按月聚合的预算与实际支出
// GET /api/v1/dashboard-data?program=xxx&category=xxx
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	programID := c.Query("program")
	category := c.Query("category")

	points, err := h.analyticsSvc.Dashboard(c.Request.Context(), programID, category)
	if err != nil {
		h.handleAnalyticsError(c, err)
		return
	}

	response.OK(c, points)
}

func (h *AnalyticsHandler) handleAnalyticsError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, 11001, "项目群不存在")
	case errors.Is(err, service.ErrUnknownChartType):
		response.BadRequest(c, 18001, "不支持的图表类型")
	default:
		response.InternalError(c)
	}
}
