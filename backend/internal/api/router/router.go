package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/config"
	"github.com/morbidsteve/business-analyst/backend/internal/api/handler"
	"github.com/morbidsteve/business-analyst/backend/internal/api/middleware"
	"github.com/morbidsteve/business-analyst/backend/pkg/redis"
)

// 请求体上限 1MB，附件仅存 URL，不走本服务上传
const maxBodyBytes = 1 << 20

// 单 IP 单路由限流窗口
const (
	rateLimitMax    = 120
	rateLimitWindow = time.Minute
)

// 资源页缓存时长；写操作经 Invalidate 系列调用即时失效
const pageCacheTTL = 5 * time.Minute

// Setup 初始化并返回 Gin 路由引擎
// rdb 允许为 nil：限流与页缓存均降级为直通
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(maxBodyBytes))
	r.Use(middleware.RateLimit(rdb, rateLimitMax, rateLimitWindow))
	r.Use(middleware.PageCache(rdb, pageCacheTTL))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 项目群模块
		programs := v1.Group("/programs")
		{
			programs.GET("", h.Program.ListPrograms)
			programs.GET("/:id", h.Program.GetProgram)
			programs.POST("", h.Program.CreateProgram)
		}

		// 员工模块
		employees := v1.Group("/employees")
		{
			employees.GET("", h.Employee.ListEmployees)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.POST("", h.Employee.CreateEmployee)
			employees.PUT("/:id", h.Employee.UpdateEmployee)
			employees.DELETE("/:id", h.Employee.DeleteEmployee)
			employees.GET("/:id/history", h.Employee.ListEmployeeHistory)
		}

		// 基础字典模块
		v1.GET("/agencies", h.Lookup.ListAgencies)
		v1.POST("/agencies", h.Lookup.CreateAgency)
		v1.GET("/contract-types", h.Lookup.ListContractTypes)
		v1.POST("/contract-types", h.Lookup.CreateContractType)

		// 合同模块（含子资源）
		contracts := v1.Group("/contracts")
		{
			contracts.GET("", h.Contract.ListContracts)
			contracts.GET("/:id", h.Contract.GetContract)
			contracts.POST("", h.Contract.CreateContract)
			contracts.PATCH("/:id", h.Contract.UpdateContract)
			contracts.GET("/:id/history", h.Contract.ListContractHistory)

			contracts.GET("/:id/attachments", h.Contract.ListAttachments)
			contracts.POST("/:id/attachments", h.Contract.CreateAttachment)

			contracts.GET("/:id/tasks", h.Contract.ListTasks)
			contracts.POST("/:id/tasks", h.Contract.CreateTask)
			contracts.GET("/:id/invoices", h.Contract.ListInvoices)
			contracts.POST("/:id/invoices", h.Contract.CreateInvoice)
			contracts.GET("/:id/modifications", h.Contract.ListModifications)
			contracts.POST("/:id/modifications", h.Contract.CreateModification)
			contracts.GET("/:id/subcontracting-goals", h.Contract.ListSubcontractingGoals)
			contracts.POST("/:id/subcontracting-goals", h.Contract.CreateSubcontractingGoal)
			contracts.GET("/:id/subcontractor-assignments", h.Contract.ListSubcontractorAssignments)
			contracts.POST("/:id/subcontractor-assignments", h.Contract.CreateSubcontractorAssignment)
		}

		// 附件删除按附件自身 ID 寻址
		v1.DELETE("/attachments/:id", h.Contract.DeleteAttachment)

		// 分包商为全局资源，不从属单一合同
		v1.GET("/subcontractors", h.Contract.ListSubcontractors)
		v1.POST("/subcontractors", h.Contract.CreateSubcontractor)

		// 劳务类别
		v1.GET("/labor-categories", h.Contract.ListLaborCategories)
		v1.POST("/labor-categories", h.Contract.CreateLaborCategory)

		// 人员分配模块
		v1.GET("/personnel", h.Personnel.ListPersonnel)
		v1.POST("/personnel", h.Personnel.CreatePersonnel)

		// 财务模块
		v1.GET("/financial-data", h.Finance.ListFinancialData)
		v1.POST("/financial-data", h.Finance.CreateFinancialData)
		v1.POST("/expenses", h.Finance.CreateExpense)
		v1.GET("/cost-categories", h.Finance.ListCostCategories)
		v1.GET("/labor-costs", h.Finance.ListLaborCosts)
		v1.POST("/labor-costs", h.Finance.CreateLaborCost)
		v1.POST("/work-hours", h.Finance.CreateWorkHours)
		v1.POST("/facilities-costs", h.Finance.CreateFacilitiesCost)

		// 项目与项目状态模块
		v1.GET("/projects", h.Project.ListProjects)
		v1.POST("/projects", h.Project.CreateProject)
		v1.GET("/project-statuses", h.Project.ListProjectStatuses)
		v1.POST("/project-statuses", h.Project.CreateProjectStatus)

		// 分析模块
		v1.GET("/program-analytics", h.Analytics.ProgramChart)
		v1.GET("/dashboard-data", h.Analytics.Dashboard)

		// 数据管理模块
		admin := v1.Group("/admin")
		{
			admin.POST("/seed", h.Admin.Seed)
			admin.POST("/purge", h.Admin.Purge)
		}

		// 导出模块
		export := v1.Group("/export")
		{
			export.GET("/programs/:id/financials", h.Export.ExportProgramFinancials)
			export.GET("/calendar", h.Export.ExportCalendar)
		}
	}

	return r
}
