package dto

// ── 项目模块 DTO ──

// CreateProjectRequest 创建项目请求
// status 必须是内置状态或已存在的自定义状态名
type CreateProjectRequest struct {
	ProgramID   string  `json:"program_id"  binding:"required,uuid"`
	Name        string  `json:"name"        binding:"required,min=2,max=200"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"  binding:"required"` // "2026-01-01"
	EndDate     string  `json:"end_date"    binding:"required"`
	Budget      float64 `json:"budget"      binding:"gte=0"`
	Status      string  `json:"status"      binding:"required,max=50"`
}

// CreateProjectStatusRequest 创建自定义项目状态请求
type CreateProjectStatusRequest struct {
	Name  string `json:"name"  binding:"required,min=2,max=50"`
	Color string `json:"color" binding:"required,hexcolor"`
}

// ProjectStatusItem 项目状态列表项（内置与自定义合并返回）
type ProjectStatusItem struct {
	StatusID  string `json:"status_id,omitempty"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"is_default"`
}
