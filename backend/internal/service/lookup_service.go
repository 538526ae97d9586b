package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
)

// LookupService 基础字典业务接口（签约机构 / 合同类型）
type LookupService interface {
	ListAgencies(ctx context.Context) ([]model.Agency, error)
	CreateAgency(ctx context.Context, req *dto.CreateAgencyRequest) (*model.Agency, error)
	ListContractTypes(ctx context.Context) ([]model.ContractType, error)
	CreateContractType(ctx context.Context, req *dto.CreateContractTypeRequest) (*model.ContractType, error)
}

type lookupService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewLookupService 创建 LookupService 实例
func NewLookupService(repo *repository.Repository, logger *zap.Logger) LookupService {
	return &lookupService{repo: repo, logger: logger}
}

// ────────────────────── 签约机构 ──────────────────────

func (s *lookupService) ListAgencies(ctx context.Context) ([]model.Agency, error) {
	agencies, err := s.repo.Agency.List(ctx)
	if err != nil {
		s.logger.Error("列出签约机构失败", zap.Error(err))
		return nil, err
	}
	return agencies, nil
}

// CreateAgency 创建签约机构；未填写的字段补默认值
func (s *lookupService) CreateAgency(ctx context.Context, req *dto.CreateAgencyRequest) (*model.Agency, error) {
	agency := &model.Agency{
		Name:          req.Name,
		Department:    defaultIfEmpty(req.Department, "Unknown"),
		Address:       defaultIfEmpty(req.Address, "Unknown"),
		PaymentOffice: defaultIfEmpty(req.PaymentOffice, "Unknown"),
	}

	if err := s.repo.Agency.Create(ctx, agency); err != nil {
		s.logger.Error("创建签约机构失败", zap.Error(err))
		return nil, err
	}
	return agency, nil
}

// ────────────────────── 合同类型 ──────────────────────

func (s *lookupService) ListContractTypes(ctx context.Context) ([]model.ContractType, error) {
	types, err := s.repo.ContractType.List(ctx)
	if err != nil {
		s.logger.Error("列出合同类型失败", zap.Error(err))
		return nil, err
	}
	return types, nil
}

// CreateContractType 创建合同类型；类别缺省为 Other，计费要求缺省为 Standard
func (s *lookupService) CreateContractType(ctx context.Context, req *dto.CreateContractTypeRequest) (*model.ContractType, error) {
	contractType := &model.ContractType{
		Name:                req.Name,
		Category:            defaultIfEmpty(req.Category, "Other"),
		BillingRequirements: defaultIfEmpty(req.BillingRequirements, "Standard"),
	}

	if err := s.repo.ContractType.Create(ctx, contractType); err != nil {
		s.logger.Error("创建合同类型失败", zap.Error(err))
		return nil, err
	}
	return contractType, nil
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
