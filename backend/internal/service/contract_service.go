package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
	"github.com/morbidsteve/business-analyst/backend/pkg/redis"
)

// ── 合同模块业务错误 ──

var (
	ErrContractNotFound      = errors.New("合同不存在")
	ErrAgencyNotFound        = errors.New("签约机构不存在")
	ErrContractTypeNotFound  = errors.New("合同类型不存在")
	ErrAttachmentNotFound    = errors.New("合同附件不存在")
	ErrLaborCategoryNotFound = errors.New("劳务类别不存在")
	ErrSubcontractorNotFound = errors.New("分包商不存在")
)

// ContractService 合同业务接口（含附件、劳务类别与合同子实体）
type ContractService interface {
	Create(ctx context.Context, req *dto.CreateContractRequest) (*model.Contract, error)
	GetByID(ctx context.Context, id string) (*model.Contract, error)
	List(ctx context.Context, programID string) ([]model.Contract, error)
	Update(ctx context.Context, id string, req *dto.UpdateContractRequest) (*model.Contract, error)
	ListHistory(ctx context.Context, id string) ([]dto.HistoricalChangeEntry, error)

	ListAttachments(ctx context.Context, contractID string) ([]model.ContractAttachment, error)
	CreateAttachment(ctx context.Context, contractID string, req *dto.CreateAttachmentRequest) (*model.ContractAttachment, error)
	DeleteAttachment(ctx context.Context, attachmentID string) (*dto.DeleteAttachmentResponse, error)

	ListLaborCategories(ctx context.Context, contractID string) ([]model.LaborCategory, error)
	CreateLaborCategory(ctx context.Context, req *dto.CreateLaborCategoryRequest) (*model.LaborCategory, error)

	ListTasks(ctx context.Context, contractID string) ([]model.Task, error)
	CreateTask(ctx context.Context, contractID string, req *dto.CreateTaskRequest) (*model.Task, error)
	ListInvoices(ctx context.Context, contractID string) ([]model.Invoice, error)
	CreateInvoice(ctx context.Context, contractID string, req *dto.CreateInvoiceRequest) (*model.Invoice, error)
	ListModifications(ctx context.Context, contractID string) ([]model.Modification, error)
	CreateModification(ctx context.Context, contractID string, req *dto.CreateModificationRequest) (*model.Modification, error)
	ListSubcontractingGoals(ctx context.Context, contractID string) ([]model.SubcontractingGoal, error)
	CreateSubcontractingGoal(ctx context.Context, contractID string, req *dto.CreateSubcontractingGoalRequest) (*model.SubcontractingGoal, error)
	ListSubcontractors(ctx context.Context) ([]model.Subcontractor, error)
	CreateSubcontractor(ctx context.Context, req *dto.CreateSubcontractorRequest) (*model.Subcontractor, error)
	ListSubcontractorAssignments(ctx context.Context, contractID string) ([]model.SubcontractorAssignment, error)
	CreateSubcontractorAssignment(ctx context.Context, contractID string, req *dto.CreateSubcontractorAssignmentRequest) (*model.SubcontractorAssignment, error)
}

type contractService struct {
	repo   *repository.Repository
	cache  *redis.Client
	logger *zap.Logger
}

// NewContractService 创建 ContractService 实例
func NewContractService(repo *repository.Repository, cache *redis.Client, logger *zap.Logger) ContractService {
	return &contractService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 创建合同：项目群、签约机构、合同类型必须全部存在，
// 任一缺失整体失败，不落任何行
func (s *contractService) Create(ctx context.Context, req *dto.CreateContractRequest) (*model.Contract, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	contract := &model.Contract{
		ProgramID:            req.ProgramID,
		AgencyID:             req.AgencyID,
		ContractTypeID:       req.ContractTypeID,
		ContractNumber:       req.ContractNumber,
		Title:                req.Title,
		StartDate:            startDate,
		EndDate:              endDate,
		TotalValue:           req.TotalValue,
		FundedValue:          req.FundedValue,
		Status:               req.Status,
		ContractingOfficer:   req.ContractingOfficer,
		CorName:              req.CorName,
		SecurityClearanceReq: req.SecurityClearanceReq,
		PerformanceLocation:  req.PerformanceLocation,
		NaicsCode:            req.NaicsCode,
		SmallBusinessGoalPct: req.SmallBusinessGoalPct,
		IsClassified:         req.IsClassified,
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if _, err := txRepo.Program.GetByID(ctx, req.ProgramID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProgramNotFound
			}
			return err
		}
		if _, err := txRepo.Agency.GetByID(ctx, req.AgencyID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAgencyNotFound
			}
			return err
		}
		if _, err := txRepo.ContractType.GetByID(ctx, req.ContractTypeID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrContractTypeNotFound
			}
			return err
		}
		return txRepo.Contract.Create(ctx, contract)
	})
	if err != nil {
		if errors.Is(err, ErrProgramNotFound) ||
			errors.Is(err, ErrAgencyNotFound) ||
			errors.Is(err, ErrContractTypeNotFound) {
			return nil, err
		}
		s.logger.Error("创建合同失败", zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, contract.ContractID)
	return contract, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *contractService) GetByID(ctx context.Context, id string) (*model.Contract, error) {
	contract, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("查询合同失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return contract, nil
}

// ────────────────────── List ──────────────────────

func (s *contractService) List(ctx context.Context, programID string) ([]model.Contract, error) {
	contracts, err := s.repo.Contract.List(ctx, programID)
	if err != nil {
		s.logger.Error("列出合同失败", zap.Error(err))
		return nil, err
	}
	return contracts, nil
}

// ────────────────────── Update ──────────────────────

// Update 部分更新合同：逐字段比对差异并写合同历史，
// 历史与更新在同一事务内提交
func (s *contractService) Update(ctx context.Context, id string, req *dto.UpdateContractRequest) (*model.Contract, error) {
	contract, err := s.repo.Contract.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		s.logger.Error("查询合同失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	var diff historyDiff
	diff.str("contractNumber", &contract.ContractNumber, req.ContractNumber)
	diff.str("title", &contract.Title, req.Title)
	if err := diff.date("startDate", &contract.StartDate, req.StartDate); err != nil {
		return nil, err
	}
	if err := diff.date("endDate", &contract.EndDate, req.EndDate); err != nil {
		return nil, err
	}
	diff.float("totalValue", &contract.TotalValue, req.TotalValue)
	diff.float("fundedValue", &contract.FundedValue, req.FundedValue)
	diff.str("status", &contract.Status, req.Status)
	diff.str("contractingOfficer", &contract.ContractingOfficer, req.ContractingOfficer)
	diff.str("corName", &contract.CorName, req.CorName)
	diff.str("securityClearanceReq", &contract.SecurityClearanceReq, req.SecurityClearanceReq)
	diff.str("performanceLocation", &contract.PerformanceLocation, req.PerformanceLocation)
	diff.str("naicsCode", &contract.NaicsCode, req.NaicsCode)
	diff.float("smallBusinessGoalPct", &contract.SmallBusinessGoalPct, req.SmallBusinessGoalPct)
	diff.boolean("isClassified", &contract.IsClassified, req.IsClassified)

	if len(diff.changes) == 0 {
		return contract, nil
	}

	changes := make([]model.ContractHistoricalChange, 0, len(diff.changes))
	for _, c := range diff.changes {
		changes = append(changes, model.ContractHistoricalChange{
			ContractID: contract.ContractID,
			Field:      c.Field,
			OldValue:   c.OldValue,
			NewValue:   c.NewValue,
			ChangedAt:  time.Now(),
		})
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		if err := txRepo.Contract.Update(ctx, contract); err != nil {
			return err
		}
		return txRepo.Contract.AddHistory(ctx, changes)
	})
	if err != nil {
		s.logger.Error("更新合同失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, id)
	return contract, nil
}

// ────────────────────── ListHistory ──────────────────────

func (s *contractService) ListHistory(ctx context.Context, id string) ([]dto.HistoricalChangeEntry, error) {
	if _, err := s.repo.Contract.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}

	changes, err := s.repo.Contract.ListHistory(ctx, id)
	if err != nil {
		s.logger.Error("查询合同历史失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	result := make([]dto.HistoricalChangeEntry, 0, len(changes))
	for _, c := range changes {
		result = append(result, dto.HistoricalChangeEntry{
			Field:     c.Field,
			OldValue:  c.OldValue,
			NewValue:  c.NewValue,
			ChangedAt: c.ChangedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// ────────────────────── 附件 ──────────────────────

func (s *contractService) ListAttachments(ctx context.Context, contractID string) ([]model.ContractAttachment, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	attachments, err := s.repo.Attachment.ListByContract(ctx, contractID)
	if err != nil {
		s.logger.Error("列出合同附件失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}
	return attachments, nil
}

func (s *contractService) CreateAttachment(ctx context.Context, contractID string, req *dto.CreateAttachmentRequest) (*model.ContractAttachment, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	attachment := &model.ContractAttachment{
		ContractID: contractID,
		Name:       req.Name,
		URL:        req.URL,
	}
	if err := s.repo.Attachment.Create(ctx, attachment); err != nil {
		s.logger.Error("创建合同附件失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, contractID)
	return attachment, nil
}

// DeleteAttachment 删除附件并返回所属合同 id，调用方据此刷新合同详情
func (s *contractService) DeleteAttachment(ctx context.Context, attachmentID string) (*dto.DeleteAttachmentResponse, error) {
	attachment, err := s.repo.Attachment.GetByID(ctx, attachmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttachmentNotFound
		}
		s.logger.Error("查询合同附件失败", zap.String("id", attachmentID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Attachment.Delete(ctx, attachmentID); err != nil {
		s.logger.Error("删除合同附件失败", zap.String("id", attachmentID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, attachment.ContractID)
	return &dto.DeleteAttachmentResponse{
		AttachmentID: attachment.AttachmentID,
		ContractID:   attachment.ContractID,
	}, nil
}

// ────────────────────── 劳务类别 ──────────────────────

func (s *contractService) ListLaborCategories(ctx context.Context, contractID string) ([]model.LaborCategory, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	categories, err := s.repo.LaborCategory.ListByContract(ctx, contractID)
	if err != nil {
		s.logger.Error("列出劳务类别失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (s *contractService) CreateLaborCategory(ctx context.Context, req *dto.CreateLaborCategoryRequest) (*model.LaborCategory, error) {
	if err := s.ensureContract(ctx, req.ContractID); err != nil {
		return nil, err
	}

	category := &model.LaborCategory{
		ContractID:    req.ContractID,
		Title:         req.Title,
		Description:   req.Description,
		MinRate:       req.MinRate,
		MaxRate:       req.MaxRate,
		EducationReq:  req.EducationReq,
		ExperienceReq: req.ExperienceReq,
		ClearanceReq:  req.ClearanceReq,
		Active:        true,
	}
	if err := s.repo.LaborCategory.Create(ctx, category); err != nil {
		s.logger.Error("创建劳务类别失败", zap.String("contract_id", req.ContractID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, req.ContractID)
	return category, nil
}

// ────────────────────── 内部方法 ──────────────────────

func (s *contractService) ensureContract(ctx context.Context, contractID string) error {
	if _, err := s.repo.Contract.GetByID(ctx, contractID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContractNotFound
		}
		s.logger.Error("查询合同失败", zap.String("id", contractID), zap.Error(err))
		return err
	}
	return nil
}

func (s *contractService) invalidateContractPages(ctx context.Context, contractID string) {
	if err := s.cache.InvalidatePath(ctx, "/contracts"); err != nil {
		s.logger.Warn("合同列表缓存失效失败", zap.Error(err))
	}
	if err := s.cache.InvalidatePrefix(ctx, "/contracts/"+contractID); err != nil {
		s.logger.Warn("合同详情缓存失效失败", zap.String("contract_id", contractID), zap.Error(err))
	}
}
