package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ── 合同子实体操作（任务 / 发票 / 变更 / 分包） ──

func (s *contractService) ListTasks(ctx context.Context, contractID string) ([]model.Task, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	tasks, err := s.repo.Task.ListByContract(ctx, contractID)
	if err != nil {
		s.logger.Error("列出合同任务失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

func (s *contractService) CreateTask(ctx context.Context, contractID string, req *dto.CreateTaskRequest) (*model.Task, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task := &model.Task{
		ContractID:        contractID,
		Description:       req.Description,
		DueDate:           dueDate,
		Status:            req.Status,
		EstimatedHours:    req.EstimatedHours,
		DeliverableFormat: req.DeliverableFormat,
	}
	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.logger.Error("创建合同任务失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, contractID)
	return task, nil
}

func (s *contractService) ListInvoices(ctx context.Context, contractID string) ([]model.Invoice, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	invoices, err := s.repo.Invoice.ListByContract(ctx, contractID)
	if err != nil {
		s.logger.Error("列出合同发票失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}
	return invoices, nil
}

func (s *contractService) CreateInvoice(ctx context.Context, contractID string, req *dto.CreateInvoiceRequest) (*model.Invoice, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}
	invoiceDate, err := parseDate(req.InvoiceDate)
	if err != nil {
		return nil, err
	}
	submissionDate, err := parseDate(req.SubmissionDate)
	if err != nil {
		return nil, err
	}
	paymentDate, err := parseDatePtr(req.PaymentDate)
	if err != nil {
		return nil, err
	}

	invoice := &model.Invoice{
		ContractID:     contractID,
		InvoiceNumber:  req.InvoiceNumber,
		InvoiceDate:    invoiceDate,
		Amount:         req.Amount,
		Status:         req.Status,
		SubmissionDate: submissionDate,
		PaymentDate:    paymentDate,
		PaymentTerms:   defaultIfEmpty(req.PaymentTerms, "Net 30"),
	}
	if err := s.repo.Invoice.Create(ctx, invoice); err != nil {
		s.logger.Error("创建合同发票失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, contractID)
	return invoice, nil
}

func (s *contractService) ListModifications(ctx context.Context, contractID string) ([]model.Modification, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	modifications, err := s.repo.Modification.ListByContract(ctx, contractID)
	if err != nil {
		s.logger.Error("列出合同变更失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}
	return modifications, nil
}

func (s *contractService) CreateModification(ctx context.Context, contractID string, req *dto.CreateModificationRequest) (*model.Modification, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}
	effectiveDate, err := parseDate(req.EffectiveDate)
	if err != nil {
		return nil, err
	}

	modification := &model.Modification{
		ContractID:    contractID,
		ModNumber:     req.ModNumber,
		EffectiveDate: effectiveDate,
		ValueChange:   req.ValueChange,
		Description:   req.Description,
		Status:        req.Status,
	}
	if err := s.repo.Modification.Create(ctx, modification); err != nil {
		s.logger.Error("创建合同变更失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, contractID)
	return modification, nil
}

func (s *contractService) ListSubcontractingGoals(ctx context.Context, contractID string) ([]model.SubcontractingGoal, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	goals, err := s.repo.Subcontracting.ListGoalsByContract(ctx, contractID)
	if err != nil {
		s.logger.Error("列出分包目标失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}
	return goals, nil
}

func (s *contractService) CreateSubcontractingGoal(ctx context.Context, contractID string, req *dto.CreateSubcontractingGoalRequest) (*model.SubcontractingGoal, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}
	reportPeriod, err := parseDate(req.ReportPeriod)
	if err != nil {
		return nil, err
	}

	goal := &model.SubcontractingGoal{
		ContractID:        contractID,
		BusinessType:      req.BusinessType,
		GoalPercentage:    req.GoalPercentage,
		CurrentPercentage: req.CurrentPercentage,
		GoalAmount:        req.GoalAmount,
		CurrentAmount:     req.CurrentAmount,
		ReportPeriod:      reportPeriod,
	}
	if err := s.repo.Subcontracting.CreateGoal(ctx, goal); err != nil {
		s.logger.Error("创建分包目标失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, contractID)
	return goal, nil
}

func (s *contractService) ListSubcontractors(ctx context.Context) ([]model.Subcontractor, error) {
	subs, err := s.repo.Subcontracting.ListSubcontractors(ctx)
	if err != nil {
		s.logger.Error("列出分包商失败", zap.Error(err))
		return nil, err
	}
	return subs, nil
}

func (s *contractService) CreateSubcontractor(ctx context.Context, req *dto.CreateSubcontractorRequest) (*model.Subcontractor, error) {
	sub := &model.Subcontractor{
		Name:          req.Name,
		DunsNumber:    req.DunsNumber,
		CageCode:      req.CageCode,
		BusinessSize:  req.BusinessSize,
		BusinessTypes: req.BusinessTypes,
		Active:        true,
	}
	if err := s.repo.Subcontracting.CreateSubcontractor(ctx, sub); err != nil {
		s.logger.Error("创建分包商失败", zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (s *contractService) ListSubcontractorAssignments(ctx context.Context, contractID string) ([]model.SubcontractorAssignment, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}

	assignments, err := s.repo.Subcontracting.ListAssignmentsByContract(ctx, contractID)
	if err != nil {
		s.logger.Error("列出分包商分配失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

func (s *contractService) CreateSubcontractorAssignment(ctx context.Context, contractID string, req *dto.CreateSubcontractorAssignmentRequest) (*model.SubcontractorAssignment, error) {
	if err := s.ensureContract(ctx, contractID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Subcontracting.GetSubcontractorByID(ctx, req.SubcontractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcontractorNotFound
		}
		s.logger.Error("查询分包商失败", zap.String("id", req.SubcontractorID), zap.Error(err))
		return nil, err
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDatePtr(req.EndDate)
	if err != nil {
		return nil, err
	}

	assignment := &model.SubcontractorAssignment{
		ContractID:      contractID,
		SubcontractorID: req.SubcontractorID,
		StartDate:       startDate,
		EndDate:         endDate,
		PlannedValue:    req.PlannedValue,
		CurrentValue:    req.CurrentValue,
		Status:          req.Status,
	}
	if err := s.repo.Subcontracting.CreateAssignment(ctx, assignment); err != nil {
		s.logger.Error("创建分包商分配失败", zap.String("contract_id", contractID), zap.Error(err))
		return nil, err
	}

	s.invalidateContractPages(ctx, contractID)
	return assignment, nil
}
