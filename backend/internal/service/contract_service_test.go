package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestContractService() (ContractService, *mockRepos) {
	repo, m := newMockRepos()
	svc := NewContractService(repo, nil, zap.NewNop())
	return svc, m
}

func seedContractFixtures(m *mockRepos) {
	m.program.programs["prog-001"] = &model.Program{ProgramID: "prog-001", Name: "Alpha"}
	m.agency.agencies["ag-001"] = &model.Agency{AgencyID: "ag-001", Name: "Department of Defense"}
	m.contractType.types["ct-001"] = &model.ContractType{ContractTypeID: "ct-001", Name: "Firm Fixed Price (FFP)"}
}

func validCreateContractRequest() *dto.CreateContractRequest {
	return &dto.CreateContractRequest{
		ProgramID:      "prog-001",
		AgencyID:       "ag-001",
		ContractTypeID: "ct-001",
		ContractNumber: "CTR-0001",
		Title:          "Satellite Uplink Services",
		StartDate:      "2026-01-01",
		EndDate:        "2028-12-31",
		TotalValue:     5000000,
		FundedValue:    2500000,
		Status:         "Active",
	}
}

// ── Create 测试 ──

func TestContractService_Create_Success(t *testing.T) {
	svc, m := setupTestContractService()
	seedContractFixtures(m)

	result, err := svc.Create(context.Background(), validCreateContractRequest())
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.ContractNumber != "CTR-0001" {
		t.Errorf("期望ContractNumber=CTR-0001，实际=%s", result.ContractNumber)
	}
	if len(m.contract.contracts) != 1 {
		t.Errorf("期望落库1份合同，实际=%d", len(m.contract.contracts))
	}
}

func TestContractService_Create_AgencyMissing_NothingPersisted(t *testing.T) {
	svc, m := setupTestContractService()
	seedContractFixtures(m)
	delete(m.agency.agencies, "ag-001")

	_, err := svc.Create(context.Background(), validCreateContractRequest())
	if !errors.Is(err, ErrAgencyNotFound) {
		t.Errorf("期望 ErrAgencyNotFound，实际: %v", err)
	}
	if len(m.contract.contracts) != 0 {
		t.Error("任一关联缺失时不应留下合同行")
	}
}

func TestContractService_Create_ContractTypeMissing(t *testing.T) {
	svc, m := setupTestContractService()
	seedContractFixtures(m)
	delete(m.contractType.types, "ct-001")

	_, err := svc.Create(context.Background(), validCreateContractRequest())
	if !errors.Is(err, ErrContractTypeNotFound) {
		t.Errorf("期望 ErrContractTypeNotFound，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestContractService_Update_RecordsHistoryPerChangedField(t *testing.T) {
	svc, m := setupTestContractService()
	seedContractFixtures(m)
	m.contract.contracts["con-001"] = &model.Contract{
		ContractID:     "con-001",
		ProgramID:      "prog-001",
		AgencyID:       "ag-001",
		ContractTypeID: "ct-001",
		ContractNumber: "CTR-0001",
		Title:          "Satellite Uplink Services",
		StartDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2028, 12, 31, 0, 0, 0, 0, time.UTC),
		TotalValue:     5000000,
		FundedValue:    2500000,
		Status:         "Active",
	}

	req := &dto.UpdateContractRequest{
		Status:      strPtr("On Hold"),
		FundedValue: floatPtr(3000000),
		Title:       strPtr("Satellite Uplink Services"), // 同值不记历史
	}

	result, err := svc.Update(context.Background(), "con-001", req)
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if result.Status != "On Hold" {
		t.Errorf("期望Status=On Hold，实际=%s", result.Status)
	}
	if len(m.contract.history) != 2 {
		t.Fatalf("期望2条历史记录，实际=%d", len(m.contract.history))
	}

	fields := map[string]string{}
	for _, h := range m.contract.history {
		fields[h.Field] = h.NewValue
	}
	if fields["status"] != "On Hold" {
		t.Errorf("status 历史不符: %v", fields)
	}
	if _, ok := fields["fundedValue"]; !ok {
		t.Errorf("应有 fundedValue 历史，实际字段=%v", fields)
	}
}

func TestContractService_Update_NotFound(t *testing.T) {
	svc, _ := setupTestContractService()

	_, err := svc.Update(context.Background(), "con-missing", &dto.UpdateContractRequest{})
	if !errors.Is(err, ErrContractNotFound) {
		t.Errorf("期望 ErrContractNotFound，实际: %v", err)
	}
}

// ── 附件测试 ──

func TestContractService_Attachments(t *testing.T) {
	svc, m := setupTestContractService()
	seedContractFixtures(m)
	m.contract.contracts["con-001"] = &model.Contract{ContractID: "con-001", ProgramID: "prog-001"}

	created, err := svc.CreateAttachment(context.Background(), "con-001", &dto.CreateAttachmentRequest{
		Name: "SOW.pdf",
		URL:  "https://files.example.com/sow.pdf",
	})
	if err != nil {
		t.Fatalf("CreateAttachment 应成功: %v", err)
	}

	list, err := svc.ListAttachments(context.Background(), "con-001")
	if err != nil {
		t.Fatalf("ListAttachments 应成功: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("期望1个附件，实际=%d", len(list))
	}

	deleted, err := svc.DeleteAttachment(context.Background(), created.AttachmentID)
	if err != nil {
		t.Fatalf("DeleteAttachment 应成功: %v", err)
	}
	if deleted.ContractID != "con-001" {
		t.Errorf("删除结果应带所属合同ID，实际=%s", deleted.ContractID)
	}
	if len(m.attachment.attachments) != 0 {
		t.Error("附件应已被删除")
	}
}

func TestContractService_DeleteAttachment_NotFound(t *testing.T) {
	svc, _ := setupTestContractService()

	_, err := svc.DeleteAttachment(context.Background(), "att-missing")
	if !errors.Is(err, ErrAttachmentNotFound) {
		t.Errorf("期望 ErrAttachmentNotFound，实际: %v", err)
	}
}

// ── 子资源测试 ──

func TestContractService_CreateInvoice_DefaultPaymentTerms(t *testing.T) {
	svc, m := setupTestContractService()
	seedContractFixtures(m)
	m.contract.contracts["con-001"] = &model.Contract{ContractID: "con-001", ProgramID: "prog-001"}

	invoice, err := svc.CreateInvoice(context.Background(), "con-001", &dto.CreateInvoiceRequest{
		InvoiceNumber:  "INV-2026-001",
		InvoiceDate:    "2026-03-01",
		Amount:         12500,
		Status:         "Submitted",
		SubmissionDate: "2026-03-05",
	})
	if err != nil {
		t.Fatalf("CreateInvoice 应成功: %v", err)
	}
	if invoice.PaymentTerms != "Net 30" {
		t.Errorf("未提供账期时应默认 Net 30，实际=%s", invoice.PaymentTerms)
	}
}

func TestContractService_CreateSubcontractorAssignment_SubcontractorMissing(t *testing.T) {
	svc, m := setupTestContractService()
	seedContractFixtures(m)
	m.contract.contracts["con-001"] = &model.Contract{ContractID: "con-001", ProgramID: "prog-001"}

	_, err := svc.CreateSubcontractorAssignment(context.Background(), "con-001", &dto.CreateSubcontractorAssignmentRequest{
		SubcontractorID: "sub-missing",
		StartDate:       "2026-04-01",
		PlannedValue:    250000,
		Status:          "Active",
	})
	if !errors.Is(err, ErrSubcontractorNotFound) {
		t.Errorf("期望 ErrSubcontractorNotFound，实际: %v", err)
	}
}

func TestContractService_ChildResources_RequireContract(t *testing.T) {
	svc, _ := setupTestContractService()

	if _, err := svc.ListTasks(context.Background(), "con-missing"); !errors.Is(err, ErrContractNotFound) {
		t.Errorf("ListTasks 期望 ErrContractNotFound，实际: %v", err)
	}
	if _, err := svc.CreateTask(context.Background(), "con-missing", &dto.CreateTaskRequest{
		Description: "Draft test plan",
		DueDate:     "2026-05-01",
		Status:      "Open",
	}); !errors.Is(err, ErrContractNotFound) {
		t.Errorf("CreateTask 期望 ErrContractNotFound，实际: %v", err)
	}
}
