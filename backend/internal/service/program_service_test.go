package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestProgramService() (ProgramService, *mockRepos) {
	repo, m := newMockRepos()
	svc := NewProgramService(repo, nil, zap.NewNop())
	return svc, m
}

// ── Create 测试 ──

func TestProgramService_Create_Success(t *testing.T) {
	svc, m := setupTestProgramService()

	req := &dto.CreateProgramRequest{
		Name:      "Next-Gen Satellite Communication",
		Budget:    750000000,
		StartDate: "2026-01-01",
		EndDate:   strPtr("2028-12-31"),
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Budget != 750000000 {
		t.Errorf("期望Budget=750000000，实际=%f", result.Budget)
	}
	if result.EndDate == nil {
		t.Error("期望EndDate非空")
	}
	if len(m.program.programs) != 1 {
		t.Errorf("期望落库1条，实际=%d", len(m.program.programs))
	}
}

func TestProgramService_Create_BadDateFormat(t *testing.T) {
	svc, _ := setupTestProgramService()

	req := &dto.CreateProgramRequest{
		Name:      "Alpha",
		Budget:    100,
		StartDate: "01/01/2026",
	}

	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("期望 ErrInvalidDate，实际: %v", err)
	}
}

// ── GetByID / List 测试 ──

func TestProgramService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupTestProgramService()

	if _, err := svc.GetByID(context.Background(), "prog-missing"); !errors.Is(err, ErrProgramNotFound) {
		t.Errorf("期望 ErrProgramNotFound，实际: %v", err)
	}
}

func TestProgramService_List_ReturnsIDAndName(t *testing.T) {
	svc, m := setupTestProgramService()
	m.program.programs["prog-b"] = &model.Program{ProgramID: "prog-b", Name: "Beta", Budget: 2}
	m.program.programs["prog-a"] = &model.Program{ProgramID: "prog-a", Name: "Alpha", Budget: 1}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("期望2条，实际=%d", len(list))
	}
	// 按名称排序
	if list[0].Name != "Alpha" || list[1].Name != "Beta" {
		t.Errorf("列表应按名称排序: %+v", list)
	}
	if list[0].ProgramID != "prog-a" {
		t.Errorf("列表项应带 program_id: %+v", list[0])
	}
}
