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

func setupTestProjectService() (ProjectService, *mockRepos) {
	repo, m := newMockRepos()
	svc := NewProjectService(repo, nil, zap.NewNop())
	return svc, m
}

// ── Create 测试 ──

func TestProjectService_Create_DefaultStatus(t *testing.T) {
	svc, m := setupTestProjectService()
	m.program.programs["prog-001"] = &model.Program{ProgramID: "prog-001", Name: "Alpha"}

	req := &dto.CreateProjectRequest{
		ProgramID: "prog-001",
		Name:      "Ground Station Upgrade",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		Budget:    500000,
		Status:    "IN_PROGRESS",
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.Status != "IN_PROGRESS" {
		t.Errorf("期望Status=IN_PROGRESS，实际=%s", result.Status)
	}
}

func TestProjectService_Create_CustomStatus(t *testing.T) {
	svc, m := setupTestProjectService()
	m.program.programs["prog-001"] = &model.Program{ProgramID: "prog-001", Name: "Alpha"}
	m.projectStatus.Create(context.Background(), &model.CustomProjectStatus{Name: "At Risk", Color: "#FFA500"})

	req := &dto.CreateProjectRequest{
		ProgramID: "prog-001",
		Name:      "Ground Station Upgrade",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		Status:    "At Risk",
	}

	result, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("自定义状态应可用: %v", err)
	}
	if result.Status != "At Risk" {
		t.Errorf("期望Status=At Risk，实际=%s", result.Status)
	}
}

func TestProjectService_Create_UnknownStatus(t *testing.T) {
	svc, m := setupTestProjectService()
	m.program.programs["prog-001"] = &model.Program{ProgramID: "prog-001", Name: "Alpha"}

	req := &dto.CreateProjectRequest{
		ProgramID: "prog-001",
		Name:      "Ground Station Upgrade",
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		Status:    "NOT_A_STATUS",
	}

	if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrProjectStatusUnknown) {
		t.Errorf("期望 ErrProjectStatusUnknown，实际: %v", err)
	}
}

// ── 项目状态测试 ──

func TestProjectService_ListStatuses_MergesDefaultsAndCustom(t *testing.T) {
	svc, m := setupTestProjectService()
	m.projectStatus.Create(context.Background(), &model.CustomProjectStatus{Name: "At Risk", Color: "#FFA500"})
	m.projectStatus.Create(context.Background(), &model.CustomProjectStatus{Name: "Delayed", Color: "#FF0000"})

	statuses, err := svc.ListStatuses(context.Background())
	if err != nil {
		t.Fatalf("ListStatuses 应成功: %v", err)
	}
	if len(statuses) != 7 {
		t.Fatalf("期望 5内置+2自定义=7 个状态，实际=%d", len(statuses))
	}

	// 内置状态在前，固定展示色，is_default=true
	for i, name := range model.DefaultProjectStatuses {
		if statuses[i].Name != name {
			t.Errorf("第%d项期望内置状态 %s，实际=%s", i, name, statuses[i].Name)
		}
		if !statuses[i].IsDefault {
			t.Errorf("内置状态 %s 应标记 is_default", name)
		}
		if statuses[i].Color != model.DefaultStatusColor {
			t.Errorf("内置状态 %s 应使用默认展示色，实际=%s", name, statuses[i].Color)
		}
	}
	if statuses[5].Name != "At Risk" || statuses[5].IsDefault {
		t.Errorf("自定义状态不符: %+v", statuses[5])
	}
	if statuses[6].Color != "#FF0000" {
		t.Errorf("自定义状态应保留配置色，实际=%s", statuses[6].Color)
	}
}

func TestProjectService_CreateStatus_RejectsDefaultName(t *testing.T) {
	svc, _ := setupTestProjectService()

	req := &dto.CreateProjectStatusRequest{Name: "PLANNING", Color: "#123456"}
	if _, err := svc.CreateStatus(context.Background(), req); !errors.Is(err, ErrStatusNameTaken) {
		t.Errorf("与内置状态同名应返回 ErrStatusNameTaken，实际: %v", err)
	}
}

func TestProjectService_CreateStatus_RejectsDuplicate(t *testing.T) {
	svc, m := setupTestProjectService()
	m.projectStatus.Create(context.Background(), &model.CustomProjectStatus{Name: "At Risk", Color: "#FFA500"})

	req := &dto.CreateProjectStatusRequest{Name: "At Risk", Color: "#ABCDEF"}
	if _, err := svc.CreateStatus(context.Background(), req); !errors.Is(err, ErrStatusNameTaken) {
		t.Errorf("重复名称应返回 ErrStatusNameTaken，实际: %v", err)
	}
}

func TestProjectService_CreateStatus_Success(t *testing.T) {
	svc, _ := setupTestProjectService()

	req := &dto.CreateProjectStatusRequest{Name: "Ahead of Schedule", Color: "#008000"}
	result, err := svc.CreateStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateStatus 应成功: %v", err)
	}
	if result.Name != "Ahead of Schedule" || result.Color != "#008000" {
		t.Errorf("状态内容不符: %+v", result)
	}
}
