package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/service"
	"github.com/morbidsteve/business-analyst/backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock ProgramService ──

type mockProgramService struct {
	createResult *model.Program
	createErr    error
	getResult    *model.Program
	getErr       error
	listResult   []dto.ProgramListItem
	listErr      error
}

func (m *mockProgramService) Create(_ context.Context, _ *dto.CreateProgramRequest) (*model.Program, error) {
	return m.createResult, m.createErr
}
func (m *mockProgramService) GetByID(_ context.Context, _ string) (*model.Program, error) {
	return m.getResult, m.getErr
}
func (m *mockProgramService) List(_ context.Context) ([]dto.ProgramListItem, error) {
	return m.listResult, m.listErr
}

// ── Mock PersonnelService ──

type mockPersonnelService struct {
	createResult *model.Personnel
	createErr    error
	listResult   []model.Personnel
	listErr      error
}

func (m *mockPersonnelService) Create(_ context.Context, _ *dto.CreatePersonnelRequest) (*model.Personnel, error) {
	return m.createResult, m.createErr
}
func (m *mockPersonnelService) ListByProgram(_ context.Context, _ string) ([]model.Personnel, error) {
	return m.listResult, m.listErr
}

// ── Mock AnalyticsService ──

type mockAnalyticsService struct {
	chartResult     interface{}
	chartErr        error
	dashboardResult []dto.DashboardPoint
	dashboardErr    error
}

func (m *mockAnalyticsService) ProgramChart(_ context.Context, _, _ string) (interface{}, error) {
	return m.chartResult, m.chartErr
}
func (m *mockAnalyticsService) Dashboard(_ context.Context, _, _ string) ([]dto.DashboardPoint, error) {
	return m.dashboardResult, m.dashboardErr
}

// ── Mock AdminService ──

type mockAdminService struct {
	seedResult  *dto.SeedResult
	seedErr     error
	purgeResult *dto.PurgeResult
	purgeErr    error
}

func (m *mockAdminService) Seed(_ context.Context) (*dto.SeedResult, error) {
	return m.seedResult, m.seedErr
}
func (m *mockAdminService) Purge(_ context.Context) (*dto.PurgeResult, error) {
	return m.purgeResult, m.purgeErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	bufErr   error
	ics      string
	icsErr   error
}

func (m *mockExportService) ExportProgramFinancials(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.bufErr
}
func (m *mockExportService) ExportCalendar(_ context.Context) (string, error) {
	return m.ics, m.icsErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// ProgramHandler Tests
// ═══════════════════════════════════════════════════════════

func TestProgramHandler_ListPrograms_Success(t *testing.T) {
	mock := &mockProgramService{
		listResult: []dto.ProgramListItem{
			{ProgramID: "prog-1", Name: "Alpha"},
			{ProgramID: "prog-2", Name: "Beta"},
		},
	}
	h := NewProgramHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/programs", nil)

	r := gin.New()
	r.GET("/programs", h.ListPrograms)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestProgramHandler_GetProgram_NotFound(t *testing.T) {
	mock := &mockProgramService{getErr: service.ErrProgramNotFound}
	h := NewProgramHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/programs/prog-missing", nil)

	r := gin.New()
	r.GET("/programs/:id", h.GetProgram)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestProgramHandler_CreateProgram_Success(t *testing.T) {
	mock := &mockProgramService{
		createResult: &model.Program{ProgramID: "prog-1", Name: "Alpha", Budget: 1000},
	}
	h := NewProgramHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/programs", jsonBody(dto.CreateProgramRequest{
		Name:      "Alpha",
		Budget:    1000,
		StartDate: "2026-01-01",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/programs", h.CreateProgram)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestProgramHandler_CreateProgram_BadJSON(t *testing.T) {
	mock := &mockProgramService{}
	h := NewProgramHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/programs", bytes.NewReader([]byte("bad json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/programs", h.CreateProgram)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 10001 {
		t.Errorf("expected error code 10001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// PersonnelHandler Tests
// ═══════════════════════════════════════════════════════════

func TestPersonnelHandler_ListPersonnel_MissingProgramID(t *testing.T) {
	mock := &mockPersonnelService{}
	h := NewPersonnelHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/personnel", nil) // no programId

	r := gin.New()
	r.GET("/personnel", h.ListPersonnel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestPersonnelHandler_CreatePersonnel_Success(t *testing.T) {
	mock := &mockPersonnelService{
		createResult: &model.Personnel{PersonnelID: "per-1"},
	}
	h := NewPersonnelHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/personnel", jsonBody(dto.CreatePersonnelRequest{
		ProgramID:  "11111111-1111-1111-1111-111111111111",
		EmployeeID: "22222222-2222-2222-2222-222222222222",
		Role:       "Systems Engineer",
		StartDate:  "2026-01-01",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/personnel", h.CreatePersonnel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestPersonnelHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"PersonnelNotFound", service.ErrPersonnelNotFound, 404, 14001},
		{"AssignmentMixed", service.ErrAssignmentMixed, 400, 14002},
		{"ProgramNotFound", service.ErrProgramNotFound, 404, 11001},
		{"EmployeeNotFound", service.ErrEmployeeNotFound, 404, 12001},
		{"ContractNotFound", service.ErrContractNotFound, 404, 13001},
		{"LaborCategoryNotFound", service.ErrLaborCategoryNotFound, 404, 13005},
		{"InvalidDate", service.ErrInvalidDate, 400, 14003},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockPersonnelService{listErr: tt.err}
			h := NewPersonnelHandler(mock)

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/personnel?programId=prog-1", nil)

			r := gin.New()
			r.GET("/personnel", h.ListPersonnel)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// AnalyticsHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAnalyticsHandler_ProgramChart_Success(t *testing.T) {
	mock := &mockAnalyticsService{
		chartResult: []dto.BurnRatePoint{{Date: "2026-01-01", BurnRate: 100}},
	}
	h := NewAnalyticsHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/program-analytics?programId=prog-1&chartType=burnRate", nil)

	r := gin.New()
	r.GET("/program-analytics", h.ProgramChart)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAnalyticsHandler_ProgramChart_MissingChartType(t *testing.T) {
	mock := &mockAnalyticsService{}
	h := NewAnalyticsHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/program-analytics?programId=prog-1", nil)

	r := gin.New()
	r.GET("/program-analytics", h.ProgramChart)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAnalyticsHandler_ProgramChart_UnknownChartType(t *testing.T) {
	mock := &mockAnalyticsService{chartErr: service.ErrUnknownChartType}
	h := NewAnalyticsHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/program-analytics?programId=prog-1&chartType=bogus", nil)

	r := gin.New()
	r.GET("/program-analytics", h.ProgramChart)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 18001 {
		t.Errorf("expected error code 18001, got %d", resp.Code)
	}
}

func TestAnalyticsHandler_Dashboard_Success(t *testing.T) {
	mock := &mockAnalyticsService{
		dashboardResult: []dto.DashboardPoint{{Date: "2026-01", Budget: 1000, Actual: 400}},
	}
	h := NewAnalyticsHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/dashboard-data", nil) // 无过滤参数也合法

	r := gin.New()
	r.GET("/dashboard-data", h.Dashboard)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// AdminHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAdminHandler_Seed_Success(t *testing.T) {
	mock := &mockAdminService{
		seedResult: &dto.SeedResult{Programs: 3, Employees: 5},
	}
	h := NewAdminHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/seed", nil)

	r := gin.New()
	r.POST("/admin/seed", h.Seed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAdminHandler_Seed_Failure(t *testing.T) {
	mock := &mockAdminService{seedErr: errors.New("db down")}
	h := NewAdminHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/seed", nil)

	r := gin.New()
	r.POST("/admin/seed", h.Seed)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 19001 {
		t.Errorf("expected error code 19001, got %d", resp.Code)
	}
}

func TestAdminHandler_Purge_Success(t *testing.T) {
	mock := &mockAdminService{
		purgeResult: &dto.PurgeResult{TablesCleared: 22},
	}
	h := NewAdminHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/admin/purge", nil)

	r := gin.New()
	r.POST("/admin/purge", h.Purge)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ProgramFinancials_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "Alpha-financials.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/programs/prog-1/financials", nil)

	r := gin.New()
	r.GET("/export/programs/:id/financials", h.ExportProgramFinancials)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestExportHandler_ProgramFinancials_NotFound(t *testing.T) {
	mock := &mockExportService{bufErr: service.ErrProgramNotFound}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/programs/prog-missing/financials", nil)

	r := gin.New()
	r.GET("/export/programs/:id/financials", h.ExportProgramFinancials)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestExportHandler_Calendar_Success(t *testing.T) {
	mock := &mockExportService{ics: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/calendar", nil)

	r := gin.New()
	r.GET("/export/calendar", h.ExportCalendar)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "text/calendar; charset=utf-8" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("BEGIN:VCALENDAR")) {
		t.Error("expected calendar body")
	}
}
