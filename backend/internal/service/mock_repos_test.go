package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
)

// ── Mock ProgramRepository ──

type mockProgramRepo struct {
	programs map[string]*model.Program
}

func newMockProgramRepo() *mockProgramRepo {
	return &mockProgramRepo{programs: make(map[string]*model.Program)}
}

func (m *mockProgramRepo) Create(_ context.Context, program *model.Program) error {
	if program.ProgramID == "" {
		program.ProgramID = "prog-" + program.Name
	}
	m.programs[program.ProgramID] = program
	return nil
}

func (m *mockProgramRepo) GetByID(_ context.Context, id string) (*model.Program, error) {
	if p, ok := m.programs[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProgramRepo) List(_ context.Context) ([]model.Program, error) {
	var result []model.Program
	for _, p := range m.programs {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[string]*model.Employee
	history   []model.EmployeeHistoricalChange
	deleted   map[string]bool
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{
		employees: make(map[string]*model.Employee),
		deleted:   make(map[string]bool),
	}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = "emp-" + employee.Email
	}
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok && !m.deleted[id] {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// GetByEmail 含软删除行，与唯一索引口径一致
func (m *mockEmployeeRepo) GetByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	var result []model.Employee
	for id, e := range m.employees {
		if m.deleted[id] {
			continue
		}
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	m.employees[employee.EmployeeID] = employee
	return nil
}

func (m *mockEmployeeRepo) SoftDelete(_ context.Context, id string) error {
	if _, ok := m.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.deleted[id] = true
	return nil
}

func (m *mockEmployeeRepo) AddHistory(_ context.Context, changes []model.EmployeeHistoricalChange) error {
	m.history = append(m.history, changes...)
	return nil
}

func (m *mockEmployeeRepo) ListHistory(_ context.Context, employeeID string) ([]model.EmployeeHistoricalChange, error) {
	var result []model.EmployeeHistoricalChange
	for _, h := range m.history {
		if h.EmployeeID == employeeID {
			result = append(result, h)
		}
	}
	return result, nil
}

// ── Mock AgencyRepository ──

type mockAgencyRepo struct {
	agencies map[string]*model.Agency
}

func newMockAgencyRepo() *mockAgencyRepo {
	return &mockAgencyRepo{agencies: make(map[string]*model.Agency)}
}

func (m *mockAgencyRepo) Create(_ context.Context, agency *model.Agency) error {
	if agency.AgencyID == "" {
		agency.AgencyID = "ag-" + agency.Name
	}
	m.agencies[agency.AgencyID] = agency
	return nil
}

func (m *mockAgencyRepo) GetByID(_ context.Context, id string) (*model.Agency, error) {
	if a, ok := m.agencies[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAgencyRepo) List(_ context.Context) ([]model.Agency, error) {
	var result []model.Agency
	for _, a := range m.agencies {
		result = append(result, *a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock ContractTypeRepository ──

type mockContractTypeRepo struct {
	types map[string]*model.ContractType
}

func newMockContractTypeRepo() *mockContractTypeRepo {
	return &mockContractTypeRepo{types: make(map[string]*model.ContractType)}
}

func (m *mockContractTypeRepo) Create(_ context.Context, contractType *model.ContractType) error {
	if contractType.ContractTypeID == "" {
		contractType.ContractTypeID = "ct-" + contractType.Name
	}
	m.types[contractType.ContractTypeID] = contractType
	return nil
}

func (m *mockContractTypeRepo) GetByID(_ context.Context, id string) (*model.ContractType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContractTypeRepo) List(_ context.Context) ([]model.ContractType, error) {
	var result []model.ContractType
	for _, t := range m.types {
		result = append(result, *t)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// ── Mock ContractRepository ──

type mockContractRepo struct {
	contracts map[string]*model.Contract
	history   []model.ContractHistoricalChange
}

func newMockContractRepo() *mockContractRepo {
	return &mockContractRepo{contracts: make(map[string]*model.Contract)}
}

func (m *mockContractRepo) Create(_ context.Context, contract *model.Contract) error {
	if contract.ContractID == "" {
		contract.ContractID = fmt.Sprintf("con-%d", len(m.contracts)+1)
	}
	m.contracts[contract.ContractID] = contract
	return nil
}

func (m *mockContractRepo) GetByID(_ context.Context, id string) (*model.Contract, error) {
	if c, ok := m.contracts[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockContractRepo) List(_ context.Context, programID string) ([]model.Contract, error) {
	var result []model.Contract
	for _, c := range m.contracts {
		if programID != "" && c.ProgramID != programID {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockContractRepo) Update(_ context.Context, contract *model.Contract) error {
	m.contracts[contract.ContractID] = contract
	return nil
}

func (m *mockContractRepo) AddHistory(_ context.Context, changes []model.ContractHistoricalChange) error {
	m.history = append(m.history, changes...)
	return nil
}

func (m *mockContractRepo) ListHistory(_ context.Context, contractID string) ([]model.ContractHistoricalChange, error) {
	var result []model.ContractHistoricalChange
	for _, h := range m.history {
		if h.ContractID == contractID {
			result = append(result, h)
		}
	}
	return result, nil
}

// ── Mock AttachmentRepository ──

type mockAttachmentRepo struct {
	attachments map[string]*model.ContractAttachment
}

func newMockAttachmentRepo() *mockAttachmentRepo {
	return &mockAttachmentRepo{attachments: make(map[string]*model.ContractAttachment)}
}

func (m *mockAttachmentRepo) Create(_ context.Context, attachment *model.ContractAttachment) error {
	if attachment.AttachmentID == "" {
		attachment.AttachmentID = fmt.Sprintf("att-%d", len(m.attachments)+1)
	}
	m.attachments[attachment.AttachmentID] = attachment
	return nil
}

func (m *mockAttachmentRepo) GetByID(_ context.Context, id string) (*model.ContractAttachment, error) {
	if a, ok := m.attachments[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttachmentRepo) ListByContract(_ context.Context, contractID string) ([]model.ContractAttachment, error) {
	var result []model.ContractAttachment
	for _, a := range m.attachments {
		if a.ContractID == contractID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *mockAttachmentRepo) Delete(_ context.Context, id string) error {
	delete(m.attachments, id)
	return nil
}

// ── Mock LaborCategoryRepository ──

type mockLaborCategoryRepo struct {
	categories map[string]*model.LaborCategory
}

func newMockLaborCategoryRepo() *mockLaborCategoryRepo {
	return &mockLaborCategoryRepo{categories: make(map[string]*model.LaborCategory)}
}

func (m *mockLaborCategoryRepo) Create(_ context.Context, category *model.LaborCategory) error {
	if category.LaborCategoryID == "" {
		category.LaborCategoryID = fmt.Sprintf("lc-%d", len(m.categories)+1)
	}
	m.categories[category.LaborCategoryID] = category
	return nil
}

func (m *mockLaborCategoryRepo) GetByID(_ context.Context, id string) (*model.LaborCategory, error) {
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockLaborCategoryRepo) ListByContract(_ context.Context, contractID string) ([]model.LaborCategory, error) {
	var result []model.LaborCategory
	for _, c := range m.categories {
		if c.ContractID == contractID {
			result = append(result, *c)
		}
	}
	return result, nil
}

// ── Mock PersonnelRepository ──

type mockPersonnelRepo struct {
	personnel map[string]*model.Personnel
}

func newMockPersonnelRepo() *mockPersonnelRepo {
	return &mockPersonnelRepo{personnel: make(map[string]*model.Personnel)}
}

func (m *mockPersonnelRepo) Create(_ context.Context, personnel *model.Personnel) error {
	if personnel.PersonnelID == "" {
		personnel.PersonnelID = fmt.Sprintf("per-%d", len(m.personnel)+1)
	}
	m.personnel[personnel.PersonnelID] = personnel
	return nil
}

func (m *mockPersonnelRepo) GetByID(_ context.Context, id string) (*model.Personnel, error) {
	if p, ok := m.personnel[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonnelRepo) ListByProgram(_ context.Context, programID string) ([]model.Personnel, error) {
	var result []model.Personnel
	for _, p := range m.personnel {
		if p.ProgramID == programID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPersonnelRepo) GetByProgramAndEmployee(_ context.Context, programID, employeeID string) (*model.Personnel, error) {
	for _, p := range m.personnel {
		if p.ProgramID == programID && p.EmployeeID == employeeID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock FinancialDataRepository ──

type mockFinancialDataRepo struct {
	records []model.FinancialData
}

func newMockFinancialDataRepo() *mockFinancialDataRepo {
	return &mockFinancialDataRepo{}
}

func (m *mockFinancialDataRepo) Create(_ context.Context, data *model.FinancialData) error {
	if data.FinancialDataID == "" {
		data.FinancialDataID = fmt.Sprintf("fd-%d", len(m.records)+1)
	}
	m.records = append(m.records, *data)
	return nil
}

func (m *mockFinancialDataRepo) ListByProgram(_ context.Context, programID string) ([]model.FinancialData, error) {
	var result []model.FinancialData
	for _, r := range m.records {
		if r.ProgramID == programID {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *mockFinancialDataRepo) ListByProgramAndTypes(_ context.Context, programID string, types []string) ([]model.FinancialData, error) {
	var result []model.FinancialData
	for _, r := range m.records {
		if r.ProgramID != programID {
			continue
		}
		for _, t := range types {
			if r.Type == t {
				result = append(result, r)
				break
			}
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockFinancialDataRepo) ListByTypeSince(_ context.Context, finType string, since time.Time, programID string) ([]model.FinancialData, error) {
	var result []model.FinancialData
	for _, r := range m.records {
		if r.Type != finType || r.Date.Before(since) {
			continue
		}
		if programID != "" && r.ProgramID != programID {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

// ── Mock ExpenseRepository ──

type mockExpenseRepo struct {
	expenses []model.Expense
}

func newMockExpenseRepo() *mockExpenseRepo {
	return &mockExpenseRepo{}
}

func (m *mockExpenseRepo) Create(_ context.Context, expense *model.Expense) error {
	if expense.ExpenseID == "" {
		expense.ExpenseID = fmt.Sprintf("exp-%d", len(m.expenses)+1)
	}
	m.expenses = append(m.expenses, *expense)
	return nil
}

func (m *mockExpenseRepo) ListSince(_ context.Context, since time.Time, programID, category string) ([]model.Expense, error) {
	var result []model.Expense
	for _, e := range m.expenses {
		if e.Date.Before(since) {
			continue
		}
		if programID != "" && e.ProgramID != programID {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (m *mockExpenseRepo) DistinctCategories(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	for _, e := range m.expenses {
		if !seen[e.Category] {
			seen[e.Category] = true
			result = append(result, e.Category)
		}
	}
	sort.Strings(result)
	return result, nil
}

// ── Mock LaborCostRepository ──

type mockLaborCostRepo struct {
	costs []model.LaborCost
}

func newMockLaborCostRepo() *mockLaborCostRepo {
	return &mockLaborCostRepo{}
}

func (m *mockLaborCostRepo) Create(_ context.Context, cost *model.LaborCost) error {
	if cost.LaborCostID == "" {
		cost.LaborCostID = fmt.Sprintf("lab-%d", len(m.costs)+1)
	}
	m.costs = append(m.costs, *cost)
	return nil
}

func (m *mockLaborCostRepo) List(_ context.Context, programID string) ([]model.LaborCost, error) {
	var result []model.LaborCost
	for _, c := range m.costs {
		if programID != "" && c.ProgramID != programID {
			continue
		}
		result = append(result, c)
	}
	return result, nil
}

// ── Mock FacilitiesCostRepository ──

type mockFacilitiesCostRepo struct {
	costs []model.FacilitiesCost
}

func newMockFacilitiesCostRepo() *mockFacilitiesCostRepo {
	return &mockFacilitiesCostRepo{}
}

func (m *mockFacilitiesCostRepo) Create(_ context.Context, cost *model.FacilitiesCost) error {
	if cost.FacilitiesCostID == "" {
		cost.FacilitiesCostID = fmt.Sprintf("fac-%d", len(m.costs)+1)
	}
	m.costs = append(m.costs, *cost)
	return nil
}

func (m *mockFacilitiesCostRepo) ListByProgram(_ context.Context, programID string) ([]model.FacilitiesCost, error) {
	var result []model.FacilitiesCost
	for _, c := range m.costs {
		if c.ProgramID == programID {
			result = append(result, c)
		}
	}
	return result, nil
}

// ── Mock ProjectRepository ──

type mockProjectRepo struct {
	projects map[string]*model.Project
}

func newMockProjectRepo() *mockProjectRepo {
	return &mockProjectRepo{projects: make(map[string]*model.Project)}
}

func (m *mockProjectRepo) Create(_ context.Context, project *model.Project) error {
	if project.ProjectID == "" {
		project.ProjectID = fmt.Sprintf("proj-%d", len(m.projects)+1)
	}
	m.projects[project.ProjectID] = project
	return nil
}

func (m *mockProjectRepo) List(_ context.Context, programID string) ([]model.Project, error) {
	var result []model.Project
	for _, p := range m.projects {
		if programID != "" && p.ProgramID != programID {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockProjectRepo) ListByProgram(_ context.Context, programID string) ([]model.Project, error) {
	var result []model.Project
	for _, p := range m.projects {
		if p.ProgramID == programID {
			result = append(result, *p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartDate.Before(result[j].StartDate) })
	return result, nil
}

// ── Mock ProjectStatusRepository ──

type mockProjectStatusRepo struct {
	statuses map[string]*model.CustomProjectStatus
	order    []string
}

func newMockProjectStatusRepo() *mockProjectStatusRepo {
	return &mockProjectStatusRepo{statuses: make(map[string]*model.CustomProjectStatus)}
}

func (m *mockProjectStatusRepo) Create(_ context.Context, status *model.CustomProjectStatus) error {
	if status.StatusID == "" {
		status.StatusID = "st-" + status.Name
	}
	m.statuses[status.StatusID] = status
	m.order = append(m.order, status.StatusID)
	return nil
}

func (m *mockProjectStatusRepo) GetByName(_ context.Context, name string) (*model.CustomProjectStatus, error) {
	for _, s := range m.statuses {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProjectStatusRepo) List(_ context.Context) ([]model.CustomProjectStatus, error) {
	var result []model.CustomProjectStatus
	for _, id := range m.order {
		result = append(result, *m.statuses[id])
	}
	return result, nil
}

// ── Mock TaskRepository ──

type mockTaskRepo struct {
	tasks []model.Task
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{}
}

func (m *mockTaskRepo) Create(_ context.Context, task *model.Task) error {
	if task.TaskID == "" {
		task.TaskID = fmt.Sprintf("task-%d", len(m.tasks)+1)
	}
	m.tasks = append(m.tasks, *task)
	return nil
}

func (m *mockTaskRepo) ListByContract(_ context.Context, contractID string) ([]model.Task, error) {
	var result []model.Task
	for _, t := range m.tasks {
		if t.ContractID == contractID {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].DueDate.Before(result[j].DueDate) })
	return result, nil
}

func (m *mockTaskRepo) ListAll(_ context.Context) ([]model.Task, error) {
	return append([]model.Task(nil), m.tasks...), nil
}

// ── Mock InvoiceRepository ──

type mockInvoiceRepo struct {
	invoices []model.Invoice
}

func newMockInvoiceRepo() *mockInvoiceRepo {
	return &mockInvoiceRepo{}
}

func (m *mockInvoiceRepo) Create(_ context.Context, invoice *model.Invoice) error {
	if invoice.InvoiceID == "" {
		invoice.InvoiceID = fmt.Sprintf("inv-%d", len(m.invoices)+1)
	}
	m.invoices = append(m.invoices, *invoice)
	return nil
}

func (m *mockInvoiceRepo) ListByContract(_ context.Context, contractID string) ([]model.Invoice, error) {
	var result []model.Invoice
	for _, i := range m.invoices {
		if i.ContractID == contractID {
			result = append(result, i)
		}
	}
	return result, nil
}

// ── Mock ModificationRepository ──

type mockModificationRepo struct {
	modifications []model.Modification
}

func newMockModificationRepo() *mockModificationRepo {
	return &mockModificationRepo{}
}

func (m *mockModificationRepo) Create(_ context.Context, modification *model.Modification) error {
	if modification.ModificationID == "" {
		modification.ModificationID = fmt.Sprintf("mod-%d", len(m.modifications)+1)
	}
	m.modifications = append(m.modifications, *modification)
	return nil
}

func (m *mockModificationRepo) ListByContract(_ context.Context, contractID string) ([]model.Modification, error) {
	var result []model.Modification
	for _, mod := range m.modifications {
		if mod.ContractID == contractID {
			result = append(result, mod)
		}
	}
	return result, nil
}

// ── Mock SubcontractingRepository ──

type mockSubcontractingRepo struct {
	goals          []model.SubcontractingGoal
	subcontractors map[string]*model.Subcontractor
	assignments    []model.SubcontractorAssignment
}

func newMockSubcontractingRepo() *mockSubcontractingRepo {
	return &mockSubcontractingRepo{subcontractors: make(map[string]*model.Subcontractor)}
}

func (m *mockSubcontractingRepo) CreateGoal(_ context.Context, goal *model.SubcontractingGoal) error {
	if goal.GoalID == "" {
		goal.GoalID = fmt.Sprintf("goal-%d", len(m.goals)+1)
	}
	m.goals = append(m.goals, *goal)
	return nil
}

func (m *mockSubcontractingRepo) ListGoalsByContract(_ context.Context, contractID string) ([]model.SubcontractingGoal, error) {
	var result []model.SubcontractingGoal
	for _, g := range m.goals {
		if g.ContractID == contractID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockSubcontractingRepo) CreateSubcontractor(_ context.Context, sub *model.Subcontractor) error {
	if sub.SubcontractorID == "" {
		sub.SubcontractorID = fmt.Sprintf("sub-%d", len(m.subcontractors)+1)
	}
	m.subcontractors[sub.SubcontractorID] = sub
	return nil
}

func (m *mockSubcontractingRepo) GetSubcontractorByID(_ context.Context, id string) (*model.Subcontractor, error) {
	if s, ok := m.subcontractors[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubcontractingRepo) ListSubcontractors(_ context.Context) ([]model.Subcontractor, error) {
	var result []model.Subcontractor
	for _, s := range m.subcontractors {
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockSubcontractingRepo) CreateAssignment(_ context.Context, assignment *model.SubcontractorAssignment) error {
	if assignment.AssignmentID == "" {
		assignment.AssignmentID = fmt.Sprintf("asg-%d", len(m.assignments)+1)
	}
	m.assignments = append(m.assignments, *assignment)
	return nil
}

func (m *mockSubcontractingRepo) ListAssignmentsByContract(_ context.Context, contractID string) ([]model.SubcontractorAssignment, error) {
	var result []model.SubcontractorAssignment
	for _, a := range m.assignments {
		if a.ContractID == contractID {
			result = append(result, a)
		}
	}
	return result, nil
}

// ── Mock AdminRepository ──

// mockAdminRepo 记录 PurgeAll 调用次数，清空动作由测试装置统一执行
type mockAdminRepo struct {
	purgeCalls int
	onPurge    func() int
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{}
}

func (m *mockAdminRepo) PurgeAll(_ context.Context) (int, error) {
	m.purgeCalls++
	if m.onPurge != nil {
		return m.onPurge(), nil
	}
	return 22, nil
}

// ── 测试装置 ──

// mockRepos 持有全部 mock 实例，便于测试直接预置/断言数据
type mockRepos struct {
	program        *mockProgramRepo
	employee       *mockEmployeeRepo
	agency         *mockAgencyRepo
	contractType   *mockContractTypeRepo
	contract       *mockContractRepo
	attachment     *mockAttachmentRepo
	laborCategory  *mockLaborCategoryRepo
	personnel      *mockPersonnelRepo
	financialData  *mockFinancialDataRepo
	expense        *mockExpenseRepo
	laborCost      *mockLaborCostRepo
	facilitiesCost *mockFacilitiesCostRepo
	project        *mockProjectRepo
	projectStatus  *mockProjectStatusRepo
	task           *mockTaskRepo
	invoice        *mockInvoiceRepo
	modification   *mockModificationRepo
	subcontracting *mockSubcontractingRepo
	admin          *mockAdminRepo
}

func newMockRepos() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		program:        newMockProgramRepo(),
		employee:       newMockEmployeeRepo(),
		agency:         newMockAgencyRepo(),
		contractType:   newMockContractTypeRepo(),
		contract:       newMockContractRepo(),
		attachment:     newMockAttachmentRepo(),
		laborCategory:  newMockLaborCategoryRepo(),
		personnel:      newMockPersonnelRepo(),
		financialData:  newMockFinancialDataRepo(),
		expense:        newMockExpenseRepo(),
		laborCost:      newMockLaborCostRepo(),
		facilitiesCost: newMockFacilitiesCostRepo(),
		project:        newMockProjectRepo(),
		projectStatus:  newMockProjectStatusRepo(),
		task:           newMockTaskRepo(),
		invoice:        newMockInvoiceRepo(),
		modification:   newMockModificationRepo(),
		subcontracting: newMockSubcontractingRepo(),
		admin:          newMockAdminRepo(),
	}
	repo := &repository.Repository{
		Program:        m.program,
		Employee:       m.employee,
		Agency:         m.agency,
		ContractType:   m.contractType,
		Contract:       m.contract,
		Attachment:     m.attachment,
		LaborCategory:  m.laborCategory,
		Personnel:      m.personnel,
		FinancialData:  m.financialData,
		Expense:        m.expense,
		LaborCost:      m.laborCost,
		FacilitiesCost: m.facilitiesCost,
		Project:        m.project,
		ProjectStatus:  m.projectStatus,
		Task:           m.task,
		Invoice:        m.invoice,
		Modification:   m.modification,
		Subcontracting: m.subcontracting,
		Admin:          m.admin,
	}
	return repo, m
}
