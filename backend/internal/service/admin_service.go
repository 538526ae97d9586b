package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/morbidsteve/business-analyst/backend/internal/dto"
	"github.com/morbidsteve/business-analyst/backend/internal/model"
	"github.com/morbidsteve/business-analyst/backend/internal/repository"
	"github.com/morbidsteve/business-analyst/backend/pkg/oplog"
	"github.com/morbidsteve/business-analyst/backend/pkg/redis"
)

// AdminService 全库维护业务接口（种子数据 / 清空数据）
// 两个操作都在单个事务内完成，任一步失败整体回滚；
// 每一步同时写入持久化操作日志
type AdminService interface {
	Seed(ctx context.Context) (*dto.SeedResult, error)
	Purge(ctx context.Context) (*dto.PurgeResult, error)
}

type adminService struct {
	repo   *repository.Repository
	cache  *redis.Client
	opLog  *oplog.Writer
	logger *zap.Logger
}

// NewAdminService 创建 AdminService 实例
func NewAdminService(repo *repository.Repository, cache *redis.Client, opLog *oplog.Writer, logger *zap.Logger) AdminService {
	return &adminService{repo: repo, cache: cache, opLog: opLog, logger: logger}
}

// ────────────────────── Purge ──────────────────────

func (s *adminService) Purge(ctx context.Context) (*dto.PurgeResult, error) {
	s.opLog.Log("Starting database purge")

	var cleared int
	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		n, err := txRepo.Admin.PurgeAll(ctx)
		if err != nil {
			return err
		}
		cleared = n
		return nil
	})
	if err != nil {
		s.opLog.LogData("Failed to purge database", map[string]string{"error": err.Error()})
		s.logger.Error("清空数据失败", zap.Error(err))
		return nil, err
	}

	s.opLog.Log("Database purge completed successfully")
	if err := s.cache.InvalidatePrefix(ctx, ""); err != nil {
		s.logger.Warn("全量缓存失效失败", zap.Error(err))
	}

	return &dto.PurgeResult{TablesCleared: cleared}, nil
}

// ────────────────────── Seed ──────────────────────

// ── 种子数据固定取值池 ──

var (
	seedPrograms = []model.Program{
		{
			Name:        "Next-Gen Satellite Communication",
			Description: "Developing advanced satellite communication systems for global connectivity",
			StartDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Budget:      750000000,
		},
		{
			Name:        "Quantum Computing Research",
			Description: "Exploring quantum computing applications for cryptography and optimization problems",
			StartDate:   time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			Budget:      500000000,
		},
		{
			Name:        "Sustainable Energy Solutions",
			Description: "Researching and developing renewable energy technologies for a sustainable future",
			StartDate:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
			Budget:      1000000000,
		},
	}

	seedProgramEnds = []time.Time{
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2027, 3, 14, 0, 0, 0, 0, time.UTC),
		time.Date(2028, 5, 31, 0, 0, 0, 0, time.UTC),
	}

	seedEmployees = []model.Employee{
		{Name: "Dr. Emily Chen", Email: "emily.chen@example.com", Position: "Lead Researcher", Department: "R&D", StartDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), HourlyRate: 75},
		{Name: "Michael Johnson", Email: "michael.johnson@example.com", Position: "Project Manager", Department: "Operations", StartDate: time.Date(2019, 7, 15, 0, 0, 0, 0, time.UTC), HourlyRate: 65},
		{Name: "Sarah Williams", Email: "sarah.williams@example.com", Position: "Software Engineer", Department: "IT", StartDate: time.Date(2021, 1, 10, 0, 0, 0, 0, time.UTC), HourlyRate: 60},
		{Name: "David Rodriguez", Email: "david.rodriguez@example.com", Position: "Financial Analyst", Department: "Finance", StartDate: time.Date(2022, 4, 1, 0, 0, 0, 0, time.UTC), HourlyRate: 55},
		{Name: "Lisa Thompson", Email: "lisa.thompson@example.com", Position: "HR Specialist", Department: "Human Resources", StartDate: time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC), HourlyRate: 50},
	}

	seedAgencies = []model.Agency{
		{Name: "Department of Defense", Department: "DOD", Address: "1400 Defense Pentagon, Washington, DC 20301-1400", PaymentOffice: "DFAS"},
		{Name: "Department of Energy", Department: "DOE", Address: "1000 Independence Ave., SW, Washington, DC 20585", PaymentOffice: "Energy IPP"},
		{Name: "National Aeronautics and Space Administration", Department: "NASA", Address: "300 E Street SW, Washington, DC 20546", PaymentOffice: "NASA NSSC"},
		{Name: "Department of Homeland Security", Department: "DHS", Address: "245 Murray Lane SW, Washington, DC 20528", PaymentOffice: "DHS IPP"},
		{Name: "Environmental Protection Agency", Department: "EPA", Address: "1200 Pennsylvania Avenue, N.W., Washington, DC 20460", PaymentOffice: "EPA IPP"},
		{Name: "Department of Health and Human Services", Department: "HHS", Address: "200 Independence Avenue, S.W., Washington, DC 20201", PaymentOffice: "HHS Payment"},
		{Name: "Department of Veterans Affairs", Department: "VA", Address: "810 Vermont Avenue, NW, Washington, DC 20420", PaymentOffice: "VA FSC"},
		{Name: "National Science Foundation", Department: "NSF", Address: "2415 Eisenhower Avenue, Alexandria, VA 22314", PaymentOffice: "NSF IPP"},
	}

	seedContractTypes = []model.ContractType{
		{Name: "Firm Fixed Price (FFP)", Category: "Fixed Price", BillingRequirements: "Set price for defined scope"},
		{Name: "Cost Plus Fixed Fee (CPFF)", Category: "Cost Reimbursement", BillingRequirements: "Actual costs plus fixed fee percentage"},
		{Name: "Time and Materials (TM)", Category: "Time & Materials", BillingRequirements: "Fixed labor rates plus materials at cost"},
		{Name: "Indefinite Delivery Indefinite Quantity (IDIQ)", Category: "Indefinite Delivery", BillingRequirements: "Framework for future task/delivery orders"},
		{Name: "Fixed Price Incentive (FPI)", Category: "Fixed Price", BillingRequirements: "Base profit with incentives for meeting targets"},
		{Name: "Cost Plus Incentive Fee (CPIF)", Category: "Cost Reimbursement", BillingRequirements: "Actual costs plus variable fee based on objectives"},
		{Name: "Labor Hour (LH)", Category: "Time & Materials", BillingRequirements: "Fixed labor rates only"},
		{Name: "Performance Based Logistics (PBL)", Category: "Other", BillingRequirements: "Based on performance outcomes"},
	}

	seedStatuses      = []string{"Active", "Pending", "Completed"}
	seedOfficers      = []string{"John Smith", "Jane Doe", "Robert Johnson"}
	seedCors          = []string{"Alice Brown", "Charlie Davis", "Eva Wilson"}
	seedClearances    = []string{"Secret", "Top Secret", "Confidential"}
	seedLocations     = []string{"Washington D.C.", "Houston, TX", "Palo Alto, CA"}
	seedNaicsCodes    = []string{"541330", "541715", "541990"}
	seedCategoryNames = []string{"Senior Engineer", "Project Manager", "Research Scientist"}
	seedEducations    = []string{"Bachelor's", "Master's", "PhD"}
	seedRoles         = []string{"Project Lead", "Senior Researcher", "Technical Specialist"}
	seedFinTypes      = []string{model.FinancialTypeRevenue, model.FinancialTypeExpense, model.FinancialTypeBudgetAllocation, model.FinancialTypeInvestment}
	seedExpenseCats   = []string{model.ExpenseCategoryTravel, model.ExpenseCategoryEquipment, model.ExpenseCategorySupplies, model.ExpenseCategoryServices, model.ExpenseCategoryMiscellaneous}
	seedProjStatuses  = []string{"PLANNING", "IN_PROGRESS", "COMPLETED", "ON_HOLD"}
	seedTaskStatuses  = []string{"Not Started", "In Progress", "Completed"}
	seedDeliverables  = []string{"Report", "Presentation", "Software", "Hardware"}
	seedInvStatuses   = []string{"Submitted", "Approved", "Paid"}
	seedModStatuses   = []string{"Pending", "Approved", "Implemented"}
	seedBizTypes      = []string{"Small Business", "Woman-Owned", "Veteran-Owned"}
	seedSubNames      = []string{"TechInnovate Solutions", "GlobalComm Systems", "EcoEnergy Innovations", "DataSmart Analytics", "NanoTech Fabricators"}
	seedSubBizTypes   = []string{"Woman-Owned", "Veteran-Owned", "HUBZone", "8(a)"}
	seedAsgStatuses   = []string{"Active", "Completed", "Terminated"}

	seedCustomStatuses = []model.CustomProjectStatus{
		{Name: "At Risk", Color: "#FFA500"},
		{Name: "Ahead of Schedule", Color: "#008000"},
		{Name: "Delayed", Color: "#FF0000"},
	}
)

func pick(values []string) string {
	return values[rand.Intn(len(values))]
}

// Seed 在单个事务内生成整套示例数据。
// 先建四类基础池（项目群/员工/机构/合同类型），再逐层派生，
// 派生行的外键只指向本轮更早创建的行，保证引用完整
func (s *adminService) Seed(ctx context.Context) (*dto.SeedResult, error) {
	s.opLog.Log("Starting database seeding")

	result := &dto.SeedResult{}
	now := time.Now()

	err := s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// 项目群
		s.opLog.Log("Creating programs")
		programs := make([]model.Program, len(seedPrograms))
		copy(programs, seedPrograms)
		for i := range programs {
			end := seedProgramEnds[i]
			programs[i].EndDate = &end
			s.opLog.LogData("Creating program", map[string]string{"name": programs[i].Name})
			if err := txRepo.Program.Create(ctx, &programs[i]); err != nil {
				return err
			}
		}
		result.Programs = len(programs)
		s.opLog.LogData("Programs created", map[string]int{"count": len(programs)})

		// 员工
		s.opLog.Log("Creating employees")
		employees := make([]model.Employee, len(seedEmployees))
		copy(employees, seedEmployees)
		for i := range employees {
			s.opLog.LogData("Creating employee", map[string]string{"name": employees[i].Name})
			if err := txRepo.Employee.Create(ctx, &employees[i]); err != nil {
				return err
			}
		}
		result.Employees = len(employees)
		s.opLog.LogData("Employees created", map[string]int{"count": len(employees)})

		// 签约机构
		s.opLog.Log("Creating agencies")
		agencies := make([]model.Agency, len(seedAgencies))
		copy(agencies, seedAgencies)
		for i := range agencies {
			if err := txRepo.Agency.Create(ctx, &agencies[i]); err != nil {
				return err
			}
		}
		result.Agencies = len(agencies)
		s.opLog.LogData("Agencies created", map[string]int{"count": len(agencies)})

		// 合同类型
		s.opLog.Log("Creating contract types")
		contractTypes := make([]model.ContractType, len(seedContractTypes))
		copy(contractTypes, seedContractTypes)
		for i := range contractTypes {
			if err := txRepo.ContractType.Create(ctx, &contractTypes[i]); err != nil {
				return err
			}
		}
		result.ContractTypes = len(contractTypes)
		s.opLog.LogData("Contract types created", map[string]int{"count": len(contractTypes)})

		// 合同：每个项目群 2 份
		s.opLog.Log("Creating contracts")
		var contracts []model.Contract
		for _, p := range programs {
			for i := 0; i < 2; i++ {
				contract := model.Contract{
					ProgramID:            p.ProgramID,
					AgencyID:             agencies[rand.Intn(len(agencies))].AgencyID,
					ContractTypeID:       contractTypes[rand.Intn(len(contractTypes))].ContractTypeID,
					ContractNumber:       fmt.Sprintf("CTR-%04d", rand.Intn(10000)),
					Title:                "Contract for " + p.Name,
					StartDate:            now,
					EndDate:              now.AddDate(3, 0, 0),
					TotalValue:           float64(rand.Intn(100000000) + 10000000),
					FundedValue:          float64(rand.Intn(50000000) + 5000000),
					Status:               pick(seedStatuses),
					ContractingOfficer:   pick(seedOfficers),
					CorName:              pick(seedCors),
					SecurityClearanceReq: pick(seedClearances),
					PerformanceLocation:  pick(seedLocations),
					NaicsCode:            pick(seedNaicsCodes),
					SmallBusinessGoalPct: float64(rand.Intn(30) + 10),
					IsClassified:         rand.Float64() < 0.3,
				}
				if err := txRepo.Contract.Create(ctx, &contract); err != nil {
					return err
				}
				contracts = append(contracts, contract)
			}
		}
		result.Contracts = len(contracts)
		s.opLog.LogData("Contracts created", map[string]int{"count": len(contracts)})

		// 劳务类别：每份合同 3 个
		s.opLog.Log("Creating labor categories")
		var laborCategories []model.LaborCategory
		for _, c := range contracts {
			for i := 0; i < 3; i++ {
				category := model.LaborCategory{
					ContractID:    c.ContractID,
					Title:         pick(seedCategoryNames),
					Description:   "Skilled professional for contract execution",
					MinRate:       float64(rand.Intn(50) + 50),
					MaxRate:       float64(rand.Intn(100) + 100),
					EducationReq:  pick(seedEducations),
					ExperienceReq: fmt.Sprintf("%d years", rand.Intn(10)+2),
					ClearanceReq:  pick(seedClearances),
					Active:        rand.Float64() < 0.9,
				}
				if err := txRepo.LaborCategory.Create(ctx, &category); err != nil {
					return err
				}
				laborCategories = append(laborCategories, category)
			}
		}
		result.LaborCategories = len(laborCategories)
		s.opLog.LogData("Labor categories created", map[string]int{"count": len(laborCategories)})

		// 人员分配：每个项目群 3 条；合同与劳务类别成对出现
		s.opLog.Log("Creating personnel")
		var personnel []model.Personnel
		for _, p := range programs {
			for i := 0; i < 3; i++ {
				employee := employees[rand.Intn(len(employees))]
				var contractID, categoryID *string
				for _, c := range contracts {
					if c.ProgramID != p.ProgramID {
						continue
					}
					for _, lc := range laborCategories {
						if lc.ContractID == c.ContractID {
							contractID = &c.ContractID
							categoryID = &lc.LaborCategoryID
							break
						}
					}
					break
				}
				row := model.Personnel{
					ProgramID:       p.ProgramID,
					EmployeeID:      employee.EmployeeID,
					ContractID:      contractID,
					LaborCategoryID: categoryID,
					Role:            pick(seedRoles),
					StartDate:       now,
					AssignmentStart: now,
					BillableRate:    employee.HourlyRate * 2.5,
					ClearanceLevel:  pick(seedClearances),
					CurrentStatus:   true,
				}
				if err := txRepo.Personnel.Create(ctx, &row); err != nil {
					return err
				}
				personnel = append(personnel, row)
			}
		}
		result.Personnel = len(personnel)
		s.opLog.LogData("Personnel created", map[string]int{"count": len(personnel)})

		// 项目：每个项目群 2 个
		s.opLog.Log("Creating projects")
		for _, p := range programs {
			for i := 0; i < 2; i++ {
				project := model.Project{
					ProgramID:   p.ProgramID,
					Name:        fmt.Sprintf("%s - Phase %d", p.Name, rand.Intn(3)+1),
					Description: "A key project under the " + p.Name + " program",
					StartDate:   now,
					EndDate:     now.AddDate(2, 0, 0),
					Budget:      float64(rand.Intn(10000000) + 5000000),
					Status:      pick(seedProjStatuses),
				}
				if err := txRepo.Project.Create(ctx, &project); err != nil {
					return err
				}
				result.Projects++
			}
		}
		s.opLog.LogData("Projects created", map[string]int{"count": result.Projects})

		// 财务数据：每个项目群 5 条
		s.opLog.Log("Creating financial data")
		for _, p := range programs {
			for i := 0; i < 5; i++ {
				data := model.FinancialData{
					ProgramID:   p.ProgramID,
					Type:        pick(seedFinTypes),
					Amount:      float64(rand.Intn(10000000) + 1000000),
					Date:        now,
					Description: "Financial entry for " + p.Name,
				}
				if err := txRepo.FinancialData.Create(ctx, &data); err != nil {
					return err
				}
				result.FinancialData++
			}
		}
		s.opLog.LogData("Financial data created", map[string]int{"count": result.FinancialData})

		// 费用：每个项目群 5 条
		s.opLog.Log("Creating expenses")
		for _, p := range programs {
			for i := 0; i < 5; i++ {
				expense := model.Expense{
					ProgramID:   p.ProgramID,
					Amount:      float64(rand.Intn(500000) + 50000),
					Date:        now,
					Description: "Expense for " + p.Name,
					Category:    pick(seedExpenseCats),
				}
				if err := txRepo.Expense.Create(ctx, &expense); err != nil {
					return err
				}
				result.Expenses++
			}
		}
		s.opLog.LogData("Expenses created", map[string]int{"count": result.Expenses})

		// 工时成本：每条人员分配 5 条
		s.opLog.Log("Creating labor costs")
		for _, row := range personnel {
			for i := 0; i < 5; i++ {
				cost := model.LaborCost{
					ProgramID:   row.ProgramID,
					PersonnelID: row.PersonnelID,
					EmployeeID:  row.EmployeeID,
					Hours:       float64(rand.Intn(40) + 20),
					Date:        now,
				}
				if err := txRepo.LaborCost.Create(ctx, &cost); err != nil {
					return err
				}
				result.LaborCosts++
			}
		}
		s.opLog.LogData("Labor costs created", map[string]int{"count": result.LaborCosts})

		// 设施成本：每个项目群 2 条
		s.opLog.Log("Creating facilities costs")
		for _, p := range programs {
			for i := 0; i < 2; i++ {
				cost := model.FacilitiesCost{
					ProgramID:   p.ProgramID,
					Amount:      float64(rand.Intn(100000) + 10000),
					Date:        now,
					Description: "Facilities cost for " + p.Name,
				}
				if err := txRepo.FacilitiesCost.Create(ctx, &cost); err != nil {
					return err
				}
				result.FacilitiesCosts++
			}
		}
		s.opLog.LogData("Facilities costs created", map[string]int{"count": result.FacilitiesCosts})

		// 任务：每份合同 3 条
		s.opLog.Log("Creating tasks")
		for _, c := range contracts {
			for i := 0; i < 3; i++ {
				task := model.Task{
					ContractID:        c.ContractID,
					Description:       "Task for " + c.Title,
					DueDate:           now.AddDate(0, rand.Intn(12), 0),
					Status:            pick(seedTaskStatuses),
					EstimatedHours:    float64(rand.Intn(100) + 20),
					DeliverableFormat: pick(seedDeliverables),
				}
				if err := txRepo.Task.Create(ctx, &task); err != nil {
					return err
				}
				result.Tasks++
			}
		}
		s.opLog.LogData("Tasks created", map[string]int{"count": result.Tasks})

		// 发票：每份合同 4 条
		s.opLog.Log("Creating invoices")
		for _, c := range contracts {
			for i := 0; i < 4; i++ {
				invoice := model.Invoice{
					ContractID:     c.ContractID,
					InvoiceNumber:  fmt.Sprintf("INV-%04d", rand.Intn(10000)),
					InvoiceDate:    now,
					Amount:         float64(rand.Intn(1000000) + 100000),
					Status:         pick(seedInvStatuses),
					SubmissionDate: now,
					PaymentTerms:   "Net 30",
				}
				if rand.Float64() < 0.7 {
					paid := now.AddDate(0, 0, 30)
					invoice.PaymentDate = &paid
				}
				if err := txRepo.Invoice.Create(ctx, &invoice); err != nil {
					return err
				}
				result.Invoices++
			}
		}
		s.opLog.LogData("Invoices created", map[string]int{"count": result.Invoices})

		// 合同变更：每份合同 2 条（金额可为负）
		s.opLog.Log("Creating modifications")
		for _, c := range contracts {
			for i := 0; i < 2; i++ {
				modification := model.Modification{
					ContractID:    c.ContractID,
					ModNumber:     fmt.Sprintf("MOD-%02d", rand.Intn(100)),
					EffectiveDate: now,
					ValueChange:   float64(rand.Intn(1000000) - 500000),
					Description:   "Modification to " + c.Title,
					Status:        pick(seedModStatuses),
				}
				if err := txRepo.Modification.Create(ctx, &modification); err != nil {
					return err
				}
				result.Modifications++
			}
		}
		s.opLog.LogData("Modifications created", map[string]int{"count": result.Modifications})

		// 分包目标：每份合同 2 条
		s.opLog.Log("Creating subcontracting goals")
		for _, c := range contracts {
			for i := 0; i < 2; i++ {
				goal := model.SubcontractingGoal{
					ContractID:        c.ContractID,
					BusinessType:      pick(seedBizTypes),
					GoalPercentage:    float64(rand.Intn(20) + 5),
					CurrentPercentage: float64(rand.Intn(15)),
					GoalAmount:        float64(rand.Intn(1000000) + 100000),
					CurrentAmount:     float64(rand.Intn(500000) + 50000),
					ReportPeriod:      now,
				}
				if err := txRepo.Subcontracting.CreateGoal(ctx, &goal); err != nil {
					return err
				}
				result.SubcontractingGoals++
			}
		}
		s.opLog.LogData("Subcontracting goals created", map[string]int{"count": result.SubcontractingGoals})

		// 分包商：5 家
		s.opLog.Log("Creating subcontractors")
		var subcontractors []model.Subcontractor
		for i := 0; i < 5; i++ {
			sub := model.Subcontractor{
				Name:          pick(seedSubNames),
				DunsNumber:    fmt.Sprintf("%09d", rand.Intn(1000000000)),
				CageCode:      fmt.Sprintf("%05d", rand.Intn(100000)),
				BusinessSize:  []string{"Small", "Large"}[rand.Intn(2)],
				BusinessTypes: pick(seedSubBizTypes),
				Active:        rand.Float64() < 0.9,
			}
			if err := txRepo.Subcontracting.CreateSubcontractor(ctx, &sub); err != nil {
				return err
			}
			subcontractors = append(subcontractors, sub)
		}
		result.Subcontractors = len(subcontractors)
		s.opLog.LogData("Subcontractors created", map[string]int{"count": result.Subcontractors})

		// 分包商分配：每份合同 2 条
		s.opLog.Log("Creating subcontractor assignments")
		for _, c := range contracts {
			for i := 0; i < 2; i++ {
				end := now.AddDate(1, 0, 0)
				assignment := model.SubcontractorAssignment{
					ContractID:      c.ContractID,
					SubcontractorID: subcontractors[rand.Intn(len(subcontractors))].SubcontractorID,
					StartDate:       now,
					EndDate:         &end,
					PlannedValue:    float64(rand.Intn(1000000) + 100000),
					CurrentValue:    float64(rand.Intn(500000) + 50000),
					Status:          pick(seedAsgStatuses),
				}
				if err := txRepo.Subcontracting.CreateAssignment(ctx, &assignment); err != nil {
					return err
				}
				result.SubcontractorAssignments++
			}
		}
		s.opLog.LogData("Subcontractor assignments created", map[string]int{"count": result.SubcontractorAssignments})

		// 自定义项目状态
		s.opLog.Log("Creating custom project statuses")
		statuses := make([]model.CustomProjectStatus, len(seedCustomStatuses))
		copy(statuses, seedCustomStatuses)
		for i := range statuses {
			if err := txRepo.ProjectStatus.Create(ctx, &statuses[i]); err != nil {
				return err
			}
		}
		result.CustomProjectStatuses = len(statuses)
		s.opLog.LogData("Custom project statuses created", map[string]int{"count": result.CustomProjectStatuses})

		return nil
	})
	if err != nil {
		s.opLog.LogData("Failed to seed database", map[string]string{"error": err.Error()})
		s.logger.Error("生成种子数据失败", zap.Error(err))
		return nil, err
	}

	s.opLog.LogData("Database seeding completed successfully", result)
	if err := s.cache.InvalidatePrefix(ctx, ""); err != nil {
		s.logger.Warn("全量缓存失效失败", zap.Error(err))
	}

	return result, nil
}
