package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/morbidsteve/business-analyst/backend/internal/model"
)

// ── 基础字典数据访问（签约机构 / 合同类型） ──

// AgencyRepository 签约机构数据访问接口
type AgencyRepository interface {
	Create(ctx context.Context, agency *model.Agency) error
	GetByID(ctx context.Context, id string) (*model.Agency, error)
	List(ctx context.Context) ([]model.Agency, error)
}

type agencyRepo struct {
	db *gorm.DB
}

// NewAgencyRepo 创建 AgencyRepository 实例
func NewAgencyRepo(db *gorm.DB) AgencyRepository {
	return &agencyRepo{db: db}
}

func (r *agencyRepo) Create(ctx context.Context, agency *model.Agency) error {
	return r.db.WithContext(ctx).Create(agency).Error
}

func (r *agencyRepo) GetByID(ctx context.Context, id string) (*model.Agency, error) {
	var agency model.Agency
	err := r.db.WithContext(ctx).
		Where("agency_id = ?", id).
		First(&agency).Error
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *agencyRepo) List(ctx context.Context) ([]model.Agency, error) {
	var agencies []model.Agency
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&agencies).Error
	return agencies, err
}

// ContractTypeRepository 合同类型数据访问接口
type ContractTypeRepository interface {
	Create(ctx context.Context, contractType *model.ContractType) error
	GetByID(ctx context.Context, id string) (*model.ContractType, error)
	List(ctx context.Context) ([]model.ContractType, error)
}

type contractTypeRepo struct {
	db *gorm.DB
}

// NewContractTypeRepo 创建 ContractTypeRepository 实例
func NewContractTypeRepo(db *gorm.DB) ContractTypeRepository {
	return &contractTypeRepo{db: db}
}

func (r *contractTypeRepo) Create(ctx context.Context, contractType *model.ContractType) error {
	return r.db.WithContext(ctx).Create(contractType).Error
}

func (r *contractTypeRepo) GetByID(ctx context.Context, id string) (*model.ContractType, error) {
	var contractType model.ContractType
	err := r.db.WithContext(ctx).
		Where("contract_type_id = ?", id).
		First(&contractType).Error
	if err != nil {
		return nil, err
	}
	return &contractType, nil
}

func (r *contractTypeRepo) List(ctx context.Context) ([]model.ContractType, error) {
	var types []model.ContractType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&types).Error
	return types, err
}
