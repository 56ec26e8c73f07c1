package implementation

import (
	"context"

	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

type ContractRepositoryImpl struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) repository.ContractRepository {
	return &ContractRepositoryImpl{db: db}
}

func (r *ContractRepositoryImpl) FindActiveByEmployee(ctx context.Context, employeeCode string) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("EmployeeCode = ?", employeeCode).
		Where("SubscriptionStatus != ?", model.SubscriptionExpired).
		Find(&contracts).Error
	return contracts, err
}

func (r *ContractRepositoryImpl) FindAllByEmployee(ctx context.Context, employeeCode string) ([]model.Contract, error) {
	var contracts []model.Contract
	err := r.db.WithContext(ctx).
		Where("EmployeeCode = ?", employeeCode).
		Find(&contracts).Error
	return contracts, err
}
