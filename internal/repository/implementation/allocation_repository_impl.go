package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

type AllocationRepositoryImpl struct {
	db *gorm.DB
}

func NewAllocationRepository(db *gorm.DB) repository.AllocationRepository {
	return &AllocationRepositoryImpl{db: db}
}

func (r *AllocationRepositoryImpl) FindByID(ctx context.Context, allocationID uint) (*model.Allocation, error) {
	var allocation model.Allocation
	err := r.db.WithContext(ctx).First(&allocation, "AllocationID = ?", allocationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &allocation, nil
}
