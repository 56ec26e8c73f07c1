package repository

import (
	"context"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

type AllocationRepository interface {
	FindByID(ctx context.Context, allocationID uint) (*model.Allocation, error)
}
