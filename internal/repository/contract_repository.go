package repository

import (
	"context"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

type ContractRepository interface {
	// FindActiveByEmployee excludes Expired subscriptions.
	FindActiveByEmployee(ctx context.Context, employeeCode string) ([]model.Contract, error)
	FindAllByEmployee(ctx context.Context, employeeCode string) ([]model.Contract, error)
}
