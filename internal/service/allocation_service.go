package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
	"github.com/TopNotch-Solutions/ambasphere-backend/pkg/allocation"

	gocache "github.com/patrickmn/go-cache"
)

type IAllocationService interface {
	ComputeAvailableBudget(ctx context.Context, employeeCode string) (*dto.BudgetResponse, error)
	GetStaffAirtime(ctx context.Context, employeeCode string) ([]dto.StaffAirtimeRow, error)
	GetTier(ctx context.Context, allocationID uint) (*model.Allocation, error)
	GetContracts(ctx context.Context, employeeCode string) ([]model.Contract, error)
}

// allocationService answers budget questions. Allocation tiers are a small,
// rarely edited lookup table, so they are cached; the contract sum is always
// read fresh because the figure is advisory and should track recent signups.
type allocationService struct {
	staffRepo      repository.StaffRepository
	allocationRepo repository.AllocationRepository
	contractRepo   repository.ContractRepository
	calculator     allocation.Calculator
	tierCache      *gocache.Cache
}

const tierCacheTTL = 5 * time.Minute

func NewAllocationService(
	staffRepo repository.StaffRepository,
	allocationRepo repository.AllocationRepository,
	contractRepo repository.ContractRepository,
	reservedFraction float64,
) IAllocationService {
	return &allocationService{
		staffRepo:      staffRepo,
		allocationRepo: allocationRepo,
		contractRepo:   contractRepo,
		calculator:     allocation.NewCalculator(reservedFraction),
		tierCache:      gocache.New(tierCacheTTL, 10*time.Minute),
	}
}

// ComputeAvailableBudget returns the employee's remaining airtime budget:
// the reserved fraction of their tier ceiling minus the monthly payments of
// every non-expired contract.
func (s *allocationService) ComputeAvailableBudget(ctx context.Context, employeeCode string) (*dto.BudgetResponse, error) {
	rows, err := s.staffRepo.FindWithAirtimeAllocation(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff allocation", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NotFound("Staff not found")
	}

	tier, err := s.GetTier(ctx, rows[0].AllocationID)
	if err != nil {
		return nil, err
	}

	contracts, err := s.contractRepo.FindActiveByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to list contracts", err)
	}

	payments := make([]float64, 0, len(contracts))
	for _, c := range contracts {
		payments = append(payments, c.MonthlyPayment)
	}

	return &dto.BudgetResponse{
		StaffWithAirtimeAllocation: rows,
		HandsetAllocation:          tier.HandsetAllocation,
		Available:                  s.calculator.Available(tier.AirtimeAllocation, payments),
	}, nil
}

// GetStaffAirtime returns the staff-with-airtime join rows without running
// the budget calculation. The handset screen only needs the tier figures.
func (s *allocationService) GetStaffAirtime(ctx context.Context, employeeCode string) ([]dto.StaffAirtimeRow, error) {
	rows, err := s.staffRepo.FindWithAirtimeAllocation(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff allocation", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NotFound("Staff not found")
	}
	return rows, nil
}

func (s *allocationService) GetTier(ctx context.Context, allocationID uint) (*model.Allocation, error) {
	key := fmt.Sprintf("allocation:%d", allocationID)
	if cached, found := s.tierCache.Get(key); found {
		return cached.(*model.Allocation), nil
	}

	tier, err := s.allocationRepo.FindByID(ctx, allocationID)
	if err != nil {
		return nil, apperror.Dependency("failed to look up allocation tier", err)
	}
	if tier == nil {
		return nil, apperror.NotFound("Allocation not found")
	}

	s.tierCache.Set(key, tier, gocache.DefaultExpiration)
	return tier, nil
}

func (s *allocationService) GetContracts(ctx context.Context, employeeCode string) ([]model.Contract, error) {
	contracts, err := s.contractRepo.FindAllByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to list contracts", err)
	}
	return contracts, nil
}
