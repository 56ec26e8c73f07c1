package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

type IPackageService interface {
	Create(ctx context.Context, req *dto.CreatePackageRequest) (*model.Package, error)
	Update(ctx context.Context, packageID uint, req *dto.UpdatePackageRequest) (*model.Package, error)
	Delete(ctx context.Context, packageID uint) error
	GetByID(ctx context.Context, packageID uint) (*model.Package, error)
	GetAll(ctx context.Context) ([]model.Package, error)
	GetListRows(ctx context.Context) ([]dto.PackageListRow, error)
}

type packageService struct {
	packageRepo repository.PackageRepository
}

func NewPackageService(packageRepo repository.PackageRepository) IPackageService {
	return &packageService{packageRepo: packageRepo}
}

func (s *packageService) Create(ctx context.Context, req *dto.CreatePackageRequest) (*model.Package, error) {
	if req.PaymentPeriod <= 0 {
		return nil, apperror.Validation("payment period must be a positive number of months")
	}

	pkg := &model.Package{
		PackageName:   req.PackageName,
		PaymentPeriod: req.PaymentPeriod,
		MonthlyPrice:  req.MonthlyPrice,
	}
	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, apperror.Dependency("failed to create package", err)
	}
	return pkg, nil
}

func (s *packageService) Update(ctx context.Context, packageID uint, req *dto.UpdatePackageRequest) (*model.Package, error) {
	period, err := normalizePaymentPeriod(req.PaymentPeriod)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"PackageName":   req.PackageName,
		"PaymentPeriod": period,
		"MonthlyPrice":  req.MonthlyPrice,
	}
	if _, err := s.packageRepo.UpdateFields(ctx, packageID, fields); err != nil {
		return nil, apperror.Dependency("failed to update package", err)
	}

	updated, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return nil, apperror.Dependency("failed to load package", err)
	}
	if updated == nil {
		return nil, apperror.NotFound("Package not found")
	}
	return updated, nil
}

func (s *packageService) Delete(ctx context.Context, packageID uint) error {
	rows, err := s.packageRepo.Delete(ctx, packageID)
	if err != nil {
		return apperror.Dependency("failed to delete package", err)
	}
	if rows == 0 {
		return apperror.NotFound("Package not found")
	}
	return nil
}

func (s *packageService) GetByID(ctx context.Context, packageID uint) (*model.Package, error) {
	pkg, err := s.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		return nil, apperror.Dependency("failed to load package", err)
	}
	if pkg == nil {
		return nil, apperror.NotFound("Package not found")
	}
	return pkg, nil
}

func (s *packageService) GetAll(ctx context.Context) ([]model.Package, error) {
	packages, err := s.packageRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Dependency("failed to list packages", err)
	}
	return packages, nil
}

func (s *packageService) GetListRows(ctx context.Context) ([]dto.PackageListRow, error) {
	rows, err := s.packageRepo.FindListRows(ctx)
	if err != nil {
		return nil, apperror.Dependency("failed to list packages", err)
	}
	return rows, nil
}

// normalizePaymentPeriod accepts a numeric month count or the display form
// the contract screen sends back, e.g. "24 months".
func normalizePaymentPeriod(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v <= 0 {
			return 0, apperror.Validation("payment period must be a positive number of months")
		}
		return int(v), nil
	case string:
		trimmed := strings.TrimSpace(v)
		trimmed = strings.TrimSuffix(trimmed, " months")
		trimmed = strings.TrimSuffix(trimmed, " month")
		period, err := strconv.Atoi(strings.TrimSpace(trimmed))
		if err != nil || period <= 0 {
			return 0, apperror.Validation("invalid payment period: '" + v + "'")
		}
		return period, nil
	}
	return 0, apperror.Validation("payment period must be a number or a string like '24 months'")
}
