package repository

import (
	"context"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *model.Package) error
	FindByID(ctx context.Context, packageID uint) (*model.Package, error)
	FindAll(ctx context.Context) ([]model.Package, error)
	FindListRows(ctx context.Context) ([]dto.PackageListRow, error)
	UpdateFields(ctx context.Context, packageID uint, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, packageID uint) (int64, error)
}
