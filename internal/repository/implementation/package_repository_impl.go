package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

type PackageRepositoryImpl struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &PackageRepositoryImpl{db: db}
}

func (r *PackageRepositoryImpl) Create(ctx context.Context, pkg *model.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *PackageRepositoryImpl) FindByID(ctx context.Context, packageID uint) (*model.Package, error) {
	var pkg model.Package
	err := r.db.WithContext(ctx).First(&pkg, "PackageID = ?", packageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *PackageRepositoryImpl) FindAll(ctx context.Context) ([]model.Package, error) {
	var packages []model.Package
	err := r.db.WithContext(ctx).Find(&packages).Error
	return packages, err
}

func (r *PackageRepositoryImpl) FindListRows(ctx context.Context) ([]dto.PackageListRow, error) {
	var rows []dto.PackageListRow
	err := r.db.WithContext(ctx).
		Model(&model.Package{}).
		Select("PackageID, PackageName, MonthlyPrice").
		Scan(&rows).Error
	return rows, err
}

func (r *PackageRepositoryImpl) UpdateFields(ctx context.Context, packageID uint, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Package{}).
		Where("PackageID = ?", packageID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *PackageRepositoryImpl) Delete(ctx context.Context, packageID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("PackageID = ?", packageID).
		Delete(&model.Package{})
	return result.RowsAffected, result.Error
}
