package implementation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

type StaffRepositoryImpl struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) repository.StaffRepository {
	return &StaffRepositoryImpl{db: db}
}

func (r *StaffRepositoryImpl) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

func (r *StaffRepositoryImpl) FindByEmployeeCode(ctx context.Context, employeeCode string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).First(&staff, "EmployeeCode = ?", employeeCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepositoryImpl) FindByUserName(ctx context.Context, userName string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).First(&staff, "UserName = ?", userName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *StaffRepositoryImpl) FindByEmploymentStatus(ctx context.Context, status string) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).Where("EmploymentStatus = ?", status).Find(&staff).Error
	return staff, err
}

func (r *StaffRepositoryImpl) FindActiveStartedAfter(ctx context.Context, since time.Time) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).
		Where("EmploymentStatus = ?", "Active").
		Where("EmploymentStartDate > ?", since).
		Find(&staff).Error
	return staff, err
}

func (r *StaffRepositoryImpl) FindAll(ctx context.Context) ([]model.Staff, error) {
	var staff []model.Staff
	err := r.db.WithContext(ctx).Find(&staff).Error
	return staff, err
}

func (r *StaffRepositoryImpl) UpdateFields(ctx context.Context, employeeCode string, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Staff{}).
		Where("EmployeeCode = ?", employeeCode).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *StaffRepositoryImpl) SetEmploymentStatus(ctx context.Context, employeeCode, status string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Staff{}).
		Where("EmployeeCode = ?", employeeCode).
		Update("EmploymentStatus", status)
	return result.RowsAffected, result.Error
}

func (r *StaffRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Staff{}).Count(&count).Error
	return count, err
}

func (r *StaffRepositoryImpl) CountWhere(ctx context.Context, conditions map[string]interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Staff{}).Where(conditions).Count(&count).Error
	return count, err
}

func (r *StaffRepositoryImpl) FindAdmins(ctx context.Context) ([]dto.AdminStaffRow, error) {
	var rows []dto.AdminStaffRow
	err := r.db.WithContext(ctx).
		Table("employees e").
		Select("e.FullName, e.Email, e.EmployeeCode, e.RoleID").
		Joins("INNER JOIN roles r ON e.RoleID = r.RoleID").
		Where("r.RoleName = ?", "Admin").
		Where("e.EmploymentStatus = ?", "Active").
		Scan(&rows).Error
	return rows, err
}

func (r *StaffRepositoryImpl) FindWithAirtimeAllocation(ctx context.Context, employeeCode string) ([]dto.StaffAirtimeRow, error) {
	var rows []dto.StaffAirtimeRow
	err := r.db.WithContext(ctx).
		Table("employees e").
		Select("e.EmployeeCode, e.AllocationID, e.FullName, e.PhoneNumber, e.ServicePlan, a.AirtimeAllocation").
		Joins("INNER JOIN allocation a ON e.AllocationID = a.AllocationID").
		Where("e.EmployeeCode = ?", employeeCode).
		Where("e.EmploymentStatus = ?", "Active").
		Scan(&rows).Error
	return rows, err
}

func (r *StaffRepositoryImpl) FindTempRecords(ctx context.Context) ([]model.TempStaffRecord, error) {
	var records []model.TempStaffRecord
	err := r.db.WithContext(ctx).Find(&records).Error
	return records, err
}
