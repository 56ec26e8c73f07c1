package implementation

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
	"github.com/TopNotch-Solutions/ambasphere-backend/pkg/handset"
)

type HandsetRepositoryImpl struct {
	db *gorm.DB
}

func NewHandsetRepository(db *gorm.DB) repository.HandsetRepository {
	return &HandsetRepositoryImpl{db: db}
}

func (r *HandsetRepositoryImpl) Create(ctx context.Context, request *model.HandsetRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *HandsetRepositoryImpl) FindByID(ctx context.Context, id uint) (*model.HandsetRequest, error) {
	var req model.HandsetRequest
	err := r.db.WithContext(ctx).First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *HandsetRepositoryImpl) FindAll(ctx context.Context) ([]model.HandsetRequest, error) {
	var requests []model.HandsetRequest
	err := r.db.WithContext(ctx).Find(&requests).Error
	return requests, err
}

func (r *HandsetRepositoryImpl) FindAllOrdered(ctx context.Context) ([]model.HandsetRequest, error) {
	var requests []model.HandsetRequest
	err := r.db.WithContext(ctx).Order("RequestDate DESC").Find(&requests).Error
	return requests, err
}

func (r *HandsetRepositoryImpl) FindByEmployee(ctx context.Context, employeeCode string) ([]model.HandsetRequest, error) {
	var requests []model.HandsetRequest
	err := r.db.WithContext(ctx).
		Where("EmployeeCode = ?", employeeCode).
		Order("RequestDate DESC").
		Find(&requests).Error
	return requests, err
}

func (r *HandsetRepositoryImpl) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.HandsetRequest{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *HandsetRepositoryImpl) DeleteIfPending(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(handset.StatusPending)).
		Delete(&model.HandsetRequest{})
	return result.RowsAffected, result.Error
}

func (r *HandsetRepositoryImpl) FindReminderWindow(ctx context.Context, from, until time.Time) ([]model.HandsetRequest, error) {
	var requests []model.HandsetRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", string(handset.StatusApproved)).
		Where("RenewalDate > ? AND RenewalDate <= ?", from, until).
		Where("weekNotificationSend = ?", false).
		Find(&requests).Error
	return requests, err
}

func (r *HandsetRepositoryImpl) FindRenewalDue(ctx context.Context, now time.Time) ([]model.HandsetRequest, error) {
	var requests []model.HandsetRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", string(handset.StatusApproved)).
		Where("RenewalDate <= ?", now).
		Where("renewalNotificationSend = ?", false).
		Find(&requests).Error
	return requests, err
}

func (r *HandsetRepositoryImpl) MarkWeekNotificationSent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.HandsetRequest{}).
		Where("id = ?", id).
		Update("weekNotificationSend", true).Error
}

func (r *HandsetRepositoryImpl) MarkRenewalNotificationSent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.HandsetRequest{}).
		Where("id = ?", id).
		Update("renewalNotificationSend", true).Error
}
