package implementation

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByRecipient(ctx context.Context, employeeCode string, limit, offset int) ([]model.Notification, int64, error) {
	var notifications []model.Notification
	var total int64

	db := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("RecipientEmployeeCode = ?", employeeCode)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("Created_At DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *NotificationRepositoryImpl) UnreadCount(ctx context.Context, employeeCode string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("RecipientEmployeeCode = ? AND Viewed = ?", employeeCode, false).
		Count(&count).Error
	return count, err
}

func (r *NotificationRepositoryImpl) MarkViewed(ctx context.Context, id uuid.UUID, employeeCode string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("id = ? AND RecipientEmployeeCode = ?", id, employeeCode).
		Update("Viewed", true)

	return result.RowsAffected, result.Error
}

func (r *NotificationRepositoryImpl) MarkAllViewed(ctx context.Context, employeeCode string) error {
	return r.db.WithContext(ctx).
		Model(&model.Notification{}).
		Where("RecipientEmployeeCode = ? AND Viewed = ?", employeeCode, false).
		Update("Viewed", true).Error
}
