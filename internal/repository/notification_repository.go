package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByRecipient(ctx context.Context, employeeCode string, limit, offset int) ([]model.Notification, int64, error)
	UnreadCount(ctx context.Context, employeeCode string) (int64, error)
	MarkViewed(ctx context.Context, id uuid.UUID, employeeCode string) (int64, error)
	MarkAllViewed(ctx context.Context, employeeCode string) error
}
