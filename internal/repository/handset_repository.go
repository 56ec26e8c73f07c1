package repository

import (
	"context"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

type HandsetRepository interface {
	Create(ctx context.Context, request *model.HandsetRequest) error
	FindByID(ctx context.Context, id uint) (*model.HandsetRequest, error)
	FindAll(ctx context.Context) ([]model.HandsetRequest, error)
	FindAllOrdered(ctx context.Context) ([]model.HandsetRequest, error)
	FindByEmployee(ctx context.Context, employeeCode string) ([]model.HandsetRequest, error)

	// UpdateFields applies the resolved field-change set as one conditional
	// UPDATE and reports rows affected, so concurrent mutations of the same
	// id cannot interleave a read-then-write.
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)

	// DeleteIfPending removes the row only while its status is still
	// Pending, in a single statement.
	DeleteIfPending(ctx context.Context, id uint) (int64, error)

	// Renewal reminder scans.
	FindReminderWindow(ctx context.Context, from, until time.Time) ([]model.HandsetRequest, error)
	FindRenewalDue(ctx context.Context, now time.Time) ([]model.HandsetRequest, error)
	MarkWeekNotificationSent(ctx context.Context, id uint) error
	MarkRenewalNotificationSent(ctx context.Context, id uint) error
}
