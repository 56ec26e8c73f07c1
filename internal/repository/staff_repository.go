package repository

import (
	"context"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	FindByEmployeeCode(ctx context.Context, employeeCode string) (*model.Staff, error)
	FindByUserName(ctx context.Context, userName string) (*model.Staff, error)
	FindByEmploymentStatus(ctx context.Context, status string) ([]model.Staff, error)
	FindActiveStartedAfter(ctx context.Context, since time.Time) ([]model.Staff, error)
	FindAll(ctx context.Context) ([]model.Staff, error)

	// UpdateFields applies a partial update to the staff row.
	UpdateFields(ctx context.Context, employeeCode string, fields map[string]interface{}) (int64, error)
	SetEmploymentStatus(ctx context.Context, employeeCode, status string) (int64, error)

	Count(ctx context.Context) (int64, error)
	CountWhere(ctx context.Context, conditions map[string]interface{}) (int64, error)

	FindAdmins(ctx context.Context) ([]dto.AdminStaffRow, error)
	FindWithAirtimeAllocation(ctx context.Context, employeeCode string) ([]dto.StaffAirtimeRow, error)

	// Bulk import staging.
	FindTempRecords(ctx context.Context) ([]model.TempStaffRecord, error)
}
