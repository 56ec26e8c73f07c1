package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/logger"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
	"github.com/TopNotch-Solutions/ambasphere-backend/pkg/handset"
)

type IHandsetService interface {
	CreateRequest(ctx context.Context, req *dto.CreateHandsetRequest) (*model.HandsetRequest, error)
	UpdateRequest(ctx context.Context, id uint, req *dto.UpdateHandsetRequest) (*model.HandsetRequest, error)
	DeleteRequest(ctx context.Context, id uint) error
	GetAll(ctx context.Context) ([]model.HandsetRequest, error)
	GetAllOrdered(ctx context.Context) ([]model.HandsetRequest, error)
	GetByEmployee(ctx context.Context, employeeCode string) ([]model.HandsetRequest, error)
	GetStaffView(ctx context.Context, employeeCode string) (*dto.StaffHandsetsResponse, error)
	GetAllocation(ctx context.Context, allocationID uint) (*model.Allocation, error)
}

type handsetService struct {
	handsetRepo    repository.HandsetRepository
	staffRepo      repository.StaffRepository
	allocationRepo repository.AllocationRepository
	notifier       Notifier
	logger         logger.ILogger
}

func NewHandsetService(
	handsetRepo repository.HandsetRepository,
	staffRepo repository.StaffRepository,
	allocationRepo repository.AllocationRepository,
	notifier Notifier,
	log logger.ILogger,
) IHandsetService {
	return &handsetService{
		handsetRepo:    handsetRepo,
		staffRepo:      staffRepo,
		allocationRepo: allocationRepo,
		notifier:       notifier,
		logger:         log,
	}
}

// CreateRequest registers a new device request. It always starts Pending
// with a server-side request date; the caller cannot pre-approve.
func (s *handsetService) CreateRequest(ctx context.Context, req *dto.CreateHandsetRequest) (*model.HandsetRequest, error) {
	price, err := handset.NormalizePrice(req.HandsetPrice)
	if err != nil {
		return nil, err
	}

	staff, err := s.staffRepo.FindByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff", err)
	}
	if staff == nil {
		return nil, apperror.NotFound("Staff not found")
	}

	request := &model.HandsetRequest{
		EmployeeCode:  req.EmployeeCode,
		AllocationID:  req.AllocationID,
		HandsetName:   req.HandsetName,
		HandsetPrice:  price,
		AccessFeePaid: *req.AccessFeePaid,
		RequestDate:   time.Now(),
		Status:        string(handset.StatusPending),
	}

	if err := s.handsetRepo.Create(ctx, request); err != nil {
		return nil, apperror.Dependency("failed to create handset request", err)
	}

	s.logger.Info("HandsetService", fmt.Sprintf("Handset request %d created for %s", request.ID, request.EmployeeCode), nil)
	return request, nil
}

// UpdateRequest resolves the requested transition and applies it as one
// conditional UPDATE. The Approved/Rejected notification is emitted after
// the row is committed; a notification failure never undoes the update.
func (s *handsetService) UpdateRequest(ctx context.Context, id uint, req *dto.UpdateHandsetRequest) (*model.HandsetRequest, error) {
	target, err := handset.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	var collection *time.Time
	if req.CollectionDate != nil && *req.CollectionDate != "" {
		parsed, err := handset.ParseCollectionDate(*req.CollectionDate)
		if err != nil {
			return nil, err
		}
		collection = &parsed
	}

	outcome, err := handset.Resolve(handset.Update{
		TargetStatus:   target,
		MRNumber:       req.MRNumber,
		CollectionDate: collection,
		FixedAssetCode: req.FixedAssetCode,
	})
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"status": string(outcome.Status),
	}
	if req.MRNumber != nil {
		fields["MRNumber"] = *req.MRNumber
	}
	if req.FixedAssetCode != nil {
		fields["FixedAssetCode"] = *req.FixedAssetCode
	}
	if outcome.CollectionDate != nil {
		fields["CollectionDate"] = *outcome.CollectionDate
	}
	if outcome.RenewalDate != nil {
		fields["RenewalDate"] = *outcome.RenewalDate
	}

	if _, err := s.handsetRepo.UpdateFields(ctx, id, fields); err != nil {
		return nil, apperror.Dependency("failed to update handset request", err)
	}

	// Zero affected rows is ambiguous on MySQL (missing row vs identical
	// values), so the re-read decides: a repeated identical update stays a
	// success, a vanished row is NotFound.
	updated, err := s.handsetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Dependency("failed to load handset request", err)
	}
	if updated == nil {
		return nil, apperror.NotFound("Handset not found")
	}

	s.emitStatusNotice(ctx, updated, outcome)
	return updated, nil
}

func (s *handsetService) emitStatusNotice(ctx context.Context, request *model.HandsetRequest, outcome handset.Outcome) {
	var notifType, message string

	switch outcome.Notice {
	case handset.NoticeApproved:
		collection := time.Now()
		if request.CollectionDate != nil {
			collection = *request.CollectionDate
		}
		notifType = model.NotificationHandsetApproved
		message = handset.ApprovedMessage(collection)
	case handset.NoticeRejected:
		notifType = model.NotificationHandsetRejected
		message = handset.RejectedMessage()
	default:
		return
	}

	err := s.notifier.Notify(ctx, request.EmployeeCode, notifType, message, map[string]interface{}{
		"handset_id": request.ID,
		"status":     request.Status,
	})
	if err != nil {
		s.logger.Error("HandsetService", fmt.Sprintf("Failed to emit %s notification for handset %d", notifType, request.ID), map[string]interface{}{"error": err.Error()})
	}
}

// DeleteRequest removes a request only while it is still Pending. The
// status guard lives in the DELETE statement itself, so a concurrent
// approval cannot slip between a check and the delete.
func (s *handsetService) DeleteRequest(ctx context.Context, id uint) error {
	rows, err := s.handsetRepo.DeleteIfPending(ctx, id)
	if err != nil {
		return apperror.Dependency("failed to delete handset request", err)
	}
	if rows > 0 {
		return nil
	}

	existing, err := s.handsetRepo.FindByID(ctx, id)
	if err != nil {
		return apperror.Dependency("failed to load handset request", err)
	}
	if existing == nil {
		return apperror.NotFound("Handset not found")
	}
	return handset.CanDelete(handset.Status(existing.Status))
}

func (s *handsetService) GetAll(ctx context.Context) ([]model.HandsetRequest, error) {
	requests, err := s.handsetRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Dependency("failed to list handset requests", err)
	}
	return requests, nil
}

func (s *handsetService) GetAllOrdered(ctx context.Context) ([]model.HandsetRequest, error) {
	requests, err := s.handsetRepo.FindAllOrdered(ctx)
	if err != nil {
		return nil, apperror.Dependency("failed to list handset requests", err)
	}
	return requests, nil
}

func (s *handsetService) GetByEmployee(ctx context.Context, employeeCode string) ([]model.HandsetRequest, error) {
	requests, err := s.handsetRepo.FindByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to list handset requests", err)
	}
	return requests, nil
}

// GetStaffView assembles the employee dashboard block: their requests,
// the tier's handset ceiling and the two-year eligibility window from
// employment start.
func (s *handsetService) GetStaffView(ctx context.Context, employeeCode string) (*dto.StaffHandsetsResponse, error) {
	staff, err := s.staffRepo.FindByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff", err)
	}
	if staff == nil {
		return nil, apperror.NotFound("Staff not found")
	}
	if staff.EmploymentStartDate == nil {
		return nil, apperror.Validation("staff member has no employment start date on record")
	}

	allocation, err := s.allocationRepo.FindByID(ctx, staff.AllocationID)
	if err != nil {
		return nil, apperror.Dependency("failed to look up allocation tier", err)
	}
	if allocation == nil {
		return nil, apperror.NotFound("Allocation not found")
	}

	requests, err := s.handsetRepo.FindByEmployee(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to list handset requests", err)
	}

	status := 1
	if len(requests) > 0 {
		status = 2
	}

	start := *staff.EmploymentStartDate
	twoYears := handset.RenewalDate(start)

	return &dto.StaffHandsetsResponse{
		Status:              status,
		Handsets:            requests,
		HandsetAllocation:   allocation.HandsetAllocation,
		EmploymentStartDate: start.Format("2006-01-02"),
		TwoYearsLater:       twoYears.Format("2006-01-02"),
	}, nil
}

func (s *handsetService) GetAllocation(ctx context.Context, allocationID uint) (*model.Allocation, error) {
	allocation, err := s.allocationRepo.FindByID(ctx, allocationID)
	if err != nil {
		return nil, apperror.Dependency("failed to look up allocation tier", err)
	}
	if allocation == nil {
		return nil, apperror.NotFound("Allocation not found")
	}
	return allocation, nil
}
