package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/logger"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/role"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

type IStaffService interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*model.Staff, error)
	Update(ctx context.Context, employeeCode string, req *dto.UpdateStaffRequest) (*model.Staff, error)
	SetInactive(ctx context.Context, employeeCode string) error
	GetByEmployeeCode(ctx context.Context, employeeCode string) (*model.Staff, error)
	GetAll(ctx context.Context) ([]model.Staff, error)
	GetActive(ctx context.Context) ([]model.Staff, error)
	GetNew(ctx context.Context) ([]model.Staff, error)
	GetRetired(ctx context.Context) ([]model.Staff, error)
	GetAdmins(ctx context.Context) ([]dto.AdminStaffRow, error)

	CountAll(ctx context.Context) (int64, error)
	CountByGender(ctx context.Context, gender string) (int64, error)
	CountByEmploymentCategory(ctx context.Context, category string) (int64, error)
	CountByEmploymentStatus(ctx context.Context, status string) (int64, error)
	CountByServicePlan(ctx context.Context, plan string) (int64, error)

	ImportTempRecords(ctx context.Context) (*dto.ImportResult, error)
}

type staffService struct {
	staffRepo repository.StaffRepository
	logger    logger.ILogger
}

func NewStaffService(staffRepo repository.StaffRepository, log logger.ILogger) IStaffService {
	return &staffService{staffRepo: staffRepo, logger: log}
}

// Create registers a staff member. New accounts get a bcrypt hash of their
// employee code as the initial password; the portal forces a change on
// first login.
func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest) (*model.Staff, error) {
	existing, err := s.staffRepo.FindByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff", err)
	}
	if existing != nil {
		return nil, apperror.InvalidState("staff member '" + req.EmployeeCode + "' already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.EmployeeCode), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Dependency("failed to hash initial password", err)
	}
	password := string(hash)

	status := req.EmploymentStatus
	if status == "" {
		status = "Active"
	}

	staff := &model.Staff{
		EmployeeCode:       req.EmployeeCode,
		RoleID:             req.RoleID,
		AllocationID:       req.AllocationID,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		FullName:           req.FullName,
		UserName:           deriveUserName(req.FirstName, req.LastName),
		Password:           &password,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Gender:             req.Gender,
		ServicePlan:        req.ServicePlan,
		Position:           req.Position,
		Department:         req.Department,
		Division:           req.Division,
		EmploymentCategory: req.EmploymentCategory,
		EmploymentStatus:   status,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, apperror.Dependency("failed to create staff member", err)
	}

	s.logger.Info("StaffService", fmt.Sprintf("Staff member %s created", staff.EmployeeCode), nil)
	return staff, nil
}

// Update applies the permitted partial fields. Identity, role and tier are
// immutable through this path.
func (s *staffService) Update(ctx context.Context, employeeCode string, req *dto.UpdateStaffRequest) (*model.Staff, error) {
	fields := map[string]interface{}{}
	if req.LastName != nil {
		fields["LastName"] = *req.LastName
	}
	if req.PhoneNumber != nil {
		fields["PhoneNumber"] = *req.PhoneNumber
	}
	if req.ServicePlan != nil {
		fields["ServicePlan"] = *req.ServicePlan
	}
	if req.Position != nil {
		fields["Position"] = *req.Position
	}
	if req.Division != nil {
		fields["Division"] = *req.Division
	}
	if req.EmploymentCategory != nil {
		fields["EmploymentCategory"] = *req.EmploymentCategory
	}
	if req.EmploymentStatus != nil {
		fields["EmploymentStatus"] = *req.EmploymentStatus
	}
	if req.Department != nil {
		fields["Department"] = *req.Department
	}
	if len(fields) == 0 {
		return nil, apperror.Validation("no updatable fields supplied")
	}

	if _, err := s.staffRepo.UpdateFields(ctx, employeeCode, fields); err != nil {
		return nil, apperror.Dependency("failed to update staff member", err)
	}

	updated, err := s.staffRepo.FindByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to load staff member", err)
	}
	if updated == nil {
		return nil, apperror.NotFound("Staff not found")
	}
	return updated, nil
}

// SetInactive soft-removes a staff member. Their rows stay for history;
// login and budget listings filter on EmploymentStatus.
func (s *staffService) SetInactive(ctx context.Context, employeeCode string) error {
	rows, err := s.staffRepo.SetEmploymentStatus(ctx, employeeCode, "Inactive")
	if err != nil {
		return apperror.Dependency("failed to deactivate staff member", err)
	}
	if rows == 0 {
		existing, err := s.staffRepo.FindByEmployeeCode(ctx, employeeCode)
		if err != nil {
			return apperror.Dependency("failed to load staff member", err)
		}
		if existing == nil {
			return apperror.NotFound("Staff not found")
		}
	}
	return nil
}

func (s *staffService) GetByEmployeeCode(ctx context.Context, employeeCode string) (*model.Staff, error) {
	staff, err := s.staffRepo.FindByEmployeeCode(ctx, employeeCode)
	if err != nil {
		return nil, apperror.Dependency("failed to look up staff", err)
	}
	if staff == nil {
		return nil, apperror.NotFound("Staff not found")
	}
	return staff, nil
}

func (s *staffService) GetAll(ctx context.Context) ([]model.Staff, error) {
	staff, err := s.staffRepo.FindAll(ctx)
	if err != nil {
		return nil, apperror.Dependency("failed to list staff", err)
	}
	return staff, nil
}

func (s *staffService) GetActive(ctx context.Context) ([]model.Staff, error) {
	staff, err := s.staffRepo.FindByEmploymentStatus(ctx, "Active")
	if err != nil {
		return nil, apperror.Dependency("failed to list staff", err)
	}
	return staff, nil
}

// GetNew lists active staff who started within the last year.
func (s *staffService) GetNew(ctx context.Context) ([]model.Staff, error) {
	staff, err := s.staffRepo.FindActiveStartedAfter(ctx, time.Now().AddDate(-1, 0, 0))
	if err != nil {
		return nil, apperror.Dependency("failed to list staff", err)
	}
	return staff, nil
}

func (s *staffService) GetRetired(ctx context.Context) ([]model.Staff, error) {
	staff, err := s.staffRepo.FindByEmploymentStatus(ctx, "Retired")
	if err != nil {
		return nil, apperror.Dependency("failed to list staff", err)
	}
	return staff, nil
}

func (s *staffService) GetAdmins(ctx context.Context) ([]dto.AdminStaffRow, error) {
	admins, err := s.staffRepo.FindAdmins(ctx)
	if err != nil {
		return nil, apperror.Dependency("failed to list administrators", err)
	}
	return admins, nil
}

func (s *staffService) CountAll(ctx context.Context) (int64, error) {
	count, err := s.staffRepo.Count(ctx)
	if err != nil {
		return 0, apperror.Dependency("failed to count staff", err)
	}
	return count, nil
}

func (s *staffService) CountByGender(ctx context.Context, gender string) (int64, error) {
	count, err := s.staffRepo.CountWhere(ctx, map[string]interface{}{"Gender": gender})
	if err != nil {
		return 0, apperror.Dependency("failed to count staff", err)
	}
	return count, nil
}

func (s *staffService) CountByEmploymentCategory(ctx context.Context, category string) (int64, error) {
	count, err := s.staffRepo.CountWhere(ctx, map[string]interface{}{"EmploymentCategory": category})
	if err != nil {
		return 0, apperror.Dependency("failed to count staff", err)
	}
	return count, nil
}

func (s *staffService) CountByEmploymentStatus(ctx context.Context, status string) (int64, error) {
	count, err := s.staffRepo.CountWhere(ctx, map[string]interface{}{"EmploymentStatus": status})
	if err != nil {
		return 0, apperror.Dependency("failed to count staff", err)
	}
	return count, nil
}

func (s *staffService) CountByServicePlan(ctx context.Context, plan string) (int64, error) {
	count, err := s.staffRepo.CountWhere(ctx, map[string]interface{}{"ServicePlan": plan})
	if err != nil {
		return 0, apperror.Dependency("failed to count staff", err)
	}
	return count, nil
}

// ImportTempRecords promotes staged HR rows into staff accounts. Existing
// employee codes are skipped, so the import is rerunnable.
func (s *staffService) ImportTempRecords(ctx context.Context) (*dto.ImportResult, error) {
	records, err := s.staffRepo.FindTempRecords(ctx)
	if err != nil {
		return nil, apperror.Dependency("failed to read staging records", err)
	}

	result := &dto.ImportResult{}
	for _, rec := range records {
		existing, err := s.staffRepo.FindByEmployeeCode(ctx, rec.EmployeeCode)
		if err != nil {
			return nil, apperror.Dependency("failed to look up staff", err)
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(rec.EmployeeCode), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.Dependency("failed to hash initial password", err)
		}
		password := string(hash)

		staff := &model.Staff{
			EmployeeCode:       rec.EmployeeCode,
			RoleID:             int(role.User),
			AllocationID:       importAllocationID,
			FirstName:          rec.FirstName,
			LastName:           rec.LastName,
			FullName:           strings.TrimSpace(rec.FirstName + " " + rec.LastName),
			UserName:           deriveUserName(rec.FirstName, rec.LastName),
			Email:              deriveEmail(rec.FirstName, rec.LastName),
			Password:           &password,
			PhoneNumber:        rec.Cellphone,
			ServicePlan:        "Prepaid",
			Position:           rec.Department,
			Department:         rec.Department,
			EmploymentCategory: "Temporary",
			EmploymentStatus:   "Active",
		}
		if err := s.staffRepo.Create(ctx, staff); err != nil {
			s.logger.Error("StaffService", fmt.Sprintf("Failed to import staged record %s", rec.EmployeeCode), map[string]interface{}{"error": err.Error()})
			result.Skipped++
			continue
		}
		result.Inserted++
	}

	s.logger.Info("StaffService", "Staff import finished", map[string]interface{}{
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
	})
	return result, nil
}

// importAllocationID is the default tier for imported temporary staff.
const importAllocationID = 5

// deriveUserName builds the portal login name: surname plus the first
// initial, e.g. "Shikongo" + "Maria" -> "ShikongoM".
func deriveUserName(firstName, lastName string) string {
	first := strings.TrimSpace(firstName)
	last := strings.TrimSpace(lastName)
	if first == "" {
		return last
	}
	return last + strings.ToUpper(first[:1])
}

// deriveEmail builds the corporate address: first initial plus surname,
// e.g. "mshikongo@mtc.com.na".
func deriveEmail(firstName, lastName string) string {
	first := strings.TrimSpace(firstName)
	last := strings.ToLower(strings.TrimSpace(lastName))
	if first == "" {
		return last + "@mtc.com.na"
	}
	return strings.ToLower(first[:1]) + last + "@mtc.com.na"
}
