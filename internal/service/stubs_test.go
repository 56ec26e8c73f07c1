package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

// Shared in-memory stand-ins for the repository contracts. Only the methods
// a test path touches carry behavior; the rest return zero values.

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type sentNotification struct {
	EmployeeCode string
	Type         string
	Message      string
}

type recordingNotifier struct {
	sent []sentNotification
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, employeeCode, notifType, msg string, metadata map[string]interface{}) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentNotification{EmployeeCode: employeeCode, Type: notifType, Message: msg})
	return nil
}

type stubHandsetRepo struct {
	byID   map[uint]*model.HandsetRequest
	nextID uint
}

func newStubHandsetRepo() *stubHandsetRepo {
	return &stubHandsetRepo{byID: map[uint]*model.HandsetRequest{}, nextID: 1}
}

func (r *stubHandsetRepo) Create(ctx context.Context, request *model.HandsetRequest) error {
	request.ID = r.nextID
	r.nextID++
	cp := *request
	r.byID[request.ID] = &cp
	return nil
}

func (r *stubHandsetRepo) FindByID(ctx context.Context, id uint) (*model.HandsetRequest, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *h
	return &cp, nil
}

func (r *stubHandsetRepo) FindAll(ctx context.Context) ([]model.HandsetRequest, error) {
	var out []model.HandsetRequest
	for _, h := range r.byID {
		out = append(out, *h)
	}
	return out, nil
}

func (r *stubHandsetRepo) FindAllOrdered(ctx context.Context) ([]model.HandsetRequest, error) {
	return r.FindAll(ctx)
}

func (r *stubHandsetRepo) FindByEmployee(ctx context.Context, employeeCode string) ([]model.HandsetRequest, error) {
	var out []model.HandsetRequest
	for _, h := range r.byID {
		if h.EmployeeCode == employeeCode {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHandsetRepo) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	h, ok := r.byID[id]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "status":
			h.Status = v.(string)
		case "MRNumber":
			s := v.(string)
			h.MRNumber = &s
		case "FixedAssetCode":
			s := v.(string)
			h.FixedAssetCode = &s
		case "CollectionDate":
			t := v.(time.Time)
			h.CollectionDate = &t
		case "RenewalDate":
			t := v.(time.Time)
			h.RenewalDate = &t
		}
	}
	return 1, nil
}

func (r *stubHandsetRepo) DeleteIfPending(ctx context.Context, id uint) (int64, error) {
	h, ok := r.byID[id]
	if !ok || h.Status != "Pending" {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func (r *stubHandsetRepo) FindReminderWindow(ctx context.Context, from, until time.Time) ([]model.HandsetRequest, error) {
	var out []model.HandsetRequest
	for _, h := range r.byID {
		if h.Status != "Approved" || h.RenewalDate == nil || h.WeekNotificationSent {
			continue
		}
		if !h.RenewalDate.Before(from) && !h.RenewalDate.After(until) {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHandsetRepo) FindRenewalDue(ctx context.Context, now time.Time) ([]model.HandsetRequest, error) {
	var out []model.HandsetRequest
	for _, h := range r.byID {
		if h.Status != "Approved" || h.RenewalDate == nil || h.RenewalNotificationSent {
			continue
		}
		if !h.RenewalDate.After(now) {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *stubHandsetRepo) MarkWeekNotificationSent(ctx context.Context, id uint) error {
	if h, ok := r.byID[id]; ok {
		h.WeekNotificationSent = true
	}
	return nil
}

func (r *stubHandsetRepo) MarkRenewalNotificationSent(ctx context.Context, id uint) error {
	if h, ok := r.byID[id]; ok {
		h.RenewalNotificationSent = true
	}
	return nil
}

type stubStaffRepo struct {
	byCode   map[string]*model.Staff
	airtime  map[string][]dto.StaffAirtimeRow
	tempRows []model.TempStaffRecord
}

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{
		byCode:  map[string]*model.Staff{},
		airtime: map[string][]dto.StaffAirtimeRow{},
	}
}

func (r *stubStaffRepo) Create(ctx context.Context, staff *model.Staff) error {
	cp := *staff
	r.byCode[staff.EmployeeCode] = &cp
	return nil
}

func (r *stubStaffRepo) FindByEmployeeCode(ctx context.Context, employeeCode string) (*model.Staff, error) {
	s, ok := r.byCode[employeeCode]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *stubStaffRepo) FindByUserName(ctx context.Context, userName string) (*model.Staff, error) {
	for _, s := range r.byCode {
		if s.UserName == userName {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubStaffRepo) FindByEmploymentStatus(ctx context.Context, status string) ([]model.Staff, error) {
	var out []model.Staff
	for _, s := range r.byCode {
		if s.EmploymentStatus == status {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStaffRepo) FindActiveStartedAfter(ctx context.Context, since time.Time) ([]model.Staff, error) {
	var out []model.Staff
	for _, s := range r.byCode {
		if s.EmploymentStatus == "Active" && s.EmploymentStartDate != nil && s.EmploymentStartDate.After(since) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *stubStaffRepo) FindAll(ctx context.Context) ([]model.Staff, error) {
	var out []model.Staff
	for _, s := range r.byCode {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubStaffRepo) UpdateFields(ctx context.Context, employeeCode string, fields map[string]interface{}) (int64, error) {
	s, ok := r.byCode[employeeCode]
	if !ok {
		return 0, nil
	}
	for k, v := range fields {
		switch k {
		case "LastName":
			s.LastName = v.(string)
		case "PhoneNumber":
			s.PhoneNumber = v.(string)
		case "Position":
			s.Position = v.(string)
		case "Department":
			s.Department = v.(string)
		case "EmploymentStatus":
			s.EmploymentStatus = v.(string)
		case "Password":
			p := v.(string)
			s.Password = &p
		}
	}
	return 1, nil
}

func (r *stubStaffRepo) SetEmploymentStatus(ctx context.Context, employeeCode, status string) (int64, error) {
	s, ok := r.byCode[employeeCode]
	if !ok {
		return 0, nil
	}
	s.EmploymentStatus = status
	return 1, nil
}

func (r *stubStaffRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byCode)), nil
}

func (r *stubStaffRepo) CountWhere(ctx context.Context, conditions map[string]interface{}) (int64, error) {
	var count int64
	for _, s := range r.byCode {
		match := true
		for k, v := range conditions {
			switch k {
			case "Gender":
				match = match && s.Gender == v.(string)
			case "EmploymentCategory":
				match = match && s.EmploymentCategory == v.(string)
			case "EmploymentStatus":
				match = match && s.EmploymentStatus == v.(string)
			case "ServicePlan":
				match = match && s.ServicePlan == v.(string)
			}
		}
		if match {
			count++
		}
	}
	return count, nil
}

func (r *stubStaffRepo) FindAdmins(ctx context.Context) ([]dto.AdminStaffRow, error) {
	return nil, nil
}

func (r *stubStaffRepo) FindWithAirtimeAllocation(ctx context.Context, employeeCode string) ([]dto.StaffAirtimeRow, error) {
	return r.airtime[employeeCode], nil
}

func (r *stubStaffRepo) FindTempRecords(ctx context.Context) ([]model.TempStaffRecord, error) {
	return r.tempRows, nil
}

type stubAllocationRepo struct {
	byID  map[uint]*model.Allocation
	reads int
}

func newStubAllocationRepo() *stubAllocationRepo {
	return &stubAllocationRepo{byID: map[uint]*model.Allocation{}}
}

func (r *stubAllocationRepo) FindByID(ctx context.Context, allocationID uint) (*model.Allocation, error) {
	r.reads++
	a, ok := r.byID[allocationID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

type stubContractRepo struct {
	byEmployee map[string][]model.Contract
}

func newStubContractRepo() *stubContractRepo {
	return &stubContractRepo{byEmployee: map[string][]model.Contract{}}
}

func (r *stubContractRepo) FindActiveByEmployee(ctx context.Context, employeeCode string) ([]model.Contract, error) {
	var out []model.Contract
	for _, c := range r.byEmployee[employeeCode] {
		if c.SubscriptionStatus != model.SubscriptionExpired {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubContractRepo) FindAllByEmployee(ctx context.Context, employeeCode string) ([]model.Contract, error) {
	return r.byEmployee[employeeCode], nil
}

type stubNotificationRepo struct {
	created []model.Notification
}

func (r *stubNotificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	r.created = append(r.created, *notification)
	return nil
}

func (r *stubNotificationRepo) FindByRecipient(ctx context.Context, employeeCode string, limit, offset int) ([]model.Notification, int64, error) {
	var out []model.Notification
	for _, n := range r.created {
		if n.RecipientEmployeeCode == employeeCode {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubNotificationRepo) UnreadCount(ctx context.Context, employeeCode string) (int64, error) {
	var count int64
	for _, n := range r.created {
		if n.RecipientEmployeeCode == employeeCode && !n.Viewed {
			count++
		}
	}
	return count, nil
}

func (r *stubNotificationRepo) MarkViewed(ctx context.Context, id uuid.UUID, employeeCode string) (int64, error) {
	for i := range r.created {
		if r.created[i].ID == id && r.created[i].RecipientEmployeeCode == employeeCode {
			r.created[i].Viewed = true
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubNotificationRepo) MarkAllViewed(ctx context.Context, employeeCode string) error {
	for i := range r.created {
		if r.created[i].RecipientEmployeeCode == employeeCode {
			r.created[i].Viewed = true
		}
	}
	return nil
}
