package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/dto"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
)

func newHandsetFixture() (*stubHandsetRepo, *stubStaffRepo, *stubAllocationRepo, *recordingNotifier, IHandsetService) {
	handsetRepo := newStubHandsetRepo()
	staffRepo := newStubStaffRepo()
	allocationRepo := newStubAllocationRepo()
	notifier := &recordingNotifier{}

	start := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	staffRepo.byCode["E100"] = &model.Staff{
		EmployeeCode:        "E100",
		AllocationID:        1,
		FullName:            "Test Employee",
		Email:               "e100@example.com",
		EmploymentStatus:    "Active",
		EmploymentStartDate: &start,
	}
	allocationRepo.byID[1] = &model.Allocation{AllocationID: 1, AirtimeAllocation: 1000, HandsetAllocation: 9000}

	svc := NewHandsetService(handsetRepo, staffRepo, allocationRepo, notifier, noopLogger{})
	return handsetRepo, staffRepo, allocationRepo, notifier, svc
}

func accessFee(v float64) *float64 { return &v }

func TestCreateRequestStartsPending(t *testing.T) {
	_, _, _, notifier, svc := newHandsetFixture()

	created, err := svc.CreateRequest(context.Background(), &dto.CreateHandsetRequest{
		EmployeeCode:  "E100",
		AllocationID:  1,
		HandsetName:   "Galaxy S24",
		HandsetPrice:  "N$4500.00",
		AccessFeePaid: accessFee(150),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Pending", created.Status)
	assert.Equal(t, 4500.00, created.HandsetPrice)
	assert.Nil(t, created.CollectionDate)
	assert.Nil(t, created.RenewalDate)
	assert.Empty(t, notifier.sent, "creation must not notify")
}

func TestCreateRequestRejectsUnknownStaff(t *testing.T) {
	_, _, _, _, svc := newHandsetFixture()

	_, err := svc.CreateRequest(context.Background(), &dto.CreateHandsetRequest{
		EmployeeCode:  "E999",
		AllocationID:  1,
		HandsetName:   "Galaxy S24",
		HandsetPrice:  float64(4500),
		AccessFeePaid: accessFee(150),
	})

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestUpdateRequestApprovalDerivesRenewal(t *testing.T) {
	handsetRepo, _, _, notifier, svc := newHandsetFixture()
	svcCreate(t, svc)

	mr := "MR-001"
	collection := "2025-06-10"
	updated, err := svc.UpdateRequest(context.Background(), 1, &dto.UpdateHandsetRequest{
		Status:         "Approved",
		MRNumber:       &mr,
		CollectionDate: &collection,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Approved", updated.Status)
	if assert.NotNil(t, updated.RenewalDate) {
		assert.Equal(t, time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC), *updated.RenewalDate)
	}
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, model.NotificationHandsetApproved, notifier.sent[0].Type)
	assert.Equal(t, "E100", notifier.sent[0].EmployeeCode)

	stored, _ := handsetRepo.FindByID(context.Background(), 1)
	assert.Equal(t, "Approved", stored.Status)
}

func TestUpdateRequestApprovalRequiresMRNumberAndCollection(t *testing.T) {
	_, _, _, notifier, svc := newHandsetFixture()
	svcCreate(t, svc)

	_, err := svc.UpdateRequest(context.Background(), 1, &dto.UpdateHandsetRequest{Status: "Approved"})

	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	assert.Empty(t, notifier.sent, "failed transition must not notify")
}

func TestUpdateRequestCollectionDateForcesApproval(t *testing.T) {
	_, _, _, notifier, svc := newHandsetFixture()
	svcCreate(t, svc)

	collection := "2025-06-10"
	updated, err := svc.UpdateRequest(context.Background(), 1, &dto.UpdateHandsetRequest{
		Status:         "In-progress",
		CollectionDate: &collection,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Approved", updated.Status, "a recorded collection is the act of approval")
	assert.NotNil(t, updated.RenewalDate)
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, model.NotificationHandsetApproved, notifier.sent[0].Type)
}

func TestUpdateRequestRejectionNotifies(t *testing.T) {
	_, _, _, notifier, svc := newHandsetFixture()
	svcCreate(t, svc)

	updated, err := svc.UpdateRequest(context.Background(), 1, &dto.UpdateHandsetRequest{Status: "Rejected"})

	assert.NoError(t, err)
	assert.Equal(t, "Rejected", updated.Status)
	assert.Nil(t, updated.RenewalDate, "rejection leaves the renewal date untouched")
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, model.NotificationHandsetRejected, notifier.sent[0].Type)
}

func TestUpdateRequestNotFound(t *testing.T) {
	_, _, _, _, svc := newHandsetFixture()

	_, err := svc.UpdateRequest(context.Background(), 42, &dto.UpdateHandsetRequest{Status: "In-progress"})

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestUpdateRequestIdempotentApproval(t *testing.T) {
	_, _, _, notifier, svc := newHandsetFixture()
	svcCreate(t, svc)

	mr := "MR-001"
	collection := "2025-06-10"
	req := &dto.UpdateHandsetRequest{Status: "Approved", MRNumber: &mr, CollectionDate: &collection}

	first, err := svc.UpdateRequest(context.Background(), 1, req)
	assert.NoError(t, err)
	second, err := svc.UpdateRequest(context.Background(), 1, req)
	assert.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, *first.RenewalDate, *second.RenewalDate)
	// A repeated notification for an identical approval is accepted.
	assert.Len(t, notifier.sent, 2)
}

func TestUpdateRequestNotificationFailureDoesNotUndoUpdate(t *testing.T) {
	handsetRepo, _, _, notifier, svc := newHandsetFixture()
	svcCreate(t, svc)
	notifier.err = assert.AnError

	mr := "MR-001"
	collection := "2025-06-10"
	updated, err := svc.UpdateRequest(context.Background(), 1, &dto.UpdateHandsetRequest{
		Status:         "Approved",
		MRNumber:       &mr,
		CollectionDate: &collection,
	})

	assert.NoError(t, err, "notification failure must not fail the update")
	assert.Equal(t, "Approved", updated.Status)

	stored, _ := handsetRepo.FindByID(context.Background(), 1)
	assert.Equal(t, "Approved", stored.Status)
}

func TestDeleteRequestOnlyWhilePending(t *testing.T) {
	handsetRepo, _, _, _, svc := newHandsetFixture()
	svcCreate(t, svc)

	// Approve it first.
	mr := "MR-001"
	collection := "2025-06-10"
	_, err := svc.UpdateRequest(context.Background(), 1, &dto.UpdateHandsetRequest{
		Status:         "Approved",
		MRNumber:       &mr,
		CollectionDate: &collection,
	})
	assert.NoError(t, err)

	err = svc.DeleteRequest(context.Background(), 1)
	assert.True(t, apperror.IsKind(err, apperror.KindInvalidState))

	stored, _ := handsetRepo.FindByID(context.Background(), 1)
	assert.NotNil(t, stored, "non-pending rows survive delete attempts")
}

func TestDeleteRequestPendingSucceeds(t *testing.T) {
	handsetRepo, _, _, _, svc := newHandsetFixture()
	svcCreate(t, svc)

	err := svc.DeleteRequest(context.Background(), 1)
	assert.NoError(t, err)

	stored, _ := handsetRepo.FindByID(context.Background(), 1)
	assert.Nil(t, stored)
}

func TestDeleteRequestNotFound(t *testing.T) {
	_, _, _, _, svc := newHandsetFixture()

	err := svc.DeleteRequest(context.Background(), 42)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestGetStaffView(t *testing.T) {
	_, _, _, _, svc := newHandsetFixture()

	view, err := svc.GetStaffView(context.Background(), "E100")
	assert.NoError(t, err)
	assert.Equal(t, 1, view.Status, "no requests yet")
	assert.Equal(t, 9000.0, view.HandsetAllocation)
	assert.Equal(t, "2023-03-15", view.EmploymentStartDate)
	assert.Equal(t, "2025-03-15", view.TwoYearsLater)

	svcCreate(t, svc)
	view, err = svc.GetStaffView(context.Background(), "E100")
	assert.NoError(t, err)
	assert.Equal(t, 2, view.Status)
	assert.Len(t, view.Handsets, 1)
}

func svcCreate(t *testing.T, svc IHandsetService) {
	t.Helper()
	_, err := svc.CreateRequest(context.Background(), &dto.CreateHandsetRequest{
		EmployeeCode:  "E100",
		AllocationID:  1,
		HandsetName:   "Galaxy S24",
		HandsetPrice:  float64(4500),
		AccessFeePaid: accessFee(150),
	})
	assert.NoError(t, err)
}
