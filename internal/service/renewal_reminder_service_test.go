package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
)

func TestRunOnceSendsWeekReminderOnce(t *testing.T) {
	handsetRepo := newStubHandsetRepo()
	notifier := &recordingNotifier{}
	svc := NewRenewalReminderService(handsetRepo, notifier, noopLogger{})

	renewal := time.Now().Add(3 * 24 * time.Hour)
	handsetRepo.byID[1] = &model.HandsetRequest{
		ID:           1,
		EmployeeCode: "E100",
		Status:       "Approved",
		RenewalDate:  &renewal,
	}

	assert.NoError(t, svc.RunOnce(context.Background()))
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, model.NotificationRenewalReminder, notifier.sent[0].Type)

	// The sent flag keeps a second scan quiet.
	assert.NoError(t, svc.RunOnce(context.Background()))
	assert.Len(t, notifier.sent, 1)
}

func TestRunOnceSendsDueNotice(t *testing.T) {
	handsetRepo := newStubHandsetRepo()
	notifier := &recordingNotifier{}
	svc := NewRenewalReminderService(handsetRepo, notifier, noopLogger{})

	renewal := time.Now().Add(-24 * time.Hour)
	handsetRepo.byID[1] = &model.HandsetRequest{
		ID:                   1,
		EmployeeCode:         "E100",
		Status:               "Approved",
		RenewalDate:          &renewal,
		WeekNotificationSent: true,
	}

	assert.NoError(t, svc.RunOnce(context.Background()))
	assert.Len(t, notifier.sent, 1)
	assert.Equal(t, model.NotificationRenewalDue, notifier.sent[0].Type)

	assert.NoError(t, svc.RunOnce(context.Background()))
	assert.Len(t, notifier.sent, 1)
}

func TestRunOnceNotifierFailureLeavesFlagUnset(t *testing.T) {
	handsetRepo := newStubHandsetRepo()
	notifier := &recordingNotifier{err: assert.AnError}
	svc := NewRenewalReminderService(handsetRepo, notifier, noopLogger{})

	renewal := time.Now().Add(3 * 24 * time.Hour)
	handsetRepo.byID[1] = &model.HandsetRequest{
		ID:           1,
		EmployeeCode: "E100",
		Status:       "Approved",
		RenewalDate:  &renewal,
	}

	assert.NoError(t, svc.RunOnce(context.Background()))
	assert.False(t, handsetRepo.byID[1].WeekNotificationSent, "failed sends must stay retryable")

	// Once the sink recovers the reminder goes out.
	notifier.err = nil
	assert.NoError(t, svc.RunOnce(context.Background()))
	assert.Len(t, notifier.sent, 1)
	assert.True(t, handsetRepo.byID[1].WeekNotificationSent)
}

func TestRunOnceIgnoresPendingRequests(t *testing.T) {
	handsetRepo := newStubHandsetRepo()
	notifier := &recordingNotifier{}
	svc := NewRenewalReminderService(handsetRepo, notifier, noopLogger{})

	renewal := time.Now().Add(3 * 24 * time.Hour)
	handsetRepo.byID[1] = &model.HandsetRequest{
		ID:           1,
		EmployeeCode: "E100",
		Status:       "Pending",
		RenewalDate:  &renewal,
	}

	assert.NoError(t, svc.RunOnce(context.Background()))
	assert.Empty(t, notifier.sent)
}
