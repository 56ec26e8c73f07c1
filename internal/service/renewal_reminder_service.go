package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/logger"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"
)

// reminderWindow is how far ahead of the renewal date the heads-up
// notification goes out.
const reminderWindow = 7 * 24 * time.Hour

type IRenewalReminderService interface {
	// Start runs the scan immediately and then once per interval until the
	// context is cancelled.
	Start(ctx context.Context, interval time.Duration)
	RunOnce(ctx context.Context) error
}

// renewalReminderService scans approved handsets and nudges employees
// whose renewal date is approaching or has arrived. Each handset gets at
// most one reminder and one due notice; the sent flags live on the row so
// restarts never re-notify.
type renewalReminderService struct {
	handsetRepo repository.HandsetRepository
	notifier    Notifier
	logger      logger.ILogger
}

func NewRenewalReminderService(handsetRepo repository.HandsetRepository, notifier Notifier, log logger.ILogger) IRenewalReminderService {
	return &renewalReminderService{
		handsetRepo: handsetRepo,
		notifier:    notifier,
		logger:      log,
	}
}

func (s *renewalReminderService) Start(ctx context.Context, interval time.Duration) {
	go func() {
		if err := s.RunOnce(ctx); err != nil {
			s.logger.Error("RenewalReminderService", "Initial renewal scan failed", map[string]interface{}{"error": err.Error()})
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.RunOnce(ctx); err != nil {
					s.logger.Error("RenewalReminderService", "Renewal scan failed", map[string]interface{}{"error": err.Error()})
				}
			}
		}
	}()
}

func (s *renewalReminderService) RunOnce(ctx context.Context) error {
	now := time.Now()

	upcoming, err := s.handsetRepo.FindReminderWindow(ctx, now, now.Add(reminderWindow))
	if err != nil {
		return err
	}
	for _, h := range upcoming {
		s.notifyReminder(ctx, h)
	}

	due, err := s.handsetRepo.FindRenewalDue(ctx, now)
	if err != nil {
		return err
	}
	for _, h := range due {
		s.notifyDue(ctx, h)
	}

	if len(upcoming) > 0 || len(due) > 0 {
		s.logger.Info("RenewalReminderService", "Renewal scan complete", map[string]interface{}{
			"upcoming": len(upcoming),
			"due":      len(due),
		})
	}
	return nil
}

func (s *renewalReminderService) notifyReminder(ctx context.Context, h model.HandsetRequest) {
	if h.RenewalDate == nil {
		return
	}
	msg := fmt.Sprintf(
		"Your handset renewal is due on %s. You will be eligible for a new device from that date.",
		h.RenewalDate.Format("02 January 2006"),
	)
	err := s.notifier.Notify(ctx, h.EmployeeCode, model.NotificationRenewalReminder, msg, map[string]interface{}{
		"handset_id": h.ID,
	})
	if err != nil {
		s.logger.Error("RenewalReminderService", fmt.Sprintf("Failed to send reminder for handset %d", h.ID), map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.handsetRepo.MarkWeekNotificationSent(ctx, h.ID); err != nil {
		s.logger.Error("RenewalReminderService", fmt.Sprintf("Failed to flag reminder for handset %d", h.ID), map[string]interface{}{"error": err.Error()})
	}
}

func (s *renewalReminderService) notifyDue(ctx context.Context, h model.HandsetRequest) {
	msg := "Your handset renewal date has arrived. You are now eligible to request a new device."
	err := s.notifier.Notify(ctx, h.EmployeeCode, model.NotificationRenewalDue, msg, map[string]interface{}{
		"handset_id": h.ID,
	})
	if err != nil {
		s.logger.Error("RenewalReminderService", fmt.Sprintf("Failed to send due notice for handset %d", h.ID), map[string]interface{}{"error": err.Error()})
		return
	}
	if err := s.handsetRepo.MarkRenewalNotificationSent(ctx, h.ID); err != nil {
		s.logger.Error("RenewalReminderService", fmt.Sprintf("Failed to flag due notice for handset %d", h.ID), map[string]interface{}{"error": err.Error()})
	}
}
