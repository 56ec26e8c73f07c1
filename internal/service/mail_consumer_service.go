package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/logger"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/mailer"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IMailConsumerService interface {
	Consume(ctx context.Context) error
}

// mailConsumerService drains the notification topic and mirrors each
// inbox row as an email. Delivery here is best-effort: the inbox row is
// already persisted, so any failure ends with an Ack rather than a
// redelivery loop.
type mailConsumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	staffRepo    repository.StaffRepository
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewMailConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	staffRepo repository.StaffRepository,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IMailConsumerService {
	return &mailConsumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		staffRepo:    staffRepo,
		emailService: emailService,
		logger:       log,
	}
}

func (cs *mailConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *mailConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload NotificationEventPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("MailConsumerService", "Failed to unmarshal notification event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	staff, err := cs.staffRepo.FindByEmployeeCode(ctx, payload.EmployeeCode)
	if err != nil {
		cs.logger.Error("MailConsumerService", fmt.Sprintf("Failed to look up staff %s", payload.EmployeeCode), map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}
	if staff == nil || staff.Email == "" {
		cs.logger.Warn("MailConsumerService", fmt.Sprintf("No email address for staff %s, skipping", payload.EmployeeCode), nil)
		msg.Ack()
		return
	}

	subject := subjectForType(payload.Type)
	if err := cs.emailService.SendNotification(staff.Email, subject, payload.Message); err != nil {
		cs.logger.Error("MailConsumerService", fmt.Sprintf("Failed to send email to %s", staff.Email), map[string]interface{}{
			"error":           err.Error(),
			"notification_id": payload.NotificationID,
		})
		msg.Ack()
		return
	}

	cs.logger.Info("MailConsumerService", fmt.Sprintf("Notification email sent to %s", staff.Email), map[string]interface{}{
		"notification_id": payload.NotificationID,
		"type":            payload.Type,
	})
	msg.Ack()
}

func subjectForType(notifType string) string {
	switch notifType {
	case model.NotificationHandsetApproved:
		return "Handset Request Approved"
	case model.NotificationHandsetRejected:
		return "Handset Request Rejected"
	case model.NotificationRenewalReminder:
		return "Handset Renewal Reminder"
	case model.NotificationRenewalDue:
		return "Handset Renewal Due"
	default:
		return "Staff Portal Notification"
	}
}
