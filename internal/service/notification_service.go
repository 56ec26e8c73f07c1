package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/TopNotch-Solutions/ambasphere-backend/internal/model"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/apperror"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/pkg/logger"
	"github.com/TopNotch-Solutions/ambasphere-backend/internal/repository"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notifier is the outbound port for emitting notifications from the
// request lifecycle. Callers treat delivery as best-effort: a failed
// emit never rolls back the state change that triggered it.
type Notifier interface {
	Notify(ctx context.Context, employeeCode, notifType, msg string, metadata map[string]interface{}) error
}

type INotificationService interface {
	Notifier
	GetNotifications(ctx context.Context, employeeCode string, limit, offset int) ([]model.Notification, int64, error)
	GetUnreadCount(ctx context.Context, employeeCode string) (int64, error)
	MarkAsViewed(ctx context.Context, id uuid.UUID, employeeCode string) error
	MarkAllAsViewed(ctx context.Context, employeeCode string) error
}

// NotificationEventPayload is the message body published to the mail
// topic whenever a notification row is created.
type NotificationEventPayload struct {
	NotificationID string `json:"notification_id"`
	EmployeeCode   string `json:"employee_code"`
	Type           string `json:"type"`
	Message        string `json:"message"`
}

type notificationService struct {
	repo      repository.NotificationRepository
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewNotificationService(
	repo repository.NotificationRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) INotificationService {
	return &notificationService{
		repo:      repo,
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

// Notify persists the notification and publishes it for email delivery.
// Persistence failure is returned to the caller; publish failure is only
// logged because the inbox row is already the durable record.
func (s *notificationService) Notify(ctx context.Context, employeeCode, notifType, msg string, metadata map[string]interface{}) error {
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		metaJSON = []byte("{}")
	}

	notif := &model.Notification{
		ID:                    uuid.New(),
		RecipientEmployeeCode: employeeCode,
		Type:                  notifType,
		Message:               msg,
		Metadata:              datatypes.JSON(metaJSON),
		Viewed:                false,
		CreatedAt:             time.Now(),
	}

	if err := s.repo.Create(ctx, notif); err != nil {
		return apperror.Dependency("failed to record notification", err)
	}

	payload, err := json.Marshal(NotificationEventPayload{
		NotificationID: notif.ID.String(),
		EmployeeCode:   employeeCode,
		Type:           notifType,
		Message:        msg,
	})
	if err != nil {
		s.logger.Error("NotificationService", "Failed to marshal notification event", map[string]interface{}{"error": err.Error()})
		return nil
	}

	if err := s.pubSub.Publish(s.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.logger.Error("NotificationService", fmt.Sprintf("Failed to publish notification %s", notif.ID), map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, employeeCode string, limit, offset int) ([]model.Notification, int64, error) {
	return s.repo.FindByRecipient(ctx, employeeCode, limit, offset)
}

func (s *notificationService) GetUnreadCount(ctx context.Context, employeeCode string) (int64, error) {
	return s.repo.UnreadCount(ctx, employeeCode)
}

func (s *notificationService) MarkAsViewed(ctx context.Context, id uuid.UUID, employeeCode string) error {
	rows, err := s.repo.MarkViewed(ctx, id, employeeCode)
	if err != nil {
		return apperror.Dependency("failed to mark notification as viewed", err)
	}
	if rows == 0 {
		return apperror.NotFound("Notification not found")
	}
	return nil
}

func (s *notificationService) MarkAllAsViewed(ctx context.Context, employeeCode string) error {
	if err := s.repo.MarkAllViewed(ctx, employeeCode); err != nil {
		return apperror.Dependency("failed to mark notifications as viewed", err)
	}
	return nil
}
