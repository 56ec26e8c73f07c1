package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification types emitted by the handset lifecycle and the renewal
// reminder worker.
const (
	NotificationHandsetApproved = "Handset Approved"
	NotificationHandsetRejected = "Handset Rejected"
	NotificationRenewalReminder = "Renewal Reminder"
	NotificationRenewalDue      = "Renewal Due"
)

// Notification is a persisted message for an employee's inbox. The core
// only creates these; viewing and marking is the inbox collaborator's side.
type Notification struct {
	ID                    uuid.UUID      `gorm:"type:char(36);primaryKey" json:"id"`
	RecipientEmployeeCode string         `gorm:"type:varchar(50);not null;index:idx_notifications_recipient_created,priority:1" json:"RecipientEmployeeCode"`
	Type                  string         `gorm:"type:varchar(50);not null" json:"Type"`
	Message               string         `gorm:"type:text;not null" json:"Message"`
	Metadata              datatypes.JSON `gorm:"type:json" json:"Metadata,omitempty"`
	Viewed                bool           `gorm:"not null;default:false" json:"Viewed"`
	CreatedAt             time.Time      `gorm:"column:Created_At;not null;index:idx_notifications_recipient_created,priority:2" json:"Created_At"`
}

func (Notification) TableName() string {
	return "notifications"
}
