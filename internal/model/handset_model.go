package model

import "time"

// HandsetRequest is one employee's claim on a corporate device. Status moves
// Pending to Approved, Rejected or In-progress; RequestDate is fixed at
// creation.
type HandsetRequest struct {
	ID                      uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	FixedAssetCode          *string    `gorm:"type:varchar(100)" json:"FixedAssetCode"`
	EmployeeCode            string     `gorm:"type:varchar(50);not null;index" json:"EmployeeCode"`
	AllocationID            uint       `gorm:"not null" json:"AllocationID"`
	MRNumber                *string    `gorm:"type:varchar(100);default:null" json:"MRNumber"`
	HandsetName             string     `gorm:"type:varchar(255);not null" json:"HandsetName"`
	HandsetPrice            float64    `gorm:"not null" json:"HandsetPrice"`
	AccessFeePaid           float64    `gorm:"not null" json:"AccessFeePaid"`
	RequestDate             time.Time  `gorm:"not null" json:"RequestDate"`
	CollectionDate          *time.Time `json:"CollectionDate"`
	RenewalDate             *time.Time `json:"RenewalDate"`
	WeekNotificationSent    bool       `gorm:"column:weekNotificationSend;not null;default:false" json:"weekNotificationSend"`
	RenewalNotificationSent bool       `gorm:"column:renewalNotificationSend;not null;default:false" json:"renewalNotificationSend"`
	Status                  string     `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
}

func (HandsetRequest) TableName() string {
	return "handsets"
}
