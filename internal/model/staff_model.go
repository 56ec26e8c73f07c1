package model

import "time"

type Staff struct {
	EmployeeCode        string     `gorm:"type:varchar(50);primaryKey" json:"EmployeeCode"`
	RoleID              int        `gorm:"not null" json:"RoleID"`
	AllocationID        uint       `gorm:"not null" json:"AllocationID"`
	FirstName           string     `gorm:"type:varchar(100);not null" json:"FirstName"`
	LastName            string     `gorm:"type:varchar(100);not null" json:"LastName"`
	FullName            string     `gorm:"type:varchar(200);not null" json:"FullName"`
	UserName            string     `gorm:"type:varchar(100);uniqueIndex" json:"UserName"`
	Password            *string    `gorm:"type:varchar(255)" json:"-"`
	Email               string     `gorm:"type:varchar(255)" json:"Email"`
	PhoneNumber         string     `gorm:"type:varchar(30)" json:"PhoneNumber"`
	Gender              string     `gorm:"type:varchar(10)" json:"Gender"`
	ServicePlan         string     `gorm:"type:varchar(20)" json:"ServicePlan"`
	Position            string     `gorm:"type:varchar(100)" json:"Position"`
	Department          string     `gorm:"type:varchar(100)" json:"Department"`
	Division            *string    `gorm:"type:varchar(100)" json:"Division"`
	EmploymentCategory  string     `gorm:"type:varchar(30)" json:"EmploymentCategory"`
	EmploymentStatus    string     `gorm:"type:varchar(20);index" json:"EmploymentStatus"`
	EmploymentStartDate *time.Time `json:"EmploymentStartDate"`
	ProfileImage        *string    `gorm:"type:varchar(255)" json:"ProfileImage"`
}

func (Staff) TableName() string {
	return "employees"
}

// TempStaffRecord is a staging row for bulk staff import.
type TempStaffRecord struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeCode string `gorm:"type:varchar(50);not null" json:"employeeCode"`
	FirstName    string `gorm:"type:varchar(100)" json:"firstName"`
	LastName     string `gorm:"type:varchar(100)" json:"lastName"`
	Cellphone    string `gorm:"type:varchar(30)" json:"cellphone"`
	Department   string `gorm:"type:varchar(100)" json:"department"`
}

func (TempStaffRecord) TableName() string {
	return "temp_data"
}
