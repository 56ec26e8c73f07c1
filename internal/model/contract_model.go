package model

// Contract is an employee's airtime subscription. Contracts with
// SubscriptionStatus "Expired" do not count against the available budget.
type Contract struct {
	ContractNumber     uint    `gorm:"primaryKey;autoIncrement" json:"ContractNumber"`
	EmployeeCode       string  `gorm:"type:varchar(50);not null;index" json:"EmployeeCode"`
	PackageID          uint    `gorm:"not null" json:"PackageID"`
	MonthlyPayment     float64 `gorm:"not null" json:"MonthlyPayment"`
	SubscriptionStatus string  `gorm:"type:varchar(20);not null" json:"SubscriptionStatus"`
}

// SubscriptionExpired is the status value excluded from budget sums.
const SubscriptionExpired = "Expired"

func (Contract) TableName() string {
	return "contracts"
}
