package model

// Allocation is an employee's allocation tier: the monetary ceilings for
// airtime and handsets. Read-only from the request lifecycle's perspective.
type Allocation struct {
	AllocationID      uint    `gorm:"primaryKey;autoIncrement" json:"AllocationID"`
	AirtimeAllocation float64 `gorm:"not null" json:"AirtimeAllocation"`
	HandsetAllocation float64 `gorm:"not null" json:"HandsetAllocation"`
}

func (Allocation) TableName() string {
	return "allocation"
}
