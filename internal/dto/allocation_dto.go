package dto

// StaffAirtimeRow is the staff + tier join returned with budget figures.
type StaffAirtimeRow struct {
	EmployeeCode      string  `json:"EmployeeCode"`
	AllocationID      uint    `json:"AllocationID"`
	FullName          string  `json:"FullName"`
	PhoneNumber       string  `json:"PhoneNumber"`
	ServicePlan       string  `json:"ServicePlan"`
	AirtimeAllocation float64 `json:"AirtimeAllocation"`
}

// BudgetResponse answers "how much of the airtime tier remains available".
type BudgetResponse struct {
	StaffWithAirtimeAllocation []StaffAirtimeRow `json:"staffWithAirtimeAllocation"`
	HandsetAllocation          float64           `json:"handsetAllocation"`
	Available                  float64           `json:"available"`
}
