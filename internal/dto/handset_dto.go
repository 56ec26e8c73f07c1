package dto

import "github.com/TopNotch-Solutions/ambasphere-backend/internal/model"

// CreateHandsetRequest is the employee-initiated device request.
// HandsetPrice is interface{} on purpose: the portal frontend sends either a
// raw number or a currency-formatted string ("N$450.00") and the service
// normalizes both.
type CreateHandsetRequest struct {
	EmployeeCode  string      `json:"EmployeeCode" validate:"required"`
	AllocationID  uint        `json:"AllocationID" validate:"required"`
	HandsetName   string      `json:"HandsetName" validate:"required"`
	HandsetPrice  interface{} `json:"HandsetPrice" validate:"required"`
	AccessFeePaid *float64    `json:"AccessFeePaid" validate:"required"`
}

// UpdateHandsetRequest carries a target status plus the optional approval
// fields. Supplying CollectionDate forces approval regardless of Status.
type UpdateHandsetRequest struct {
	Status         string  `json:"status" validate:"required"`
	MRNumber       *string `json:"MRNumber"`
	CollectionDate *string `json:"CollectionDate"`
	FixedAssetCode *string `json:"FixedAssetCode"`
}

// StaffHandsetsResponse is the employee-facing view: their requests plus the
// tier's handset ceiling and the employment-start eligibility window.
type StaffHandsetsResponse struct {
	// Status is a legacy frontend flag: 1 = no requests yet, 2 = has requests.
	Status              int                    `json:"status"`
	Handsets            []model.HandsetRequest `json:"handsets"`
	HandsetAllocation   float64                `json:"handsetAllocation"`
	EmploymentStartDate string                 `json:"employmentStartDate"`
	TwoYearsLater       string                 `json:"twoYearsLater"`
}
