package dto

type CreateStaffRequest struct {
	EmployeeCode       string  `json:"EmployeeCode" validate:"required"`
	RoleID             int     `json:"RoleID" validate:"required"`
	AllocationID       uint    `json:"AllocationID" validate:"required"`
	FirstName          string  `json:"FirstName" validate:"required"`
	LastName           string  `json:"LastName" validate:"required"`
	FullName           string  `json:"FullName" validate:"required"`
	Email              string  `json:"Email" validate:"required,email"`
	PhoneNumber        string  `json:"PhoneNumber"`
	Gender             string  `json:"Gender"`
	ServicePlan        string  `json:"ServicePlan"`
	Position           string  `json:"Position"`
	Department         string  `json:"Department"`
	Division           *string `json:"Division"`
	EmploymentCategory string  `json:"EmploymentCategory"`
	EmploymentStatus   string  `json:"EmploymentStatus"`
}

// UpdateStaffRequest is a partial update; only the fixed updatable field set
// is honored, everything else on the record is immutable through this route.
type UpdateStaffRequest struct {
	LastName           *string `json:"LastName"`
	PhoneNumber        *string `json:"PhoneNumber"`
	ServicePlan        *string `json:"ServicePlan"`
	Position           *string `json:"Position"`
	Division           *string `json:"Division"`
	EmploymentCategory *string `json:"EmploymentCategory"`
	EmploymentStatus   *string `json:"EmploymentStatus"`
	Department         *string `json:"Department"`
}

type StaffCountResponse struct {
	Count int64 `json:"count"`
}

// AdminStaffRow is the admin directory projection.
type AdminStaffRow struct {
	FullName     string `json:"FullName"`
	Email        string `json:"Email"`
	EmployeeCode string `json:"EmployeeCode"`
	RoleID       int    `json:"RoleID"`
}

type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
