package dto

type CreatePackageRequest struct {
	PackageName   string  `json:"PackageName" validate:"required"`
	PaymentPeriod int     `json:"PaymentPeriod" validate:"required"`
	MonthlyPrice  float64 `json:"MonthlyPrice" validate:"required"`
}

// UpdatePackageRequest accepts PaymentPeriod as a number or a string like
// "24 months"; the service normalizes it.
type UpdatePackageRequest struct {
	PackageName   string      `json:"PackageName" validate:"required"`
	PaymentPeriod interface{} `json:"PaymentPeriod" validate:"required"`
	MonthlyPrice  float64     `json:"MonthlyPrice" validate:"required"`
}

// PackageListRow is the compact projection used by contract forms.
type PackageListRow struct {
	PackageID    uint    `json:"PackageID"`
	PackageName  string  `json:"PackageName"`
	MonthlyPrice float64 `json:"MonthlyPrice"`
}
