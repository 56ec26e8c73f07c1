package model

type Package struct {
	PackageID     uint    `gorm:"primaryKey;autoIncrement" json:"PackageID"`
	PackageName   string  `gorm:"type:varchar(100);not null" json:"PackageName"`
	PaymentPeriod int     `gorm:"not null" json:"PaymentPeriod"` // months
	MonthlyPrice  float64 `gorm:"not null" json:"MonthlyPrice"`
}

func (Package) TableName() string {
	return "packages"
}
