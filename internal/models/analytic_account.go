package models

import "time"

// AnalyticAccount is an analytic account that can span several operating units.
type AnalyticAccount struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"not null" json:"name"`
	CompanyID      *int64          `gorm:"index" json:"companyId"`
	OperatingUnits []OperatingUnit `gorm:"many2many:analytic_account_operating_unit_rel" json:"operatingUnits,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AnalyticAccount) TableName() string { return "account_analytic_account" }
