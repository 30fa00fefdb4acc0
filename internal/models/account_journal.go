package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// AccountJournal is an accounting journal. When the owning company is
// self-balanced per operating unit, bank and cash journals must carry an
// operating unit so payments can be attributed.
type AccountJournal struct {
	ID              int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Type            string         `gorm:"not null" json:"type"` // bank, cash, sale, purchase, general
	CompanyID       int64          `gorm:"index;not null" json:"companyId"`
	Company         *ResCompany    `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	OperatingUnitID *int64         `gorm:"index" json:"operatingUnitId"`
	OperatingUnit   *OperatingUnit `gorm:"foreignKey:OperatingUnitID" json:"operatingUnit,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (AccountJournal) TableName() string { return "account_journal" }

// BeforeSave rejects bank/cash journals without an operating unit when the
// company is defined as self-balanced.
func (j *AccountJournal) BeforeSave(tx *gorm.DB) error {
	if j.Type != "bank" && j.Type != "cash" {
		return nil
	}
	if j.OperatingUnitID != nil {
		return nil
	}

	company := j.Company
	if company == nil {
		company = &ResCompany{}
		if err := tx.First(company, j.CompanyID).Error; err != nil {
			return err
		}
	}
	if company.OUSelfBalanced {
		return fmt.Errorf("configuration error: company [%s] is self-balanced, the operating unit is mandatory in bank and cash journals", company.Name)
	}
	return nil
}
